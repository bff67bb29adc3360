package usecase

import (
	"bitumen_production/internal/domain/entities"
	mock_interfaces "bitumen_production/internal/usecase/interfaces/mocks"
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

var fixedNow = time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)

func referenceInputs() entities.ConversionInputs {
	return entities.ConversionInputs{
		RawAmountKg:    dec("15000"),
		WasteAmountKg:  dec("500"),
		GasVolume:      dec("800"),
		ElectricityKwh: dec("500"),
		LaborRatePerKg: dec("70"),
		ExtraCost:      dec("713545"),
	}
}

func newKettle(t *testing.T) (*ConversionUseCase, *memStore) {
	t.Helper()
	s := newMemStore()
	s.seed(entities.CategoryBN3, "20000", "500")
	s.seed(entities.CategoryGas, "0", "1800")
	s.seed(entities.CategoryElectricity, "0", "1000")
	uc := NewConversionUseCase(memBatches{s}, memLedger{s}, nil)
	uc.clock = func() time.Time { return fixedNow }
	return uc, s
}

func expectConversionPrices(ledger *mock_interfaces.MockIMaterialLedger, rawQty string) {
	ledger.EXPECT().GetStock(gomock.Any(), entities.CategoryBN3).Return(entities.MaterialStock{Category: entities.CategoryBN3, QuantityOnHand: dec(rawQty), UnitPrice: dec("500")}, nil)
	ledger.EXPECT().GetStock(gomock.Any(), entities.CategoryGas).Return(entities.MaterialStock{Category: entities.CategoryGas, UnitPrice: dec("1800")}, nil)
	ledger.EXPECT().GetStock(gomock.Any(), entities.CategoryElectricity).Return(entities.MaterialStock{Category: entities.CategoryElectricity, UnitPrice: dec("1000")}, nil)
}

func TestConversionUseCase_Preview(t *testing.T) {
	t.Run("negative input", func(t *testing.T) {
		uc := NewConversionUseCase(nil, nil, nil)
		in := referenceInputs()
		in.GasVolume = dec("-1")
		_, err := uc.Preview(context.Background(), in)
		if !errors.Is(err, ErrInvalidConversionInput) {
			t.Fatalf("expected ErrInvalidConversionInput, got %v", err)
		}
	})

	t.Run("reference batch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		ledger := mock_interfaces.NewMockIMaterialLedger(ctrl)
		expectConversionPrices(ledger, "20000")
		uc := NewConversionUseCase(nil, ledger, nil)

		sheet, err := uc.Preview(context.Background(), referenceInputs())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !sheet.TotalCost.Equal(dec("11168545")) || !sheet.UnitCost.Equal(dec("771")) {
			t.Fatalf("unexpected sheet total=%s unit=%s", sheet.TotalCost, sheet.UnitCost)
		}
	})

	t.Run("non positive output previews zero", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		ledger := mock_interfaces.NewMockIMaterialLedger(ctrl)
		expectConversionPrices(ledger, "20000")
		uc := NewConversionUseCase(nil, ledger, nil)

		in := referenceInputs()
		in.WasteAmountKg = in.RawAmountKg
		sheet, err := uc.Preview(context.Background(), in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !sheet.UnitCost.IsZero() {
			t.Fatalf("expected 0 unit cost, got %s", sheet.UnitCost)
		}
	})
}

func TestConversionUseCase_Start(t *testing.T) {
	t.Run("negative input", func(t *testing.T) {
		uc := NewConversionUseCase(nil, nil, nil)
		in := referenceInputs()
		in.LaborRatePerKg = dec("-70")
		_, err := uc.Start(context.Background(), in)
		if !errors.Is(err, ErrInvalidConversionInput) {
			t.Fatalf("expected ErrInvalidConversionInput, got %v", err)
		}
	})

	t.Run("non positive output", func(t *testing.T) {
		uc := NewConversionUseCase(nil, nil, nil)
		in := referenceInputs()
		in.WasteAmountKg = dec("15000")
		_, err := uc.Start(context.Background(), in)
		if !errors.Is(err, ErrNonPositiveOutput) {
			t.Fatalf("expected ErrNonPositiveOutput, got %v", err)
		}
	})

	t.Run("already running", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIConversionRepository(ctrl)
		uc := NewConversionUseCase(repo, nil, nil)
		repo.EXPECT().GetActive(gomock.Any()).Return(entities.ConversionBatch{ID: "b-1", State: entities.ConversionStateBoiling}, nil)

		_, err := uc.Start(context.Background(), referenceInputs())
		if !errors.Is(err, entities.ErrProcessAlreadyRunning) {
			t.Fatalf("expected ErrProcessAlreadyRunning, got %v", err)
		}
	})

	t.Run("repo get active error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIConversionRepository(ctrl)
		uc := NewConversionUseCase(repo, nil, nil)
		repo.EXPECT().GetActive(gomock.Any()).Return(entities.ConversionBatch{}, errors.New("db"))

		_, err := uc.Start(context.Background(), referenceInputs())
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("raw stock insufficient", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIConversionRepository(ctrl)
		ledger := mock_interfaces.NewMockIMaterialLedger(ctrl)
		uc := NewConversionUseCase(repo, ledger, nil)
		repo.EXPECT().GetActive(gomock.Any()).Return(entities.ConversionBatch{}, nil)
		expectConversionPrices(ledger, "14999")

		_, err := uc.Start(context.Background(), referenceInputs())
		if !errors.Is(err, ErrStockInsufficient) {
			t.Fatalf("expected ErrStockInsufficient, got %v", err)
		}
	})

	t.Run("store rejects concurrent start", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIConversionRepository(ctrl)
		ledger := mock_interfaces.NewMockIMaterialLedger(ctrl)
		uc := NewConversionUseCase(repo, ledger, nil)
		repo.EXPECT().GetActive(gomock.Any()).Return(entities.ConversionBatch{}, nil)
		expectConversionPrices(ledger, "20000")
		repo.EXPECT().CreateActive(gomock.Any(), gomock.Any()).Return(entities.ConversionBatch{}, entities.ErrProcessAlreadyRunning)

		_, err := uc.Start(context.Background(), referenceInputs())
		if !errors.Is(err, entities.ErrProcessAlreadyRunning) {
			t.Fatalf("expected ErrProcessAlreadyRunning, got %v", err)
		}
	})

	t.Run("success publishes started", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIConversionRepository(ctrl)
		ledger := mock_interfaces.NewMockIMaterialLedger(ctrl)
		pub := mock_interfaces.NewMockIProcessEventPublisher(ctrl)
		uc := NewConversionUseCase(repo, ledger, pub)
		uc.clock = func() time.Time { return fixedNow }

		repo.EXPECT().GetActive(gomock.Any()).Return(entities.ConversionBatch{}, nil)
		expectConversionPrices(ledger, "20000")
		repo.EXPECT().CreateActive(gomock.Any(), gomock.AssignableToTypeOf(entities.ConversionBatch{})).DoAndReturn(
			func(_ context.Context, b entities.ConversionBatch) (entities.ConversionBatch, error) {
				if b.ID == "" || b.State != entities.ConversionStateBoiling || !b.StartedAt.Equal(fixedNow) {
					t.Fatalf("unexpected batch: %+v", b)
				}
				if !b.UnitCost.Equal(dec("771")) || !b.Prices.RawUnitPrice.Equal(dec("500")) {
					t.Fatalf("unexpected costing: unit=%s prices=%+v", b.UnitCost, b.Prices)
				}
				if len(b.CostRows) != 5 {
					t.Fatalf("expected 5 cost rows, got %d", len(b.CostRows))
				}
				return b, nil
			},
		)
		pub.EXPECT().Publish(gomock.Any(), gomock.AssignableToTypeOf(entities.ProcessEvent{})).DoAndReturn(
			func(_ context.Context, ev entities.ProcessEvent) error {
				if ev.Type != entities.ProcessEventStarted || ev.BatchID == "" {
					t.Fatalf("unexpected event: %+v", ev)
				}
				return nil
			},
		)

		b, err := uc.Start(context.Background(), referenceInputs())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if b.ID == "" {
			t.Fatalf("expected generated id")
		}
	})

	t.Run("publish failure does not fail start", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIConversionRepository(ctrl)
		ledger := mock_interfaces.NewMockIMaterialLedger(ctrl)
		pub := mock_interfaces.NewMockIProcessEventPublisher(ctrl)
		uc := NewConversionUseCase(repo, ledger, pub)

		repo.EXPECT().GetActive(gomock.Any()).Return(entities.ConversionBatch{}, nil)
		expectConversionPrices(ledger, "20000")
		repo.EXPECT().CreateActive(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, b entities.ConversionBatch) (entities.ConversionBatch, error) { return b, nil },
		)
		pub.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("redis down"))

		if _, err := uc.Start(context.Background(), referenceInputs()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestConversionUseCase_StartIsSingleFlight(t *testing.T) {
	uc, _ := newKettle(t)

	const callers = 32
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		ok      int
		running int
		other   []error
	)
	start := make(chan struct{})
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			_, err := uc.Start(context.Background(), referenceInputs())
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				ok++
			case errors.Is(err, entities.ErrProcessAlreadyRunning):
				running++
			default:
				other = append(other, err)
			}
		}()
	}
	close(start)
	wg.Wait()

	if ok != 1 || running != callers-1 || len(other) != 0 {
		t.Fatalf("expected exactly one start, got ok=%d running=%d other=%v", ok, running, other)
	}
}

func TestConversionUseCase_Finish(t *testing.T) {
	t.Run("invalid split", func(t *testing.T) {
		cases := []struct {
			name                 string
			actual, sale, filler string
		}{
			{"zero actual", "0", "0", "0"},
			{"negative sale", "100", "-1", "0"},
			{"negative filler", "100", "0", "-1"},
			{"split above actual", "14500", "10000", "4501"},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				uc := NewConversionUseCase(nil, nil, nil)
				_, err := uc.Finish(context.Background(), FinishConversionCommand{
					BatchID: "b-1", ActualOutputKg: dec(tc.actual), ForSaleKg: dec(tc.sale), ForFillerKg: dec(tc.filler),
				})
				if !errors.Is(err, ErrInvalidSplit) {
					t.Fatalf("expected ErrInvalidSplit, got %v", err)
				}
			})
		}
	})

	t.Run("missing batch id", func(t *testing.T) {
		uc := NewConversionUseCase(nil, nil, nil)
		_, err := uc.Finish(context.Background(), FinishConversionCommand{BatchID: " ", ActualOutputKg: dec("1")})
		if !errors.Is(err, ErrInvalidBatchID) {
			t.Fatalf("expected ErrInvalidBatchID, got %v", err)
		}
	})

	t.Run("idle kettle", func(t *testing.T) {
		uc, _ := newKettle(t)
		_, err := uc.Finish(context.Background(), FinishConversionCommand{BatchID: "b-1", ActualOutputKg: dec("10"), ForSaleKg: dec("10")})
		if !errors.Is(err, entities.ErrNoActiveProcess) {
			t.Fatalf("expected ErrNoActiveProcess, got %v", err)
		}
	})

	t.Run("other batch id", func(t *testing.T) {
		uc, _ := newKettle(t)
		if _, err := uc.Start(context.Background(), referenceInputs()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		_, err := uc.Finish(context.Background(), FinishConversionCommand{BatchID: "someone-else", ActualOutputKg: dec("10"), ForSaleKg: dec("10")})
		if !errors.Is(err, entities.ErrNoActiveProcess) {
			t.Fatalf("expected ErrNoActiveProcess, got %v", err)
		}
	})
}

func TestConversionUseCase_ReferenceScenario(t *testing.T) {
	uc, store := newKettle(t)
	ctx := context.Background()

	b, err := uc.Start(ctx, referenceInputs())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !b.ProjectedOutputKg().Equal(dec("14500")) || !b.UnitCost.Equal(dec("771")) {
		t.Fatalf("unexpected batch projected=%s unit=%s", b.ProjectedOutputKg(), b.UnitCost)
	}
	if !store.get(entities.CategoryBN3).QuantityOnHand.Equal(dec("20000")) {
		t.Fatalf("raw stock must only be debited at finish")
	}

	cmd := FinishConversionCommand{BatchID: b.ID, ActualOutputKg: dec("14500"), ForSaleKg: dec("10000"), ForFillerKg: dec("4500")}
	res, err := uc.Finish(ctx, cmd)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.CreditedSaleKg.Equal(dec("10000")) || !res.CreditedFillerKg.Equal(dec("4500")) || !res.UnallocatedKg.IsZero() {
		t.Fatalf("unexpected result %+v", res)
	}

	bn3 := store.get(entities.CategoryBN3)
	bn5 := store.get(entities.CategoryBN5)
	blend := store.get(entities.CategoryBN5Blend)
	if !bn3.QuantityOnHand.Equal(dec("5000")) {
		t.Fatalf("expected 5000kg BN-3 left, got %s", bn3.QuantityOnHand)
	}
	if !bn5.QuantityOnHand.Equal(dec("10000")) || !bn5.UnitPrice.Equal(dec("771")) {
		t.Fatalf("unexpected bn5 stock %+v", bn5)
	}
	if !blend.QuantityOnHand.Equal(dec("4500")) || !blend.UnitPrice.Equal(dec("771")) {
		t.Fatalf("unexpected bn5_blend stock %+v", blend)
	}

	archived, err := uc.GetBatch(ctx, b.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if archived.State != entities.ConversionStateCompleted || archived.FinishedAt.IsZero() {
		t.Fatalf("expected archived completed batch, got %+v", archived)
	}
	rec := store.records[res.ProductionRecordID]
	if rec.Kind != entities.ProductionKindConversion || rec.SourceID != b.ID || len(rec.CostRows) != 5 {
		t.Fatalf("unexpected production record %+v", rec)
	}

	// retrying the same finish must not credit twice
	_, err = uc.Finish(ctx, cmd)
	if !errors.Is(err, entities.ErrNoActiveProcess) {
		t.Fatalf("expected ErrNoActiveProcess on retry, got %v", err)
	}
	if !store.get(entities.CategoryBN5).QuantityOnHand.Equal(dec("10000")) {
		t.Fatalf("retry credited stock again")
	}

	if _, err := uc.Start(ctx, referenceInputs()); !errors.Is(err, ErrStockInsufficient) {
		t.Fatalf("expected ErrStockInsufficient with 5000kg left, got %v", err)
	}
}

func TestConversionUseCase_FinishValuationAndRemainder(t *testing.T) {
	uc, store := newKettle(t)
	store.seed(entities.CategoryBN5, "10000", "700")
	ctx := context.Background()

	b, err := uc.Start(ctx, referenceInputs())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	res, err := uc.Finish(ctx, FinishConversionCommand{BatchID: b.ID, ActualOutputKg: dec("14000"), ForSaleKg: dec("10000"), ForFillerKg: dec("3000")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.UnallocatedKg.Equal(dec("1000")) {
		t.Fatalf("expected 1000kg unallocated, got %s", res.UnallocatedKg)
	}
	bn5 := store.get(entities.CategoryBN5)
	// (10000×700 + 10000×771) / 20000
	if !bn5.QuantityOnHand.Equal(dec("20000")) || !bn5.UnitPrice.Equal(dec("735.5")) {
		t.Fatalf("unexpected bn5 stock %+v", bn5)
	}
	if !store.get(entities.CategoryBN5Blend).QuantityOnHand.Equal(dec("3000")) {
		t.Fatalf("expected 3000kg filler-bound, remainder must not be credited")
	}
}

func TestConversionUseCase_FinishNeverDrivesStockNegative(t *testing.T) {
	uc, store := newKettle(t)
	ctx := context.Background()

	b, err := uc.Start(ctx, referenceInputs())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// BN-3 consumed elsewhere while boiling
	if _, err := (memLedger{store}).Debit(ctx, entities.CategoryBN3, dec("10000")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = uc.Finish(ctx, FinishConversionCommand{BatchID: b.ID, ActualOutputKg: dec("14500"), ForSaleKg: dec("14500")})
	var stockErr *entities.InsufficientStockError
	if !errors.As(err, &stockErr) || stockErr.Category != entities.CategoryBN3 {
		t.Fatalf("expected bn3 InsufficientStockError, got %v", err)
	}
	if !store.get(entities.CategoryBN3).QuantityOnHand.Equal(dec("10000")) || !store.get(entities.CategoryBN5).QuantityOnHand.IsZero() {
		t.Fatalf("failed finish must not move stock")
	}
	if active, _ := (memBatches{store}).GetActive(ctx); active.ID != b.ID {
		t.Fatalf("failed finish must keep the batch boiling")
	}
}

func TestConversionUseCase_FinishStoreConflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIConversionRepository(ctrl)
	ledger := mock_interfaces.NewMockIMaterialLedger(ctrl)
	pub := mock_interfaces.NewMockIProcessEventPublisher(ctrl)
	uc := NewConversionUseCase(repo, ledger, pub)

	active := entities.ConversionBatch{ID: "b-1", State: entities.ConversionStateBoiling, StartedAt: fixedNow, Inputs: referenceInputs()}
	repo.EXPECT().GetActive(gomock.Any()).Return(active, nil)
	expectConversionPrices(ledger, "20000")
	ledger.EXPECT().GetStock(gomock.Any(), entities.CategoryBN5).Return(entities.MaterialStock{}, nil)
	repo.EXPECT().Complete(gomock.Any(), gomock.Any(), gomock.Len(2), gomock.Any()).Return(entities.ErrNoActiveProcess)

	_, err := uc.Finish(context.Background(), FinishConversionCommand{BatchID: "b-1", ActualOutputKg: dec("14500"), ForSaleKg: dec("14500")})
	if !errors.Is(err, entities.ErrNoActiveProcess) {
		t.Fatalf("expected ErrNoActiveProcess, got %v", err)
	}
}

func TestConversionUseCase_GetBatch(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewConversionUseCase(nil, nil, nil)
		_, err := uc.GetBatch(context.Background(), "")
		if !errors.Is(err, ErrInvalidBatchID) {
			t.Fatalf("expected ErrInvalidBatchID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIConversionRepository(ctrl)
		uc := NewConversionUseCase(repo, nil, nil)
		repo.EXPECT().GetByID(gomock.Any(), "b-1").Return(entities.ConversionBatch{}, nil)

		_, err := uc.GetBatch(context.Background(), " b-1 ")
		if !errors.Is(err, ErrBatchNotFound) {
			t.Fatalf("expected ErrBatchNotFound, got %v", err)
		}
	})
}
