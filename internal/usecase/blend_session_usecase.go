package usecase

import (
	"bitumen_production/internal/domain/blending"
	"bitumen_production/internal/domain/costing"
	"bitumen_production/internal/domain/entities"
	"bitumen_production/internal/usecase/interfaces"
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrEmptyBlend = errors.New("blend mass must be positive")

type ExtraCostInput struct {
	Name      string
	Quantity  decimal.Decimal
	UnitPrice decimal.Decimal
}

type PackagingEntryInput struct {
	Type           entities.PackagingType
	BlendPortionKg decimal.Decimal
	SecondaryQty   int64
	PaperWrapped   bool
}

// BlendSessionCommand is the full operator form of one packaging run.
type BlendSessionCommand struct {
	Blend     entities.BlendComposition
	Utilities entities.UtilityCosts
	Extras    []ExtraCostInput
	Entries   []PackagingEntryInput
}

type BlendSessionResult struct {
	SessionID   string
	Sheet       costing.BlendSheet
	Entries     []entities.PackagingEntry
	Extras      []entities.ExtraCost
	AllocatedKg decimal.Decimal
	RemainingKg decimal.Decimal
}

// IBlendSessionUseCase prices and finalizes BN-5 + Mel packaging runs.
//
// Sessions are rebuilt from the command on every call; nothing is kept
// between requests.
type IBlendSessionUseCase interface {
	Recompute(ctx context.Context, cmd BlendSessionCommand) (BlendSessionResult, error)
	Finalize(ctx context.Context, cmd BlendSessionCommand) (entities.ProductionRecord, error)
}

type BlendSessionUseCase struct {
	ledger  interfaces.IMaterialLedger
	records interfaces.IProductionRecordRepository
	opts    blending.Options
	clock   func() time.Time
}

var _ IBlendSessionUseCase = (*BlendSessionUseCase)(nil)

func NewBlendSessionUseCase(ledger interfaces.IMaterialLedger, records interfaces.IProductionRecordRepository, opts blending.Options) *BlendSessionUseCase {
	return &BlendSessionUseCase{
		ledger:  ledger,
		records: records,
		opts:    opts,
		clock:   func() time.Time { return time.Now().UTC() },
	}
}

func (u *BlendSessionUseCase) Recompute(ctx context.Context, cmd BlendSessionCommand) (BlendSessionResult, error) {
	s, err := u.priceSession(ctx, cmd)
	if err != nil {
		return BlendSessionResult{}, err
	}
	return BlendSessionResult{
		SessionID:   s.ID(),
		Sheet:       s.Sheet(),
		Entries:     s.Entries(),
		Extras:      s.Extras(),
		AllocatedKg: s.AllocatedKg(),
		RemainingKg: s.RemainingKg(),
	}, nil
}

func (u *BlendSessionUseCase) Finalize(ctx context.Context, cmd BlendSessionCommand) (entities.ProductionRecord, error) {
	log.Printf("[blend][usecase] finalize requested bn5_kg=%s mel_kg=%s entries=%d", cmd.Blend.BN5AmountKg, cmd.Blend.FillerAmountKg, len(cmd.Entries))

	if !cmd.Blend.TotalKg().IsPositive() {
		return entities.ProductionRecord{}, ErrEmptyBlend
	}

	s, err := u.priceSession(ctx, cmd)
	if err != nil {
		return entities.ProductionRecord{}, err
	}

	movements := s.Consumption()
	for _, m := range movements {
		stock, err := u.ledger.GetStock(ctx, m.Category)
		if err != nil {
			log.Printf("[blend][usecase] failed loading stock category=%s err=%v", m.Category, err)
			return entities.ProductionRecord{}, err
		}
		if stock.QuantityOnHand.LessThan(m.Amount()) {
			log.Printf("[blend][usecase] insufficient stock category=%s requested=%s on_hand=%s", m.Category, m.Amount(), stock.QuantityOnHand)
			return entities.ProductionRecord{}, &entities.InsufficientStockError{Category: m.Category, Requested: m.Amount()}
		}
	}

	blend := s.Blend()
	utilities := s.Utilities()
	sheet := s.Sheet()
	record := entities.ProductionRecord{
		ID:               uuid.NewString(),
		Kind:             entities.ProductionKindBlend,
		SourceID:         s.ID(),
		CostRows:         sheet.Rows,
		TotalCost:        sheet.TotalCost,
		UnitCost:         sheet.UnitCost,
		OutputKg:         sheet.TotalMassKg,
		Blend:            &blend,
		Utilities:        &utilities,
		PackagingEntries: s.Entries(),
		Movements:        movements,
		CreatedAt:        u.clock(),
	}

	created, err := u.records.Commit(ctx, record, movements)
	if err != nil {
		log.Printf("[blend][usecase] commit failed session_id=%s err=%v", s.ID(), err)
		return entities.ProductionRecord{}, err
	}
	log.Printf("[blend][usecase] finalize ok session_id=%s record_id=%s unit_cost=%s", s.ID(), created.ID, created.UnitCost)
	return created, nil
}

// priceSession replays the form into a session and prices it against the
// live ledger.
func (u *BlendSessionUseCase) priceSession(ctx context.Context, cmd BlendSessionCommand) (*blending.Session, error) {
	s, err := blending.NewSession(cmd.Blend, cmd.Utilities, u.opts)
	if err != nil {
		return nil, err
	}
	for _, x := range cmd.Extras {
		if _, err := s.AddExtraCost(x.Name, x.Quantity, x.UnitPrice); err != nil {
			return nil, err
		}
	}
	for _, e := range cmd.Entries {
		if _, err := s.AddPackagingEntry(e.Type, e.BlendPortionKg, e.SecondaryQty, e.PaperWrapped); err != nil {
			return nil, err
		}
	}

	prices, err := u.readBlendPrices(ctx)
	if err != nil {
		return nil, err
	}
	s.RecomputeCosts(prices)
	return s, nil
}

func (u *BlendSessionUseCase) readBlendPrices(ctx context.Context) (costing.BlendPrices, error) {
	var p costing.BlendPrices
	targets := []struct {
		category entities.MaterialCategory
		dst      *decimal.Decimal
	}{
		{entities.CategoryBN5Blend, &p.BN5},
		{entities.CategoryMel, &p.Filler},
		{entities.CategoryBag, &p.Bag},
		{entities.CategoryKraftPaper, &p.KraftPaper},
		{entities.CategoryThread, &p.Thread},
		{entities.CategoryElectricity, &p.Electricity},
		{entities.CategoryGas, &p.Gas},
	}
	for _, t := range targets {
		stock, err := u.ledger.GetStock(ctx, t.category)
		if err != nil {
			log.Printf("[blend][usecase] failed loading price category=%s err=%v", t.category, err)
			return costing.BlendPrices{}, err
		}
		*t.dst = stock.UnitPrice
	}
	return p, nil
}
