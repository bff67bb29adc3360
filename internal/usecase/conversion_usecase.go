package usecase

import (
	"bitumen_production/internal/domain/costing"
	"bitumen_production/internal/domain/entities"
	"bitumen_production/internal/usecase/interfaces"
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidConversionInput = errors.New("invalid conversion input")
	ErrNonPositiveOutput      = errors.New("projected output must be positive")
	ErrStockInsufficient      = errors.New("raw material stock insufficient")
	ErrInvalidSplit           = errors.New("invalid output split")
	ErrInvalidBatchID         = errors.New("invalid batch id")
	ErrBatchNotFound          = errors.New("batch not found")
)

// FinishConversionCommand carries the operator's weighed output of a batch.
type FinishConversionCommand struct {
	BatchID        string
	ActualOutputKg decimal.Decimal
	ForSaleKg      decimal.Decimal
	ForFillerKg    decimal.Decimal
}

// FinishConversionResult reports what was credited to stock.
type FinishConversionResult struct {
	BatchID            string
	CreditedSaleKg     decimal.Decimal
	CreditedFillerKg   decimal.Decimal
	UnallocatedKg      decimal.Decimal
	UnitCost           decimal.Decimal
	TotalCost          decimal.Decimal
	ProductionRecordID string
}

// IConversionUseCase drives the BN-3 -> BN-5 kettle.
//
//   - Preview => cost sheet for inputs, no side effects
//   - Start   => Idle -> Boiling
//   - Finish  => Boiling -> Completed (archived) -> Idle
type IConversionUseCase interface {
	Preview(ctx context.Context, in entities.ConversionInputs) (costing.ConversionSheet, error)
	Start(ctx context.Context, in entities.ConversionInputs) (entities.ConversionBatch, error)
	Finish(ctx context.Context, cmd FinishConversionCommand) (FinishConversionResult, error)
	GetBatch(ctx context.Context, id string) (entities.ConversionBatch, error)
}

type ConversionUseCase struct {
	repo      interfaces.IConversionRepository
	ledger    interfaces.IMaterialLedger
	publisher interfaces.IProcessEventPublisher
	clock     func() time.Time
}

var _ IConversionUseCase = (*ConversionUseCase)(nil)

// NewConversionUseCase wires the kettle. publisher may be nil when no event
// bus is configured; viewers then rely on polling only.
func NewConversionUseCase(repo interfaces.IConversionRepository, ledger interfaces.IMaterialLedger, publisher interfaces.IProcessEventPublisher) *ConversionUseCase {
	return &ConversionUseCase{
		repo:      repo,
		ledger:    ledger,
		publisher: publisher,
		clock:     func() time.Time { return time.Now().UTC() },
	}
}

func (u *ConversionUseCase) Preview(ctx context.Context, in entities.ConversionInputs) (costing.ConversionSheet, error) {
	if in.HasNegative() {
		return costing.ConversionSheet{}, ErrInvalidConversionInput
	}
	prices, _, err := u.readConversionPrices(ctx)
	if err != nil {
		return costing.ConversionSheet{}, err
	}
	return costing.ConversionCost(in, prices), nil
}

func (u *ConversionUseCase) Start(ctx context.Context, in entities.ConversionInputs) (entities.ConversionBatch, error) {
	log.Printf("[conversion][usecase] start requested raw_kg=%s waste_kg=%s", in.RawAmountKg, in.WasteAmountKg)

	if in.HasNegative() {
		return entities.ConversionBatch{}, ErrInvalidConversionInput
	}
	if !in.ProjectedOutputKg().IsPositive() {
		return entities.ConversionBatch{}, ErrNonPositiveOutput
	}

	// Fail fast for the common case; the store still guards the slot.
	active, err := u.repo.GetActive(ctx)
	if err != nil {
		log.Printf("[conversion][usecase] failed loading active batch err=%v", err)
		return entities.ConversionBatch{}, err
	}
	if active.IsBoiling() {
		log.Printf("[conversion][usecase] kettle busy batch_id=%s", active.ID)
		return entities.ConversionBatch{}, entities.ErrProcessAlreadyRunning
	}

	prices, rawOnHand, err := u.readConversionPrices(ctx)
	if err != nil {
		return entities.ConversionBatch{}, err
	}
	if in.RawAmountKg.GreaterThan(rawOnHand) {
		log.Printf("[conversion][usecase] raw stock insufficient requested=%s on_hand=%s", in.RawAmountKg, rawOnHand)
		return entities.ConversionBatch{}, ErrStockInsufficient
	}

	sheet := costing.ConversionCost(in, prices)
	b := entities.ConversionBatch{
		ID:        uuid.NewString(),
		State:     entities.ConversionStateBoiling,
		StartedAt: u.clock(),
		Inputs:    in,
		Prices:    prices,
		CostRows:  sheet.Rows,
		TotalCost: sheet.TotalCost,
		UnitCost:  sheet.UnitCost,
	}

	created, err := u.repo.CreateActive(ctx, b)
	if err != nil {
		log.Printf("[conversion][usecase] create active failed batch_id=%s err=%v", b.ID, err)
		return entities.ConversionBatch{}, err
	}
	log.Printf("[conversion][usecase] start ok batch_id=%s projected_kg=%s unit_cost=%s", created.ID, created.ProjectedOutputKg(), created.UnitCost)

	u.publish(ctx, entities.ProcessEvent{Type: entities.ProcessEventStarted, BatchID: created.ID, At: created.StartedAt})
	return created, nil
}

func (u *ConversionUseCase) Finish(ctx context.Context, cmd FinishConversionCommand) (FinishConversionResult, error) {
	batchID := strings.TrimSpace(cmd.BatchID)
	log.Printf("[conversion][usecase] finish requested batch_id=%q actual_kg=%s sale_kg=%s filler_kg=%s", batchID, cmd.ActualOutputKg, cmd.ForSaleKg, cmd.ForFillerKg)

	if batchID == "" {
		return FinishConversionResult{}, ErrInvalidBatchID
	}
	if !cmd.ActualOutputKg.IsPositive() || cmd.ForSaleKg.IsNegative() || cmd.ForFillerKg.IsNegative() {
		return FinishConversionResult{}, ErrInvalidSplit
	}
	if cmd.ForSaleKg.Add(cmd.ForFillerKg).GreaterThan(cmd.ActualOutputKg) {
		return FinishConversionResult{}, ErrInvalidSplit
	}

	active, err := u.repo.GetActive(ctx)
	if err != nil {
		log.Printf("[conversion][usecase] failed loading active batch err=%v", err)
		return FinishConversionResult{}, err
	}
	if !active.IsBoiling() || active.ID != batchID {
		log.Printf("[conversion][usecase] no active process for batch_id=%s", batchID)
		return FinishConversionResult{}, entities.ErrNoActiveProcess
	}

	prices, rawOnHand, err := u.readConversionPrices(ctx)
	if err != nil {
		return FinishConversionResult{}, err
	}
	raw := active.Inputs.RawAmountKg
	if raw.GreaterThan(rawOnHand) {
		return FinishConversionResult{}, &entities.InsufficientStockError{Category: entities.CategoryBN3, Requested: raw}
	}

	sheet := costing.ConversionCost(active.Inputs, prices)

	movements := []entities.StockMovement{entities.DebitMovement(entities.CategoryBN3, raw)}
	credits := []struct {
		category entities.MaterialCategory
		amount   decimal.Decimal
	}{
		{entities.CategoryBN5, cmd.ForSaleKg},
		{entities.CategoryBN5Blend, cmd.ForFillerKg},
	}
	for _, c := range credits {
		if !c.amount.IsPositive() {
			continue
		}
		stock, err := u.ledger.GetStock(ctx, c.category)
		if err != nil {
			log.Printf("[conversion][usecase] failed loading stock category=%s err=%v", c.category, err)
			return FinishConversionResult{}, err
		}
		price := costing.WeightedAverage(stock.QuantityOnHand, stock.UnitPrice, c.amount, sheet.UnitCost)
		movements = append(movements, entities.CreditMovementAtPrice(c.category, c.amount, price))
	}

	now := u.clock()
	archived := active
	archived.State = entities.ConversionStateCompleted
	archived.FinishedAt = now
	archived.Prices = prices
	archived.CostRows = sheet.Rows
	archived.TotalCost = sheet.TotalCost
	archived.UnitCost = sheet.UnitCost
	archived.ActualOutputKg = cmd.ActualOutputKg
	archived.ForSaleKg = cmd.ForSaleKg
	archived.ForFillerKg = cmd.ForFillerKg
	archived.UnallocatedKg = cmd.ActualOutputKg.Sub(cmd.ForSaleKg).Sub(cmd.ForFillerKg)

	record := entities.ProductionRecord{
		ID:        uuid.NewString(),
		Kind:      entities.ProductionKindConversion,
		SourceID:  archived.ID,
		CostRows:  sheet.Rows,
		TotalCost: sheet.TotalCost,
		UnitCost:  sheet.UnitCost,
		OutputKg:  cmd.ActualOutputKg,
		Movements: movements,
		CreatedAt: now,
	}

	if err := u.repo.Complete(ctx, archived, movements, record); err != nil {
		log.Printf("[conversion][usecase] complete failed batch_id=%s err=%v", archived.ID, err)
		return FinishConversionResult{}, err
	}
	log.Printf("[conversion][usecase] finish ok batch_id=%s record_id=%s unit_cost=%s unallocated_kg=%s", archived.ID, record.ID, sheet.UnitCost, archived.UnallocatedKg)

	u.publish(ctx, entities.ProcessEvent{Type: entities.ProcessEventFinished, BatchID: archived.ID, At: now})

	return FinishConversionResult{
		BatchID:            archived.ID,
		CreditedSaleKg:     cmd.ForSaleKg,
		CreditedFillerKg:   cmd.ForFillerKg,
		UnallocatedKg:      archived.UnallocatedKg,
		UnitCost:           sheet.UnitCost,
		TotalCost:          sheet.TotalCost,
		ProductionRecordID: record.ID,
	}, nil
}

func (u *ConversionUseCase) GetBatch(ctx context.Context, id string) (entities.ConversionBatch, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ConversionBatch{}, ErrInvalidBatchID
	}

	b, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.ConversionBatch{}, err
	}
	if b.ID == "" {
		return entities.ConversionBatch{}, ErrBatchNotFound
	}
	return b, nil
}

// readConversionPrices snapshots the ledger prices a batch is costed with,
// together with the BN-3 quantity on hand.
func (u *ConversionUseCase) readConversionPrices(ctx context.Context) (entities.ConversionPrices, decimal.Decimal, error) {
	raw, err := u.ledger.GetStock(ctx, entities.CategoryBN3)
	if err != nil {
		log.Printf("[conversion][usecase] failed loading stock category=%s err=%v", entities.CategoryBN3, err)
		return entities.ConversionPrices{}, decimal.Zero, err
	}
	gas, err := u.ledger.GetStock(ctx, entities.CategoryGas)
	if err != nil {
		log.Printf("[conversion][usecase] failed loading stock category=%s err=%v", entities.CategoryGas, err)
		return entities.ConversionPrices{}, decimal.Zero, err
	}
	elec, err := u.ledger.GetStock(ctx, entities.CategoryElectricity)
	if err != nil {
		log.Printf("[conversion][usecase] failed loading stock category=%s err=%v", entities.CategoryElectricity, err)
		return entities.ConversionPrices{}, decimal.Zero, err
	}
	return entities.ConversionPrices{
		RawUnitPrice:         raw.UnitPrice,
		GasUnitPrice:         gas.UnitPrice,
		ElectricityUnitPrice: elec.UnitPrice,
	}, raw.QuantityOnHand, nil
}

func (u *ConversionUseCase) publish(ctx context.Context, ev entities.ProcessEvent) {
	if u.publisher == nil {
		return
	}
	if err := u.publisher.Publish(ctx, ev); err != nil {
		log.Printf("[conversion][usecase] publish failed type=%s batch_id=%s err=%v", ev.Type, ev.BatchID, err)
	}
}
