package usecase

import (
	"bitumen_production/internal/domain/entities"
	"context"
	"sync"

	"github.com/shopspring/decimal"
)

// memStore is an in-memory store with the same atomicity as the real
// adapters: one mutex covers the active slot, stock and records.
type memStore struct {
	mu      sync.Mutex
	stock   map[entities.MaterialCategory]entities.MaterialStock
	active  entities.ConversionBatch
	batches map[string]entities.ConversionBatch
	records map[string]entities.ProductionRecord
}

func newMemStore() *memStore {
	return &memStore{
		stock:   map[entities.MaterialCategory]entities.MaterialStock{},
		batches: map[string]entities.ConversionBatch{},
		records: map[string]entities.ProductionRecord{},
	}
}

func (s *memStore) seed(c entities.MaterialCategory, qty, price string) {
	s.stock[c] = entities.MaterialStock{
		Category:       c,
		QuantityOnHand: decimal.RequireFromString(qty),
		UnitPrice:      decimal.RequireFromString(price),
	}
}

func (s *memStore) get(c entities.MaterialCategory) entities.MaterialStock {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stock[c]
}

// applyLocked checks every debit before touching anything.
func (s *memStore) applyLocked(movements []entities.StockMovement) error {
	for _, m := range movements {
		if m.IsDebit() && s.stock[m.Category].QuantityOnHand.LessThan(m.Amount()) {
			return &entities.InsufficientStockError{Category: m.Category, Requested: m.Amount()}
		}
	}
	for _, m := range movements {
		cur := s.stock[m.Category]
		cur.Category = m.Category
		cur.QuantityOnHand = cur.QuantityOnHand.Add(m.Delta)
		if m.UnitPrice.Valid {
			cur.UnitPrice = m.UnitPrice.Decimal
		}
		s.stock[m.Category] = cur
	}
	return nil
}

type memLedger struct{ *memStore }

func (l memLedger) GetStock(_ context.Context, c entities.MaterialCategory) (entities.MaterialStock, error) {
	return l.get(c), nil
}

func (l memLedger) ListStock(_ context.Context) ([]entities.MaterialStock, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]entities.MaterialStock, 0, len(l.stock))
	for _, s := range l.stock {
		out = append(out, s)
	}
	return out, nil
}

func (l memLedger) Debit(_ context.Context, c entities.MaterialCategory, amount decimal.Decimal) (entities.MaterialStock, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.applyLocked([]entities.StockMovement{entities.DebitMovement(c, amount)}); err != nil {
		return entities.MaterialStock{}, err
	}
	return l.stock[c], nil
}

func (l memLedger) Credit(_ context.Context, c entities.MaterialCategory, amount decimal.Decimal, price decimal.NullDecimal) (entities.MaterialStock, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	m := entities.CreditMovement(c, amount)
	m.UnitPrice = price
	if err := l.applyLocked([]entities.StockMovement{m}); err != nil {
		return entities.MaterialStock{}, err
	}
	return l.stock[c], nil
}

func (l memLedger) SetUnitPrice(_ context.Context, c entities.MaterialCategory, price decimal.Decimal) (entities.MaterialStock, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	cur := l.stock[c]
	cur.Category = c
	cur.UnitPrice = price
	l.stock[c] = cur
	return cur, nil
}

type memBatches struct{ *memStore }

func (b memBatches) CreateActive(_ context.Context, batch entities.ConversionBatch) (entities.ConversionBatch, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.active.ID != "" {
		return entities.ConversionBatch{}, entities.ErrProcessAlreadyRunning
	}
	b.active = batch
	return batch, nil
}

func (b memBatches) GetActive(_ context.Context) (entities.ConversionBatch, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.active, nil
}

func (b memBatches) GetByID(_ context.Context, id string) (entities.ConversionBatch, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.active.ID == id {
		return b.active, nil
	}
	return b.batches[id], nil
}

func (b memBatches) Complete(_ context.Context, batch entities.ConversionBatch, movements []entities.StockMovement, record entities.ProductionRecord) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.active.ID == "" || b.active.ID != batch.ID {
		return entities.ErrNoActiveProcess
	}
	if err := b.applyLocked(movements); err != nil {
		return err
	}
	b.active = entities.ConversionBatch{}
	b.batches[batch.ID] = batch
	b.records[record.ID] = record
	return nil
}

type memRecords struct{ *memStore }

func (r memRecords) Commit(_ context.Context, rec entities.ProductionRecord, movements []entities.StockMovement) (entities.ProductionRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.applyLocked(movements); err != nil {
		return entities.ProductionRecord{}, err
	}
	r.records[rec.ID] = rec
	return rec, nil
}

func (r memRecords) GetByID(_ context.Context, id string) (entities.ProductionRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.records[id], nil
}
