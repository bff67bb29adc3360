package interfaces

import (
	"bitumen_production/internal/domain/entities"
	"context"

	"github.com/shopspring/decimal"
)

// IMaterialLedger abstracts the per-category stock ledger.
//
// Debit never drives a quantity below zero: the store rejects it with an
// *entities.InsufficientStockError. GetStock returns a zero MaterialStock
// (empty Category) for a category never stocked.
type IMaterialLedger interface {
	GetStock(ctx context.Context, category entities.MaterialCategory) (entities.MaterialStock, error)
	ListStock(ctx context.Context) ([]entities.MaterialStock, error)
	Debit(ctx context.Context, category entities.MaterialCategory, amount decimal.Decimal) (entities.MaterialStock, error)
	Credit(ctx context.Context, category entities.MaterialCategory, amount decimal.Decimal, unitPrice decimal.NullDecimal) (entities.MaterialStock, error)
	SetUnitPrice(ctx context.Context, category entities.MaterialCategory, unitPrice decimal.Decimal) (entities.MaterialStock, error)
}
