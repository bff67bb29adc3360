package interfaces

import (
	"bitumen_production/internal/domain/entities"
	"context"
)

// IConversionRepository persists kettle batches.
//
// The store owns the single-flight guarantee:
//   - CreateActive fails with entities.ErrProcessAlreadyRunning when a batch already
//     occupies the active slot
//   - Complete releases the slot only if it still holds batch.ID, applying the
//     movements and writing the archive and the record in the same transaction;
//     it fails with entities.ErrNoActiveProcess when the slot was already released
//     and with *entities.InsufficientStockError when a debit cannot be covered
//
// GetActive returns a zero ConversionBatch when the kettle is idle.
type IConversionRepository interface {
	CreateActive(ctx context.Context, b entities.ConversionBatch) (entities.ConversionBatch, error)
	GetActive(ctx context.Context) (entities.ConversionBatch, error)
	GetByID(ctx context.Context, id string) (entities.ConversionBatch, error)
	Complete(ctx context.Context, b entities.ConversionBatch, movements []entities.StockMovement, record entities.ProductionRecord) error
}
