package interfaces

import (
	"bitumen_production/internal/domain/entities"
	"context"
)

// IProductionRecordRepository stores production history.
//
// Commit applies the record's stock movements and inserts the record
// atomically; nothing is written when any debit would go below zero.
type IProductionRecordRepository interface {
	Commit(ctx context.Context, r entities.ProductionRecord, movements []entities.StockMovement) (entities.ProductionRecord, error)
	GetByID(ctx context.Context, id string) (entities.ProductionRecord, error)
}
