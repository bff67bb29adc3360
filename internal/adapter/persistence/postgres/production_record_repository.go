package postgres

import (
	"bitumen_production/internal/domain/entities"
	"bitumen_production/internal/usecase/interfaces"
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ProductionRecordRepo struct{ pool *pgxpool.Pool }

var _ interfaces.IProductionRecordRepository = (*ProductionRecordRepo)(nil)

func NewProductionRecordRepo(pool *pgxpool.Pool) *ProductionRecordRepo {
	return &ProductionRecordRepo{pool: pool}
}

func (r *ProductionRecordRepo) Commit(ctx context.Context, rec entities.ProductionRecord, movements []entities.StockMovement) (entities.ProductionRecord, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return entities.ProductionRecord{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	rec.Movements = movements
	if err := insertRecord(ctx, tx, rec); err != nil {
		return entities.ProductionRecord{}, err
	}
	if err := applyMovements(ctx, tx, rec.ID, movements); err != nil {
		return entities.ProductionRecord{}, err
	}
	if err := tx.Commit(ctx); err != nil {
		return entities.ProductionRecord{}, err
	}
	return rec, nil
}

func (r *ProductionRecordRepo) GetByID(ctx context.Context, id string) (entities.ProductionRecord, error) {
	var (
		rec                           entities.ProductionRecord
		kind                          string
		costRows, blend, utilities    []byte
		entries, movements            []byte
		totalCost, unitCost, outputKg string
	)
	err := r.pool.QueryRow(ctx, `
		SELECT id, kind, source_id, cost_rows, total_cost::text, unit_cost::text, output_kg::text,
		       blend, utilities, packaging_entries, movements, created_at
		FROM production_records WHERE id = $1
	`, id).Scan(&rec.ID, &kind, &rec.SourceID, &costRows, &totalCost, &unitCost, &outputKg,
		&blend, &utilities, &entries, &movements, &rec.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entities.ProductionRecord{}, nil
		}
		return entities.ProductionRecord{}, err
	}

	rec.Kind = entities.ProductionKind(kind)
	rec.TotalCost = parseDecimal(totalCost)
	rec.UnitCost = parseDecimal(unitCost)
	rec.OutputKg = parseDecimal(outputKg)
	if err := json.Unmarshal(costRows, &rec.CostRows); err != nil {
		return entities.ProductionRecord{}, err
	}
	if err := json.Unmarshal(entries, &rec.PackagingEntries); err != nil {
		return entities.ProductionRecord{}, err
	}
	if err := json.Unmarshal(movements, &rec.Movements); err != nil {
		return entities.ProductionRecord{}, err
	}
	if len(blend) > 0 {
		rec.Blend = &entities.BlendComposition{}
		if err := json.Unmarshal(blend, rec.Blend); err != nil {
			return entities.ProductionRecord{}, err
		}
	}
	if len(utilities) > 0 {
		rec.Utilities = &entities.UtilityCosts{}
		if err := json.Unmarshal(utilities, rec.Utilities); err != nil {
			return entities.ProductionRecord{}, err
		}
	}
	return rec, nil
}

func insertRecord(ctx context.Context, tx pgx.Tx, rec entities.ProductionRecord) error {
	costRows, err := json.Marshal(nonNil(rec.CostRows))
	if err != nil {
		return err
	}
	entries, err := json.Marshal(nonNil(rec.PackagingEntries))
	if err != nil {
		return err
	}
	movements, err := json.Marshal(nonNil(rec.Movements))
	if err != nil {
		return err
	}
	var blend, utilities []byte
	if rec.Blend != nil {
		if blend, err = json.Marshal(rec.Blend); err != nil {
			return err
		}
	}
	if rec.Utilities != nil {
		if utilities, err = json.Marshal(rec.Utilities); err != nil {
			return err
		}
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO production_records
			(id, kind, source_id, cost_rows, total_cost, unit_cost, output_kg,
			 blend, utilities, packaging_entries, movements, created_at)
		VALUES ($1, $2, $3, $4, $5::numeric, $6::numeric, $7::numeric, $8, $9, $10, $11, $12)
	`, rec.ID, string(rec.Kind), rec.SourceID, costRows,
		rec.TotalCost.String(), rec.UnitCost.String(), rec.OutputKg.String(),
		blend, utilities, entries, movements, rec.CreatedAt)
	return err
}

// nonNil keeps empty slices as [] in jsonb columns declared NOT NULL.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
