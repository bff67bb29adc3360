package postgres

import (
	"bitumen_production/internal/domain/entities"
	"bitumen_production/internal/usecase/interfaces"
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ConversionBatchRepo keeps every batch in one table. A partial unique index
// on state = 'boiling' is the single-flight guard: a second insert while a
// batch boils fails with a unique violation.
type ConversionBatchRepo struct{ pool *pgxpool.Pool }

var _ interfaces.IConversionRepository = (*ConversionBatchRepo)(nil)

func NewConversionBatchRepo(pool *pgxpool.Pool) *ConversionBatchRepo {
	return &ConversionBatchRepo{pool: pool}
}

const batchColumns = `id, state, started_at, finished_at, inputs, prices, cost_rows,
	total_cost::text, unit_cost::text, actual_output_kg::text, for_sale_kg::text,
	for_filler_kg::text, unallocated_kg::text`

func (r *ConversionBatchRepo) CreateActive(ctx context.Context, b entities.ConversionBatch) (entities.ConversionBatch, error) {
	inputs, err := json.Marshal(b.Inputs)
	if err != nil {
		return entities.ConversionBatch{}, err
	}
	prices, costRows, err := costDocuments(b)
	if err != nil {
		return entities.ConversionBatch{}, err
	}

	_, err = r.pool.Exec(ctx, `
		INSERT INTO conversion_batches (id, state, started_at, inputs, prices, cost_rows, total_cost, unit_cost)
		VALUES ($1, $2, $3, $4, $5, $6, $7::numeric, $8::numeric)
	`, b.ID, string(entities.ConversionStateBoiling), b.StartedAt, inputs, prices, costRows,
		b.TotalCost.String(), b.UnitCost.String())
	if err != nil {
		if isUniqueViolation(err) {
			return entities.ConversionBatch{}, entities.ErrProcessAlreadyRunning
		}
		return entities.ConversionBatch{}, err
	}
	return b, nil
}

func (r *ConversionBatchRepo) GetActive(ctx context.Context) (entities.ConversionBatch, error) {
	return r.getOne(ctx, `SELECT `+batchColumns+` FROM conversion_batches WHERE state = 'boiling'`)
}

func (r *ConversionBatchRepo) GetByID(ctx context.Context, id string) (entities.ConversionBatch, error) {
	return r.getOne(ctx, `SELECT `+batchColumns+` FROM conversion_batches WHERE id = $1`, id)
}

// Complete flips the batch out of boiling only if it is still boiling, then
// writes the record and applies the movements in the same transaction.
func (r *ConversionBatchRepo) Complete(ctx context.Context, b entities.ConversionBatch, movements []entities.StockMovement, record entities.ProductionRecord) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := archiveBatch(ctx, tx, b); err != nil {
		return err
	}

	record.Movements = movements
	if err := insertRecord(ctx, tx, record); err != nil {
		return err
	}
	if err := applyMovements(ctx, tx, record.ID, movements); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

type execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// archiveBatch moves a boiling batch to completed with the costs it was
// finished at, which may differ from the ones snapshotted at start.
func archiveBatch(ctx context.Context, ex execer, b entities.ConversionBatch) error {
	prices, costRows, err := costDocuments(b)
	if err != nil {
		return err
	}
	tag, err := ex.Exec(ctx, `
		UPDATE conversion_batches
		SET state = $2, finished_at = $3,
		    actual_output_kg = $4::numeric, for_sale_kg = $5::numeric,
		    for_filler_kg = $6::numeric, unallocated_kg = $7::numeric,
		    prices = $8, cost_rows = $9,
		    total_cost = $10::numeric, unit_cost = $11::numeric
		WHERE id = $1 AND state = 'boiling'
	`, b.ID, string(entities.ConversionStateCompleted), nullableTime(b.FinishedAt),
		b.ActualOutputKg.String(), b.ForSaleKg.String(), b.ForFillerKg.String(), b.UnallocatedKg.String(),
		prices, costRows, b.TotalCost.String(), b.UnitCost.String())
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return entities.ErrNoActiveProcess
	}
	return nil
}

func costDocuments(b entities.ConversionBatch) (prices, costRows []byte, err error) {
	if prices, err = json.Marshal(b.Prices); err != nil {
		return nil, nil, err
	}
	if costRows, err = json.Marshal(nonNil(b.CostRows)); err != nil {
		return nil, nil, err
	}
	return prices, costRows, nil
}

func (r *ConversionBatchRepo) getOne(ctx context.Context, query string, args ...any) (entities.ConversionBatch, error) {
	b, err := scanBatch(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entities.ConversionBatch{}, nil
		}
		return entities.ConversionBatch{}, err
	}
	return b, nil
}

func scanBatch(row pgx.Row) (entities.ConversionBatch, error) {
	var (
		b                         entities.ConversionBatch
		state                     string
		finishedAt                *time.Time
		inputs, prices, costRows  []byte
		total, unit, actual, sale string
		filler, unallocated       string
	)
	if err := row.Scan(&b.ID, &state, &b.StartedAt, &finishedAt, &inputs, &prices, &costRows,
		&total, &unit, &actual, &sale, &filler, &unallocated); err != nil {
		return entities.ConversionBatch{}, err
	}
	b.State = entities.ConversionState(state)
	if finishedAt != nil {
		b.FinishedAt = *finishedAt
	}
	if err := json.Unmarshal(inputs, &b.Inputs); err != nil {
		return entities.ConversionBatch{}, err
	}
	if err := json.Unmarshal(prices, &b.Prices); err != nil {
		return entities.ConversionBatch{}, err
	}
	if err := json.Unmarshal(costRows, &b.CostRows); err != nil {
		return entities.ConversionBatch{}, err
	}
	b.TotalCost = parseDecimal(total)
	b.UnitCost = parseDecimal(unit)
	b.ActualOutputKg = parseDecimal(actual)
	b.ForSaleKg = parseDecimal(sale)
	b.ForFillerKg = parseDecimal(filler)
	b.UnallocatedKg = parseDecimal(unallocated)
	return b, nil
}
