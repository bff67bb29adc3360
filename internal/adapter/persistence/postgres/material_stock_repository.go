package postgres

import (
	"bitumen_production/internal/domain/entities"
	"bitumen_production/internal/usecase/interfaces"
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// MaterialStockRepo is the material ledger on Postgres. quantity carries a
// CHECK (quantity >= 0) on top of the guarded debit.
type MaterialStockRepo struct{ pool *pgxpool.Pool }

var _ interfaces.IMaterialLedger = (*MaterialStockRepo)(nil)

func NewMaterialStockRepo(pool *pgxpool.Pool) *MaterialStockRepo { return &MaterialStockRepo{pool: pool} }

const stockColumns = `category, quantity::text, unit_price::text, updated_at`

func scanStock(row pgx.Row) (entities.MaterialStock, error) {
	var (
		s          entities.MaterialStock
		cat        string
		qty, price string
	)
	if err := row.Scan(&cat, &qty, &price, &s.UpdatedAt); err != nil {
		return entities.MaterialStock{}, err
	}
	s.Category = entities.MaterialCategory(cat)
	s.QuantityOnHand = parseDecimal(qty)
	s.UnitPrice = parseDecimal(price)
	return s, nil
}

func (r *MaterialStockRepo) GetStock(ctx context.Context, category entities.MaterialCategory) (entities.MaterialStock, error) {
	s, err := scanStock(r.pool.QueryRow(ctx, `SELECT `+stockColumns+` FROM material_stock WHERE category = $1`, string(category)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entities.MaterialStock{}, nil
		}
		return entities.MaterialStock{}, err
	}
	return s, nil
}

func (r *MaterialStockRepo) ListStock(ctx context.Context) ([]entities.MaterialStock, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+stockColumns+` FROM material_stock ORDER BY category`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []entities.MaterialStock
	for rows.Next() {
		s, err := scanStock(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *MaterialStockRepo) Debit(ctx context.Context, category entities.MaterialCategory, amount decimal.Decimal) (entities.MaterialStock, error) {
	return r.applyOne(ctx, entities.DebitMovement(category, amount))
}

func (r *MaterialStockRepo) Credit(ctx context.Context, category entities.MaterialCategory, amount decimal.Decimal, unitPrice decimal.NullDecimal) (entities.MaterialStock, error) {
	m := entities.CreditMovement(category, amount)
	m.UnitPrice = unitPrice
	return r.applyOne(ctx, m)
}

func (r *MaterialStockRepo) SetUnitPrice(ctx context.Context, category entities.MaterialCategory, unitPrice decimal.Decimal) (entities.MaterialStock, error) {
	return scanStock(r.pool.QueryRow(ctx, `
		INSERT INTO material_stock (category, quantity, unit_price)
		VALUES ($1, 0, $2::numeric)
		ON CONFLICT (category)
		DO UPDATE SET unit_price = EXCLUDED.unit_price, updated_at = now()
		RETURNING `+stockColumns, string(category), unitPrice.String()))
}

func (r *MaterialStockRepo) applyOne(ctx context.Context, m entities.StockMovement) (entities.MaterialStock, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return entities.MaterialStock{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := applyMovements(ctx, tx, "", []entities.StockMovement{m}); err != nil {
		return entities.MaterialStock{}, err
	}
	s, err := scanStock(tx.QueryRow(ctx, `SELECT `+stockColumns+` FROM material_stock WHERE category = $1`, string(m.Category)))
	if err != nil {
		return entities.MaterialStock{}, err
	}
	return s, tx.Commit(ctx)
}
