package postgres

import (
	"bitumen_production/internal/domain/entities"
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
)

const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

// nullableText carries an optional decimal as text for a ::numeric cast.
func nullableText(d decimal.NullDecimal) *string {
	if !d.Valid {
		return nil
	}
	s := d.Decimal.String()
	return &s
}

func nullableTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

func parseDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// applyMovements runs every movement inside tx. A debit only matches rows
// holding enough stock; zero affected rows means insufficient stock.
func applyMovements(ctx context.Context, tx pgx.Tx, recordID string, movements []entities.StockMovement) error {
	for _, m := range movements {
		if m.IsDebit() {
			tag, err := tx.Exec(ctx, `
				UPDATE material_stock
				SET quantity = quantity - $2::numeric, updated_at = now()
				WHERE category = $1 AND quantity >= $2::numeric
			`, string(m.Category), m.Amount().String())
			if err != nil {
				return err
			}
			if tag.RowsAffected() == 0 {
				return &entities.InsufficientStockError{Category: m.Category, Requested: m.Amount()}
			}
		} else {
			if _, err := tx.Exec(ctx, `
				INSERT INTO material_stock (category, quantity, unit_price)
				VALUES ($1, $2::numeric, COALESCE($3::numeric, 0))
				ON CONFLICT (category)
				DO UPDATE SET quantity = material_stock.quantity + EXCLUDED.quantity,
				              unit_price = COALESCE($3::numeric, material_stock.unit_price),
				              updated_at = now()
			`, string(m.Category), m.Amount().String(), nullableText(m.UnitPrice)); err != nil {
				return err
			}
		}

		var rid *string
		if recordID != "" {
			rid = &recordID
		}
		if _, err := tx.Exec(ctx, `
			INSERT INTO stock_movements (production_record_id, category, delta, unit_price)
			VALUES ($1, $2, $3::numeric, $4::numeric)
		`, rid, string(m.Category), m.Delta.String(), nullableText(m.UnitPrice)); err != nil {
			return err
		}
	}
	return nil
}
