package postgres

import (
	"bitumen_production/internal/domain/entities"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
)

func TestIsUniqueViolation(t *testing.T) {
	dup := &pgconn.PgError{Code: "23505", ConstraintName: "conversion_batches_one_boiling"}
	if !isUniqueViolation(dup) {
		t.Fatalf("expected unique violation")
	}
	if !isUniqueViolation(fmt.Errorf("insert: %w", dup)) {
		t.Fatalf("expected wrapped unique violation")
	}
	if isUniqueViolation(&pgconn.PgError{Code: "23514"}) {
		t.Fatalf("check violation is not a unique violation")
	}
	if isUniqueViolation(errors.New("boom")) {
		t.Fatalf("plain error is not a unique violation")
	}
}

func TestNullableText(t *testing.T) {
	if nullableText(decimal.NullDecimal{}) != nil {
		t.Fatalf("expected nil for missing price")
	}
	got := nullableText(decimal.NewNullDecimal(decimal.RequireFromString("771.5")))
	if got == nil || *got != "771.5" {
		t.Fatalf("expected 771.5, got %v", got)
	}
}

func TestNullableTime(t *testing.T) {
	if nullableTime(time.Time{}) != nil {
		t.Fatalf("expected nil for zero time")
	}
	now := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	if got := nullableTime(now); got == nil || !got.Equal(now) {
		t.Fatalf("expected %v, got %v", now, got)
	}
}

func TestNonNil(t *testing.T) {
	var rows []entities.CostComponent
	if got := nonNil(rows); got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice")
	}
	rows = append(rows, entities.CostComponent{Name: "gas"})
	if got := nonNil(rows); len(got) != 1 {
		t.Fatalf("expected slice to pass through")
	}
}

func TestParseDecimal(t *testing.T) {
	if !parseDecimal("14500.000").Equal(decimal.NewFromInt(14500)) {
		t.Fatalf("expected 14500")
	}
	if !parseDecimal("not-a-number").IsZero() {
		t.Fatalf("expected zero for bad input")
	}
}
