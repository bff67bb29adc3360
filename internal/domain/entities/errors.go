package entities

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Errors shared between use cases and persistence adapters. Repositories
// return them when a store-level condition (unique slot, conditional debit)
// rejects a write.
var (
	ErrProcessAlreadyRunning = errors.New("process already running")
	ErrNoActiveProcess       = errors.New("no active process")
	ErrInsufficientStock     = errors.New("insufficient stock")
)

// InsufficientStockError names the first category that could not cover a debit.
type InsufficientStockError struct {
	Category  MaterialCategory
	Requested decimal.Decimal
}

func (e *InsufficientStockError) Error() string {
	if e.Requested.IsZero() {
		return fmt.Sprintf("insufficient stock: %s", e.Category)
	}
	return fmt.Sprintf("insufficient stock: %s (requested %s)", e.Category, e.Requested.String())
}

func (e *InsufficientStockError) Is(target error) bool {
	return target == ErrInsufficientStock
}
