package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// MaterialCategory identifies a stock line in the material ledger.
//
// Utilities (gas, electricity) only carry a unit price; their quantity is
// never debited.
type MaterialCategory string

const (
	CategoryBN3         MaterialCategory = "bn3"
	CategoryBN5         MaterialCategory = "bn5"
	CategoryBN5Blend    MaterialCategory = "bn5_blend"
	CategoryMel         MaterialCategory = "mel"
	CategoryBag         MaterialCategory = "bag"
	CategoryKraftPaper  MaterialCategory = "kraft_paper"
	CategoryThread      MaterialCategory = "thread"
	CategoryGas         MaterialCategory = "gas"
	CategoryElectricity MaterialCategory = "electricity"
)

// AllCategories lists every category known to the ledger, in display order.
var AllCategories = []MaterialCategory{
	CategoryBN3,
	CategoryBN5,
	CategoryBN5Blend,
	CategoryMel,
	CategoryBag,
	CategoryKraftPaper,
	CategoryThread,
	CategoryGas,
	CategoryElectricity,
}

func (c MaterialCategory) String() string { return string(c) }

func (c MaterialCategory) IsValid() bool {
	for _, known := range AllCategories {
		if c == known {
			return true
		}
	}
	return false
}

// IsUtility reports whether the category is a priced-only utility.
func (c MaterialCategory) IsUtility() bool {
	return c == CategoryGas || c == CategoryElectricity
}

// MaterialStock is the ledger view of one category.
//
// Storage model (DynamoDB):
//   - PK: category
//   - quantity / unit_price stored as numbers so updates can be conditional
type MaterialStock struct {
	Category       MaterialCategory `json:"category"`
	QuantityOnHand decimal.Decimal  `json:"quantity_on_hand"`
	UnitPrice      decimal.Decimal  `json:"unit_price"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

// StockMovement is one debit (negative delta) or credit (positive delta).
// UnitPrice, when valid, replaces the category price as part of a credit.
type StockMovement struct {
	Category  MaterialCategory    `json:"category"`
	Delta     decimal.Decimal     `json:"delta"`
	UnitPrice decimal.NullDecimal `json:"unit_price"`
}

func DebitMovement(category MaterialCategory, amount decimal.Decimal) StockMovement {
	return StockMovement{Category: category, Delta: amount.Neg()}
}

func CreditMovement(category MaterialCategory, amount decimal.Decimal) StockMovement {
	return StockMovement{Category: category, Delta: amount}
}

func CreditMovementAtPrice(category MaterialCategory, amount, unitPrice decimal.Decimal) StockMovement {
	return StockMovement{
		Category:  category,
		Delta:     amount,
		UnitPrice: decimal.NullDecimal{Decimal: unitPrice, Valid: true},
	}
}

func (m StockMovement) IsDebit() bool { return m.Delta.IsNegative() }

// Amount is the absolute quantity moved.
func (m StockMovement) Amount() decimal.Decimal { return m.Delta.Abs() }
