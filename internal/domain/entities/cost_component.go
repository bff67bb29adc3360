package entities

import "github.com/shopspring/decimal"

// CostComponent is one row of a cost sheet: Total = Quantity × UnitPrice.
type CostComponent struct {
	Name      string          `json:"name"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Total     decimal.Decimal `json:"total"`
}

// ExtraCost is an operator-added cost row on a blend session.
type ExtraCost struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}
