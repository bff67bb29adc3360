// Package costing computes unit costs from weighted cost components. Every
// function is pure; prices are passed in by the caller.
package costing

import (
	"bitumen_production/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// Adjustment is the empirical correction applied to blended unit costs:
// unit = round(total/mass × Factor − Offset).
type Adjustment struct {
	Factor decimal.Decimal
	Offset decimal.Decimal
}

// NoAdjustment leaves the raw per-kilogram cost untouched (apart from rounding).
var NoAdjustment = Adjustment{Factor: decimal.NewFromInt(1), Offset: decimal.Zero}

func NewComponent(name string, quantity, unitPrice decimal.Decimal) entities.CostComponent {
	return entities.CostComponent{
		Name:      name,
		Quantity:  quantity,
		UnitPrice: unitPrice,
		Total:     quantity.Mul(unitPrice),
	}
}

// FlatComponent is a lump-sum row (quantity 1).
func FlatComponent(name string, amount decimal.Decimal) entities.CostComponent {
	return NewComponent(name, decimal.NewFromInt(1), amount)
}

func Total(rows []entities.CostComponent) decimal.Decimal {
	sum := decimal.Zero
	for _, r := range rows {
		sum = sum.Add(r.Total)
	}
	return sum
}

// CeilUnitCost rounds total/mass up to a whole currency unit so a batch is
// never undercosted. Non-positive mass yields zero.
func CeilUnitCost(total, massKg decimal.Decimal) decimal.Decimal {
	if !massKg.IsPositive() {
		return decimal.Zero
	}
	return total.Div(massKg).Ceil()
}

// AdjustedUnitCost applies adj to total/mass and rounds half away from zero.
// Non-positive mass yields zero.
func AdjustedUnitCost(total, massKg decimal.Decimal, adj Adjustment) decimal.Decimal {
	if !massKg.IsPositive() {
		return decimal.Zero
	}
	return total.Div(massKg).Mul(adj.Factor).Sub(adj.Offset).Round(0)
}

// WeightedAverage values a receipt of inQty at inPrice into existing stock.
// NewPrice = (stockQty×stockPrice + inQty×inPrice) / (stockQty + inQty)
func WeightedAverage(stockQty, stockPrice, inQty, inPrice decimal.Decimal) decimal.Decimal {
	if stockQty.IsNegative() {
		stockQty = decimal.Zero
	}
	sum := stockQty.Add(inQty)
	if sum.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	num := stockQty.Mul(stockPrice).Add(inQty.Mul(inPrice))
	return num.Div(sum).Round(4)
}
