package costing

import (
	"bitumen_production/internal/domain/entities"

	"github.com/shopspring/decimal"
)

const (
	RowBN5        = "BN-5"
	RowFiller     = "Mel"
	RowBags       = "Bags"
	RowKraftPaper = "Kraft paper"
	RowThread     = "Thread"
)

// BlendPrices are the live ledger prices used to cost a packaging run.
type BlendPrices struct {
	BN5         decimal.Decimal
	Filler      decimal.Decimal
	Bag         decimal.Decimal
	KraftPaper  decimal.Decimal
	Thread      decimal.Decimal
	Electricity decimal.Decimal
	Gas         decimal.Decimal
}

// BlendFactors hold the configurable constants of the blend formula.
type BlendFactors struct {
	Adjustment     Adjustment
	ThreadKgPerBag decimal.Decimal
}

// DefaultBlendFactors are the empirically observed packaging loss corrections.
func DefaultBlendFactors() BlendFactors {
	return BlendFactors{
		Adjustment: Adjustment{
			Factor: decimal.RequireFromString("1.0205"),
			Offset: decimal.NewFromInt(9),
		},
		ThreadKgPerBag: decimal.RequireFromString("0.015"),
	}
}

// BlendSheet is the cost breakdown of a blend packaging session.
type BlendSheet struct {
	Rows        []entities.CostComponent
	TotalCost   decimal.Decimal
	TotalMassKg decimal.Decimal
	ThreadKg    decimal.Decimal
	UnitCost    decimal.Decimal
}

// ThreadKg is the thread consumed to close bagCount bags.
func (f BlendFactors) ThreadKg(bagCount decimal.Decimal) decimal.Decimal {
	return bagCount.Mul(f.ThreadKgPerBag)
}

// BlendCost prices a blend:
//
//	total = bn5×bn5Price + mel×melPrice + bags×bagPrice + kraft×kraftPrice
//	      + (bags×threadKgPerBag)×threadPrice + kwh×kwhPrice + gas×gasPrice
//	      + labor + extra + Σ extras
//	unit  = round(total/(bn5+mel) × factor − offset)
func BlendCost(
	blend entities.BlendComposition,
	u entities.UtilityCosts,
	extras []entities.ExtraCost,
	p BlendPrices,
	f BlendFactors,
) BlendSheet {
	threadKg := f.ThreadKg(u.BagCount)
	rows := []entities.CostComponent{
		NewComponent(RowBN5, blend.BN5AmountKg, p.BN5),
		NewComponent(RowFiller, blend.FillerAmountKg, p.Filler),
		NewComponent(RowBags, u.BagCount, p.Bag),
		NewComponent(RowKraftPaper, u.KraftPaperKg, p.KraftPaper),
		NewComponent(RowThread, threadKg, p.Thread),
		NewComponent(RowElectricity, u.ElectricityKwh, p.Electricity),
		NewComponent(RowGas, u.GasVolume, p.Gas),
		FlatComponent(RowLabor, u.LaborFlatCost),
		FlatComponent(RowExtra, u.ExtraCost),
	}
	for _, x := range extras {
		rows = append(rows, NewComponent(x.Name, x.Quantity, x.UnitPrice))
	}

	total := Total(rows)
	mass := blend.TotalKg()
	return BlendSheet{
		Rows:        rows,
		TotalCost:   total,
		TotalMassKg: mass,
		ThreadKg:    threadKg,
		UnitCost:    AdjustedUnitCost(total, mass, f.Adjustment),
	}
}
