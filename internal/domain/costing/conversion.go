package costing

import (
	"bitumen_production/internal/domain/entities"

	"github.com/shopspring/decimal"
)

const (
	RowRawMaterial = "BN-3"
	RowGas         = "Gas"
	RowElectricity = "Electricity"
	RowLabor       = "Labor"
	RowExtra       = "Extra"
)

// ConversionSheet is the cost breakdown of a kettle batch.
type ConversionSheet struct {
	Rows              []entities.CostComponent
	TotalCost         decimal.Decimal
	ProjectedOutputKg decimal.Decimal
	UnitCost          decimal.Decimal
}

// ConversionCost prices a batch:
//
//	total = raw×rawPrice + gas×gasPrice + kwh×kwhPrice + projected×laborRate + extra
//	unit  = ceil(total / projected), 0 when projected <= 0
func ConversionCost(in entities.ConversionInputs, p entities.ConversionPrices) ConversionSheet {
	projected := in.ProjectedOutputKg()
	rows := []entities.CostComponent{
		NewComponent(RowRawMaterial, in.RawAmountKg, p.RawUnitPrice),
		NewComponent(RowGas, in.GasVolume, p.GasUnitPrice),
		NewComponent(RowElectricity, in.ElectricityKwh, p.ElectricityUnitPrice),
		NewComponent(RowLabor, decimal.Max(projected, decimal.Zero), in.LaborRatePerKg),
		FlatComponent(RowExtra, in.ExtraCost),
	}
	total := Total(rows)
	return ConversionSheet{
		Rows:              rows,
		TotalCost:         total,
		ProjectedOutputKg: projected,
		UnitCost:          CeilUnitCost(total, projected),
	}
}
