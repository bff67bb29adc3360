package request

import (
	"bitumen_production/internal/domain/entities"
	"bitumen_production/internal/usecase"
	"strings"

	"github.com/shopspring/decimal"
)

// ConversionInputsRequest is the body of preview and start. Quantities may be
// sent as JSON numbers or strings.
type ConversionInputsRequest struct {
	RawAmountKg    decimal.Decimal `json:"rawAmountKg"`
	WasteAmountKg  decimal.Decimal `json:"wasteAmountKg"`
	GasVolume      decimal.Decimal `json:"gasVolume"`
	ElectricityKwh decimal.Decimal `json:"electricityKwh"`
	LaborRatePerKg decimal.Decimal `json:"laborRatePerKg"`
	ExtraCost      decimal.Decimal `json:"extraCost"`
}

func (r ConversionInputsRequest) ToInputs() entities.ConversionInputs {
	return entities.ConversionInputs{
		RawAmountKg:    r.RawAmountKg,
		WasteAmountKg:  r.WasteAmountKg,
		GasVolume:      r.GasVolume,
		ElectricityKwh: r.ElectricityKwh,
		LaborRatePerKg: r.LaborRatePerKg,
		ExtraCost:      r.ExtraCost,
	}
}

type FinishConversionRequest struct {
	BatchID        string          `json:"batchId" binding:"required"`
	ActualOutputKg decimal.Decimal `json:"actualOutputKg"`
	ForSaleKg      decimal.Decimal `json:"forSaleKg"`
	ForFillerKg    decimal.Decimal `json:"forFillerKg"`
}

func (r FinishConversionRequest) ToCommand() usecase.FinishConversionCommand {
	return usecase.FinishConversionCommand{
		BatchID:        strings.TrimSpace(r.BatchID),
		ActualOutputKg: r.ActualOutputKg,
		ForSaleKg:      r.ForSaleKg,
		ForFillerKg:    r.ForFillerKg,
	}
}
