package response

import (
	"bitumen_production/internal/domain/costing"
	"bitumen_production/internal/domain/entities"
	"bitumen_production/internal/usecase"
	"time"
)

type ConversionPreviewResponse struct {
	CostRows          []CostRowResponse `json:"costRows"`
	TotalCost         float64           `json:"totalCost"`
	ProjectedOutputKg float64           `json:"projectedOutputKg"`
	UnitCost          float64           `json:"unitCost"`
}

func FromConversionSheet(s costing.ConversionSheet) ConversionPreviewResponse {
	return ConversionPreviewResponse{
		CostRows:          FromCostRows(s.Rows),
		TotalCost:         s.TotalCost.InexactFloat64(),
		ProjectedOutputKg: s.ProjectedOutputKg.InexactFloat64(),
		UnitCost:          s.UnitCost.InexactFloat64(),
	}
}

type StartConversionResponse struct {
	BatchID           string  `json:"batchId"`
	ProjectedUnitCost float64 `json:"projectedUnitCost"`
}

type FinishConversionResponse struct {
	BatchID            string  `json:"batchId"`
	CreditedSale       float64 `json:"creditedSale"`
	CreditedFiller     float64 `json:"creditedFiller"`
	UnallocatedKg      float64 `json:"unallocatedKg"`
	UnitCost           float64 `json:"unitCost"`
	TotalCost          float64 `json:"totalCost"`
	ProductionRecordID string  `json:"productionRecordId"`
}

func FromFinishResult(r usecase.FinishConversionResult) FinishConversionResponse {
	return FinishConversionResponse{
		BatchID:            r.BatchID,
		CreditedSale:       r.CreditedSaleKg.InexactFloat64(),
		CreditedFiller:     r.CreditedFillerKg.InexactFloat64(),
		UnallocatedKg:      r.UnallocatedKg.InexactFloat64(),
		UnitCost:           r.UnitCost.InexactFloat64(),
		TotalCost:          r.TotalCost.InexactFloat64(),
		ProductionRecordID: r.ProductionRecordID,
	}
}

type ConversionInputsResponse struct {
	RawAmountKg    float64 `json:"rawAmountKg"`
	WasteAmountKg  float64 `json:"wasteAmountKg"`
	GasVolume      float64 `json:"gasVolume"`
	ElectricityKwh float64 `json:"electricityKwh"`
	LaborRatePerKg float64 `json:"laborRatePerKg"`
	ExtraCost      float64 `json:"extraCost"`
}

func FromConversionInputs(in entities.ConversionInputs) ConversionInputsResponse {
	return ConversionInputsResponse{
		RawAmountKg:    in.RawAmountKg.InexactFloat64(),
		WasteAmountKg:  in.WasteAmountKg.InexactFloat64(),
		GasVolume:      in.GasVolume.InexactFloat64(),
		ElectricityKwh: in.ElectricityKwh.InexactFloat64(),
		LaborRatePerKg: in.LaborRatePerKg.InexactFloat64(),
		ExtraCost:      in.ExtraCost.InexactFloat64(),
	}
}

type ConversionBatchResponse struct {
	ID             string                   `json:"id"`
	State          string                   `json:"state"`
	StartedAt      time.Time                `json:"startedAt"`
	FinishedAt     *time.Time               `json:"finishedAt,omitempty"`
	Inputs         ConversionInputsResponse `json:"inputs"`
	CostRows       []CostRowResponse        `json:"costRows"`
	TotalCost      float64                  `json:"totalCost"`
	UnitCost       float64                  `json:"unitCost"`
	ActualOutputKg float64                  `json:"actualOutputKg"`
	ForSaleKg      float64                  `json:"forSaleKg"`
	ForFillerKg    float64                  `json:"forFillerKg"`
	UnallocatedKg  float64                  `json:"unallocatedKg"`
}

func FromConversionBatch(b entities.ConversionBatch) ConversionBatchResponse {
	resp := ConversionBatchResponse{
		ID:             b.ID,
		State:          string(b.State),
		StartedAt:      b.StartedAt,
		Inputs:         FromConversionInputs(b.Inputs),
		CostRows:       FromCostRows(b.CostRows),
		TotalCost:      b.TotalCost.InexactFloat64(),
		UnitCost:       b.UnitCost.InexactFloat64(),
		ActualOutputKg: b.ActualOutputKg.InexactFloat64(),
		ForSaleKg:      b.ForSaleKg.InexactFloat64(),
		ForFillerKg:    b.ForFillerKg.InexactFloat64(),
		UnallocatedKg:  b.UnallocatedKg.InexactFloat64(),
	}
	if !b.FinishedAt.IsZero() {
		t := b.FinishedAt
		resp.FinishedAt = &t
	}
	return resp
}
