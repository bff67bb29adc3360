package response

import (
	"bitumen_production/internal/domain/entities"
	"time"
)

type MovementResponse struct {
	Category  string   `json:"category"`
	Delta     float64  `json:"delta"`
	UnitPrice *float64 `json:"unitPrice,omitempty"`
}

type ProductionRecordResponse struct {
	ID               string                   `json:"id"`
	Kind             string                   `json:"kind"`
	SourceID         string                   `json:"sourceId"`
	CostRows         []CostRowResponse        `json:"costRows"`
	TotalCost        float64                  `json:"totalCost"`
	UnitCost         float64                  `json:"unitCost"`
	OutputKg         float64                  `json:"outputKg"`
	PackagingEntries []PackagingEntryResponse `json:"packagingEntries,omitempty"`
	Movements        []MovementResponse       `json:"movements"`
	CreatedAt        time.Time                `json:"createdAt"`
}

func FromProductionRecord(r entities.ProductionRecord) ProductionRecordResponse {
	resp := ProductionRecordResponse{
		ID:        r.ID,
		Kind:      string(r.Kind),
		SourceID:  r.SourceID,
		CostRows:  FromCostRows(r.CostRows),
		TotalCost: r.TotalCost.InexactFloat64(),
		UnitCost:  r.UnitCost.InexactFloat64(),
		OutputKg:  r.OutputKg.InexactFloat64(),
		Movements: make([]MovementResponse, 0, len(r.Movements)),
		CreatedAt: r.CreatedAt,
	}
	if len(r.PackagingEntries) > 0 {
		resp.PackagingEntries = FromPackagingEntries(r.PackagingEntries)
	}
	for _, m := range r.Movements {
		mr := MovementResponse{Category: string(m.Category), Delta: m.Delta.InexactFloat64()}
		if m.UnitPrice.Valid {
			p := m.UnitPrice.Decimal.InexactFloat64()
			mr.UnitPrice = &p
		}
		resp.Movements = append(resp.Movements, mr)
	}
	return resp
}
