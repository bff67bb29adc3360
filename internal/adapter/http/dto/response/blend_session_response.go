package response

import (
	"bitumen_production/internal/domain/entities"
	"bitumen_production/internal/usecase"
)

type PackagingEntryResponse struct {
	ID                string  `json:"id"`
	PackagingType     string  `json:"packagingType"`
	BlendPortionKg    float64 `json:"blendPortionKg"`
	SecondaryQty      int64   `json:"secondaryQty"`
	PaperWrapped      bool    `json:"paperWrapped"`
	DerivedRopeGrams  float64 `json:"derivedRopeGrams"`
	DerivedKraftGrams float64 `json:"derivedKraftGrams"`
}

func FromPackagingEntries(entries []entities.PackagingEntry) []PackagingEntryResponse {
	out := make([]PackagingEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, PackagingEntryResponse{
			ID:                e.ID,
			PackagingType:     string(e.Type),
			BlendPortionKg:    e.BlendPortionKg.InexactFloat64(),
			SecondaryQty:      e.SecondaryQty,
			PaperWrapped:      e.PaperWrapped,
			DerivedRopeGrams:  e.DerivedRopeGrams.InexactFloat64(),
			DerivedKraftGrams: e.DerivedKraftGrams.InexactFloat64(),
		})
	}
	return out
}

type BlendSessionResponse struct {
	SessionID        string                   `json:"sessionId"`
	CostRows         []CostRowResponse        `json:"costRows"`
	TotalCost        float64                  `json:"totalCost"`
	TotalMassKg      float64                  `json:"totalMassKg"`
	ThreadKg         float64                  `json:"threadKg"`
	UnitCost         float64                  `json:"unitCost"`
	PackagingEntries []PackagingEntryResponse `json:"packagingEntries"`
	AllocatedKg      float64                  `json:"allocatedKg"`
	RemainingKg      float64                  `json:"remainingKg"`
}

func FromBlendSession(r usecase.BlendSessionResult) BlendSessionResponse {
	return BlendSessionResponse{
		SessionID:        r.SessionID,
		CostRows:         FromCostRows(r.Sheet.Rows),
		TotalCost:        r.Sheet.TotalCost.InexactFloat64(),
		TotalMassKg:      r.Sheet.TotalMassKg.InexactFloat64(),
		ThreadKg:         r.Sheet.ThreadKg.InexactFloat64(),
		UnitCost:         r.Sheet.UnitCost.InexactFloat64(),
		PackagingEntries: FromPackagingEntries(r.Entries),
		AllocatedKg:      r.AllocatedKg.InexactFloat64(),
		RemainingKg:      r.RemainingKg.InexactFloat64(),
	}
}

type FinalizeBlendResponse struct {
	ProductionRecordID string  `json:"productionRecordId"`
	UnitCost           float64 `json:"unitCost"`
}
