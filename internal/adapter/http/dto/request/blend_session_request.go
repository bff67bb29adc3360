package request

import (
	"bitumen_production/internal/domain/entities"
	"bitumen_production/internal/usecase"
	"strings"

	"github.com/shopspring/decimal"
)

type BlendRequest struct {
	BN5AmountKg    decimal.Decimal `json:"bn5AmountKg"`
	FillerAmountKg decimal.Decimal `json:"fillerAmountKg"`
}

type UtilityCostsRequest struct {
	ElectricityKwh decimal.Decimal `json:"electricityKwh"`
	GasVolume      decimal.Decimal `json:"gasVolume"`
	KraftPaperKg   decimal.Decimal `json:"kraftPaperKg"`
	BagCount       decimal.Decimal `json:"bagCount"`
	LaborFlatCost  decimal.Decimal `json:"laborFlatCost"`
	ExtraCost      decimal.Decimal `json:"extraCost"`
}

type ExtraCostRequest struct {
	Name      string          `json:"name" binding:"required"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
}

type PackagingEntryRequest struct {
	Type           string          `json:"packagingType" binding:"required"`
	BlendPortionKg decimal.Decimal `json:"blendPortionKg"`
	SecondaryQty   int64           `json:"secondaryQty"`
	PaperWrapped   bool            `json:"paperWrapped"`
}

// BlendSessionRequest is the body of both recompute and finalize.
type BlendSessionRequest struct {
	Blend            BlendRequest            `json:"blend"`
	UtilityCosts     UtilityCostsRequest     `json:"utilityCosts"`
	Extras           []ExtraCostRequest      `json:"extras" binding:"dive"`
	PackagingEntries []PackagingEntryRequest `json:"packagingEntries" binding:"dive"`
}

func (r BlendSessionRequest) ToCommand() usecase.BlendSessionCommand {
	cmd := usecase.BlendSessionCommand{
		Blend: entities.BlendComposition{
			BN5AmountKg:    r.Blend.BN5AmountKg,
			FillerAmountKg: r.Blend.FillerAmountKg,
		},
		Utilities: entities.UtilityCosts{
			ElectricityKwh: r.UtilityCosts.ElectricityKwh,
			GasVolume:      r.UtilityCosts.GasVolume,
			KraftPaperKg:   r.UtilityCosts.KraftPaperKg,
			BagCount:       r.UtilityCosts.BagCount,
			LaborFlatCost:  r.UtilityCosts.LaborFlatCost,
			ExtraCost:      r.UtilityCosts.ExtraCost,
		},
	}
	for _, x := range r.Extras {
		cmd.Extras = append(cmd.Extras, usecase.ExtraCostInput{
			Name:      strings.TrimSpace(x.Name),
			Quantity:  x.Quantity,
			UnitPrice: x.UnitPrice,
		})
	}
	for _, e := range r.PackagingEntries {
		cmd.Entries = append(cmd.Entries, usecase.PackagingEntryInput{
			Type:           entities.PackagingType(strings.ToLower(strings.TrimSpace(e.Type))),
			BlendPortionKg: e.BlendPortionKg,
			SecondaryQty:   e.SecondaryQty,
			PaperWrapped:   e.PaperWrapped,
		})
	}
	return cmd
}
