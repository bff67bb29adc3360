package entities

import "github.com/shopspring/decimal"

// BlendComposition is the operator-declared BN-5 + Mel mix of a packaging run.
// It is independent of any conversion batch output.
type BlendComposition struct {
	BN5AmountKg    decimal.Decimal `json:"bn5_amount_kg"`
	FillerAmountKg decimal.Decimal `json:"filler_amount_kg"`
}

func (b BlendComposition) TotalKg() decimal.Decimal {
	return b.BN5AmountKg.Add(b.FillerAmountKg)
}

// UtilityCosts are the non-blend consumptions of a packaging run.
type UtilityCosts struct {
	ElectricityKwh decimal.Decimal `json:"electricity_kwh"`
	GasVolume      decimal.Decimal `json:"gas_volume"`
	KraftPaperKg   decimal.Decimal `json:"kraft_paper_kg"`
	BagCount       decimal.Decimal `json:"bag_count"`
	LaborFlatCost  decimal.Decimal `json:"labor_flat_cost"`
	ExtraCost      decimal.Decimal `json:"extra_cost"`
}

type PackagingType string

const (
	PackagingBag          PackagingType = "bag"
	PackagingSmallCup     PackagingType = "small_cup"
	PackagingLargeCup     PackagingType = "large_cup"
	PackagingBulkUnfilled PackagingType = "bulk_unfilled"
)

func (t PackagingType) String() string { return string(t) }

func (t PackagingType) IsValid() bool {
	switch t {
	case PackagingBag, PackagingSmallCup, PackagingLargeCup, PackagingBulkUnfilled:
		return true
	}
	return false
}

// PackagingEntry is one sellable allocation carved out of a blend.
type PackagingEntry struct {
	ID                string          `json:"id"`
	Type              PackagingType   `json:"packaging_type"`
	BlendPortionKg    decimal.Decimal `json:"blend_portion_kg"`
	SecondaryQty      int64           `json:"secondary_qty"`
	PaperWrapped      bool            `json:"paper_wrapped"`
	DerivedRopeGrams  decimal.Decimal `json:"derived_rope_grams"`
	DerivedKraftGrams decimal.Decimal `json:"derived_kraft_grams"`
}
