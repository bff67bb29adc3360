package costing

import (
	"bitumen_production/internal/domain/entities"
	"testing"
)

func exampleBlendPrices() BlendPrices {
	return BlendPrices{
		BN5:         d("800"),
		Filler:      d("50"),
		Bag:         d("300"),
		KraftPaper:  d("400"),
		Thread:      d("2000"),
		Electricity: d("1000"),
		Gas:         d("1800"),
	}
}

func TestBlendCost(t *testing.T) {
	blend := entities.BlendComposition{BN5AmountKg: d("700"), FillerAmountKg: d("100")}
	u := entities.UtilityCosts{
		ElectricityKwh: d("10"),
		GasVolume:      d("5"),
		KraftPaperKg:   d("5"),
		BagCount:       d("20"),
		LaborFlatCost:  d("50000"),
		ExtraCost:      d("0"),
	}

	sheet := BlendCost(blend, u, nil, exampleBlendPrices(), DefaultBlendFactors())

	// 560000 + 5000 + 6000 + 2000 + 600 + 10000 + 9000 + 50000
	if !sheet.TotalCost.Equal(d("642600")) {
		t.Fatalf("expected total 642600, got %s", sheet.TotalCost)
	}
	if !sheet.ThreadKg.Equal(d("0.3")) {
		t.Fatalf("expected 0.3kg thread, got %s", sheet.ThreadKg)
	}
	if !sheet.TotalMassKg.Equal(d("800")) {
		t.Fatalf("expected mass 800, got %s", sheet.TotalMassKg)
	}
	if !sheet.UnitCost.Equal(d("811")) {
		t.Fatalf("expected unit cost 811, got %s", sheet.UnitCost)
	}
	if len(sheet.Rows) != 9 {
		t.Fatalf("expected 9 rows, got %d", len(sheet.Rows))
	}
	if sheet.Rows[4].Name != RowThread || !sheet.Rows[4].Total.Equal(d("600")) {
		t.Fatalf("unexpected thread row %+v", sheet.Rows[4])
	}
}

func TestBlendCost_ExtrasFeedUnitCost(t *testing.T) {
	blend := entities.BlendComposition{BN5AmountKg: d("700"), FillerAmountKg: d("100")}
	u := entities.UtilityCosts{LaborFlatCost: d("50000")}

	without := BlendCost(blend, u, nil, exampleBlendPrices(), DefaultBlendFactors())
	with := BlendCost(blend, u, []entities.ExtraCost{{ID: "x1", Name: "Pallets", Quantity: d("4"), UnitPrice: d("8000")}}, exampleBlendPrices(), DefaultBlendFactors())

	if !with.TotalCost.Sub(without.TotalCost).Equal(d("32000")) {
		t.Fatalf("expected extras to add 32000, got %s", with.TotalCost.Sub(without.TotalCost))
	}
	if !with.UnitCost.GreaterThan(without.UnitCost) {
		t.Fatalf("expected extras to raise unit cost: %s vs %s", with.UnitCost, without.UnitCost)
	}
	last := with.Rows[len(with.Rows)-1]
	if last.Name != "Pallets" || !last.Total.Equal(d("32000")) {
		t.Fatalf("unexpected extra row %+v", last)
	}
}

func TestBlendCost_EmptyBlend(t *testing.T) {
	sheet := BlendCost(entities.BlendComposition{}, entities.UtilityCosts{LaborFlatCost: d("100")}, nil, exampleBlendPrices(), DefaultBlendFactors())
	if !sheet.UnitCost.IsZero() {
		t.Fatalf("expected 0 unit cost for empty blend, got %s", sheet.UnitCost)
	}
	if !sheet.TotalCost.Equal(d("100")) {
		t.Fatalf("expected total 100, got %s", sheet.TotalCost)
	}
}
