package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// ConversionState is the kettle state machine position.
//
// Completed is transient: a finished batch is archived with this state and the
// kettle returns to Idle in the same transaction.
type ConversionState string

const (
	ConversionStateIdle      ConversionState = "idle"
	ConversionStateBoiling   ConversionState = "boiling"
	ConversionStateCompleted ConversionState = "completed"
)

func (s ConversionState) String() string { return string(s) }

func (s ConversionState) IsValid() bool {
	switch s {
	case ConversionStateIdle, ConversionStateBoiling, ConversionStateCompleted:
		return true
	}
	return false
}

// ConversionInputs are supplied by the operator when the batch starts.
type ConversionInputs struct {
	RawAmountKg    decimal.Decimal `json:"raw_amount_kg"`
	WasteAmountKg  decimal.Decimal `json:"waste_amount_kg"`
	GasVolume      decimal.Decimal `json:"gas_volume"`
	ElectricityKwh decimal.Decimal `json:"electricity_kwh"`
	LaborRatePerKg decimal.Decimal `json:"labor_rate_per_kg"`
	ExtraCost      decimal.Decimal `json:"extra_cost"`
}

// ProjectedOutputKg is raw minus waste; it may be zero or negative for
// invalid inputs, callers must check before starting.
func (in ConversionInputs) ProjectedOutputKg() decimal.Decimal {
	return in.RawAmountKg.Sub(in.WasteAmountKg)
}

// HasNegative reports whether any input is below zero.
func (in ConversionInputs) HasNegative() bool {
	for _, v := range []decimal.Decimal{in.RawAmountKg, in.WasteAmountKg, in.GasVolume, in.ElectricityKwh, in.LaborRatePerKg, in.ExtraCost} {
		if v.IsNegative() {
			return true
		}
	}
	return false
}

// ConversionPrices is the ledger price snapshot used to cost a batch.
type ConversionPrices struct {
	RawUnitPrice         decimal.Decimal `json:"raw_unit_price"`
	GasUnitPrice         decimal.Decimal `json:"gas_unit_price"`
	ElectricityUnitPrice decimal.Decimal `json:"electricity_unit_price"`
}

// ConversionBatch is one kettle run (BN-3 -> BN-5).
//
// Storage model (DynamoDB):
//   - PK: id
//   - the running batch is also stored under the reserved id ACTIVE_PROCESS;
//     a conditional put on that key is the single-flight guard
//
// Output fields are only populated once the batch is finished.
type ConversionBatch struct {
	ID         string           `json:"id"`
	State      ConversionState  `json:"state"`
	StartedAt  time.Time        `json:"started_at"`
	FinishedAt time.Time        `json:"finished_at"`
	Inputs     ConversionInputs `json:"inputs"`
	Prices     ConversionPrices `json:"prices"`
	CostRows   []CostComponent  `json:"cost_rows"`
	TotalCost  decimal.Decimal  `json:"total_cost"`
	UnitCost   decimal.Decimal  `json:"unit_cost"`

	ActualOutputKg decimal.Decimal `json:"actual_output_kg"`
	ForSaleKg      decimal.Decimal `json:"for_sale_kg"`
	ForFillerKg    decimal.Decimal `json:"for_filler_kg"`
	UnallocatedKg  decimal.Decimal `json:"unallocated_kg"`
}

func (b ConversionBatch) ProjectedOutputKg() decimal.Decimal {
	return b.Inputs.ProjectedOutputKg()
}

func (b ConversionBatch) IsBoiling() bool {
	return b.ID != "" && b.State == ConversionStateBoiling
}

// Elapsed is the boiling time observed at now. It is zero for a batch that
// has not started.
func (b ConversionBatch) Elapsed(now time.Time) time.Duration {
	if b.StartedAt.IsZero() {
		return 0
	}
	end := now
	if !b.FinishedAt.IsZero() {
		end = b.FinishedAt
	}
	if end.Before(b.StartedAt) {
		return 0
	}
	return end.Sub(b.StartedAt)
}
