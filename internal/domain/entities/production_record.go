package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type ProductionKind string

const (
	ProductionKindConversion ProductionKind = "conversion"
	ProductionKindBlend      ProductionKind = "blend"
)

// ProductionRecord is the audit entry written for every finished conversion
// batch and every finalized blend session, with its full cost breakdown.
//
// Storage model (DynamoDB):
//   - PK: id
//   - source_id is the batch id for conversions, the session id for blends
type ProductionRecord struct {
	ID        string          `json:"id"`
	Kind      ProductionKind  `json:"kind"`
	SourceID  string          `json:"source_id"`
	CostRows  []CostComponent `json:"cost_rows"`
	TotalCost decimal.Decimal `json:"total_cost"`
	UnitCost  decimal.Decimal `json:"unit_cost"`
	OutputKg  decimal.Decimal `json:"output_kg"`

	Blend            *BlendComposition `json:"blend,omitempty"`
	Utilities        *UtilityCosts     `json:"utilities,omitempty"`
	PackagingEntries []PackagingEntry  `json:"packaging_entries,omitempty"`
	Movements        []StockMovement   `json:"movements"`

	CreatedAt time.Time `json:"created_at"`
}
