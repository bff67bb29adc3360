package response

import "bitumen_production/internal/domain/entities"

type CostRowResponse struct {
	Name      string  `json:"name"`
	Quantity  float64 `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
	Total     float64 `json:"total"`
}

func FromCostRows(rows []entities.CostComponent) []CostRowResponse {
	out := make([]CostRowResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, CostRowResponse{
			Name:      r.Name,
			Quantity:  r.Quantity.InexactFloat64(),
			UnitPrice: r.UnitPrice.InexactFloat64(),
			Total:     r.Total.InexactFloat64(),
		})
	}
	return out
}
