package response

import (
	"bitumen_production/internal/domain/entities"
	"time"
)

type StockResponse struct {
	Category       string     `json:"category"`
	QuantityOnHand float64    `json:"quantityOnHand"`
	UnitPrice      float64    `json:"unitPrice"`
	UpdatedAt      *time.Time `json:"updatedAt,omitempty"`
}

func FromStock(s entities.MaterialStock) StockResponse {
	resp := StockResponse{
		Category:       string(s.Category),
		QuantityOnHand: s.QuantityOnHand.InexactFloat64(),
		UnitPrice:      s.UnitPrice.InexactFloat64(),
	}
	if !s.UpdatedAt.IsZero() {
		t := s.UpdatedAt
		resp.UpdatedAt = &t
	}
	return resp
}

func FromStockList(list []entities.MaterialStock) []StockResponse {
	out := make([]StockResponse, 0, len(list))
	for _, s := range list {
		out = append(out, FromStock(s))
	}
	return out
}
