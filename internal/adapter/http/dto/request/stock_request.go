package request

import "github.com/shopspring/decimal"

// StockCreditRequest receives material. UnitPrice is the purchase price of
// this receipt; when omitted the category keeps its current price.
type StockCreditRequest struct {
	Amount    decimal.Decimal     `json:"amount"`
	UnitPrice decimal.NullDecimal `json:"unitPrice"`
}

type StockDebitRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

type UnitPriceRequest struct {
	UnitPrice decimal.Decimal `json:"unitPrice"`
}
