package usecase

import (
	"bitumen_production/internal/domain/costing"
	"bitumen_production/internal/domain/entities"
	"bitumen_production/internal/usecase/interfaces"
	"context"
	"errors"
	"log"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidCategory   = errors.New("invalid material category")
	ErrInvalidAmount     = errors.New("amount must be positive")
	ErrInvalidUnitPrice  = errors.New("unit price must not be negative")
	ErrUtilityNotStocked = errors.New("utilities carry a price only")
)

// ILedgerUseCase exposes the material ledger to operators.
//
// A receipt priced with Credit is valued into stock at the weighted average
// of the current and received price.
type ILedgerUseCase interface {
	GetStock(ctx context.Context, category string) (entities.MaterialStock, error)
	ListStock(ctx context.Context) ([]entities.MaterialStock, error)
	Credit(ctx context.Context, category string, amount decimal.Decimal, unitPrice decimal.NullDecimal) (entities.MaterialStock, error)
	Debit(ctx context.Context, category string, amount decimal.Decimal) (entities.MaterialStock, error)
	SetUnitPrice(ctx context.Context, category string, unitPrice decimal.Decimal) (entities.MaterialStock, error)
}

type LedgerUseCase struct {
	ledger interfaces.IMaterialLedger
}

var _ ILedgerUseCase = (*LedgerUseCase)(nil)

func NewLedgerUseCase(ledger interfaces.IMaterialLedger) *LedgerUseCase {
	return &LedgerUseCase{ledger: ledger}
}

func parseCategory(raw string) (entities.MaterialCategory, error) {
	c := entities.MaterialCategory(strings.ToLower(strings.TrimSpace(raw)))
	if !c.IsValid() {
		return "", ErrInvalidCategory
	}
	return c, nil
}

func (u *LedgerUseCase) GetStock(ctx context.Context, category string) (entities.MaterialStock, error) {
	c, err := parseCategory(category)
	if err != nil {
		return entities.MaterialStock{}, err
	}
	s, err := u.ledger.GetStock(ctx, c)
	if err != nil {
		return entities.MaterialStock{}, err
	}
	if s.Category == "" {
		// never stocked
		return entities.MaterialStock{Category: c}, nil
	}
	return s, nil
}

// ListStock returns every known category in display order, zero-filled for
// categories never stocked.
func (u *LedgerUseCase) ListStock(ctx context.Context) ([]entities.MaterialStock, error) {
	stored, err := u.ledger.ListStock(ctx)
	if err != nil {
		return nil, err
	}
	byCategory := make(map[entities.MaterialCategory]entities.MaterialStock, len(stored))
	for _, s := range stored {
		byCategory[s.Category] = s
	}

	out := make([]entities.MaterialStock, 0, len(entities.AllCategories))
	for _, c := range entities.AllCategories {
		if s, ok := byCategory[c]; ok {
			out = append(out, s)
			continue
		}
		out = append(out, entities.MaterialStock{Category: c})
	}
	return out, nil
}

func (u *LedgerUseCase) Credit(ctx context.Context, category string, amount decimal.Decimal, unitPrice decimal.NullDecimal) (entities.MaterialStock, error) {
	c, err := parseCategory(category)
	if err != nil {
		return entities.MaterialStock{}, err
	}
	if c.IsUtility() {
		return entities.MaterialStock{}, ErrUtilityNotStocked
	}
	if !amount.IsPositive() {
		return entities.MaterialStock{}, ErrInvalidAmount
	}
	if unitPrice.Valid && unitPrice.Decimal.IsNegative() {
		return entities.MaterialStock{}, ErrInvalidUnitPrice
	}

	price := decimal.NullDecimal{}
	if unitPrice.Valid {
		current, err := u.ledger.GetStock(ctx, c)
		if err != nil {
			return entities.MaterialStock{}, err
		}
		price = decimal.NewNullDecimal(costing.WeightedAverage(current.QuantityOnHand, current.UnitPrice, amount, unitPrice.Decimal))
	}

	s, err := u.ledger.Credit(ctx, c, amount, price)
	if err != nil {
		log.Printf("[ledger][usecase] credit failed category=%s amount=%s err=%v", c, amount, err)
		return entities.MaterialStock{}, err
	}
	log.Printf("[ledger][usecase] credit ok category=%s amount=%s quantity=%s unit_price=%s", c, amount, s.QuantityOnHand, s.UnitPrice)
	return s, nil
}

func (u *LedgerUseCase) Debit(ctx context.Context, category string, amount decimal.Decimal) (entities.MaterialStock, error) {
	c, err := parseCategory(category)
	if err != nil {
		return entities.MaterialStock{}, err
	}
	if c.IsUtility() {
		return entities.MaterialStock{}, ErrUtilityNotStocked
	}
	if !amount.IsPositive() {
		return entities.MaterialStock{}, ErrInvalidAmount
	}

	s, err := u.ledger.Debit(ctx, c, amount)
	if err != nil {
		log.Printf("[ledger][usecase] debit failed category=%s amount=%s err=%v", c, amount, err)
		return entities.MaterialStock{}, err
	}
	log.Printf("[ledger][usecase] debit ok category=%s amount=%s quantity=%s", c, amount, s.QuantityOnHand)
	return s, nil
}

func (u *LedgerUseCase) SetUnitPrice(ctx context.Context, category string, unitPrice decimal.Decimal) (entities.MaterialStock, error) {
	c, err := parseCategory(category)
	if err != nil {
		return entities.MaterialStock{}, err
	}
	if unitPrice.IsNegative() {
		return entities.MaterialStock{}, ErrInvalidUnitPrice
	}
	return u.ledger.SetUnitPrice(ctx, c, unitPrice)
}
