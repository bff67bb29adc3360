// Package blending holds the BN-5 + Mel packaging session: the blend
// declaration, its packaging allocations and the derived cost sheet.
//
// A Session is not safe for concurrent use; it lives for one request or one
// operator form.
package blending

import (
	"bitumen_production/internal/domain/costing"
	"bitumen_production/internal/domain/entities"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidComposition   = errors.New("invalid blend composition")
	ErrInvalidUtilityCosts  = errors.New("invalid utility costs")
	ErrBlendExceeded        = errors.New("blend exceeded")
	ErrInvalidBlendPortion  = errors.New("declared blend portion must be positive")
	ErrUnknownPackagingType = errors.New("unknown packaging type")
	ErrSecondaryQtyRequired = errors.New("secondary quantity required")
	ErrEntryNotFound        = errors.New("entry not found")
	ErrInvalidExtraCost     = errors.New("invalid extra cost")
)

// PackagingFactors convert bag counts into derived consumables.
type PackagingFactors struct {
	RopeGramsPerBag      decimal.Decimal
	KraftKgPerWrappedBag decimal.Decimal
}

func DefaultPackagingFactors() PackagingFactors {
	return PackagingFactors{
		RopeGramsPerBag:      decimal.RequireFromString("1.5"),
		KraftKgPerWrappedBag: decimal.RequireFromString("0.25"),
	}
}

type Options struct {
	Costing   costing.BlendFactors
	Packaging PackagingFactors
}

func DefaultOptions() Options {
	return Options{Costing: costing.DefaultBlendFactors(), Packaging: DefaultPackagingFactors()}
}

type Session struct {
	id        string
	blend     entities.BlendComposition
	utilities entities.UtilityCosts
	opts      Options

	entries []entities.PackagingEntry
	extras  []entities.ExtraCost

	prices costing.BlendPrices
	priced bool
	sheet  costing.BlendSheet
}

func NewSession(blend entities.BlendComposition, utilities entities.UtilityCosts, opts Options) (*Session, error) {
	if blend.BN5AmountKg.IsNegative() || blend.FillerAmountKg.IsNegative() {
		return nil, ErrInvalidComposition
	}
	for _, v := range []decimal.Decimal{
		utilities.ElectricityKwh, utilities.GasVolume, utilities.KraftPaperKg,
		utilities.BagCount, utilities.LaborFlatCost, utilities.ExtraCost,
	} {
		if v.IsNegative() {
			return nil, ErrInvalidUtilityCosts
		}
	}
	return &Session{
		id:        uuid.NewString(),
		blend:     blend,
		utilities: utilities,
		opts:      opts,
	}, nil
}

func (s *Session) ID() string                         { return s.id }
func (s *Session) Blend() entities.BlendComposition   { return s.blend }
func (s *Session) Utilities() entities.UtilityCosts   { return s.utilities }
func (s *Session) Sheet() costing.BlendSheet          { return s.sheet }
func (s *Session) TotalMassKg() decimal.Decimal       { return s.blend.TotalKg() }
func (s *Session) Entries() []entities.PackagingEntry { return append([]entities.PackagingEntry(nil), s.entries...) }
func (s *Session) Extras() []entities.ExtraCost       { return append([]entities.ExtraCost(nil), s.extras...) }
func (s *Session) Priced() bool                       { return s.priced }
func (s *Session) RemainingKg() decimal.Decimal       { return s.TotalMassKg().Sub(s.AllocatedKg()) }

// AllocatedKg is the running sum of blend portions across packaging entries.
func (s *Session) AllocatedKg() decimal.Decimal {
	sum := decimal.Zero
	for _, e := range s.entries {
		sum = sum.Add(e.BlendPortionKg)
	}
	return sum
}

// RecomputeCosts rebuilds the cost rows against prices and remembers them so
// later entry removals can re-derive the sheet.
func (s *Session) RecomputeCosts(prices costing.BlendPrices) costing.BlendSheet {
	s.prices = prices
	s.priced = true
	s.sheet = costing.BlendCost(s.blend, s.utilities, s.extras, prices, s.opts.Costing)
	return s.sheet
}

func (s *Session) recomputeIfPriced() {
	if s.priced {
		s.RecomputeCosts(s.prices)
	}
}

// AddPackagingEntry carves declaredKg out of the blend.
//
// Bags need a bag count and derive rope (and kraft when paper wrapped); cups
// need a unit count; bulk is always a single unit with no consumables.
func (s *Session) AddPackagingEntry(t entities.PackagingType, declaredKg decimal.Decimal, secondaryQty int64, paperWrapped bool) (entities.PackagingEntry, error) {
	if !t.IsValid() {
		return entities.PackagingEntry{}, ErrUnknownPackagingType
	}
	if !declaredKg.IsPositive() {
		return entities.PackagingEntry{}, ErrInvalidBlendPortion
	}

	e := entities.PackagingEntry{
		ID:                uuid.NewString(),
		Type:              t,
		BlendPortionKg:    declaredKg,
		SecondaryQty:      secondaryQty,
		DerivedRopeGrams:  decimal.Zero,
		DerivedKraftGrams: decimal.Zero,
	}

	switch t {
	case entities.PackagingBag:
		if secondaryQty <= 0 {
			return entities.PackagingEntry{}, ErrSecondaryQtyRequired
		}
		bags := decimal.NewFromInt(secondaryQty)
		e.DerivedRopeGrams = bags.Mul(s.opts.Packaging.RopeGramsPerBag)
		if paperWrapped {
			e.PaperWrapped = true
			e.DerivedKraftGrams = bags.Mul(s.opts.Packaging.KraftKgPerWrappedBag).Mul(decimal.NewFromInt(1000))
		}
	case entities.PackagingSmallCup, entities.PackagingLargeCup:
		if secondaryQty <= 0 {
			return entities.PackagingEntry{}, ErrSecondaryQtyRequired
		}
	case entities.PackagingBulkUnfilled:
		e.SecondaryQty = 1
	}

	if s.AllocatedKg().Add(declaredKg).GreaterThan(s.TotalMassKg()) {
		return entities.PackagingEntry{}, ErrBlendExceeded
	}

	s.entries = append(s.entries, e)
	return e, nil
}

// RemoveEntry drops a packaging entry and re-derives the cost sheet.
func (s *Session) RemoveEntry(id string) error {
	for i, e := range s.entries {
		if e.ID == id {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			s.recomputeIfPriced()
			return nil
		}
	}
	return ErrEntryNotFound
}

// AddExtraCost appends an operator cost row that feeds the unit cost.
func (s *Session) AddExtraCost(name string, quantity, unitPrice decimal.Decimal) (entities.ExtraCost, error) {
	name = strings.TrimSpace(name)
	if name == "" || quantity.IsNegative() || unitPrice.IsNegative() {
		return entities.ExtraCost{}, ErrInvalidExtraCost
	}
	x := entities.ExtraCost{ID: uuid.NewString(), Name: name, Quantity: quantity, UnitPrice: unitPrice}
	s.extras = append(s.extras, x)
	s.recomputeIfPriced()
	return x, nil
}

// RemoveExtraCost drops an extra cost row and re-derives the cost sheet.
func (s *Session) RemoveExtraCost(id string) error {
	for i, x := range s.extras {
		if x.ID == id {
			s.extras = append(s.extras[:i], s.extras[i+1:]...)
			s.recomputeIfPriced()
			return nil
		}
	}
	return ErrEntryNotFound
}

// Consumption lists the stock debits of finalizing the session, in the order
// stock is checked. Zero amounts are omitted.
func (s *Session) Consumption() []entities.StockMovement {
	threadKg := s.opts.Costing.ThreadKg(s.utilities.BagCount)
	candidates := []struct {
		category entities.MaterialCategory
		amount   decimal.Decimal
	}{
		{entities.CategoryBN5Blend, s.blend.BN5AmountKg},
		{entities.CategoryMel, s.blend.FillerAmountKg},
		{entities.CategoryBag, s.utilities.BagCount},
		{entities.CategoryKraftPaper, s.utilities.KraftPaperKg},
		{entities.CategoryThread, threadKg},
	}

	out := make([]entities.StockMovement, 0, len(candidates))
	for _, c := range candidates {
		if c.amount.IsPositive() {
			out = append(out, entities.DebitMovement(c.category, c.amount))
		}
	}
	return out
}
