package config

import (
	"sort"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/payrollid/pph21-calculator/internal/domain"
)

var twelve = decimal.NewFromInt(12)

// Provider is the configuration collaborator the tax engines consume.
// Implementations must return stable values for the duration of one
// calculation call.
type Provider interface {
	// PTKPAmount returns the annual non-taxable income for a status code.
	// Unknown codes return an UnknownTaxStatusError; callers decide the
	// fallback policy.
	PTKPAmount(status domain.TaxStatus) (decimal.Decimal, error)
	// TERCategory maps a status code to its TER category. Unknown codes
	// fail closed to TER C.
	TERCategory(status domain.TaxStatus) domain.TERCategory
	// TERRate returns the effective monthly rate (percent) for the
	// category at the given income.
	TERRate(category domain.TERCategory, income decimal.Decimal) (decimal.Decimal, error)
	// TaxSlabs returns the progressive slabs in ascending order.
	TaxSlabs() []domain.ProgressiveBracket
	BiayaJabatanRate() decimal.Decimal
	BiayaJabatanCapMonthly() decimal.Decimal
	BiayaJabatanCapAnnual() decimal.Decimal
	AnnualBasis() AnnualBasis
}

// StaticProvider serves a TaxConfiguration with a lazily-built, memoized
// per-category bracket cache. It is safe for concurrent use; the cache is
// derived from immutable configuration so redundant rebuilds are harmless.
type StaticProvider struct {
	mu       sync.RWMutex
	cfg      TaxConfiguration
	brackets map[domain.TERCategory][]domain.TERBracket
	slabs    []domain.ProgressiveBracket
}

// NewStaticProvider builds a provider over cfg, normalizing empty sections
// to the statutory defaults.
func NewStaticProvider(cfg TaxConfiguration) *StaticProvider {
	cfg.Normalize()
	return &StaticProvider{cfg: cfg}
}

// Reload replaces the configuration and invalidates the derived caches.
func (p *StaticProvider) Reload(cfg TaxConfiguration) {
	cfg.Normalize()
	p.mu.Lock()
	p.cfg = cfg
	p.brackets = nil
	p.slabs = nil
	p.mu.Unlock()
}

// Invalidate drops the derived caches; they rebuild on next access.
func (p *StaticProvider) Invalidate() {
	p.mu.Lock()
	p.brackets = nil
	p.slabs = nil
	p.mu.Unlock()
}

// PTKPAmount implements Provider.
func (p *StaticProvider) PTKPAmount(status domain.TaxStatus) (decimal.Decimal, error) {
	p.mu.RLock()
	amount, ok := p.cfg.PTKP[status]
	p.mu.RUnlock()
	if !ok {
		return decimal.Zero, &domain.UnknownTaxStatusError{Status: status}
	}
	return amount, nil
}

// TERCategory implements Provider. Unknown statuses fail closed to TER C.
func (p *StaticProvider) TERCategory(status domain.TaxStatus) domain.TERCategory {
	p.mu.RLock()
	category, ok := p.cfg.PTKPToTER[status]
	p.mu.RUnlock()
	if !ok {
		return domain.TERCategoryC
	}
	return category
}

// TERRate implements Provider.
func (p *StaticProvider) TERRate(category domain.TERCategory, income decimal.Decimal) (decimal.Decimal, error) {
	for _, b := range p.sortedBrackets(category) {
		if b.Contains(income) {
			return b.Rate, nil
		}
	}
	return decimal.Zero, &domain.ConfigurationUnavailableError{
		Reason: "no TER bracket matches category " + string(category) + " income " + income.String(),
	}
}

// TaxSlabs implements Provider.
func (p *StaticProvider) TaxSlabs() []domain.ProgressiveBracket {
	p.mu.RLock()
	slabs := p.slabs
	p.mu.RUnlock()
	if slabs != nil {
		return slabs
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.slabs == nil {
		sorted := make([]domain.ProgressiveBracket, len(p.cfg.TaxSlabs))
		copy(sorted, p.cfg.TaxSlabs)
		sort.SliceStable(sorted, func(i, j int) bool {
			// The unbounded slab sorts last.
			if sorted[i].Unbounded() {
				return false
			}
			if sorted[j].Unbounded() {
				return true
			}
			return sorted[i].UpperBound.LessThan(sorted[j].UpperBound)
		})
		p.slabs = sorted
	}
	return p.slabs
}

// BiayaJabatanRate implements Provider.
func (p *StaticProvider) BiayaJabatanRate() decimal.Decimal {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.cfg.BiayaJabatan.RatePercent
}

// BiayaJabatanCapMonthly implements Provider.
func (p *StaticProvider) BiayaJabatanCapMonthly() decimal.Decimal {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.cfg.BiayaJabatan.CapAnnual.Div(twelve)
}

// BiayaJabatanCapAnnual implements Provider.
func (p *StaticProvider) BiayaJabatanCapAnnual() decimal.Decimal {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.cfg.BiayaJabatan.CapAnnual
}

// AnnualBasis implements Provider.
func (p *StaticProvider) AnnualBasis() AnnualBasis {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.cfg.AnnualBasis
}

func (p *StaticProvider) sortedBrackets(category domain.TERCategory) []domain.TERBracket {
	p.mu.RLock()
	cached, ok := p.brackets[category]
	p.mu.RUnlock()
	if ok {
		return cached
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.brackets == nil {
		p.brackets = make(map[domain.TERCategory][]domain.TERBracket, 3)
	}
	if cached, ok := p.brackets[category]; ok {
		return cached
	}
	sorted := make([]domain.TERBracket, len(p.cfg.TERBrackets[category]))
	copy(sorted, p.cfg.TERBrackets[category])
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].IncomeFrom.LessThan(sorted[j].IncomeFrom)
	})
	p.brackets[category] = sorted
	return sorted
}
