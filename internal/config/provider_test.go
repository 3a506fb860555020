package config

import (
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/payrollid/pph21-calculator/internal/domain"
)

func TestStaticProviderPTKPAmount(t *testing.T) {
	p := NewStaticProvider(Default())

	amount, err := p.PTKPAmount(domain.TaxStatusTK0)
	require.NoError(t, err)
	assert.True(t, amount.Equal(decimal.NewFromInt(54_000_000)))

	amount, err = p.PTKPAmount(domain.TaxStatusK3)
	require.NoError(t, err)
	assert.True(t, amount.Equal(decimal.NewFromInt(72_000_000)))

	_, err = p.PTKPAmount("XX9")
	require.Error(t, err)
	assert.True(t, domain.IsUnknownTaxStatus(err))
}

func TestStaticProviderTERCategoryFailsClosed(t *testing.T) {
	p := NewStaticProvider(Default())

	assert.Equal(t, domain.TERCategoryA, p.TERCategory(domain.TaxStatusTK0))
	assert.Equal(t, domain.TERCategoryB, p.TERCategory(domain.TaxStatusK2))
	assert.Equal(t, domain.TERCategoryC, p.TERCategory(domain.TaxStatusHB1))

	// Unknown status must fall back to the highest-rate category, never A.
	assert.Equal(t, domain.TERCategoryC, p.TERCategory("XX9"))
	assert.Equal(t, domain.TERCategoryC, p.TERCategory(""))
}

func TestStaticProviderTERRate(t *testing.T) {
	p := NewStaticProvider(Default())

	tests := []struct {
		name     string
		category domain.TERCategory
		income   int64
		rate     string
	}{
		{"A zero income", domain.TERCategoryA, 0, "0"},
		{"A below threshold", domain.TERCategoryA, 5_399_999, "0"},
		{"A first taxed band", domain.TERCategoryA, 5_400_000, "0.25"},
		{"A mid band", domain.TERCategoryA, 11_500_000, "3.5"},
		{"A band edge", domain.TERCategoryA, 12_500_000, "5"},
		{"A top band", domain.TERCategoryA, 2_000_000_000, "34"},
		{"B mid band", domain.TERCategoryB, 10_000_000, "1.5"},
		{"C mid band", domain.TERCategoryC, 10_000_000, "1.5"},
		{"C top band", domain.TERCategoryC, 1_419_000_000, "34"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rate, err := p.TERRate(tt.category, decimal.NewFromInt(tt.income))
			require.NoError(t, err)
			want, _ := decimal.NewFromString(tt.rate)
			assert.True(t, rate.Equal(want), "got %s want %s", rate, want)
		})
	}
}

func TestStaticProviderBiayaJabatan(t *testing.T) {
	p := NewStaticProvider(Default())
	assert.True(t, p.BiayaJabatanRate().Equal(decimal.NewFromInt(5)))
	assert.True(t, p.BiayaJabatanCapAnnual().Equal(decimal.NewFromInt(6_000_000)))
	assert.True(t, p.BiayaJabatanCapMonthly().Equal(decimal.NewFromInt(500_000)))

	// Annual cap override raises the derived monthly cap.
	cfg := Default()
	cfg.BiayaJabatan.CapAnnual = decimal.NewFromInt(12_000_000)
	p = NewStaticProvider(cfg)
	assert.True(t, p.BiayaJabatanCapMonthly().Equal(decimal.NewFromInt(1_000_000)))
}

func TestStaticProviderReloadInvalidatesCache(t *testing.T) {
	p := NewStaticProvider(Default())

	rate, err := p.TERRate(domain.TERCategoryA, decimal.NewFromInt(12_000_000))
	require.NoError(t, err)
	assert.True(t, rate.Equal(decimal.NewFromInt(4)))

	// Replace category A with a single flat bracket.
	cfg := Default()
	cfg.TERBrackets[domain.TERCategoryA] = []domain.TERBracket{
		{IncomeFrom: decimal.Zero, Rate: decimal.NewFromInt(9), IsHighestBracket: true},
	}
	p.Reload(cfg)

	rate, err = p.TERRate(domain.TERCategoryA, decimal.NewFromInt(12_000_000))
	require.NoError(t, err)
	assert.True(t, rate.Equal(decimal.NewFromInt(9)))
}

func TestStaticProviderConcurrentAccess(t *testing.T) {
	p := NewStaticProvider(Default())

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			income := decimal.NewFromInt(int64(n+1) * 1_000_000)
			for _, cat := range []domain.TERCategory{domain.TERCategoryA, domain.TERCategoryB, domain.TERCategoryC} {
				if _, err := p.TERRate(cat, income); err != nil {
					t.Error(err)
					return
				}
			}
			if _, err := p.PTKPAmount(domain.TaxStatusK1); err != nil {
				t.Error(err)
			}
			_ = p.TaxSlabs()
		}(i)
	}
	wg.Wait()
}

func TestNormalizeFallbacks(t *testing.T) {
	var cfg TaxConfiguration
	fallbacks := cfg.Normalize()
	assert.Contains(t, fallbacks, "ptkp")
	assert.Contains(t, fallbacks, "ter_brackets")
	assert.Contains(t, fallbacks, "tax_slabs")
	assert.Equal(t, AnnualizeFromDecember, cfg.AnnualBasis)

	// A partial TER table keeps the supplied category and backfills the rest.
	cfg = TaxConfiguration{
		TERBrackets: map[domain.TERCategory][]domain.TERBracket{
			domain.TERCategoryA: {
				{IncomeFrom: decimal.Zero, Rate: decimal.NewFromInt(1), IsHighestBracket: true},
			},
		},
	}
	fallbacks = cfg.Normalize()
	assert.Contains(t, fallbacks, "ter_brackets.TER B")
	assert.Contains(t, fallbacks, "ter_brackets.TER C")
	assert.Len(t, cfg.TERBrackets[domain.TERCategoryA], 1)
	assert.NotEmpty(t, cfg.TERBrackets[domain.TERCategoryB])
}
