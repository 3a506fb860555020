package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTERBracketCoverage checks the no-gap/no-overlap invariant: for any
// non-negative income, exactly one bracket of each category matches.
func TestTERBracketCoverage(t *testing.T) {
	tables := DefaultTERBrackets()
	require.Len(t, tables, 3)

	for category, brackets := range tables {
		category, brackets := category, brackets
		t.Run(string(category), func(t *testing.T) {
			require.NotEmpty(t, brackets)

			last := brackets[len(brackets)-1]
			assert.True(t, last.IsHighestBracket, "last bracket must be the unbounded one")
			assert.True(t, last.IncomeTo.IsZero())

			// Adjacency: each bracket starts where the previous ends.
			prevTo := decimal.Zero
			for i, b := range brackets {
				assert.True(t, b.IncomeFrom.Equal(prevTo),
					"bracket %d of %s starts at %s, expected %s", i, category, b.IncomeFrom, prevTo)
				if !b.IsHighestBracket {
					assert.True(t, b.IncomeTo.GreaterThan(b.IncomeFrom))
					prevTo = b.IncomeTo
				}
			}

			// Probe incomes across the range, including every boundary and
			// its neighbors, up to 10^12.
			probes := []decimal.Decimal{decimal.Zero, decimal.NewFromInt(1), decimal.New(1, 12)}
			one := decimal.NewFromInt(1)
			for _, b := range brackets {
				probes = append(probes, b.IncomeFrom, b.IncomeFrom.Sub(one), b.IncomeFrom.Add(one))
			}
			for _, income := range probes {
				if income.IsNegative() {
					continue
				}
				matches := 0
				for i := range brackets {
					if brackets[i].Contains(income) {
						matches++
					}
				}
				assert.Equal(t, 1, matches, "income %s in %s matched %d brackets", income, category, matches)
			}
		})
	}
}

func TestDefaultTaxSlabs(t *testing.T) {
	slabs := DefaultTaxSlabs()
	require.Len(t, slabs, 5)

	rates := []int64{5, 15, 25, 30, 35}
	for i, slab := range slabs {
		assert.True(t, slab.Rate.Equal(decimal.NewFromInt(rates[i])))
	}

	// Ascending bounds, unbounded last slab only.
	prev := decimal.Zero
	for i, slab := range slabs {
		if i == len(slabs)-1 {
			assert.True(t, slab.Unbounded())
			continue
		}
		assert.False(t, slab.Unbounded())
		assert.True(t, slab.UpperBound.GreaterThan(prev))
		prev = slab.UpperBound
	}
}

func TestDefaultPTKPToTERIsTotal(t *testing.T) {
	ptkp := DefaultPTKP()
	mapping := DefaultPTKPToTER()

	for status := range ptkp {
		category, ok := mapping[status]
		require.True(t, ok, "status %s has no TER category", status)
		assert.Contains(t, []TERCategory{TERCategoryA, TERCategoryB, TERCategoryC}, category)
	}

	// Spot checks against PMK-168/2023 attachment.
	assert.Equal(t, TERCategoryA, mapping[TaxStatusTK0])
	assert.Equal(t, TERCategoryA, mapping[TaxStatusK0])
	assert.Equal(t, TERCategoryB, mapping[TaxStatusK1])
	assert.Equal(t, TERCategoryC, mapping[TaxStatusK3])
	assert.Equal(t, TERCategoryC, mapping[TaxStatusHB3])
}

func TestDefaultPTKPAmounts(t *testing.T) {
	ptkp := DefaultPTKP()
	assert.True(t, ptkp[TaxStatusTK0].Equal(decimal.NewFromInt(54_000_000)))
	assert.True(t, ptkp[TaxStatusK3].Equal(decimal.NewFromInt(72_000_000)))
	assert.True(t, ptkp[TaxStatusHB0].Equal(decimal.NewFromInt(112_500_000)))

	// PTKP grows with dependents within a marital prefix.
	assert.True(t, ptkp[TaxStatusTK1].GreaterThan(ptkp[TaxStatusTK0]))
	assert.True(t, ptkp[TaxStatusK2].GreaterThan(ptkp[TaxStatusK1]))
}
