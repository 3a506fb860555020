package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/payrollid/pph21-calculator/internal/domain"
	rupiah "github.com/payrollid/pph21-calculator/pkg/decimal"
)

// ProgressiveTax integrates pkp through the ascending annual slabs:
// each slab taxes min(remaining, slab width) at its rate until the base is
// exhausted. The second return value is the marginal (highest reached)
// slab rate, formatted as a percentage string for the breakdown record.
func ProgressiveTax(pkp decimal.Decimal, slabs []domain.ProgressiveBracket) (decimal.Decimal, string) {
	tax := decimal.Zero
	topRate := "0%"
	if !pkp.IsPositive() {
		return tax, topRate
	}

	remaining := pkp
	lower := decimal.Zero
	for i := range slabs {
		slab := &slabs[i]

		width := remaining
		if !slab.Unbounded() {
			width = slab.UpperBound.Sub(lower)
			lower = slab.UpperBound
		}

		portion := width
		if remaining.LessThan(portion) {
			portion = remaining
		}
		if !portion.IsPositive() {
			break
		}

		tax = tax.Add(rupiah.Percent(portion, slab.Rate))
		topRate = slab.Rate.String() + "%"

		remaining = remaining.Sub(portion)
		if !remaining.IsPositive() {
			break
		}
	}

	return tax, topRate
}
