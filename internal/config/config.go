package config

import (
	"github.com/shopspring/decimal"

	"github.com/payrollid/pph21-calculator/internal/domain"
)

// AnnualBasis selects how the December reconciliation builds the annual
// netto/PKP basis. See the design notes: the regulation can be read either
// as "estimate the year as if December continued" or as "sum the actual
// months", and the two give different corrections.
type AnnualBasis string

const (
	// AnnualizeFromDecember multiplies December's figures by twelve.
	// Jan-Nov actuals are display-only on this basis. This is the default.
	AnnualizeFromDecember AnnualBasis = "annualize_from_december"
	// AccumulateActualMonths sums bruto, pengurang netto and biaya jabatan
	// over the year's actual payslips.
	AccumulateActualMonths AnnualBasis = "accumulate_actual_months"
)

// BiayaJabatanConfig holds the position-allowance deduction parameters.
// The monthly cap is derived as CapAnnual / 12.
type BiayaJabatanConfig struct {
	RatePercent decimal.Decimal `yaml:"rate_percent" json:"rate_percent"`
	CapAnnual   decimal.Decimal `yaml:"cap_annual" json:"cap_annual"`
}

// TaxConfiguration is the full rate-table configuration. Any empty section
// falls back to the statutory defaults at normalization time.
type TaxConfiguration struct {
	PTKP         map[domain.TaxStatus]decimal.Decimal       `yaml:"ptkp" json:"ptkp"`
	PTKPToTER    map[domain.TaxStatus]domain.TERCategory    `yaml:"ptkp_to_ter" json:"ptkp_to_ter"`
	TERBrackets  map[domain.TERCategory][]domain.TERBracket `yaml:"ter_brackets" json:"ter_brackets"`
	TaxSlabs     []domain.ProgressiveBracket                `yaml:"tax_slabs" json:"tax_slabs"`
	BiayaJabatan BiayaJabatanConfig                         `yaml:"biaya_jabatan" json:"biaya_jabatan"`
	AnnualBasis  AnnualBasis                                `yaml:"annual_basis" json:"annual_basis"`
}

// Normalize fills empty sections from the statutory defaults and returns
// the names of the sections that fell back, for error-level logging by the
// caller (an empty table in production means a misconfigured deployment).
func (c *TaxConfiguration) Normalize() []string {
	var fallbacks []string

	if len(c.PTKP) == 0 {
		c.PTKP = domain.DefaultPTKP()
		fallbacks = append(fallbacks, "ptkp")
	}
	if len(c.PTKPToTER) == 0 {
		c.PTKPToTER = domain.DefaultPTKPToTER()
		fallbacks = append(fallbacks, "ptkp_to_ter")
	}
	if len(c.TERBrackets) == 0 {
		c.TERBrackets = domain.DefaultTERBrackets()
		fallbacks = append(fallbacks, "ter_brackets")
	} else {
		// A category missing from a partial table fails closed to the
		// statutory brackets rather than to no-match.
		defaults := domain.DefaultTERBrackets()
		for _, category := range []domain.TERCategory{domain.TERCategoryA, domain.TERCategoryB, domain.TERCategoryC} {
			if len(c.TERBrackets[category]) == 0 {
				c.TERBrackets[category] = defaults[category]
				fallbacks = append(fallbacks, "ter_brackets."+string(category))
			}
		}
	}
	if len(c.TaxSlabs) == 0 {
		c.TaxSlabs = domain.DefaultTaxSlabs()
		fallbacks = append(fallbacks, "tax_slabs")
	}
	if c.BiayaJabatan.RatePercent.IsZero() {
		c.BiayaJabatan.RatePercent = domain.DefaultBiayaJabatanRate
	}
	if c.BiayaJabatan.CapAnnual.IsZero() {
		c.BiayaJabatan.CapAnnual = domain.DefaultBiayaJabatanCapAnnual
	}
	if c.AnnualBasis != AnnualizeFromDecember && c.AnnualBasis != AccumulateActualMonths {
		c.AnnualBasis = AnnualizeFromDecember
	}

	return fallbacks
}

// Default returns the fully-populated statutory configuration.
func Default() TaxConfiguration {
	var cfg TaxConfiguration
	cfg.Normalize()
	return cfg
}
