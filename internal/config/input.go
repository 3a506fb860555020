package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/payrollid/pph21-calculator/internal/domain"
)

var hundredPercent = decimal.NewFromInt(100)

// InputParser handles parsing of rate-table configuration files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a TaxConfiguration from a YAML file, validates it and
// normalizes empty sections to the statutory defaults.
func (ip *InputParser) LoadFromFile(filename string) (*TaxConfiguration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var cfg TaxConfiguration
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateConfiguration(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	cfg.Normalize()
	return &cfg, nil
}

// ValidateConfiguration validates the loaded configuration. Empty sections
// are allowed (they normalize to defaults); populated sections must satisfy
// the bracket invariants.
func (ip *InputParser) ValidateConfiguration(cfg *TaxConfiguration) error {
	for status, amount := range cfg.PTKP {
		if amount.IsNegative() {
			return fmt.Errorf("ptkp amount for %s is negative", status)
		}
	}

	for status, category := range cfg.PTKPToTER {
		switch category {
		case domain.TERCategoryA, domain.TERCategoryB, domain.TERCategoryC:
		default:
			return fmt.Errorf("ptkp_to_ter maps %s to unknown category %q", status, category)
		}
	}

	for category, brackets := range cfg.TERBrackets {
		if err := ip.validateTERBrackets(category, brackets); err != nil {
			return err
		}
	}

	if err := ip.validateTaxSlabs(cfg.TaxSlabs); err != nil {
		return err
	}

	if cfg.BiayaJabatan.RatePercent.IsNegative() || cfg.BiayaJabatan.RatePercent.GreaterThan(hundredPercent) {
		return fmt.Errorf("biaya_jabatan rate_percent %s out of range", cfg.BiayaJabatan.RatePercent)
	}
	if cfg.BiayaJabatan.CapAnnual.IsNegative() {
		return fmt.Errorf("biaya_jabatan cap_annual is negative")
	}

	if cfg.AnnualBasis != "" && cfg.AnnualBasis != AnnualizeFromDecember && cfg.AnnualBasis != AccumulateActualMonths {
		return fmt.Errorf("unknown annual_basis %q", cfg.AnnualBasis)
	}

	return nil
}

// validateTERBrackets checks the coverage invariant: ordered, adjacent,
// starting at zero, ending in a single unbounded highest bracket.
func (ip *InputParser) validateTERBrackets(category domain.TERCategory, brackets []domain.TERBracket) error {
	if len(brackets) == 0 {
		return nil
	}

	expectedFrom := decimal.Zero
	for i, b := range brackets {
		if !b.IncomeFrom.Equal(expectedFrom) {
			return fmt.Errorf("%s bracket %d starts at %s, expected %s (gap or overlap)",
				category, i, b.IncomeFrom, expectedFrom)
		}
		if b.Rate.IsNegative() {
			return fmt.Errorf("%s bracket %d has negative rate", category, i)
		}
		if i == len(brackets)-1 {
			if !b.IsHighestBracket {
				return fmt.Errorf("%s last bracket must have is_highest_bracket set", category)
			}
			continue
		}
		if b.IsHighestBracket {
			return fmt.Errorf("%s bracket %d is marked highest but is not last", category, i)
		}
		if b.IncomeTo.IsZero() || !b.IncomeTo.GreaterThan(b.IncomeFrom) {
			return fmt.Errorf("%s bracket %d has invalid upper edge %s", category, i, b.IncomeTo)
		}
		expectedFrom = b.IncomeTo
	}

	return nil
}

// validateTaxSlabs checks ascending order with exactly one unbounded slab
// at the end.
func (ip *InputParser) validateTaxSlabs(slabs []domain.ProgressiveBracket) error {
	if len(slabs) == 0 {
		return nil
	}

	prev := decimal.Zero
	for i, slab := range slabs {
		if slab.Rate.IsNegative() {
			return fmt.Errorf("tax slab %d has negative rate", i)
		}
		if i == len(slabs)-1 {
			if !slab.Unbounded() {
				return fmt.Errorf("last tax slab must be unbounded (upper_bound 0)")
			}
			continue
		}
		if slab.Unbounded() {
			return fmt.Errorf("tax slab %d is unbounded but is not last", i)
		}
		if !slab.UpperBound.GreaterThan(prev) {
			return fmt.Errorf("tax slab %d upper bound %s not ascending", i, slab.UpperBound)
		}
		prev = slab.UpperBound
	}

	return nil
}
