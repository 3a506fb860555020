package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/payrollid/pph21-calculator/internal/domain"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tax.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFromFile(t *testing.T) {
	path := writeConfigFile(t, `
ptkp:
  TK0: 54000000
  K1: 63000000
biaya_jabatan:
  rate_percent: 5
  cap_annual: 12000000
annual_basis: accumulate_actual_months
`)

	parser := NewInputParser()
	cfg, err := parser.LoadFromFile(path)
	require.NoError(t, err)

	assert.True(t, cfg.PTKP[domain.TaxStatusTK0].Equal(decimal.NewFromInt(54_000_000)))
	assert.True(t, cfg.BiayaJabatan.CapAnnual.Equal(decimal.NewFromInt(12_000_000)))
	assert.Equal(t, AccumulateActualMonths, cfg.AnnualBasis)

	// Omitted sections normalize to statutory defaults.
	assert.NotEmpty(t, cfg.TERBrackets[domain.TERCategoryA])
	assert.Len(t, cfg.TaxSlabs, 5)
}

func TestLoadFromFileErrors(t *testing.T) {
	parser := NewInputParser()

	_, err := parser.LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := writeConfigFile(t, "ptkp: [not, a, map]")
	_, err = parser.LoadFromFile(path)
	assert.Error(t, err)
}

func TestValidateTERBrackets(t *testing.T) {
	parser := NewInputParser()

	valid := []domain.TERBracket{
		{IncomeFrom: decimal.Zero, IncomeTo: decimal.NewFromInt(5_000_000), Rate: decimal.Zero},
		{IncomeFrom: decimal.NewFromInt(5_000_000), Rate: decimal.NewFromInt(5), IsHighestBracket: true},
	}
	assert.NoError(t, parser.validateTERBrackets(domain.TERCategoryA, valid))

	gap := []domain.TERBracket{
		{IncomeFrom: decimal.Zero, IncomeTo: decimal.NewFromInt(5_000_000), Rate: decimal.Zero},
		{IncomeFrom: decimal.NewFromInt(6_000_000), Rate: decimal.NewFromInt(5), IsHighestBracket: true},
	}
	assert.Error(t, parser.validateTERBrackets(domain.TERCategoryA, gap))

	noHighest := []domain.TERBracket{
		{IncomeFrom: decimal.Zero, IncomeTo: decimal.NewFromInt(5_000_000), Rate: decimal.Zero},
		{IncomeFrom: decimal.NewFromInt(5_000_000), IncomeTo: decimal.NewFromInt(9_000_000), Rate: decimal.NewFromInt(5)},
	}
	assert.Error(t, parser.validateTERBrackets(domain.TERCategoryA, noHighest))

	highestNotLast := []domain.TERBracket{
		{IncomeFrom: decimal.Zero, Rate: decimal.Zero, IsHighestBracket: true},
		{IncomeFrom: decimal.Zero, IncomeTo: decimal.NewFromInt(9_000_000), Rate: decimal.NewFromInt(5)},
	}
	assert.Error(t, parser.validateTERBrackets(domain.TERCategoryA, highestNotLast))
}

func TestValidateTaxSlabs(t *testing.T) {
	parser := NewInputParser()

	assert.NoError(t, parser.validateTaxSlabs(domain.DefaultTaxSlabs()))

	boundedLast := []domain.ProgressiveBracket{
		{UpperBound: decimal.NewFromInt(60_000_000), Rate: decimal.NewFromInt(5)},
		{UpperBound: decimal.NewFromInt(250_000_000), Rate: decimal.NewFromInt(15)},
	}
	assert.Error(t, parser.validateTaxSlabs(boundedLast))

	notAscending := []domain.ProgressiveBracket{
		{UpperBound: decimal.NewFromInt(250_000_000), Rate: decimal.NewFromInt(5)},
		{UpperBound: decimal.NewFromInt(60_000_000), Rate: decimal.NewFromInt(15)},
		{UpperBound: decimal.Zero, Rate: decimal.NewFromInt(35)},
	}
	assert.Error(t, parser.validateTaxSlabs(notAscending))
}

func TestValidateConfigurationRejectsBadValues(t *testing.T) {
	parser := NewInputParser()

	cfg := TaxConfiguration{PTKP: map[domain.TaxStatus]decimal.Decimal{
		domain.TaxStatusTK0: decimal.NewFromInt(-1),
	}}
	assert.Error(t, parser.ValidateConfiguration(&cfg))

	cfg = TaxConfiguration{PTKPToTER: map[domain.TaxStatus]domain.TERCategory{
		domain.TaxStatusTK0: "TER D",
	}}
	assert.Error(t, parser.ValidateConfiguration(&cfg))

	cfg = TaxConfiguration{AnnualBasis: "annualize_sideways"}
	assert.Error(t, parser.ValidateConfiguration(&cfg))

	cfg = TaxConfiguration{}
	cfg.BiayaJabatan.RatePercent = decimal.NewFromInt(250)
	assert.Error(t, parser.ValidateConfiguration(&cfg))
}
