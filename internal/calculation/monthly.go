package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/payrollid/pph21-calculator/internal/config"
	"github.com/payrollid/pph21-calculator/internal/domain"
	rupiah "github.com/payrollid/pph21-calculator/pkg/decimal"
)

const msgNotFullTime = "employment type is not Full-time; TER withholding skipped"

// MonthlyCalculator computes one pay period's PPh 21 withholding under the
// effective-rate (TER) method. It is stateless per call and safe for
// concurrent use.
type MonthlyCalculator struct {
	provider config.Provider
	logger   Logger
}

// NewMonthlyCalculator creates a monthly TER calculator. A nil logger
// defaults to NopLogger.
func NewMonthlyCalculator(provider config.Provider, logger Logger) *MonthlyCalculator {
	if logger == nil {
		logger = NopLogger{}
	}
	return &MonthlyCalculator{provider: provider, logger: logger}
}

// Calculate computes the month's withholding from the payslip components.
// Non-Full-time employees get a zero result with EmploymentTypeChecked
// false. The monthly taxable base is bruto less biaya jabatan; pengurang
// netto is reported in the breakdown but enters the base only at the
// annual reconciliation.
func (c *MonthlyCalculator) Calculate(taxStatus domain.TaxStatus, employmentType string, earnings, deductions []domain.ComponentRow) (*domain.MonthlyTaxResult, error) {
	if employmentType != domain.EmploymentTypeFullTime {
		return &domain.MonthlyTaxResult{
			EmploymentTypeChecked: false,
			Message:               msgNotFullTime,
		}, nil
	}

	base, err := ComputeTaxableBase(earnings, deductions, c.provider.BiayaJabatanRate(), c.provider.BiayaJabatanCapMonthly())
	if err != nil {
		return nil, err
	}

	taxable := base.Bruto.Sub(base.BiayaJabatan)
	if taxable.IsNegative() {
		taxable = decimal.Zero
	}

	status := domain.NormalizeTaxStatus(string(taxStatus))
	if !status.Known() {
		c.logger.Warnf("unknown tax status %q, using TER category C", taxStatus)
	}
	category := c.provider.TERCategory(status)

	rate, err := c.provider.TERRate(category, taxable)
	if err != nil {
		// Coverage holes mean a broken override table; the statutory
		// defaults never produce one. Log and withhold nothing rather
		// than abort the payroll run.
		c.logger.Errorf("TER rate lookup failed for %s at %s: %v", category, taxable, err)
		rate = decimal.Zero
	}

	return &domain.MonthlyTaxResult{
		Bruto:                 base.Bruto,
		PengurangNetto:        base.PengurangNetto,
		BiayaJabatan:          base.BiayaJabatan,
		TaxableIncome:         taxable,
		TERCategory:           category,
		Rate:                  rate,
		PPh21:                 rupiah.RoundHalfUp(rupiah.Percent(taxable, rate)),
		EmploymentTypeChecked: true,
	}, nil
}
