package calculation

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/payrollid/pph21-calculator/internal/config"
	"github.com/payrollid/pph21-calculator/internal/domain"
	rupiah "github.com/payrollid/pph21-calculator/pkg/decimal"
)

// YearToDate carries the caller-supplied January-November aggregates the
// December reconciliation works from.
type YearToDate struct {
	Bruto   decimal.Decimal
	Netto   decimal.Decimal
	TaxPaid decimal.Decimal
}

// AggregateYearToDate builds YearToDate from the year's non-December
// salary slips. Netto per slip is bruto less pengurang netto and biaya
// jabatan; tax paid comes from the slip's PPh 21 deduction.
func AggregateYearToDate(provider config.Provider, slips []domain.SalarySlip, year int) (YearToDate, error) {
	var ytd YearToDate
	rate := provider.BiayaJabatanRate()
	cap := provider.BiayaJabatanCapMonthly()

	for i := range slips {
		slip := &slips[i]
		if slip.Year != year || slip.Month == time.December {
			continue
		}
		base, err := ComputeTaxableBase(slip.Earnings, slip.Deductions, rate, cap)
		if err != nil {
			return YearToDate{}, fmt.Errorf("slip %s: %w", slip.ID, err)
		}
		ytd.Bruto = ytd.Bruto.Add(base.Bruto)
		ytd.Netto = ytd.Netto.Add(base.Netto())
		ytd.TaxPaid = ytd.TaxPaid.Add(slip.PPh21Paid())
	}
	return ytd, nil
}

// DecemberCalculator computes the annual progressive reconciliation posted
// on the December payslip. Stateless per call.
type DecemberCalculator struct {
	provider config.Provider
	logger   Logger
}

// NewDecemberCalculator creates a December reconciliation calculator. A
// nil logger defaults to NopLogger.
func NewDecemberCalculator(provider config.Provider, logger Logger) *DecemberCalculator {
	if logger == nil {
		logger = NopLogger{}
	}
	return &DecemberCalculator{provider: provider, logger: logger}
}

// Reconcile computes the true annual liability and the December
// correction. The annual netto basis follows the configured policy:
// annualize_from_december extrapolates December's figures across twelve
// months (Jan-Nov actuals are display-only), accumulate_actual_months
// sums the year's actual slips via the supplied aggregates. The
// correction equals annual liability minus tax already paid Jan-Nov and
// may be negative.
func (c *DecemberCalculator) Reconcile(employee *domain.Employee, december *domain.SalarySlip, ytd YearToDate) (*domain.AnnualReconciliationResult, error) {
	if employee == nil {
		return nil, &domain.MissingContextError{What: "employee"}
	}
	if december == nil {
		return nil, &domain.MissingContextError{What: "december salary slip"}
	}

	if !employee.IsFullTime() {
		return &domain.AnnualReconciliationResult{
			EmploymentTypeChecked: false,
			Rate:                  "0%",
			Note:                  msgNotFullTime,
		}, nil
	}

	bjRate := c.provider.BiayaJabatanRate()
	bjCapMonthly := c.provider.BiayaJabatanCapMonthly()
	bjCapAnnual := c.provider.BiayaJabatanCapAnnual()

	base, err := ComputeTaxableBase(december.Earnings, december.Deductions, bjRate, bjCapMonthly)
	if err != nil {
		return nil, err
	}

	// The December biaya jabatan is re-capped even when the slip carries
	// an explicit row, so a generator rounding artifact cannot leak into
	// the annual basis.
	bjMonth := base.BiayaJabatan
	if bjMonth.GreaterThan(bjCapMonthly) {
		bjMonth = bjCapMonthly
	}
	if computed := rupiah.Percent(base.Bruto, bjRate); bjMonth.GreaterThan(computed) {
		bjMonth = computed
	}
	bjAnnual := rupiah.Min(
		rupiah.NewMoneyFromDecimal(bjMonth).Annual(),
		rupiah.NewMoneyFromDecimal(bjCapAnnual),
	).Decimal

	jpjhtMonth := december.JPJHTEmployeeMonthly()
	jpjhtAnnual := rupiah.NewMoneyFromDecimal(jpjhtMonth).Annual().Decimal

	nettoDecember := base.Bruto.Sub(base.PengurangNetto).Sub(bjMonth)

	var brutoTotal, nettoTotal decimal.Decimal
	switch c.provider.AnnualBasis() {
	case config.AccumulateActualMonths:
		brutoTotal = ytd.Bruto.Add(base.Bruto)
		nettoTotal = ytd.Netto.Add(nettoDecember)
	default:
		brutoTotal = rupiah.NewMoneyFromDecimal(base.Bruto).Annual().Decimal
		nettoTotal = brutoTotal.Sub(bjAnnual).Sub(jpjhtAnnual)
	}

	result := &domain.AnnualReconciliationResult{
		BrutoJanNov:            ytd.Bruto,
		NettoJanNov:            ytd.Netto,
		PPh21PaidJanNov:        ytd.TaxPaid,
		BrutoDesember:          base.Bruto,
		PengurangNettoDesember: base.PengurangNetto,
		BiayaJabatanDesember:   bjMonth,
		NettoDesember:          nettoDecember,
		JPJHTEmployeeMonth:     jpjhtMonth,
		JPJHTEmployeeAnnual:    jpjhtAnnual,
		BrutoTotal:             brutoTotal,
		NettoTotal:             nettoTotal,
		EmploymentTypeChecked:  true,
	}

	status := domain.NormalizeTaxStatus(string(employee.TaxStatus))
	ptkp, err := c.provider.PTKPAmount(status)
	if err != nil {
		// A malformed status must not halt the December run; PTKP zero is
		// the conservative floor (it can only overstate the liability).
		c.logger.Warnf("employee %s: %v, using PTKP 0", employee.ID, err)
		ptkp = decimal.Zero
		result.Note = fmt.Sprintf("tax status %q not found, PTKP treated as 0", employee.TaxStatus)
	}
	result.PTKPAnnual = ptkp

	pkp := nettoTotal.Sub(ptkp)
	if pkp.IsNegative() {
		pkp = decimal.Zero
	}
	pkp = rupiah.FloorToThousand(pkp)
	result.PKPAnnual = pkp

	tax, topRate := ProgressiveTax(pkp, c.provider.TaxSlabs())
	result.Rate = topRate
	result.PPh21Annual = rupiah.RoundHalfUp(tax)

	result.KoreksiPPh21 = result.PPh21Annual.Sub(ytd.TaxPaid)
	result.PPh21Bulan = result.KoreksiPPh21

	return result, nil
}
