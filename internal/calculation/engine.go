package calculation

import (
	"fmt"

	"github.com/payrollid/pph21-calculator/internal/config"
	"github.com/payrollid/pph21-calculator/internal/domain"
	"github.com/payrollid/pph21-calculator/pkg/dateutil"
)

// Engine is the facade the host payroll application calls. It wires the
// monthly and December calculators to the configuration provider and,
// optionally, a yearly ledger. Safe for concurrent use across employees.
type Engine struct {
	provider config.Provider
	monthly  *MonthlyCalculator
	december *DecemberCalculator
	ledger   YearlyLedger
	logger   Logger
}

// Option configures the Engine.
type Option func(*Engine)

// WithLedger attaches a yearly history ledger. Ledger failures are logged
// and never fail the calculation.
func WithLedger(ledger YearlyLedger) Option {
	return func(e *Engine) { e.ledger = ledger }
}

// WithLogger attaches a logger; the default is NopLogger.
func WithLogger(logger Logger) Option {
	return func(e *Engine) { e.logger = logger }
}

// NewEngine creates the calculation facade over a configuration provider.
func NewEngine(provider config.Provider, opts ...Option) *Engine {
	e := &Engine{provider: provider, logger: NopLogger{}}
	for _, opt := range opts {
		opt(e)
	}
	e.monthly = NewMonthlyCalculator(provider, e.logger)
	e.december = NewDecemberCalculator(provider, e.logger)
	return e
}

// ComputeMonthlyTax computes the slip's TER withholding and pushes the
// monthly row to the ledger when one is attached.
func (e *Engine) ComputeMonthlyTax(employee *domain.Employee, slip *domain.SalarySlip) (*domain.MonthlyTaxResult, error) {
	if employee == nil {
		return nil, &domain.MissingContextError{What: "employee"}
	}
	if slip == nil {
		return nil, &domain.MissingContextError{What: "salary slip"}
	}

	result, err := e.monthly.Calculate(employee.TaxStatus, employee.EmploymentType, slip.Earnings, slip.Deductions)
	if err != nil {
		return nil, err
	}

	if e.ledger != nil && result.EmploymentTypeChecked {
		row := domain.MonthlyLedgerRow{
			Month:          int(slip.Month),
			SlipID:         slip.ID,
			Bruto:          result.Bruto,
			PengurangNetto: result.PengurangNetto,
			BiayaJabatan:   result.BiayaJabatan,
			Netto:          result.Bruto.Sub(result.PengurangNetto).Sub(result.BiayaJabatan),
			Rate:           result.Rate,
			PPh21:          result.PPh21,
		}
		if err := e.ledger.UpsertMonthlyRecord(employee.ID, slip.Year, row); err != nil {
			e.logger.Errorf("yearly ledger sync failed for employee %s slip %s: %v", employee.ID, slip.ID, err)
		}
	}

	return result, nil
}

// ComputeAnnualCorrection runs the December calculation for the fiscal
// year. Under the auto policy an employee with fewer than twelve months
// worked stays on monthly TER for December's own figures; force_annual
// and force_monthly override the gate. Unrecognized policy values
// normalize to auto.
func (e *Engine) ComputeAnnualCorrection(employee *domain.Employee, slips []domain.SalarySlip, year int, policy PartialYearPolicy) (*domain.AnnualReconciliationResult, error) {
	if employee == nil {
		return nil, &domain.MissingContextError{What: "employee"}
	}

	december := findDecemberSlip(slips, year)
	if december == nil {
		return nil, &domain.MissingContextError{What: "december salary slip"}
	}

	policy = NormalizePolicy(string(policy))
	months := MonthsWorkedInYear(employee, year, slips)

	var (
		result *domain.AnnualReconciliationResult
		err    error
	)
	if policy.Annualize(months) {
		var ytd YearToDate
		ytd, err = AggregateYearToDate(e.provider, slips, year)
		if err != nil {
			return nil, err
		}
		result, err = e.december.Reconcile(employee, december, ytd)
	} else {
		result, err = e.monthlyAsCorrection(employee, december, months)
	}
	if err != nil {
		return nil, err
	}

	if e.ledger != nil && result.EmploymentTypeChecked {
		summary := domain.AnnualLedgerSummary{
			BrutoTotal:   result.BrutoTotal,
			NettoTotal:   result.NettoTotal,
			PTKPAnnual:   result.PTKPAnnual,
			PKPAnnual:    result.PKPAnnual,
			PPh21Annual:  result.PPh21Annual,
			KoreksiPPh21: result.KoreksiPPh21,
		}
		if err := e.ledger.UpsertAnnualSummary(employee.ID, year, summary); err != nil {
			e.logger.Errorf("yearly ledger sync failed for employee %s year %d: %v", employee.ID, year, err)
		}
	}

	return result, nil
}

// monthlyAsCorrection applies plain monthly TER to December's figures for
// partial-year employees: no annualization, no progressive slabs, the
// month's withholding doubles as the correction amount.
func (e *Engine) monthlyAsCorrection(employee *domain.Employee, december *domain.SalarySlip, months int) (*domain.AnnualReconciliationResult, error) {
	monthly, err := e.monthly.Calculate(employee.TaxStatus, employee.EmploymentType, december.Earnings, december.Deductions)
	if err != nil {
		return nil, err
	}
	if !monthly.EmploymentTypeChecked {
		return &domain.AnnualReconciliationResult{
			EmploymentTypeChecked: false,
			Rate:                  "0%",
			Note:                  monthly.Message,
		}, nil
	}

	return &domain.AnnualReconciliationResult{
		BrutoDesember:          monthly.Bruto,
		PengurangNettoDesember: monthly.PengurangNetto,
		BiayaJabatanDesember:   monthly.BiayaJabatan,
		NettoDesember:          monthly.Bruto.Sub(monthly.PengurangNetto).Sub(monthly.BiayaJabatan),
		BrutoTotal:             monthly.Bruto,
		NettoTotal:             monthly.Bruto.Sub(monthly.PengurangNetto).Sub(monthly.BiayaJabatan),
		Rate:                   monthly.Rate.String() + "%",
		PPh21Annual:            monthly.PPh21,
		PPh21Bulan:             monthly.PPh21,
		KoreksiPPh21:           monthly.PPh21,
		EmploymentTypeChecked:  true,
		Note:                   partialYearNote(months),
	}, nil
}

func partialYearNote(months int) string {
	return fmt.Sprintf("monthly TER applied: employee worked %d of 12 months this fiscal year", months)
}

// findDecemberSlip returns the last December slip of the year, or nil.
func findDecemberSlip(slips []domain.SalarySlip, year int) *domain.SalarySlip {
	for i := len(slips) - 1; i >= 0; i-- {
		if slips[i].Year == year && dateutil.IsDecember(slips[i].PeriodStart()) {
			return &slips[i]
		}
	}
	return nil
}
