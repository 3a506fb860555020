package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Component names the engine recognizes by name. Everything else is driven
// purely by the boolean flags on the row.
const biayaJabatanName = "biaya jabatan"

var jpJHTEmployeeNames = map[string]struct{}{
	"bpjs jht employee": {},
	"bpjs jp employee":  {},
}

var pph21ComponentNames = map[string]struct{}{
	"pph 21": {},
	"pph21":  {},
	"pph-21": {},
}

// ComponentRow is one earning or deduction line of a payslip as supplied by
// the payroll generator. The flags mirror the salary-component master.
type ComponentRow struct {
	Component                    string          `yaml:"component" json:"component"`
	Amount                       decimal.Decimal `yaml:"amount" json:"amount"`
	IsTaxApplicable              bool            `yaml:"is_tax_applicable" json:"is_tax_applicable"`
	IsIncomeTaxComponent         bool            `yaml:"is_income_tax_component" json:"is_income_tax_component"`
	VariableBasedOnTaxableSalary bool            `yaml:"variable_based_on_taxable_salary" json:"variable_based_on_taxable_salary"`
	DoNotIncludeInTotal          bool            `yaml:"do_not_include_in_total" json:"do_not_include_in_total"`
	StatisticalComponent         bool            `yaml:"statistical_component" json:"statistical_component"`
	ExemptedFromIncomeTax        bool            `yaml:"exempted_from_income_tax" json:"exempted_from_income_tax"`
}

func (r *ComponentRow) normalizedName() string {
	return strings.ToLower(strings.TrimSpace(r.Component))
}

// IsBiayaJabatan reports whether the row is the position-allowance
// deduction, matched case-insensitively on the component name.
func (r *ComponentRow) IsBiayaJabatan() bool {
	return strings.Contains(r.normalizedName(), biayaJabatanName)
}

// IsJPJHTEmployee reports whether the row is an employee-paid BPJS JP or
// JHT contribution, which the December annualization excludes from netto.
func (r *ComponentRow) IsJPJHTEmployee() bool {
	_, ok := jpJHTEmployeeNames[r.normalizedName()]
	return ok
}

// IsPPh21 reports whether the row is the income-tax deduction itself.
func (r *ComponentRow) IsPPh21() bool {
	_, ok := pph21ComponentNames[r.normalizedName()]
	return ok
}

// SalarySlip is one pay period's earnings/deductions breakdown, read-only
// to the tax engines. TaxPaid, when set by the host, is the PPh 21 amount
// already withheld on this slip.
type SalarySlip struct {
	ID         string          `yaml:"id" json:"id"`
	Year       int             `yaml:"year" json:"year"`
	Month      time.Month      `yaml:"month" json:"month"`
	Earnings   []ComponentRow  `yaml:"earnings" json:"earnings"`
	Deductions []ComponentRow  `yaml:"deductions" json:"deductions"`
	TaxPaid    decimal.Decimal `yaml:"tax_paid,omitempty" json:"tax_paid,omitempty"`
}

// PeriodStart returns the first day of the slip's pay period.
func (s *SalarySlip) PeriodStart() time.Time {
	return time.Date(s.Year, s.Month, 1, 0, 0, 0, 0, time.UTC)
}

// PPh21Paid returns the tax withheld on this slip: the explicit TaxPaid
// value when present, otherwise the sum of PPh 21 deduction rows.
func (s *SalarySlip) PPh21Paid() decimal.Decimal {
	if !s.TaxPaid.IsZero() {
		return s.TaxPaid
	}
	total := decimal.Zero
	for i := range s.Deductions {
		if s.Deductions[i].IsPPh21() {
			total = total.Add(s.Deductions[i].Amount)
		}
	}
	return total
}

// JPJHTEmployeeMonthly sums the employee-paid JP and JHT contribution rows.
func (s *SalarySlip) JPJHTEmployeeMonthly() decimal.Decimal {
	total := decimal.Zero
	for i := range s.Deductions {
		if s.Deductions[i].IsJPJHTEmployee() {
			total = total.Add(s.Deductions[i].Amount)
		}
	}
	return total
}
