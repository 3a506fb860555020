package calculation

import (
	"strings"
	"time"

	"github.com/payrollid/pph21-calculator/internal/domain"
	"github.com/payrollid/pph21-calculator/pkg/dateutil"
)

// PartialYearPolicy decides whether an employee who did not work the full
// calendar year still gets the annual progressive reconciliation in
// December or stays on monthly TER.
type PartialYearPolicy string

const (
	// PolicyAuto annualizes only for employees with twelve months worked.
	PolicyAuto PartialYearPolicy = "auto"
	// PolicyForceAnnual always runs the annual reconciliation.
	PolicyForceAnnual PartialYearPolicy = "force_annual"
	// PolicyForceMonthly always keeps monthly TER, even in December.
	PolicyForceMonthly PartialYearPolicy = "force_monthly"
)

// NormalizePolicy canonicalizes a policy value; unrecognized values
// normalize to auto.
func NormalizePolicy(raw string) PartialYearPolicy {
	switch PartialYearPolicy(strings.ToLower(strings.TrimSpace(raw))) {
	case PolicyForceAnnual:
		return PolicyForceAnnual
	case PolicyForceMonthly:
		return PolicyForceMonthly
	default:
		return PolicyAuto
	}
}

// MonthsWorkedInYear returns the number of months the employee worked in
// the fiscal year, in [0, 12]. Joining and relieving dates take
// precedence; absent both, the distinct months present in the supplied
// slips count instead.
func MonthsWorkedInYear(employee *domain.Employee, year int, slips []domain.SalarySlip) int {
	if months, ok := dateutil.MonthsWorked(year, employee.DateOfJoining, employee.RelievingDate); ok {
		return months
	}

	dates := make([]time.Time, 0, len(slips))
	for i := range slips {
		dates = append(dates, slips[i].PeriodStart())
	}
	return dateutil.DistinctMonths(year, dates)
}

// Annualize reports whether the December run applies the annual
// reconciliation under the given policy and months worked.
func (p PartialYearPolicy) Annualize(monthsWorked int) bool {
	switch p {
	case PolicyForceAnnual:
		return true
	case PolicyForceMonthly:
		return false
	default:
		return monthsWorked >= 12
	}
}
