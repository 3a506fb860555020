package dateutil

import (
	"time"
)

// MonthsWorked returns the number of months worked within a calendar year,
// derived from the joining and relieving dates clipped to [January, December].
// The second return value is false when neither date is known, in which case
// the caller should fall back to counting distinct payslip months.
func MonthsWorked(year int, joining, relieving *time.Time) (int, bool) {
	if joining == nil && relieving == nil {
		return 0, false
	}

	startMonth := 1
	endMonth := 12

	if joining != nil {
		if joining.Year() > year {
			return 0, true
		}
		if joining.Year() == year {
			startMonth = int(joining.Month())
		}
	}
	if relieving != nil {
		if relieving.Year() < year {
			return 0, true
		}
		if relieving.Year() == year {
			endMonth = int(relieving.Month())
		}
	}

	months := endMonth - startMonth + 1
	if months < 0 {
		months = 0
	}
	if months > 12 {
		months = 12
	}
	return months, true
}

// DistinctMonths counts the distinct calendar months of the given year
// present in dates.
func DistinctMonths(year int, dates []time.Time) int {
	seen := make(map[time.Month]struct{})
	for _, d := range dates {
		if d.IsZero() || d.Year() != year {
			continue
		}
		seen[d.Month()] = struct{}{}
	}
	return len(seen)
}

// IsDecember reports whether the date falls in December.
func IsDecember(d time.Time) bool {
	return d.Month() == time.December
}

// MonthStart returns the first day of the month containing d.
func MonthStart(d time.Time) time.Time {
	return time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, d.Location())
}
