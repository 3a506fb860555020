package output

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatRupiah renders an amount in the Indonesian convention: "Rp"
// prefix, dot thousands separators, no decimals. Negative amounts keep
// the sign ahead of the prefix, matching payslip refund lines.
func FormatRupiah(amount decimal.Decimal) string {
	digits := amount.StringFixed(0)

	negative := strings.HasPrefix(digits, "-")
	if negative {
		digits = digits[1:]
	}

	var groups []string
	for len(digits) > 3 {
		groups = append([]string{digits[len(digits)-3:]}, groups...)
		digits = digits[:len(digits)-3]
	}
	groups = append([]string{digits}, groups...)

	out := "Rp " + strings.Join(groups, ".")
	if negative {
		return "-" + out
	}
	return out
}
