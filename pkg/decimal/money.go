package decimal

import (
	"github.com/shopspring/decimal"
)

var (
	half     = decimal.New(5, -1)
	thousand = decimal.NewFromInt(1000)
	hundred  = decimal.NewFromInt(100)
	twelve   = decimal.NewFromInt(12)
)

// Money represents a rupiah amount with exact decimal precision
type Money struct {
	decimal.Decimal
}

// NewMoney creates a new Money instance from integer rupiah
func NewMoney(value int64) Money {
	return Money{decimal.NewFromInt(value)}
}

// NewMoneyFromDecimal creates a new Money instance from a decimal.Decimal
func NewMoneyFromDecimal(d decimal.Decimal) Money {
	return Money{d}
}

// NewMoneyFromString creates a new Money instance from a string
func NewMoneyFromString(value string) (Money, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Money{}, err
	}
	return Money{d}, nil
}

// RoundRupiah rounds to the nearest whole rupiah using the half-up rule
func (m Money) RoundRupiah() Money {
	return Money{RoundHalfUp(m.Decimal)}
}

// FloorThousand floors to the nearest thousand rupiah (PKP convention)
func (m Money) FloorThousand() Money {
	return Money{FloorToThousand(m.Decimal)}
}

// Annual converts a monthly amount to annual
func (m Money) Annual() Money {
	return Money{m.Decimal.Mul(twelve)}
}

// Monthly converts an annual amount to monthly
func (m Money) Monthly() Money {
	return Money{m.Decimal.Div(twelve)}
}

// ApplyPercent applies a percentage rate (e.g. 5 for 5%)
func (m Money) ApplyPercent(rate decimal.Decimal) Money {
	return Money{m.Decimal.Mul(rate).Div(hundred)}
}

// Add adds another Money amount
func (m Money) Add(other Money) Money {
	return Money{m.Decimal.Add(other.Decimal)}
}

// Sub subtracts another Money amount
func (m Money) Sub(other Money) Money {
	return Money{m.Decimal.Sub(other.Decimal)}
}

// GreaterThan checks if this amount is greater than another
func (m Money) GreaterThan(other Money) bool {
	return m.Decimal.GreaterThan(other.Decimal)
}

// LessThan checks if this amount is less than another
func (m Money) LessThan(other Money) bool {
	return m.Decimal.LessThan(other.Decimal)
}

// Equal checks if this amount equals another
func (m Money) Equal(other Money) bool {
	return m.Decimal.Equal(other.Decimal)
}

// IsZero checks if the amount is zero
func (m Money) IsZero() bool {
	return m.Decimal.IsZero()
}

// IsNegative checks if the amount is negative
func (m Money) IsNegative() bool {
	return m.Decimal.IsNegative()
}

// Min returns the minimum of two Money amounts
func Min(a, b Money) Money {
	if a.LessThan(b) {
		return a
	}
	return b
}

// Max returns the maximum of two Money amounts
func Max(a, b Money) Money {
	if a.GreaterThan(b) {
		return a
	}
	return b
}

// Zero returns a zero Money amount
func Zero() Money {
	return Money{decimal.Zero}
}

// String returns the whole-rupiah string representation
func (m Money) String() string {
	return m.Decimal.StringFixed(0)
}

// RoundHalfUp rounds to the nearest integer, ties away from the floor:
// 0.5 -> 1, 1.5 -> 2, 2.5 -> 3. Final tax amounts use this rule.
func RoundHalfUp(d decimal.Decimal) decimal.Decimal {
	return d.Add(half).Floor()
}

// FloorToThousand truncates down to the nearest multiple of 1,000.
// Annual PKP is floored this way before the progressive slabs apply.
func FloorToThousand(d decimal.Decimal) decimal.Decimal {
	return d.Div(thousand).Floor().Mul(thousand)
}

// Percent converts a percentage rate to the fraction applied to a base:
// amount * Percent(rate) == amount * rate / 100.
func Percent(base, rate decimal.Decimal) decimal.Decimal {
	return base.Mul(rate).Div(hundred)
}
