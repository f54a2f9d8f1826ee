package decimal

import (
	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// Cent is the smallest amount a balance can hold before it counts as repaid
var Cent = decimal.New(1, -2)

// Money represents a monetary amount with proper financial precision
type Money struct {
	decimal.Decimal
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

// Round rounds the money amount to cents
func (m Money) Round() Money {
	return Money{m.Decimal.Round(2)}
}

// Settled reports whether the amount is at most one cent
func (m Money) Settled() bool {
	return m.Decimal.LessThanOrEqual(Cent)
}

// String returns the amount with two decimals and no grouping
func (m Money) String() string {
	return m.Decimal.StringFixed(2)
}

// Format renders the amount with a dollar sign, thousands separators and cents
func (m Money) Format() string {
	r := m.Round().Decimal
	sign := ""
	if r.IsNegative() {
		sign = "-"
		r = r.Abs()
	}
	cents := r.StringFixed(2)
	return sign + "$" + humanize.Comma(r.Truncate(0).IntPart()) + cents[len(cents)-3:]
}

// Whole renders the amount rounded to whole units with thousands separators
func (m Money) Whole() string {
	return humanize.Comma(m.Decimal.Round(0).IntPart())
}
