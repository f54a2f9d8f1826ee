package calculation

import "github.com/shopspring/decimal"

// workingPlaces bounds the digits carried by month-over-month products so
// ledgers stay compact over long horizons.
const workingPlaces int32 = 12

var (
	one          = decimal.NewFromInt(1)
	monthsInRate = decimal.NewFromInt(1200) // 12 months x 100 percent
)

// MonthlyRate converts an annual percentage rate into a monthly fraction
func MonthlyRate(annualPercent decimal.Decimal) decimal.Decimal {
	return annualPercent.Div(monthsInRate)
}

// MinimumPayment calculates the fixed monthly payment that retires principal in
// termMonths equal payments: M = P * i(1+i)^n / ((1+i)^n - 1), with i = rate/1200.
// Non-positive principal or term yields zero; a zero rate splits principal evenly.
func MinimumPayment(principal, annualRate decimal.Decimal, termMonths int) decimal.Decimal {
	if !principal.IsPositive() || termMonths <= 0 {
		return decimal.Zero
	}
	n := decimal.NewFromInt(int64(termMonths))
	if annualRate.IsZero() {
		return principal.Div(n)
	}

	i := MonthlyRate(annualRate)
	factor := compoundFactor(i, termMonths)
	return principal.Mul(i).Mul(factor).Div(factor.Sub(one))
}

// compoundFactor returns (1+rate)^periods
func compoundFactor(rate decimal.Decimal, periods int) decimal.Decimal {
	growth := one.Add(rate)
	factor := one
	for p := 0; p < periods; p++ {
		factor = factor.Mul(growth).Round(2 * workingPlaces)
	}
	return factor
}
