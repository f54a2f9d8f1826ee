package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

func TestMinimumPayment(t *testing.T) {
	tests := []struct {
		name      string
		principal decimal.Decimal
		rate      decimal.Decimal
		term      int
		expected  decimal.Decimal
	}{
		{"30 year mortgage at 5.5%", d("100000"), d("5.5"), 360, d("567.79")},
		{"15 year mortgage at 4%", d("200000"), d("4"), 180, d("1479.38")},
		{"5 year car loan at 6%", d("25000"), d("6"), 60, d("483.32")},
		{"zero rate splits evenly", d("1200"), decimal.Zero, 12, d("100")},
		{"zero principal", decimal.Zero, d("5"), 360, decimal.Zero},
		{"negative principal", d("-100"), d("5"), 12, decimal.Zero},
		{"zero term", d("1000"), d("5"), 0, decimal.Zero},
		{"negative term", d("1000"), d("5"), -12, decimal.Zero},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MinimumPayment(tt.principal, tt.rate, tt.term)
			assert.True(t, got.Round(2).Equal(tt.expected), "expected %s, got %s", tt.expected, got.StringFixed(4))
		})
	}
}

func TestMinimumPayment_ZeroRateIsExactDivision(t *testing.T) {
	principal := d("100000")
	got := MinimumPayment(principal, decimal.Zero, 360)
	assert.True(t, got.Equal(principal.Div(decimal.NewFromInt(360))))
}

func TestMinimumPayment_RetiresPrincipal(t *testing.T) {
	principal := d("50000")
	rate := d("7.25")
	payment := MinimumPayment(principal, rate, 120)

	balance := principal
	for m := 0; m < 120; m++ {
		interest := balance.Mul(MonthlyRate(rate)).Round(workingPlaces)
		balance = balance.Sub(payment.Sub(interest))
	}
	assert.True(t, balance.Abs().LessThan(d("0.01")), "residual balance %s", balance.String())
	assert.True(t, payment.Mul(decimal.NewFromInt(120)).GreaterThan(principal))
}

func TestMonthlyRate(t *testing.T) {
	assert.True(t, MonthlyRate(d("12")).Equal(d("0.01")))
	assert.True(t, MonthlyRate(decimal.Zero).IsZero())
}
