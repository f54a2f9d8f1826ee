package output

import (
	"fmt"
	"strconv"

	"github.com/rpgo/surplus-calculator/internal/domain"
	money "github.com/rpgo/surplus-calculator/pkg/decimal"
	"github.com/shopspring/decimal"
)

// FormatCurrency formats an amount with thousands separators and no decimals, e.g. "100,000".
// Kept here so it can be reused by multiple formatters and unit tested in isolation.
func FormatCurrency(amount decimal.Decimal) string {
	return money.NewMoneyFromDecimal(amount).Whole()
}

// FormatCents formats an amount with a dollar sign, thousands separators and cents, e.g. "$1,234.50".
func FormatCents(amount decimal.Decimal) string {
	return money.NewMoneyFromDecimal(amount).Format()
}

// formatAmount renders an amount with two decimals and no grouping, as CSV cells do
func formatAmount(amount decimal.Decimal) string {
	return money.NewMoneyFromDecimal(amount).String()
}

// FormatPercentage formats a decimal as a percentage with 2 decimals.
func FormatPercentage(amount decimal.Decimal) string { return amount.StringFixed(2) + "%" }

// FormatMonths renders a month count as a duration, e.g. "5 years, 3 months".
func FormatMonths(months int) string {
	years := months / 12
	rest := months % 12
	if years == 0 {
		return plural(rest, "month")
	}
	if rest == 0 {
		return plural(years, "year")
	}
	return plural(years, "year") + ", " + plural(rest, "month")
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}

func intToString(i int) string { return strconv.Itoa(i) }

func boolToString(b bool) string { return strconv.FormatBool(b) }

// finalValue is the asset a scenario ends with: savings for A, nothing for B, investments for C
func finalValue(sc domain.ScenarioResult) decimal.Decimal {
	switch sc.Scenario {
	case domain.BankSurplus:
		return sc.SavingsBalance
	case domain.InvestSurplus:
		return sc.InvestmentValue
	default:
		return decimal.Zero
	}
}
