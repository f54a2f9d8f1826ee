package calculation

import (
	"github.com/rpgo/surplus-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// MergeMonthly aligns the three scenario ledgers on a shared 1-based month index.
// Months missing from a shorter ledger read as zero.
func MergeMonthly(a, b, c domain.ScenarioResult) []domain.ChartRow {
	length := len(a.Ledger)
	if len(b.Ledger) > length {
		length = len(b.Ledger)
	}
	if len(c.Ledger) > length {
		length = len(c.Ledger)
	}

	rows := make([]domain.ChartRow, length)
	for i := range rows {
		ea, eb, ec := entryAt(a.Ledger, i), entryAt(b.Ledger, i), entryAt(c.Ledger, i)
		rows[i] = domain.ChartRow{
			Month:                i + 1,
			BankSurplusBalance:   ea.LoanBalance,
			BankSurplusSavings:   ea.SavingsBalance,
			PrepaymentBalance:    eb.LoanBalance,
			InvestSurplusBalance: ec.LoanBalance,
			InvestSurplusValue:   ec.InvestmentValue,
		}
	}
	return rows
}

func entryAt(ledger []domain.MonthlyEntry, i int) domain.MonthlyEntry {
	if i < len(ledger) {
		return ledger[i]
	}
	return domain.MonthlyEntry{LoanBalance: decimal.Zero, SavingsBalance: decimal.Zero, InvestmentValue: decimal.Zero}
}

// CalculateNetPositions derives each scenario's terminal asset value minus the interest it paid.
// Scenario B holds no asset, so its position is the negated interest cost.
func CalculateNetPositions(a, b, c domain.ScenarioResult) domain.NetPositions {
	return domain.NetPositions{
		BankSurplus:   a.SavingsBalance.Sub(a.TotalInterest),
		Prepayment:    b.TotalInterest.Neg(),
		InvestSurplus: c.InvestmentValue.Sub(c.TotalInterest),
	}
}

// ChooseBest picks the scenario with the highest net position.
// Ties resolve to C, then B, then A.
func ChooseBest(net domain.NetPositions) domain.ScenarioID {
	a, b, c := net.BankSurplus, net.Prepayment, net.InvestSurplus
	if c.GreaterThanOrEqual(a) && c.GreaterThanOrEqual(b) {
		return domain.InvestSurplus
	}
	if b.GreaterThanOrEqual(a) && b.GreaterThanOrEqual(c) {
		return domain.Prepayment
	}
	return domain.BankSurplus
}
