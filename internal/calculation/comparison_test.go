package calculation

import (
	"testing"

	"github.com/rpgo/surplus-calculator/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChooseBest(t *testing.T) {
	tests := []struct {
		name     string
		a, b, c  string
		expected domain.ScenarioID
	}{
		{"all equal favors invest", "100", "100", "100", domain.InvestSurplus},
		{"invest highest", "10", "20", "30", domain.InvestSurplus},
		{"prepay highest", "-500", "-100", "-300", domain.Prepayment},
		{"bank highest", "50", "-100", "20", domain.BankSurplus},
		{"prepay ties bank", "-100", "-100", "-200", domain.Prepayment},
		{"invest ties prepay", "-300", "-100", "-100", domain.InvestSurplus},
		{"invest ties bank", "200", "-100", "200", domain.InvestSurplus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			net := domain.NetPositions{BankSurplus: d(tt.a), Prepayment: d(tt.b), InvestSurplus: d(tt.c)}
			assert.Equal(t, tt.expected, ChooseBest(net))
		})
	}
}

func TestCalculateNetPositions(t *testing.T) {
	a := domain.ScenarioResult{TotalInterest: d("1000"), SavingsBalance: d("5000")}
	b := domain.ScenarioResult{TotalInterest: d("600")}
	c := domain.ScenarioResult{TotalInterest: d("1000"), InvestmentValue: d("7000")}

	net := CalculateNetPositions(a, b, c)

	assert.True(t, net.BankSurplus.Equal(d("4000")))
	assert.True(t, net.Prepayment.Equal(d("-600")))
	assert.True(t, net.InvestSurplus.Equal(d("6000")))
	assert.True(t, net.Of(domain.Prepayment).Equal(d("-600")))
}

func TestMergeMonthly_UnequalLengths(t *testing.T) {
	a := domain.ScenarioResult{Ledger: []domain.MonthlyEntry{
		{Month: 1, LoanBalance: d("900"), SavingsBalance: d("10")},
		{Month: 2, LoanBalance: d("800"), SavingsBalance: d("20")},
		{Month: 3, LoanBalance: d("700"), SavingsBalance: d("30")},
	}}
	b := domain.ScenarioResult{Ledger: []domain.MonthlyEntry{
		{Month: 1, LoanBalance: d("500")},
	}}
	c := domain.ScenarioResult{Ledger: []domain.MonthlyEntry{
		{Month: 1, LoanBalance: d("900"), InvestmentValue: d("11")},
		{Month: 2, LoanBalance: d("800"), InvestmentValue: d("22")},
	}}

	rows := MergeMonthly(a, b, c)

	require.Len(t, rows, 3)
	for i, row := range rows {
		assert.Equal(t, i+1, row.Month)
	}
	assert.True(t, rows[0].PrepaymentBalance.Equal(d("500")))
	assert.True(t, rows[1].PrepaymentBalance.IsZero())
	assert.True(t, rows[2].InvestSurplusBalance.IsZero())
	assert.True(t, rows[2].InvestSurplusValue.IsZero())
	assert.True(t, rows[2].BankSurplusSavings.Equal(d("30")))
	assert.True(t, rows[1].InvestSurplusValue.Equal(d("22")))
}

func TestMergeMonthly_Empty(t *testing.T) {
	assert.Empty(t, MergeMonthly(domain.ScenarioResult{}, domain.ScenarioResult{}, domain.ScenarioResult{}))
}
