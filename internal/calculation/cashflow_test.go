package calculation

import (
	"testing"

	"github.com/rpgo/surplus-calculator/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func inflow(kind domain.InvestmentType, freq domain.Frequency, amount string, from, to int) domain.ScheduledInflow {
	return domain.ScheduledInflow{
		Type:      kind,
		Frequency: freq,
		Amount:    d(amount),
		APR:       decimal.Zero,
		FromMonth: from,
		ToMonth:   to,
	}
}

func countDue(in domain.ScheduledInflow, months int) int {
	count := 0
	for m := 0; m < months; m++ {
		if ContributionDue(in, m) {
			count++
		}
	}
	return count
}

func TestContributionDue(t *testing.T) {
	tests := []struct {
		name   string
		inflow domain.ScheduledInflow
		due    []int
		notDue []int
	}{
		{
			name:   "one-time pays at from month only",
			inflow: inflow(domain.OneTime, domain.Monthly, "1000", 3, 20),
			due:    []int{3},
			notDue: []int{0, 2, 4, 12, 20, 21},
		},
		{
			name:   "recurring monthly pays every month in window",
			inflow: inflow(domain.Recurring, domain.Monthly, "100", 2, 5),
			due:    []int{2, 3, 4, 5},
			notDue: []int{0, 1, 6, 7},
		},
		{
			name:   "recurring yearly pays every twelve months",
			inflow: inflow(domain.Recurring, domain.Yearly, "100", 1, 30),
			due:    []int{1, 13, 25},
			notDue: []int{0, 2, 12, 14, 37},
		},
		{
			name:   "inverted window is inert",
			inflow: inflow(domain.Recurring, domain.Monthly, "100", 10, 5),
			notDue: []int{4, 5, 7, 10, 11},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, m := range tt.due {
				assert.True(t, ContributionDue(tt.inflow, m), "month %d should be due", m)
				assert.True(t, Contribution(tt.inflow, m).Equal(tt.inflow.Amount))
			}
			for _, m := range tt.notDue {
				assert.False(t, ContributionDue(tt.inflow, m), "month %d should not be due", m)
				assert.True(t, Contribution(tt.inflow, m).IsZero())
			}
		})
	}
}

func TestContributionCounts(t *testing.T) {
	monthly := inflow(domain.Recurring, domain.Monthly, "50", 0, 11)
	yearly := inflow(domain.Recurring, domain.Yearly, "50", 0, 11)
	once := inflow(domain.OneTime, domain.Monthly, "50", 0, 11)

	assert.Equal(t, 12, countDue(monthly, 360))
	assert.Equal(t, 1, countDue(yearly, 360))
	assert.Equal(t, 1, countDue(once, 360))
}

func TestActive(t *testing.T) {
	in := inflow(domain.OneTime, domain.Monthly, "1", 2, 4)
	assert.False(t, Active(in, 1))
	assert.True(t, Active(in, 2))
	assert.True(t, Active(in, 4))
	assert.False(t, Active(in, 5))
}

func TestTotalContribution(t *testing.T) {
	inflows := []domain.ScheduledInflow{
		inflow(domain.OneTime, domain.Monthly, "1000", 0, 100),
		inflow(domain.Recurring, domain.Monthly, "200", 0, 100),
		inflow(domain.Recurring, domain.Yearly, "50", 6, 100),
	}

	assert.True(t, TotalContribution(inflows, 0).Equal(d("1200")))
	assert.True(t, TotalContribution(inflows, 1).Equal(d("200")))
	assert.True(t, TotalContribution(inflows, 6).Equal(d("250")))
	assert.True(t, TotalContribution(inflows, 101).IsZero())
	assert.True(t, TotalContribution(nil, 0).IsZero())
}
