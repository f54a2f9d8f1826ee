package calculation

import (
	"github.com/rpgo/surplus-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// Active reports whether month falls inside the inflow's window.
// An inflow whose window ends before it starts is never active.
func Active(in domain.ScheduledInflow, month int) bool {
	return month >= in.FromMonth && month <= in.ToMonth
}

// ContributionDue reports whether the inflow pays its amount in the given month.
// One-time inflows pay once at FromMonth; recurring ones pay at FromMonth and
// then every Interval() months while the window is open.
func ContributionDue(in domain.ScheduledInflow, month int) bool {
	if !Active(in, month) {
		return false
	}
	interval := in.Interval()
	if interval == 0 {
		return month == in.FromMonth
	}
	return (month-in.FromMonth)%interval == 0
}

// Contribution returns the amount the inflow contributes in the given month
func Contribution(in domain.ScheduledInflow, month int) decimal.Decimal {
	if ContributionDue(in, month) {
		return in.Amount
	}
	return decimal.Zero
}

// TotalContribution sums the contributions of all inflows in the given month
func TotalContribution(inflows []domain.ScheduledInflow, month int) decimal.Decimal {
	total := decimal.Zero
	for _, in := range inflows {
		total = total.Add(Contribution(in, month))
	}
	return total
}
