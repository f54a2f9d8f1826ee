package calculation

import (
	"time"

	"github.com/rpgo/surplus-calculator/internal/domain"
	"github.com/rpgo/surplus-calculator/pkg/dateutil"
	"github.com/shopspring/decimal"
)

// SummarizeLoans combines loans into the single loan the scenarios simulate:
// summed principal and minimum payments, a principal-weighted rate, the
// longest term and the earliest start date.
func SummarizeLoans(loans []domain.Loan) domain.LoanSummary {
	summary := domain.LoanSummary{
		TotalPrincipal:      decimal.Zero,
		WeightedRate:        decimal.Zero,
		TotalMinimumPayment: decimal.Zero,
		LoanCount:           len(loans),
	}

	weighted := decimal.Zero
	starts := make([]time.Time, 0, len(loans))
	for _, loan := range loans {
		months := loan.TermMonths()
		summary.TotalPrincipal = summary.TotalPrincipal.Add(loan.Amount)
		summary.TotalMinimumPayment = summary.TotalMinimumPayment.Add(MinimumPayment(loan.Amount, loan.InterestRate, months))
		weighted = weighted.Add(loan.InterestRate.Mul(loan.Amount))
		if months > summary.LongestTermMonths {
			summary.LongestTermMonths = months
		}
		starts = append(starts, loan.StartDate)
	}

	divisor := summary.TotalPrincipal
	if divisor.IsZero() {
		divisor = one
	}
	summary.WeightedRate = weighted.Div(divisor)
	summary.EarliestStartDate = dateutil.Earliest(starts...)
	return summary
}

// ScheduleInflows converts investments into month offsets relative to reference,
// applying the default type and frequency where they are unset.
func ScheduleInflows(investments []domain.Investment, reference time.Time) []domain.ScheduledInflow {
	inflows := make([]domain.ScheduledInflow, len(investments))
	for i, inv := range investments {
		inflows[i] = domain.ScheduledInflow{
			Name:      inv.Name,
			Type:      inv.EffectiveType(),
			Frequency: inv.EffectiveFrequency(),
			Amount:    inv.Amount,
			APR:       inv.APR,
			FromMonth: dateutil.MonthsBetween(reference, inv.FromDate),
			ToMonth:   dateutil.MonthsBetween(reference, inv.ToDate),
		}
	}
	return inflows
}

// ResolveCeiling picks the simulation horizon: an explicit ceiling wins, then
// the longest loan term, then DefaultCeilingMonths. The result is capped at
// domain.MaxTermMonths.
func ResolveCeiling(configured, longestTermMonths int) int {
	if configured > 0 {
		return min(configured, domain.MaxTermMonths)
	}
	if longestTermMonths > 0 {
		return min(longestTermMonths, domain.MaxTermMonths)
	}
	return DefaultCeilingMonths
}
