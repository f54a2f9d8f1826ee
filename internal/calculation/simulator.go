package calculation

import (
	"github.com/rpgo/surplus-calculator/internal/domain"
	money "github.com/rpgo/surplus-calculator/pkg/decimal"
	"github.com/shopspring/decimal"
)

// DefaultCeilingMonths is the simulation horizon used when none is given (30 years)
const DefaultCeilingMonths = 360

// SimulationInput is the read-only snapshot a scenario simulator runs against
type SimulationInput struct {
	Loan          domain.LoanTerms         `json:"loan"`
	Inflows       []domain.ScheduledInflow `json:"inflows"`
	CeilingMonths int                      `json:"ceiling_months"`
	SavingsRate   decimal.Decimal          `json:"savings_rate"` // Annual percentage, Scenario A only
}

// Ceiling returns the month ceiling, falling back to DefaultCeilingMonths and
// never exceeding domain.MaxTermMonths
func (in SimulationInput) Ceiling() int {
	if in.CeilingMonths <= 0 {
		return DefaultCeilingMonths
	}
	return min(in.CeilingMonths, domain.MaxTermMonths)
}

// surplusStrategy is the scenario-specific part of a simulated month.
type surplusStrategy interface {
	// month runs once per ledger row, before the row's balance is settled.
	// owed is the balance left after this month's base principal payment and is
	// zero once the loan is retired. The returned amount is paid on top of the
	// minimum payment and reduces principal.
	month(step int, owed decimal.Decimal, entry *domain.MonthlyEntry) decimal.Decimal
}

// amortization is the loan side of one simulation run
type amortization struct {
	totalPaid      decimal.Decimal
	totalInterest  decimal.Decimal
	monthsToPayoff int
	paidOff        bool
	ledger         []domain.MonthlyEntry
}

func (a amortization) result(id domain.ScenarioID) domain.ScenarioResult {
	return domain.ScenarioResult{
		Scenario:       id,
		Name:           id.Name(),
		TotalPaid:      a.totalPaid,
		TotalInterest:  a.totalInterest,
		MonthsToPayoff: a.monthsToPayoff,
		PaidOff:        a.paidOff,
		Ledger:         a.ledger,
	}
}

// simulate steps the loan month by month until it is repaid, the minimum
// payment stops covering interest, or the ceiling is reached. Rows after that
// point carry a zero loan balance while the strategy keeps running, so every
// scenario emits exactly Ceiling() rows.
func simulate(in SimulationInput, strategy surplusStrategy, logger Logger) amortization {
	rate := MonthlyRate(in.Loan.AnnualRate)
	ceiling := in.Ceiling()
	payment := in.Loan.MinimumPayment

	run := amortization{
		totalPaid:     decimal.Zero,
		totalInterest: decimal.Zero,
		ledger:        make([]domain.MonthlyEntry, 0, ceiling),
	}

	balance := in.Loan.Principal
	step := 0
	for !money.NewMoneyFromDecimal(balance).Settled() && step < ceiling {
		interest := balance.Mul(rate).Round(workingPlaces)
		principal := decimal.Min(payment.Sub(interest), balance)
		if !principal.IsPositive() {
			logger.Debugf("minimum payment %s does not cover interest %s in month %d; loan stops amortizing",
				payment.StringFixed(2), interest.StringFixed(2), step+1)
			break
		}

		entry := domain.MonthlyEntry{
			Month:         step + 1,
			InterestPaid:  interest,
			PrincipalPaid: principal,
		}
		extra := strategy.month(step, balance.Sub(principal), &entry)

		balance = balance.Sub(principal).Sub(extra)
		run.totalInterest = run.totalInterest.Add(interest)
		run.totalPaid = run.totalPaid.Add(payment).Add(extra)

		entry.ExtraPaid = extra
		entry.LoanBalance = decimal.Max(balance, decimal.Zero)
		run.ledger = append(run.ledger, entry)
		step++
	}
	run.monthsToPayoff = step
	run.paidOff = money.NewMoneyFromDecimal(balance).Settled()

	for step < ceiling {
		entry := domain.MonthlyEntry{Month: step + 1}
		strategy.month(step, decimal.Zero, &entry)
		run.ledger = append(run.ledger, entry)
		step++
	}

	return run
}
