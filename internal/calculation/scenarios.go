package calculation

import (
	"fmt"

	"github.com/rpgo/surplus-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// SimulateBankSurplus runs Scenario A: the loan gets its minimum payment and
// every contribution is deposited in a savings account compounding monthly at
// the input's savings rate, before and after payoff alike.
func SimulateBankSurplus(in SimulationInput) domain.ScenarioResult {
	return simulateBankSurplus(in, NopLogger{})
}

// SimulatePrepayment runs Scenario B: the loan gets its minimum payment and
// every contribution due goes to principal, capped at what is still owed.
func SimulatePrepayment(in SimulationInput) domain.ScenarioResult {
	return simulatePrepayment(in, NopLogger{})
}

// SimulateInvestSurplus runs Scenario C: the loan gets its minimum payment and
// each inflow grows in its own account at its own APR.
func SimulateInvestSurplus(in SimulationInput) domain.ScenarioResult {
	return simulateInvestSurplus(in, NopLogger{})
}

// RunScenario dispatches to the simulator for one scenario id
func RunScenario(id domain.ScenarioID, in SimulationInput, logger Logger) (domain.ScenarioResult, error) {
	if logger == nil {
		logger = NopLogger{}
	}
	switch id {
	case domain.BankSurplus:
		return simulateBankSurplus(in, logger), nil
	case domain.Prepayment:
		return simulatePrepayment(in, logger), nil
	case domain.InvestSurplus:
		return simulateInvestSurplus(in, logger), nil
	default:
		return domain.ScenarioResult{}, fmt.Errorf("unknown scenario %q", id)
	}
}

// bankStrategy pools contributions into one savings balance
type bankStrategy struct {
	inflows   []domain.ScheduledInflow
	growth    decimal.Decimal
	savings   decimal.Decimal
	deposited decimal.Decimal
}

func (s *bankStrategy) month(step int, _ decimal.Decimal, entry *domain.MonthlyEntry) decimal.Decimal {
	deposit := TotalContribution(s.inflows, step)
	s.savings = s.savings.Add(deposit).Mul(s.growth).Round(workingPlaces)
	s.deposited = s.deposited.Add(deposit)

	entry.Saved = deposit
	entry.SavingsBalance = s.savings
	return decimal.Zero
}

func simulateBankSurplus(in SimulationInput, logger Logger) domain.ScenarioResult {
	strategy := &bankStrategy{
		inflows:   in.Inflows,
		growth:    one.Add(MonthlyRate(in.SavingsRate)),
		savings:   decimal.Zero,
		deposited: decimal.Zero,
	}
	result := simulate(in, strategy, logger).result(domain.BankSurplus)
	result.SavingsBalance = strategy.savings
	result.TotalDeposited = strategy.deposited
	return result
}

// prepayStrategy turns contributions into extra principal
type prepayStrategy struct {
	inflows []domain.ScheduledInflow
}

func (s *prepayStrategy) month(step int, owed decimal.Decimal, _ *domain.MonthlyEntry) decimal.Decimal {
	extra := decimal.Zero
	if !owed.IsPositive() {
		return extra
	}
	for _, in := range s.inflows {
		if !ContributionDue(in, step) {
			continue
		}
		// Each contribution is capped at the owed balance on its own. Several
		// contributions in one month can overshoot it; the ledger balance floors at zero.
		extra = extra.Add(decimal.Min(in.Amount, owed))
	}
	return extra
}

func simulatePrepayment(in SimulationInput, logger Logger) domain.ScenarioResult {
	return simulate(in, &prepayStrategy{inflows: in.Inflows}, logger).result(domain.Prepayment)
}

// investAccount is one inflow compounding on its own
type investAccount struct {
	inflow domain.ScheduledInflow
	growth decimal.Decimal
	value  decimal.Decimal
}

// step advances the account by one month and returns the principal added
func (a *investAccount) step(month int) decimal.Decimal {
	if !Active(a.inflow, month) {
		return decimal.Zero
	}

	added := decimal.Zero
	if a.inflow.Type == domain.Recurring {
		if ContributionDue(a.inflow, month) {
			added = a.inflow.Amount
			a.value = a.value.Add(added)
		}
		a.value = a.value.Mul(a.growth).Round(workingPlaces)
		return added
	}

	if month == a.inflow.FromMonth {
		a.value = a.inflow.Amount
		return a.inflow.Amount
	}
	a.value = a.value.Mul(a.growth).Round(workingPlaces)
	return added
}

// investStrategy tracks one account per inflow
type investStrategy struct {
	accounts []investAccount
}

func newInvestStrategy(inflows []domain.ScheduledInflow) *investStrategy {
	accounts := make([]investAccount, len(inflows))
	for i, in := range inflows {
		accounts[i] = investAccount{
			inflow: in,
			growth: one.Add(MonthlyRate(in.APR)),
			value:  decimal.Zero,
		}
	}
	return &investStrategy{accounts: accounts}
}

func (s *investStrategy) month(step int, _ decimal.Decimal, entry *domain.MonthlyEntry) decimal.Decimal {
	invested := decimal.Zero
	for i := range s.accounts {
		invested = invested.Add(s.accounts[i].step(step))
	}
	entry.Invested = invested
	entry.InvestmentValue = s.total()
	return decimal.Zero
}

func (s *investStrategy) total() decimal.Decimal {
	total := decimal.Zero
	for _, a := range s.accounts {
		total = total.Add(a.value)
	}
	return total
}

func (s *investStrategy) details() []domain.InvestmentDetail {
	details := make([]domain.InvestmentDetail, len(s.accounts))
	for i, a := range s.accounts {
		details[i] = domain.InvestmentDetail{
			Name:       a.inflow.Name,
			Amount:     a.inflow.Amount,
			FromMonth:  a.inflow.FromMonth,
			ToMonth:    a.inflow.ToMonth,
			FinalValue: a.value,
			Profit:     a.value.Sub(a.inflow.Amount),
		}
	}
	return details
}

func simulateInvestSurplus(in SimulationInput, logger Logger) domain.ScenarioResult {
	strategy := newInvestStrategy(in.Inflows)
	result := simulate(in, strategy, logger).result(domain.InvestSurplus)
	result.InvestmentValue = strategy.total()
	result.Investments = strategy.details()
	return result
}
