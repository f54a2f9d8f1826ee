package calculation

import (
	"context"
	"errors"
	"fmt"

	"github.com/rpgo/surplus-calculator/internal/domain"
)

// ErrNoMinimumPayment is returned when the configured loans require no monthly payment,
// which leaves nothing to amortize or compare.
var ErrNoMinimumPayment = errors.New("loans have no minimum payment")

// ErrTermTooLong is returned when a loan term exceeds domain.MaxTermMonths
var ErrTermTooLong = errors.New("loan term too long")

// CalculationEngine orchestrates the three surplus scenarios
type CalculationEngine struct {
	Logger Logger
}

// NewCalculationEngine creates a new calculation engine
func NewCalculationEngine() *CalculationEngine {
	return &CalculationEngine{Logger: NopLogger{}}
}

// SetLogger sets the logger for the calculation engine. If nil is provided, a no-op logger is used.
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		ce.Logger = NopLogger{}
		return
	}
	ce.Logger = l
}

func (ce *CalculationEngine) logger() Logger {
	if ce.Logger == nil {
		return NopLogger{}
	}
	return ce.Logger
}

// Input reduces a configuration to the snapshot the scenario simulators run against
func (ce *CalculationEngine) Input(config *domain.Configuration) (SimulationInput, domain.LoanSummary) {
	summary := SummarizeLoans(config.Loans)
	return SimulationInput{
		Loan:          summary.Terms(),
		Inflows:       ScheduleInflows(config.Investments, summary.EarliestStartDate),
		CeilingMonths: ResolveCeiling(config.Settings.CeilingMonths, summary.LongestTermMonths),
		SavingsRate:   config.Settings.SavingsRate,
	}, summary
}

// Compare runs all three scenarios for a configuration and ranks them by net position
func (ce *CalculationEngine) Compare(ctx context.Context, config *domain.Configuration) (*domain.ScenarioComparison, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if config == nil {
		return nil, errors.New("configuration is required")
	}
	log := ce.logger()

	for i, loan := range config.Loans {
		if loan.TermMonths() > domain.MaxTermMonths {
			return nil, fmt.Errorf("loan %d: %d months exceeds %d: %w",
				i, loan.TermMonths(), domain.MaxTermMonths, ErrTermTooLong)
		}
	}

	in, summary := ce.Input(config)
	if !summary.TotalMinimumPayment.IsPositive() {
		return nil, fmt.Errorf("%d loan(s) totalling %s: %w",
			summary.LoanCount, summary.TotalPrincipal.StringFixed(2), ErrNoMinimumPayment)
	}

	log.Infof("comparing %d loan(s), principal %s at %s%%, minimum payment %s, %d inflow(s), ceiling %d months",
		summary.LoanCount, summary.TotalPrincipal.StringFixed(2), summary.WeightedRate.StringFixed(3),
		summary.TotalMinimumPayment.StringFixed(2), len(in.Inflows), in.Ceiling())

	results := make(map[domain.ScenarioID]domain.ScenarioResult, 3)
	for _, id := range []domain.ScenarioID{domain.BankSurplus, domain.Prepayment, domain.InvestSurplus} {
		result, err := RunScenario(id, in, log)
		if err != nil {
			return nil, fmt.Errorf("scenario %s: %w", id, err)
		}
		if !result.PaidOff {
			log.Warnf("scenario %s: loan not repaid within %d months", id, in.Ceiling())
		}
		log.Debugf("scenario %s: interest %s, payoff in %d months",
			id, result.TotalInterest.StringFixed(2), result.MonthsToPayoff)
		results[id] = result
	}

	a, b, c := results[domain.BankSurplus], results[domain.Prepayment], results[domain.InvestSurplus]
	net := CalculateNetPositions(a, b, c)
	best := ChooseBest(net)
	log.Infof("best scenario %s (%s), net A=%s B=%s C=%s",
		best, best.Name(), net.BankSurplus.StringFixed(2), net.Prepayment.StringFixed(2), net.InvestSurplus.StringFixed(2))

	return &domain.ScenarioComparison{
		GeneratedAt:   nowFunc(),
		Loans:         summary,
		CeilingMonths: in.Ceiling(),
		BankSurplus:   a,
		Prepayment:    b,
		InvestSurplus: c,
		Monthly:       MergeMonthly(a, b, c),
		Net:           net,
		Best:          best,
		Assumptions:   config.GenerateAssumptions(in.Ceiling()),
	}, nil
}
