package output

import (
	"fmt"

	"github.com/rpgo/surplus-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// CloseMargin is how far investing must beat the next best scenario before it is recommended outright
var CloseMargin = decimal.NewFromInt(1000)

// Recommendation encapsulates the selection result of the best scenario.
type Recommendation struct {
	Scenario      domain.ScenarioID
	Headline      string
	Message       string
	NetPosition   decimal.Decimal
	Margin        decimal.Decimal // lead over the next best net position
	InterestSaved decimal.Decimal // scenario A interest minus scenario B interest
	MonthsSaved   int             // scenario A payoff minus scenario B payoff
	Close         bool
}

// AnalyzeScenarios turns the engine's best-scenario decision into a recommendation.
// Outcomes without a clear winner are reported as close.
func AnalyzeScenarios(results *domain.ScenarioComparison) Recommendation {
	net := results.Net
	best := results.Best
	rec := Recommendation{
		Scenario:      best,
		NetPosition:   net.Of(best),
		InterestSaved: results.InterestSaved(),
		MonthsSaved:   results.BankSurplus.MonthsToPayoff - results.Prepayment.MonthsToPayoff,
	}

	runnerUp := decimal.Zero
	first := true
	for _, id := range []domain.ScenarioID{domain.BankSurplus, domain.Prepayment, domain.InvestSurplus} {
		if id == best {
			continue
		}
		if first || net.Of(id).GreaterThan(runnerUp) {
			runnerUp = net.Of(id)
			first = false
		}
	}
	rec.Margin = rec.NetPosition.Sub(runnerUp)

	switch {
	case best == domain.InvestSurplus && rec.Margin.GreaterThan(CloseMargin):
		rec.Headline = "Scenario C is Best!"
		rec.Message = fmt.Sprintf("Investing your extra money gives you the best outcome with a net position of %s. You'll be %s better off than the next best option.",
			FormatCurrency(rec.NetPosition), FormatCurrency(rec.Margin))
	case best == domain.Prepayment && rec.Margin.IsPositive():
		rec.Headline = "Scenario B is Best!"
		rec.Message = fmt.Sprintf("Paying down your loan faster saves you %s in interest and pays off your loan %s earlier.",
			FormatCurrency(rec.InterestSaved), FormatMonths(rec.MonthsSaved))
	case best == domain.BankSurplus:
		rec.Headline = "Scenario A is Best!"
		rec.Message = fmt.Sprintf("Saving your extra money in a safe account gives you the best net position of %s while maintaining maximum flexibility.",
			FormatCurrency(rec.NetPosition))
	default:
		rec.Close = true
		rec.Headline = "Results Are Close"
		rec.Message = "The scenarios have similar outcomes. Consider factors like risk tolerance, liquidity needs, and financial goals when choosing."
	}
	return rec
}
