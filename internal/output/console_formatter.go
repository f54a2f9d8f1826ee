package output

import (
	"bytes"
	"fmt"

	"github.com/rpgo/surplus-calculator/internal/domain"
)

// ConsoleFormatter provides a concise console style summary via the formatter interface.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string      { return "console-lite" }
func (c ConsoleFormatter) Extension() string { return "txt" }

func (c ConsoleFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "SURPLUS STRATEGY SUMMARY")
	fmt.Fprintln(&buf, "================================")
	fmt.Fprintf(&buf, "Loans: %s at %s, minimum payment %s/month\n",
		FormatCurrency(results.Loans.TotalPrincipal),
		FormatPercentage(results.Loans.WeightedRate),
		results.Loans.TotalMinimumPayment.StringFixed(2))
	fmt.Fprintln(&buf)
	for _, sc := range results.Results() {
		marker := ""
		if sc.Scenario == results.Best {
			marker = " [best]"
		}
		fmt.Fprintf(&buf, "%s %s%s: Paid=%s Interest=%s Payoff=%s Final=%s Net=%s\n",
			sc.Scenario, sc.Name, marker,
			FormatCurrency(sc.TotalPaid),
			FormatCurrency(sc.TotalInterest),
			FormatMonths(sc.MonthsToPayoff),
			FormatCurrency(finalValue(sc)),
			FormatCurrency(results.Net.Of(sc.Scenario)),
		)
	}
	rec := AnalyzeScenarios(results)
	fmt.Fprintln(&buf)
	fmt.Fprintf(&buf, "Recommended: %s (%s)\n", rec.Scenario, rec.Headline)
	return buf.Bytes(), nil
}
