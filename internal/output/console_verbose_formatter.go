package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/rpgo/surplus-calculator/internal/domain"
	"github.com/rpgo/surplus-calculator/pkg/dateutil"
)

// ConsoleVerboseFormatter renders the detailed console report via the pluggable interface.
type ConsoleVerboseFormatter struct{}

func (c ConsoleVerboseFormatter) Name() string      { return "console" }
func (c ConsoleVerboseFormatter) Extension() string { return "txt" }

func (c ConsoleVerboseFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintln(&buf, "=================================================================================")
	fmt.Fprintln(&buf, "SURPLUS STRATEGY COMPARISON")
	fmt.Fprintln(&buf, "=================================================================================")
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "KEY ASSUMPTIONS:")
	for _, a := range assumptionsOf(results.Assumptions) {
		fmt.Fprintf(&buf, "• %s\n", a)
	}
	fmt.Fprintln(&buf)

	loans := results.Loans
	fmt.Fprintln(&buf, "LOAN SUMMARY")
	fmt.Fprintln(&buf, "=============================================")
	fmt.Fprintf(&buf, "Loans:                 %d\n", loans.LoanCount)
	fmt.Fprintf(&buf, "Total Principal:       %s\n", FormatCurrency(loans.TotalPrincipal))
	fmt.Fprintf(&buf, "Weighted Rate:         %s\n", FormatPercentage(loans.WeightedRate))
	fmt.Fprintf(&buf, "Minimum Payment:       %s/month\n", loans.TotalMinimumPayment.StringFixed(2))
	fmt.Fprintf(&buf, "Longest Term:          %s\n", FormatMonths(loans.LongestTermMonths))
	if !loans.EarliestStartDate.IsZero() {
		fmt.Fprintf(&buf, "Simulation Starts:     %s\n", dateutil.FormatDate(loans.EarliestStartDate))
	}
	fmt.Fprintf(&buf, "Horizon:               %s\n", FormatMonths(results.CeilingMonths))
	fmt.Fprintln(&buf)

	for _, sc := range results.Results() {
		writeScenario(&buf, results, sc)
	}

	writeInvestmentBreakdown(&buf, results.InvestSurplus.Investments)
	writeYearlyTable(&buf, results.Monthly)

	rec := AnalyzeScenarios(results)
	fmt.Fprintln(&buf, "RECOMMENDATION")
	fmt.Fprintln(&buf, "=============================================")
	fmt.Fprintln(&buf, rec.Headline)
	fmt.Fprintln(&buf, rec.Message)

	return buf.Bytes(), nil
}

func writeScenario(buf *bytes.Buffer, results *domain.ScenarioComparison, sc domain.ScenarioResult) {
	title := fmt.Sprintf("SCENARIO %s: %s", sc.Scenario, sc.Name)
	if sc.Scenario == results.Best {
		title += " (BEST)"
	}
	fmt.Fprintln(buf, title)
	fmt.Fprintln(buf, strings.Repeat("=", 50))
	fmt.Fprintf(buf, "  Total Paid:        %s\n", FormatCurrency(sc.TotalPaid))
	fmt.Fprintf(buf, "  Total Interest:    %s\n", FormatCurrency(sc.TotalInterest))
	if sc.PaidOff {
		fmt.Fprintf(buf, "  Time to Pay Off:   %s\n", FormatMonths(sc.MonthsToPayoff))
	} else {
		fmt.Fprintf(buf, "  Time to Pay Off:   not repaid (stopped after %s)\n", FormatMonths(sc.MonthsToPayoff))
	}
	switch sc.Scenario {
	case domain.BankSurplus:
		fmt.Fprintf(buf, "  Total Deposited:   %s\n", FormatCurrency(sc.TotalDeposited))
	case domain.Prepayment:
		fmt.Fprintf(buf, "  Interest Saved:    %s\n", FormatCurrency(results.InterestSaved()))
	}
	fmt.Fprintf(buf, "  Final Value:       %s\n", FormatCurrency(finalValue(sc)))
	fmt.Fprintf(buf, "  Net Position:      %s\n", FormatCurrency(results.Net.Of(sc.Scenario)))
	fmt.Fprintln(buf)
}

func writeInvestmentBreakdown(buf *bytes.Buffer, investments []domain.InvestmentDetail) {
	if len(investments) == 0 {
		return
	}
	fmt.Fprintln(buf, "INVESTMENT BREAKDOWN (Scenario C)")
	fmt.Fprintln(buf, "=============================================")
	fmt.Fprintf(buf, "%-20s %12s %8s %8s %14s %14s\n", "Name", "Amount", "From", "To", "Final Value", "Profit")
	for i, inv := range investments {
		name := inv.Name
		if name == "" {
			name = fmt.Sprintf("Investment %d", i+1)
		}
		fmt.Fprintf(buf, "%-20s %12s %8d %8d %14s %14s\n", name,
			FormatCurrency(inv.Amount), inv.FromMonth, inv.ToMonth,
			FormatCurrency(inv.FinalValue), FormatCurrency(inv.Profit))
	}
	fmt.Fprintln(buf)
}

func writeYearlyTable(buf *bytes.Buffer, monthly []domain.ChartRow) {
	rows := YearlySnapshots(monthly)
	if len(rows) == 0 {
		return
	}
	fmt.Fprintln(buf, "YEAR-BY-YEAR BALANCES")
	fmt.Fprintln(buf, "=============================================")
	fmt.Fprintf(buf, "%6s %14s %14s %14s %14s\n", "Month", "A Loan", "A Savings", "B Loan", "C Investment")
	for _, row := range rows {
		fmt.Fprintf(buf, "%6d %14s %14s %14s %14s\n", row.Month,
			FormatCurrency(row.BankSurplusBalance), FormatCurrency(row.BankSurplusSavings),
			FormatCurrency(row.PrepaymentBalance), FormatCurrency(row.InvestSurplusValue))
	}
	fmt.Fprintln(buf)
}
