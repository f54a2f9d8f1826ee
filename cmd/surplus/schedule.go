package main

import (
	"fmt"
	"io"

	"github.com/rpgo/surplus-calculator/internal/calculation"
	"github.com/rpgo/surplus-calculator/internal/domain"
	"github.com/rpgo/surplus-calculator/internal/output"
	money "github.com/rpgo/surplus-calculator/pkg/decimal"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func newScheduleCmd() *cobra.Command {
	var (
		amount string
		rate   string
		term   int
		unit   string
	)

	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Print the amortization schedule of one loan at its minimum payment",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			parsedAmount, err := money.NewMoneyFromString(amount)
			if err != nil {
				return fmt.Errorf("invalid --amount %q: %w", amount, err)
			}
			principal := parsedAmount.Decimal
			annual, err := decimal.NewFromString(rate)
			if err != nil {
				return fmt.Errorf("invalid --rate %q: %w", rate, err)
			}
			if principal.IsNegative() || annual.IsNegative() {
				return fmt.Errorf("--amount and --rate cannot be negative")
			}
			if term <= 0 {
				return fmt.Errorf("--term must be positive")
			}
			switch domain.TermUnit(unit) {
			case domain.TermMonths, domain.TermYears:
			default:
				return fmt.Errorf("--unit must be months or years, got %q", unit)
			}

			loan := domain.Loan{Amount: principal, InterestRate: annual, Term: term, TermUnit: domain.TermUnit(unit)}
			months := loan.TermMonths()
			if months > domain.MaxTermMonths {
				return fmt.Errorf("--term of %d months exceeds the maximum of %d", months, domain.MaxTermMonths)
			}
			payment := calculation.MinimumPayment(principal, annual, months)

			result := calculation.SimulatePrepayment(calculation.SimulationInput{
				Loan:          domain.LoanTerms{Principal: principal, AnnualRate: annual, MinimumPayment: payment},
				CeilingMonths: months,
			})
			writeSchedule(cmd.OutOrStdout(), payment, result)
			return nil
		},
	}

	cmd.Flags().StringVar(&amount, "amount", "", "loan principal")
	cmd.Flags().StringVar(&rate, "rate", "", "annual interest rate in percent, e.g. 5.5")
	cmd.Flags().IntVar(&term, "term", 30, "loan term")
	cmd.Flags().StringVar(&unit, "unit", string(domain.TermYears), "term unit (months or years)")
	_ = cmd.MarkFlagRequired("amount")
	_ = cmd.MarkFlagRequired("rate")
	return cmd
}

func writeSchedule(w io.Writer, payment decimal.Decimal, result domain.ScenarioResult) {
	fmt.Fprintf(w, "Monthly payment: %s\n", output.FormatCents(payment))
	fmt.Fprintf(w, "Total interest:  %s\n", output.FormatCents(result.TotalInterest))
	fmt.Fprintf(w, "Paid off in:     %s\n\n", output.FormatMonths(result.MonthsToPayoff))
	fmt.Fprintf(w, "%6s %12s %12s %14s\n", "Month", "Interest", "Principal", "Balance")
	for _, e := range result.Ledger {
		if e.Month > result.MonthsToPayoff {
			break
		}
		fmt.Fprintf(w, "%6d %12s %12s %14s\n", e.Month,
			e.InterestPaid.StringFixed(2), e.PrincipalPaid.StringFixed(2), e.LoanBalance.StringFixed(2))
	}
}
