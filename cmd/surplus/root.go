package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "surplus",
		Short: "Compare what to do with surplus cash while repaying loans",
		Long: `Surplus compares three strategies for money left over after loan payments:
keeping it in a savings account (A), paying down principal (B), and
investing it (C), and reports which leaves you best off.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newCompareCmd(),
		newExampleCmd(),
		newValidateCmd(),
		newScheduleCmd(),
		newServeCmd(),
	)
	return root
}
