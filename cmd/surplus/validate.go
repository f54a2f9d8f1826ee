package main

import (
	"fmt"

	"github.com/rpgo/surplus-calculator/internal/config"
	"github.com/spf13/cobra"
)

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [config.yaml]",
		Short: "Check a configuration file without running it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.NewInputParser().LoadFromFile(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Configuration is valid: %d loan(s), %d investment(s)\n",
				len(cfg.Loans), len(cfg.Investments))
			return nil
		},
	}
}
