package main

import (
	"fmt"
	"os"

	"github.com/rpgo/surplus-calculator/internal/calculation"
	"github.com/rpgo/surplus-calculator/internal/config"
	"github.com/rpgo/surplus-calculator/pkg/dateutil"
	"github.com/spf13/cobra"
)

func newExampleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "example [file]",
		Short: "Write the default configuration as YAML",
		Long:  "Write the default configuration (one mortgage and one lump sum starting today) to a file, or to stdout when no file is given.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parser := config.NewInputParser()
			cfg := parser.CreateExampleConfiguration(dateutil.Today(calculation.Now()))
			data, err := parser.MarshalConfiguration(cfg)
			if err != nil {
				return err
			}

			if len(args) == 0 {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(args[0], data, 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", args[0], err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Example configuration written to %s\n", args[0])
			return nil
		},
	}
}
