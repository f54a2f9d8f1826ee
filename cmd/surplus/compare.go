package main

import (
	"fmt"
	"log/slog"

	"github.com/rpgo/surplus-calculator/internal/calculation"
	"github.com/rpgo/surplus-calculator/internal/config"
	"github.com/rpgo/surplus-calculator/internal/logging"
	"github.com/rpgo/surplus-calculator/internal/output"
	"github.com/spf13/cobra"
)

func newCompareCmd() *cobra.Command {
	var (
		format    string
		outputDir string
		debug     bool
	)

	cmd := &cobra.Command{
		Use:   "compare [config.yaml]",
		Short: "Run the three surplus scenarios for a configuration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parser := config.NewInputParser()
			cfg, err := parser.LoadFromFile(args[0])
			if err != nil {
				return err
			}

			level := slog.LevelWarn
			if debug {
				level = slog.LevelDebug
			}
			logger := logging.New(logging.Config{
				Level:     level,
				Component: logging.ComponentEngine,
				Output:    cmd.ErrOrStderr(),
			})

			engine := calculation.NewCalculationEngine()
			engine.SetLogger(logger)
			results, err := engine.Compare(cmd.Context(), cfg)
			if err != nil {
				return fmt.Errorf("comparison failed: %w", err)
			}

			if outputDir != "" {
				paths, err := output.GenerateReport(results, format, outputDir)
				if err != nil {
					return err
				}
				for _, p := range paths {
					fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", p)
				}
				return nil
			}

			f := output.GetFormatterByName(format)
			if f == nil {
				return fmt.Errorf("%w: %q (use --output-dir to write all formats)", output.ErrUnsupportedFormat, format)
			}
			data, err := f.Format(results)
			if err != nil {
				return fmt.Errorf("formatting %s report: %w", f.Name(), err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "console", "output format (console, console-lite, json, csv, detailed-csv, html, all)")
	cmd.Flags().StringVarP(&outputDir, "output-dir", "o", "", "write the report to timestamped files in this directory")
	cmd.Flags().BoolVar(&debug, "debug", false, "log engine decisions to stderr")
	return cmd
}
