// Package cmd - recalc command
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"service-quote/core/recalc"
	"service-quote/internal/config"
	"service-quote/internal/logging"
)

var recalcOutput string

// recalcCmd represents the recalc command
var recalcCmd = &cobra.Command{
	Use:   "recalc [input.csv]",
	Short: "Recalculate unit costs in a CSV cost extract",
	Long: `Apply the bulk cost recalculation rule to a CSV cost extract:
dollar-denominated rows are divided by their exchange rate, exempt
locations and non-dollar rows pass through unchanged. The output is the
input with one computed column appended.

Examples:
  service-quote recalc costs.csv
  service-quote recalc costs.csv -o costs_recalculated.csv`,
	Args: cobra.ExactArgs(1),
	RunE: runRecalc,
}

func init() {
	recalcCmd.Flags().StringVarP(&recalcOutput, "output", "o", "", "output file (default stdout)")
}

func runRecalc(cmd *cobra.Command, args []string) error {
	in, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("failed to open input: %w", err)
	}
	defer in.Close()

	dataset, err := recalc.ReadCSV(in)
	if err != nil {
		return err
	}

	cfg := config.Get()
	transformer := recalc.NewTransformer(cfg.Recalc.ExemptLocations, cfg.Recalc.Workers)

	out, err := transformer.Apply(dataset)
	if err != nil {
		if missing := recalc.MissingColumns(err); len(missing) > 0 {
			return fmt.Errorf("input is missing required columns: %s", strings.Join(missing, ", "))
		}
		return err
	}

	logging.Info("recalculated cost extract")

	w := os.Stdout
	if recalcOutput != "" {
		f, err := os.Create(recalcOutput)
		if err != nil {
			return fmt.Errorf("failed to create output: %w", err)
		}
		defer f.Close()
		w = f
	}
	if err := out.WriteCSV(w); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if recalcOutput != "" {
		fmt.Printf("Wrote %d rows to %s\n", len(out.Rows), recalcOutput)
	}
	return nil
}
