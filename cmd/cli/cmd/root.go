// Package cmd provides the CLI commands for service-quote.
package cmd

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"service-quote/core/pricing"
	"service-quote/internal/config"
	"service-quote/internal/logging"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "service-quote",
	Short: "Price service quotes against the reference rate tables",
	Long: `service-quote computes sale prices for service quotes: per-line
prices from unit cost, quantity, duration, FX, risk contingency, margin
target and destination tax, plus an aggregated quote total.

Examples:
  service-quote quote request.json
  service-quote quote --format json --mailto seller@example.com request.json
  service-quote recalc costs.csv -o costs_recalculated.csv
  service-quote reference countries`,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.service-quote.json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	// Add subcommands
	rootCmd.AddCommand(quoteCmd)
	rootCmd.AddCommand(recalcCmd)
	rootCmd.AddCommand(referenceCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)
}

func initConfig() {
	if cfgFile != "" {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		config.Set(cfg)
	}

	// Initialize logging
	cfg := config.Get()
	if verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
}

// pricingPolicy derives the pricing policy from the effective config.
func pricingPolicy() pricing.Policy {
	policy := pricing.DefaultPolicy()
	if max := config.Get().Pricing.MaxMarginTarget; max > 0 && max < 1 {
		policy.MaxMarginTarget = decimal.NewFromFloat(max)
	}
	return policy
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("service-quote version 0.1.0")
	},
}

// configCmd manages configuration
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Get()
		path := cfgFile
		if path == "" {
			home, _ := os.UserHomeDir()
			path = home + "/.service-quote.json"
		}
		fmt.Printf("Config file: %s\n", path)
		fmt.Printf("Max margin target: %.2f\n", cfg.Pricing.MaxMarginTarget)
		fmt.Printf("Default margin target: %.2f\n", cfg.Pricing.DefaultMarginTarget)
		fmt.Printf("Default risk: %s\n", cfg.Pricing.DefaultRiskLabel)
		fmt.Printf("Reference file: %s\n", cfg.Pricing.ReferenceFile)
		fmt.Printf("Recalc exempt locations: %v\n", cfg.Recalc.ExemptLocations)
		return nil
	},
}
