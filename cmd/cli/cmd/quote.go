// Package cmd - quote command
package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"service-quote/api"
	"service-quote/core/quote"
	"service-quote/core/refdata"
	"service-quote/internal/config"
	"service-quote/internal/logging"
)

var (
	quoteFormat    string
	quoteReference string
	quoteMailto    string
)

// quoteCmd represents the quote command
var quoteCmd = &cobra.Command{
	Use:   "quote [request.json]",
	Short: "Compute a quote from a request file",
	Long: `Price every line of a quote request and print the per-line
breakdown plus the aggregated total.

The request file uses the same JSON shape as the POST /quote API:
a quote-level context (country, currency, risk, customer, contract
dates) and an ordered list of line items.

Examples:
  service-quote quote request.json
  service-quote quote --format json request.json
  service-quote quote --reference rates.hcl --mailto seller@example.com request.json`,
	Args: cobra.ExactArgs(1),
	RunE: runQuote,
}

func init() {
	quoteCmd.Flags().StringVarP(&quoteFormat, "format", "f", "cli", "output format (cli, json)")
	quoteCmd.Flags().StringVarP(&quoteReference, "reference", "r", "", "HCL reference file overriding the built-in tables")
	quoteCmd.Flags().StringVarP(&quoteMailto, "mailto", "m", "", "recipient for the email draft link")
}

func runQuote(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read request file: %w", err)
	}

	var req api.QuoteRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return fmt.Errorf("invalid request file: %w", err)
	}

	tables, err := loadTables()
	if err != nil {
		return err
	}

	logging.Info("computing quote")
	session := api.BuildSession(&req, pricingPolicy())
	result := quote.Compute(session, tables)

	switch quoteFormat {
	case "json":
		out, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
	default:
		printQuote(result)
	}

	if quoteMailto != "" {
		fmt.Println()
		fmt.Println("Email draft:")
		fmt.Println(quote.MailtoURL(quoteMailto, result))
	}

	logging.Debug("quote computed")
	return nil
}

func printQuote(r quote.Result) {
	fmt.Printf("Quote for %s (%s)\n", r.Context.CustomerName, r.Context.CustomerID)
	fmt.Printf("Country: %s  Currency: %s  Risk: %s\n",
		r.Context.Country, r.Context.Currency, r.Context.RiskLabel)
	fmt.Printf("FX: %s  Tax: %s  Contingency: %s\n\n",
		r.FXRate.String(), r.TaxRate.String(), r.Contingency.String())

	showDetails := config.Get().Output.ShowDetails
	for i, lr := range r.Lines {
		name := lr.Offering.Name
		if name == "" {
			name = lr.Line.Description
		}
		fmt.Printf("%2d. %s\n", i+1, name)
		if lr.Offering.ProductCode != "" {
			fmt.Printf("    Product: %s  Channel: %s\n", lr.Offering.ProductCode, lr.Offering.Channel)
		}
		if showDetails {
			fmt.Printf("    Qty %d x %s months @ %s USD  (margin %s)\n",
				lr.Line.Quantity,
				lr.DurationMonths.String(),
				lr.Line.UnitCostUSD.String(),
				lr.Line.MarginTarget.String())
			fmt.Printf("    Cost: %s  Base: %s\n",
				lr.Breakdown.TotalCost.StringFixed(2),
				lr.Breakdown.BasePrice.StringFixed(2))
		}
		fmt.Printf("    Price: %s %s\n", lr.Breakdown.FinalPrice.StringFixed(2), r.Context.Currency)
	}

	fmt.Printf("\nTotal: %s %s\n", r.Total.StringFixed(2), r.Context.Currency)
}

// loadTables resolves the reference tables: the --reference flag wins,
// then the configured reference file, then the built-ins.
func loadTables() (*refdata.Tables, error) {
	path := quoteReference
	if path == "" {
		path = config.Get().Pricing.ReferenceFile
	}
	tables, err := refdata.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load reference tables: %w", err)
	}
	return tables, nil
}
