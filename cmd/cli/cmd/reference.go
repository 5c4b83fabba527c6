// Package cmd - reference command
package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// referenceCmd represents the reference command
var referenceCmd = &cobra.Command{
	Use:       "reference [countries|risks|offerings]",
	Short:     "List the loaded reference tables",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"countries", "risks", "offerings"},
	RunE:      runReference,
}

func init() {
	referenceCmd.Flags().StringVarP(&quoteReference, "reference", "r", "", "HCL reference file overriding the built-in tables")
}

func runReference(cmd *cobra.Command, args []string) error {
	tables, err := loadTables()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	defer w.Flush()

	switch args[0] {
	case "countries":
		fmt.Fprintln(w, "COUNTRY\tCURRENCY\tFX RATE\tTAX RATE")
		for _, c := range tables.Countries {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", c.Name, c.Currency, c.FXRate.String(), c.TaxRate.String())
		}
	case "risks":
		fmt.Fprintln(w, "RISK\tCONTINGENCY")
		for _, r := range tables.Risks {
			fmt.Fprintf(w, "%s\t%s\n", r.Label, r.Contingency.String())
		}
	case "offerings":
		fmt.Fprintln(w, "OFFERING\tPRODUCT CODE\tCHANNEL")
		for _, o := range tables.Offerings {
			fmt.Fprintf(w, "%s\t%s\t%s\n", o.Name, o.ProductCode, o.Channel)
		}
	default:
		return fmt.Errorf("unknown reference table: %s", args[0])
	}
	return nil
}
