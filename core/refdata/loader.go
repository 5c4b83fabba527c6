// Package refdata - HCL reference file loading.
// Rate refreshes ship as a reference file instead of a rebuild.
package refdata

import (
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/shopspring/decimal"

	"service-quote/internal/errors"
)

// referenceFile is the HCL schema for a reference-data file:
//
//	country "Chile" {
//	  currency = "CLF"
//	  fx_rate  = 0.02358
//	  tax_rate = 0.0
//	}
//
//	risk "Low" {
//	  contingency = 0.02
//	}
//
//	offering "SWMA MVS SPT other Prod" {
//	  product_code = "6942-76O"
//	  channel      = "Conga by CSV"
//	}
//
// A country may repeat with a different currency attribute; rows keep
// file order.
type referenceFile struct {
	Countries []countryBlock  `hcl:"country,block"`
	Risks     []riskBlock     `hcl:"risk,block"`
	Offerings []offeringBlock `hcl:"offering,block"`
}

type countryBlock struct {
	Name     string  `hcl:"name,label"`
	Currency string  `hcl:"currency"`
	FXRate   float64 `hcl:"fx_rate"`
	TaxRate  float64 `hcl:"tax_rate"`
}

type riskBlock struct {
	Label       string  `hcl:"label,label"`
	Contingency float64 `hcl:"contingency"`
}

type offeringBlock struct {
	Name        string `hcl:"name,label"`
	ProductCode string `hcl:"product_code"`
	Channel     string `hcl:"channel"`
}

// LoadFile parses an HCL reference file and returns its tables. The file
// replaces the built-in tables wholesale; it does not merge with them.
func LoadFile(path string) (*Tables, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, errors.Parsing("failed to parse reference file", diags)
	}

	var rf referenceFile
	if diags := gohcl.DecodeBody(file.Body, nil, &rf); diags.HasErrors() {
		return nil, errors.Parsing("failed to decode reference file", diags)
	}

	tables := &Tables{}
	for _, c := range rf.Countries {
		tables.Countries = append(tables.Countries, Country{
			Name:     c.Name,
			Currency: c.Currency,
			FXRate:   decimal.NewFromFloat(c.FXRate),
			TaxRate:  decimal.NewFromFloat(c.TaxRate),
		})
	}
	for _, r := range rf.Risks {
		tables.Risks = append(tables.Risks, RiskLevel{
			Label:       r.Label,
			Contingency: decimal.NewFromFloat(r.Contingency),
		})
	}
	for _, o := range rf.Offerings {
		tables.Offerings = append(tables.Offerings, Offering{
			Name:        o.Name,
			ProductCode: o.ProductCode,
			Channel:     o.Channel,
		})
	}
	return tables, nil
}

// Load returns the tables for path, or the built-in tables when path is
// empty.
func Load(path string) (*Tables, error) {
	if path == "" {
		return BuiltIn(), nil
	}
	return LoadFile(path)
}
