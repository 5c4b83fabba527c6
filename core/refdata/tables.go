// Package refdata holds the static reference tables the pricing engine
// resolves against: countries with FX and tax rates, risk levels with
// contingency factors, and the offering catalog.
//
// Tables are immutable after construction and safe for concurrent readers.
package refdata

import "github.com/shopspring/decimal"

// Country is one (country, currency) reference row. A country may appear
// more than once when it exposes multiple currency codes, e.g. a nominal
// and an inflation-indexed code. FXRate is local currency units per USD.
type Country struct {
	Name     string          `json:"name"`
	Currency string          `json:"currency"`
	FXRate   decimal.Decimal `json:"fx_rate"`
	TaxRate  decimal.Decimal `json:"tax_rate"`
}

// RiskLevel maps a risk label to its contingency surcharge fraction.
type RiskLevel struct {
	Label       string          `json:"label"`
	Contingency decimal.Decimal `json:"contingency"`
}

// Offering is a catalog entry. Name is the lookup key.
type Offering struct {
	Name        string `json:"name"`
	ProductCode string `json:"product_code"`
	Channel     string `json:"channel"`
}

// Tables bundles all reference tables for one resolution scope.
type Tables struct {
	Countries []Country
	Risks     []RiskLevel
	Offerings []Offering
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// BuiltIn returns the reference tables shipped with the binary. An HCL
// reference file (see LoadFile) takes precedence when configured.
func BuiltIn() *Tables {
	return &Tables{
		Countries: []Country{
			{Name: "Argentina", Currency: "ARS", FXRate: dec("1428.9486"), TaxRate: dec("0.0529")},
			{Name: "Brazil", Currency: "BRL", FXRate: dec("5.3410"), TaxRate: dec("0.1425")},
			{Name: "Chile", Currency: "CLP", FXRate: dec("934.704"), TaxRate: dec("0")},
			{Name: "Chile", Currency: "CLF", FXRate: dec("0.02358"), TaxRate: dec("0")},
			{Name: "Colombia", Currency: "COP", FXRate: dec("3775.22"), TaxRate: dec("0.01")},
			{Name: "Ecuador", Currency: "USD", FXRate: dec("1.0"), TaxRate: dec("0")},
			{Name: "Peru", Currency: "PEN", FXRate: dec("3.3729"), TaxRate: dec("0")},
			{Name: "Mexico", Currency: "MXN", FXRate: dec("18.4203"), TaxRate: dec("0")},
			{Name: "Uruguay", Currency: "UYU", FXRate: dec("39.7318"), TaxRate: dec("0")},
			{Name: "Venezuela", Currency: "VES", FXRate: dec("235.28"), TaxRate: dec("0.0155")},
		},
		Risks: []RiskLevel{
			{Label: "Low", Contingency: dec("0.02")},
			{Label: "Medium", Contingency: dec("0.05")},
			{Label: "High", Contingency: dec("0.08")},
		},
		Offerings: []Offering{
			{Name: "IBM Hardware Resell for Server and Storage-Lenovo", ProductCode: "6942-1BT", Channel: "Location Based Services"},
			{Name: "1-HWMA MVS SPT other Prod", ProductCode: "6942-0IC", Channel: "Conga by CSV"},
			{Name: "2-HWMA MVS SPT other Prod", ProductCode: "6942-0IC", Channel: "Conga by CSV"},
			{Name: "SWMA MVS SPT other Prod", ProductCode: "6942-76O", Channel: "Conga by CSV"},
			{Name: "IBM Support for Red Hat", ProductCode: "6948-B73", Channel: "Conga by CSV"},
			{Name: "IBM Support for Red Hat - Enterprise Linux Subscription", ProductCode: "6942-42T", Channel: "Location Based Services"},
			{Name: "Subscription for Red Hat", ProductCode: "6948-66J", Channel: "Location Based Services"},
			{Name: "Support for Red Hat", ProductCode: "6949-66K", Channel: "Location Based Services"},
			{Name: "IBM Support for Oracle", ProductCode: "6942-42E", Channel: "Location Based Services"},
			{Name: "IBM Customized Support for Multivendor Hardware Services", ProductCode: "6942-76T", Channel: "Location Based Services"},
			{Name: "IBM Customized Support for Multivendor Software Services", ProductCode: "6942-76U", Channel: "Location Based Services"},
			{Name: "IBM Customized Support for Hardware Services-Logo", ProductCode: "6942-76V", Channel: "Location Based Services"},
			{Name: "IBM Customized Support for Software Services-Logo", ProductCode: "6942-76W", Channel: "Location Based Services"},
			{Name: "HWMA MVS SPT other Loc", ProductCode: "6942-0ID", Channel: "Location Based Services"},
			{Name: "SWMA MVS SPT other Loc", ProductCode: "6942-0IG", Channel: "Location Based Services"},
			{Name: "Relocation Services - Packaging", ProductCode: "6942-54E", Channel: "Location Based Services"},
			{Name: "Relocation Services - Movers Charge", ProductCode: "6942-54F", Channel: "Location Based Services"},
			{Name: "Relocation Services - Travel and Living", ProductCode: "6942-54R", Channel: "Location Based Services"},
			{Name: "Relocation Services - External Vendor's Charge", ProductCode: "6942-78O", Channel: "Location Based Services"},
			{Name: "IBM Hardware Resell for Networking and Security Alliances", ProductCode: "6942-1GE", Channel: "Location Based Services"},
			{Name: "IBM Software Resell for Networking and Security Alliances", ProductCode: "6942-1GF", Channel: "Location Based Services"},
			{Name: "System Technical Support Service-MVS-STSS", ProductCode: "6942-1FN", Channel: "Location Based Services"},
			{Name: "System Technical Support Service-Logo-STSS", ProductCode: "6942-1KJ", Channel: "Location Based Services"},
		},
	}
}

// CountryNames returns the distinct country names in table order.
func (t *Tables) CountryNames() []string {
	seen := make(map[string]bool, len(t.Countries))
	var names []string
	for _, c := range t.Countries {
		if !seen[c.Name] {
			seen[c.Name] = true
			names = append(names, c.Name)
		}
	}
	return names
}

// CurrenciesFor returns the currency codes listed for a country.
func (t *Tables) CurrenciesFor(country string) []string {
	var codes []string
	for _, c := range t.Countries {
		if c.Name == country {
			codes = append(codes, c.Currency)
		}
	}
	return codes
}
