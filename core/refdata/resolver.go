// Package refdata - reference-data resolution.
// Lookup misses resolve to safe defaults, never to errors: the live
// calculation stays available and the miss is surfaced as a warning log.
package refdata

import (
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"service-quote/internal/logging"
)

var one = decimal.NewFromInt(1)

// ResolveCountryRates maps a (country, currency) selection to its FX and
// tax rates.
//
// When the quote currency is USD the FX rate is pinned to 1.0 but the tax
// rate is still looked up by country name alone, so a USD quote keeps the
// destination country's local tax. Otherwise the row matching both country
// and currency wins; a country listing several currency codes is
// disambiguated by the exact code supplied. No match returns (1.0, 0.0).
func (t *Tables) ResolveCountryRates(country, currency string) (fx, tax decimal.Decimal) {
	if currency == "USD" {
		for _, c := range t.Countries {
			if c.Name == country {
				return one, c.TaxRate
			}
		}
		logging.Warn("country not in reference table, defaulting tax to zero",
			zap.String("country", country))
		return one, decimal.Zero
	}

	for _, c := range t.Countries {
		if c.Name == country && c.Currency == currency {
			return c.FXRate, c.TaxRate
		}
	}

	logging.Warn("country/currency pair not in reference table, defaulting rates",
		zap.String("country", country),
		zap.String("currency", currency))
	return one, decimal.Zero
}

// ResolveRiskFactor returns the contingency fraction for a risk label,
// or zero when the label is unknown.
func (t *Tables) ResolveRiskFactor(label string) decimal.Decimal {
	for _, r := range t.Risks {
		if r.Label == label {
			return r.Contingency
		}
	}
	logging.Warn("risk label not in reference table, defaulting contingency to zero",
		zap.String("risk", label))
	return decimal.Zero
}

// ResolveOffering returns the catalog entry for a name. An unknown name
// yields an offering with empty product code and channel so callers can
// still render.
func (t *Tables) ResolveOffering(name string) Offering {
	for _, o := range t.Offerings {
		if o.Name == name {
			return o
		}
	}
	return Offering{Name: name}
}
