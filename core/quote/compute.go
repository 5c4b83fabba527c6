package quote

import (
	"github.com/shopspring/decimal"

	"service-quote/core/pricing"
	"service-quote/core/refdata"
)

// LineResult is the computed breakdown for one quote line.
type LineResult struct {
	Line           Line                  `json:"line"`
	Offering       refdata.Offering      `json:"offering"`
	DurationMonths decimal.Decimal       `json:"duration_months"`
	Breakdown      pricing.LineBreakdown `json:"breakdown"`
}

// Result is a fully computed quote: the resolved quote-level rates, the
// per-line breakdowns in insertion order, and the aggregate total.
type Result struct {
	Context     Context         `json:"context"`
	FXRate      decimal.Decimal `json:"fx_rate"`
	TaxRate     decimal.Decimal `json:"tax_rate"`
	Contingency decimal.Decimal `json:"contingency"`
	Lines       []LineResult    `json:"lines"`
	Total       decimal.Decimal `json:"total"`
}

// Compute resolves the session's context against the reference tables and
// prices every line. The result is a pure function of the session inputs
// and the tables; computing twice yields identical results.
func Compute(s *Session, tables *refdata.Tables) Result {
	fx, tax := tables.ResolveCountryRates(s.Context.Country, s.Context.Currency)
	contingency := tables.ResolveRiskFactor(s.Context.RiskLabel)

	lines := s.Lines()
	results := make([]LineResult, 0, len(lines))
	prices := make([]decimal.Decimal, 0, len(lines))

	for _, l := range lines {
		duration := pricing.DurationMonths(l.ServiceStart, l.ServiceEnd)
		breakdown := pricing.ComputeLineBreakdown(pricing.LineInputs{
			UnitCostUSD:    l.UnitCostUSD,
			Quantity:       l.Quantity,
			DurationMonths: duration,
			FXRate:         fx,
			Contingency:    contingency,
			MarginTarget:   l.MarginTarget,
			TaxRate:        tax,
		})

		results = append(results, LineResult{
			Line:           l,
			Offering:       tables.ResolveOffering(l.Offering),
			DurationMonths: duration,
			Breakdown:      breakdown,
		})
		prices = append(prices, breakdown.FinalPrice)
	}

	return Result{
		Context:     s.Context,
		FXRate:      fx,
		TaxRate:     tax,
		Contingency: contingency,
		Lines:       results,
		Total:       pricing.AggregateQuote(prices),
	}
}
