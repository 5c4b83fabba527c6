package quote

import (
	"fmt"
	"net/url"
	"strings"
)

// Summary renders a computed quote as the plain-text block sent to the
// account team: customer header, one row per line, and the grand total
// in the quote currency.
func Summary(r Result) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Quote Summary\n")
	fmt.Fprintf(&b, "Customer: %s (%s)\n", r.Context.CustomerName, r.Context.CustomerID)
	fmt.Fprintf(&b, "Country: %s | Currency: %s | Risk: %s\n",
		r.Context.Country, r.Context.Currency, r.Context.RiskLabel)
	b.WriteString("\n")

	for i, lr := range r.Lines {
		name := lr.Offering.Name
		if name == "" {
			name = lr.Line.Description
		}
		fmt.Fprintf(&b, "%d. %s", i+1, name)
		if lr.Offering.ProductCode != "" {
			fmt.Fprintf(&b, " [%s]", lr.Offering.ProductCode)
		}
		fmt.Fprintf(&b, "\n   Qty %d x %s months @ %s USD/unit -> %s %s\n",
			lr.Line.Quantity,
			lr.DurationMonths.String(),
			lr.Line.UnitCostUSD.String(),
			lr.Breakdown.FinalPrice.StringFixed(2),
			r.Context.Currency)
	}

	b.WriteString("\n")
	fmt.Fprintf(&b, "Total: %s %s\n", r.Total.StringFixed(2), r.Context.Currency)
	return b.String()
}

// MailtoURL builds the mailto: draft link embedding the quote summary,
// as the send-by-email action in the quoting UI expects.
func MailtoURL(to string, r Result) string {
	subject := fmt.Sprintf("Quote - %s - %s", r.Context.CustomerName, r.Context.Country)
	params := url.Values{}
	params.Set("subject", subject)
	params.Set("body", Summary(r))
	// url.Values encodes spaces as "+", which mail clients do not decode
	// in mailto links.
	query := strings.ReplaceAll(params.Encode(), "+", "%20")
	return "mailto:" + to + "?" + query
}
