// Package pricing - service duration calculation.
package pricing

import (
	"time"

	"github.com/shopspring/decimal"
)

// daysPerMonth is the fixed average-month divisor (365.25 / 12). The
// convention is a deliberate approximation, not a calendar month count,
// and must stay fixed for numeric parity with historical quotes.
var daysPerMonth = decimal.RequireFromString("30.44")

// DurationMonths returns the service duration in months, rounded to one
// decimal place. A missing date or an inverted range degenerates to zero
// duration rather than an error.
func DurationMonths(start, end time.Time) decimal.Decimal {
	if start.IsZero() || end.IsZero() || start.After(end) {
		return decimal.Zero
	}
	days := int64(end.Sub(start).Hours() / 24)
	return decimal.NewFromInt(days).Div(daysPerMonth).Round(1)
}
