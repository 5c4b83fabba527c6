// Package numeric centralizes the parse-or-default contract applied at
// every numeric input boundary. Free-form input that does not parse
// resolves to the caller's default instead of an error.
package numeric

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseFloatOr parses s as a float, returning def when parsing fails.
func ParseFloatOr(s string, def float64) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return def
	}
	return v
}

// ParseIntOr parses s as an integer, returning def when parsing fails.
func ParseIntOr(s string, def int) int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return def
	}
	return v
}

// ParseDecimalOr parses s as a decimal, returning def when parsing fails.
func ParseDecimalOr(s string, def decimal.Decimal) decimal.Decimal {
	v, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return def
	}
	return v
}
