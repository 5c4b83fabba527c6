// Package pricing computes line prices and quote totals. Every function
// here is pure: a price depends only on the declared inputs.
package pricing

import (
	"github.com/shopspring/decimal"
)

var one = decimal.NewFromInt(1)

// LineInputs are the resolved numeric inputs for one quote line.
// UnitCostUSD is per unit per month; FXRate is local units per USD
// (1.0 when quoting in USD); Contingency, MarginTarget and TaxRate
// are fractions.
type LineInputs struct {
	UnitCostUSD    decimal.Decimal
	Quantity       int64
	DurationMonths decimal.Decimal
	FXRate         decimal.Decimal
	Contingency    decimal.Decimal
	MarginTarget   decimal.Decimal
	TaxRate        decimal.Decimal
}

// LineBreakdown is the intermediate and final arithmetic for one line.
type LineBreakdown struct {
	// TotalCost is unit cost * quantity * duration, converted to the
	// quote currency.
	TotalCost decimal.Decimal `json:"total_cost"`

	// BasePrice is cost plus contingency, grossed up to the margin
	// target.
	BasePrice decimal.Decimal `json:"base_price"`

	// FinalPrice is the customer-visible price including tax.
	FinalPrice decimal.Decimal `json:"final_price"`
}

// ComputeLineBreakdown prices one line, in order:
//
//  1. totalCost = unitCost * quantity * duration * fxRate
//  2. basePrice = totalCost * (1 + contingency) / (1 - marginTarget)
//  3. finalPrice = basePrice * (1 + taxRate)
//
// The margin target is a gross-profit fraction of the final base price,
// not a markup over cost. Tax compounds multiplicatively after margin
// grossing; the order of operations is fixed business policy.
//
// Margin targets at or above 1.0 would make the divisor non-positive;
// Policy.ClampMargin keeps that branch unreachable at the input boundary,
// and the engine returns a zero breakdown if handed such a value anyway.
func ComputeLineBreakdown(in LineInputs) LineBreakdown {
	totalCost := in.UnitCostUSD.
		Mul(decimal.NewFromInt(in.Quantity)).
		Mul(in.DurationMonths).
		Mul(in.FXRate)

	divisor := one.Sub(in.MarginTarget)
	if divisor.Sign() <= 0 {
		return LineBreakdown{TotalCost: totalCost}
	}

	basePrice := totalCost.Mul(one.Add(in.Contingency)).Div(divisor)
	finalPrice := basePrice.Mul(one.Add(in.TaxRate))

	return LineBreakdown{
		TotalCost:  totalCost,
		BasePrice:  basePrice,
		FinalPrice: finalPrice,
	}
}

// ComputeLinePrice returns only the final price for one line.
func ComputeLinePrice(in LineInputs) decimal.Decimal {
	return ComputeLineBreakdown(in).FinalPrice
}

// AggregateQuote sums line prices into a quote total. The sum is
// order-independent and an empty quote totals zero.
func AggregateQuote(prices []decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, p := range prices {
		total = total.Add(p)
	}
	return total
}

// Policy carries the tunable pricing limits applied at input boundaries.
type Policy struct {
	// MaxMarginTarget is the highest margin target accepted; values at
	// or above it are clamped down so the margin divisor stays positive.
	MaxMarginTarget decimal.Decimal
}

// DefaultPolicy caps margin targets at 0.99.
func DefaultPolicy() Policy {
	return Policy{MaxMarginTarget: decimal.RequireFromString("0.99")}
}

// ClampMargin normalizes a margin target: negative values floor at zero
// and values above the policy maximum clamp down to it.
func (p Policy) ClampMargin(m decimal.Decimal) decimal.Decimal {
	if m.Sign() < 0 {
		return decimal.Zero
	}
	if m.GreaterThan(p.MaxMarginTarget) {
		return p.MaxMarginTarget
	}
	return m
}
