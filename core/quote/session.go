// Package quote owns the quote session: the quote-level context and the
// ordered list of line items the UI layer edits. The session holds inputs
// only; durations and prices are always derived, never stored.
package quote

import (
	"time"

	"github.com/shopspring/decimal"

	"service-quote/core/pricing"
)

// Context carries the quote-level settings shared by all lines. Country,
// currency and risk label drive the FX rate, tax rate and contingency
// factor the engine resolves once per quote.
type Context struct {
	Country       string    `json:"country"`
	Currency      string    `json:"currency"`
	RiskLabel     string    `json:"risk_label"`
	CustomerName  string    `json:"customer_name"`
	CustomerID    string    `json:"customer_id"`
	ContractStart time.Time `json:"contract_start"`
	ContractEnd   time.Time `json:"contract_end"`
}

// Line is one quote line item. Construct with NewLine so defaults and the
// margin clamp are applied exactly once.
type Line struct {
	Offering     string          `json:"offering"`
	Description  string          `json:"description"`
	Quantity     int64           `json:"quantity"`
	UnitCostUSD  decimal.Decimal `json:"unit_cost_usd"`
	ServiceStart time.Time       `json:"service_start"`
	ServiceEnd   time.Time       `json:"service_end"`
	MarginTarget decimal.Decimal `json:"margin_target"`
}

// NewLine validates a line at construction: quantity defaults to 1,
// negative unit cost floors at zero, and the margin target is clamped to
// the policy maximum.
func NewLine(l Line, policy pricing.Policy) Line {
	if l.Quantity <= 0 {
		l.Quantity = 1
	}
	if l.UnitCostUSD.Sign() < 0 {
		l.UnitCostUSD = decimal.Zero
	}
	l.MarginTarget = policy.ClampMargin(l.MarginTarget)
	return l
}

// DefaultLine returns a blank line as the UI seeds it: one unit, zero
// cost, a 40% margin target, and a one-year service window from now.
func DefaultLine(now time.Time, policy pricing.Policy) Line {
	return NewLine(Line{
		Quantity:     1,
		MarginTarget: decimal.RequireFromString("0.4"),
		ServiceStart: now,
		ServiceEnd:   now.AddDate(1, 0, 0),
	}, policy)
}

// Session is an explicit quote session owned by a single caller. It is
// not safe for concurrent mutation; each session belongs to one request
// or one interactive user.
type Session struct {
	Context Context
	policy  pricing.Policy
	lines   []Line
}

// NewSession creates an empty session under the given pricing policy.
func NewSession(ctx Context, policy pricing.Policy) *Session {
	return &Session{Context: ctx, policy: policy}
}

// AppendLine validates and appends a line at the end of the quote.
func (s *Session) AppendLine(l Line) {
	s.lines = append(s.lines, NewLine(l, s.policy))
}

// RemoveLine removes the line at index, reporting whether the index was
// in range. Callers iterating the quote must snapshot Lines() first and
// mutate afterwards; removing mid-iteration shifts indices.
func (s *Session) RemoveLine(index int) bool {
	if index < 0 || index >= len(s.lines) {
		return false
	}
	s.lines = append(s.lines[:index], s.lines[index+1:]...)
	return true
}

// Lines returns a snapshot copy of the line list in insertion order.
func (s *Session) Lines() []Line {
	out := make([]Line, len(s.lines))
	copy(out, s.lines)
	return out
}

// Len returns the number of lines in the quote.
func (s *Session) Len() int {
	return len(s.lines)
}
