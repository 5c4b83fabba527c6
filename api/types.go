// Package api - request and response types.
package api

import (
	"time"

	"github.com/shopspring/decimal"

	"service-quote/core/pricing"
	"service-quote/core/quote"
	"service-quote/core/refdata"
)

// QuoteRequest is the POST /quote payload: the quote-level context plus
// the ordered line items.
type QuoteRequest struct {
	Context QuoteContext `json:"context"`
	Lines   []QuoteLine  `json:"lines"`

	// MailtoRecipient, when set, adds a mailto draft link to the
	// response.
	MailtoRecipient string `json:"mailto_recipient,omitempty"`
}

// QuoteContext mirrors quote.Context with wire-friendly date strings
// (YYYY-MM-DD). Unparseable dates degrade to zero values, never errors.
type QuoteContext struct {
	Country       string `json:"country"`
	Currency      string `json:"currency"`
	RiskLabel     string `json:"risk_label"`
	CustomerName  string `json:"customer_name"`
	CustomerID    string `json:"customer_id"`
	ContractStart string `json:"contract_start,omitempty"`
	ContractEnd   string `json:"contract_end,omitempty"`
}

// QuoteLine is one line item on the wire.
type QuoteLine struct {
	Offering     string  `json:"offering"`
	Description  string  `json:"description,omitempty"`
	Quantity     int64   `json:"quantity"`
	UnitCostUSD  float64 `json:"unit_cost_usd"`
	ServiceStart string  `json:"service_start,omitempty"`
	ServiceEnd   string  `json:"service_end,omitempty"`
	MarginTarget float64 `json:"margin_target"`
}

// QuoteResponse is the computed quote.
type QuoteResponse struct {
	Country     string            `json:"country"`
	Currency    string            `json:"currency"`
	FXRate      decimal.Decimal   `json:"fx_rate"`
	TaxRate     decimal.Decimal   `json:"tax_rate"`
	Contingency decimal.Decimal   `json:"contingency"`
	Lines       []QuoteLineResult `json:"lines"`
	Total       decimal.Decimal   `json:"total"`
	Mailto      string            `json:"mailto,omitempty"`
	Metadata    *ResponseMetadata `json:"metadata,omitempty"`
}

// QuoteLineResult is the per-line breakdown on the wire.
type QuoteLineResult struct {
	Offering       string          `json:"offering"`
	ProductCode    string          `json:"product_code,omitempty"`
	Channel        string          `json:"channel,omitempty"`
	Quantity       int64           `json:"quantity"`
	DurationMonths decimal.Decimal `json:"duration_months"`
	TotalCost      decimal.Decimal `json:"total_cost"`
	BasePrice      decimal.Decimal `json:"base_price"`
	FinalPrice     decimal.Decimal `json:"final_price"`
}

// RecalcRequest is the POST /recalc payload: a raw tabular dataset.
type RecalcRequest struct {
	Headers []string   `json:"headers"`
	Rows    [][]string `json:"rows"`
}

// RecalcResponse carries the dataset with the computed column appended.
type RecalcResponse struct {
	Headers  []string          `json:"headers"`
	Rows     [][]string        `json:"rows"`
	RowCount int               `json:"row_count"`
	Metadata *ResponseMetadata `json:"metadata,omitempty"`
}

// ResponseMetadata contains execution context
type ResponseMetadata struct {
	EngineVersion string `json:"engine_version"`
	DurationMs    int64  `json:"duration_ms"`
}

// ErrorResponse is the uniform error envelope.
type ErrorResponse struct {
	Code           string   `json:"code"`
	Message        string   `json:"message"`
	MissingColumns []string `json:"missing_columns,omitempty"`
}

// wireDateLayout is the wire format for dates.
const wireDateLayout = "2006-01-02"

// parseWireDate parses a YYYY-MM-DD string, returning the zero time on
// failure so invalid ranges degenerate to zero duration downstream.
func parseWireDate(s string) time.Time {
	t, err := time.Parse(wireDateLayout, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// BuildSession maps a wire request into a quote session. The CLI quote
// command reuses it so the file and HTTP inputs share one mapping.
func BuildSession(req *QuoteRequest, policy pricing.Policy) *quote.Session {
	s := quote.NewSession(quote.Context{
		Country:       req.Context.Country,
		Currency:      req.Context.Currency,
		RiskLabel:     req.Context.RiskLabel,
		CustomerName:  req.Context.CustomerName,
		CustomerID:    req.Context.CustomerID,
		ContractStart: parseWireDate(req.Context.ContractStart),
		ContractEnd:   parseWireDate(req.Context.ContractEnd),
	}, policy)

	for _, l := range req.Lines {
		s.AppendLine(quote.Line{
			Offering:     l.Offering,
			Description:  l.Description,
			Quantity:     l.Quantity,
			UnitCostUSD:  decimal.NewFromFloat(l.UnitCostUSD),
			ServiceStart: parseWireDate(l.ServiceStart),
			ServiceEnd:   parseWireDate(l.ServiceEnd),
			MarginTarget: decimal.NewFromFloat(l.MarginTarget),
		})
	}
	return s
}

// mapResult maps a computed quote into the wire response.
func mapResult(r quote.Result) *QuoteResponse {
	resp := &QuoteResponse{
		Country:     r.Context.Country,
		Currency:    r.Context.Currency,
		FXRate:      r.FXRate,
		TaxRate:     r.TaxRate,
		Contingency: r.Contingency,
		Lines:       make([]QuoteLineResult, 0, len(r.Lines)),
		Total:       r.Total,
	}
	for _, lr := range r.Lines {
		resp.Lines = append(resp.Lines, QuoteLineResult{
			Offering:       lr.Offering.Name,
			ProductCode:    lr.Offering.ProductCode,
			Channel:        lr.Offering.Channel,
			Quantity:       lr.Line.Quantity,
			DurationMonths: lr.DurationMonths,
			TotalCost:      lr.Breakdown.TotalCost,
			BasePrice:      lr.Breakdown.BasePrice,
			FinalPrice:     lr.Breakdown.FinalPrice,
		})
	}
	return resp
}

// referenceResponse lists the loaded reference tables.
type referenceResponse struct {
	Countries []refdata.Country   `json:"countries,omitempty"`
	Risks     []refdata.RiskLevel `json:"risks,omitempty"`
	Offerings []refdata.Offering  `json:"offerings,omitempty"`
}
