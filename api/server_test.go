package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"

	"service-quote/core/pricing"
	"service-quote/core/recalc"
	"service-quote/core/refdata"
)

func newTestServer() *Server {
	return NewServer("test",
		refdata.BuiltIn(),
		pricing.DefaultPolicy(),
		recalc.NewTransformer([]string{"10", "ECUADOR"}, 0))
}

func postJSON(t *testing.T, s *Server, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("failed to marshal request: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	return rec
}

func TestHandleQuote(t *testing.T) {
	s := newTestServer()

	rec := postJSON(t, s, "/quote", &QuoteRequest{
		Context: QuoteContext{
			Country:   "Ecuador",
			Currency:  "USD",
			RiskLabel: "Medium",
		},
		Lines: []QuoteLine{{
			Offering:     "IBM Support for Oracle",
			Quantity:     2,
			UnitCostUSD:  100,
			ServiceStart: "2024-01-01",
			ServiceEnd:   "2025-01-01",
			MarginTarget: 0.20,
		}},
		MailtoRecipient: "seller@example.com",
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var resp QuoteResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	// 100 x 2 x 12.0 months at FX 1.0, contingency 0.05, margin 0.20,
	// tax 0 -> 3150.
	if !resp.Total.Equal(decimal.RequireFromString("3150")) {
		t.Errorf("total = %s, want 3150", resp.Total)
	}
	if len(resp.Lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(resp.Lines))
	}
	if resp.Lines[0].ProductCode != "6942-42E" {
		t.Errorf("product code = %q, want 6942-42E", resp.Lines[0].ProductCode)
	}
	if resp.Mailto == "" {
		t.Error("expected mailto draft link in response")
	}
}

func TestHandleQuoteInvalidJSON(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest(http.MethodPost, "/quote", bytes.NewReader([]byte("{")))
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestHandleRecalc(t *testing.T) {
	s := newTestServer()

	rec := postJSON(t, s, "/recalc", &RecalcRequest{
		Headers: []string{"Unit Cost", "Currency", "E/R", "Unit Loc"},
		Rows: [][]string{
			{"100", "US", "5", "Brazil"},
			{"100", "US", "5", "10"},
		},
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var resp RecalcResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.RowCount != 2 {
		t.Fatalf("row count = %d, want 2", resp.RowCount)
	}
	if got := resp.Rows[0][len(resp.Rows[0])-1]; got != "20" {
		t.Errorf("row 0 recalculated cost = %q, want 20", got)
	}
	if got := resp.Rows[1][len(resp.Rows[1])-1]; got != "100" {
		t.Errorf("row 1 recalculated cost = %q, want 100 (exempt)", got)
	}
}

func TestHandleRecalcMissingColumns(t *testing.T) {
	s := newTestServer()

	rec := postJSON(t, s, "/recalc", &RecalcRequest{
		Headers: []string{"Unit Cost"},
		Rows:    [][]string{{"100"}},
	})

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}

	var resp ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode error: %v", err)
	}
	if resp.Code != "MISSING_COLUMNS" || len(resp.MissingColumns) != 3 {
		t.Errorf("error = %+v, want MISSING_COLUMNS with 3 names", resp)
	}
}

func TestHandleReferenceAndHealth(t *testing.T) {
	s := newTestServer()

	for _, path := range []string{
		"/reference/countries",
		"/reference/risks",
		"/reference/offerings",
		"/health",
		"/version",
	} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		s.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Errorf("GET %s status = %d, want 200", path, rec.Code)
		}
	}
}
