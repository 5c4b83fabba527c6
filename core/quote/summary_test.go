package quote

import (
	"strings"
	"testing"

	"service-quote/core/pricing"
)

func computedQuote(t *testing.T) Result {
	t.Helper()
	s := NewSession(Context{
		Country:      "Testland",
		Currency:     "TST",
		RiskLabel:    "Low",
		CustomerName: "ACME",
		CustomerID:   "C-100",
	}, pricing.DefaultPolicy())
	s.AppendLine(Line{
		Offering:     "Support",
		Quantity:     1,
		UnitCostUSD:  d("50"),
		ServiceStart: date("2024-01-01"),
		ServiceEnd:   date("2024-07-01"),
		MarginTarget: d("0.40"),
	})
	return Compute(s, testTables())
}

func TestSummaryContent(t *testing.T) {
	summary := Summary(computedQuote(t))

	for _, want := range []string{
		"ACME",
		"C-100",
		"Testland",
		"Support [1234-AAA]",
		"535500.00 TST",
		"Total: 535500.00 TST",
	} {
		if !strings.Contains(summary, want) {
			t.Errorf("summary missing %q:\n%s", want, summary)
		}
	}
}

func TestMailtoURL(t *testing.T) {
	link := MailtoURL("seller@example.com", computedQuote(t))

	if !strings.HasPrefix(link, "mailto:seller@example.com?") {
		t.Fatalf("unexpected mailto prefix: %s", link)
	}
	if !strings.Contains(link, "subject=") || !strings.Contains(link, "body=") {
		t.Errorf("mailto link missing subject/body params: %s", link)
	}
	// Mail clients do not decode "+" as space in mailto links.
	if strings.Contains(link, "+") {
		t.Errorf("mailto link must encode spaces as %%20, got: %s", link)
	}
}
