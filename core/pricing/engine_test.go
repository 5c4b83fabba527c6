package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func baseInputs() LineInputs {
	return LineInputs{
		UnitCostUSD:    d("100"),
		Quantity:       2,
		DurationMonths: d("12"),
		FXRate:         d("1"),
		Contingency:    d("0.05"),
		MarginTarget:   d("0.20"),
		TaxRate:        d("0"),
	}
}

func TestComputeLineBreakdownUSDScenario(t *testing.T) {
	// unit 100 x qty 2 x 12 months at FX 1.0:
	// cost 2400, base 2400*1.05/0.80 = 3150, no tax.
	got := ComputeLineBreakdown(baseInputs())

	if !got.TotalCost.Equal(d("2400")) {
		t.Errorf("TotalCost = %s, want 2400", got.TotalCost)
	}
	if !got.BasePrice.Equal(d("3150")) {
		t.Errorf("BasePrice = %s, want 3150", got.BasePrice)
	}
	if !got.FinalPrice.Equal(d("3150")) {
		t.Errorf("FinalPrice = %s, want 3150", got.FinalPrice)
	}
}

func TestComputeLineBreakdownLocalCurrencyScenario(t *testing.T) {
	// unit 50 x 6 months at FX 1000: cost 300000,
	// base 300000*1.02/0.60 = 510000, final 510000*1.05 = 535500.
	got := ComputeLineBreakdown(LineInputs{
		UnitCostUSD:    d("50"),
		Quantity:       1,
		DurationMonths: d("6"),
		FXRate:         d("1000"),
		Contingency:    d("0.02"),
		MarginTarget:   d("0.40"),
		TaxRate:        d("0.05"),
	})

	if !got.TotalCost.Equal(d("300000")) {
		t.Errorf("TotalCost = %s, want 300000", got.TotalCost)
	}
	if !got.BasePrice.Equal(d("510000")) {
		t.Errorf("BasePrice = %s, want 510000", got.BasePrice)
	}
	if !got.FinalPrice.Equal(d("535500")) {
		t.Errorf("FinalPrice = %s, want 535500", got.FinalPrice)
	}
}

func TestComputeLinePriceIsIdempotent(t *testing.T) {
	in := baseInputs()
	first := ComputeLinePrice(in)
	second := ComputeLinePrice(in)
	if !first.Equal(second) {
		t.Errorf("identical inputs priced differently: %s vs %s", first, second)
	}
}

func TestComputeLinePriceMonotonicity(t *testing.T) {
	base := ComputeLinePrice(baseInputs())

	bump := func(name string, mutate func(*LineInputs)) {
		in := baseInputs()
		mutate(&in)
		got := ComputeLinePrice(in)
		if got.LessThan(base) {
			t.Errorf("%s: price decreased from %s to %s", name, base, got)
		}
	}

	bump("unit cost", func(in *LineInputs) { in.UnitCostUSD = d("150") })
	bump("quantity", func(in *LineInputs) { in.Quantity = 3 })
	bump("duration", func(in *LineInputs) { in.DurationMonths = d("24") })
	bump("fx rate", func(in *LineInputs) { in.FXRate = d("5") })
	bump("contingency", func(in *LineInputs) { in.Contingency = d("0.08") })
	bump("tax rate", func(in *LineInputs) { in.TaxRate = d("0.10") })

	// Price grows as the margin target approaches 1.
	in := baseInputs()
	in.MarginTarget = d("0.50")
	if got := ComputeLinePrice(in); !got.GreaterThan(base) {
		t.Errorf("raising margin target should raise price: %s vs %s", got, base)
	}
}

func TestComputeLineBreakdownDegenerateMarginIsZero(t *testing.T) {
	// Policy.ClampMargin keeps this unreachable at the input boundary,
	// but the engine itself must not divide by a non-positive divisor.
	in := baseInputs()
	in.MarginTarget = d("1")
	got := ComputeLineBreakdown(in)

	if !got.TotalCost.Equal(d("2400")) {
		t.Errorf("TotalCost = %s, want 2400", got.TotalCost)
	}
	if !got.FinalPrice.IsZero() {
		t.Errorf("FinalPrice = %s, want 0 for margin target 1.0", got.FinalPrice)
	}

	in.MarginTarget = d("1.5")
	if got := ComputeLinePrice(in); !got.IsZero() {
		t.Errorf("FinalPrice = %s, want 0 for margin target above 1.0", got)
	}
}

func TestPolicyClampMargin(t *testing.T) {
	policy := DefaultPolicy()

	tests := []struct {
		in, want string
	}{
		{"0.40", "0.40"},
		{"0", "0"},
		{"-0.10", "0"},
		{"0.99", "0.99"},
		{"1", "0.99"},
		{"1.5", "0.99"},
	}
	for _, tt := range tests {
		got := policy.ClampMargin(d(tt.in))
		if !got.Equal(d(tt.want)) {
			t.Errorf("ClampMargin(%s) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestAggregateQuote(t *testing.T) {
	if got := AggregateQuote(nil); !got.IsZero() {
		t.Errorf("empty quote total = %s, want 0", got)
	}

	a, b, c := d("100.5"), d("200"), d("0.25")
	want := d("300.75")

	if got := AggregateQuote([]decimal.Decimal{a, b, c}); !got.Equal(want) {
		t.Errorf("total = %s, want %s", got, want)
	}
	// Order-independent.
	if got := AggregateQuote([]decimal.Decimal{c, a, b}); !got.Equal(want) {
		t.Errorf("reordered total = %s, want %s", got, want)
	}
}
