package numeric

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestParseFloatOr(t *testing.T) {
	tests := []struct {
		in   string
		def  float64
		want float64
	}{
		{"1.5", 0, 1.5},
		{" 2 ", 0, 2},
		{"-3.25", 0, -3.25},
		{"", 0, 0},
		{"abc", 0, 0},
		{"abc", 7.5, 7.5},
	}
	for _, tt := range tests {
		if got := ParseFloatOr(tt.in, tt.def); got != tt.want {
			t.Errorf("ParseFloatOr(%q, %v) = %v, want %v", tt.in, tt.def, got, tt.want)
		}
	}
}

func TestParseIntOr(t *testing.T) {
	if got := ParseIntOr(" 42 ", 0); got != 42 {
		t.Errorf("ParseIntOr = %d, want 42", got)
	}
	if got := ParseIntOr("4.2", 9); got != 9 {
		t.Errorf("ParseIntOr on float text = %d, want default 9", got)
	}
}

func TestParseDecimalOr(t *testing.T) {
	def := decimal.NewFromInt(1)

	if got := ParseDecimalOr(" 0.05 ", def); !got.Equal(decimal.RequireFromString("0.05")) {
		t.Errorf("ParseDecimalOr = %s, want 0.05", got)
	}
	if got := ParseDecimalOr("", def); !got.Equal(def) {
		t.Errorf("ParseDecimalOr on empty = %s, want default 1", got)
	}
	if got := ParseDecimalOr("N/A", def); !got.Equal(def) {
		t.Errorf("ParseDecimalOr on junk = %s, want default 1", got)
	}
}
