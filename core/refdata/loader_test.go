package refdata

import (
	"os"
	"path/filepath"
	"testing"
)

const testReferenceHCL = `
country "Chile" {
  currency = "CLP"
  fx_rate  = 950.0
  tax_rate = 0.0
}

country "Chile" {
  currency = "CLF"
  fx_rate  = 0.024
  tax_rate = 0.0
}

risk "Low" {
  contingency = 0.03
}

offering "SWMA MVS SPT other Prod" {
  product_code = "6942-76O"
  channel      = "Conga by CSV"
}
`

func writeReferenceFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "reference.hcl")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write reference file: %v", err)
	}
	return path
}

func TestLoadFile(t *testing.T) {
	path := writeReferenceFile(t, testReferenceHCL)

	tables, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}

	if len(tables.Countries) != 2 {
		t.Fatalf("got %d countries, want 2", len(tables.Countries))
	}
	fx, _ := tables.ResolveCountryRates("Chile", "CLF")
	if !fx.Equal(d("0.024")) {
		t.Errorf("Chile/CLF fx = %s, want 0.024", fx)
	}

	if got := tables.ResolveRiskFactor("Low"); !got.Equal(d("0.03")) {
		t.Errorf("Low contingency = %s, want 0.03", got)
	}

	o := tables.ResolveOffering("SWMA MVS SPT other Prod")
	if o.ProductCode != "6942-76O" || o.Channel != "Conga by CSV" {
		t.Errorf("offering = %+v, want catalog fields from file", o)
	}
}

func TestLoadFileRejectsBadSyntax(t *testing.T) {
	path := writeReferenceFile(t, `country "Chile" { currency = `)

	if _, err := LoadFile(path); err == nil {
		t.Fatal("expected parse error for malformed reference file")
	}
}

func TestLoadFileRejectsMissingAttribute(t *testing.T) {
	path := writeReferenceFile(t, `
country "Chile" {
  currency = "CLP"
}
`)

	if _, err := LoadFile(path); err == nil {
		t.Fatal("expected decode error for country block missing rates")
	}
}

func TestLoadEmptyPathUsesBuiltIns(t *testing.T) {
	tables, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") failed: %v", err)
	}
	if len(tables.Countries) != 10 || len(tables.Risks) != 3 || len(tables.Offerings) != 23 {
		t.Errorf("built-in tables have %d/%d/%d rows, want 10/3/23",
			len(tables.Countries), len(tables.Risks), len(tables.Offerings))
	}
}
