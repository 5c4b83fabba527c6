package recalc

import (
	"strings"
	"testing"
)

func TestReadCSV(t *testing.T) {
	input := "Unit Cost,Currency,E/R,Unit Loc\n100,US,5,Brazil\n100,LOCAL,5,X\n"

	dataset, err := ReadCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadCSV failed: %v", err)
	}
	if len(dataset.Headers) != 4 {
		t.Errorf("got %d headers, want 4", len(dataset.Headers))
	}
	if len(dataset.Rows) != 2 {
		t.Errorf("got %d rows, want 2", len(dataset.Rows))
	}
}

func TestReadCSVToleratesRaggedRows(t *testing.T) {
	input := "Unit Cost,Currency,E/R,Unit Loc\n100,US\n"

	dataset, err := ReadCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadCSV failed on ragged row: %v", err)
	}
	if len(dataset.Rows[0]) != 2 {
		t.Errorf("ragged row length = %d, want 2", len(dataset.Rows[0]))
	}
}

func TestReadCSVEmptyInput(t *testing.T) {
	if _, err := ReadCSV(strings.NewReader("")); err == nil {
		t.Fatal("expected error for input with no header row")
	}
}

func TestWriteCSVRoundTrip(t *testing.T) {
	dataset := &Dataset{
		Headers: []string{"Unit Cost", "Currency", "E/R", "Unit Loc"},
		Rows:    [][]string{{"100", "US", "5", "Brazil"}},
	}

	out, err := newTestTransformer().Apply(dataset)
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	var buf strings.Builder
	if err := out.WriteCSV(&buf); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}

	want := "Unit Cost,Currency,E/R,Unit Loc,Recalculated Cost\n100,US,5,Brazil,20\n"
	if buf.String() != want {
		t.Errorf("CSV output:\n%q\nwant:\n%q", buf.String(), want)
	}
}
