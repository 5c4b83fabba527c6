// Package recalc applies the bulk cost recalculation rule to tabular
// cost extracts: a per-row, side-effect-free transform that normalizes
// dollar-denominated unit costs by the row's exchange rate.
package recalc

import (
	"encoding/csv"
	"io"
	"strings"

	"service-quote/internal/errors"
)

// Dataset is an arbitrary-width table: one header row plus data rows.
// Cells stay strings; numeric coercion happens per-cell at transform
// time with the parse-or-default contract.
type Dataset struct {
	Headers []string
	Rows    [][]string
}

// ReadCSV reads a dataset from CSV. Ragged rows are tolerated; short
// rows resolve missing cells to empty strings at lookup time.
func ReadCSV(r io.Reader) (*Dataset, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return nil, errors.Parsing("failed to read CSV input", err)
	}
	if len(records) == 0 {
		return nil, errors.Ingest("CSV input has no header row")
	}

	return &Dataset{Headers: records[0], Rows: records[1:]}, nil
}

// WriteCSV writes the dataset back out, preserving column and row order.
func (d *Dataset) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(d.Headers); err != nil {
		return err
	}
	for _, row := range d.Rows {
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// normalizeHeader canonicalizes a header name for lookup: surrounding
// whitespace and letter case are not significant.
func normalizeHeader(h string) string {
	return strings.ToUpper(strings.TrimSpace(h))
}

// columnIndex finds the first column whose normalized header matches any
// of the given aliases.
func (d *Dataset) columnIndex(aliases ...string) (int, bool) {
	for i, h := range d.Headers {
		norm := normalizeHeader(h)
		for _, a := range aliases {
			if norm == a {
				return i, true
			}
		}
	}
	return 0, false
}

// cell returns the row's value at column idx, or "" when the row is too
// short.
func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}
