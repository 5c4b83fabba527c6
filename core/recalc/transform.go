package recalc

import (
	"runtime"
	"strings"
	"sync"

	"github.com/shopspring/decimal"

	"service-quote/internal/errors"
	"service-quote/internal/numeric"
)

// RecalcColumn is the computed column appended to the output dataset.
const RecalcColumn = "Recalculated Cost"

// Required column names (normalized) with the header aliases seen in the
// field's cost extracts.
var (
	unitCostAliases = []string{"UNIT COST", "UNIT_COST", "COST"}
	currencyAliases = []string{"CURRENCY", "CURR"}
	rateAliases     = []string{"E/R", "ER", "EXCHANGE RATE"}
	locationAliases = []string{"UNIT LOC", "UNIT_LOC", "LOCATION"}
)

// Transformer applies the recalculation rule to a dataset.
type Transformer struct {
	exempt  map[string]bool
	workers int
}

// NewTransformer builds a transformer. exemptLocations are location
// codes excluded from currency conversion regardless of currency label;
// workers caps row concurrency (0 means GOMAXPROCS).
func NewTransformer(exemptLocations []string, workers int) *Transformer {
	exempt := make(map[string]bool, len(exemptLocations))
	for _, loc := range exemptLocations {
		exempt[NormalizeLocation(loc)] = true
	}
	return &Transformer{exempt: exempt, workers: workers}
}

// NormalizeLocation canonicalizes a location code: surrounding
// whitespace is stripped, a trailing ".0" left over from numeric cells
// is dropped, and the result is uppercased.
func NormalizeLocation(v string) string {
	s := strings.TrimSpace(v)
	s = strings.TrimSuffix(s, ".0")
	return strings.ToUpper(s)
}

// IsDollarToken reports whether a currency label denotes US dollars.
// "US" and "USD" are equivalent dollar tokens.
func IsDollarToken(currency string) bool {
	switch strings.ToUpper(strings.TrimSpace(currency)) {
	case "US", "USD":
		return true
	}
	return false
}

// RecalcCost applies the per-row rule: dollar-denominated rows at
// non-exempt locations divide the unit cost by the exchange rate (a zero
// rate yields zero); every other row passes through unchanged.
func (t *Transformer) RecalcCost(unitCost decimal.Decimal, currency string, rate decimal.Decimal, location string) decimal.Decimal {
	if !IsDollarToken(currency) {
		return unitCost
	}
	if t.exempt[NormalizeLocation(location)] {
		return unitCost
	}
	if rate.IsZero() {
		return decimal.Zero
	}
	return unitCost.Div(rate)
}

// Apply recalculates every row and returns a new dataset with the
// RecalcColumn appended, preserving input column and row order. Rows are
// processed concurrently; ordering of the output is deterministic.
//
// Missing required columns are the one hard failure in this package: no
// numeric default can stand in for an absent column mapping, so the
// error lists every missing name.
func (t *Transformer) Apply(d *Dataset) (*Dataset, error) {
	type column struct {
		name    string
		aliases []string
	}
	columns := []column{
		{"Unit Cost", unitCostAliases},
		{"Currency", currencyAliases},
		{"E/R", rateAliases},
		{"Unit Loc", locationAliases},
	}

	idx := make([]int, len(columns))
	var missing []string
	for i, c := range columns {
		j, ok := d.columnIndex(c.aliases...)
		if !ok {
			missing = append(missing, c.name)
			continue
		}
		idx[i] = j
	}
	if len(missing) > 0 {
		return nil, errors.Newf(errors.TypeIngest,
			"missing required columns: %s", strings.Join(missing, ", ")).
			WithContext("columns", missing)
	}
	costIdx, currencyIdx, rateIdx, locIdx := idx[0], idx[1], idx[2], idx[3]

	results := make([]string, len(d.Rows))

	workers := t.workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > len(d.Rows) {
		workers = len(d.Rows)
	}

	rowIndexes := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range rowIndexes {
				row := d.Rows[i]
				cost := numeric.ParseDecimalOr(cell(row, costIdx), decimal.Zero)
				rate := numeric.ParseDecimalOr(cell(row, rateIdx), decimal.NewFromInt(1))
				out := t.RecalcCost(cost, cell(row, currencyIdx), rate, cell(row, locIdx))
				results[i] = out.String()
			}
		}()
	}
	for i := range d.Rows {
		rowIndexes <- i
	}
	close(rowIndexes)
	wg.Wait()

	out := &Dataset{
		Headers: append(append([]string{}, d.Headers...), RecalcColumn),
		Rows:    make([][]string, len(d.Rows)),
	}
	for i, row := range d.Rows {
		out.Rows[i] = append(append([]string{}, row...), results[i])
	}
	return out, nil
}

// MissingColumns extracts the missing column names from an Apply error,
// or nil when the error is not a missing-columns failure.
func MissingColumns(err error) []string {
	e, ok := err.(*errors.Error)
	if !ok || e.Type != errors.TypeIngest {
		return nil
	}
	cols, _ := e.Context["columns"].([]string)
	return cols
}
