// Package rawtable provides the raw export table type and the spreadsheet
// I/O used at the edges of the pipeline: CSV with legacy-encoding
// tolerance, and XLSX via excelize.
package rawtable

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Table is a raw tabular export as read from a delimited-text or
// spreadsheet file: a header row followed by untyped cell rows. Rows may
// be ragged; Cell returns the empty string out of range.
type Table struct {
	Header []string
	Rows   [][]string
}

// Cell returns the trimmed cell at (row, col), or "" when out of range.
func (t *Table) Cell(row, col int) string {
	if row < 0 || row >= len(t.Rows) {
		return ""
	}
	r := t.Rows[row]
	if col < 0 || col >= len(r) {
		return ""
	}
	return strings.TrimSpace(r[col])
}

// Width is the column count of the table, taken from the header row, or
// from the widest data row when the header is missing.
func (t *Table) Width() int {
	w := len(t.Header)
	for _, r := range t.Rows {
		if len(r) > w {
			w = len(r)
		}
	}
	return w
}

// ParseDecimal coerces a cell into a decimal. Empty cells, NaN markers and
// junk all report ok=false; callers decide between zero and nil semantics.
func ParseDecimal(cell string) (decimal.Decimal, bool) {
	s := strings.TrimSpace(cell)
	s = strings.ReplaceAll(s, " ", "")
	if s == "" || strings.EqualFold(s, "nan") || s == "-" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// ParseInt coerces a cell into an integer, tolerating a decimal suffix
// ("15.0" -> 15) since spreadsheet exports often render integers that way.
func ParseInt(cell string) (int64, bool) {
	d, ok := ParseDecimal(cell)
	if !ok || !d.IsInteger() {
		return 0, false
	}
	return d.IntPart(), true
}
