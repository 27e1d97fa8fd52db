// Package layout infers the column positions of the financial block inside
// a loosely-structured Borderou export and cross-checks the inferred VAT
// columns against a sample of data rows. The exports carry irregular
// header rows above the data and shift the financial columns between
// terminal types, so positions are detected per file, never assumed.
package layout

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Andrew-0807/ExcelProcessor/internal/logging"
	"github.com/Andrew-0807/ExcelProcessor/internal/models"
	"github.com/Andrew-0807/ExcelProcessor/internal/rawtable"
	"github.com/Andrew-0807/ExcelProcessor/internal/transformerror"
)

// zReportMarker is the literal that denotes a Z-report line in the label
// column; the first row carrying it (with a numeric first cell) is where
// real data begins.
const zReportMarker = "Z POS"

var (
	rate21 = decimal.NewFromFloat(0.21)
	rate11 = decimal.NewFromFloat(0.11)

	// pairTolerance: a candidate (base, amount) pair is accepted when
	// |amount - base*rate| < base*0.05.
	pairTolerance = decimal.NewFromFloat(0.05)
)

// Locate finds the data-start row and infers the financial column layout
// of a raw export. Detection reads only the first data row; ValidateRate
// corroborates the rate pairs against more rows afterwards. Missing pairs
// are recorded absent, not errors; only a missing data-start row is fatal.
func Locate(t *rawtable.Table, file string, logger logging.Logger) (int, models.ColumnLayout, error) {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}

	dataStart, ok := findDataStart(t)
	if !ok {
		return 0, models.ColumnLayout{}, &transformerror.LayoutError{
			File:   file,
			Reason: "no row with a numeric first cell and a '" + zReportMarker + "' marker found",
		}
	}
	logger.Debug("Detected data start row",
		logging.F("file", file), logging.F("row", dataStart))

	width := t.Width()
	cl := models.ColumnLayout{Total: models.ColumnNotFound}

	// Gross total: first positive numeric after the fixed free-text column.
	for i := models.ExplanationCol + 1; i < width; i++ {
		if v, ok := rawtable.ParseDecimal(t.Cell(dataStart, i)); ok && v.IsPositive() {
			cl.Total = i
			break
		}
	}

	if cl.Total != models.ColumnNotFound {
		cl.Rate21 = findRatePair(t, dataStart, cl.Total+1, width, rate21)
	}
	if cl.Rate21 != nil {
		cl.Rate11 = findRatePair(t, dataStart, cl.Rate21.Amount+1, width, rate11)
	}
	cl.Exempt = findExemptPair(t, dataStart, width, cl.Rate11)

	logger.Info("Column layout detected",
		logging.F("file", file),
		logging.F("total", cl.Total),
		logging.F("rate21", pairString(cl.Rate21)),
		logging.F("rate11", pairString(cl.Rate11)),
		logging.F("exempt", pairString(cl.Exempt)))

	return dataStart, cl, nil
}

// findDataStart scans rows from the top for the first row whose first cell
// is an integer-like token and whose second cell contains the Z-report
// marker.
func findDataStart(t *rawtable.Table) (int, bool) {
	for i := range t.Rows {
		if isSequenceToken(t.Cell(i, models.SequenceCol)) &&
			strings.Contains(t.Cell(i, models.LabelCol), zReportMarker) {
			return i, true
		}
	}
	return 0, false
}

// isSequenceToken accepts an unsigned integer, optionally with a single
// decimal point ("1", "15", "1.0"): the form spreadsheet exports give the
// sequence-number column.
func isSequenceToken(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" || strings.Count(s, ".") > 1 {
		return false
	}
	s = strings.Replace(s, ".", "", 1)
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// findRatePair scans forward from column `from` for the first adjacent
// pair of positive values where the second is within tolerance of
// base*rate.
func findRatePair(t *rawtable.Table, row, from, width int, rate decimal.Decimal) *models.ColumnPair {
	for i := from; i < width-1; i++ {
		base, ok1 := rawtable.ParseDecimal(t.Cell(row, i))
		amount, ok2 := rawtable.ParseDecimal(t.Cell(row, i+1))
		if !ok1 || !ok2 || !base.IsPositive() || !amount.IsPositive() {
			continue
		}
		if amount.Sub(base.Mul(rate)).Abs().LessThan(base.Mul(pairTolerance)) {
			return &models.ColumnPair{Base: i, Amount: i + 1}
		}
	}
	return nil
}

// findExemptPair scans backward from the last column for the last adjacent
// pair of parseable numerics, stopping before it would overlap the 11%
// pair. Zero values are acceptable here: exempt amounts are routinely 0.
func findExemptPair(t *rawtable.Table, row, width int, rate11Pair *models.ColumnPair) *models.ColumnPair {
	floor := models.ExplanationCol + 1
	if rate11Pair != nil && rate11Pair.Amount > floor {
		floor = rate11Pair.Amount
	}
	for i := width - 2; i > floor; i-- {
		_, ok1 := rawtable.ParseDecimal(t.Cell(row, i))
		_, ok2 := rawtable.ParseDecimal(t.Cell(row, i+1))
		if ok1 && ok2 {
			return &models.ColumnPair{Base: i, Amount: i + 1}
		}
	}
	return nil
}

func pairString(p *models.ColumnPair) string {
	if p == nil {
		return "absent"
	}
	return fmt.Sprintf("%d/%d", p.Base, p.Amount)
}
