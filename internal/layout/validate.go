package layout

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/Andrew-0807/ExcelProcessor/internal/logging"
	"github.com/Andrew-0807/ExcelProcessor/internal/models"
	"github.com/Andrew-0807/ExcelProcessor/internal/rawtable"
)

// DefaultSampleSize is the number of data rows sampled when validating an
// inferred rate column pair.
const DefaultSampleSize = 10

// minUsableRows is the evidence threshold below which a verdict passes as
// unproven. Deliberately permissive: low-volume files should transform
// rather than block on sparse data.
const minUsableRows = 3

// rateTolerance is how far amount/base may drift from the expected rate
// for a sampled row to count as matching.
var rateTolerance = decimal.NewFromFloat(0.02)

// ValidateRate cross-checks an inferred (base, amount) pair against up to
// sampleSize data rows. It never fails the pipeline: a negative verdict is
// surfaced as a warning and flags the output as suspect, since there is no
// reliable corrective action and the business wants best-effort output.
//
// Pass when fewer than minUsableRows rows yield a usable pair, or when at
// least 70% of usable rows match the expected rate within tolerance.
func ValidateRate(t *rawtable.Table, dataStart int, pair *models.ColumnPair,
	rate decimal.Decimal, sampleSize int, logger logging.Logger) models.RateVerdict {

	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}

	label := fmt.Sprintf("%s%%", rate.Mul(decimal.NewFromInt(100)).StringFixed(0))
	verdict := models.RateVerdict{Rate: label, Pass: true, Column: models.ColumnNotFound}

	if pair == nil {
		verdict.Note = "columns not detected, nothing to validate"
		return verdict
	}
	verdict.Column = pair.Amount

	if sampleSize <= 0 || sampleSize > DefaultSampleSize {
		sampleSize = DefaultSampleSize
	}
	rows := len(t.Rows) - dataStart
	if rows < sampleSize {
		sampleSize = rows
	}

	for i := 0; i < sampleSize; i++ {
		base, ok1 := rawtable.ParseDecimal(t.Cell(dataStart+i, pair.Base))
		amount, ok2 := rawtable.ParseDecimal(t.Cell(dataStart+i, pair.Amount))
		if !ok1 || !ok2 || base.IsZero() {
			continue
		}
		verdict.Usable++
		if amount.Div(base).Sub(rate).Abs().LessThan(rateTolerance) {
			verdict.Matched++
		}
	}

	if verdict.Usable == 0 {
		verdict.Note = "no usable numeric rows found, accepting detection"
		logger.Warn("Could not validate rate columns",
			logging.F("rate", label), logging.F("column", pair.Amount))
		return verdict
	}
	if verdict.Usable < minUsableRows {
		verdict.Note = fmt.Sprintf("only %d usable rows, too few for reliable validation", verdict.Usable)
		logger.Warn("Too few rows to validate rate columns",
			logging.F("rate", label), logging.F("usable", verdict.Usable))
		return verdict
	}

	// 70% threshold, exact in integer arithmetic
	if verdict.Matched*10 < verdict.Usable*7 {
		verdict.Pass = false
		verdict.Note = fmt.Sprintf("only %d/%d rows match expected rate, column %d is likely wrong",
			verdict.Matched, verdict.Usable, pair.Amount)
		logger.Error("Rate column validation failed, output data may be incorrect",
			logging.F("rate", label),
			logging.F("matched", verdict.Matched),
			logging.F("usable", verdict.Usable),
			logging.F("column", pair.Amount))
		return verdict
	}

	logger.Info("Rate columns validated",
		logging.F("rate", label),
		logging.F("matched", verdict.Matched),
		logging.F("usable", verdict.Usable))
	return verdict
}

// Rate21 and Rate11 expose the statutory rates for callers wiring the
// validator to the locator's output.
func Rate21() decimal.Decimal { return rate21 }

// Rate11 returns the reduced statutory VAT rate.
func Rate11() decimal.Decimal { return rate11 }
