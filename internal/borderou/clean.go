// Package borderou turns a raw Borderou export into a stream of normalized
// records. It wires the column locator and rate validator to the row
// normalizer and exposes Clean, the first of the pipeline's two entry
// points.
package borderou

import (
	"github.com/Andrew-0807/ExcelProcessor/internal/layout"
	"github.com/Andrew-0807/ExcelProcessor/internal/logging"
	"github.com/Andrew-0807/ExcelProcessor/internal/models"
	"github.com/Andrew-0807/ExcelProcessor/internal/rawtable"
)

// Options tunes the clean stage. The zero value uses the defaults.
type Options struct {
	// SampleSize caps how many rows the rate validator samples (max 10).
	SampleSize int
}

// Clean locates the financial block of a raw export, validates the
// inferred VAT columns, and normalizes every data row. Rows are never
// dropped here: cells that fail coercion become zero (numeric) or nil
// (sequence/document number); the accounting stage filters later.
//
// The returned report carries the detected indices and both validation
// verdicts; a failed verdict is advisory and does not abort the file.
func Clean(t *rawtable.Table, file string, logger logging.Logger) ([]models.BorderouRecord, *models.LayoutReport, error) {
	return CleanWithOptions(t, file, Options{}, logger)
}

// CleanWithOptions is Clean with explicit tuning.
func CleanWithOptions(t *rawtable.Table, file string, opts Options, logger logging.Logger) ([]models.BorderouRecord, *models.LayoutReport, error) {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}

	dataStart, cl, err := layout.Locate(t, file, logger)
	if err != nil {
		return nil, nil, err
	}

	report := &models.LayoutReport{
		DataStart: dataStart,
		Layout:    cl,
		Verdict21: layout.ValidateRate(t, dataStart, cl.Rate21, layout.Rate21(), opts.SampleSize, logger),
		Verdict11: layout.ValidateRate(t, dataStart, cl.Rate11, layout.Rate11(), opts.SampleSize, logger),
	}
	for _, v := range []models.RateVerdict{report.Verdict21, report.Verdict11} {
		if !v.Pass {
			report.Warnings = append(report.Warnings, v.String())
		}
	}
	if report.Suspect() {
		logger.Warn("Column detection validation failed, check output carefully",
			logging.F("file", file))
	}

	records := make([]models.BorderouRecord, 0, len(t.Rows)-dataStart)
	for row := dataStart; row < len(t.Rows); row++ {
		records = append(records, normalizeRow(t, row, cl))
	}
	report.RowCount = len(records)

	logger.Info("Cleaned Borderou export",
		logging.F("file", file),
		logging.F("rows", len(records)),
		logging.F("data_start", dataStart))

	return records, report, nil
}

// normalizeRow coerces one raw row into a BorderouRecord using the
// detected layout. Absent layout slots default to zero.
func normalizeRow(t *rawtable.Table, row int, cl models.ColumnLayout) models.BorderouRecord {
	rec := models.BorderouRecord{
		Sequence:    cellInt(t, row, models.SequenceCol),
		Label:       t.Cell(row, models.LabelCol),
		DocNumber:   cellInt(t, row, models.DocNumberCol),
		Date:        models.ParseDate(t.Cell(row, models.DateCol)),
		Explanation: t.Cell(row, models.ExplanationCol),
	}

	if cl.Total != models.ColumnNotFound {
		rec.Total = cellAmount(t, row, cl.Total)
	}
	if cl.Rate21 != nil {
		rec.Base21 = cellAmount(t, row, cl.Rate21.Base)
		rec.VAT21 = cellAmount(t, row, cl.Rate21.Amount)
	}
	if cl.Rate11 != nil {
		rec.Base11 = cellAmount(t, row, cl.Rate11.Base)
		rec.VAT11 = cellAmount(t, row, cl.Rate11.Amount)
	}
	if cl.Exempt != nil {
		rec.ExemptBase = cellAmount(t, row, cl.Exempt.Base)
		rec.ExemptVAT = cellAmount(t, row, cl.Exempt.Amount)
	}
	return rec
}

func cellAmount(t *rawtable.Table, row, col int) models.Amount {
	d, _ := rawtable.ParseDecimal(t.Cell(row, col))
	return models.NewAmount(d)
}

func cellInt(t *rawtable.Table, row, col int) *int64 {
	n, ok := rawtable.ParseInt(t.Cell(row, col))
	if !ok {
		return nil
	}
	return &n
}
