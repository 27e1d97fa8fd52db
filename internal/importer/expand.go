// Package importer expands normalized Borderou records into the accounting
// import schema and exposes Transform, the second of the pipeline's two
// entry points.
package importer

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/Andrew-0807/ExcelProcessor/internal/logging"
	"github.com/Andrew-0807/ExcelProcessor/internal/models"
	"github.com/Andrew-0807/ExcelProcessor/internal/terminal"
)

// NamedTable is one output file of the transform stage: a file name and
// its accounting rows.
type NamedTable struct {
	Name string
	Rows []models.ImportRow
}

// Transform expands normalized records into accounting import tables. The
// source filename selects the terminal profile (series, article label,
// warehouse) and, for multi-register families, triggers per-register
// splitting into one table per group.
//
// Records without a parsed document number or date are skipped here with a
// warning; this is the only stage that drops rows.
func Transform(records []models.BorderouRecord, sourceFilename string, logger logging.Logger) ([]NamedTable, error) {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}

	profile, err := terminal.Resolve(sourceFilename)
	if err != nil {
		return nil, err
	}

	usable := make([]models.BorderouRecord, 0, len(records))
	for _, r := range records {
		if r.HasDocument() {
			usable = append(usable, r)
			continue
		}
		logger.Warn("Skipping record without document number or date",
			logging.F("file", sourceFilename),
			logging.F("label", r.Label))
	}

	if !profile.NeedsSplitting {
		rows := expandGroup(usable, profile.Series, profile.ArticleLabel, profile.Warehouse)
		name := singleOutputName(sourceFilename)
		logger.Info("Transformed records to import format",
			logging.F("file", sourceFilename),
			logging.F("records", len(usable)),
			logging.F("rows", len(rows)))
		return []NamedTable{{Name: name, Rows: rows}}, nil
	}

	groups := terminal.Split(usable, profile.Family)
	tables := make([]NamedTable, 0, len(groups))
	for _, key := range terminal.GroupKeys(groups) {
		series := profile.Family.SeriesFor(key)
		rows := expandGroup(groups[key], series, profile.ArticleLabel, profile.Warehouse)
		tables = append(tables, NamedTable{
			Name: fmt.Sprintf("%s import bon fiscal vanzare CASA %s.csv", profile.Family, key),
			Rows: rows,
		})
	}
	logger.Info("Transformed records into per-register import tables",
		logging.F("file", sourceFilename),
		logging.F("records", len(usable)),
		logging.F("groups", len(tables)))
	return tables, nil
}

// expandGroup emits two rows per record and orders the output so that all
// 21% rows precede all 11% rows. The downstream import expects the two
// rate blocks contiguous, not interleaved per transaction.
func expandGroup(records []models.BorderouRecord, series, label string, warehouse int) []models.ImportRow {
	rows21 := make([]models.ImportRow, 0, len(records))
	rows11 := make([]models.ImportRow, 0, len(records))
	for _, r := range records {
		r21, r11 := ExpandRecord(r, series, label, warehouse)
		rows21 = append(rows21, r21)
		rows11 = append(rows11, r11)
	}
	return append(rows21, rows11...)
}

// ExpandRecord builds the 21% and 11% accounting rows for one record.
// Both rows carry the record's total-minus-exempt figure in their document
// total and cash fields; missing numeric fields propagate as zero, the
// expander never rejects a record.
func ExpandRecord(r models.BorderouRecord, series, label string, warehouse int) (models.ImportRow, models.ImportRow) {
	net := r.NetOfExempt()
	docNumber := int64(0)
	if r.DocNumber != nil {
		docNumber = *r.DocNumber
	}
	row21 := models.NewImportRow(series, docNumber, warehouse, r.Date, label, 21, r.Base21.Decimal, r.VAT21.Decimal, net)
	row11 := models.NewImportRow(series, docNumber, warehouse, r.Date, label, 11, r.Base11.Decimal, r.VAT11.Decimal, net)
	return row21, row11
}

func singleOutputName(sourceFilename string) string {
	base := filepath.Base(sourceFilename)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return fmt.Sprintf("import_bon_fiscal_%s.csv", base)
}
