package rawtable

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ReadXLSX reads the first sheet of an XLSX workbook into a Table. The
// first row is the header, matching the CSV reader's contract.
func ReadXLSX(path string) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("error opening XLSX file: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("XLSX file has no sheets: %s", path)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("error reading XLSX sheet: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("XLSX sheet is empty: %s", path)
	}

	return &Table{Header: rows[0], Rows: rows[1:]}, nil
}

// WriteXLSX writes a header and rows to a single-sheet XLSX workbook.
func WriteXLSX(path string, header []string, rows [][]string) error {
	f := excelize.NewFile()
	defer func() {
		_ = f.Close()
	}()

	sheet := f.GetSheetName(0)
	if err := setRow(f, sheet, 1, header); err != nil {
		return err
	}
	for i, row := range rows {
		if err := setRow(f, sheet, i+2, row); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("error saving XLSX file: %w", err)
	}
	return nil
}

func setRow(f *excelize.File, sheet string, rowNum int, cells []string) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return fmt.Errorf("error computing cell name: %w", err)
	}
	values := make([]interface{}, len(cells))
	for i, c := range cells {
		values[i] = c
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("error writing XLSX row: %w", err)
	}
	return nil
}

// ReadTable reads a raw export, dispatching on the file extension:
// .xlsx goes through excelize, everything else is treated as CSV.
func ReadTable(path string) (*Table, error) {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return ReadXLSX(path)
	}
	return ReadCSV(path)
}

// XLSXToCSV converts the first sheet of an XLSX workbook to delimited text.
func XLSXToCSV(xlsxPath, csvPath string) error {
	table, err := ReadXLSX(xlsxPath)
	if err != nil {
		return err
	}
	return WriteCSV(csvPath, table.Header, table.Rows)
}

// CSVToXLSX converts delimited text to a single-sheet XLSX workbook.
func CSVToXLSX(csvPath, xlsxPath string) error {
	table, err := ReadCSV(csvPath)
	if err != nil {
		return err
	}
	return WriteXLSX(xlsxPath, table.Header, table.Rows)
}
