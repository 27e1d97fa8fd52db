package importer

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gocarina/gocsv"

	"github.com/Andrew-0807/ExcelProcessor/internal/rawtable"
)

// WriteTable writes one accounting table as CSV into outDir under its own
// name.
func WriteTable(table NamedTable, outDir string) (string, error) {
	if err := os.MkdirAll(outDir, 0750); err != nil {
		return "", fmt.Errorf("error creating output directory: %w", err)
	}

	path := filepath.Join(outDir, table.Name)
	file, err := os.Create(path) // #nosec G304 -- CLI tool requires user-provided file paths
	if err != nil {
		return "", fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	writer := rawtable.NewWriter(file)
	if err := gocsv.MarshalCSV(&table.Rows, gocsv.NewSafeCSVWriter(writer)); err != nil {
		return "", fmt.Errorf("error writing CSV data: %w", err)
	}
	return path, nil
}

// WriteTables writes every table as CSV and returns the written paths.
// One table's failure aborts the batch: the caller owns per-file recovery.
func WriteTables(tables []NamedTable, outDir string) ([]string, error) {
	paths := make([]string, 0, len(tables))
	for _, t := range tables {
		path, err := WriteTable(t, outDir)
		if err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// WriteTableXLSX writes one accounting table as an XLSX workbook, under
// the table's name with the extension swapped to .xlsx.
func WriteTableXLSX(table NamedTable, outDir string) (string, error) {
	if err := os.MkdirAll(outDir, 0750); err != nil {
		return "", fmt.Errorf("error creating output directory: %w", err)
	}

	var buf bytes.Buffer
	writer := rawtable.NewWriter(&buf)
	if err := gocsv.MarshalCSV(&table.Rows, gocsv.NewSafeCSVWriter(writer)); err != nil {
		return "", fmt.Errorf("error marshaling rows: %w", err)
	}
	parsed, err := rawtable.ParseCSV(&buf)
	if err != nil {
		return "", err
	}

	name := strings.TrimSuffix(table.Name, filepath.Ext(table.Name)) + ".xlsx"
	path := filepath.Join(outDir, name)
	if err := rawtable.WriteXLSX(path, parsed.Header, parsed.Rows); err != nil {
		return "", err
	}
	return path, nil
}
