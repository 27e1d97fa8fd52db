package borderou

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/Andrew-0807/ExcelProcessor/internal/models"
	"github.com/Andrew-0807/ExcelProcessor/internal/rawtable"
)

// WriteRecords writes normalized records as the 19-column intermediate CSV.
func WriteRecords(records []models.BorderouRecord, path string) error {
	if records == nil {
		return fmt.Errorf("cannot write nil records to CSV")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}
	file, err := os.Create(path) // #nosec G304 -- CLI tool requires user-provided file paths
	if err != nil {
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	writer := rawtable.NewWriter(file)
	if err := gocsv.MarshalCSV(&records, gocsv.NewSafeCSVWriter(writer)); err != nil {
		return fmt.Errorf("error writing CSV data: %w", err)
	}
	return nil
}

// ReadRecords reads a previously written intermediate CSV back into
// normalized records, tolerating the configured delimiter.
func ReadRecords(path string) ([]models.BorderouRecord, error) {
	file, err := os.Open(path) // #nosec G304 -- CLI tool requires user-provided file paths
	if err != nil {
		return nil, fmt.Errorf("error opening CSV file: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	var records []models.BorderouRecord
	if err := gocsv.UnmarshalCSV(rawtable.NewReader(file), &records); err != nil {
		return nil, fmt.Errorf("error parsing CSV file: %w", err)
	}
	return records, nil
}
