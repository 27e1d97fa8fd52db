// Package clean handles the clean command: raw export to normalized CSV.
package clean

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Andrew-0807/ExcelProcessor/cmd/root"
	"github.com/Andrew-0807/ExcelProcessor/internal/borderou"
	"github.com/Andrew-0807/ExcelProcessor/internal/rawtable"
	"github.com/Andrew-0807/ExcelProcessor/internal/report"
)

// Cmd represents the clean command
var Cmd = &cobra.Command{
	Use:   "clean",
	Short: "Normalize a raw Borderou export into the intermediate CSV",
	Long: `Clean locates the financial block of a raw Borderou export (CSV or XLSX),
validates the inferred VAT columns, and writes the normalized 19-column
intermediate CSV.

Example:
  borderou clean -i "M1 CASA 0014 export.xlsx" -o cleaned.csv`,
	Run: cleanFunc,
}

func cleanFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("Clean command called")

	input := root.SharedFlags.Input
	output := root.SharedFlags.Output
	logger := root.GetLogger()

	if input == "" {
		logger.Fatal("Input file must be specified")
	}
	if output == "" {
		output = DefaultOutputName(input)
	}

	table, err := rawtable.ReadTable(input)
	if err != nil {
		logger.Fatalf("Failed to read input file: %v", err)
	}

	records, layoutReport, err := borderou.CleanWithOptions(table, filepath.Base(input),
		borderou.Options{SampleSize: root.Cfg.Validation.SampleSize}, logger)
	if err != nil {
		logger.Fatalf("Failed to clean export: %v", err)
	}
	for _, w := range layoutReport.Warnings {
		logger.Warn(w)
	}

	if err := borderou.WriteRecords(records, output); err != nil {
		logger.Fatalf("Failed to write cleaned CSV: %v", err)
	}
	root.Log.Infof("Wrote %d cleaned records to %s", len(records), output)

	if root.Cfg.Output.SummaryReport {
		reportPath := strings.TrimSuffix(output, filepath.Ext(output)) + "_summary.txt"
		if err := report.Write(records, reportPath); err != nil {
			logger.WithError(err).Warn("Failed to write summary report")
		} else {
			root.Log.Infof("Wrote summary report to %s", reportPath)
		}
	}
}

// DefaultOutputName derives the cleaned-CSV name from the input file.
func DefaultOutputName(input string) string {
	base := filepath.Base(input)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return fmt.Sprintf("cleaned_%s.csv", base)
}
