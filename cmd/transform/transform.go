// Package transform handles the transform command: intermediate CSV to
// accounting import files.
package transform

import (
	"github.com/spf13/cobra"

	"github.com/Andrew-0807/ExcelProcessor/cmd/root"
	"github.com/Andrew-0807/ExcelProcessor/internal/borderou"
	"github.com/Andrew-0807/ExcelProcessor/internal/importer"
)

var sourceName string

// Cmd represents the transform command
var Cmd = &cobra.Command{
	Use:   "transform",
	Short: "Expand a cleaned CSV into accounting import files",
	Long: `Transform reads a cleaned intermediate CSV and expands each record into
per-VAT-rate accounting rows, split per register for multi-register
terminals. The terminal profile (document series, article label,
warehouse) is matched from the file name; pass --source when the
cleaned file no longer carries the original export name.

Example:
  borderou transform -i "cleaned_M1 CASA 0014 export.csv" -o out/import`,
	Run: transformFunc,
}

func init() {
	Cmd.Flags().StringVar(&sourceName, "source", "", "Original export file name used for terminal matching (defaults to the input name)")
}

func transformFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("Transform command called")

	input := root.SharedFlags.Input
	outDir := root.SharedFlags.Output
	logger := root.GetLogger()

	if input == "" {
		logger.Fatal("Input file must be specified")
	}
	if outDir == "" {
		outDir = "."
	}
	source := sourceName
	if source == "" {
		source = input
	}

	records, err := borderou.ReadRecords(input)
	if err != nil {
		logger.Fatalf("Failed to read cleaned CSV: %v", err)
	}

	tables, err := importer.Transform(records, source, logger)
	if err != nil {
		logger.Fatalf("Failed to transform records: %v", err)
	}

	paths, err := importer.WriteTables(tables, outDir)
	if err != nil {
		logger.Fatalf("Failed to write import files: %v", err)
	}
	for _, p := range paths {
		root.Log.Infof("Wrote import file %s", p)
	}

	if root.Cfg.Output.XLSX {
		for _, t := range tables {
			if _, err := importer.WriteTableXLSX(t, outDir); err != nil {
				logger.WithError(err).Warn("Failed to write XLSX import file")
			}
		}
	}
}
