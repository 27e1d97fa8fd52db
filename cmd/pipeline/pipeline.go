// Package pipeline handles batch processing of a directory of exports.
package pipeline

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Andrew-0807/ExcelProcessor/cmd/clean"
	"github.com/Andrew-0807/ExcelProcessor/cmd/root"
	"github.com/Andrew-0807/ExcelProcessor/internal/borderou"
	"github.com/Andrew-0807/ExcelProcessor/internal/fileutils"
	"github.com/Andrew-0807/ExcelProcessor/internal/importer"
	"github.com/Andrew-0807/ExcelProcessor/internal/logging"
	"github.com/Andrew-0807/ExcelProcessor/internal/rawtable"
	"github.com/Andrew-0807/ExcelProcessor/internal/report"
)

// Cmd represents the pipeline command
var Cmd = &cobra.Command{
	Use:   "pipeline",
	Short: "Run the full clean and transform pipeline over a directory",
	Long: `Pipeline processes every CSV and XLSX export in the input directory:
each file is cleaned, summarized, and expanded into accounting import
files. A file that fails is logged and skipped; the rest of the batch
continues.

Outputs land under the output directory:
  cleaned/     normalized intermediate CSVs and summary reports
  import/csv/  accounting import CSVs
  import/      accounting import XLSX workbooks

Example:
  borderou pipeline -i in/ -o out/`,
	Run: pipelineFunc,
}

func pipelineFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("Pipeline command called")

	inputDir := root.SharedFlags.Input
	outputDir := root.SharedFlags.Output
	logger := root.GetLogger()

	if inputDir == "" {
		inputDir = root.Cfg.Dirs.Input
	}
	if outputDir == "" {
		outputDir = root.Cfg.Dirs.Output
	}
	if !fileutils.DirectoryExists(inputDir) {
		logger.Fatalf("Input directory does not exist: %s", inputDir)
	}

	files, err := fileutils.ListFilesWithExtensions(inputDir, ".csv", ".xlsx")
	if err != nil {
		logger.Fatalf("Failed to list input directory: %v", err)
	}
	if len(files) == 0 {
		logger.Warn("No CSV or XLSX files found in input directory",
			logging.F("dir", inputDir))
		return
	}

	cleanedDir := filepath.Join(outputDir, "cleaned")
	importDir := filepath.Join(outputDir, "import")
	importCSVDir := filepath.Join(importDir, "csv")
	for _, dir := range []string{cleanedDir, importCSVDir} {
		if err := fileutils.EnsureDirectoryExists(dir); err != nil {
			logger.Fatalf("Failed to create output directory: %v", err)
		}
	}

	processed := 0
	for _, file := range files {
		if err := processFile(file, cleanedDir, importDir, importCSVDir, logger); err != nil {
			logger.WithError(err).Error("Failed to process file, continuing with batch",
				logging.F("file", filepath.Base(file)))
			continue
		}
		processed++
	}

	root.Log.Info(fmt.Sprintf("Pipeline completed. %d of %d files processed.", processed, len(files)))
}

func processFile(file, cleanedDir, importDir, importCSVDir string, logger logging.Logger) error {
	name := filepath.Base(file)
	logger.Info("Processing export", logging.F("file", name))

	table, err := rawtable.ReadTable(file)
	if err != nil {
		return err
	}

	records, layoutReport, err := borderou.CleanWithOptions(table, name,
		borderou.Options{SampleSize: root.Cfg.Validation.SampleSize}, logger)
	if err != nil {
		return err
	}
	for _, w := range layoutReport.Warnings {
		logger.Warn(w, logging.F("file", name))
	}

	cleanedPath := filepath.Join(cleanedDir, clean.DefaultOutputName(file))
	if err := borderou.WriteRecords(records, cleanedPath); err != nil {
		return err
	}

	if root.Cfg.Output.SummaryReport {
		reportPath := strings.TrimSuffix(cleanedPath, filepath.Ext(cleanedPath)) + "_summary.txt"
		if err := report.Write(records, reportPath); err != nil {
			logger.WithError(err).Warn("Failed to write summary report",
				logging.F("file", name))
		}
	}

	tables, err := importer.Transform(records, name, logger)
	if err != nil {
		return err
	}
	if _, err := importer.WriteTables(tables, importCSVDir); err != nil {
		return err
	}
	if root.Cfg.Output.XLSX {
		for _, t := range tables {
			if _, err := importer.WriteTableXLSX(t, importDir); err != nil {
				logger.WithError(err).Warn("Failed to write XLSX import file",
					logging.F("file", name))
			}
		}
	}
	return nil
}
