// Package convert handles format conversion between CSV and XLSX.
package convert

import (
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Andrew-0807/ExcelProcessor/cmd/root"
	"github.com/Andrew-0807/ExcelProcessor/internal/rawtable"
)

// Cmd represents the convert command
var Cmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert between CSV and XLSX",
	Long: `Convert a file between delimited text and XLSX, picking the direction
from the input extension. Only the first sheet of a workbook is read.

Example:
  borderou convert -i export.xlsx -o export.csv`,
	Run: convertFunc,
}

func convertFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("Convert command called")

	input := root.SharedFlags.Input
	output := root.SharedFlags.Output
	logger := root.GetLogger()

	if input == "" {
		logger.Fatal("Input file must be specified")
	}

	fromXLSX := strings.EqualFold(filepath.Ext(input), ".xlsx")
	if output == "" {
		base := strings.TrimSuffix(input, filepath.Ext(input))
		if fromXLSX {
			output = base + ".csv"
		} else {
			output = base + ".xlsx"
		}
	}

	var err error
	if fromXLSX {
		err = rawtable.XLSXToCSV(input, output)
	} else {
		err = rawtable.CSVToXLSX(input, output)
	}
	if err != nil {
		logger.Fatalf("Failed to convert file: %v", err)
	}

	root.Log.Infof("Converted %s to %s", input, output)
}
