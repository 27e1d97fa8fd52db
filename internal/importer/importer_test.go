package importer

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Andrew-0807/ExcelProcessor/internal/models"
	"github.com/Andrew-0807/ExcelProcessor/internal/rawtable"
)

func record(doc int64, day int, explanation string, total, base21, vat21, base11, vat11, exempt float64) models.BorderouRecord {
	return models.BorderouRecord{
		DocNumber:   &doc,
		Date:        models.NewDate(2026, time.March, day),
		Explanation: explanation,
		Total:       models.NewAmount(decimal.NewFromFloat(total)),
		Base21:      models.NewAmount(decimal.NewFromFloat(base21)),
		VAT21:       models.NewAmount(decimal.NewFromFloat(vat21)),
		Base11:      models.NewAmount(decimal.NewFromFloat(base11)),
		VAT11:       models.NewAmount(decimal.NewFromFloat(vat11)),
		ExemptBase:  models.NewAmount(decimal.NewFromFloat(exempt)),
	}
}

func TestTransform_SingleTerminal(t *testing.T) {
	records := []models.BorderouRecord{
		record(101, 1, "", 1000, 650, 136.5, 250, 27.5, 100),
		record(102, 2, "", 500, 300, 63, 100, 11, 0),
	}

	tables, err := Transform(records, "RESTAURANT martie.csv", nil)
	require.NoError(t, err)
	require.Len(t, tables, 1)

	table := tables[0]
	assert.Equal(t, "import_bon_fiscal_RESTAURANT martie.csv", table.Name)
	require.Len(t, table.Rows, 4, "two rows per record")

	// All 21% rows precede all 11% rows.
	assert.Equal(t, 21, table.Rows[0].VATRate)
	assert.Equal(t, 21, table.Rows[1].VATRate)
	assert.Equal(t, 11, table.Rows[2].VATRate)
	assert.Equal(t, 11, table.Rows[3].VATRate)

	// Both rate rows of a record carry the same net-of-exempt figure.
	assert.True(t, table.Rows[0].DocTotal.Equal(decimal.NewFromInt(900)))
	assert.True(t, table.Rows[2].DocTotal.Equal(decimal.NewFromInt(900)))
	assert.True(t, table.Rows[0].Cash.Equal(decimal.NewFromInt(900)))

	for _, row := range table.Rows {
		assert.Equal(t, "R", row.Series)
		assert.Equal(t, 2, row.Warehouse)
		assert.Equal(t, "restaurant", row.ArticleName)
	}
}

func TestTransform_SplitsPerRegisterWithSeriesOverride(t *testing.T) {
	records := []models.BorderouRecord{
		record(15001, 1, "", 1000, 650, 136.5, 250, 27.5, 0),
		record(6002, 1, "", 800, 500, 105, 200, 22, 0),
	}

	tables, err := Transform(records, "borderou M1 martie.csv", nil)
	require.NoError(t, err)
	require.Len(t, tables, 2)

	// Group keys sort: 0012 before 0014.
	assert.Equal(t, "M1 import bon fiscal vanzare CASA 0012.csv", tables[0].Name)
	assert.Equal(t, "M1 import bon fiscal vanzare CASA 0014.csv", tables[1].Name)

	require.Len(t, tables[0].Rows, 2)
	require.Len(t, tables[1].Rows, 2)
	assert.Equal(t, "BFM1 0012", tables[0].Rows[0].Series, "group series overrides profile series")
	assert.Equal(t, "BFM1 0014", tables[1].Rows[0].Series)
	assert.Equal(t, int64(6002), tables[0].Rows[0].DocNumber)
	assert.Equal(t, int64(15001), tables[1].Rows[0].DocNumber)
}

func TestTransform_SkipsRecordsWithoutDocument(t *testing.T) {
	noDoc := models.BorderouRecord{
		Label: "Z POS ----",
		Total: models.NewAmount(decimal.NewFromInt(500)),
	}
	records := []models.BorderouRecord{
		record(101, 1, "", 1000, 650, 136.5, 250, 27.5, 0),
		noDoc,
	}

	tables, err := Transform(records, "FF1 export.csv", nil)
	require.NoError(t, err)
	require.Len(t, tables, 1)
	assert.Len(t, tables[0].Rows, 2, "only the documented record expands")
}

func TestTransform_UnknownTerminal(t *testing.T) {
	_, err := Transform(nil, "mystery.csv", nil)
	assert.Error(t, err)
}

func TestExpandRecord(t *testing.T) {
	r := record(15001, 15, "", 1000, 650, 136.5, 250, 27.5, 100)

	row21, row11 := ExpandRecord(r, "BFM1 0014", "marfa m1 ", 1)

	assert.Equal(t, 21, row21.VATRate)
	assert.True(t, row21.NetTotal.Equal(decimal.NewFromInt(650)))
	assert.True(t, row21.VATValue.Equal(decimal.NewFromFloat(136.5)))

	assert.Equal(t, 11, row11.VATRate)
	assert.True(t, row11.NetTotal.Equal(decimal.NewFromInt(250)))
	assert.True(t, row11.VATValue.Equal(decimal.NewFromFloat(27.5)))

	assert.Equal(t, "20260315", row21.DocDate)
	assert.Equal(t, row21.DocTotal, row11.DocTotal)
}

func TestWriteTable_HeaderAndRows(t *testing.T) {
	outDir := t.TempDir()
	table := NamedTable{
		Name: "import_bon_fiscal_test.csv",
		Rows: []models.ImportRow{
			models.NewImportRow("R", 101, 2, models.NewDate(2026, time.March, 1),
				"restaurant", 21, decimal.NewFromInt(650), decimal.NewFromFloat(136.5), decimal.NewFromInt(900)),
		},
	}

	path, err := WriteTable(table, outDir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(outDir, table.Name), path)

	written, err := rawtable.ReadCSV(path)
	require.NoError(t, err)
	assert.Equal(t, "Serie document", written.Header[0])
	assert.Equal(t, "DiscountLinie", written.Header[len(written.Header)-1])
	assert.Len(t, written.Header, 53)
	require.Len(t, written.Rows, 1)
	assert.Equal(t, "R", written.Cell(0, 0))
	assert.Equal(t, "101", written.Cell(0, 1))
}

func TestWriteTableXLSX(t *testing.T) {
	outDir := t.TempDir()
	table := NamedTable{
		Name: "M1 import bon fiscal vanzare CASA 0014.csv",
		Rows: []models.ImportRow{
			models.NewImportRow("BFM1 0014", 15001, 1, models.NewDate(2026, time.March, 15),
				"marfa m1 ", 21, decimal.NewFromInt(650), decimal.NewFromFloat(136.5), decimal.NewFromInt(900)),
		},
	}

	path, err := WriteTableXLSX(table, outDir)
	require.NoError(t, err)
	assert.Equal(t, ".xlsx", filepath.Ext(path))

	written, err := rawtable.ReadXLSX(path)
	require.NoError(t, err)
	assert.Equal(t, "Serie document", written.Header[0])
	require.Len(t, written.Rows, 1)
	assert.Equal(t, "BFM1 0014", written.Cell(0, 0))

	entries, err := os.ReadDir(outDir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no CSV byproduct next to the workbook")
}
