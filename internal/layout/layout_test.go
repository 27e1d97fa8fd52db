package layout

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Andrew-0807/ExcelProcessor/internal/models"
	"github.com/Andrew-0807/ExcelProcessor/internal/rawtable"
	"github.com/Andrew-0807/ExcelProcessor/internal/transformerror"
)

// scenarioTable mimics a typical export: two irregular header rows, then a
// Z-report data row with gross total, 21% pair, 11% pair and exempt pair.
func scenarioTable() *rawtable.Table {
	return &rawtable.Table{
		Header: []string{"BORDEROU", "", "", "", "", "", "", "", "", "", "", ""},
		Rows: [][]string{
			{"Raport vanzari", "", "", "", "", "", "", "", "", "", "", ""},
			{"", "Casa de marcat", "", "", "", "", "", "", "", "", "", ""},
			{"1", "Z POS 15001", "15001", "2026-03-15", "bon nr.14", "1000", "650", "136.5", "250", "27.5", "100", "0"},
			{"2", "Z POS 15002", "15002", "2026-03-16", "bon nr.14", "900", "600", "126", "200", "22", "100", "0"},
		},
	}
}

func TestLocate_DetectsLayout(t *testing.T) {
	dataStart, cl, err := Locate(scenarioTable(), "M1 export.csv", nil)
	require.NoError(t, err)

	assert.Equal(t, 2, dataStart)
	assert.Equal(t, 5, cl.Total)
	require.NotNil(t, cl.Rate21)
	assert.Equal(t, models.ColumnPair{Base: 6, Amount: 7}, *cl.Rate21)
	require.NotNil(t, cl.Rate11)
	assert.Equal(t, models.ColumnPair{Base: 8, Amount: 9}, *cl.Rate11)
	require.NotNil(t, cl.Exempt)
	assert.Equal(t, models.ColumnPair{Base: 10, Amount: 11}, *cl.Exempt)
}

func TestLocate_Deterministic(t *testing.T) {
	table := scenarioTable()
	start1, cl1, err := Locate(table, "a.csv", nil)
	require.NoError(t, err)
	start2, cl2, err := Locate(table, "a.csv", nil)
	require.NoError(t, err)

	assert.Equal(t, start1, start2)
	assert.Equal(t, cl1, cl2)
}

func TestLocate_NoDataStartIsFatal(t *testing.T) {
	table := &rawtable.Table{
		Header: []string{"a", "b"},
		Rows: [][]string{
			{"Raport", "vanzari"},
			{"x", "y"},
		},
	}

	_, _, err := Locate(table, "broken.csv", nil)
	require.Error(t, err)

	var layoutErr *transformerror.LayoutError
	require.True(t, errors.As(err, &layoutErr))
	assert.Equal(t, "broken.csv", layoutErr.File)
}

func TestLocate_MissingPairsAreAbsentNotFatal(t *testing.T) {
	table := &rawtable.Table{
		Header: []string{"", "", "", "", "", "", "", ""},
		Rows: [][]string{
			{"1", "Z POS 100", "", "", "", "500", "text", "more"},
		},
	}

	dataStart, cl, err := Locate(table, "sparse.csv", nil)
	require.NoError(t, err)
	assert.Equal(t, 0, dataStart)
	assert.Equal(t, 5, cl.Total)
	assert.Nil(t, cl.Rate21)
	assert.Nil(t, cl.Rate11)
	assert.Nil(t, cl.Exempt)
}

func TestLocate_SequenceTokenForms(t *testing.T) {
	for _, seq := range []string{"1", "15", "1.0"} {
		table := &rawtable.Table{
			Rows: [][]string{{seq, "Z POS 1", "", "", "", "10"}},
		}
		start, _, err := Locate(table, "f.csv", nil)
		require.NoError(t, err, "sequence token %q should be accepted", seq)
		assert.Equal(t, 0, start)
	}

	for _, seq := range []string{"", "abc", "1.2.3", "-1"} {
		table := &rawtable.Table{
			Rows: [][]string{{seq, "Z POS 1", "", "", "", "10"}},
		}
		_, _, err := Locate(table, "f.csv", nil)
		assert.Error(t, err, "sequence token %q should be rejected", seq)
	}
}

// rateTable builds rows where `matching` of `total` rows carry an exact
// 21% amount and the rest an obviously wrong one.
func rateTable(matching, total int) *rawtable.Table {
	rows := make([][]string, 0, total)
	for i := 0; i < total; i++ {
		amount := "21"
		if i >= matching {
			amount = "50"
		}
		rows = append(rows, []string{"100", amount})
	}
	return &rawtable.Table{Header: []string{"base", "vat"}, Rows: rows}
}

func TestValidateRate_SeventyPercentBoundary(t *testing.T) {
	pair := &models.ColumnPair{Base: 0, Amount: 1}

	verdict := ValidateRate(rateTable(7, 10), 0, pair, Rate21(), 10, nil)
	assert.True(t, verdict.Pass, "7/10 matching rows is exactly the threshold")
	assert.Equal(t, 10, verdict.Usable)
	assert.Equal(t, 7, verdict.Matched)

	verdict = ValidateRate(rateTable(6, 10), 0, pair, Rate21(), 10, nil)
	assert.False(t, verdict.Pass, "6/10 matching rows is below the threshold")
}

func TestValidateRate_TooFewRowsPassesUnproven(t *testing.T) {
	pair := &models.ColumnPair{Base: 0, Amount: 1}

	verdict := ValidateRate(rateTable(0, 2), 0, pair, Rate21(), 10, nil)
	assert.True(t, verdict.Pass, "under 3 usable rows the verdict must pass as unproven")
	assert.Equal(t, 2, verdict.Usable)
	assert.NotEmpty(t, verdict.Note)
}

func TestValidateRate_SkipsUnusableRows(t *testing.T) {
	table := &rawtable.Table{
		Header: []string{"base", "vat"},
		Rows: [][]string{
			{"100", "21"},
			{"0", "21"},   // zero base is unusable
			{"", "21"},    // empty base is unusable
			{"abc", "21"}, // junk base is unusable
			{"100", "21"},
			{"100", "21"},
		},
	}
	verdict := ValidateRate(table, 0, &models.ColumnPair{Base: 0, Amount: 1}, Rate21(), 10, nil)
	assert.True(t, verdict.Pass)
	assert.Equal(t, 3, verdict.Usable)
	assert.Equal(t, 3, verdict.Matched)
}

func TestValidateRate_NilPairPasses(t *testing.T) {
	verdict := ValidateRate(rateTable(0, 5), 0, nil, Rate11(), 10, nil)
	assert.True(t, verdict.Pass)
	assert.Equal(t, models.ColumnNotFound, verdict.Column)
}

func TestValidateRate_SampleSizeCapped(t *testing.T) {
	// 20 rows, first 10 match; sampling must stop at 10 regardless of the
	// requested size.
	rows := make([][]string, 0, 20)
	for i := 0; i < 20; i++ {
		amount := "21"
		if i >= 10 {
			amount = "50"
		}
		rows = append(rows, []string{"100", amount})
	}
	table := &rawtable.Table{Header: []string{"base", "vat"}, Rows: rows}

	verdict := ValidateRate(table, 0, &models.ColumnPair{Base: 0, Amount: 1}, Rate21(), 100, nil)
	assert.Equal(t, 10, verdict.Usable)
	assert.True(t, verdict.Pass)
}

func TestRateVerdictString(t *testing.T) {
	verdict := ValidateRate(rateTable(6, 10), 0, &models.ColumnPair{Base: 0, Amount: 1}, Rate21(), 10, nil)
	s := verdict.String()
	assert.Contains(t, s, "21%")
	assert.Contains(t, s, "6/10")
}
