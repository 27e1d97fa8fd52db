package models

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Andrew-0807/ExcelProcessor/internal/transformerror"
)

// Amount is a monetary value with the CSV coercion the intermediate files
// need: empty and NaN cells read as zero, matching how the cleaner renders
// missing figures. Anything else must parse; a junk cell in a
// machine-written intermediate means the wrong file is being read.
type Amount struct {
	decimal.Decimal
}

// NewAmount wraps a decimal as an Amount.
func NewAmount(d decimal.Decimal) Amount {
	return Amount{Decimal: d}
}

// MarshalCSV renders the amount in plain decimal notation.
func (a Amount) MarshalCSV() (string, error) {
	return a.Decimal.String(), nil
}

// UnmarshalCSV coerces a CSV cell into an Amount. Empty and NaN cells
// become zero; unparseable cells fail the read with cell context.
func (a *Amount) UnmarshalCSV(s string) error {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "nan") {
		a.Decimal = decimal.Zero
		return nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return &transformerror.ParseError{Value: s, Err: err}
	}
	a.Decimal = d
	return nil
}
