package models

import "fmt"

// Fixed leading columns of every Borderou export. Everything to the right
// of the explanation column shifts between terminal types and is inferred.
const (
	SequenceCol    = 0
	LabelCol       = 1
	DocNumberCol   = 2
	DateCol        = 3
	ExplanationCol = 4
)

// ColumnNotFound marks an inferred column slot that was not detected.
const ColumnNotFound = -1

// ColumnPair holds the positions of a (base, amount) column pair.
type ColumnPair struct {
	Base   int
	Amount int
}

// ColumnLayout maps the inferred financial columns of one raw export.
// It is produced once per input table and immutable thereafter. A nil pair
// means the columns were not found; downstream fields default to zero.
type ColumnLayout struct {
	Total  int
	Rate21 *ColumnPair
	Rate11 *ColumnPair
	Exempt *ColumnPair
}

// RateVerdict is the advisory cross-check of one inferred VAT column pair
// against a sample of data rows. A failed verdict flags the output as
// suspect but never aborts the transformation.
type RateVerdict struct {
	Rate    string // "21%" or "11%"
	Pass    bool
	Usable  int // sampled rows with a usable base/amount pair
	Matched int // usable rows within tolerance of the expected rate
	Column  int // suspect amount column index, ColumnNotFound when unchecked
	Note    string
}

func (v RateVerdict) String() string {
	if v.Pass {
		return fmt.Sprintf("%s: pass (%d/%d rows match)", v.Rate, v.Matched, v.Usable)
	}
	return fmt.Sprintf("%s: FAIL (%d/%d rows match, column %d suspect)",
		v.Rate, v.Matched, v.Usable, v.Column)
}

// LayoutReport is the diagnostic output of the clean stage: where the data
// starts, which columns were inferred, and how the rate validations went.
type LayoutReport struct {
	DataStart int
	Layout    ColumnLayout
	Verdict21 RateVerdict
	Verdict11 RateVerdict
	RowCount  int
	Warnings  []string
}

// Suspect reports whether either rate validation failed.
func (r *LayoutReport) Suspect() bool {
	return !r.Verdict21.Pass || !r.Verdict11.Pass
}
