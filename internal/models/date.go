package models

import (
	"strings"
	"time"
)

// dateFormats are the layouts encountered across the known terminal exports.
// Order matters: day-first European layouts are tried before US ones.
var dateFormats = []string{
	"2006-01-02",
	"02.01.2006",
	"2.1.2006",
	"02/01/2006",
	"02-01-2006",
	"2006-01-02 15:04:05",
	"01/02/2006",
}

// Date is a calendar date with best-effort CSV coercion. The zero value
// marks a cell that could not be parsed; such rows survive normalization
// and are only discarded at the accounting stage.
type Date struct {
	time.Time
}

// NewDate builds a Date at midnight UTC.
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a date cell using the known export layouts.
// Unparseable input yields the zero Date, never an error.
func ParseDate(s string) Date {
	s = strings.TrimSpace(s)
	if s == "" {
		return Date{}
	}
	for _, layout := range dateFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return Date{t}
		}
	}
	return Date{}
}

// Compact returns the date as YYYYMMDD, the form the accounting import
// expects in its document date fields.
func (d Date) Compact() string {
	if d.IsZero() {
		return ""
	}
	return d.Format("20060102")
}

// MarshalCSV renders the date as ISO (YYYY-MM-DD), empty when unset.
func (d Date) MarshalCSV() (string, error) {
	if d.IsZero() {
		return "", nil
	}
	return d.Format("2006-01-02"), nil
}

// UnmarshalCSV coerces a CSV cell into a Date. Bad cells become the zero
// Date rather than failing the row.
func (d *Date) UnmarshalCSV(s string) error {
	*d = ParseDate(s)
	return nil
}
