// Package transformerror defines the error taxonomy of the Borderou
// transformation pipeline. Layout and terminal-resolution errors are fatal
// for the file being processed; everything else is absorbed or reported as
// a warning in the layout report.
package transformerror

import "fmt"

// LayoutError reports that no plausible data-start row or column layout
// could be detected in a raw export. Fatal for the file.
type LayoutError struct {
	File   string
	Reason string
}

func (e *LayoutError) Error() string {
	return fmt.Sprintf("layout detection failed for %s: %s", e.File, e.Reason)
}

// UnknownTerminalError reports a filename that matches no known terminal
// profile keyword. Fatal for the file: series and warehouse codes drive
// accounting correctness, so no default profile is invented.
type UnknownTerminalError struct {
	File string
}

func (e *UnknownTerminalError) Error() string {
	return fmt.Sprintf("no terminal profile matches filename: %s", e.File)
}

// ParseError carries cell-level context for input that could not be read.
// Cell failures are absorbed during raw-export normalization; this type is
// used where a parse failure must abort an operation: malformed delimited
// text and junk numeric cells in machine-written intermediate files.
// File, Row, Col and Value are filled as far as the failing layer knows
// them.
type ParseError struct {
	File  string
	Row   int
	Col   int
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("%s: row %d col %d: failed to parse '%s': %v",
			e.File, e.Row, e.Col, e.Value, e.Err)
	}
	return fmt.Sprintf("%s: row %d col %d: %v", e.File, e.Row, e.Col, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
