package rawtable

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	"github.com/Andrew-0807/ExcelProcessor/internal/transformerror"
)

// Delimiter is the field separator used for all CSV reading and writing.
// Configurable via SetDelimiter; defaults to comma.
var Delimiter rune = ','

// SetDelimiter changes the CSV field separator for the whole process.
func SetDelimiter(delim rune) {
	Delimiter = delim
}

// NewWriter returns a csv.Writer configured with the process delimiter.
func NewWriter(w io.Writer) *csv.Writer {
	cw := csv.NewWriter(w)
	cw.Comma = Delimiter
	return cw
}

// NewReader returns a csv.Reader configured with the process delimiter and
// tolerant of ragged rows.
func NewReader(r io.Reader) *csv.Reader {
	cr := csv.NewReader(r)
	cr.Comma = Delimiter
	cr.FieldsPerRecord = -1
	return cr
}

// ReadCSV reads a delimited-text export into a Table. The first record is
// the header row. Some terminals still emit single-byte Western encodings,
// so invalid UTF-8 input is decoded as Windows-1252 before parsing.
func ReadCSV(path string) (*Table, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- CLI tool requires user-provided file paths
	if err != nil {
		return nil, fmt.Errorf("error reading CSV file: %w", err)
	}

	if !utf8.Valid(data) {
		decoded, err := charmap.Windows1252.NewDecoder().Bytes(data)
		if err != nil {
			return nil, fmt.Errorf("error decoding legacy-encoded CSV file: %w", err)
		}
		data = decoded
	}

	return parseCSV(bytes.NewReader(data), path)
}

// ParseCSV reads delimited text from r into a Table.
func ParseCSV(r io.Reader) (*Table, error) {
	return parseCSV(r, "")
}

func parseCSV(r io.Reader, file string) (*Table, error) {
	reader := NewReader(r)

	records, err := reader.ReadAll()
	if err != nil {
		var csvErr *csv.ParseError
		if errors.As(err, &csvErr) {
			return nil, &transformerror.ParseError{
				File: file,
				Row:  csvErr.Line,
				Col:  csvErr.Column,
				Err:  csvErr.Err,
			}
		}
		return nil, fmt.Errorf("error parsing CSV data: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("CSV file is empty")
	}

	return &Table{Header: records[0], Rows: records[1:]}, nil
}

// WriteCSV writes a header and rows as delimited text.
func WriteCSV(path string, header []string, rows [][]string) error {
	file, err := os.Create(path) // #nosec G304 -- CLI tool requires user-provided file paths
	if err != nil {
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	writer := NewWriter(file)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("error writing CSV header: %w", err)
	}
	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("error writing CSV row: %w", err)
		}
	}
	writer.Flush()
	return writer.Error()
}
