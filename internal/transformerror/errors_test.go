package transformerror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLayoutError(t *testing.T) {
	err := &LayoutError{File: "export.csv", Reason: "no data row found"}
	assert.Contains(t, err.Error(), "export.csv")
	assert.Contains(t, err.Error(), "no data row found")
}

func TestUnknownTerminalError(t *testing.T) {
	err := &UnknownTerminalError{File: "mystery.csv"}
	assert.Contains(t, err.Error(), "mystery.csv")
}

func TestParseError_Unwrap(t *testing.T) {
	cause := errors.New("bad number")
	err := &ParseError{File: "export.csv", Row: 3, Col: 5, Value: "abc", Err: cause}

	assert.Contains(t, err.Error(), "export.csv")
	assert.Contains(t, err.Error(), "abc")
	assert.ErrorIs(t, err, cause)

	wrapped := fmt.Errorf("processing: %w", err)
	var parseErr *ParseError
	assert.True(t, errors.As(wrapped, &parseErr))
	assert.Equal(t, 3, parseErr.Row)
}
