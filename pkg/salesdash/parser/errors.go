package parser

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// ErrSheetNotFound indicates the requested worksheet is not in the workbook.
var ErrSheetNotFound = errors.New("sheet not found")

// MalformedHeaderError indicates the grid lacks the two expected header rows.
// It is fatal: the wrong file or sheet was supplied.
type MalformedHeaderError struct {
	Rows   int
	Width  int
	Reason string
}

func (e *MalformedHeaderError) Error() string {
	return fmt.Sprintf("malformed header (%d rows, %d columns): %s", e.Rows, e.Width, e.Reason)
}

// NewMalformedHeaderError creates a new MalformedHeaderError.
func NewMalformedHeaderError(rows, width int, reason string) *MalformedHeaderError {
	return &MalformedHeaderError{
		Rows:   rows,
		Width:  width,
		Reason: reason,
	}
}
