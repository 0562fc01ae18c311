package salesdash

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/ukaji3/salesdash-go/pkg/salesdash/parser"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input file is not a valid xlsx format.
var ErrInvalidFormat = errors.New("invalid xlsx format")

// ErrSheetNotFound indicates the requested worksheet does not exist.
var ErrSheetNotFound = parser.ErrSheetNotFound

// MalformedHeaderError indicates the sheet lacks the two expected header rows.
type MalformedHeaderError = parser.MalformedHeaderError

// LoadError represents an error while reading a workbook.
type LoadError struct {
	Path  string
	Stage string // "open", "sheet", "read", "header"
	Err   error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %q (%s): %v", e.Path, e.Stage, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// NewLoadError creates a new LoadError.
func NewLoadError(path, stage string, err error) *LoadError {
	return &LoadError{
		Path:  path,
		Stage: stage,
		Err:   err,
	}
}
