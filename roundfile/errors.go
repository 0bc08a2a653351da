package roundfile

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformed marks a structure file that could not be parsed. Imports
	// are all-or-nothing: no rounds are returned alongside it.
	ErrMalformed = errors.New("malformed round file")
	// ErrUnsupported is returned for file extensions with no parser or exporter.
	ErrUnsupported = errors.New("unsupported file type")
)

// LineError locates a parse failure in the source file.
type LineError struct {
	Line int
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}
