package coe

import (
	"errors"
	"fmt"
)

// Common errors returned by the analyzer.
var (
	// ErrParse indicates a malformed coefficient file: the CoefData marker
	// is absent or a coefficient is not a valid number.
	ErrParse = errors.New("coefficient parse error")

	// ErrInvalidInput indicates a caller-supplied value violates a
	// precondition (empty taps, non-positive sample rate or resolution).
	ErrInvalidInput = errors.New("invalid input")
)

// ParseError reports a coefficient file that cannot be parsed. It
// matches ErrParse with errors.Is and exposes the underlying cause.
type ParseError struct {
	// Path of the file (or the name given to ParseCoefficientsReader).
	Path string

	// Line is the 1-based line of the offending CoefData line, 0 if the
	// marker was never found.
	Line int

	// Text is the raw content of that line.
	Text string

	Err error
}

func (e *ParseError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("%v: %s: %v", ErrParse, e.Path, e.Err)
	}

	text := e.Text
	if len(text) > errTextLimit {
		text = text[:errTextLimit] + "..."
	}
	return fmt.Sprintf("%v: %s:%d: %v (line %q)", ErrParse, e.Path, e.Line, e.Err, text)
}

// Unwrap returns ErrParse and the underlying cause.
func (e *ParseError) Unwrap() []error {
	return []error{ErrParse, e.Err}
}

// InvalidInputError reports a rejected argument. It matches
// ErrInvalidInput with errors.Is.
type InvalidInputError struct {
	Field  string
	Value  any
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("%v: %s %v %s", ErrInvalidInput, e.Field, e.Value, e.Reason)
}

func (e *InvalidInputError) Unwrap() error { return ErrInvalidInput }
