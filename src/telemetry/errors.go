package telemetry

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyTable    = errors.New("empty input: no data rows")
	ErrMissingColumn = errors.New("missing required column")
	ErrPowerModel    = errors.New("invalid nvp model")
)

// MissingColumnError names a column that a later step needs but the table lacks.
type MissingColumnError struct {
	Column string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("%v: %q", ErrMissingColumn, e.Column)
}

func (e *MissingColumnError) Unwrap() error { return ErrMissingColumn }

// ParseError reports a cell that could not be coerced to a number.
// Row is 1-based and counts data rows only (the header is not row 1).
type ParseError struct {
	Column string
	Row    int
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("column %q row %d: cannot parse %q as number", e.Column, e.Row, e.Value)
}

func (e *ParseError) Unwrap() error { return e.Err }
