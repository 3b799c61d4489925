package stockframe

import (
	"errors"
	"fmt"

	"github.com/etnz/stockframe/date"
)

// ErrEmptyReference is returned when the reference symbol has no value in the requested
// range, leaving the aligned table without any row.
var ErrEmptyReference = errors.New("reference series has no value in range")

// ErrMissingColumn is wrapped in a ParseError when an expected header is absent.
var ErrMissingColumn = errors.New("missing column")

// ErrDuplicateColumn is returned when joining a series whose name is already a table column.
var ErrDuplicateColumn = errors.New("duplicate column")

// ReadError reports that a series file could not be opened or read.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string { return fmt.Sprintf("cannot read %q: %v", e.Path, e.Err) }
func (e *ReadError) Unwrap() error { return e.Err }

// ParseError reports a series file whose content does not have the expected shape.
// Line is 1-based, 0 when the error is not tied to a line.
type ParseError struct {
	Path   string
	Line   int
	Column string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d: column %q: %v", e.Path, e.Line, e.Column, e.Err)
	}
	return fmt.Sprintf("%s: column %q: %v", e.Path, e.Column, e.Err)
}
func (e *ParseError) Unwrap() error { return e.Err }

// RangeError reports a selection whose boundaries fall outside of the table dates.
type RangeError struct {
	Requested date.Range
	Domain    date.Range
	Empty     bool // the table had no row at all
}

func (e *RangeError) Error() string {
	if e.Empty {
		return fmt.Sprintf("range %v out of bounds: table is empty", e.Requested)
	}
	return fmt.Sprintf("range %v out of bounds %v", e.Requested, e.Domain)
}

// ColumnError reports a selection of a column the table does not have.
type ColumnError struct {
	Column string
}

func (e *ColumnError) Error() string { return fmt.Sprintf("unknown column %q", e.Column) }
