package stockframe

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/etnz/stockframe/date"
)

const (
	// DefaultDateColumn is the header of the date column in price files.
	DefaultDateColumn = "Date"
	// DefaultValueColumn is the header of the column loaded by default.
	DefaultValueColumn = "Adj Close"
)

// DefaultNA lists the tokens read as a missing value.
var DefaultNA = []string{"", "nan", "NaN", "NA", "null"}

// CSVOptions configures how a CSV price file is read.
type CSVOptions struct {
	DateColumn  string   // DefaultDateColumn if empty.
	ValueColumn string   // DefaultValueColumn if empty.
	NA          []string // DefaultNA if nil.
	Comma       rune     // ',' if zero.
}

func (o CSVOptions) withDefaults() CSVOptions {
	if o.DateColumn == "" {
		o.DateColumn = DefaultDateColumn
	}
	if o.ValueColumn == "" {
		o.ValueColumn = DefaultValueColumn
	}
	if o.NA == nil {
		o.NA = DefaultNA
	}
	if o.Comma == 0 {
		o.Comma = ','
	}
	return o
}

// LoadCSV reads the series of a symbol from a CSV file.
//
// A file that cannot be opened is reported as a *ReadError, content that cannot be
// understood as a *ParseError.
func LoadCSV(symbol, path string, opts CSVOptions) (*Series, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}
	defer f.Close()
	return readCSV(symbol, path, f, opts)
}

// ReadCSV reads the series of a symbol from CSV content.
func ReadCSV(symbol string, r io.Reader, opts CSVOptions) (*Series, error) {
	return readCSV(symbol, symbol, r, opts)
}

func readCSV(symbol, path string, r io.Reader, opts CSVOptions) (*Series, error) {
	opts = opts.withDefaults()
	reader := csv.NewReader(r)
	reader.Comma = opts.Comma
	reader.TrimLeadingSpace = true
	// Price files often have trailing empty columns.
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, &ParseError{Path: path, Line: 1, Column: opts.DateColumn, Err: fmt.Errorf("empty file: %w", ErrMissingColumn)}
	}
	if err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}
	for i, h := range header {
		header[i] = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
	}
	dateIdx := slices.Index(header, opts.DateColumn)
	if dateIdx < 0 {
		return nil, &ParseError{Path: path, Line: 1, Column: opts.DateColumn, Err: ErrMissingColumn}
	}
	valueIdx := slices.Index(header, opts.ValueColumn)
	if valueIdx < 0 {
		return nil, &ParseError{Path: path, Line: 1, Column: opts.ValueColumn, Err: ErrMissingColumn}
	}

	s := &Series{ID: symbol, Name: opts.ValueColumn}
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				return nil, &ParseError{Path: path, Line: perr.Line, Err: err}
			}
			return nil, &ReadError{Path: path, Err: err}
		}
		line, _ := reader.FieldPos(0)
		if len(record) <= max(dateIdx, valueIdx) {
			return nil, &ParseError{Path: path, Line: line, Column: opts.ValueColumn, Err: fmt.Errorf("short record of %d fields", len(record))}
		}

		on, err := date.Parse(strings.TrimSpace(record[dateIdx]))
		if err != nil {
			return nil, &ParseError{Path: path, Line: line, Column: opts.DateColumn, Err: err}
		}
		v, err := parseValue(record[valueIdx], opts.NA)
		if err != nil {
			return nil, &ParseError{Path: path, Line: line, Column: opts.ValueColumn, Err: err}
		}
		s.history.Append(on, v)
	}
	return s, nil
}

// parseValue parses a float, mapping the na tokens to a missing Value.
func parseValue(str string, na []string) (Value, error) {
	str = strings.TrimSpace(str)
	if slices.Contains(na, str) {
		return Missing(), nil
	}
	f, err := strconv.ParseFloat(str, 64)
	if err != nil {
		return Missing(), fmt.Errorf("invalid number %q: %w", str, err)
	}
	return Some(f), nil
}

// Loader loads the series of a symbol.
type Loader interface {
	Load(symbol string) (*Series, error)
}

// FileLoader loads series from files laid out by a Resolver.
//
// Files with a "json" extension are read with LoadJSON, anything else with LoadCSV.
type FileLoader struct {
	Resolver Resolver
	CSV      CSVOptions
	JSON     JSONOptions
}

// Load implements Loader.
func (l FileLoader) Load(symbol string) (*Series, error) {
	path := l.Resolver.Path(symbol)
	var (
		s   *Series
		err error
	)
	if l.Resolver.ext() == "json" {
		s, err = LoadJSON(symbol, path, l.JSON)
	} else {
		s, err = LoadCSV(symbol, path, l.CSV)
	}
	if err != nil {
		return nil, err
	}
	log.Printf("loaded %d points for %s from %s", s.Len(), symbol, path)
	return s, nil
}
