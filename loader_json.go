package stockframe

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/stockframe/date"
)

// JSONOptions configures how a JSON price document is read.
//
// ItemsPath selects the list of quotes, DatePath and ValuePath are evaluated on each quote.
type JSONOptions struct {
	ItemsPath string   // "$[*]" if empty.
	DatePath  string   // "$.date" if empty.
	ValuePath string   // "$.adjusted_close" if empty.
	NA        []string // DefaultNA if nil, applies to values encoded as strings.
}

func (o JSONOptions) withDefaults() JSONOptions {
	if o.ItemsPath == "" {
		o.ItemsPath = "$[*]"
	}
	if o.DatePath == "" {
		o.DatePath = "$.date"
	}
	if o.ValuePath == "" {
		o.ValuePath = "$.adjusted_close"
	}
	if o.NA == nil {
		o.NA = DefaultNA
	}
	return o
}

// LoadJSON reads the series of a symbol from a JSON file, typically a provider's
// end-of-day payload saved to disk.
func LoadJSON(symbol, path string, opts JSONOptions) (*Series, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}
	defer f.Close()
	return readJSON(symbol, path, f, opts)
}

// ReadJSON reads the series of a symbol from JSON content.
func ReadJSON(symbol string, r io.Reader, opts JSONOptions) (*Series, error) {
	return readJSON(symbol, symbol, r, opts)
}

func readJSON(symbol, path string, r io.Reader, opts JSONOptions) (*Series, error) {
	opts = opts.withDefaults()
	var doc any
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	jitems, err := jsonpath.Get(opts.ItemsPath, doc)
	if err != nil {
		return nil, &ParseError{Path: path, Column: opts.ItemsPath, Err: err}
	}
	items, ok := jitems.([]any)
	if !ok {
		return nil, &ParseError{Path: path, Column: opts.ItemsPath, Err: fmt.Errorf("%q does not select a list", opts.ItemsPath)}
	}

	s := &Series{ID: symbol, Name: opts.ValuePath}
	found := false // whether the value path matched any item
	for i, item := range items {
		jdate, err := jsonpath.Get(opts.DatePath, item)
		if err != nil {
			return nil, &ParseError{Path: path, Column: opts.DatePath, Err: fmt.Errorf("item %d: %w", i, err)}
		}
		str, ok := jdate.(string)
		if !ok {
			return nil, &ParseError{Path: path, Column: opts.DatePath, Err: fmt.Errorf("item %d: date is not a string: %v", i, jdate)}
		}
		on, err := date.Parse(str)
		if err != nil {
			return nil, &ParseError{Path: path, Column: opts.DatePath, Err: fmt.Errorf("item %d: %w", i, err)}
		}

		v := Missing()
		// quotes without the value are missing for that day
		if jval, err := jsonpath.Get(opts.ValuePath, item); err == nil {
			found = true
			if v, err = jsonValue(jval, opts.NA); err != nil {
				return nil, &ParseError{Path: path, Column: opts.ValuePath, Err: fmt.Errorf("item %d: %w", i, err)}
			}
		}
		s.history.Append(on, v)
	}
	if len(items) > 0 && !found {
		return nil, &ParseError{Path: path, Column: opts.ValuePath, Err: ErrMissingColumn}
	}
	return s, nil
}

// jsonValue converts a decoded json value to a Value.
func jsonValue(jval any, na []string) (Value, error) {
	switch v := jval.(type) {
	case nil:
		return Missing(), nil
	case float64:
		return Some(v), nil
	case string:
		// some providers quote their numbers
		return parseValue(v, na)
	default:
		return Missing(), fmt.Errorf("not a number: %v", jval)
	}
}
