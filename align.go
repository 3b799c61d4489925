package stockframe

import (
	"fmt"
	"slices"

	"github.com/etnz/stockframe/date"
)

// DefaultReference is the benchmark symbol whose trading days define aligned tables.
const DefaultReference = "SPY"

// Aligner joins series of several symbols into a single Table.
type Aligner struct {
	Loader    Loader
	Reference string // DefaultReference if empty.
}

func (a Aligner) reference() string {
	if a.Reference == "" {
		return DefaultReference
	}
	return a.Reference
}

// Symbols returns the symbols Align loads for a request, in loading order: the reference
// first unless requested explicitly, then every requested symbol once.
func (a Aligner) Symbols(symbols []string) []string {
	ref := a.reference()
	out := make([]string, 0, len(symbols)+1)
	if !slices.Contains(symbols, ref) {
		out = append(out, ref)
	}
	for _, s := range symbols {
		if !slices.Contains(out, s) {
			out = append(out, s)
		}
	}
	return out
}

// Align loads every symbol and joins them on the days of r where the reference symbol has
// a value. Each column is named after its symbol.
//
// Any load failure aborts the alignment and no table is returned. If the reference has no
// value in r, the empty table is returned along with an error wrapping ErrEmptyReference.
func (a Aligner) Align(symbols []string, r date.Range) (*Table, error) {
	ref := a.reference()
	t := NewTable(r.Days())
	for _, symbol := range a.Symbols(symbols) {
		s, err := a.Loader.Load(symbol)
		if err != nil {
			return nil, fmt.Errorf("cannot load %q: %w", symbol, err)
		}
		t, err = t.Join(s.Rename(symbol))
		if err != nil {
			return nil, err
		}
		if symbol == ref {
			// From now on, the reference trading days are the table domain.
			t = t.DropMissing(ref)
		}
	}
	if t.Len() == 0 {
		return t, fmt.Errorf("%w: %s over %v", ErrEmptyReference, ref, r)
	}
	return t, nil
}

// GetData aligns symbols read as CSV files from dir, using DefaultReference.
func GetData(dir string, symbols []string, r date.Range) (*Table, error) {
	a := Aligner{Loader: FileLoader{Resolver: Resolver{Dir: dir}}}
	return a.Align(symbols, r)
}
