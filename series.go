package stockframe

import (
	"fmt"
	"iter"

	"github.com/etnz/stockframe/date"
)

// Series is a single symbol's dated values.
//
// ID is the symbol the series was loaded for, Name is the column it will occupy once
// joined into a Table. A freshly loaded series is named after its source column
// (e.g. "Adj Close"); Rename gives it a collision free name.
type Series struct {
	ID   string
	Name string

	history date.History[Value]
}

// NewSeries returns a series from parallel slices of dates and values.
// Dates need not be sorted; a repeated date keeps the last value.
func NewSeries(id, name string, days []date.Date, values []Value) (*Series, error) {
	if len(days) != len(values) {
		return nil, fmt.Errorf("series %q: %d dates for %d values", id, len(days), len(values))
	}
	s := &Series{ID: id, Name: name}
	for i, on := range days {
		s.history.Append(on, values[i])
	}
	return s, nil
}

// Len returns the number of dates in the series.
func (s *Series) Len() int { return s.history.Len() }

// Get returns the value on a given day. Days outside the series are Missing.
func (s *Series) Get(on date.Date) Value {
	v, _ := s.history.Get(on)
	return v
}

// Dates returns the series dates in chronological order.
func (s *Series) Dates() []date.Date { return s.history.Days() }

// Values iterates over the series in chronological order.
func (s *Series) Values() iter.Seq2[date.Date, Value] { return s.history.Values() }

// Rename returns a series sharing the same values under a new column name.
func (s *Series) Rename(name string) *Series {
	return &Series{ID: s.ID, Name: name, history: s.history}
}
