package stockframe

import (
	"fmt"
	"slices"
	"strings"

	"github.com/etnz/stockframe/date"
)

// Bounds decides how Select treats a range reaching outside of the table dates.
type Bounds int

const (
	// Clamp silently restricts the range to the table dates.
	Clamp Bounds = iota
	// Strict rejects a range whose boundaries are not within the table dates.
	Strict
)

func (b Bounds) String() string {
	switch b {
	case Clamp:
		return "clamp"
	case Strict:
		return "strict"
	default:
		panic(fmt.Sprintf("unknown bounds %d", b))
	}
}

// ParseBounds parses "clamp" or "strict".
func ParseBounds(s string) (Bounds, error) {
	switch strings.ToLower(s) {
	case "clamp", "":
		return Clamp, nil
	case "strict":
		return Strict, nil
	default:
		return Clamp, fmt.Errorf("unknown bounds %q want clamp or strict", s)
	}
}

// Select returns the sub-table of the rows within r (boundaries included) and the given
// columns, in the requested order. No column selects them all.
//
// Unknown columns are reported as a *ColumnError. With Strict bounds, a range starting or
// ending outside of the table domain is reported as a *RangeError.
func Select(t *Table, r date.Range, columns []string, bounds Bounds) (*Table, error) {
	if len(columns) == 0 {
		columns = t.columns
	}
	var names []string
	var idx []int
	for _, c := range columns {
		i := t.index(c)
		if i < 0 {
			return nil, &ColumnError{Column: c}
		}
		if !slices.Contains(names, c) {
			names, idx = append(names, c), append(idx, i)
		}
	}
	if bounds == Strict {
		domain, ok := t.Domain()
		if !ok {
			return nil, &RangeError{Requested: r, Empty: true}
		}
		if !domain.Contains(r.From) || !domain.Contains(r.To) {
			return nil, &RangeError{Requested: r, Domain: domain}
		}
	}

	rows := t.filterRows(func(i int) bool { return r.Contains(t.dates[i]) })
	out := &Table{
		dates:   rows.dates,
		columns: names,
		cells:   make([][]Value, len(names)),
	}
	for i, c := range idx {
		out.cells[i] = rows.cells[c]
		if out.cells[i] == nil {
			out.cells[i] = []Value{}
		}
	}
	return out, nil
}
