package stockframe

import (
	"fmt"
	"iter"
	"slices"

	"github.com/etnz/stockframe/date"
)

// Table is a grid of Values indexed by dates (rows) and column names.
//
// Rows are unique and sorted chronologically, columns keep their insertion order.
// Every column has exactly one cell per row, missing cells are Missing, never zero.
// Tables are immutable, every operation returns a new Table.
type Table struct {
	dates   []date.Date
	columns []string
	cells   [][]Value // cells[column][row]
}

// NewTable returns a table with no column over the given dates.
// Dates are sorted and deduplicated.
func NewTable(days iter.Seq[date.Date]) *Table {
	dates := slices.SortedFunc(days, date.Date.Compare)
	return &Table{dates: slices.Compact(dates)}
}

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.dates) }

// Dates returns a copy of the row dates.
func (t *Table) Dates() []date.Date { return slices.Clone(t.dates) }

// Columns returns a copy of the column names.
func (t *Table) Columns() []string { return slices.Clone(t.columns) }

// Has reports whether the table has a column by that name.
func (t *Table) Has(column string) bool { return t.index(column) >= 0 }

func (t *Table) index(column string) int { return slices.Index(t.columns, column) }

// Domain returns the range between the first and last row, and false if the table has no row.
func (t *Table) Domain() (date.Range, bool) {
	if len(t.dates) == 0 {
		return date.Range{}, false
	}
	return date.NewRange(t.dates[0], t.dates[len(t.dates)-1]), true
}

// At returns the cell at row i in column. Unknown columns are Missing.
func (t *Table) At(i int, column string) Value {
	c := t.index(column)
	if c < 0 {
		return Missing()
	}
	return t.cells[c][i]
}

// Get returns the cell for a day and a column. Unknown days or columns are Missing.
func (t *Table) Get(on date.Date, column string) Value {
	i, found := slices.BinarySearchFunc(t.dates, on, date.Date.Compare)
	if !found {
		return Missing()
	}
	return t.At(i, column)
}

// Column returns a copy of a column's cells, or nil if there is no such column.
func (t *Table) Column(column string) []Value {
	c := t.index(column)
	if c < 0 {
		return nil
	}
	return slices.Clone(t.cells[c])
}

// Rows iterates over the rows, yielding the date and the cells in column order.
// The yielded slice is only valid until the next iteration.
func (t *Table) Rows() iter.Seq2[date.Date, []Value] {
	return func(yield func(date.Date, []Value) bool) {
		row := make([]Value, len(t.columns))
		for i, on := range t.dates {
			for c := range t.columns {
				row[c] = t.cells[c][i]
			}
			if !yield(on, row) {
				return
			}
		}
	}
}

// Join returns a new table with the series added as the last column, named after the series.
//
// The join is keyed on the table dates: the table domain is never widened, and days the
// series does not cover are Missing.
func (t *Table) Join(s *Series) (*Table, error) {
	if t.Has(s.Name) {
		return nil, fmt.Errorf("joining %q: %w", s.Name, ErrDuplicateColumn)
	}
	col := make([]Value, len(t.dates))
	for i, on := range t.dates {
		col[i] = s.Get(on)
	}
	return &Table{
		dates:   t.dates,
		columns: append(slices.Clone(t.columns), s.Name),
		cells:   append(slices.Clone(t.cells), col),
	}, nil
}

// DropMissing returns a new table without the rows where column is missing.
// An unknown column drops every row.
func (t *Table) DropMissing(column string) *Table {
	c := t.index(column)
	return t.filterRows(func(i int) bool { return c >= 0 && !t.cells[c][i].IsMissing() })
}

// filterRows returns a new table with the rows for which keep(row) is true.
func (t *Table) filterRows(keep func(i int) bool) *Table {
	out := &Table{
		columns: slices.Clone(t.columns),
		cells:   make([][]Value, len(t.columns)),
	}
	for i, on := range t.dates {
		if !keep(i) {
			continue
		}
		out.dates = append(out.dates, on)
		for c := range t.columns {
			out.cells[c] = append(out.cells[c], t.cells[c][i])
		}
	}
	return out
}

// mapCells returns a new table with the same shape, and each column transformed by f.
func (t *Table) mapCells(f func(column []Value) []Value) *Table {
	out := &Table{
		dates:   t.dates,
		columns: slices.Clone(t.columns),
		cells:   make([][]Value, len(t.columns)),
	}
	for c, col := range t.cells {
		out.cells[c] = f(col)
	}
	return out
}
