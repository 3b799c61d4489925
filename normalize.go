package stockframe

import "math"

// Normalize returns a new table where every cell is divided by its column's value on the
// first row.
//
// Missing cells stay missing. A column whose first value is missing becomes NaN, and a
// zero first value yields the usual IEEE artifacts (±Inf, NaN); neither is an error.
func Normalize(t *Table) *Table {
	return t.mapCells(func(col []Value) []Value {
		out := make([]Value, len(col))
		if len(col) == 0 {
			return out
		}
		base := col[0].Float() // NaN when missing
		for i, v := range col {
			if x, ok := v.Get(); ok {
				out[i] = Some(x / base)
			}
		}
		return out
	})
}

// IsNormalized reports whether every non-NaN value on the first row of t is 1, which is
// the case of any table returned by Normalize.
func IsNormalized(t *Table) bool {
	if t.Len() == 0 {
		return true
	}
	for _, c := range t.columns {
		if x := t.At(0, c).Float(); !math.IsNaN(x) && x != 1 {
			return false
		}
	}
	return true
}
