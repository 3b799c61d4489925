package stockframe

import (
	"math"
	"strconv"
)

// Value is a single, possibly missing, numeric cell.
//
// The zero Value is missing.
type Value struct {
	v  float64
	ok bool
}

// Some returns a present Value.
func Some(v float64) Value { return Value{v: v, ok: true} }

// Missing returns an absent Value.
func Missing() Value { return Value{} }

// Get returns the value and whether it is present.
func (v Value) Get() (float64, bool) { return v.v, v.ok }

// IsMissing reports whether the value is absent.
func (v Value) IsMissing() bool { return !v.ok }

// Float returns the value, or NaN if it is missing.
func (v Value) Float() float64 {
	if !v.ok {
		return math.NaN()
	}
	return v.v
}

// String formats present values with the shortest representation, and missing ones as "NaN".
func (v Value) String() string {
	if !v.ok {
		return "NaN"
	}
	return strconv.FormatFloat(v.v, 'f', -1, 64)
}
