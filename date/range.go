package date

import (
	"fmt"
	"iter"
)

// Range represents a range of dates, boundaries included.
type Range struct{ From, To Date }

// NewRange returns the range [from, to].
func NewRange(from, to Date) Range { return Range{From: from, To: to} }

// ParseRange parses both boundaries of a range.
func ParseRange(from, to string) (Range, error) {
	f, err := Parse(from)
	if err != nil {
		return Range{}, fmt.Errorf("invalid range start: %w", err)
	}
	t, err := Parse(to)
	if err != nil {
		return Range{}, fmt.Errorf("invalid range end: %w", err)
	}
	return Range{From: f, To: t}, nil
}

// Contains return true date is included in the range (boundaries included)
func (r Range) Contains(date Date) bool { return !date.Before(r.From) && !date.After(r.To) }

// Empty reports whether the range contains no day at all.
func (r Range) Empty() bool { return r.To.Before(r.From) }

// Days iterates over every calendar day in the range, in chronological order.
func (r Range) Days() iter.Seq[Date] { return Between(r.From, r.To) }

// Intersect returns the largest range contained in both r and x.
// The result may be Empty.
func (r Range) Intersect(x Range) Range {
	out := r
	if x.From.After(out.From) {
		out.From = x.From
	}
	if x.To.Before(out.To) {
		out.To = x.To
	}
	return out
}

// String formats the range as "from..to".
func (r Range) String() string { return fmt.Sprintf("%s..%s", r.From, r.To) }
