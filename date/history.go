package date

import (
	"iter"
	"slices"
)

// History is a sequence of values keyed by unique days, kept in chronological order
// whatever the order they were appended in.
type History[T any] struct {
	days   []Date
	values []T // values[i] is the value on days[i]
}

// Len returns the number of days in the history.
func (h *History[T]) Len() int { return len(h.days) }

func (h *History[T]) search(on Date) (int, bool) {
	return slices.BinarySearchFunc(h.days, on, Date.Compare)
}

// Append records v on a day. A value already recorded on that day is replaced.
func (h *History[T]) Append(on Date, v T) *History[T] {
	i, found := h.search(on)
	if found {
		h.values[i] = v
		return h
	}
	h.days = slices.Insert(h.days, i, on)
	h.values = slices.Insert(h.values, i, v)
	return h
}

// Get returns the value recorded on a day, and false if there is none.
func (h *History[T]) Get(on Date) (v T, ok bool) {
	if i, found := h.search(on); found {
		return h.values[i], true
	}
	return v, false
}

// First returns the earliest day and its value, zero values if the history is empty.
func (h *History[T]) First() (on Date, v T) {
	if h.Len() > 0 {
		on, v = h.days[0], h.values[0]
	}
	return on, v
}

// Latest returns the latest day and its value, zero values if the history is empty.
func (h *History[T]) Latest() (on Date, v T) {
	if n := h.Len(); n > 0 {
		on, v = h.days[n-1], h.values[n-1]
	}
	return on, v
}

// Days returns a copy of the days, in chronological order.
func (h *History[T]) Days() []Date { return slices.Clone(h.days) }

// Values iterates over the day/value pairs, in chronological order.
func (h *History[T]) Values() iter.Seq2[Date, T] {
	return func(yield func(Date, T) bool) {
		for i, on := range h.days {
			if !yield(on, h.values[i]) {
				return
			}
		}
	}
}
