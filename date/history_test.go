package date

import "testing"

func TestAppend(t *testing.T) {
	h := new(History[string])
	d1, v1 := New(2025, 07, 01), "25 Jul 1"
	d2, v2 := New(2024, 07, 01), "24 Jul 1"

	// Test is about appending two values in reverse order and checking that everything is
	// as expected at every step of the way.

	if h.Len() != 0 {
		t.Errorf("History.Len() = %v want 0", h.Len())
	}

	h.Append(d1, v1)
	if h.Len() != 1 {
		t.Errorf("Append(d1, v1).Len() = %v want 1", h.Len())
	}

	h.Append(d2, v2)
	if h.Len() != 2 {
		t.Errorf("Append(d2, v2).Len() = %v want 2", h.Len())
	}

	if h.days[1] != d1 {
		t.Errorf("history[1].day = %v want %v", h.days[1], d1)
	}
	if h.days[0] != d2 {
		t.Errorf("history[0].day = %v want %v", h.days[0], d2)
	}
	if h.values[1] != v1 {
		t.Errorf("history[1].value = %v want %v", h.values[1], v1)
	}
	if h.values[0] != v2 {
		t.Errorf("history[0].value = %v want %v", h.values[0], v2)
	}
}

func TestAppendOverwrites(t *testing.T) {
	h := new(History[float64])
	on := New(2010, 1, 4)
	h.Append(on, 1).Append(on, 2)

	if h.Len() != 1 {
		t.Fatalf("History.Len() = %v want 1", h.Len())
	}
	if got, ok := h.Get(on); !ok || got != 2 {
		t.Errorf("Get(%v) = %v, %v want 2, true", on, got, ok)
	}
	if _, ok := h.Get(on.Add(1)); ok {
		t.Errorf("Get(%v) found a value in a single point history", on.Add(1))
	}
}

func TestFirstLatest(t *testing.T) {
	h := new(History[float64])
	if d, v := h.First(); !d.IsZero() || v != 0 {
		t.Errorf("empty First() = %v, %v want zero values", d, v)
	}
	h.Append(New(2010, 1, 5), 5).Append(New(2010, 1, 4), 4).Append(New(2010, 1, 6), 6)

	if d, v := h.First(); d != New(2010, 1, 4) || v != 4 {
		t.Errorf("First() = %v, %v want 2010-01-04, 4", d, v)
	}
	if d, v := h.Latest(); d != New(2010, 1, 6) || v != 6 {
		t.Errorf("Latest() = %v, %v want 2010-01-06, 6", d, v)
	}
}
