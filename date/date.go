// Package date provides a day-granularity calendar date, closed date ranges and
// chronological histories of values keyed by date.
package date

import (
	"cmp"
	"fmt"
	"iter"
	"time"
)

// Layout is the ISO-8601 layout dates are written with.
const Layout = "2006-01-02"

// lenient read layout, accepts "2010-3-1" as well as "2010-03-01".
const readLayout = "2006-1-2"

// Date is a calendar day. The zero Date is not a valid day.
//
// Dates are comparable with ==, and ordered by Compare.
type Date struct {
	y int
	m time.Month
	d int
}

// New returns the Date for year, month and day, normalized like time.Date does:
// New(2010, 2, 29) is 2010-03-01.
func New(year int, month time.Month, day int) Date {
	y, m, d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Date()
	return Date{y, m, d}
}

// Today returns the current local date.
func Today() Date { return New(time.Now().Date()) }

// Time returns midnight UTC of that day.
func (d Date) Time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// Weekday returns the day of the week.
func (d Date) Weekday() time.Weekday { return d.Time().Weekday() }

// Add returns the date i days later, or earlier if i is negative.
func (d Date) Add(i int) Date { return New(d.y, d.m, d.d+i) }

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool { return d == Date{} }

// Compare returns -1 if d is before x, +1 if after and 0 if they are the same day.
func (d Date) Compare(x Date) int {
	if c := cmp.Compare(d.y, x.y); c != 0 {
		return c
	}
	if c := cmp.Compare(d.m, x.m); c != 0 {
		return c
	}
	return cmp.Compare(d.d, x.d)
}

// Before reports whether d is before x.
func (d Date) Before(x Date) bool { return d.Compare(x) < 0 }

// After reports whether d is after x.
func (d Date) After(x Date) bool { return d.Compare(x) > 0 }

func (d Date) String() string { return d.Time().Format(Layout) }

// Parse reads a date in the "2006-01-02" layout. Single digit months and days are
// accepted.
func Parse(str string) (Date, error) {
	on, err := time.Parse(readLayout, str)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q want format %q: %w", str, Layout, err)
	}
	return New(on.Date()), nil
}

// MustParse is like Parse but panics on error.
func MustParse(str string) Date {
	d, err := Parse(str)
	if err != nil {
		panic(err.Error())
	}
	return d
}

// Between iterates over every calendar day from 'from' to 'to', both included.
// It yields nothing if to is before from.
func Between(from, to Date) iter.Seq[Date] {
	return func(yield func(Date) bool) {
		for on := from; !on.After(to); on = on.Add(1) {
			if !yield(on) {
				return
			}
		}
	}
}
