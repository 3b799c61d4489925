package stockframe

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/etnz/stockframe/date"
)

var (
	year2010 = date.NewRange(date.New(2010, 1, 1), date.New(2010, 12, 31))

	newYear   = date.New(2010, 1, 1)  // market closed
	spyNaN    = date.New(2010, 2, 15) // SPY quoted "nan"
	ibmHole   = date.New(2010, 3, 15) // IBM has no row
	gldSunday = date.New(2010, 3, 7)  // GLD quoted on a sunday
)

const header = "Date,Open,High,Low,Close,Adj Close,Volume"

func weekday(on date.Date) bool {
	return on.Weekday() != time.Saturday && on.Weekday() != time.Sunday
}

// spyDays returns the days SPY has a value for in the test market.
func spyDays() []date.Date {
	var days []date.Date
	for on := range year2010.Days() {
		if weekday(on) && on != newYear && on != spyNaN {
			days = append(days, on)
		}
	}
	return days
}

// row formats a price file row whose close is c and adjusted close is adj.
func row(on date.Date, c, adj string) string {
	return fmt.Sprintf("%s,%s,%s,%s,%s,%s,1000", on, c, c, c, c, adj)
}

// writeCSV writes a price file for symbol in dir.
func writeCSV(t *testing.T, dir, symbol string, rows []string) {
	t.Helper()
	content := header + "\n" + strings.Join(rows, "\n") + "\n"
	if err := os.WriteFile(filepath.Join(dir, symbol+".csv"), []byte(content), 0644); err != nil {
		t.Fatalf("cannot write %s fixture: %v", symbol, err)
	}
}

// newMarket writes SPY, IBM and GLD price files for 2010 into a temporary directory and
// returns it.
//
// SPY rows are written newest first, like most downloaded files.
func newMarket(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	var spy, ibm, gld []string
	i := 0
	for on := range year2010.Days() {
		i++
		if on == gldSunday {
			gld = append(gld, row(on, "110", "110"))
		}
		if !weekday(on) || on == newYear {
			continue
		}
		if on == spyNaN {
			spy = append(spy, row(on, "nan", "nan"))
		} else {
			spy = append(spy, row(on, fmt.Sprint(100+i), fmt.Sprint(90+i)))
		}
		if on != ibmHole {
			ibm = append(ibm, row(on, fmt.Sprint(120+i), fmt.Sprint(110+i)))
		}
		gld = append(gld, row(on, fmt.Sprint(100-i/10), fmt.Sprint(100-i/10)))
	}
	slices.Reverse(spy)
	writeCSV(t, dir, "SPY", spy)
	writeCSV(t, dir, "IBM", ibm)
	writeCSV(t, dir, "GLD", gld)
	return dir
}

// newAligner returns an aligner over a fresh test market.
func newAligner(t *testing.T) Aligner {
	return Aligner{Loader: FileLoader{Resolver: Resolver{Dir: newMarket(t)}}}
}
