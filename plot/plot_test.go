package plot

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/etnz/stockframe"
	"github.com/etnz/stockframe/date"
)

func newTable(t *testing.T, ibm ...stockframe.Value) *stockframe.Table {
	t.Helper()
	r := date.NewRange(date.New(2010, 3, 1), date.New(2010, 3, 5))
	var days []date.Date
	for on := range r.Days() {
		days = append(days, on)
	}
	table := stockframe.NewTable(r.Days())
	s, err := stockframe.NewSeries("IBM", "IBM", days, ibm)
	if err != nil {
		t.Fatal(err)
	}
	if table, err = table.Join(s); err != nil {
		t.Fatal(err)
	}
	return table
}

func TestRender(t *testing.T) {
	some := stockframe.Some
	table := newTable(t, some(127.2), some(128.1), stockframe.Missing(), some(126.5), some(129))

	var png bytes.Buffer
	if err := Render(&png, table, Options{}); err != nil {
		t.Fatalf("Render(PNG) unexpected error = %v", err)
	}
	if !bytes.HasPrefix(png.Bytes(), []byte("\x89PNG")) {
		t.Errorf("Render(PNG) did not produce a PNG image")
	}

	var svg bytes.Buffer
	if err := Render(&svg, table, Options{Format: SVG, Title: "IBM"}); err != nil {
		t.Fatalf("Render(SVG) unexpected error = %v", err)
	}
	if !strings.Contains(svg.String(), "<svg") {
		t.Errorf("Render(SVG) did not produce an SVG image")
	}
}

func TestRenderNothing(t *testing.T) {
	m := stockframe.Missing()
	table := newTable(t, m, m, m, m, m)

	var buf bytes.Buffer
	if err := Render(&buf, table, Options{}); !errors.Is(err, ErrNothingToPlot) {
		t.Errorf("Render(all missing) error = %v want ErrNothingToPlot", err)
	}
}

func TestFormatOf(t *testing.T) {
	testCases := []struct {
		path string
		want Format
	}{
		{"stock_prices.png", PNG},
		{"out/prices.SVG", SVG},
		{"prices", PNG},
	}
	for _, tc := range testCases {
		if got := FormatOf(tc.path); got != tc.want {
			t.Errorf("FormatOf(%q) = %v want %v", tc.path, got, tc.want)
		}
	}
}
