// Package plot draws tables as line charts, one line per column.
package plot

import (
	"errors"
	"fmt"
	"io"
	"math"
	"path/filepath"
	"strings"

	"github.com/etnz/stockframe"
	"github.com/wcharczuk/go-chart/v2"
)

// ErrNothingToPlot is returned when no column has a value to draw.
var ErrNothingToPlot = errors.New("nothing to plot")

// Format is the image format of a chart.
type Format int

const (
	PNG Format = iota
	SVG
)

// FormatOf returns the format matching a file name extension, PNG by default.
func FormatOf(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".svg") {
		return SVG
	}
	return PNG
}

// Options holds the chart decorations.
type Options struct {
	Title  string // "Stock prices" if empty.
	YLabel string // "Price" if empty.
	Width  int    // 1024 if zero.
	Height int    // 512 if zero.
	Format Format
}

func (o Options) withDefaults() Options {
	if o.Title == "" {
		o.Title = "Stock prices"
	}
	if o.YLabel == "" {
		o.YLabel = "Price"
	}
	if o.Width == 0 {
		o.Width = 1024
	}
	if o.Height == 0 {
		o.Height = 512
	}
	return o
}

// Render draws the table to w.
//
// Missing and non finite cells are skipped, so a column with holes is drawn across them.
// The table is not modified.
func Render(w io.Writer, t *stockframe.Table, opts Options) error {
	opts = opts.withDefaults()

	var series []chart.Series
	for _, column := range t.Columns() {
		ts := timeSeries(t, column)
		if len(ts.XValues) == 0 {
			continue
		}
		series = append(series, ts)
	}
	if len(series) == 0 {
		return ErrNothingToPlot
	}

	graph := chart.Chart{
		Title:      opts.Title,
		Width:      opts.Width,
		Height:     opts.Height,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}},
		XAxis: chart.XAxis{
			Name:           "Date",
			ValueFormatter: chart.TimeDateValueFormatter,
		},
		YAxis:  chart.YAxis{Name: opts.YLabel},
		Series: series,
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	var provider chart.RendererProvider = chart.PNG
	if opts.Format == SVG {
		provider = chart.SVG
	}
	if err := graph.Render(provider, w); err != nil {
		return fmt.Errorf("cannot render chart: %w", err)
	}
	return nil
}

// timeSeries extracts the drawable points of a column.
func timeSeries(t *stockframe.Table, column string) chart.TimeSeries {
	ts := chart.TimeSeries{Name: column}
	values := t.Column(column)
	for i, on := range t.Dates() {
		x, ok := values[i].Get()
		if !ok || math.IsNaN(x) || math.IsInf(x, 0) {
			continue
		}
		ts.XValues = append(ts.XValues, on.Time())
		ts.YValues = append(ts.YValues, x)
	}
	return ts
}
