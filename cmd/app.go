// Package cmd implements the sf CLI application to load, align and display stock prices.
package cmd

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/stockframe"
	"github.com/etnz/stockframe/date"
	"github.com/etnz/stockframe/renderer"
	"github.com/google/subcommands"
)

// Commands lists the subcommands of sf.
// A main package will register them, and Execute() the user-selected one.
var Commands = []subcommands.Command{
	&demoCmd{},
	&alignCmd{},
	&selectCmd{},
	&plotCmd{},
	&fetchCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var dataDir = flag.String("data-dir", stockframe.DefaultDataDir, "Path to the folder containing one price file per symbol")
var format = flag.String("format", "csv", "Price file format: csv or json")
var reference = flag.String("reference", stockframe.DefaultReference, "Reference symbol whose trading days define the rows")
var column = flag.String("column", stockframe.DefaultValueColumn, "Column of the price files holding the prices")
var bounds = flag.String("bounds", "clamp", "How to select out of range dates: clamp or strict")
var currency = flag.String("currency", "USD", "Currency used to display prices, empty for plain numbers")

// Verbose enables diagnostic logs.
var Verbose = flag.Bool("v", false, "Verbose logging")

// newAligner returns the aligner configured by the global flags.
func newAligner() *stockframe.Aligner {
	return &stockframe.Aligner{
		Loader: &stockframe.FileLoader{
			Resolver: stockframe.Resolver{Dir: *dataDir, Ext: *format},
			CSV:      stockframe.CSVOptions{ValueColumn: *column},
		},
		Reference: *reference,
	}
}

// parseGlobals validates the global flags and returns the selection bounds.
func parseGlobals() (stockframe.Bounds, error) {
	if *currency != "" {
		if err := renderer.ValidateCurrency(*currency); err != nil {
			return stockframe.Clamp, err
		}
	}
	return stockframe.ParseBounds(*bounds)
}

// splitSymbols parses a comma separated list of symbols.
func splitSymbols(list string) []string {
	var symbols []string
	for _, s := range strings.Split(list, ",") {
		if s = strings.TrimSpace(s); s != "" {
			symbols = append(symbols, s)
		}
	}
	return symbols
}

// parseRange parses the -from and -to flags, to defaults to today.
func parseRange(from, to string) (date.Range, error) {
	if from == "" {
		return date.Range{}, fmt.Errorf("-from is required")
	}
	if to == "" {
		to = date.Today().String()
	}
	return date.ParseRange(from, to)
}

// tableFlags are the flags shared by commands working on an aligned table.
type tableFlags struct {
	symbols   string
	from, to  string
	normalize bool
}

func (p *tableFlags) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.symbols, "s", "", "Comma separated list of symbols, the reference is added first")
	f.StringVar(&p.from, "from", "", "First day of the range (YYYY-MM-DD)")
	f.StringVar(&p.to, "to", "", "Last day of the range (defaults to today)")
	f.BoolVar(&p.normalize, "n", false, "Divide each column by its first value")
}

// load builds the aligned, and optionally normalized, table.
func (p *tableFlags) load() (*stockframe.Table, error) {
	if _, err := parseGlobals(); err != nil {
		return nil, err
	}
	r, err := parseRange(p.from, p.to)
	if err != nil {
		return nil, err
	}
	t, err := newAligner().Align(splitSymbols(p.symbols), r)
	if err != nil {
		return nil, err
	}
	if p.normalize {
		t = stockframe.Normalize(t)
	}
	return t, nil
}

// renderOptions returns the markdown options for a table, normalized tables are shown as ratios.
func renderOptions(title string, normalized bool) renderer.Options {
	if normalized {
		return renderer.Options{Title: title, Decimals: 4}
	}
	return renderer.Options{Title: title, Currency: *currency}
}

func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: cannot render markdown: %v\n", err)
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
