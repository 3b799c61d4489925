package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/stockframe"
	"github.com/etnz/stockframe/plot"
	"github.com/google/subcommands"
)

type plotCmd struct {
	tableFlags
	columns string
	output  string
	title   string
	ylabel  string
}

func (*plotCmd) Name() string     { return "plot" }
func (*plotCmd) Synopsis() string { return "draw the aligned prices as a line chart" }
func (*plotCmd) Usage() string {
	return `sf plot -s <symbols> -from <date> [-to <date>] [-n] [-cols <columns>] [-o <file>]

  Aligns the symbols and draws one line per column. The image format is
  chosen from the output file extension: .svg or .png.

Usage Examples:
$ sf plot -s IBM,GLD -from 2010-01-01 -to 2010-12-31 -n -o prices.svg

`
}

func (p *plotCmd) SetFlags(f *flag.FlagSet) {
	p.tableFlags.SetFlags(f)
	f.StringVar(&p.columns, "cols", "", "Comma separated list of columns to draw, all by default")
	f.StringVar(&p.output, "o", "stock_prices.png", "Output image file (.png or .svg)")
	f.StringVar(&p.title, "title", "", "Chart title")
	f.StringVar(&p.ylabel, "ylabel", "", "Y axis label")
}

func (p *plotCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	t, err := p.load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if p.columns != "" {
		domain, _ := t.Domain()
		if t, err = stockframe.Select(t, domain, splitSymbols(p.columns), stockframe.Clamp); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
	}

	opts := plot.Options{Title: p.title, YLabel: p.ylabel}
	if p.normalize && opts.YLabel == "" {
		opts.YLabel = "Relative price"
	}
	if err := savePlot(p.output, t, opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(os.Stderr, "Successfully wrote chart to %s\n", p.output)
	return subcommands.ExitSuccess
}

// savePlot renders a table to an image file, the format follows the file extension.
func savePlot(path string, t *stockframe.Table, opts plot.Options) error {
	opts.Format = plot.FormatOf(path)
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := plot.Render(f, t, opts); err != nil {
		f.Close()
		os.Remove(path)
		return fmt.Errorf("cannot plot %s: %w", path, err)
	}
	return f.Close()
}
