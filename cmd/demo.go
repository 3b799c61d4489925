package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/stockframe"
	"github.com/etnz/stockframe/date"
	"github.com/etnz/stockframe/plot"
	"github.com/etnz/stockframe/renderer"
	"github.com/google/subcommands"
)

type demoCmd struct {
	output string
}

func (*demoCmd) Name() string { return "demo" }
func (*demoCmd) Synopsis() string {
	return "align IBM and GLD over 2010, display March and plot it"
}
func (*demoCmd) Usage() string {
	return `sf demo [-o <file>]

  Runs a fixed scenario on the price files of the data folder:
  aligns IBM and GLD on the reference over 2010, displays the table,
  then selects the reference and IBM from 2010-03-01 to 2010-04-01,
  displays the selection and plots it.

Usage Examples:
$ sf demo
$ sf -data-dir testdata demo -o march.svg

`
}

func (p *demoCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.output, "o", "stock_prices.png", "Output image file (.png or .svg)")
}

func (p *demoCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	b, err := parseGlobals()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	year := date.NewRange(date.New(2010, 1, 1), date.New(2010, 12, 31))
	t, err := newAligner().Align([]string{"IBM", "GLD"}, year)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.TableMarkdown(t, renderOptions("Prices in 2010", false)))

	march := date.NewRange(date.New(2010, 3, 1), date.New(2010, 4, 1))
	sub, err := stockframe.Select(t, march, []string{*reference, "IBM"}, b)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.TableMarkdown(sub, renderOptions("Prices in March 2010", false)))

	if err := savePlot(p.output, sub, plot.Options{}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(os.Stderr, "Successfully wrote chart to %s\n", p.output)
	return subcommands.ExitSuccess
}
