package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/stockframe"
	"github.com/etnz/stockframe/renderer"
	"github.com/google/subcommands"
)

type selectCmd struct {
	tableFlags
	subFrom, subTo string
	columns        string
}

func (*selectCmd) Name() string { return "select" }
func (*selectCmd) Synopsis() string {
	return "display a date range and a subset of columns of the aligned prices"
}
func (*selectCmd) Usage() string {
	return `sf select -s <symbols> -from <date> [-to <date>] [-sub-from <date>] [-sub-to <date>] [-cols <columns>]

  Aligns the symbols over the -from -to range, then displays only the rows
  within the -sub-from -sub-to range and the -cols columns, in that order.
  The global -bounds flag decides whether a sub-range reaching outside of the
  aligned dates is clamped or rejected.

Usage Examples:
$ sf select -s IBM,GLD -from 2010-01-01 -to 2010-12-31 -sub-from 2010-03-01 -sub-to 2010-04-01 -cols SPY,IBM

`
}

func (p *selectCmd) SetFlags(f *flag.FlagSet) {
	p.tableFlags.SetFlags(f)
	f.StringVar(&p.subFrom, "sub-from", "", "First day of the selection (defaults to -from)")
	f.StringVar(&p.subTo, "sub-to", "", "Last day of the selection (defaults to -to)")
	f.StringVar(&p.columns, "cols", "", "Comma separated list of columns to keep, all by default")
}

func (p *selectCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	b, err := parseGlobals()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	t, err := p.load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	subFrom, subTo := p.subFrom, p.subTo
	if subFrom == "" {
		subFrom = p.from
	}
	if subTo == "" {
		subTo = p.to
	}
	r, err := parseRange(subFrom, subTo)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing selection: %v\n", err)
		return subcommands.ExitFailure
	}

	sub, err := stockframe.Select(t, r, splitSymbols(p.columns), b)
	var rangeErr *stockframe.RangeError
	if errors.As(err, &rangeErr) {
		fmt.Fprintf(os.Stderr, "Error: %v (use -bounds clamp to restrict the selection)\n", err)
		return subcommands.ExitFailure
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.TableMarkdown(sub, renderOptions("Selected prices", p.normalize)))
	return subcommands.ExitSuccess
}
