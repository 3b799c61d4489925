package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/stockframe/renderer"
	"github.com/google/subcommands"
)

type alignCmd struct {
	tableFlags
	html  string
	title string
}

func (*alignCmd) Name() string { return "align" }
func (*alignCmd) Synopsis() string {
	return "display the prices of several symbols aligned on the reference trading days"
}
func (*alignCmd) Usage() string {
	return `sf align -s <symbols> -from <date> [-to <date>] [-n] [-html <file>]

  Loads the price file of each symbol, and of the reference, and displays
  a table with one row per reference trading day and one column per symbol.

Usage Examples:
$ sf align -s IBM,GLD -from 2010-01-01 -to 2010-12-31

# Write the normalized table as an HTML page.
$ sf align -s IBM,GLD -from 2010-01-01 -to 2010-12-31 -n -html prices.html

`
}

func (p *alignCmd) SetFlags(f *flag.FlagSet) {
	p.tableFlags.SetFlags(f)
	f.StringVar(&p.html, "html", "", "Write the table to this HTML file instead of the terminal")
	f.StringVar(&p.title, "title", "Aligned prices", "Title of the table")
}

func (p *alignCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	t, err := p.load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	output := renderer.TableMarkdown(t, renderOptions(p.title, p.normalize))

	if p.html == "" {
		printMarkdown(output)
		return subcommands.ExitSuccess
	}

	page, err := renderer.HTML(p.title, output)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot convert to HTML: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := os.WriteFile(p.html, []byte(page), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %q: %v\n", p.html, err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(os.Stderr, "Successfully wrote %d days to %s\n", t.Len(), p.html)
	return subcommands.ExitSuccess
}
