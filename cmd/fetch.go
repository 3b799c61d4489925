package cmd

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/etnz/stockframe"
	"github.com/etnz/stockframe/eodhd"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
)

type fetchCmd struct {
	symbols  string
	from, to string
	apiKey   string
	exchange string
}

func (*fetchCmd) Name() string { return "fetch" }
func (*fetchCmd) Synopsis() string {
	return "download price files from eodhd.com into the data folder"
}
func (*fetchCmd) Usage() string {
	return `sf fetch -s <symbols> -from <date> [-to <date>] [-eodhd-api-key <key>] [-exchange <code>]

  Downloads the adjusted close prices of each symbol, and of the reference,
  and writes them as CSV price files in the data folder.

  The API key is read from the -eodhd-api-key flag, or the EODHD_API_KEY
  environment variable, possibly defined in a .env file.

Usage Examples:
$ sf fetch -s SPY,IBM,GLD -from 2010-01-01 -to 2010-12-31

`
}

func (p *fetchCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.symbols, "s", "", "Comma separated list of symbols, the reference is added first")
	f.StringVar(&p.from, "from", "", "First day of the range (YYYY-MM-DD)")
	f.StringVar(&p.to, "to", "", "Last day of the range (defaults to today)")
	f.StringVar(&p.apiKey, "eodhd-api-key", "", "EODHD API key, defaults to EODHD_API_KEY")
	f.StringVar(&p.exchange, "exchange", "US", "Exchange code appended to symbols without one")
}

func (p *fetchCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}
	key := p.apiKey
	if key == "" {
		key = os.Getenv("EODHD_API_KEY")
	}
	r, err := parseRange(p.from, p.to)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := os.MkdirAll(*dataDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating data folder: %v\n", err)
		return subcommands.ExitFailure
	}

	client := &eodhd.Client{APIKey: key, Exchange: p.exchange}
	// price files are always written as CSV
	resolver := stockframe.Resolver{Dir: *dataDir}
	status := subcommands.ExitSuccess
	for _, symbol := range newAligner().Symbols(splitSymbols(p.symbols)) {
		path, n, err := client.Save(ctx, resolver, symbol, r)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error fetching %s: %v\n", symbol, err)
			status = subcommands.ExitFailure
			continue
		}
		fmt.Fprintf(os.Stderr, "Successfully wrote %d prices to %s\n", n, path)
	}
	return status
}
