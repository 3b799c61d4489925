package cmd

import (
	"flag"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/etnz/stockframe/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion returns the shell completion tree of sf, built from the global flags and the
// flags of every subcommand.
func Completion() *complete.Command {
	root := &complete.Command{
		Sub:   map[string]*complete.Command{},
		Flags: flagPredictors(flag.CommandLine),
	}
	for _, c := range Commands {
		f := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
		c.SetFlags(f)
		root.Sub[c.Name()] = &complete.Command{Flags: flagPredictors(f)}
	}
	if topics, err := docs.GetAllTopics(); err == nil {
		root.Sub["topic"].Args = predict.Set(topics)
	}
	return root
}

func flagPredictors(f *flag.FlagSet) map[string]complete.Predictor {
	flags := map[string]complete.Predictor{}
	f.VisitAll(func(fl *flag.Flag) {
		if b, ok := fl.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
			// boolean flags take no argument
			flags[fl.Name] = nil
			return
		}
		switch fl.Name {
		case "s", "cols":
			flags[fl.Name] = complete.PredictFunc(predictSymbols)
		case "o", "html":
			flags[fl.Name] = predict.Files("*")
		case "data-dir":
			flags[fl.Name] = predict.Dirs("*")
		case "bounds":
			flags[fl.Name] = predict.Set{"clamp", "strict"}
		case "format":
			flags[fl.Name] = predict.Set{"csv", "json"}
		default:
			flags[fl.Name] = predict.Something
		}
	})
	return flags
}

// predictSymbols completes the last item of a comma separated list of symbols with the
// price files found in the data folder.
func predictSymbols(prefix string) []string {
	head := ""
	if i := strings.LastIndex(prefix, ","); i >= 0 {
		head = prefix[:i+1]
	}
	var options []string
	for _, s := range availableSymbols(*dataDir) {
		if !slices.Contains(splitSymbols(head), s) {
			options = append(options, head+s)
		}
	}
	return options
}

// availableSymbols lists the symbols having a price file in dir.
func availableSymbols(dir string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	var symbols []string
	for _, e := range entries {
		ext := filepath.Ext(e.Name())
		if e.IsDir() || (ext != ".csv" && ext != ".json") {
			continue
		}
		symbols = append(symbols, strings.TrimSuffix(e.Name(), ext))
	}
	slices.Sort(symbols)
	return slices.Compact(symbols)
}
