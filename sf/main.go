// Command sf loads stock price files, aligns them on the trading days of a reference symbol,
// and displays or plots the result.
package main

import (
	"context"
	"flag"
	"io"
	"log"
	"os"
	"path"

	"github.com/etnz/stockframe/cmd"
	"github.com/google/subcommands"
)

func main() {
	// exits when invoked by the shell for completion
	cmd.Completion().Complete("sf")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	flag.Parse()
	if !*cmd.Verbose {
		log.SetOutput(io.Discard)
	}

	if sub := flag.Arg(0); sub != "" && !cmd.IsCommand(sub) && !isHelp(sub) {
		if ok, code := cmd.RunExtension(sub, flag.Args()[1:]); ok {
			os.Exit(code)
		}
	}
	os.Exit(int(commander.Execute(context.Background())))
}

func isHelp(name string) bool {
	return name == "help" || name == "flags" || name == "commands"
}
