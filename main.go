package main

import (
	"context"
	"flag"
	"os"

	"github.com/google/subcommands"
)

func main() {
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(&replCmd{}, "")
	subcommands.Register(&cliCmd{}, "")
	subcommands.Register(&runCmd{}, "")
	subcommands.Register(&buildCmd{}, "")

	flag.Parse()

	// No subcommand at all starts the interactive prompt, matching
	// spec §6's default behavior.
	if flag.NArg() == 0 {
		os.Exit(int((&replCmd{}).Execute(context.Background(), flag.CommandLine)))
	}

	os.Exit(int(subcommands.Execute(context.Background())))
}
