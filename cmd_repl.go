package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"mito/driver"
)

// replCmd starts the interactive prompt. It backs both the default
// (no subcommand) invocation and the explicit "repl"/"cli" aliases.
type replCmd struct{}

func (*replCmd) Name() string     { return "repl" }
func (*replCmd) Synopsis() string { return "start the interactive read-eval-print session" }
func (*replCmd) Usage() string {
	return "repl:\n  start the interactive prompt.\n"
}
func (*replCmd) SetFlags(_ *flag.FlagSet) {}

func (*replCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	opts, err := driver.LoadOptions("mito.yaml")
	if err != nil {
		fmt.Println(err)
		return subcommands.ExitFailure
	}
	pipeline := driver.NewPipeline(opts)
	repl, err := driver.NewREPL(pipeline)
	if err != nil {
		fmt.Println(err)
		return subcommands.ExitFailure
	}
	if err := repl.Run(); err != nil {
		fmt.Println(err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// cliCmd is the "cli" alias for repl, matching spec §6's
// `repl` / `cli` equivalence.
type cliCmd struct{ replCmd }

func (*cliCmd) Name() string     { return "cli" }
func (*cliCmd) Synopsis() string { return "alias for repl" }
