package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"mito/driver"
)

// runCmd reads a file as a single program, executes it, and prints
// each top-level expression's result.
type runCmd struct{}

func (*runCmd) Name() string     { return "run" }
func (*runCmd) Synopsis() string { return "execute a source file and print each result" }
func (*runCmd) Usage() string {
	return "run <file>:\n  execute <file> and print each top-level expression's result.\n"
}
func (*runCmd) SetFlags(_ *flag.FlagSet) {}

func (*runCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Println("run: expected exactly one file argument")
		return subcommands.ExitUsageError
	}
	opts, err := driver.LoadOptions("mito.yaml")
	if err != nil {
		fmt.Println(err)
		return subcommands.ExitFailure
	}
	pipeline := driver.NewPipeline(opts)
	if err := pipeline.RunFile(f.Arg(0)); err != nil {
		fmt.Println(err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
