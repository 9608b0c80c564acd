package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"mito/driver"
)

// buildCmd is the reserved build subcommand: it compiles and
// disassembles a file without executing it.
type buildCmd struct{}

func (*buildCmd) Name() string     { return "build" }
func (*buildCmd) Synopsis() string { return "compile a source file and print its bytecode (reserved)" }
func (*buildCmd) Usage() string {
	return "build <file>:\n  compile <file> and print its disassembly. Work in progress: no code is written to disk.\n"
}
func (*buildCmd) SetFlags(_ *flag.FlagSet) {}

func (*buildCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Println("build: expected exactly one file argument")
		return subcommands.ExitUsageError
	}
	fmt.Println("build: work-in-progress, compiling and disassembling only")
	opts, err := driver.LoadOptions("mito.yaml")
	if err != nil {
		fmt.Println(err)
		return subcommands.ExitFailure
	}
	pipeline := driver.NewPipeline(opts)
	if err := pipeline.BuildFile(f.Arg(0)); err != nil {
		fmt.Println(err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
