package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/google/subcommands"

	"ember/vm"
)

type runCmd struct{}

func (*runCmd) Name() string     { return "run" }
func (*runCmd) Synopsis() string { return "execute an Ember source file" }
func (*runCmd) Usage() string {
	return heredoc.Doc(`
		run <path>:
		  Compile and execute the Ember program at path.
	`)
}
func (*runCmd) SetFlags(f *flag.FlagSet) {}

func (*runCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	args := f.Args()
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "💥 no source file provided")
		return exitUsageError
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "💥 failed to read %s: %v\n", args[0], err)
		return exitDataErr
	}

	machine := vm.New()
	switch result, _ := machine.Interpret(string(data)); result {
	case vm.CompileError:
		return exitCompileError
	case vm.RuntimeErrorResult:
		return exitRuntimeError
	}
	return exitOk
}
