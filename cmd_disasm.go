package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/google/subcommands"

	"ember/compiler"
	"ember/internal/debug"
	"ember/object"
)

type disasmCmd struct{}

func (*disasmCmd) Name() string     { return "disasm" }
func (*disasmCmd) Synopsis() string { return "print the compiled bytecode for an Ember source file" }
func (*disasmCmd) Usage() string {
	return heredoc.Doc(`
		disasm <path>:
		  Compile path without executing it and print its disassembled bytecode.
	`)
}
func (*disasmCmd) SetFlags(f *flag.FlagSet) {}

func (*disasmCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	heap := object.NewHeap()
	chunk, err := compiler.Compile(string(data), heap)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return exitCompileError
	}

	fmt.Print(debug.Disassemble(chunk, args[0], heap))
	return exitOk
}
