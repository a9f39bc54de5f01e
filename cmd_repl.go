package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/chzyer/readline"
	"github.com/google/subcommands"

	"ember/vm"
)

type replCmd struct{}

func (*replCmd) Name() string     { return "repl" }
func (*replCmd) Synopsis() string { return "start an interactive Ember session" }
func (*replCmd) Usage() string {
	return heredoc.Doc(`
		repl:
		  Start an interactive REPL. Each line is compiled and executed against a
		  VM that persists globals and interned strings across the session.
	`)
}
func (*replCmd) SetFlags(f *flag.FlagSet) {}

func (*replCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "> ",
		HistoryFile:     historyFilePath(),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "💥 Failed to start REPL: %v\n", err)
		return exitRuntimeError
	}
	defer rl.Close()

	machine := vm.New()
	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		}
		if err == io.EOF {
			return exitOk
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "💥 %v\n", err)
			return exitRuntimeError
		}

		if line == "" {
			continue
		}

		switch result, err := machine.Interpret(line); result {
		case vm.CompileError:
			// the compiler returns its errors rather than printing them
			fmt.Fprintln(os.Stderr, err)
		case vm.RuntimeErrorResult:
			// error already reported by the VM
		}
	}
}

func historyFilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return home + "/.ember_history"
}
