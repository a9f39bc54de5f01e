// Command ember is the Ember language's CLI: bare invocation starts a REPL,
// a single path argument runs a source file, and `disasm` prints a file's
// compiled bytecode. Both forms are thin wrappers over the compiler and vm
// packages; this file only owns argument rewriting, global flags, and exit
// codes.
package main

import (
	"context"
	"flag"
	"os"
	"strings"

	"github.com/google/subcommands"
)

// Exit codes follow the sysexits.h convention the rest of the module's
// error model is pinned to.
const (
	exitOk           = 0
	exitUsageError   = 64
	exitCompileError = 65
	exitRuntimeError = 70
	exitDataErr      = 74 // file could not be read
)

var knownVerbs = map[string]bool{
	"repl":     true,
	"run":      true,
	"disasm":   true,
	"help":     true,
	"flags":    true,
	"commands": true,
}

// rewriteArgs lets `ember` (no arguments) behave as `ember repl` and
// `ember path/to/file.ember` behave as `ember run path/to/file.ember`,
// matching the two-form invocation contract while still routing through
// subcommands.Execute underneath. Leading global flags (e.g. `-debug`) are
// left in place ahead of the verb they end up attached to.
func rewriteArgs(args []string) []string {
	i := 0
	for i < len(args) && strings.HasPrefix(args[i], "-") {
		i++
	}
	flags, rest := args[:i], args[i:]

	if len(rest) == 0 {
		return append(flags, "repl")
	}
	if !knownVerbs[rest[0]] {
		out := append([]string{}, flags...)
		out = append(out, "run")
		return append(out, rest...)
	}
	return args
}

func main() {
	debug := flag.Bool("debug", false, "enable debug-level logging of compiler and VM internals")

	os.Args = append(os.Args[:1], rewriteArgs(os.Args[1:])...)
	flag.Parse()

	configureLogging(*debug)

	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(subcommands.CommandsCommand(), "")
	subcommands.Register(&replCmd{}, "")
	subcommands.Register(&runCmd{}, "")
	subcommands.Register(&disasmCmd{}, "")

	ctx := context.Background()
	os.Exit(int(subcommands.Execute(ctx)))
}
