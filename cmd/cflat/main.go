// Command cflat is the strict file-mode entry point §6 specifies:
// `exe [path]`, nothing else — no flags, no REPL fallback, no subcommands.
// The teacher's main/main.go mixes REPL-by-default, --help/--version,
// and a server mode into one binary; cflat keeps that richer surface in
// cmd/cflatrepl instead, so this binary's behavior matches the contract
// exactly (see SPEC_FULL.md's AMBIENT STACK section for the split's
// rationale).
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"

	"cflat/driver"
)

var redColor = color.New(color.FgRed)

func main() {
	os.Exit(run(os.Args))
}

// run implements §6's exit-code contract: 0 on success, 64 for a
// malformed invocation, 65 for a parse error (a deliberate deviation
// from the source dialect's "parse errors don't set a nonzero exit",
// documented in SPEC_FULL.md's SUPPLEMENTED FEATURES section), 1 for a
// runtime error.
func run(args []string) int {
	path, usageExit := driver.ResolveArgs(args[1:])
	if usageExit {
		fmt.Fprintln(os.Stderr, driver.FormatUsage(args[0]))
		return 64
	}

	res := driver.RunFile(path, os.Stdout, os.Stdin)
	if res.HasParseErrors() {
		for _, msg := range res.ParseErrors {
			redColor.Fprintln(os.Stderr, msg)
		}
		return 65
	}
	if res.RuntimeErr != nil {
		redColor.Fprintln(os.Stderr, res.RuntimeErr.Error())
		return 1
	}
	return 0
}
