// Package repl implements an interactive read-eval-print loop for
// cflat, adapted from the teacher's repl.Repl (chzyer/readline for line
// editing/history, fatih/color for feedback) onto the new lexer/
// parser/resolver/eval pipeline. The primary CLI (cmd/cflat) follows
// §6's strict "exe [path]" contract and has no room for an interactive
// mode of its own, so this lives as a separate supplemental binary,
// cmd/cflatrepl (see SPEC_FULL.md's AMBIENT STACK section).
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"cflat/builtin"
	"cflat/eval"
	"cflat/lexer"
	"cflat/parser"
	"cflat/resolver"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl is a long-lived interactive session: one Evaluator persists
// across every line the user enters, the same top-level declaration
// space a single file would have.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	License string
	Prompt  string
}

func New(banner, version, author, line, license, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt}
}

func (r *Repl) PrintBannerInfo(w io.Writer) {
	blueColor.Fprintf(w, "%s\n", r.Line)
	greenColor.Fprintf(w, "%s\n", r.Banner)
	blueColor.Fprintf(w, "%s\n", r.Line)
	yellowColor.Fprintln(w, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(w, "%s\n", r.Line)
	cyanColor.Fprintln(w, "Welcome to cflat!")
	cyanColor.Fprintln(w, "Type a statement and press enter")
	cyanColor.Fprintln(w, "Type '.exit' to quit")
	blueColor.Fprintf(w, "%s\n", r.Line)
}

// Start runs the loop until the user exits or EOF. Each line is parsed
// and resolved on its own, but evaluated against the same Evaluator
// every iteration, so declarations from earlier lines stay visible.
func (r *Repl) Start(in io.Reader, out io.Writer) {
	r.PrintBannerInfo(out)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		redColor.Fprintf(out, "could not start line editor: %v\n", err)
		return
	}
	defer rl.Close()

	e := eval.New(out, in)
	builtin.Install(e)

	for {
		line, err := rl.Readline()
		if err != nil {
			out.Write([]byte("bye\n"))
			return
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == ".exit" {
			out.Write([]byte("bye\n"))
			return
		}
		rl.SaveHistory(line)
		r.evalLine(out, line, e)
	}
}

// evalLine runs one line of input through the full pipeline against a
// persistent Evaluator, printing diagnostics in red and never exiting
// on error — the REPL's whole point is to survive a mistake.
func (r *Repl) evalLine(out io.Writer, line string, e *eval.Evaluator) {
	toks := lexer.New(line, "<repl>").Tokenize()
	p := parser.New(toks, "<repl>")
	stmts, hadErr := p.Parse()
	if hadErr {
		for _, msg := range p.Errors {
			redColor.Fprintln(out, msg)
		}
		return
	}

	depths, resolveErrs := resolver.New().Resolve("<repl>", stmts)
	if len(resolveErrs) > 0 {
		for _, msg := range resolveErrs {
			redColor.Fprintln(out, msg)
		}
		return
	}
	e.SetDepths(depths)
	e.Load(stmts)
	if err := e.Run(stmts); err != nil {
		redColor.Fprintln(out, err.Error())
	}
}
