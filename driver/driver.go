// Package driver wires the lexer, parser, resolver, and evaluator into
// the pipeline §6 describes: read a file, splice its imports in, parse,
// resolve, run — formatting every diagnostic the same
// "[file ln line] Syntax|Runtime: message" way, mirroring the shape of
// the teacher's Evaluator.CreateError combined with main/main.go's
// runFile/executeFileWithRecovery split between read errors, parse
// errors, and runtime errors.
package driver

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"cflat/ast"
	"cflat/builtin"
	"cflat/eval"
	"cflat/lexer"
	"cflat/parser"
	"cflat/resolver"
)

// Result reports how a Run attempt ended, so cmd/cflat can map it onto
// the exit codes §6 specifies without re-deriving them here.
type Result struct {
	ParseErrors []string
	RuntimeErr  error
}

func (r Result) HasParseErrors() bool { return len(r.ParseErrors) > 0 }

// RunFile executes the program rooted at path: read, import-splice,
// parse, resolve, evaluate. out/in are the evaluator's I/O streams.
func RunFile(path string, out io.Writer, in io.Reader) Result {
	src, err := os.ReadFile(path)
	if err != nil {
		return Result{ParseErrors: []string{fmt.Sprintf("[%s] could not read file: %v", path, err)}}
	}

	stmts, parseErrs := parseWithImports(string(src), path)
	if len(parseErrs) > 0 {
		return Result{ParseErrors: parseErrs}
	}

	depths, resolveErrs := resolver.New().Resolve(path, stmts)
	if len(resolveErrs) > 0 {
		return Result{ParseErrors: resolveErrs}
	}

	e := eval.New(out, in)
	builtin.Install(e)
	e.SetDepths(depths)
	e.Load(stmts)
	return Result{RuntimeErr: e.Run(stmts)}
}

// parseWithImports parses src and then splices in the FunctionDecls of
// every `import name;` it finds, resolving name against
// "./cflatexe/name.cflat" the way §2/§6 describe — each imported file
// contributes only its function declarations, not its top-level
// statements, so importing a file never re-runs its side effects.
func parseWithImports(src, file string) ([]ast.Statement, []string) {
	toks := lexer.New(src, file).Tokenize()
	p := parser.New(toks, file)
	stmts, hadErr := p.Parse()
	if hadErr {
		return nil, p.Errors
	}

	var out []ast.Statement
	seen := map[string]bool{filepath.Clean(file): true}
	for _, s := range stmts {
		imp, ok := s.(*ast.Import)
		if !ok {
			out = append(out, s)
			continue
		}
		for _, name := range imp.Names {
			importPath := filepath.Join("cflatexe", name.Lexeme+".cflat")
			if seen[filepath.Clean(importPath)] {
				continue
			}
			seen[filepath.Clean(importPath)] = true
			decls, errs := importFunctionDecls(importPath)
			if len(errs) > 0 {
				return nil, errs
			}
			out = append(out, decls...)
		}
	}
	return out, nil
}

// importFunctionDecls parses importPath and keeps only its top-level
// function/void declarations, per the "splice in functions only" rule
// above.
func importFunctionDecls(importPath string) ([]ast.Statement, []string) {
	src, err := os.ReadFile(importPath)
	if err != nil {
		return nil, []string{fmt.Sprintf("[%s] import target could not be read: %v", importPath, err)}
	}
	toks := lexer.New(string(src), importPath).Tokenize()
	p := parser.New(toks, importPath)
	stmts, hadErr := p.Parse()
	if hadErr {
		return nil, p.Errors
	}
	var decls []ast.Statement
	for _, s := range stmts {
		if _, ok := s.(*ast.FunctionDecl); ok {
			decls = append(decls, s)
		}
	}
	return decls, nil
}

// DefaultPath is "./cflatexe/main.cflat", the file §6 says a zero-argument
// invocation reads.
const DefaultPath = "cflatexe" + string(filepath.Separator) + "main.cflat"

// ResolveArgs maps the CLI's zero/one/many-argument forms onto a file
// path and a usage exit, per §6's "exe [path]" contract.
func ResolveArgs(args []string) (path string, usageExit bool) {
	switch len(args) {
	case 0:
		return DefaultPath, false
	case 1:
		return args[0], false
	default:
		return "", true
	}
}

// FormatUsage renders the 2+-argument usage diagnostic cmd/cflat prints
// before exiting 64.
func FormatUsage(exe string) string {
	return fmt.Sprintf("usage: %s [path]", strings.TrimSuffix(filepath.Base(exe), filepath.Ext(exe)))
}
