// Package eval is the tree-walking evaluator: it executes an already
// parsed and resolved cflat program directly over the AST, the same
// architectural role as the teacher's eval.Evaluator, rebuilt around
// the two redesign notes in spec.md §9 — a tagged-union value.Value
// instead of the teacher's GoMixObject interface, and type-switch
// dispatch over ast.Expression/ast.Statement instead of the visitor
// pattern's Accept/VisitXxx machinery.
package eval

import (
	"bufio"
	"io"
	"math/rand"
	"os"
	"time"

	"cflat/ast"
	"cflat/resolver"
	"cflat/runtime"
	"cflat/value"
)

// Builtin is a native function registered into the builtin registry; it
// receives already-evaluated arguments and returns a value (Null for
// the void-like builtins) plus an error.
type Builtin func(e *Evaluator, args []value.Value) (value.Value, error)

// builtinKey indexes the registry the same way runtime.FunctionTable
// indexes user declarations — name and arity together — since println
// is overloaded at arity 0 and 1 (§4.4).
type builtinKey struct {
	name  string
	arity int
}

// Evaluator holds everything a running program needs: the resolver's
// scope-depth table, the global scope, the current call frame, the two
// function tables, the builtin registry, and the I/O streams print/
// input read and write through (mirroring the teacher's
// Evaluator.Writer/Reader, which lets cmd/cflat and the test suite both
// redirect output without touching global state).
type Evaluator struct {
	Depths resolver.Depths

	global  *runtime.Scope
	current *runtime.Scope

	Funcs *runtime.FunctionTable // `func` table: must return a value
	Procs *runtime.FunctionTable // `void` table: must not

	builtins map[builtinKey]Builtin

	Out io.Writer
	In  io.Reader

	// inReader wraps In once, at construction, so builtin `input()` calls
	// share one buffer across calls instead of discarding whatever a
	// fresh bufio.Reader over-reads past each line's delimiter.
	inReader *bufio.Reader

	Rand *rand.Rand
}

// New creates an Evaluator ready to load declarations into, writing
// output to out and reading builtin `input()` calls from in.
func New(out io.Writer, in io.Reader) *Evaluator {
	e := &Evaluator{
		global:   runtime.NewScope(nil),
		Funcs:    runtime.NewFunctionTable(),
		Procs:    runtime.NewFunctionTable(),
		builtins: make(map[builtinKey]Builtin),
		Out:      out,
		In:       in,
		inReader: bufio.NewReader(in),
		Rand:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	e.current = e.global
	return e
}

// NewDefault wires stdout/stdin, the shape cmd/cflat and the REPL use.
func NewDefault() *Evaluator {
	return New(os.Stdout, os.Stdin)
}

// RegisterBuiltin adds a native function under name, keyed by its fixed
// arity so a name like println can be registered once per arity it
// supports.
func (e *Evaluator) RegisterBuiltin(name string, arity int, fn Builtin) {
	e.builtins[builtinKey{name, arity}] = fn
}

// ReadLine reads one line from In through the Evaluator's persistent
// buffered reader, so a builtin like input() doesn't lose bytes an
// earlier call's own bufio.Reader had already buffered past the '\n'.
func (e *Evaluator) ReadLine() (string, error) {
	return e.inReader.ReadString('\n')
}

// SetDepths installs the resolver's scope-depth side table; the driver
// calls this after resolution and before Run.
func (e *Evaluator) SetDepths(d resolver.Depths) { e.Depths = d }

// Load declares every top-level FunctionDecl into the function tables
// without executing any other statement — the "declarations first"
// load phase the driver runs before Run, matching how the teacher's
// file.go splices imports in before evaluation begins.
func (e *Evaluator) Load(stmts []ast.Statement) {
	for _, s := range stmts {
		if n, ok := s.(*ast.FunctionDecl); ok {
			if n.Returns {
				e.Funcs.Define(n)
			} else {
				e.Procs.Define(n)
			}
		}
	}
}

// Run executes every top-level statement in order (globals run in
// declaration order, the same as the teacher's top-to-bottom
// evaluation). A Return or Break signal reaching the top level is a
// runtime error — there is no enclosing call or loop to absorb it.
func (e *Evaluator) Run(stmts []ast.Statement) error {
	for _, s := range stmts {
		sig, err := e.execStmt(s)
		if err != nil {
			return err
		}
		if sig.Kind == SigReturn {
			return runtimeErrf(s.Pos(), "'return' outside of a function")
		}
		if sig.Kind == SigBreak {
			return runtimeErrf(s.Pos(), "'break' outside of a loop or switch")
		}
	}
	return nil
}
