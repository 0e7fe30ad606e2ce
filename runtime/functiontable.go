package runtime

import (
	"fmt"
	"sort"
	"strings"

	"cflat/ast"
)

// FunctionKey is how both function tables index declarations: name and
// arity together, since cflat allows overloading purely by parameter
// count (§4.4).
type FunctionKey struct {
	Name  string
	Arity int
}

func (k FunctionKey) String() string { return fmt.Sprintf("%s#%d", k.Name, k.Arity) }

// Function pairs a parsed declaration with the table it lives in.
type Function struct {
	Decl *ast.FunctionDecl
}

// FunctionTable holds the set of user-defined functions of one kind —
// value-returning (func) or void — keyed by name#arity. The two kinds
// are disjoint: `func area(w,h)` and `void area(w,h)` at the same
// arity are different, independently dispatched names (§4.4).
type FunctionTable struct {
	byKey map[FunctionKey]*Function
}

func NewFunctionTable() *FunctionTable {
	return &FunctionTable{byKey: make(map[FunctionKey]*Function)}
}

// Define registers decl, keyed by its name and parameter count. A
// redeclaration at the same name+arity silently overwrites, matching
// the teacher's "last definition wins" loading behavior for top-level
// declarations.
func (t *FunctionTable) Define(decl *ast.FunctionDecl) {
	key := FunctionKey{Name: decl.Name.Lexeme, Arity: len(decl.Params)}
	t.byKey[key] = &Function{Decl: decl}
}

// Lookup finds the exact name#arity entry.
func (t *FunctionTable) Lookup(name string, arity int) (*Function, bool) {
	f, ok := t.byKey[FunctionKey{Name: name, Arity: arity}]
	return f, ok
}

// Has reports whether any arity of name is registered, used to
// distinguish "wrong arity" from "no such function" in diagnostics.
func (t *FunctionTable) Has(name string) bool {
	for k := range t.byKey {
		if k.Name == name {
			return true
		}
	}
	return false
}

// SuggestArity searches outward from arity+2 down to 0 for a
// registered arity of name, matching the "did you mean" search order
// the evaluator's CreateError-style diagnostics use when a call's
// argument count doesn't match any declaration (§4.4, §7).
func (t *FunctionTable) SuggestArity(name string, arity int) (int, bool) {
	for try := arity + 2; try >= 0; try-- {
		if _, ok := t.Lookup(name, try); ok {
			return try, true
		}
	}
	return 0, false
}

// Names returns every registered name#arity, sorted, for diagnostics
// and REPL introspection.
func (t *FunctionTable) Names() []string {
	names := make([]string, 0, len(t.byKey))
	for k := range t.byKey {
		names = append(names, k.String())
	}
	sort.Strings(names)
	return names
}

func (t *FunctionTable) String() string {
	return strings.Join(t.Names(), ", ")
}
