package eval

import (
	"cflat/ast"
	"cflat/token"
	"cflat/value"
)

// lookupVar reads name's value using the resolver's scope-depth
// annotation for id when one exists, falling back to an unscoped search
// starting at the global scope and then the current frame — the path a
// forward-referenced global or any other resolver miss takes, per the
// fail-soft philosophy the lexer and parser already follow.
func (e *Evaluator) lookupVar(id ast.NodeID, name string, tok token.Token) (value.Value, error) {
	if depth, ok := e.Depths[id]; ok {
		if v, ok := e.current.GetAt(depth, name); ok {
			return v, nil
		}
	}
	if v, _, ok := e.global.Get(name); ok {
		return v, nil
	}
	if v, _, ok := e.current.Get(name); ok {
		return v, nil
	}
	return value.Value{}, runtimeErrf(tok, "undefined variable %q", name)
}

// assignVar writes v to name's binding the same way lookupVar reads it:
// by resolved depth first, then an unscoped search. cflat has no
// implicit global creation on assignment — assigning to an unbound name
// is a runtime error.
func (e *Evaluator) assignVar(id ast.NodeID, name string, v value.Value, tok token.Token) error {
	if depth, ok := e.Depths[id]; ok {
		if e.current.SetAt(depth, name, v) {
			return nil
		}
	}
	if _, scope, ok := e.global.Get(name); ok {
		scope.Assign(name, v)
		return nil
	}
	if _, scope, ok := e.current.Get(name); ok {
		scope.Assign(name, v)
		return nil
	}
	return runtimeErrf(tok, "undefined variable %q", name)
}
