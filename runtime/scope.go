// Package runtime holds the evaluator's mutable execution state: the
// lexical scope chain and the two arity-keyed function tables. It plays
// the role the teacher's scope.go and function.go play, simplified to
// match cflat's semantics — there is no let/const distinction and no
// closures, so the copy-on-call machinery those types carry isn't
// needed here.
package runtime

import "cflat/value"

// Scope is one level of the lexical environment: a flat map of names to
// values plus a link to the enclosing scope. The resolver's scope-depth
// annotations let the evaluator walk straight to the right Scope
// instead of searching name-by-name the way the teacher's Scope.LookUp
// does.
type Scope struct {
	vars   map[string]value.Value
	parent *Scope
}

// NewScope creates a scope chained under parent (nil for the global
// scope).
func NewScope(parent *Scope) *Scope {
	return &Scope{vars: make(map[string]value.Value), parent: parent}
}

// Define binds name in this scope, shadowing any binding of the same
// name in an enclosing scope. It returns false, binding nothing, when
// name is already bound in this scope (not an ancestor) — re-declaration
// within one scope is a runtime error the caller must report.
func (s *Scope) Define(name string, v value.Value) bool {
	if _, ok := s.vars[name]; ok {
		return false
	}
	s.vars[name] = v
	return true
}

// Assign overwrites name's existing binding in this scope, for the
// reassignment paths that have already located the owning scope via Get
// — unlike Define, it does not reject an existing binding.
func (s *Scope) Assign(name string, v value.Value) {
	s.vars[name] = v
}

// Ancestor walks depth parents up the chain; depth 0 is s itself.
func (s *Scope) Ancestor(depth int) *Scope {
	cur := s
	for i := 0; i < depth; i++ {
		if cur.parent == nil {
			return cur
		}
		cur = cur.parent
	}
	return cur
}

// GetAt reads name from the scope depth levels up.
func (s *Scope) GetAt(depth int, name string) (value.Value, bool) {
	v, ok := s.Ancestor(depth).vars[name]
	return v, ok
}

// SetAt writes name in the scope depth levels up, reporting whether it
// was already bound there (AssignAt and Assignment both require an
// existing binding — cflat has no implicit global creation on assign).
func (s *Scope) SetAt(depth int, name string, v value.Value) bool {
	target := s.Ancestor(depth)
	if _, ok := target.vars[name]; !ok {
		return false
	}
	target.vars[name] = v
	return true
}

// Get searches outward from s without a known depth, used for the
// fallback global-scope lookups the resolver leaves unresolved (builtin
// argument evaluation, import-spliced code, and the like).
func (s *Scope) Get(name string) (value.Value, *Scope, bool) {
	for cur := s; cur != nil; cur = cur.parent {
		if v, ok := cur.vars[name]; ok {
			return v, cur, true
		}
	}
	return value.Value{}, nil, false
}
