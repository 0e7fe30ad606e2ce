// Package ast defines the cflat abstract syntax tree as two sum types,
// Expression and Statement, matching spec.md §3 and §9's redesign note:
// node visiting is implemented by type-switching over these interfaces
// in resolver and eval rather than a GoF visitor with an Accept method
// per node (the teacher's `parser.NodeVisitor` pattern) — there are only
// two "visitors" that matter (the resolver and the evaluator) and a type
// switch is the idiomatic Go way to express pattern matching over a
// closed set of variants.
//
// Every node carries a stable NodeID assigned at parse time, used as the
// resolver's side-table key per §9 ("do not depend on pointer-hash").
package ast

import "cflat/token"

// NodeID uniquely identifies an AST node for the lifetime of a parse.
// IDs are assigned by the parser in construction order; 0 is never a
// valid ID and marks an unset/zero-value node.
type NodeID uint64

// Node is the common shape of every AST node: an identity for the
// resolver's side table and a position for diagnostics.
type Node interface {
	ID() NodeID
	Pos() token.Token
}

// Expression is the sum type of all expression-position nodes (§3).
type Expression interface {
	Node
	exprNode()
}

// Statement is the sum type of all statement-position nodes (§3).
type Statement interface {
	Node
	stmtNode()
}

// base is embedded by every concrete node to provide ID()/Pos() without
// repeating the boilerplate, while the exprNode()/stmtNode() marker
// methods on the concrete types keep Expression and Statement sealed to
// this package.
type base struct {
	id  NodeID
	tok token.Token
}

func (b base) ID() NodeID       { return b.id }
func (b base) Pos() token.Token { return b.tok }

func newBase(id NodeID, tok token.Token) base {
	return base{id: id, tok: tok}
}
