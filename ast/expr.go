package ast

import (
	"cflat/token"
	"cflat/value"
)

// Literal is a constant value baked in at parse time: an int, float,
// string, bool, or null literal.
type Literal struct {
	base
	Value value.Value
}

func NewLiteral(id NodeID, tok token.Token, v value.Value) *Literal {
	return &Literal{base: newBase(id, tok), Value: v}
}
func (*Literal) exprNode() {}

// Variable is a bare-identifier reference; the resolver annotates its
// scope depth in the side table keyed by ID().
type Variable struct {
	base
	Name token.Token
}

func NewVariable(id NodeID, name token.Token) *Variable {
	return &Variable{base: newBase(id, name), Name: name}
}
func (*Variable) exprNode() {}

// Grouping is a parenthesized expression, kept as its own node, though
// it evaluates identically to Expr.
type Grouping struct {
	base
	Expr Expression
}

func NewGrouping(id NodeID, tok token.Token, expr Expression) *Grouping {
	return &Grouping{base: newBase(id, tok), Expr: expr}
}
func (*Grouping) exprNode() {}

// Unary is a prefix operator expression: + - ! ~.
type Unary struct {
	base
	Op    token.Token
	Right Expression
}

func NewUnary(id NodeID, op token.Token, right Expression) *Unary {
	return &Unary{base: newBase(id, op), Op: op, Right: right}
}
func (*Unary) exprNode() {}

// Postfix is ++/-- on a bare variable target; legality (target must be
// a Variable) is enforced by the evaluator, not the AST shape, matching
// how the grammar in §4.2 describes it as a property of `variable`.
type Postfix struct {
	base
	Target Expression
	Op     token.Token
}

func NewPostfix(id NodeID, target Expression, op token.Token) *Postfix {
	return &Postfix{base: newBase(id, op), Target: target, Op: op}
}
func (*Postfix) exprNode() {}

// Binary is a left-associative two-operand operator expression.
type Binary struct {
	base
	Left  Expression
	Op    token.Token
	Right Expression
}

func NewBinary(id NodeID, left Expression, op token.Token, right Expression) *Binary {
	return &Binary{base: newBase(id, op), Left: left, Op: op, Right: right}
}
func (*Binary) exprNode() {}

// Ternary is `cond ? then : else`, right-associative.
type Ternary struct {
	base
	Cond, Then, Else Expression
}

func NewTernary(id NodeID, tok token.Token, cond, then, els Expression) *Ternary {
	return &Ternary{base: newBase(id, tok), Cond: cond, Then: then, Else: els}
}
func (*Ternary) exprNode() {}

// TypeCast is the `(bln)`, `(int)`, `(flt)`, `(str)` prefix form.
type TypeCast struct {
	base
	TypeTok token.Token
	Expr    Expression
}

func NewTypeCast(id NodeID, typeTok token.Token, expr Expression) *TypeCast {
	return &TypeCast{base: newBase(id, typeTok), TypeTok: typeTok, Expr: expr}
}
func (*TypeCast) exprNode() {}

// Index is `name[...]`, covering both a single index and a slice: a
// slice is present whenever HasColon is true, with Start/End possibly
// nil (`a[:]`, `a[b:]`, `a[:e]`, `a[b:e]`).
type Index struct {
	base
	Name     token.Token
	Array    Expression
	Lbracket token.Token
	Start    Expression
	HasColon bool
	End      Expression
}

func NewIndex(id NodeID, name token.Token, array Expression, lbracket token.Token, start Expression, hasColon bool, end Expression) *Index {
	return &Index{base: newBase(id, lbracket), Name: name, Array: array, Lbracket: lbracket, Start: start, HasColon: hasColon, End: end}
}
func (*Index) exprNode() {}

// AssignAt is `a[i] = v` or `a[i] += v` (the only two operators the
// grammar accepts at this position per §4.2).
type AssignAt struct {
	base
	Name  token.Token
	Array Expression
	Op    string
	Index Expression
	Value Expression
}

func NewAssignAt(id NodeID, name token.Token, array Expression, op string, index, val Expression) *AssignAt {
	return &AssignAt{base: newBase(id, name), Name: name, Array: array, Op: op, Index: index, Value: val}
}
func (*AssignAt) exprNode() {}

// Call is `callee(args...)`; the grammar requires callee to be a bare
// identifier (§4.2 "call accepts a variable... followed by (args?)").
type Call struct {
	base
	Callee   token.Token
	ParenTok token.Token
	Args     []Expression
}

func NewCall(id NodeID, callee token.Token, paren token.Token, args []Expression) *Call {
	return &Call{base: newBase(id, callee), Callee: callee, ParenTok: paren, Args: args}
}
func (*Call) exprNode() {}

// Assignment is `name = value`; the resolver annotates Name's scope
// depth the same way it does for Variable.
type Assignment struct {
	base
	Name  token.Token
	Value Expression
}

func NewAssignment(id NodeID, name token.Token, val Expression) *Assignment {
	return &Assignment{base: newBase(id, name), Name: name, Value: val}
}
func (*Assignment) exprNode() {}
