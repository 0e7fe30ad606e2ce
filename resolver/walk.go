package resolver

import "cflat/ast"

func (r *Resolver) stmt(s ast.Statement) {
	switch n := s.(type) {
	case *ast.Block:
		r.beginScope()
		for _, st := range n.Stmts {
			r.stmt(st)
		}
		r.endScope()

	case *ast.ExprStmt:
		r.expr(n.Expr)

	case *ast.Import:
		// Names resolve against the function tables at call time, not
		// against lexical scope; nothing to resolve here.

	case *ast.FunctionDecl:
		// Function names live in the function table, not a lexical
		// scope, so there is no outer declare/define step (matching
		// §4.4's "functions are not first-class values"). The
		// parameters and body get their own scope.
		r.beginScope()
		for _, p := range n.Params {
			r.declare(p.Lexeme)
			r.define(p.Lexeme)
		}
		for _, st := range n.Body.Stmts {
			r.stmt(st)
		}
		r.endScope()

	case *ast.VarDecl:
		r.declare(n.Name.Lexeme)
		if n.Init != nil {
			r.expr(n.Init)
		}
		r.define(n.Name.Lexeme)

	case *ast.ArrayDecl:
		r.declare(n.Name.Lexeme)
		for _, e := range n.Inits {
			r.expr(e)
		}
		r.define(n.Name.Lexeme)

	case *ast.If:
		r.expr(n.Cond)
		r.stmt(n.Then)
		if n.Else != nil {
			r.stmt(n.Else)
		}

	case *ast.While:
		r.expr(n.Cond)
		r.stmt(n.Body)

	case *ast.Switch:
		r.expr(n.Switcher)
		for _, c := range n.Cases {
			r.expr(c.Expr)
			r.stmt(c.Body)
		}
		if n.Default != nil {
			r.stmt(n.Default)
		}

	case *ast.Return:
		if n.Value != nil {
			r.expr(n.Value)
		}

	case *ast.Break:
		if n.Value != nil {
			r.expr(n.Value)
		}

	default:
		panic("resolver: unhandled statement node")
	}
}

func (r *Resolver) expr(e ast.Expression) {
	switch n := e.(type) {
	case *ast.Literal:
		// no identifiers to resolve

	case *ast.Variable:
		if top, ok := r.currentScope(); ok {
			if defined, declared := top[n.Name.Lexeme]; declared && !defined {
				r.errf(n.Name.Line, "can't read local variable %q in its own initializer", n.Name.Lexeme)
			}
		}
		r.resolveLocal(n.ID(), n.Name.Lexeme)

	case *ast.Grouping:
		r.expr(n.Expr)

	case *ast.Unary:
		r.expr(n.Right)

	case *ast.Postfix:
		r.expr(n.Target)
		if v, ok := n.Target.(*ast.Variable); ok {
			r.resolveLocal(n.ID(), v.Name.Lexeme)
		}

	case *ast.Binary:
		r.expr(n.Left)
		r.expr(n.Right)

	case *ast.Ternary:
		r.expr(n.Cond)
		r.expr(n.Then)
		r.expr(n.Else)

	case *ast.TypeCast:
		r.expr(n.Expr)

	case *ast.Index:
		r.expr(n.Array)
		if n.Start != nil {
			r.expr(n.Start)
		}
		if n.End != nil {
			r.expr(n.End)
		}

	case *ast.AssignAt:
		r.expr(n.Array)
		if n.Index != nil {
			r.expr(n.Index)
		}
		r.expr(n.Value)
		r.resolveLocal(n.ID(), n.Name.Lexeme)

	case *ast.Call:
		for _, a := range n.Args {
			r.expr(a)
		}
		// Callee resolves against the function tables at call time
		// (arity-keyed dispatch, §4.4), not lexical scope.

	case *ast.Assignment:
		r.expr(n.Value)
		r.resolveLocal(n.ID(), n.Name.Lexeme)

	default:
		panic("resolver: unhandled expression node")
	}
}

// currentScope reports the innermost scope map, used only by the
// "read a local in its own initializer" check, which is specifically a
// same-scope conflict — a variable shadowed in an enclosing scope is
// perfectly fine to read from its own initializer.
func (r *Resolver) currentScope() (scope, bool) {
	if len(r.scopes) == 0 {
		return nil, false
	}
	return r.scopes[len(r.scopes)-1], true
}
