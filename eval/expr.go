package eval

import (
	"cflat/ast"
	"cflat/value"
)

// evalExpr evaluates e to a value.Value, the expression-side twin of
// execStmt. Only Call ever needs to know whether it's being evaluated
// in statement position (the void-table-first rule, §4.4); every other
// node is indifferent to where it sits in the tree.
func (e *Evaluator) evalExpr(expr ast.Expression) (value.Value, error) {
	switch n := expr.(type) {
	case *ast.Literal:
		return n.Value, nil

	case *ast.Variable:
		return e.lookupVar(n.ID(), n.Name.Lexeme, n.Name)

	case *ast.Grouping:
		return e.evalExpr(n.Expr)

	case *ast.Unary:
		return e.evalUnary(n)

	case *ast.Postfix:
		return e.evalPostfix(n)

	case *ast.Binary:
		return e.evalBinary(n)

	case *ast.Ternary:
		cond, err := e.evalExpr(n.Cond)
		if err != nil {
			return value.Value{}, err
		}
		if cond.Truthy() {
			return e.evalExpr(n.Then)
		}
		return e.evalExpr(n.Else)

	case *ast.TypeCast:
		return e.evalTypeCast(n)

	case *ast.Index:
		return e.evalIndex(n)

	case *ast.AssignAt:
		return e.evalAssignAt(n)

	case *ast.Call:
		args, err := e.evalCallArgs(n)
		if err != nil {
			return value.Value{}, err
		}
		return e.dispatchCall(n.Callee, args, false)

	case *ast.Assignment:
		v, err := e.evalExpr(n.Value)
		if err != nil {
			return value.Value{}, err
		}
		if err := e.assignVar(n.ID(), n.Name.Lexeme, v, n.Name); err != nil {
			return value.Value{}, err
		}
		return v, nil

	default:
		return value.Value{}, runtimeErrf(expr.Pos(), "unhandled expression node")
	}
}

func (e *Evaluator) evalBinary(n *ast.Binary) (value.Value, error) {
	if n.Op.Lexeme == "&&" {
		left, err := e.evalExpr(n.Left)
		if err != nil {
			return value.Value{}, err
		}
		if !left.Truthy() {
			return value.NewBool(false), nil
		}
		right, err := e.evalExpr(n.Right)
		if err != nil {
			return value.Value{}, err
		}
		return value.NewBool(right.Truthy()), nil
	}
	if n.Op.Lexeme == "||" {
		left, err := e.evalExpr(n.Left)
		if err != nil {
			return value.Value{}, err
		}
		if left.Truthy() {
			return value.NewBool(true), nil
		}
		right, err := e.evalExpr(n.Right)
		if err != nil {
			return value.Value{}, err
		}
		return value.NewBool(right.Truthy()), nil
	}

	left, err := e.evalExpr(n.Left)
	if err != nil {
		return value.Value{}, err
	}
	right, err := e.evalExpr(n.Right)
	if err != nil {
		return value.Value{}, err
	}
	return e.applyBinary(n.Op, left, right)
}

func (e *Evaluator) evalUnary(n *ast.Unary) (value.Value, error) {
	right, err := e.evalExpr(n.Right)
	if err != nil {
		return value.Value{}, err
	}
	switch n.Op.Lexeme {
	case "-":
		if right.Kind == value.Float {
			return value.NewFloat(-right.ToDbl()), nil
		}
		return value.NewInt(-right.ToInt()), nil
	case "+":
		if right.Kind == value.Float {
			return value.NewFloat(right.ToDbl()), nil
		}
		return value.NewInt(right.ToInt()), nil
	case "!":
		return value.NewBool(!right.Truthy()), nil
	case "~":
		return value.NewInt(^right.ToInt()), nil
	default:
		return value.Value{}, runtimeErrf(n.Op, "unsupported prefix operator %q", n.Op.Lexeme)
	}
}

// evalPostfix implements ++/-- : only legal on a bare variable (enforced
// here rather than in the grammar, per the §4.2 note on ast.Postfix),
// reads the old value, writes old±1 back, and yields the old value —
// standard postfix semantics.
func (e *Evaluator) evalPostfix(n *ast.Postfix) (value.Value, error) {
	v, ok := n.Target.(*ast.Variable)
	if !ok {
		return value.Value{}, runtimeErrf(n.Op, "%s target must be a variable", n.Op.Lexeme)
	}
	old, err := e.lookupVar(n.ID(), v.Name.Lexeme, v.Name)
	if err != nil {
		return value.Value{}, err
	}
	var updated value.Value
	delta := int64(1)
	if n.Op.Lexeme == "--" {
		delta = -1
	}
	if old.Kind == value.Float {
		updated = value.NewFloat(old.ToDbl() + float64(delta))
	} else {
		updated = value.NewInt(old.ToInt() + delta)
	}
	if err := e.assignVar(n.ID(), v.Name.Lexeme, updated, v.Name); err != nil {
		return value.Value{}, err
	}
	return old, nil
}

// evalTypeCast implements the `(bln)`, `(int)`, `(flt)`, `(str)` coercions
// via value's coercion table (§4.4).
func (e *Evaluator) evalTypeCast(n *ast.TypeCast) (value.Value, error) {
	v, err := e.evalExpr(n.Expr)
	if err != nil {
		return value.Value{}, err
	}
	switch n.TypeTok.Lexeme {
	case "bln":
		return value.NewBool(v.ToBln()), nil
	case "int":
		return value.NewInt(v.ToInt()), nil
	case "flt":
		return value.NewFloat(v.ToDbl()), nil
	case "str":
		return value.NewString(v.ToStr()), nil
	default:
		return value.Value{}, runtimeErrf(n.TypeTok, "unknown cast %q", n.TypeTok.Lexeme)
	}
}
