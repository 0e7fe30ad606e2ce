package eval

import (
	"cflat/ast"
	"cflat/runtime"
	"cflat/value"
)

// execStmt evaluates one statement, returning the control-flow signal
// it produces (SigNone for ordinary statements) and any runtime error.
func (e *Evaluator) execStmt(s ast.Statement) (Signal, error) {
	switch n := s.(type) {
	case *ast.Block:
		return e.execBlock(n, runtime.NewScope(e.current))

	case *ast.ExprStmt:
		if call, ok := n.Expr.(*ast.Call); ok {
			args, err := e.evalCallArgs(call)
			if err != nil {
				return noSignal, err
			}
			_, err = e.dispatchCall(call.Callee, args, true)
			return noSignal, err
		}
		_, err := e.evalExpr(n.Expr)
		return noSignal, err

	case *ast.Import:
		// The driver splices an import's function declarations into
		// the program before resolution runs; by evaluation time this
		// node carries no further obligation.
		return noSignal, nil

	case *ast.FunctionDecl:
		if n.Returns {
			e.Funcs.Define(n)
		} else {
			e.Procs.Define(n)
		}
		return noSignal, nil

	case *ast.VarDecl:
		v := value.NewNull()
		if n.Init != nil {
			var err error
			v, err = e.evalExpr(n.Init)
			if err != nil {
				return noSignal, err
			}
		}
		if !e.current.Define(n.Name.Lexeme, v) {
			return noSignal, runtimeErrf(n.Name, "%q is already declared in this scope", n.Name.Lexeme)
		}
		return noSignal, nil

	case *ast.ArrayDecl:
		elems := make([]value.Value, len(n.Inits))
		for i, expr := range n.Inits {
			v, err := e.evalExpr(expr)
			if err != nil {
				return noSignal, err
			}
			elems[i] = v
		}
		if !e.current.Define(n.Name.Lexeme, value.NewList(elems)) {
			return noSignal, runtimeErrf(n.Name, "%q is already declared in this scope", n.Name.Lexeme)
		}
		return noSignal, nil

	case *ast.If:
		cond, err := e.evalExpr(n.Cond)
		if err != nil {
			return noSignal, err
		}
		if cond.Truthy() {
			return e.execStmt(n.Then)
		}
		if n.Else != nil {
			return e.execStmt(n.Else)
		}
		return noSignal, nil

	case *ast.While:
		return e.execWhile(n)

	case *ast.Switch:
		return e.execSwitch(n)

	case *ast.Return:
		v := value.NewNull()
		if n.Value != nil {
			var err error
			v, err = e.evalExpr(n.Value)
			if err != nil {
				return noSignal, err
			}
		}
		return Signal{Kind: SigReturn, Value: v}, nil

	case *ast.Break:
		count := int64(1)
		if n.Value != nil {
			v, err := e.evalExpr(n.Value)
			if err != nil {
				return noSignal, err
			}
			count = v.ToInt()
		}
		if count < 1 {
			return noSignal, runtimeErrf(n.Keyword, "'break' count must be at least 1, got %d", count)
		}
		return Signal{Kind: SigBreak, N: int(count)}, nil

	default:
		return noSignal, runtimeErrf(s.Pos(), "unhandled statement node")
	}
}

// execBlock runs stmts in scope, threading the first non-None signal
// straight out — a return or break inside a block short-circuits the
// rest of it, matching normal structured-programming semantics.
func (e *Evaluator) execBlock(block *ast.Block, scope *runtime.Scope) (Signal, error) {
	prev := e.current
	e.current = scope
	defer func() { e.current = prev }()

	for _, st := range block.Stmts {
		sig, err := e.execStmt(st)
		if err != nil {
			return noSignal, err
		}
		if sig.Kind != SigNone {
			return sig, nil
		}
	}
	return noSignal, nil
}

// execWhile runs body while cond is truthy, absorbing exactly one level
// of a pending Break and forwarding any deeper one (§4.4 — `break 2`
// inside a nested while unwinds both).
func (e *Evaluator) execWhile(n *ast.While) (Signal, error) {
	for {
		cond, err := e.evalExpr(n.Cond)
		if err != nil {
			return noSignal, err
		}
		if !cond.Truthy() {
			return noSignal, nil
		}
		sig, err := e.execStmt(n.Body)
		if err != nil {
			return noSignal, err
		}
		if sig.Kind == SigReturn {
			return sig, nil
		}
		if sig.Kind == SigBreak {
			next := sig.descend()
			if next.Kind == SigNone {
				return noSignal, nil
			}
			return next, nil
		}
	}
}

// execSwitch evaluates the switcher once, finds the first matching
// case by value equality, and falls through every arm after it — there
// is no implicit break between cases (§4.4, §8 scenario 6); an explicit
// `break;` inside an arm is what exits early, absorbed here exactly
// like a loop absorbs one.
func (e *Evaluator) execSwitch(n *ast.Switch) (Signal, error) {
	switcher, err := e.evalExpr(n.Switcher)
	if err != nil {
		return noSignal, err
	}

	matchedIdx := -1
	for i, c := range n.Cases {
		cv, err := e.evalExpr(c.Expr)
		if err != nil {
			return noSignal, err
		}
		if valuesEqual(switcher, cv) {
			matchedIdx = i
			break
		}
	}

	if matchedIdx >= 0 {
		for i := matchedIdx; i < len(n.Cases); i++ {
			sig, stop, err := e.execSwitchArm(n.Cases[i].Body)
			if err != nil {
				return noSignal, err
			}
			if stop {
				return sig, nil
			}
		}
		if n.Default != nil {
			sig, _, err := e.execSwitchArm(n.Default)
			return sig, err
		}
		return noSignal, nil
	}

	if n.Default != nil {
		sig, _, err := e.execSwitchArm(n.Default)
		return sig, err
	}
	return noSignal, nil
}

// execSwitchArm runs one case/default body, reporting whether the
// switch should stop here: a return always does, a break does after
// consuming one level of it, and falling off the end of the arm does
// not (fallthrough is the default, §4.4).
func (e *Evaluator) execSwitchArm(body ast.Statement) (Signal, bool, error) {
	sig, err := e.execStmt(body)
	if err != nil {
		return noSignal, false, err
	}
	switch sig.Kind {
	case SigReturn:
		return sig, true, nil
	case SigBreak:
		return sig.descend(), true, nil
	default:
		return noSignal, false, nil
	}
}
