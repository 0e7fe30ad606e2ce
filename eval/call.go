package eval

import (
	"cflat/ast"
	"cflat/runtime"
	"cflat/token"
	"cflat/value"
)

func (e *Evaluator) evalCallArgs(n *ast.Call) ([]value.Value, error) {
	args := make([]value.Value, len(n.Args))
	for i, a := range n.Args {
		v, err := e.evalExpr(a)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}
	return args, nil
}

// dispatchCall resolves callee#arity against the user function tables
// and then the builtin registry. preferVoid reflects which table wins
// a name collision: statement position tries the void table first
// (§4.4 — a call used only for effect), expression position tries the
// value-returning table first, since its result is about to be used.
func (e *Evaluator) dispatchCall(callee token.Token, args []value.Value, preferVoid bool) (value.Value, error) {
	name := callee.Lexeme
	arity := len(args)

	tables := []*runtime.FunctionTable{e.Funcs, e.Procs}
	if preferVoid {
		tables = []*runtime.FunctionTable{e.Procs, e.Funcs}
	}
	for _, t := range tables {
		if f, ok := t.Lookup(name, arity); ok {
			return e.invokeUserFunc(f, args)
		}
	}

	if b, ok := e.builtins[builtinKey{name, arity}]; ok {
		return b(e, args)
	}

	return value.Value{}, e.noSuchFunctionError(callee, name, arity)
}

// noSuchFunctionError builds the "did you mean" diagnostic the
// evaluator's CreateError idiom uses: if some other arity of name is
// registered, suggest it; search order is arity+2 down to 0 (§4.4, §7).
func (e *Evaluator) noSuchFunctionError(callee token.Token, name string, arity int) error {
	if a, ok := e.Funcs.SuggestArity(name, arity); ok {
		return runtimeErrf(callee, "no function %q taking %d argument(s); did you mean %q taking %d?", name, arity, name, a)
	}
	if a, ok := e.Procs.SuggestArity(name, arity); ok {
		return runtimeErrf(callee, "no function %q taking %d argument(s); did you mean %q taking %d?", name, arity, name, a)
	}
	return runtimeErrf(callee, "no function named %q taking %d argument(s)", name, arity)
}

// invokeUserFunc runs a parsed declaration's body in a fresh scope
// chained directly under the global scope — cflat functions are not
// closures, so a call never sees the caller's locals (§4.4).
func (e *Evaluator) invokeUserFunc(f *runtime.Function, args []value.Value) (value.Value, error) {
	callScope := runtime.NewScope(e.global)
	for i, param := range f.Decl.Params {
		if !callScope.Define(param.Lexeme, args[i]) {
			return value.Value{}, runtimeErrf(param, "duplicate parameter name %q in %q", param.Lexeme, f.Decl.Name.Lexeme)
		}
	}

	prev := e.current
	e.current = callScope
	sig, err := e.execStmts(f.Decl.Body.Stmts)
	e.current = prev
	if err != nil {
		return value.Value{}, err
	}

	if f.Decl.Returns {
		if sig.Kind == SigReturn {
			return sig.Value, nil
		}
		return value.Value{}, runtimeErrf(f.Decl.Name, "function %q did not return a value", f.Decl.Name.Lexeme)
	}
	if sig.Kind == SigReturn && sig.Value.Kind != value.Null {
		return value.Value{}, runtimeErrf(f.Decl.Name, "void function %q cannot return a value", f.Decl.Name.Lexeme)
	}
	return value.NewNull(), nil
}

// execStmts runs stmts directly in the current scope (no extra nested
// scope), used for a function body, whose parameters and top-level
// locals share one frame.
func (e *Evaluator) execStmts(stmts []ast.Statement) (Signal, error) {
	for _, s := range stmts {
		sig, err := e.execStmt(s)
		if err != nil {
			return noSignal, err
		}
		if sig.Kind != SigNone {
			return sig, nil
		}
	}
	return noSignal, nil
}
