package eval

import (
	"math"

	"cflat/token"
	"cflat/value"
)

// applyBinary implements §4.4's two-level numeric tower: '+' special-
// cases string concatenation and (mutating) list append ahead of
// arithmetic; every other arithmetic and comparison operator promotes
// to double if either side is a Float and falls back to int64
// otherwise; the bitwise family always operates on int64 regardless of
// operand kind, by design — cflat has no float bitwise form.
func (e *Evaluator) applyBinary(opTok token.Token, left, right value.Value) (value.Value, error) {
	op := opTok.Lexeme

	if op == "+" {
		if left.Kind == value.List {
			return appendList(left, right), nil
		}
		if left.Kind == value.String || right.Kind == value.String {
			return value.NewString(left.ToStr() + right.ToStr()), nil
		}
	}

	switch op {
	case "==":
		return value.NewBool(value.Same(left, right)), nil
	case "!=":
		return value.NewBool(!value.Same(left, right)), nil
	}

	if left.Kind == value.String || right.Kind == value.String {
		return value.Value{}, runtimeErrf(opTok, "operator %q does not apply to strings", op)
	}

	switch op {
	case "&", "|", "^", "<<", ">>", ">>>":
		l, r := left.ToInt(), right.ToInt()
		switch op {
		case "&":
			return value.NewInt(l & r), nil
		case "|":
			return value.NewInt(l | r), nil
		case "^":
			return value.NewInt(l ^ r), nil
		case "<<":
			return value.NewInt(l << uint(r)), nil
		case ">>":
			return value.NewInt(l >> uint(r)), nil
		case ">>>":
			return value.NewInt(int64(uint64(l) >> uint(r))), nil
		}
	}

	useFloat := left.Kind == value.Float || right.Kind == value.Float
	switch op {
	case "+", "-", "*", "/", "%":
		if useFloat {
			l, r := left.ToDbl(), right.ToDbl()
			switch op {
			case "+":
				return value.NewFloat(l + r), nil
			case "-":
				return value.NewFloat(l - r), nil
			case "*":
				return value.NewFloat(l * r), nil
			case "/":
				return value.NewFloat(l / r), nil
			case "%":
				return value.NewFloat(math.Mod(l, r)), nil
			}
		}
		l, r := left.ToInt(), right.ToInt()
		switch op {
		case "+":
			return value.NewInt(l + r), nil
		case "-":
			return value.NewInt(l - r), nil
		case "*":
			return value.NewInt(l * r), nil
		case "/":
			if r == 0 {
				return value.Value{}, runtimeErrf(opTok, "division by zero")
			}
			return value.NewInt(l / r), nil
		case "%":
			if r == 0 {
				return value.Value{}, runtimeErrf(opTok, "division by zero")
			}
			return value.NewInt(l % r), nil
		}
	case "<", ">", "<=", ">=":
		if useFloat {
			l, r := left.ToDbl(), right.ToDbl()
			return value.NewBool(compareFloat(op, l, r)), nil
		}
		l, r := left.ToInt(), right.ToInt()
		return value.NewBool(compareInt(op, l, r)), nil
	}

	return value.Value{}, runtimeErrf(opTok, "unsupported operator %q", op)
}

func compareFloat(op string, l, r float64) bool {
	switch op {
	case "<":
		return l < r
	case ">":
		return l > r
	case "<=":
		return l <= r
	default:
		return l >= r
	}
}

func compareInt(op string, l, r int64) bool {
	switch op {
	case "<":
		return l < r
	case ">":
		return l > r
	case "<=":
		return l <= r
	default:
		return l >= r
	}
}

// appendList mutates left's shared handle, extending it with right's
// elements (if right is itself a List) or right as a single element,
// and returns the same handle (§3/§9 — a list's identity, and every
// alias of it, observes the append).
func appendList(left, right value.Value) value.Value {
	if right.Kind == value.List {
		left.L.Elems = append(left.L.Elems, right.L.Elems...)
	} else {
		left.L.Elems = append(left.L.Elems, right)
	}
	return left
}

func valuesEqual(a, b value.Value) bool { return value.Same(a, b) }
