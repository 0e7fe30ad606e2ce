package eval

import (
	"cflat/ast"
	"cflat/token"
	"cflat/value"
)

func sequenceLen(v value.Value, tok token.Token) (int, error) {
	switch v.Kind {
	case value.List:
		return len(v.L.Elems), nil
	case value.String:
		return len(v.S), nil
	default:
		return 0, runtimeErrf(tok, "cannot index a %s", v.Kind)
	}
}

// boundedIndex evaluates an index expression and checks it against
// [0, length), the explicit-index rule §4.4 describes (as opposed to
// slice bounds, which clamp instead of erroring).
func (e *Evaluator) boundedIndex(expr ast.Expression, length int, tok token.Token) (int, error) {
	v, err := e.evalExpr(expr)
	if err != nil {
		return 0, err
	}
	idx := int(v.ToInt())
	if idx < 0 || idx >= length {
		return 0, runtimeErrf(tok, "index %d out of range for length %d", idx, length)
	}
	return idx, nil
}

// sliceBounds resolves a[start:end], defaulting an omitted start to 0
// and an omitted end to length, then clamping both into [0, length] —
// a slice, unlike a single index, never errors on an out-of-range
// bound, it just produces an empty result at the extremes.
func (e *Evaluator) sliceBounds(n *ast.Index, length int) (int, int, error) {
	start, end := 0, length
	if n.Start != nil {
		v, err := e.evalExpr(n.Start)
		if err != nil {
			return 0, 0, err
		}
		start = clamp(int(v.ToInt()), 0, length)
	}
	if n.End != nil {
		v, err := e.evalExpr(n.End)
		if err != nil {
			return 0, 0, err
		}
		end = clamp(int(v.ToInt()), 0, length)
	}
	if end < start {
		end = start
	}
	return start, end, nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func elementAt(container value.Value, idx int) value.Value {
	if container.Kind == value.List {
		return container.L.Elems[idx]
	}
	return value.NewString(string(container.S[idx]))
}

// sliceSequence returns a new List or String covering [start, end) of
// container. A list slice is a fresh handle — it does not alias the
// source list, since §3 only calls out whole-list aliasing, not
// sub-slices, as shared.
func sliceSequence(container value.Value, start, end int) value.Value {
	if container.Kind == value.List {
		cut := make([]value.Value, end-start)
		copy(cut, container.L.Elems[start:end])
		return value.NewList(cut)
	}
	return value.NewString(container.S[start:end])
}
