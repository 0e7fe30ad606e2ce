package eval

import (
	"cflat/ast"
	"cflat/token"
	"cflat/value"
)

// evalIndex reads a[i] or a slice a[start:end] from a List or String
// (§4.4). Negative and out-of-range explicit indices are runtime
// errors; an omitted slice bound defaults to the start/end of the
// sequence rather than erroring.
func (e *Evaluator) evalIndex(n *ast.Index) (value.Value, error) {
	container, err := e.evalExpr(n.Array)
	if err != nil {
		return value.Value{}, err
	}

	length, err := sequenceLen(container, n.Lbracket)
	if err != nil {
		return value.Value{}, err
	}

	if n.HasColon {
		start, end, err := e.sliceBounds(n, length)
		if err != nil {
			return value.Value{}, err
		}
		return sliceSequence(container, start, end), nil
	}

	idx, err := e.boundedIndex(n.Start, length, n.Lbracket)
	if err != nil {
		return value.Value{}, err
	}
	return elementAt(container, idx), nil
}

// evalAssignAt implements `a[i] = v` and `a[i] += v`. A List mutates in
// place through its shared handle; a String is immutable-by-value, so
// the spliced result is written back to the variable the index chain
// rooted at (n.Name), which is exactly why the parser threads that name
// through every Index/AssignAt node (§4.4, §9).
func (e *Evaluator) evalAssignAt(n *ast.AssignAt) (value.Value, error) {
	container, err := e.evalExpr(n.Array)
	if err != nil {
		return value.Value{}, err
	}
	length, err := sequenceLen(container, n.Name)
	if err != nil {
		return value.Value{}, err
	}
	idx, err := e.boundedIndex(n.Index, length, n.Name)
	if err != nil {
		return value.Value{}, err
	}
	rhs, err := e.evalExpr(n.Value)
	if err != nil {
		return value.Value{}, err
	}

	switch container.Kind {
	case value.List:
		if n.Op == "+=" {
			elems := container.L.Elems
			grown := make([]value.Value, 0, len(elems)+1)
			grown = append(grown, elems[:idx]...)
			grown = append(grown, rhs)
			grown = append(grown, elems[idx:]...)
			container.L.Elems = grown
			return rhs, nil
		}
		container.L.Elems[idx] = rhs
		return rhs, nil

	case value.String:
		newPiece := rhs.ToStr()
		if n.Op == "+=" {
			current := value.NewString(string(container.S[idx]))
			combined, err := e.applyBinary(plusToken(n.Name), current, rhs)
			if err != nil {
				return value.Value{}, err
			}
			newPiece = combined.ToStr()
		}
		spliced := container.S[:idx] + newPiece + container.S[idx+1:]
		result := value.NewString(spliced)
		if err := e.assignVar(n.ID(), n.Name.Lexeme, result, n.Name); err != nil {
			return value.Value{}, err
		}
		return result, nil

	default:
		return value.Value{}, runtimeErrf(n.Name, "cannot index-assign into a %s", container.Kind)
	}
}

// plusToken synthesizes the operator token applyBinary needs for an
// AssignAt's "+=" form, reusing the position of like for diagnostics.
func plusToken(like token.Token) token.Token {
	return token.Token{Type: token.OPERATOR, Lexeme: "+", Line: like.Line, File: like.File}
}
