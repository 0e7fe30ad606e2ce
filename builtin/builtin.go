// Package builtin registers cflat's native function library into an
// Evaluator, the role the teacher's std/ package plays, minus the
// teacher's much larger stdlib-wrapping surface (json, http, crypto):
// cflat's builtin surface is the small, fixed table spec.md §4.4 lists.
package builtin

import (
	"strings"
	"time"
	"unicode"

	"cflat/eval"
	"cflat/value"
)

// Install registers every native function spec.md §4.4 lists into e.
// The driver calls this once per Evaluator, before Load/Run.
func Install(e *eval.Evaluator) {
	e.RegisterBuiltin("print", 1, biPrint)
	e.RegisterBuiltin("println", 0, biPrintlnBare)
	e.RegisterBuiltin("println", 1, biPrintlnArg)
	e.RegisterBuiltin("length", 1, biLength)
	e.RegisterBuiltin("yeet", 2, biYeet)
	e.RegisterBuiltin("isAlphabetic", 1, biIsAlphabetic)
	e.RegisterBuiltin("isUpperCase", 1, biIsUpperCase)
	e.RegisterBuiltin("isLowerCase", 1, biIsLowerCase)
	e.RegisterBuiltin("toUpperCase", 1, biToUpperCase)
	e.RegisterBuiltin("toLowerCase", 1, biToLowerCase)
	e.RegisterBuiltin("input", 0, biInput)
	e.RegisterBuiltin("rand", 0, biRand)
	e.RegisterBuiltin("clock", 0, biClock)
}

func biPrint(e *eval.Evaluator, args []value.Value) (value.Value, error) {
	e.Out.Write([]byte(args[0].ToString()))
	return value.NewNull(), nil
}

func biPrintlnBare(e *eval.Evaluator, args []value.Value) (value.Value, error) {
	e.Out.Write([]byte("\n"))
	return value.NewNull(), nil
}

func biPrintlnArg(e *eval.Evaluator, args []value.Value) (value.Value, error) {
	e.Out.Write([]byte(args[0].ToString() + "\n"))
	return value.NewNull(), nil
}

// biLength returns the length of a string or list, -1 for anything
// else (§4.4's fail-soft "-1 otherwise" rule, rather than a runtime
// error, so a misused length() doesn't abort an otherwise-working
// program).
func biLength(e *eval.Evaluator, args []value.Value) (value.Value, error) {
	switch args[0].Kind {
	case value.String:
		return value.NewInt(int64(len(args[0].S))), nil
	case value.List:
		return value.NewInt(int64(len(args[0].L.Elems))), nil
	default:
		return value.NewInt(-1), nil
	}
}

// biYeet removes index i from a list (mutating its shared handle, the
// same aliasing rule every other in-place list operation follows) or
// produces a string without the character at i; it returns the removed
// element or the resulting string.
func biYeet(e *eval.Evaluator, args []value.Value) (value.Value, error) {
	target, idxArg := args[0], args[1]
	i := int(idxArg.ToInt())
	switch target.Kind {
	case value.List:
		elems := target.L.Elems
		if i < 0 || i >= len(elems) {
			return value.NewNull(), nil
		}
		removed := elems[i]
		target.L.Elems = append(elems[:i:i], elems[i+1:]...)
		return removed, nil
	case value.String:
		s := target.S
		if i < 0 || i >= len(s) {
			return value.NewString(s), nil
		}
		return value.NewString(s[:i] + s[i+1:]), nil
	default:
		return value.NewNull(), nil
	}
}

func firstRune(s string) (rune, bool) {
	for _, r := range s {
		return r, true
	}
	return 0, false
}

func biIsAlphabetic(e *eval.Evaluator, args []value.Value) (value.Value, error) {
	r, ok := firstRune(args[0].ToStr())
	return value.NewBool(ok && unicode.IsLetter(r)), nil
}

func biIsUpperCase(e *eval.Evaluator, args []value.Value) (value.Value, error) {
	r, ok := firstRune(args[0].ToStr())
	return value.NewBool(ok && unicode.IsUpper(r)), nil
}

func biIsLowerCase(e *eval.Evaluator, args []value.Value) (value.Value, error) {
	r, ok := firstRune(args[0].ToStr())
	return value.NewBool(ok && unicode.IsLower(r)), nil
}

func biToUpperCase(e *eval.Evaluator, args []value.Value) (value.Value, error) {
	return value.NewString(strings.ToUpper(args[0].ToStr())), nil
}

func biToLowerCase(e *eval.Evaluator, args []value.Value) (value.Value, error) {
	return value.NewString(strings.ToLower(args[0].ToStr())), nil
}

// biInput reads one line from e.In with no trailing newline, the
// line-buffered contract §4.4 and §5 describe for standard input. It
// reads through the Evaluator's own persistent reader rather than
// wrapping e.In fresh each call, so bytes buffered past the delimiter
// on one call aren't thrown away before the next.
func biInput(e *eval.Evaluator, args []value.Value) (value.Value, error) {
	line, err := e.ReadLine()
	line = strings.TrimRight(line, "\r\n")
	if err != nil && line == "" {
		return value.NewString(""), nil
	}
	return value.NewString(line), nil
}

func biRand(e *eval.Evaluator, args []value.Value) (value.Value, error) {
	return value.NewFloat(e.Rand.Float64()), nil
}

func biClock(e *eval.Evaluator, args []value.Value) (value.Value, error) {
	return value.NewInt(time.Now().UnixMilli()), nil
}
