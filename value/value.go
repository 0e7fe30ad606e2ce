// Package value implements the cflat runtime value domain: a tagged
// union over integer, double, boolean, string, list, and null, per
// spec.md §3 and the §9 design note to represent values as a tagged
// union rather than a type-erased interface-per-type pointer (the
// teacher's objects.GoMixObject pattern, deliberately not carried over
// here — see DESIGN.md).
//
// Strings and the scalar kinds are copied by value on assignment; List
// is a reference type (a handle to a shared, mutable backing slice) so
// aliasing and in-place mutation (append, index-assign) are observable
// through every alias, matching §3's "lists are reference-typed".
package value

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind tags the active member of a Value.
type Kind int

const (
	Int Kind = iota
	Float
	Bool
	String
	List
	Null
)

func (k Kind) String() string {
	switch k {
	case Int:
		return "int"
	case Float:
		return "double"
	case Bool:
		return "bool"
	case String:
		return "string"
	case List:
		return "list"
	case Null:
		return "null"
	default:
		return "unknown"
	}
}

// ListHandle is the mutable, reference-typed backing store for a list
// value. Two Values of Kind List that share a ListHandle observe each
// other's mutations, exactly as §3 requires.
type ListHandle struct {
	Elems []Value
}

// Value is the single runtime representation for every cflat value.
// Exactly the field matching Kind is meaningful; the rest are zero.
type Value struct {
	Kind Kind
	I    int64
	F    float64
	B    bool
	S    string
	L    *ListHandle
}

// NewInt, NewFloat, NewBool, NewString, NewNull construct Values of the
// matching kind. NewList always creates a fresh handle around elems
// (an empty slice if elems is nil), without copying elems.
func NewInt(i int64) Value      { return Value{Kind: Int, I: i} }
func NewFloat(f float64) Value  { return Value{Kind: Float, F: f} }
func NewBool(b bool) Value      { return Value{Kind: Bool, B: b} }
func NewString(s string) Value  { return Value{Kind: String, S: s} }
func NewNull() Value            { return Value{Kind: Null} }
func NewList(elems []Value) Value {
	if elems == nil {
		elems = []Value{}
	}
	return Value{Kind: List, L: &ListHandle{Elems: elems}}
}

// Same reports reference identity for lists (§4.4 equality semantics:
// "lists by reference identity") and value identity for every other
// kind. No coercion is applied: values of different kinds are never
// Same (Int 5 and Float 5.0 differ).
func Same(a, b Value) bool {
	if a.Kind == List || b.Kind == List {
		return a.Kind == List && b.Kind == List && a.L == b.L
	}
	switch a.Kind {
	case Int:
		return b.Kind == Int && a.I == b.I
	case Float:
		return b.Kind == Float && a.F == b.F
	case Bool:
		return b.Kind == Bool && a.B == b.B
	case String:
		return b.Kind == String && a.S == b.S
	case Null:
		return b.Kind == Null
	}
	return false
}

// ToString renders a value in its default textual form, used both by
// the `str` cast and by the print/println builtins.
func (v Value) ToString() string {
	switch v.Kind {
	case Int:
		return strconv.FormatInt(v.I, 10)
	case Float:
		return strconv.FormatFloat(v.F, 'f', -1, 64)
	case Bool:
		if v.B {
			return "true"
		}
		return "false"
	case String:
		return v.S
	case Null:
		return "null"
	case List:
		parts := make([]string, len(v.L.Elems))
		for i, e := range v.L.Elems {
			parts[i] = e.ToString()
		}
		return "[" + strings.Join(parts, ", ") + "]"
	default:
		return fmt.Sprintf("<%s>", v.Kind)
	}
}

// ToBln implements the `bln` coercion column of §4.4's type table.
// The int row is the source dialect's well-known quirk — odd values are
// truthy, even values are not — preserved deliberately rather than
// "fixed" to `!= 0`, per §9's instruction to preserve-with-a-note.
func (v Value) ToBln() bool {
	switch v.Kind {
	case Bool:
		return v.B
	case Int:
		return v.I%2 == 1 // quirk: literal `n % 2 == 1`, not `!= 0` — false for negative odds too
	case Float:
		return v.F > 0.0
	case String:
		return len(v.S) != 0
	case List:
		return len(v.L.Elems) != 0
	default:
		return false
	}
}

// ToInt implements the `int` coercion column.
func (v Value) ToInt() int64 {
	switch v.Kind {
	case Bool:
		if v.B {
			return 1
		}
		return 0
	case Int:
		return v.I
	case Float:
		return int64(v.F) // truncate toward zero
	case String:
		n, err := strconv.ParseInt(strings.TrimSpace(v.S), 10, 64)
		if err != nil {
			return 0
		}
		return n
	default:
		return 0
	}
}

// ToDbl implements the `dbl` coercion column.
func (v Value) ToDbl() float64 {
	switch v.Kind {
	case Bool:
		if v.B {
			return 1.0
		}
		return 0.0
	case Int:
		return float64(v.I)
	case Float:
		return v.F
	case String:
		f, err := strconv.ParseFloat(strings.TrimSpace(v.S), 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

// ToStr implements the `str` coercion column; it is simply ToString
// except for bln, whose table entry is the literal words true/false,
// which ToString already produces.
func (v Value) ToStr() string { return v.ToString() }

// Truthy is the condition-position truthiness rule used by if/while/
// ternary/&&/||, expressed via the same coercion table as the `bln`
// cast (§4.4 "Truthiness / type coercions").
func (v Value) Truthy() bool { return v.ToBln() }
