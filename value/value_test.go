package value

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestToBlnIntIsOddOnlyTruthy(t *testing.T) {
	require.True(t, NewInt(1).ToBln())
	require.False(t, NewInt(2).ToBln())
	// The quirk is the literal `n % 2 == 1`, not "is odd": Go's (and the
	// source dialect's) % keeps the dividend's sign, so a negative odd
	// value is falsy here too.
	require.False(t, NewInt(-3).ToBln())
	require.False(t, NewInt(0).ToBln())
}

func TestSameListsByReferenceIdentity(t *testing.T) {
	a := NewList([]Value{NewInt(1)})
	b := NewList([]Value{NewInt(1)})
	require.False(t, Same(a, b), "distinct handles with equal contents are not Same")
	require.True(t, Same(a, a))
}

func TestSameScalarsByValue(t *testing.T) {
	require.True(t, Same(NewInt(5), NewInt(5)))
	require.False(t, Same(NewInt(5), NewFloat(5)))
	require.True(t, Same(NewString("x"), NewString("x")))
}

func TestToStringRendersList(t *testing.T) {
	l := NewList([]Value{NewInt(1), NewString("a")})
	require.Equal(t, "[1, a]", l.ToString())
}

func TestCoercionTable(t *testing.T) {
	require.Equal(t, int64(42), NewString("42").ToInt())
	require.Equal(t, 3.5, NewString("3.5").ToDbl())
	require.Equal(t, "true", NewBool(true).ToStr())
}
