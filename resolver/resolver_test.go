package resolver

import (
	"testing"

	"github.com/stretchr/testify/require"

	"cflat/lexer"
	"cflat/parser"
)

func resolveSrc(t *testing.T, src string) (Depths, []string) {
	t.Helper()
	toks := lexer.New(src, "t.cflat").Tokenize()
	p := parser.New(toks, "t.cflat")
	stmts, hadErr := p.Parse()
	require.False(t, hadErr, "parse errors: %v", p.Errors)
	return New().Resolve("t.cflat", stmts)
}

func TestResolveShadowedLocalPicksInnermost(t *testing.T) {
	depths, errs := resolveSrc(t, `
		var x = 1;
		{
			var x = 2;
			print(x);
		}
	`)
	require.Empty(t, errs)
	// Only print(x) is annotated, at depth 0: the block's own x.
	require.Len(t, depths, 1)
	for _, d := range depths {
		require.Zero(t, d)
	}
}

func TestResolveSelfReferentialInitializerErrors(t *testing.T) {
	_, errs := resolveSrc(t, `
		var x = 1;
		{
			var x = x + 1;
		}
	`)
	require.Len(t, errs, 1)
	require.Contains(t, errs[0], "own initializer")
}

func TestResolveFunctionParamsGetOwnScope(t *testing.T) {
	_, errs := resolveSrc(t, `
		func add(a, b) {
			return a + b;
		}
	`)
	require.Empty(t, errs)
}

func TestResolveGlobalReferenceLeavesNoDepthEntry(t *testing.T) {
	depths, errs := resolveSrc(t, `
		var x = 1;
		print(x);
	`)
	require.Empty(t, errs)
	require.Empty(t, depths)
}
