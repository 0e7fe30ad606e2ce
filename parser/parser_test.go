package parser

import (
	"testing"

	"github.com/stretchr/testify/require"

	"cflat/ast"
	"cflat/lexer"
)

func parseSrc(t *testing.T, src string) ([]ast.Statement, *Parser) {
	t.Helper()
	toks := lexer.New(src, "t.cflat").Tokenize()
	p := New(toks, "t.cflat")
	stmts, _ := p.Parse()
	return stmts, p
}

func TestParseFunctionDeclAndCall(t *testing.T) {
	stmts, p := parseSrc(t, `func add(a, b) { return a + b; } add(1, 2);`)
	require.False(t, p.hasError)
	require.Len(t, stmts, 2)
	fn, ok := stmts[0].(*ast.FunctionDecl)
	require.True(t, ok)
	require.True(t, fn.Returns)
	require.Len(t, fn.Params, 2)
}

func TestParseForDesugarsToBlockWithWhile(t *testing.T) {
	stmts, p := parseSrc(t, `for (var i = 0; i < 3; i = i + 1) { print(i); }`)
	require.False(t, p.hasError)
	require.Len(t, stmts, 1)
	outer, ok := stmts[0].(*ast.Block)
	require.True(t, ok)
	require.Len(t, outer.Stmts, 2)
	_, ok = outer.Stmts[0].(*ast.VarDecl)
	require.True(t, ok)
	while, ok := outer.Stmts[1].(*ast.While)
	require.True(t, ok)
	body, ok := while.Body.(*ast.Block)
	require.True(t, ok)
	require.Len(t, body.Stmts, 2) // original body + synthesized increment
}

func TestParseForWithMissingCondDefaultsToTrue(t *testing.T) {
	stmts, p := parseSrc(t, `for (;;) { break; }`)
	require.False(t, p.hasError)
	outer := stmts[0].(*ast.Block)
	while := outer.Stmts[0].(*ast.While)
	lit, ok := while.Cond.(*ast.Literal)
	require.True(t, ok)
	require.True(t, lit.Value.ToBln())
}

func TestParseTernaryRightAssociative(t *testing.T) {
	stmts, p := parseSrc(t, `var x = a ? 1 : b ? 2 : 3;`)
	require.False(t, p.hasError)
	decl := stmts[0].(*ast.VarDecl)
	outer, ok := decl.Init.(*ast.Ternary)
	require.True(t, ok)
	_, ok = outer.Else.(*ast.Ternary)
	require.True(t, ok, "else branch of outer ternary should itself be a ternary")
}

func TestParseCompoundAssignmentDesugarsToBinary(t *testing.T) {
	stmts, _ := parseSrc(t, `x += 1;`)
	es := stmts[0].(*ast.ExprStmt)
	assign, ok := es.Expr.(*ast.Assignment)
	require.True(t, ok)
	bin, ok := assign.Value.(*ast.Binary)
	require.True(t, ok)
	require.Equal(t, "+", bin.Op.Lexeme)
}

func TestParseIndexedAssignmentRejectsOtherCompoundOps(t *testing.T) {
	_, p := parseSrc(t, `a[0] *= 2;`)
	require.True(t, p.hasError)
}

func TestParseTypeCastVsGrouping(t *testing.T) {
	stmts, p := parseSrc(t, `var a = (int) x; var b = (x + 1);`)
	require.False(t, p.hasError)
	a := stmts[0].(*ast.VarDecl)
	_, ok := a.Init.(*ast.TypeCast)
	require.True(t, ok)
	b := stmts[1].(*ast.VarDecl)
	_, ok = b.Init.(*ast.Grouping)
	require.True(t, ok)
}

func TestParseSliceIndexSuffix(t *testing.T) {
	stmts, p := parseSrc(t, `var a = list[1:2];`)
	require.False(t, p.hasError)
	decl := stmts[0].(*ast.VarDecl)
	idx, ok := decl.Init.(*ast.Index)
	require.True(t, ok)
	require.True(t, idx.HasColon)
}

func TestParseCallArgumentCapErrors(t *testing.T) {
	args := ""
	for i := 0; i < 64; i++ {
		if i > 0 {
			args += ","
		}
		args += "1"
	}
	_, p := parseSrc(t, `f(`+args+`);`)
	require.True(t, p.hasError)
}

func TestParseRerailRecoversAtNextLine(t *testing.T) {
	stmts, p := parseSrc(t, "var x = ;\nprint(1);")
	require.True(t, p.hasError)
	// Recovery should still yield the second, well-formed statement.
	require.NotEmpty(t, stmts)
	last := stmts[len(stmts)-1]
	es, ok := last.(*ast.ExprStmt)
	require.True(t, ok)
	_, ok = es.Expr.(*ast.Call)
	require.True(t, ok)
}

func TestParseSwitchFallthroughStructure(t *testing.T) {
	stmts, p := parseSrc(t, `switch(x) { case 1: print(1); default: print(9); }`)
	require.False(t, p.hasError)
	sw := stmts[0].(*ast.Switch)
	require.Len(t, sw.Cases, 1)
	require.NotNil(t, sw.Default)
}
