package eval_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"cflat/builtin"
	"cflat/eval"
	"cflat/lexer"
	"cflat/parser"
	"cflat/resolver"
)

// run lexes, parses, resolves, and evaluates src, returning everything
// written to stdout. Any parse or runtime error fails the test
// immediately via require, since every case below is expected to run
// clean end to end.
func run(t *testing.T, src string) string {
	t.Helper()
	toks := lexer.New(src, "t.cflat").Tokenize()
	p := parser.New(toks, "t.cflat")
	stmts, hadErr := p.Parse()
	require.False(t, hadErr, "parse errors: %v", p.Errors)

	depths, errs := resolver.New().Resolve("t.cflat", stmts)
	require.Empty(t, errs)

	var out bytes.Buffer
	e := eval.New(&out, bytes.NewReader(nil))
	builtin.Install(e)
	e.SetDepths(depths)
	e.Load(stmts)
	require.NoError(t, e.Run(stmts))
	return out.String()
}

// runErr is like run but returns the runtime error instead of failing
// the test on one, for cases that are expected to fail at evaluation.
func runErr(t *testing.T, src string) error {
	t.Helper()
	toks := lexer.New(src, "t.cflat").Tokenize()
	p := parser.New(toks, "t.cflat")
	stmts, hadErr := p.Parse()
	require.False(t, hadErr, "parse errors: %v", p.Errors)

	depths, errs := resolver.New().Resolve("t.cflat", stmts)
	require.Empty(t, errs)

	var out bytes.Buffer
	e := eval.New(&out, bytes.NewReader(nil))
	builtin.Install(e)
	e.SetDepths(depths)
	e.Load(stmts)
	return e.Run(stmts)
}

func TestRedeclarationInSameScopeErrors(t *testing.T) {
	err := runErr(t, `var x = 1; var x = 2;`)
	require.Error(t, err)
}

func TestRedeclarationAcrossNestedScopeIsFine(t *testing.T) {
	out := run(t, `var x = 1; { var x = 2; print(x); }`)
	require.Equal(t, "2", out)
}

func TestStringOperandErrorsOnNonConcatOperator(t *testing.T) {
	err := runErr(t, `print("a" - "b");`)
	require.Error(t, err)
}

func TestListCompoundAssignInsertsRatherThanOverwrites(t *testing.T) {
	out := run(t, `arr a = {1,2,3}; a[1] += 9; println(length(a)); println(a[1]); println(a[2]);`)
	require.Equal(t, "4\n9\n2\n", out)
}

func TestHelloWorld(t *testing.T) {
	out := run(t, `void main() { print("hello"); } main();`)
	require.Equal(t, "hello", out)
}

func TestFibonacciRecursion(t *testing.T) {
	out := run(t, `func fib(n){ if(n<2) return n; return fib(n-1)+fib(n-2); } print(fib(10));`)
	require.Equal(t, "55", out)
}

func TestLexicalShadowing(t *testing.T) {
	out := run(t, `var x = 1; { var x = 2; print(x); } print(x);`)
	require.Equal(t, "21", out)
}

func TestMultiLevelBreak(t *testing.T) {
	out := run(t, `var i=0; while(1){ while(1){ break 2; } i=1; } print(i);`)
	require.Equal(t, "0", out)
}

func TestSliceAndMutate(t *testing.T) {
	out := run(t, `arr a = {10,20,30,40}; print(length(a)); yeet(a,1); print(a[0]); print(a[1]); print(length(a));`)
	require.Equal(t, "410303", out)
}

func TestSwitchFallthrough(t *testing.T) {
	out := run(t, `switch(2){ case 1: print("a"); case 2: print("b"); case 3: print("c"); default: print("d"); }`)
	require.Equal(t, "bcd", out)
}

func TestSwitchBreakOptsOut(t *testing.T) {
	out := run(t, `switch(2){ case 1: print("a"); case 2: { print("b"); break; } case 3: print("c"); default: print("d"); }`)
	require.Equal(t, "b", out)
}

func TestListAppendMutatesSharedHandle(t *testing.T) {
	out := run(t, `
		arr a = {1,2};
		func grow(b) { b = b + 3; return 0; }
		grow(a);
		println(length(a));
		println(a[2]);
	`)
	require.Equal(t, "3\n3\n", out)
}

func TestStringIndexAssignSplices(t *testing.T) {
	out := run(t, `var s = "cat"; s[0] = "b"; print(s);`)
	require.Equal(t, "bat", out)
}

func TestPostfixReturnsPreIncrementValue(t *testing.T) {
	out := run(t, `var x = 5; println(x++); println(x);`)
	require.Equal(t, "5\n6\n", out)
}

func TestTernaryIsRightAssociative(t *testing.T) {
	out := run(t, `print(true ? 1 : false ? 2 : 3);`)
	require.Equal(t, "1", out)
}

func TestIntTruthinessIsOddOnly(t *testing.T) {
	out := run(t, `if (4) { print("truthy"); } else { print("falsy"); }`)
	require.Equal(t, "falsy", out)
}

func TestForDesugarsToWhile(t *testing.T) {
	out := run(t, `for (var i = 0; i < 3; i = i + 1) { print(i); }`)
	require.Equal(t, "012", out)
}

func TestInputReadsSuccessiveLinesFromOneReader(t *testing.T) {
	toks := lexer.New(`println(input()); println(input());`, "t.cflat").Tokenize()
	p := parser.New(toks, "t.cflat")
	stmts, hadErr := p.Parse()
	require.False(t, hadErr)
	depths, errs := resolver.New().Resolve("t.cflat", stmts)
	require.Empty(t, errs)

	var out bytes.Buffer
	e := eval.New(&out, bytes.NewReader([]byte("first\nsecond\n")))
	builtin.Install(e)
	e.SetDepths(depths)
	e.Load(stmts)
	require.NoError(t, e.Run(stmts))
	require.Equal(t, "first\nsecond\n", out.String())
}

func TestVoidAndValueFunctionsAreDisjointTables(t *testing.T) {
	out := run(t, `
		func area(w, h) { return w * h; }
		void area(w, h) { print(w + h); }
		area(2, 3);
		print(area(2, 3));
	`)
	require.Equal(t, "56", out)
}
