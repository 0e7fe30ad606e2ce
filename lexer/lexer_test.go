package lexer

import (
	"testing"

	"github.com/stretchr/testify/require"

	"cflat/token"
)

func tokenTypes(toks []token.Token) []token.Type {
	types := make([]token.Type, 0, len(toks))
	for _, t := range toks {
		types = append(types, t.Type)
	}
	return types
}

func TestTokenizeKeywordsAndPunctuation(t *testing.T) {
	toks := New(`func add(a, b) { return a + b; }`, "t.cflat").Tokenize()
	require.Equal(t, []token.Type{
		token.KW_FUNC, token.IDENTIFIER, token.LPAREN, token.IDENTIFIER, token.COMMA,
		token.IDENTIFIER, token.RPAREN, token.LBRACE, token.KW_RETURN, token.IDENTIFIER,
		token.OPERATOR, token.IDENTIFIER, token.SEMICOLON, token.RBRACE, token.EOF,
	}, tokenTypes(toks))
}

func TestTokenizeStringNoEscapes(t *testing.T) {
	toks := New(`"hello\nworld"`, "t.cflat").Tokenize()
	require.Equal(t, token.STRING, toks[0].Type)
	require.Equal(t, `hello\nworld`, toks[0].Str)
}

func TestTokenizeCharLiteralAsOneCharString(t *testing.T) {
	toks := New(`'x'`, "t.cflat").Tokenize()
	require.Equal(t, token.STRING, toks[0].Type)
	require.Equal(t, "x", toks[0].Str)
}

func TestTokenizeNumberRunConsumesTrailingLetters(t *testing.T) {
	toks := New(`123abc`, "t.cflat").Tokenize()
	require.Equal(t, token.INT, toks[0].Type)
	require.Equal(t, "123abc", toks[0].Lexeme)
}

func TestTokenizeFloatRequiresDot(t *testing.T) {
	toks := New(`3.14`, "t.cflat").Tokenize()
	require.Equal(t, token.FLOAT, toks[0].Type)
	require.Equal(t, "3.14", toks[0].Lexeme)
}

func TestTokenizeMaximalOperatorRun(t *testing.T) {
	toks := New(">>>= <<= += !=", "t.cflat").Tokenize()
	require.Equal(t, []string{">>>=", "<<=", "+=", "!="}, []string{
		toks[0].Lexeme, toks[1].Lexeme, toks[2].Lexeme, toks[3].Lexeme,
	})
}

func TestTokenizeLineTracking(t *testing.T) {
	toks := New("a;\nb;\nc;", "t.cflat").Tokenize()
	var lines []int
	for _, tk := range toks {
		if tk.Type == token.IDENTIFIER {
			lines = append(lines, tk.Line)
		}
	}
	require.Equal(t, []int{1, 2, 3}, lines)
}

func TestTokenizeDropsUnknownCharacters(t *testing.T) {
	toks := New("a @ b", "t.cflat").Tokenize()
	require.Equal(t, []token.Type{token.IDENTIFIER, token.IDENTIFIER, token.EOF}, tokenTypes(toks))
}

func TestTokenizeSkipsSpacesAndTabs(t *testing.T) {
	toks := New("a \t b", "t.cflat").Tokenize()
	require.Equal(t, []token.Type{token.IDENTIFIER, token.IDENTIFIER, token.EOF}, tokenTypes(toks))
}
