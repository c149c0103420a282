package tapec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lexAll(t *testing.T, src string) []token {
	t.Helper()
	l := newLexer([]byte(src))
	var toks []token
	for {
		tok, err := l.next()
		require.NoError(t, err)
		if tok.kind == tokEOF {
			break
		}
		toks = append(toks, tok)
	}
	return toks
}

func TestLexer_Identifiers(t *testing.T) {
	toks := lexAll(t, "foo bar_1 _x")
	require.Len(t, toks, 3)
	for i, want := range []string{"foo", "bar_1", "_x"} {
		assert.Equal(t, tokIdent, toks[i].kind)
		assert.Equal(t, want, toks[i].text)
	}
}

func TestLexer_Integers(t *testing.T) {
	toks := lexAll(t, "0 42 100")
	require.Len(t, toks, 3)
	for i, want := range []int{0, 42, 100} {
		assert.Equal(t, tokInt, toks[i].kind)
		assert.Equal(t, want, toks[i].ival)
	}
}

func TestLexer_CharLiteralEscapes(t *testing.T) {
	toks := lexAll(t, `'a' '\n' '\t' '\\' '\''`)
	require.Len(t, toks, 5)
	want := []int{'a', '\n', '\t', '\\', '\''}
	for i, w := range want {
		assert.Equal(t, tokChar, toks[i].kind)
		assert.Equal(t, w, toks[i].ival)
	}
}

func TestLexer_StringLiteralEscapes(t *testing.T) {
	toks := lexAll(t, `"a\nb\"c"`)
	require.Len(t, toks, 1)
	assert.Equal(t, tokString, toks[0].kind)
	assert.Equal(t, "a\nb\"c", toks[0].text)
}

func TestLexer_PunctuatorsMaximalMunch(t *testing.T) {
	toks := lexAll(t, "+= -= *= /= //= %= == != <= >= // ++ -- < > = + - * / %")
	wants := []string{"+=", "-=", "*=", "/=", "//=", "%=", "==", "!=", "<=", ">=", "//", "++", "--", "<", ">", "=", "+", "-", "*", "/", "%"}
	require.Len(t, toks, len(wants))
	for i, w := range wants {
		assert.Equal(t, w, toks[i].text, "token %d", i)
	}
}

func TestLexer_FloorDivideDistinctFromTwoSlashes(t *testing.T) {
	// A regression check: "//" must lex as one token, not two "/" tokens.
	toks := lexAll(t, "a // b")
	require.Len(t, toks, 3)
	assert.Equal(t, "//", toks[1].text)
}

func TestLexer_UnterminatedCharLiteralErrors(t *testing.T) {
	l := newLexer([]byte(`'a`))
	_, err := l.next()
	assert.Error(t, err)
	var pe ParseError
	assert.ErrorAs(t, err, &pe)
}

func TestLexer_UnterminatedStringLiteralErrors(t *testing.T) {
	l := newLexer([]byte(`"abc`))
	_, err := l.next()
	assert.Error(t, err)
	var pe ParseError
	assert.ErrorAs(t, err, &pe)
}

func TestLexer_UnexpectedCharacterErrors(t *testing.T) {
	l := newLexer([]byte("$"))
	_, err := l.next()
	assert.Error(t, err)
}

func TestLexer_TracksLineAndColumn(t *testing.T) {
	l := newLexer([]byte("a\nbb"))
	tok1, err := l.next()
	require.NoError(t, err)
	assert.Equal(t, 1, tok1.span.Start.Line)

	tok2, err := l.next()
	require.NoError(t, err)
	assert.Equal(t, 2, tok2.span.Start.Line)
	assert.Equal(t, 1, tok2.span.Start.Column)
}
