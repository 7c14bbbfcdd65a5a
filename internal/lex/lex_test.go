package lex

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func tokenize(t *testing.T, src string) []Token {
	t.Helper()
	stream, err := New(src).Tokenize()
	if err != nil {
		t.Fatalf("Tokenize(%q): %v", src, err)
	}
	var toks []Token
	for {
		tok := stream.Next()
		toks = append(toks, tok)
		if tok.Class() == EndOfText {
			break
		}
	}
	return toks
}

func Test_Tokenize_keywordsAndIdentifiers(t *testing.T) {
	assert := assert.New(t)

	toks := tokenize(t, "int x_1 struct return")
	assert.Equal(ClassType, toks[0].Class())
	assert.Equal(ClassID, toks[1].Class())
	assert.Equal("x_1", toks[1].Lexeme())
	assert.Equal(ClassStruct, toks[2].Class())
	assert.Equal(ClassReturn, toks[3].Class())
	assert.Equal(EndOfText, toks[4].Class())
}

func Test_Tokenize_multiCharOperatorsGreedy(t *testing.T) {
	assert := assert.New(t)

	toks := tokenize(t, "a->b ++c d--e<=f")
	var lexemes []string
	for _, tok := range toks {
		lexemes = append(lexemes, tok.Lexeme())
	}
	assert.Contains(lexemes, "->")
	assert.Contains(lexemes, "++")
	assert.Contains(lexemes, "--")
	assert.Contains(lexemes, "<=")
}

func Test_Tokenize_nestedBlockComments(t *testing.T) {
	assert := assert.New(t)

	toks := tokenize(t, "a /* outer /* inner */ still outer */ b")
	assert.Equal("a", toks[0].Lexeme())
	assert.Equal("b", toks[1].Lexeme())
	assert.Equal(EndOfText, toks[2].Class())
}

func Test_Tokenize_unterminatedCommentIsError(t *testing.T) {
	assert := assert.New(t)

	_, err := New("a /* never closed").Tokenize()
	assert.Error(err)
}

func Test_Tokenize_unmatchedCommentCloseIsError(t *testing.T) {
	assert := assert.New(t)

	_, err := New("a */ b").Tokenize()
	assert.Error(err)
}

func Test_Tokenize_floatLiteralLexesButIsNotIntConst(t *testing.T) {
	assert := assert.New(t)

	toks := tokenize(t, "3.14")
	assert.NotEqual(ClassIntConst, toks[0].Class())
	assert.NotEqual("INTEGER_CONST", toks[0].Class().ID())
}

func Test_Tokenize_stringAndCharLiterals(t *testing.T) {
	assert := assert.New(t)

	toks := tokenize(t, `"hi\n" 'a' '\''`)
	assert.Equal(ClassString, toks[0].Class())
	assert.Equal(`"hi\n"`, toks[0].Lexeme())
	assert.Equal(ClassCharConst, toks[1].Class())
	assert.Equal(ClassCharConst, toks[2].Class())
}

func Test_Tokenize_unterminatedStringIsError(t *testing.T) {
	assert := assert.New(t)

	_, err := New("\"never closed\n").Tokenize()
	assert.Error(err)
}

func Test_Tokenize_illegalCharacterIsError(t *testing.T) {
	assert := assert.New(t)

	_, err := New("int x = 1 @ 2;").Tokenize()
	assert.Error(err)
}

func Test_Tokenize_lineAndColumnTracking(t *testing.T) {
	assert := assert.New(t)

	toks := tokenize(t, "int\nx;")
	// "x" is on line 2, column 1.
	var xTok Token
	for _, tok := range toks {
		if tok.Lexeme() == "x" {
			xTok = tok
		}
	}
	assert.Equal(2, xTok.Line())
	assert.Equal(1, xTok.Column())
}

func Test_IsPunctuator(t *testing.T) {
	assert := assert.New(t)

	assert.True(IsPunctuator("{"))
	assert.True(IsPunctuator(";"))
	assert.False(IsPunctuator("ID"))
	assert.False(IsPunctuator("RETURN"))
}
