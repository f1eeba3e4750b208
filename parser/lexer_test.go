package parser

import (
	"strings"
	"testing"

	"github.com/shahdamer/My-Interpreters-Project/lang"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper struct for expected token properties
type expectedToken struct {
	tok        int    // Token type (e.g., IDENTIFIER, INT_LITERAL, LET)
	text       string // Raw token text as scanned by lexer
	startPos   int    // Expected start byte offset
	endPos     int    // Expected end byte offset
	startLine  int    // Expected start line
	startCol   int    // Expected start column
	literalVal *lang.Value
	identName  string
}

func runLexerTest(t *testing.T, input string, expectedTokens []expectedToken) {
	t.Helper()
	lexer := NewLexer(strings.NewReader(input))
	lval := &FunSymType{}

	for i, exp := range expectedTokens {
		tok := lexer.Lex(lval)
		tokenStartLine, tokenStartCol := lexer.Position()

		expTokStr := TokenString(exp.tok)
		assert.Equal(t, exp.tok, tok, "Test %d: Token type mismatch. Expected %s, got %s ('%s')", i, expTokStr, TokenString(tok), lexer.Text())
		assert.Equal(t, exp.text, lexer.Text(), "Test %d: Token text mismatch for %s.", i, expTokStr)
		assert.Equal(t, exp.startPos, lexer.Pos(), "Test %d: Token startPos mismatch for %s.", i, expTokStr)
		assert.Equal(t, exp.endPos, lexer.End(), "Test %d: Token endPos mismatch for %s.", i, expTokStr)
		assert.Equal(t, exp.startLine, tokenStartLine, "Test %d: Token startLine mismatch for %s.", i, expTokStr)
		assert.Equal(t, exp.startCol, tokenStartCol, "Test %d: Token startCol mismatch for %s.", i, expTokStr)

		if exp.literalVal != nil {
			litExpr, ok := lval.expr.(*lang.LiteralExpr)
			require.True(t, ok, "Test %d: Expected LiteralExpr for token %s, got %T", i, expTokStr, lval.expr)
			assert.Equal(t, exp.literalVal.Tag, litExpr.Value.Tag, "Test %d: Literal tag mismatch for %s.", i, expTokStr)
			assert.Equal(t, exp.literalVal.Value, litExpr.Value.Value, "Test %d: Literal value mismatch for %s.", i, expTokStr)
			assert.Equal(t, exp.startPos, litExpr.Pos(), "Test %d: LiteralExpr startPos mismatch for %s.", i, expTokStr)
			assert.Equal(t, exp.endPos, litExpr.End(), "Test %d: LiteralExpr endPos mismatch for %s.", i, expTokStr)
		}
		if exp.identName != "" {
			identExpr, ok := lval.expr.(*lang.IdentifierExpr)
			require.True(t, ok, "Test %d: Expected IdentifierExpr for token %s, got %T", i, expTokStr, lval.expr)
			assert.Equal(t, exp.identName, identExpr.Name, "Test %d: Identifier name mismatch for %s.", i, expTokStr)
			assert.Equal(t, exp.startPos, identExpr.Pos(), "Test %d: IdentifierExpr startPos mismatch for %s.", i, expTokStr)
			assert.Equal(t, exp.endPos, identExpr.End(), "Test %d: IdentifierExpr endPos mismatch for %s.", i, expTokStr)
		}
	}

	finalTok := lexer.Lex(lval)
	assert.Equal(t, eof, finalTok, "Expected EOF after all tokens, got %s ('%s')", TokenString(finalTok), lexer.Text())
	assert.NoError(t, lexer.lastError, "Expected no lexer error at the end")
}

func litInt(v int64) *lang.Value { out := lang.IntValue(v); return &out }
func litBool(v bool) *lang.Value { out := lang.BoolValue(v); return &out }

func TestLexerKeywordsAndIdentifiers(t *testing.T) {
	input := "let foo in letfun fact letrec fun _x1 if then else"
	expected := []expectedToken{
		{LET, "let", 0, 3, 1, 1, nil, ""},
		{IDENTIFIER, "foo", 4, 7, 1, 5, nil, "foo"},
		{IN, "in", 8, 10, 1, 9, nil, ""},
		{LETFUN, "letfun", 11, 17, 1, 12, nil, ""},
		{IDENTIFIER, "fact", 18, 22, 1, 19, nil, "fact"},
		{LETREC, "letrec", 23, 29, 1, 24, nil, ""},
		{FUN, "fun", 30, 33, 1, 31, nil, ""},
		{IDENTIFIER, "_x1", 34, 37, 1, 35, nil, "_x1"},
		{IF, "if", 38, 40, 1, 39, nil, ""},
		{THEN, "then", 41, 45, 1, 42, nil, ""},
		{ELSE, "else", 46, 50, 1, 47, nil, ""},
	}
	runLexerTest(t, input, expected)
}

func TestLexerLiterals(t *testing.T) {
	input := "123 0 true false"
	expected := []expectedToken{
		{INT_LITERAL, "123", 0, 3, 1, 1, litInt(123), ""},
		{INT_LITERAL, "0", 4, 5, 1, 5, litInt(0), ""},
		{BOOL_LITERAL, "true", 6, 10, 1, 7, litBool(true), ""},
		{BOOL_LITERAL, "false", 11, 16, 1, 12, litBool(false), ""},
	}
	runLexerTest(t, input, expected)
}

func TestLexerOperatorsAndPunctuation(t *testing.T) {
	input := "+ - * / mod < > and or not = -> ( ) :"
	expected := []expectedToken{
		{PLUS, "+", 0, 1, 1, 1, nil, ""},
		{MINUS, "-", 2, 3, 1, 3, nil, ""},
		{MUL, "*", 4, 5, 1, 5, nil, ""},
		{DIV, "/", 6, 7, 1, 7, nil, ""},
		{MOD, "mod", 8, 11, 1, 9, nil, ""},
		{LT, "<", 12, 13, 1, 13, nil, ""},
		{GT, ">", 14, 15, 1, 15, nil, ""},
		{AND, "and", 16, 19, 1, 17, nil, ""},
		{OR, "or", 20, 22, 1, 21, nil, ""},
		{NOT, "not", 23, 26, 1, 24, nil, ""},
		{ASSIGN, "=", 27, 28, 1, 28, nil, ""},
		{ARROW, "->", 29, 31, 1, 30, nil, ""},
		{LPAREN, "(", 32, 33, 1, 33, nil, ""},
		{RPAREN, ")", 34, 35, 1, 35, nil, ""},
		{COLON, ":", 36, 37, 1, 37, nil, ""},
	}
	runLexerTest(t, input, expected)
}

func TestLexerTypeKeywords(t *testing.T) {
	input := "int bool"
	expected := []expectedToken{
		{INT, "int", 0, 3, 1, 1, nil, ""},
		{BOOL, "bool", 4, 7, 1, 5, nil, ""},
	}
	runLexerTest(t, input, expected)
}

func TestLexerComments(t *testing.T) {
	input := "1 // line comment\n2 /* block\ncomment */ 3"
	expected := []expectedToken{
		{INT_LITERAL, "1", 0, 1, 1, 1, litInt(1), ""},
		{INT_LITERAL, "2", 18, 19, 2, 1, litInt(2), ""},
		{INT_LITERAL, "3", 40, 41, 3, 12, litInt(3), ""},
	}
	runLexerTest(t, input, expected)
}

func TestLexerArrowVsMinus(t *testing.T) {
	input := "x-1 x -> y"
	expected := []expectedToken{
		{IDENTIFIER, "x", 0, 1, 1, 1, nil, "x"},
		{MINUS, "-", 1, 2, 1, 2, nil, ""},
		{INT_LITERAL, "1", 2, 3, 1, 3, litInt(1), ""},
		{IDENTIFIER, "x", 4, 5, 1, 5, nil, "x"},
		{ARROW, "->", 6, 8, 1, 7, nil, ""},
		{IDENTIFIER, "y", 9, 10, 1, 10, nil, "y"},
	}
	runLexerTest(t, input, expected)
}

func TestLexerUnexpectedCharacter(t *testing.T) {
	lexer := NewLexer(strings.NewReader("1 @ 2"))
	lval := &FunSymType{}

	tok := lexer.Lex(lval)
	assert.Equal(t, INT_LITERAL, tok)

	tok = lexer.Lex(lval)
	assert.Equal(t, eof, tok)
	require.Error(t, lexer.lastError)
	assert.Contains(t, lexer.lastError.Error(), "unexpected character")
}
