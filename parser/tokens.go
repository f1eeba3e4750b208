package parser

import (
	"github.com/shahdamer/My-Interpreters-Project/lang"
)

const eof = 0

// Token kinds produced by the lexer. Both surface languages share one
// token set; the parser decides which subset is legal in each mode.
const (
	IDENTIFIER = iota + 1
	INT_LITERAL
	BOOL_LITERAL
	IF
	THEN
	ELSE
	LET
	LETFUN
	LETREC
	FUN
	IN
	NOT
	AND
	OR
	MOD
	INT
	BOOL
	PLUS
	MINUS
	MUL
	DIV
	LT
	GT
	ASSIGN
	ARROW
	LPAREN
	RPAREN
	COLON
)

var tokenNames = map[int]string{
	eof:          "EOF",
	IDENTIFIER:   "IDENTIFIER",
	INT_LITERAL:  "INT_LITERAL",
	BOOL_LITERAL: "BOOL_LITERAL",
	IF:           "'if'",
	THEN:         "'then'",
	ELSE:         "'else'",
	LET:          "'let'",
	LETFUN:       "'letfun'",
	LETREC:       "'letrec'",
	FUN:          "'fun'",
	IN:           "'in'",
	NOT:          "'not'",
	AND:          "'and'",
	OR:           "'or'",
	MOD:          "'mod'",
	INT:          "'int'",
	BOOL:         "'bool'",
	PLUS:         "'+'",
	MINUS:        "'-'",
	MUL:          "'*'",
	DIV:          "'/'",
	LT:           "'<'",
	GT:           "'>'",
	ASSIGN:       "'='",
	ARROW:        "'->'",
	LPAREN:       "'('",
	RPAREN:       "')'",
	COLON:        "':'",
}

// TokenString returns a printable name for a token kind.
func TokenString(tok int) string {
	if name, ok := tokenNames[tok]; ok {
		return name
	}
	return "UNKNOWN"
}

// FunSymType is the semantic value a lexed token carries into the parser.
type FunSymType struct {
	expr lang.Expr // literal and identifier tokens arrive pre-built
	sval string    // raw text for keywords and operators
	pos  int
	end  int
}

func newNodeInfo(start, end int) lang.NodeInfo {
	return lang.NewNodeInfo(start, end)
}

func newIdentifierExpr(name string, start, end int) *lang.IdentifierExpr {
	out := &lang.IdentifierExpr{Name: name}
	out.NodeInfo = newNodeInfo(start, end)
	return out
}

func newLiteralExpr(value lang.Value, start, end int) *lang.LiteralExpr {
	out := &lang.LiteralExpr{Value: value}
	out.NodeInfo = newNodeInfo(start, end)
	return out
}
