package parser

import (
	"fmt"
	"io"
	"strings"

	gfn "github.com/panyam/goutils/fn"
	"github.com/shahdamer/My-Interpreters-Project/lang"
)

// LLParser is a recursive-descent parser over the shared token stream.
// Typed selects the typed surface grammar: parameter and let annotations
// become mandatory, and the untyped-only operators ('mod', '>') are
// still lexed but rejected downstream by the checker.
type LLParser struct {
	lexer            *Lexer
	peekedTokenValue *FunSymType
	peekedToken      int

	Typed        bool
	PanicOnError bool
	Errors       []error
}

func NewLLParser(lexer *Lexer, typed bool) *LLParser {
	return &LLParser{lexer: lexer, Typed: typed}
}

// Parse reads a single complete expression from r. Trailing input after
// the expression is an error.
func Parse(r io.Reader, typed bool) (lang.Expr, error) {
	p := NewLLParser(NewLexer(r), typed)
	expr, err := p.ParseExpr()
	if err != nil {
		return nil, err
	}
	if tok := p.PeekToken(); tok != eof {
		return nil, p.Errorf("unexpected trailing input: %s (%s)", TokenString(tok), p.lexer.Text())
	}
	return expr, nil
}

func (p *LLParser) Errorf(format string, args ...any) error {
	s := fmt.Sprintf(format, args...)
	p.lexer.Error(s)
	if p.PanicOnError {
		panic(p.lexer.lastError)
	}
	p.Errors = append(p.Errors, p.lexer.lastError)
	return p.lexer.lastError
}

func (p *LLParser) Advance() int {
	p.PeekToken()
	last := p.peekedToken
	p.peekedTokenValue = nil
	p.peekedToken = -1
	return last
}

func (p *LLParser) PeekToken() int {
	if p.peekedTokenValue == nil {
		p.peekedTokenValue = &FunSymType{}
		p.peekedToken = p.lexer.Lex(p.peekedTokenValue)
		p.peekedTokenValue.pos = p.lexer.Pos()
		p.peekedTokenValue.end = p.lexer.End()
	}
	return p.peekedToken
}

// Expect checks if the current peeked token is one of the expected tokens.
// It does NOT advance.
func (p *LLParser) Expect(tokensIn ...int) (foundToken int, err error) {
	peekedToken := p.PeekToken()
	for _, tok := range tokensIn {
		if tok == peekedToken {
			return tok, nil
		}
	}
	expectedStrings := gfn.Map(tokensIn, func(t int) string { return TokenString(t) })
	var errMsg string
	if len(tokensIn) == 1 {
		errMsg = fmt.Sprintf("expected %s, found: %s", TokenString(tokensIn[0]), TokenString(peekedToken))
	} else {
		errMsg = fmt.Sprintf("expected one of: [%s], found: %s", strings.Join(expectedStrings, ", "), TokenString(peekedToken))
	}
	if p.lexer.Text() != "" {
		errMsg = fmt.Sprintf("%s (%s)", errMsg, p.lexer.Text())
	}
	return -1, p.Errorf("%s", errMsg)
}

// AdvanceIf expects one of the given tokens and advances if found.
// Returns the matched token type and its semantic value.
func (p *LLParser) AdvanceIf(tokensIn ...int) (foundToken int, tokenValue *FunSymType, err error) {
	if _, err = p.Expect(tokensIn...); err != nil {
		return -1, nil, err
	}
	foundToken = p.peekedToken
	tokenValue = p.peekedTokenValue
	p.Advance()
	return
}

func (p *LLParser) ParseIdentifier() (out *lang.IdentifierExpr, err error) {
	_, tokenVal, err := p.AdvanceIf(IDENTIFIER)
	if err != nil {
		return nil, err
	}
	return tokenVal.expr.(*lang.IdentifierExpr), nil
}

// --- Expression Grammar ---
//
// Precedence, loosest to tightest:
//
//	if/let/letfun/letrec/fun forms (right-delimited, extend to the end)
//	and, or              (left-assoc)
//	<, >                 (left-assoc)
//	+, -                 (left-assoc)
//	*, /, mod            (left-assoc)
//	not                  (prefix)
//	application          (left-assoc juxtaposition)
//	literals, identifiers, parens

// ParseExpr parses a full expression at the loosest precedence level.
func (p *LLParser) ParseExpr() (lang.Expr, error) {
	switch p.PeekToken() {
	case IF:
		return p.ParseIfExpr()
	case FUN:
		return p.ParseFuncExpr()
	case LET:
		return p.ParseLetExpr()
	case LETFUN, LETREC:
		return p.ParseLetRecExpr()
	default:
		return p.ParseOrExpr()
	}
}

func (p *LLParser) ParseIfExpr() (lang.Expr, error) {
	_, ifTok, err := p.AdvanceIf(IF)
	if err != nil {
		return nil, err
	}
	cond, err := p.ParseExpr()
	if err != nil {
		return nil, err
	}
	if _, _, err = p.AdvanceIf(THEN); err != nil {
		return nil, err
	}
	thenExpr, err := p.ParseExpr()
	if err != nil {
		return nil, err
	}
	if _, _, err = p.AdvanceIf(ELSE); err != nil {
		return nil, err
	}
	elseExpr, err := p.ParseExpr()
	if err != nil {
		return nil, err
	}
	out := &lang.IfExpr{Condition: cond, Then: thenExpr, Else: elseExpr}
	out.NodeInfo = newNodeInfo(ifTok.pos, elseExpr.End())
	return out, nil
}

func (p *LLParser) ParseFuncExpr() (lang.Expr, error) {
	_, funTok, err := p.AdvanceIf(FUN)
	if err != nil {
		return nil, err
	}
	param, paramType, err := p.ParseParam()
	if err != nil {
		return nil, err
	}
	if _, _, err = p.AdvanceIf(ARROW); err != nil {
		return nil, err
	}
	body, err := p.ParseExpr()
	if err != nil {
		return nil, err
	}
	out := &lang.FuncExpr{Param: param, ParamType: paramType, Body: body}
	out.NodeInfo = newNodeInfo(funTok.pos, body.End())
	return out, nil
}

func (p *LLParser) ParseLetExpr() (lang.Expr, error) {
	_, letTok, err := p.AdvanceIf(LET)
	if err != nil {
		return nil, err
	}
	name, err := p.ParseIdentifier()
	if err != nil {
		return nil, err
	}
	var declaredType *lang.Type
	if p.Typed {
		if _, _, err = p.AdvanceIf(COLON); err != nil {
			return nil, err
		}
		if declaredType, err = p.ParseType(); err != nil {
			return nil, err
		}
	} else if p.PeekToken() == COLON {
		return nil, p.Errorf("type annotations are not allowed in the untyped language")
	}
	if _, _, err = p.AdvanceIf(ASSIGN); err != nil {
		return nil, err
	}
	value, err := p.ParseExpr()
	if err != nil {
		return nil, err
	}
	if _, _, err = p.AdvanceIf(IN); err != nil {
		return nil, err
	}
	body, err := p.ParseExpr()
	if err != nil {
		return nil, err
	}
	out := &lang.LetExpr{Name: name, DeclaredType: declaredType, Value: value, Body: body}
	out.NodeInfo = newNodeInfo(letTok.pos, body.End())
	return out, nil
}

func (p *LLParser) ParseLetRecExpr() (lang.Expr, error) {
	_, recTok, err := p.AdvanceIf(LETFUN, LETREC)
	if err != nil {
		return nil, err
	}
	funcName, err := p.ParseIdentifier()
	if err != nil {
		return nil, err
	}
	param, paramType, err := p.ParseParam()
	if err != nil {
		return nil, err
	}
	if _, _, err = p.AdvanceIf(ASSIGN); err != nil {
		return nil, err
	}
	funcBody, err := p.ParseExpr()
	if err != nil {
		return nil, err
	}
	if _, _, err = p.AdvanceIf(IN); err != nil {
		return nil, err
	}
	body, err := p.ParseExpr()
	if err != nil {
		return nil, err
	}
	out := &lang.LetRecExpr{FuncName: funcName, Param: param, ParamType: paramType, FuncBody: funcBody, Body: body}
	out.NodeInfo = newNodeInfo(recTok.pos, body.End())
	return out, nil
}

// ParseParam parses a function parameter. The typed grammar requires the
// parenthesized annotated form `(x: T)`; the untyped grammar takes a
// bare identifier.
func (p *LLParser) ParseParam() (*lang.IdentifierExpr, *lang.Type, error) {
	if !p.Typed {
		name, err := p.ParseIdentifier()
		return name, nil, err
	}
	if _, _, err := p.AdvanceIf(LPAREN); err != nil {
		return nil, nil, err
	}
	name, err := p.ParseIdentifier()
	if err != nil {
		return nil, nil, err
	}
	if _, _, err := p.AdvanceIf(COLON); err != nil {
		return nil, nil, err
	}
	paramType, err := p.ParseType()
	if err != nil {
		return nil, nil, err
	}
	if _, _, err := p.AdvanceIf(RPAREN); err != nil {
		return nil, nil, err
	}
	return name, paramType, nil
}

// ParseType parses a type expression. Arrows associate to the right, so
// `int -> int -> bool` reads as `int -> (int -> bool)`.
func (p *LLParser) ParseType() (*lang.Type, error) {
	var domain *lang.Type
	switch p.PeekToken() {
	case INT:
		p.Advance()
		domain = lang.IntType
	case BOOL:
		p.Advance()
		domain = lang.BoolType
	case LPAREN:
		p.Advance()
		inner, err := p.ParseType()
		if err != nil {
			return nil, err
		}
		if _, _, err = p.AdvanceIf(RPAREN); err != nil {
			return nil, err
		}
		domain = inner
	default:
		_, err := p.Expect(INT, BOOL, LPAREN)
		return nil, err
	}
	if p.PeekToken() == ARROW {
		p.Advance()
		codomain, err := p.ParseType()
		if err != nil {
			return nil, err
		}
		return lang.FuncType(domain, codomain), nil
	}
	return domain, nil
}

var binaryOps = map[int]lang.Op{
	PLUS:  lang.OpAdd,
	MINUS: lang.OpSub,
	MUL:   lang.OpMul,
	DIV:   lang.OpDiv,
	MOD:   lang.OpMod,
	LT:    lang.OpLt,
	GT:    lang.OpGt,
	AND:   lang.OpAnd,
	OR:    lang.OpOr,
}

// parseBinaryLevel builds one left-associative precedence tier.
func (p *LLParser) parseBinaryLevel(operand func() (lang.Expr, error), tokens ...int) (lang.Expr, error) {
	left, err := operand()
	if err != nil {
		return nil, err
	}
	for {
		tok := p.PeekToken()
		matched := false
		for _, candidate := range tokens {
			if tok == candidate {
				matched = true
				break
			}
		}
		if !matched {
			return left, nil
		}
		p.Advance()
		right, err := operand()
		if err != nil {
			return nil, err
		}
		out := &lang.BinaryExpr{Left: left, Operator: binaryOps[tok], Right: right}
		out.NodeInfo = newNodeInfo(left.Pos(), right.End())
		left = out
	}
}

func (p *LLParser) ParseOrExpr() (lang.Expr, error) {
	return p.parseBinaryLevel(p.ParseRelExpr, AND, OR)
}

func (p *LLParser) ParseRelExpr() (lang.Expr, error) {
	return p.parseBinaryLevel(p.ParseAddExpr, LT, GT)
}

func (p *LLParser) ParseAddExpr() (lang.Expr, error) {
	return p.parseBinaryLevel(p.ParseMulExpr, PLUS, MINUS)
}

func (p *LLParser) ParseMulExpr() (lang.Expr, error) {
	return p.parseBinaryLevel(p.ParseNotExpr, MUL, DIV, MOD)
}

// ParseNotExpr handles the prefix 'not'. It binds looser than
// application, so `not f x` negates the call result.
func (p *LLParser) ParseNotExpr() (lang.Expr, error) {
	if p.PeekToken() != NOT {
		return p.ParseAppExpr()
	}
	_, notTok, err := p.AdvanceIf(NOT)
	if err != nil {
		return nil, err
	}
	operand, err := p.ParseNotExpr()
	if err != nil {
		return nil, err
	}
	out := &lang.UnaryExpr{Operator: lang.OpNot, Operand: operand}
	out.NodeInfo = newNodeInfo(notTok.pos, operand.End())
	return out, nil
}

// ParseAppExpr parses juxtaposition application, left-associative:
// `f a b` is `(f a) b`.
func (p *LLParser) ParseAppExpr() (lang.Expr, error) {
	fn, err := p.ParsePrimary()
	if err != nil {
		return nil, err
	}
	for p.canStartPrimary() {
		arg, err := p.ParsePrimary()
		if err != nil {
			return nil, err
		}
		out := &lang.CallExpr{Function: fn, Arg: arg}
		out.NodeInfo = newNodeInfo(fn.Pos(), arg.End())
		fn = out
	}
	return fn, nil
}

func (p *LLParser) canStartPrimary() bool {
	switch p.PeekToken() {
	case INT_LITERAL, BOOL_LITERAL, IDENTIFIER, LPAREN:
		return true
	}
	return false
}

func (p *LLParser) ParsePrimary() (lang.Expr, error) {
	tok, tokenVal, err := p.AdvanceIf(INT_LITERAL, BOOL_LITERAL, IDENTIFIER, LPAREN)
	if err != nil {
		return nil, err
	}
	if tok == LPAREN {
		inner, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		if _, _, err = p.AdvanceIf(RPAREN); err != nil {
			return nil, err
		}
		return inner, nil
	}
	return tokenVal.expr, nil
}
