package parser

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strconv"
	"unicode"

	"github.com/shahdamer/My-Interpreters-Project/lang"
)

// Lexer structure
type Lexer struct {
	lookaheadRunes  []rune
	lookaheadWidths []int
	reader          *bufio.Reader
	buf             bytes.Buffer // Temporary buffer for scanned text
	pos             int          // Current byte offset from the beginning of the input
	lastError       error

	// Position tracking for the current token
	tokenStartPos  int    // Byte offset where the current token started
	tokenStartLine int    // Line number (1-based) where the current token started
	tokenStartCol  int    // Column number (rune-based, 1-based) where the current token started
	tokenText      string // Raw text of the current token

	// Current line and column (rune-based) in the input
	line int
	col  int
}

// NewLexer creates a new lexer instance
func NewLexer(r io.Reader) *Lexer {
	return &Lexer{
		reader: bufio.NewReader(r),
		pos:    0,
		line:   1,
		col:    1,
	}
}

// Error is called by the parser (or lexer itself) on an error.
func (l *Lexer) Error(s string) {
	l.lastError = fmt.Errorf("error at line %d, col %d near '%s': %s", l.tokenStartLine, l.tokenStartCol, l.tokenText, s)
}

// Pos returns the start byte offset of the most recently lexed token.
func (l *Lexer) Pos() int {
	return l.tokenStartPos
}

// End returns the end byte offset (current position) after lexing the most recent token.
func (l *Lexer) End() int {
	return l.pos
}

// Position returns the line and column where the most recent token started.
func (l *Lexer) Position() (line, col int) {
	return l.tokenStartLine, l.tokenStartCol
}

// Text returns the raw text of the most recently lexed token.
func (l *Lexer) Text() string {
	return l.tokenText
}

// --- Rune Reading Helpers (with line/col tracking) ---

func (l *Lexer) read() (r rune, width int) {
	if l.peek() == eof {
		return eof, 0
	}
	r, width = l.lookaheadRunes[0], l.lookaheadWidths[0]
	l.lookaheadRunes, l.lookaheadWidths = l.lookaheadRunes[1:], l.lookaheadWidths[1:]
	l.updatePosition(r, width)
	return r, width
}

func (l *Lexer) updatePosition(r rune, width int) {
	l.pos += width
	if r == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
}

func (l *Lexer) peek() rune {
	if len(l.lookaheadRunes) == 0 {
		r, width, err := l.reader.ReadRune()
		if err != nil {
			return eof
		}
		l.lookaheadRunes = []rune{r}
		l.lookaheadWidths = []int{width}
	}
	return l.lookaheadRunes[0]
}

func (l *Lexer) ensureLookAhead(numchars int) (numread int) {
	for len(l.lookaheadRunes) <= numchars {
		r, width, err := l.reader.ReadRune()
		if err != nil {
			return len(l.lookaheadRunes)
		}
		l.lookaheadRunes = append(l.lookaheadRunes, r)
		l.lookaheadWidths = append(l.lookaheadWidths, width)
		numread += width
	}
	return len(l.lookaheadRunes)
}

func (l *Lexer) hasPrefix(prefix string, consume bool) bool {
	nchars := len(prefix)
	nlookahead := l.ensureLookAhead(nchars)
	if nchars > nlookahead {
		return false
	}

	oldPos := l.pos
	oldCol := l.col
	oldLine := l.line
	for i := 0; i < nchars; i++ {
		if consume {
			l.updatePosition(l.lookaheadRunes[i], l.lookaheadWidths[i])
		}
		if l.lookaheadRunes[i] != rune(prefix[i]) {
			// restore old position
			l.pos = oldPos
			l.col = oldCol
			l.line = oldLine
			return false
		}
	}

	if consume {
		l.lookaheadRunes = l.lookaheadRunes[nchars:]
		l.lookaheadWidths = l.lookaheadWidths[nchars:]
	}
	return true
}

func (l *Lexer) readTill(stop rune, skip bool) (foundeof bool) {
	for {
		r := l.peek()
		if r == eof {
			return true
		}
		if r == stop {
			if skip {
				l.read()
			}
			return false
		}
		l.read()
	}
}

// --- Scanning Functions ---

func (l *Lexer) skipWhitespace() bool {
	for {
		firstChar := l.peek()
		if firstChar == eof {
			return true
		}
		if unicode.IsSpace(firstChar) {
			l.read()
		} else if l.hasPrefix("//", true) {
			l.readTill('\n', true)
		} else if l.hasPrefix("/*", true) {
			expectSlash := false
			for {
				nextCh, _ := l.read()
				if nextCh == eof {
					l.Error("unterminated block comment")
					return true
				}
				if expectSlash {
					if nextCh == '/' {
						break // done with comment
					} else {
						expectSlash = false
					}
				}
				if nextCh == '*' {
					expectSlash = true
				}
			}
		} else {
			// Not whitespace or comment, so stop
			return false
		}
	}
}

func (l *Lexer) scanIdentifierOrKeyword() (tok int, text string) {
	l.buf.Reset()
	for r := l.peek(); r != eof && (unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'); r = l.peek() {
		l.read()
		l.buf.WriteRune(r)
	}
	text = l.buf.String()
	switch text {
	case "if":
		return IF, text
	case "then":
		return THEN, text
	case "else":
		return ELSE, text
	case "let":
		return LET, text
	case "letfun":
		return LETFUN, text
	case "letrec":
		return LETREC, text
	case "fun":
		return FUN, text
	case "in":
		return IN, text
	case "not":
		return NOT, text
	case "and":
		return AND, text
	case "or":
		return OR, text
	case "mod":
		return MOD, text
	case "int":
		return INT, text
	case "bool":
		return BOOL, text
	case "true", "false":
		return BOOL_LITERAL, text
	default:
		return IDENTIFIER, text
	}
}

func (l *Lexer) scanNumber() (text string) {
	l.buf.Reset()
	for r := l.peek(); r != eof && unicode.IsDigit(r); r = l.peek() {
		l.read()
		l.buf.WriteRune(r)
	}
	return l.buf.String()
}

// Lex is the main lexing function called by the parser.
func (l *Lexer) Lex(lval *FunSymType) int {
	if l.skipWhitespace() {
		return eof
	}

	l.tokenStartPos = l.pos
	l.tokenStartLine = l.line
	l.tokenStartCol = l.col
	l.tokenText = "" // Reset for current token

	r := l.peek()
	if r == eof {
		return eof
	}

	startPosSnapshot := l.tokenStartPos

	if unicode.IsLetter(r) || r == '_' {
		tok, text := l.scanIdentifierOrKeyword()
		l.tokenText = text
		endPos := l.pos
		switch tok {
		case IDENTIFIER:
			lval.expr = newIdentifierExpr(text, startPosSnapshot, endPos)
		case BOOL_LITERAL:
			lval.expr = newLiteralExpr(lang.BoolValue(text == "true"), startPosSnapshot, endPos)
		default: // Keywords
			lval.sval = text
		}
		return tok
	}

	if unicode.IsDigit(r) {
		numText := l.scanNumber()
		l.tokenText = numText
		intVal, err := strconv.ParseInt(numText, 10, 64)
		if err != nil {
			l.Error(fmt.Sprintf("invalid integer: %s", numText))
		}
		lval.expr = newLiteralExpr(lang.IntValue(intVal), startPosSnapshot, l.pos)
		return INT_LITERAL
	}

	// Operators and Punctuation - Default to single character token text
	l.tokenText = string(r)

	switch r {
	case '(', ')', ':', '=', '+', '*', '/', '<', '>':
		l.read()
		lval.sval = l.tokenText
		return map[rune]int{
			'(': LPAREN,
			')': RPAREN,
			':': COLON,
			'=': ASSIGN,
			'+': PLUS,
			'*': MUL,
			'/': DIV, // Comments handled in skipWhitespace
			'<': LT,
			'>': GT,
		}[r]
	case '-':
		l.read()
		if l.peek() == '>' {
			l.read()
			l.tokenText = "->"
			lval.sval = "->"
			return ARROW
		}
		lval.sval = "-"
		return MINUS
	}

	l.Error(fmt.Sprintf("unexpected character '%c'", r))
	return eof // Indicate an error that should halt parsing
}
