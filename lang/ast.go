package lang

import (
	"fmt"
)

// --- Interfaces ---

// Node represents any node in the abstract syntax tree.
type Node interface {
	Pos() int       // Starting position (for error reporting)
	End() int       // Ending position
	String() string // String representation for debugging/printing
}

// --- Base Struct ---

// NodeInfo embeddable struct for position tracking.
type NodeInfo struct{ StartPos, StopPos int }

func NewNodeInfo(start, end int) NodeInfo { return NodeInfo{StartPos: start, StopPos: end} }

func (n *NodeInfo) Pos() int       { return n.StartPos }
func (n *NodeInfo) End() int       { return n.StopPos }
func (n *NodeInfo) String() string { return "{Node}" } // Default stringer

// Expr represents an expression node (evaluates to a value).
type Expr interface {
	Node
	exprNode() // Marker method for expressions

	// Type recorded by the checker, nil until Check has seen the node.
	CheckedType() *Type
	SetCheckedType(*Type)
}

type ExprBase struct {
	NodeInfo
	checkedType *Type
}

func (e *ExprBase) SetCheckedType(t *Type) { e.checkedType = t }
func (e *ExprBase) CheckedType() *Type     { return e.checkedType }
func (e *ExprBase) exprNode()              {}

// --- Operators ---

// Op is an operator in the expression language. The untyped and typed
// surface languages spell these differently but share this one set.
type Op string

const (
	OpAdd Op = "+"
	OpSub Op = "-"
	OpMul Op = "*"
	OpDiv Op = "/"
	OpMod Op = "mod"
	OpLt  Op = "<"
	OpGt  Op = ">"
	OpAnd Op = "and"
	OpOr  Op = "or"
	OpNot Op = "not"
)

// --- Expressions ---

// LiteralExpr represents integer and boolean literals.
type LiteralExpr struct {
	ExprBase
	Value Value
}

func (l *LiteralExpr) String() string { return l.Value.String() }

// IdentifierExpr represents a variable reference.
type IdentifierExpr struct {
	ExprBase
	Name string
}

func (i *IdentifierExpr) String() string { return i.Name }

// BinaryExpr represents `left operator right`.
type BinaryExpr struct {
	ExprBase
	Left     Expr
	Operator Op // "+", "-", "*", "/", "mod", "<", ">", "and", "or"
	Right    Expr
}

func (b *BinaryExpr) String() string {
	leftStr := "nil"
	if b.Left != nil {
		leftStr = b.Left.String()
	}
	rightStr := "nil"
	if b.Right != nil {
		rightStr = b.Right.String()
	}
	return fmt.Sprintf("(%s %s %s)", leftStr, b.Operator, rightStr)
}

// UnaryExpr represents `operator operand`. Logical negation is a true
// unary node even where a surface grammar writes it as a degenerate
// binary form.
type UnaryExpr struct {
	ExprBase
	Operator Op // "not"
	Operand  Expr
}

func (u *UnaryExpr) String() string { return fmt.Sprintf("(%s %s)", u.Operator, u.Operand) }

// IfExpr represents `if cond then a else b`. Both branches are
// expressions; there is no statement form in this language.
type IfExpr struct {
	ExprBase
	Condition Expr
	Then      Expr
	Else      Expr
}

func (i *IfExpr) String() string {
	return fmt.Sprintf("(if %s then %s else %s)", i.Condition, i.Then, i.Else)
}

// FuncExpr represents `fun x -> body` (untyped) or `fun (x: T) -> body`
// (typed). Functions take exactly one parameter; multi-argument functions
// are written curried.
type FuncExpr struct {
	ExprBase
	Param     *IdentifierExpr
	ParamType *Type // nil in the untyped variant
	Body      Expr
}

func (f *FuncExpr) String() string {
	if f.ParamType != nil {
		return fmt.Sprintf("(fun (%s: %s) -> %s)", f.Param, f.ParamType, f.Body)
	}
	return fmt.Sprintf("(fun %s -> %s)", f.Param, f.Body)
}

// LetExpr represents `let x [: T] = value in body`.
type LetExpr struct {
	ExprBase
	Name         *IdentifierExpr
	DeclaredType *Type // nil in the untyped variant
	Value        Expr
	Body         Expr
}

func (l *LetExpr) String() string {
	if l.DeclaredType != nil {
		return fmt.Sprintf("(let %s: %s = %s in %s)", l.Name, l.DeclaredType, l.Value, l.Body)
	}
	return fmt.Sprintf("(let %s = %s in %s)", l.Name, l.Value, l.Body)
}

// LetRecExpr represents `letfun f x = funcBody in body`: a single
// self-recursive function binding. Mutual recursion is not expressible.
type LetRecExpr struct {
	ExprBase
	FuncName  *IdentifierExpr
	Param     *IdentifierExpr
	ParamType *Type // nil in the untyped variant
	FuncBody  Expr
	Body      Expr
}

func (l *LetRecExpr) String() string {
	if l.ParamType != nil {
		return fmt.Sprintf("(letfun %s (%s: %s) = %s in %s)", l.FuncName, l.Param, l.ParamType, l.FuncBody, l.Body)
	}
	return fmt.Sprintf("(letfun %s %s = %s in %s)", l.FuncName, l.Param, l.FuncBody, l.Body)
}

// CallExpr represents `fn arg`: application of a single argument.
type CallExpr struct {
	ExprBase
	Function Expr
	Arg      Expr
}

func (c *CallExpr) String() string { return fmt.Sprintf("(%s %s)", c.Function, c.Arg) }
