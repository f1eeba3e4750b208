package lang

import (
	"fmt"
)

// Eval evaluates an expression under an environment and returns its value.
// It is pure given its two inputs: no hidden state, no I/O, identical
// inputs always yield identical results or identical failures. The first
// error encountered aborts the whole evaluation.
func Eval(expr Expr, env *ValueEnv) (Value, error) {
	switch e := expr.(type) {
	case *LiteralExpr:
		return e.Value, nil
	case *IdentifierExpr:
		return evalIdentifier(e, env)
	case *BinaryExpr:
		return evalBinaryExpr(e, env)
	case *UnaryExpr:
		return evalUnaryExpr(e, env)
	case *IfExpr:
		return evalIfExpr(e, env)
	case *FuncExpr:
		// Capture-by-snapshot of the current chain: lexical scoping.
		return ClosureValue(e.Param.Name, e.Body, env), nil
	case *LetExpr:
		return evalLetExpr(e, env)
	case *LetRecExpr:
		return evalLetRecExpr(e, env)
	case *CallExpr:
		return evalCallExpr(e, env)
	default:
		return Value{}, fmt.Errorf("Eval not implemented for node type %T", expr)
	}
}

func evalIdentifier(expr *IdentifierExpr, env *ValueEnv) (Value, error) {
	value, ok := env.Get(expr.Name)
	if !ok {
		return Value{}, fmt.Errorf("pos %d: %w: identifier '%s'", expr.Pos(), ErrUnboundVariable, expr.Name)
	}
	return value, nil
}

func evalBinaryExpr(expr *BinaryExpr, env *ValueEnv) (Value, error) {
	// Left before right. Both operands are always evaluated, even for
	// 'and'/'or': there is no short-circuiting in this language.
	left, err := Eval(expr.Left, env)
	if err != nil {
		return Value{}, fmt.Errorf("evaluating left operand of '%s': %w", expr.Operator, err)
	}
	right, err := Eval(expr.Right, env)
	if err != nil {
		return Value{}, fmt.Errorf("evaluating right operand of '%s': %w", expr.Operator, err)
	}
	return applyBinaryOp(expr, left, right)
}

// applyBinaryOp dispatches on (operator, left tag, right tag). Every
// unmatched combination falls through to ErrInvalidOperation.
func applyBinaryOp(expr *BinaryExpr, left, right Value) (Value, error) {
	if left.Tag == ValueTagInt && right.Tag == ValueTagInt {
		l := left.Value.(int64)
		r := right.Value.(int64)
		switch expr.Operator {
		case OpAdd:
			return IntValue(l + r), nil
		case OpSub:
			return IntValue(l - r), nil
		case OpMul:
			return IntValue(l * r), nil
		case OpDiv:
			if r == 0 {
				return Value{}, fmt.Errorf("pos %d: %w", expr.Pos(), ErrDivisionByZero)
			}
			// Go's int64 division already truncates toward zero.
			return IntValue(l / r), nil
		case OpMod:
			if r == 0 {
				return Value{}, fmt.Errorf("pos %d: %w", expr.Pos(), ErrModuloByZero)
			}
			return IntValue(l % r), nil
		case OpLt:
			return BoolValue(l < r), nil
		case OpGt:
			return BoolValue(l > r), nil
		}
	} else if left.Tag == ValueTagBool && right.Tag == ValueTagBool {
		l := left.Value.(bool)
		r := right.Value.(bool)
		switch expr.Operator {
		case OpAnd:
			return BoolValue(l && r), nil
		case OpOr:
			return BoolValue(l || r), nil
		}
	}
	return Value{}, fmt.Errorf("pos %d: %w: operator '%s' on %s and %s",
		expr.Pos(), ErrInvalidOperation, expr.Operator, left.Tag, right.Tag)
}

func evalUnaryExpr(expr *UnaryExpr, env *ValueEnv) (Value, error) {
	operand, err := Eval(expr.Operand, env)
	if err != nil {
		return Value{}, fmt.Errorf("evaluating operand of '%s': %w", expr.Operator, err)
	}
	if expr.Operator == OpNot && operand.Tag == ValueTagBool {
		return BoolValue(!operand.Value.(bool)), nil
	}
	return Value{}, fmt.Errorf("pos %d: %w: operator '%s' on %s",
		expr.Pos(), ErrInvalidOperation, expr.Operator, operand.Tag)
}

func evalIfExpr(expr *IfExpr, env *ValueEnv) (Value, error) {
	cond, err := Eval(expr.Condition, env)
	if err != nil {
		return Value{}, fmt.Errorf("evaluating condition of if expression: %w", err)
	}
	if cond.Tag != ValueTagBool {
		return Value{}, fmt.Errorf("pos %d: %w: if condition must be boolean, got %s",
			expr.Condition.Pos(), ErrInvalidOperation, cond.Tag)
	}
	if cond.Value.(bool) {
		return Eval(expr.Then, env)
	}
	return Eval(expr.Else, env)
}

func evalLetExpr(expr *LetExpr, env *ValueEnv) (Value, error) {
	value, err := Eval(expr.Value, env)
	if err != nil {
		return Value{}, fmt.Errorf("evaluating value of let binding '%s': %w", expr.Name.Name, err)
	}
	return Eval(expr.Body, env.Bind(expr.Name.Name, value))
}

func evalLetRecExpr(expr *LetRecExpr, env *ValueEnv) (Value, error) {
	// The closure snapshots the environment *before* 'f' is bound; the
	// self-reference is re-derived at each call, not stored.
	rec := RecClosureValue(expr.FuncName.Name, expr.Param.Name, expr.FuncBody, env)
	return Eval(expr.Body, env.Bind(expr.FuncName.Name, rec))
}

func evalCallExpr(expr *CallExpr, env *ValueEnv) (Value, error) {
	fv, err := Eval(expr.Function, env)
	if err != nil {
		return Value{}, fmt.Errorf("evaluating function of application: %w", err)
	}
	av, err := Eval(expr.Arg, env)
	if err != nil {
		return Value{}, fmt.Errorf("evaluating argument of application: %w", err)
	}

	switch fv.Tag {
	case ValueTagClosure:
		cl := fv.Value.(*Closure)
		return Eval(cl.Body, cl.Env.Bind(cl.Param, av))
	case ValueTagRecClosure:
		// Recursion protocol: rebuild the self-binding from the captured
		// pre-binding environment, then bind the argument.
		rc := fv.Value.(*RecClosure)
		callEnv := rc.Env.
			Bind(rc.FuncName, RecClosureValue(rc.FuncName, rc.Param, rc.Body, rc.Env)).
			Bind(rc.Param, av)
		return Eval(rc.Body, callEnv)
	}
	return Value{}, fmt.Errorf("pos %d: %w: cannot apply %s", expr.Pos(), ErrNotAFunction, fv.Tag)
}
