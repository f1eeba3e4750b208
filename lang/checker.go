package lang

import (
	"fmt"
)

// Check recursively computes the static type of an expression in the typed
// variant. It is pure: no side effects beyond caching the result on the
// node, and identical inputs always produce identical types or identical
// failures. A program that fails Check is never evaluated.
func Check(expr Expr, scope *TypeEnv) (*Type, error) {
	if expr == nil {
		return nil, fmt.Errorf("cannot check nil expression")
	}

	var checked *Type
	var err error

	switch e := expr.(type) {
	case *LiteralExpr:
		checked, err = checkLiteral(e)
	case *IdentifierExpr:
		checked, err = checkIdentifier(e, scope)
	case *BinaryExpr:
		checked, err = checkBinaryExpr(e, scope)
	case *UnaryExpr:
		checked, err = checkUnaryExpr(e, scope)
	case *IfExpr:
		checked, err = checkIfExpr(e, scope)
	case *FuncExpr:
		checked, err = checkFuncExpr(e, scope)
	case *LetExpr:
		checked, err = checkLetExpr(e, scope)
	case *LetRecExpr:
		checked, err = checkLetRecExpr(e, scope)
	case *CallExpr:
		checked, err = checkCallExpr(e, scope)
	default:
		return nil, fmt.Errorf("type checking not implemented for expression type %T at pos %d", expr, expr.Pos())
	}

	if err != nil {
		return nil, err
	}
	if checked == nil {
		return nil, fmt.Errorf("type check failed for %T at pos %d, but no error reported", expr, expr.Pos())
	}
	expr.SetCheckedType(checked)
	return checked, nil
}

func checkLiteral(expr *LiteralExpr) (*Type, error) {
	switch expr.Value.Tag {
	case ValueTagInt:
		return IntType, nil
	case ValueTagBool:
		return BoolType, nil
	}
	return nil, fmt.Errorf("pos %d: literal expression has invalid runtime tag %s", expr.Pos(), expr.Value.Tag)
}

func checkIdentifier(expr *IdentifierExpr, scope *TypeEnv) (*Type, error) {
	t, ok := scope.Get(expr.Name)
	if !ok {
		return nil, fmt.Errorf("pos %d: %w: identifier '%s'", expr.Pos(), ErrUnboundVariable, expr.Name)
	}
	if t == nil {
		return nil, fmt.Errorf("pos %d: identifier '%s' resolved but its type is nil (internal error)", expr.Pos(), expr.Name)
	}
	return t, nil
}

func checkBinaryExpr(expr *BinaryExpr, scope *TypeEnv) (*Type, error) {
	leftType, err := Check(expr.Left, scope)
	if err != nil {
		return nil, fmt.Errorf("checking left operand of binary expr ('%s'): %w", expr.Operator, err)
	}
	rightType, err := Check(expr.Right, scope)
	if err != nil {
		return nil, fmt.Errorf("checking right operand of binary expr ('%s'): %w", expr.Operator, err)
	}

	switch expr.Operator {
	case OpAdd, OpSub, OpMul, OpDiv:
		if leftType.Equals(IntType) && rightType.Equals(IntType) {
			return IntType, nil
		}
	case OpLt:
		if leftType.Equals(IntType) && rightType.Equals(IntType) {
			return BoolType, nil
		}
	case OpAnd, OpOr:
		if leftType.Equals(BoolType) && rightType.Equals(BoolType) {
			return BoolType, nil
		}
	}
	// Note: 'mod' and '>' are not part of the typed language's operator
	// set, so they land here along with every bad operand combination.
	return nil, fmt.Errorf("pos %d: %w: operator '%s' cannot be applied to %s and %s",
		expr.Pos(), ErrTypeMismatch, expr.Operator, leftType, rightType)
}

func checkUnaryExpr(expr *UnaryExpr, scope *TypeEnv) (*Type, error) {
	operandType, err := Check(expr.Operand, scope)
	if err != nil {
		return nil, fmt.Errorf("checking operand of unary expr ('%s'): %w", expr.Operator, err)
	}
	if expr.Operator == OpNot {
		if operandType.Equals(BoolType) {
			return BoolType, nil
		}
		return nil, fmt.Errorf("pos %d: %w: operator 'not' requires Bool, got %s",
			expr.Pos(), ErrTypeMismatch, operandType)
	}
	return nil, fmt.Errorf("pos %d: %w: unsupported unary operator '%s'", expr.Pos(), ErrTypeMismatch, expr.Operator)
}

func checkIfExpr(expr *IfExpr, scope *TypeEnv) (*Type, error) {
	condType, err := Check(expr.Condition, scope)
	if err != nil {
		return nil, fmt.Errorf("checking condition of if expression: %w", err)
	}
	if !condType.Equals(BoolType) {
		return nil, fmt.Errorf("pos %d: %w: if condition must be Bool, got %s",
			expr.Condition.Pos(), ErrTypeMismatch, condType)
	}
	thenType, err := Check(expr.Then, scope)
	if err != nil {
		return nil, fmt.Errorf("checking 'then' branch of if expression: %w", err)
	}
	elseType, err := Check(expr.Else, scope)
	if err != nil {
		return nil, fmt.Errorf("checking 'else' branch of if expression: %w", err)
	}
	// Branches must agree by structural equality, not unification.
	if !thenType.Equals(elseType) {
		return nil, fmt.Errorf("pos %d: %w: if branches disagree: %s vs %s",
			expr.Pos(), ErrTypeMismatch, thenType, elseType)
	}
	return thenType, nil
}

func checkFuncExpr(expr *FuncExpr, scope *TypeEnv) (*Type, error) {
	if expr.ParamType == nil {
		return nil, fmt.Errorf("pos %d: %w: parameter '%s' has no type annotation (types are never inferred)",
			expr.Pos(), ErrTypeMismatch, expr.Param.Name)
	}
	bodyType, err := Check(expr.Body, scope.Bind(expr.Param.Name, expr.ParamType))
	if err != nil {
		return nil, fmt.Errorf("checking body of function 'fun %s': %w", expr.Param.Name, err)
	}
	return FuncType(expr.ParamType, bodyType), nil
}

func checkLetExpr(expr *LetExpr, scope *TypeEnv) (*Type, error) {
	if expr.DeclaredType == nil {
		return nil, fmt.Errorf("pos %d: %w: let binding '%s' has no type annotation (types are never inferred)",
			expr.Pos(), ErrTypeMismatch, expr.Name.Name)
	}
	valueType, err := Check(expr.Value, scope)
	if err != nil {
		return nil, fmt.Errorf("checking value of let binding '%s': %w", expr.Name.Name, err)
	}
	if !valueType.Equals(expr.DeclaredType) {
		return nil, fmt.Errorf("pos %d: %w: let binding '%s' declared %s but value has type %s",
			expr.Pos(), ErrTypeMismatch, expr.Name.Name, expr.DeclaredType, valueType)
	}
	return Check(expr.Body, scope.Bind(expr.Name.Name, expr.DeclaredType))
}

func checkLetRecExpr(expr *LetRecExpr, scope *TypeEnv) (*Type, error) {
	if expr.ParamType == nil {
		return nil, fmt.Errorf("pos %d: %w: parameter '%s' of recursive function '%s' has no type annotation",
			expr.Pos(), ErrTypeMismatch, expr.Param.Name, expr.FuncName.Name)
	}
	// Known limitation of the typed language: a recursive function's own
	// type is fixed as paramType -> Int, whatever its body looks like.
	selfType := FuncType(expr.ParamType, IntType)
	bodyScope := scope.Bind(expr.Param.Name, expr.ParamType).Bind(expr.FuncName.Name, selfType)
	bodyType, err := Check(expr.FuncBody, bodyScope)
	if err != nil {
		return nil, fmt.Errorf("checking body of recursive function '%s': %w", expr.FuncName.Name, err)
	}
	if !bodyType.Equals(IntType) {
		return nil, fmt.Errorf("pos %d: %w: recursive function '%s' must return Int, body has type %s",
			expr.Pos(), ErrTypeMismatch, expr.FuncName.Name, bodyType)
	}
	return Check(expr.Body, scope.Bind(expr.FuncName.Name, selfType))
}

func checkCallExpr(expr *CallExpr, scope *TypeEnv) (*Type, error) {
	funcType, err := Check(expr.Function, scope)
	if err != nil {
		return nil, fmt.Errorf("checking function of application: %w", err)
	}
	if !funcType.IsFuncType() {
		return nil, fmt.Errorf("pos %d: %w: cannot apply a value of type %s",
			expr.Pos(), ErrTypeMismatch, funcType)
	}
	argType, err := Check(expr.Arg, scope)
	if err != nil {
		return nil, fmt.Errorf("checking argument of application: %w", err)
	}
	info := funcType.Info.(*FuncTypeInfo)
	if !argType.Equals(info.Domain) {
		return nil, fmt.Errorf("pos %d: %w: function expects %s, argument has type %s",
			expr.Arg.Pos(), ErrTypeMismatch, info.Domain, argType)
	}
	return info.Codomain, nil
}
