package lang

// AST constructor shorthands. The parser builds trees with full position
// info; these are for tests and embedding.

func LitInt(v int64) *LiteralExpr  { return &LiteralExpr{Value: IntValue(v)} }
func LitBool(v bool) *LiteralExpr  { return &LiteralExpr{Value: BoolValue(v)} }
func Ident(n string) *IdentifierExpr { return &IdentifierExpr{Name: n} }

func Binary(l Expr, op Op, r Expr) *BinaryExpr {
	return &BinaryExpr{Left: l, Operator: op, Right: r}
}

func Not(operand Expr) *UnaryExpr {
	return &UnaryExpr{Operator: OpNot, Operand: operand}
}

func If(cond, then, els Expr) *IfExpr {
	return &IfExpr{Condition: cond, Then: then, Else: els}
}

func Fun(param string, paramType *Type, body Expr) *FuncExpr {
	return &FuncExpr{Param: Ident(param), ParamType: paramType, Body: body}
}

func Let(name string, declaredType *Type, value, body Expr) *LetExpr {
	return &LetExpr{Name: Ident(name), DeclaredType: declaredType, Value: value, Body: body}
}

func LetRec(funcName, param string, paramType *Type, funcBody, body Expr) *LetRecExpr {
	return &LetRecExpr{
		FuncName:  Ident(funcName),
		Param:     Ident(param),
		ParamType: paramType,
		FuncBody:  funcBody,
		Body:      body,
	}
}

func Call(fn, arg Expr) *CallExpr { return &CallExpr{Function: fn, Arg: arg} }
