package lang

import (
	"fmt"
)

type ValueTag int

const (
	ValueTagNil ValueTag = iota
	ValueTagInt
	ValueTagBool
	ValueTagClosure
	ValueTagRecClosure
)

func (t ValueTag) String() string {
	switch t {
	case ValueTagInt:
		return "Int"
	case ValueTagBool:
		return "Bool"
	case ValueTagClosure:
		return "Closure"
	case ValueTagRecClosure:
		return "RecClosure"
	}
	return "Nil"
}

// Value wraps a Go value with its runtime tag. Values are immutable after
// construction and have no identity beyond structural equality.
type Value struct {
	Tag   ValueTag
	Value any // The underlying Go value
}

// Closure is a function value paired with the environment chain visible at
// its definition site. The captured environment is a snapshot: bindings
// made after capture never leak into it.
type Closure struct {
	Param string
	Body  Expr
	Env   *ValueEnv
}

// RecClosure additionally carries its own binding name. The self-binding
// is rebuilt at every call rather than stored, so the captured environment
// never contains a cycle.
type RecClosure struct {
	FuncName string
	Param    string
	Body     Expr
	Env      *ValueEnv
}

// Helpers to create specific simple values
func IntValue(val int64) Value {
	return Value{Tag: ValueTagInt, Value: val}
}

func BoolValue(val bool) Value {
	return Value{Tag: ValueTagBool, Value: val}
}

func ClosureValue(param string, body Expr, env *ValueEnv) Value {
	return Value{Tag: ValueTagClosure, Value: &Closure{Param: param, Body: body, Env: env}}
}

func RecClosureValue(funcName, param string, body Expr, env *ValueEnv) Value {
	return Value{Tag: ValueTagRecClosure, Value: &RecClosure{FuncName: funcName, Param: param, Body: body, Env: env}}
}

func (r Value) IsNil() bool {
	return r.Value == nil
}

// --- Custom getter methods

func (r Value) GetInt() (int64, error) {
	if r.Tag != ValueTagInt {
		return 0, fmt.Errorf("type mismatch: cannot get Int, value is %s", r.Tag)
	}
	val, ok := r.Value.(int64)
	if !ok {
		return 0, fmt.Errorf("internal error: Int value is not Go int64 (%T)", r.Value)
	}
	return val, nil
}

func (r Value) GetBool() (bool, error) {
	if r.Tag != ValueTagBool {
		return false, fmt.Errorf("type mismatch: cannot get Bool, value is %s", r.Tag)
	}
	val, ok := r.Value.(bool)
	if !ok {
		return false, fmt.Errorf("internal error: Bool value is not Go bool (%T)", r.Value)
	}
	return val, nil
}

func (r Value) GetClosure() (*Closure, error) {
	if r.Tag != ValueTagClosure {
		return nil, fmt.Errorf("type mismatch: cannot get Closure, value is %s", r.Tag)
	}
	val, ok := r.Value.(*Closure)
	if !ok {
		return nil, fmt.Errorf("internal error: Closure value is not *Closure (%T)", r.Value)
	}
	return val, nil
}

func (r Value) GetRecClosure() (*RecClosure, error) {
	if r.Tag != ValueTagRecClosure {
		return nil, fmt.Errorf("type mismatch: cannot get RecClosure, value is %s", r.Tag)
	}
	val, ok := r.Value.(*RecClosure)
	if !ok {
		return nil, fmt.Errorf("internal error: RecClosure value is not *RecClosure (%T)", r.Value)
	}
	return val, nil
}

// MatchesType reports whether the runtime tag corresponds to the given
// static type (Int<->Int, Bool<->Bool, arrow<->closure).
func (r Value) MatchesType(t *Type) bool {
	if t == nil {
		return false
	}
	switch r.Tag {
	case ValueTagInt:
		return t.Equals(IntType)
	case ValueTagBool:
		return t.Equals(BoolType)
	case ValueTagClosure, ValueTagRecClosure:
		return t.IsFuncType()
	}
	return false
}

// String representation of the runtime value
func (r Value) String() string {
	switch r.Tag {
	case ValueTagInt:
		return fmt.Sprintf("%d", r.Value)
	case ValueTagBool:
		return fmt.Sprintf("%v", r.Value)
	case ValueTagClosure:
		cl := r.Value.(*Closure)
		return fmt.Sprintf("<closure fun %s -> ...>", cl.Param)
	case ValueTagRecClosure:
		rc := r.Value.(*RecClosure)
		return fmt.Sprintf("<rec closure %s %s -> ...>", rc.FuncName, rc.Param)
	}
	return "<nil Value>"
}
