package lang

import (
	"fmt"
)

type TypeTag int

const (
	TypeTagUnknown TypeTag = iota
	TypeTagSimple
	TypeTagFunc
)

// Type is the static type of an expression in the typed variant.
type Type struct {
	Tag  TypeTag
	Info any
}

var (
	// Use singletons for basic types for efficiency
	IntType  = SimpleType("Int")
	BoolType = SimpleType("Bool")
)

func SimpleType(name string) *Type {
	return &Type{Tag: TypeTagSimple, Info: name}
}

type FuncTypeInfo struct {
	Domain   *Type
	Codomain *Type
}

// FuncType builds the arrow type Domain -> Codomain.
func FuncType(domain, codomain *Type) *Type {
	if domain == nil || codomain == nil {
		panic("function domain and codomain types cannot be nil")
	}
	return &Type{
		Tag:  TypeTagFunc,
		Info: &FuncTypeInfo{Domain: domain, Codomain: codomain},
	}
}

// String representation of the type
func (t *Type) String() string {
	if t == nil {
		return "<nil_type>"
	} else if t.Tag == TypeTagSimple {
		return t.Info.(string)
	} else if t.Tag == TypeTagFunc {
		info := t.Info.(*FuncTypeInfo)
		domStr := info.Domain.String()
		if info.Domain.IsFuncType() {
			// Arrows are right associative, parenthesize a function domain
			domStr = fmt.Sprintf("(%s)", domStr)
		}
		return fmt.Sprintf("%s -> %s", domStr, info.Codomain)
	}
	return "Unknown Type"
}

// Equals checks if two type definitions are structurally equivalent.
// There is no subtyping and no coercion.
func (t *Type) Equals(other *Type) bool {
	if t == other { // Pointer equality check (useful for singletons)
		return true
	}
	if t == nil || other == nil {
		return false
	}
	if t.Tag != other.Tag {
		return false
	}

	if t.Tag == TypeTagSimple {
		return t.Info.(string) == other.Info.(string)
	} else if t.Tag == TypeTagFunc {
		f1 := t.Info.(*FuncTypeInfo)
		f2 := other.Info.(*FuncTypeInfo)
		return f1.Domain.Equals(f2.Domain) && f1.Codomain.Equals(f2.Codomain)
	}
	panic(fmt.Sprintf("Invalid types... %d, %v, %d, %v", t.Tag, t.Info, other.Tag, other.Info))
}

// IsFuncType checks if the type is an arrow type.
func (t *Type) IsFuncType() bool {
	if t == nil {
		return false
	}
	return t.Tag == TypeTagFunc
}
