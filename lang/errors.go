package lang

import (
	"errors"
)

// Error taxonomy shared by the checker and the evaluator. Every error is
// fatal to the enclosing Check/Eval call: the first violation found during
// the depth-first walk aborts the whole pass and propagates to the driver.
var (
	// Raised by both passes when a variable is absent from the active
	// environment chain.
	ErrUnboundVariable = errors.New("unbound variable")

	// Raised by the checker on any rule violation: operand/branch/
	// argument/binding type disagreement, non-boolean condition, or
	// application of a non-function type.
	ErrTypeMismatch = errors.New("type mismatch")

	// Raised by the evaluator when an operator is applied to value tags
	// it does not support. A checked program never triggers this.
	ErrInvalidOperation = errors.New("invalid operation")

	ErrDivisionByZero = errors.New("division by zero")
	ErrModuloByZero   = errors.New("modulo by zero")

	// Raised by the evaluator when an application target evaluates to a
	// non-closure value.
	ErrNotAFunction = errors.New("not a function")
)
