package lang

import (
	"fmt"
)

// Env[T] holds bindings for identifiers: runtime values during evaluation,
// static types during checking. Supports scoping via the 'outer'
// environment: lookups walk from the innermost frame outward, so the most
// recent binding shadows older ones.
//
// Extension is persistent: Bind allocates a new frame whose tail aliases
// the prior chain and never mutates an existing frame, so a closure that
// captured an environment is unaffected by bindings made after capture.
type Env[T any] struct {
	store map[string]T
	outer *Env[T]
}

// NewEnv[T] creates a new environment nested within an outer one.
// If outer is nil then returns a fresh top-level environment.
func NewEnv[T any](outer *Env[T]) *Env[T] {
	return &Env[T]{store: make(map[string]T), outer: outer}
}

// Get retrieves a binding by name. It checks the current frame first,
// then recursively checks outer frames. Absence is reported via found,
// never via a default value.
func (e *Env[T]) Get(name string) (out T, found bool) {
	if e == nil {
		return
	}
	if v, ok := e.store[name]; ok {
		return v, true
	}
	if e.outer != nil {
		return e.outer.Get(name)
	}
	return
}

// Set adds a binding to the current frame. Only used to seed a top-level
// frame (the driver's 'input' binding) before any closure can have
// captured it; evaluation itself always extends via Bind.
func (e *Env[T]) Set(name string, value T) {
	e.store[name] = value
}

// Bind extends the environment with a single binding by creating a new
// frame chained onto this one. The receiver is left untouched.
func (e *Env[T]) Bind(name string, value T) *Env[T] {
	out := NewEnv(e)
	out.store[name] = value
	return out
}

// Keys returns all keys in this frame (not including outer frames)
func (e *Env[T]) Keys() []string {
	keys := make([]string, 0, len(e.store))
	for k := range e.store {
		keys = append(keys, k)
	}
	return keys
}

// String representation for debugging
func (e *Env[T]) String() string {
	return fmt.Sprintf("Env{store: %v, outer: %v}", e.Keys(), e.outer != nil)
}

// ValueEnv binds names to runtime values; TypeEnv binds names to static
// types. Both passes share the same chain discipline.
type (
	ValueEnv = Env[Value]
	TypeEnv  = Env[*Type]
)
