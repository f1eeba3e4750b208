package lang

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvGetWalksChain(t *testing.T) {
	root := NewEnv[Value](nil)
	root.Set("x", IntValue(1))

	inner := root.Bind("y", IntValue(2))

	x, ok := inner.Get("x")
	require.True(t, ok, "outer binding not visible from inner frame")
	assertInt(t, x, 1)

	y, ok := inner.Get("y")
	require.True(t, ok)
	assertInt(t, y, 2)

	// Absence is an error signal, never a default value.
	_, ok = inner.Get("z")
	assert.False(t, ok)

	// The inner binding must not leak into the outer chain.
	_, ok = root.Get("y")
	assert.False(t, ok)
}

func TestEnvShadowing(t *testing.T) {
	root := NewEnv[Value](nil)
	root.Set("x", IntValue(1))

	shadowed := root.Bind("x", IntValue(2))

	// Newest binding wins.
	x, ok := shadowed.Get("x")
	require.True(t, ok)
	assertInt(t, x, 2)

	// The outer frame is untouched.
	x, ok = root.Get("x")
	require.True(t, ok)
	assertInt(t, x, 1)
}

func TestEnvPersistentExtension(t *testing.T) {
	root := NewEnv[Value](nil)
	root.Set("x", IntValue(5))

	// Snapshot as a closure would capture it.
	captured := root.Bind("y", IntValue(10))

	// Unrelated later extensions never affect the captured chain.
	later := captured.Bind("x", IntValue(0)).Bind("y", IntValue(0))

	x, _ := captured.Get("x")
	assertInt(t, x, 5)
	y, _ := captured.Get("y")
	assertInt(t, y, 10)

	x, _ = later.Get("x")
	assertInt(t, x, 0)
}

func TestTypeEnvChain(t *testing.T) {
	scope := NewEnv[*Type](nil)
	scope.Set("input", IntType)

	inner := scope.Bind("f", FuncType(IntType, BoolType))
	ft, ok := inner.Get("f")
	require.True(t, ok)
	assert.True(t, ft.IsFuncType())

	it, ok := inner.Get("input")
	require.True(t, ok)
	assert.True(t, it.Equals(IntType))
}
