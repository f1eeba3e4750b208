package lang

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueGetters(t *testing.T) {
	iv := IntValue(42)
	got, err := iv.GetInt()
	require.NoError(t, err)
	assert.Equal(t, int64(42), got)
	_, err = iv.GetBool()
	assert.Error(t, err)

	bv := BoolValue(true)
	b, err := bv.GetBool()
	require.NoError(t, err)
	assert.True(t, b)
	_, err = bv.GetInt()
	assert.Error(t, err)

	env := NewEnv[Value](nil)
	cv := ClosureValue("x", Ident("x"), env)
	cl, err := cv.GetClosure()
	require.NoError(t, err)
	assert.Equal(t, "x", cl.Param)
	_, err = cv.GetRecClosure()
	assert.Error(t, err)

	rv := RecClosureValue("f", "x", Ident("x"), env)
	rc, err := rv.GetRecClosure()
	require.NoError(t, err)
	assert.Equal(t, "f", rc.FuncName)
}

func TestValueString(t *testing.T) {
	assert.Equal(t, "42", IntValue(42).String())
	assert.Equal(t, "true", BoolValue(true).String())
	assert.Equal(t, "false", BoolValue(false).String())
}

func TestValueMatchesType(t *testing.T) {
	env := NewEnv[Value](nil)

	assert.True(t, IntValue(1).MatchesType(IntType))
	assert.False(t, IntValue(1).MatchesType(BoolType))
	assert.True(t, BoolValue(true).MatchesType(BoolType))
	assert.True(t, ClosureValue("x", Ident("x"), env).MatchesType(FuncType(IntType, IntType)))
	assert.True(t, RecClosureValue("f", "x", Ident("x"), env).MatchesType(FuncType(IntType, IntType)))
	assert.False(t, ClosureValue("x", Ident("x"), env).MatchesType(IntType))
}

func TestTypeEquality(t *testing.T) {
	// Structural equality, no subtyping.
	assert.True(t, IntType.Equals(IntType))
	assert.False(t, IntType.Equals(BoolType))
	assert.True(t, FuncType(IntType, BoolType).Equals(FuncType(IntType, BoolType)))
	assert.False(t, FuncType(IntType, BoolType).Equals(FuncType(BoolType, IntType)))
	assert.True(t,
		FuncType(FuncType(IntType, IntType), BoolType).Equals(
			FuncType(FuncType(IntType, IntType), BoolType)))
	assert.False(t, IntType.Equals(FuncType(IntType, IntType)))
	assert.False(t, IntType.Equals(nil))
}

func TestTypeString(t *testing.T) {
	assert.Equal(t, "Int", IntType.String())
	assert.Equal(t, "Bool", BoolType.String())
	assert.Equal(t, "Int -> Bool", FuncType(IntType, BoolType).String())
	// Arrows associate right; a function domain is parenthesized.
	assert.Equal(t, "Int -> Int -> Bool", FuncType(IntType, FuncType(IntType, BoolType)).String())
	assert.Equal(t, "(Int -> Int) -> Bool", FuncType(FuncType(IntType, IntType), BoolType).String())
}
