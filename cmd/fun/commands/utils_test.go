package commands

import (
	"testing"

	"github.com/shahdamer/My-Interpreters-Project/lang"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInputValue(t *testing.T) {
	v, err := parseInputValue("42")
	require.NoError(t, err)
	n, err := v.GetInt()
	require.NoError(t, err)
	assert.Equal(t, int64(42), n)

	v, err = parseInputValue("-7")
	require.NoError(t, err)
	n, err = v.GetInt()
	require.NoError(t, err)
	assert.Equal(t, int64(-7), n)

	v, err = parseInputValue("true")
	require.NoError(t, err)
	b, err := v.GetBool()
	require.NoError(t, err)
	assert.True(t, b)

	_, err = parseInputValue("banana")
	assert.Error(t, err)
}

func TestInputType(t *testing.T) {
	assert.True(t, inputType(lang.IntValue(1)).Equals(lang.IntType))
	assert.True(t, inputType(lang.BoolValue(true)).Equals(lang.BoolType))
}
