package lexer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mathlex/internal/frontend/lexer"
)

func TestFunctionTable(t *testing.T) {
	unary := []string{
		"sin", "cos", "tan", "sec", "csc", "cot",
		"asin", "acos", "atan", "asec", "acsc", "acot",
		"log", "ln", "sqrt", "abs",
	}
	binary := []string{"log_base", "nroot", "^"}

	for _, name := range unary {
		assert.True(t, lexer.IsFunction(name), "function %q", name)
		arity, ok := lexer.FunctionArity(name)
		require.True(t, ok, "arity of %q", name)
		assert.Equal(t, 1, arity, "arity of %q", name)
	}
	for _, name := range binary {
		assert.True(t, lexer.IsFunction(name), "function %q", name)
		arity, ok := lexer.FunctionArity(name)
		require.True(t, ok, "arity of %q", name)
		assert.Equal(t, 2, arity, "arity of %q", name)
	}

	assert.False(t, lexer.IsFunction("exp"))
	_, ok := lexer.FunctionArity("exp")
	assert.False(t, ok)
}

func TestConstantTable(t *testing.T) {
	pi, ok := lexer.ConstantValue("pi")
	require.True(t, ok)
	assert.InDelta(t, 3.141592653589793, pi, 0)

	e, ok := lexer.ConstantValue("e")
	require.True(t, ok)
	assert.InDelta(t, 2.718281828459045, e, 0)

	_, ok = lexer.ConstantValue("tau")
	assert.False(t, ok)
}

func TestVariableTable(t *testing.T) {
	for _, name := range []string{"x", "y", "z"} {
		assert.True(t, lexer.IsVariable(name), "variable %q", name)
	}
	assert.False(t, lexer.IsVariable("a"))
	assert.False(t, lexer.IsVariable("X"))
	assert.False(t, lexer.IsVariable("xy"))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "Number", lexer.Number.String())
	assert.Equal(t, "Invalid", lexer.Invalid.String())
	assert.Equal(t, `Function("sin")`, lexer.Token{Kind: lexer.Function, Text: "sin"}.String())
}
