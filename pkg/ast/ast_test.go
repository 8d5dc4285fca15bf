package ast

import (
	"testing"

	"github.com/consensys/go-slisp/pkg/sexp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEcho(t *testing.T) {
	node, err := Parse("(add 1 1)")
	require.NoError(t, err)
	//
	expected := NewList([]Node{NewSymbol("add"), NewInteger(1), NewInteger(1)})
	assert.Equal(t, expected, node)
}

func TestParseNested(t *testing.T) {
	node, err := Parse("(first (list 1 (+ 2 3) 9))")
	require.NoError(t, err)
	//
	inner := NewList([]Node{NewSymbol("+"), NewInteger(2), NewInteger(3)})
	list := NewList([]Node{NewSymbol("list"), NewInteger(1), inner, NewInteger(9)})
	expected := NewList([]Node{NewSymbol("first"), list})
	assert.Equal(t, expected, node)
}

func TestParseMixedLiterals(t *testing.T) {
	node, err := Parse("(list 1 True \"hello\" 'world' 3.14)")
	require.NoError(t, err)
	// Note: True lexes as a symbol, not a boolean.
	expected := NewList([]Node{
		NewSymbol("list"),
		NewInteger(1),
		NewSymbol("True"),
		NewString("hello"),
		NewString("world"),
		NewFloat(3.14),
	})
	assert.Equal(t, expected, node)
}

func TestParseEscapedQuote(t *testing.T) {
	node, err := Parse("'a\\'b'")
	require.NoError(t, err)
	assert.Equal(t, NewString("a'b"), node)
}

func TestParseEscapedBackslash(t *testing.T) {
	node, err := Parse("'a\\\\b'")
	require.NoError(t, err)
	assert.Equal(t, NewString("a\\b"), node)
}

func TestParseIdempotent(t *testing.T) {
	first, err := Parse("(add 1 (+ 2 3))")
	require.NoError(t, err)
	second, err := Parse("(add 1 (+ 2 3))")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestNodeCasts(t *testing.T) {
	node, err := Parse("(add 1 'x')")
	require.NoError(t, err)
	//
	list := node.AsList()
	require.NotNil(t, list)
	assert.Nil(t, node.AsSymbol())
	assert.Equal(t, 3, list.Len())
	assert.Equal(t, "add", list.Get(0).AsSymbol().Value)
	assert.Equal(t, int64(1), list.Get(1).AsInteger().Value)
	assert.Equal(t, "x", list.Get(2).AsString().Value)
}

// ============================================================================
// Printing and round-trips
// ============================================================================

func TestPrintList(t *testing.T) {
	node, err := Parse("( add  1  1 )")
	require.NoError(t, err)
	assert.Equal(t, "(add 1 1)", node.String())
}

func TestPrintString(t *testing.T) {
	// Single quotes preferred, double quotes when that avoids escaping.
	assert.Equal(t, "'hello'", NewString("hello").String())
	assert.Equal(t, "'a\"b'", NewString("a\"b").String())
	assert.Equal(t, "\"a'b\"", NewString("a'b").String())
	assert.Equal(t, "'a\\'b\"c'", NewString("a'b\"c").String())
}

func TestPrintFloat(t *testing.T) {
	// An integral float must still print as a float.
	assert.Equal(t, "5.0", NewFloat(5.0).String())
	assert.Equal(t, "3.14", NewFloat(3.14).String())
}

func TestRoundTrip(t *testing.T) {
	inputs := []string{
		"(add 1 1)",
		"(first (list 1 (+ 2 3) 9))",
		"(list 1 3.14 'hello')",
		"'a\\'b'",
		"('a\"b' \"c'd\")",
		"(list 5.0)",
		"()",
	}
	//
	for _, input := range inputs {
		node, err := Parse(input)
		require.NoError(t, err, input)
		// Re-parse the rendered form; lone atoms need a terminator.
		again, err := Parse("(" + node.String() + ")")
		require.NoError(t, err, node.String())
		assert.Equal(t, NewList([]Node{node}), again, input)
	}
}

// ============================================================================
// Errors
// ============================================================================

func TestParseUnterminatedList(t *testing.T) {
	_, err := Parse("(add 1 1")
	//
	var serr *sexp.SyntaxError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, sexp.UnexpectedEndOfInput, serr.Code())
}

func TestParseTrailingInput(t *testing.T) {
	_, err := Parse("(add 1 1) x")
	//
	var serr *sexp.SyntaxError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, sexp.TrailingInput, serr.Code())
}

func TestParseInvalidEscape(t *testing.T) {
	_, err := Parse("'a\\nb'")
	//
	var serr *sexp.SyntaxError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, sexp.InvalidEscape, serr.Code())
}
