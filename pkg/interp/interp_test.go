package interp

import (
	"testing"

	"github.com/consensys/go-slisp/pkg/sexp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvalAdd(t *testing.T) {
	value, err := Eval("(add 1 1)")
	require.NoError(t, err)
	assert.Equal(t, &Int{2}, value)
}

func TestEvalNth(t *testing.T) {
	value, err := Eval("(nth (list 1 (+ 2 3) 9) 1)")
	require.NoError(t, err)
	assert.Equal(t, &Int{5}, value)
}

func TestEvalAddFloats(t *testing.T) {
	value, err := Eval("(add 1.5 2.25)")
	require.NoError(t, err)
	assert.Equal(t, &Float{3.75}, value)
}

func TestEvalAddMixed(t *testing.T) {
	// Any numeric mix yields a float.
	value, err := Eval("(add 1 2.5)")
	require.NoError(t, err)
	assert.Equal(t, &Float{3.5}, value)
}

func TestEvalAddStrings(t *testing.T) {
	value, err := Eval("(add 'foo' \"bar\")")
	require.NoError(t, err)
	assert.Equal(t, &Str{"foobar"}, value)
}

func TestEvalAddSeqs(t *testing.T) {
	value, err := Eval("(add (list 1) (list 2 3))")
	require.NoError(t, err)
	assert.Equal(t, &Seq{[]Value{&Int{1}, &Int{2}, &Int{3}}}, value)
}

func TestEvalList(t *testing.T) {
	value, err := Eval("(list 1 'x' 2.5)")
	require.NoError(t, err)
	assert.Equal(t, &Seq{[]Value{&Int{1}, &Str{"x"}, &Float{2.5}}}, value)
	assert.Equal(t, "(1 x 2.5)", value.String())
}

func TestEvalNthString(t *testing.T) {
	value, err := Eval("(nth 'abc' 1)")
	require.NoError(t, err)
	assert.Equal(t, &Str{"b"}, value)
}

func TestEvalIdempotent(t *testing.T) {
	first, err := Eval("(nth (list 1 (+ 2 3) 9) 1)")
	require.NoError(t, err)
	second, err := Eval("(nth (list 1 (+ 2 3) 9) 1)")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

// ============================================================================
// Errors
// ============================================================================

func TestEvalUnknownSymbol(t *testing.T) {
	_, err := Eval("(foo 1)")
	//
	var uerr *UnknownSymbolError
	require.ErrorAs(t, err, &uerr)
	assert.Equal(t, "foo", uerr.Name)
}

// A symbol fails as soon as its token completes, even when the enclosing
// list never closes.
func TestEvalUnknownSymbolEager(t *testing.T) {
	_, err := Eval("(foo 1")
	//
	var uerr *UnknownSymbolError
	require.ErrorAs(t, err, &uerr)
	assert.Equal(t, "foo", uerr.Name)
}

func TestEvalNonCallableHead(t *testing.T) {
	_, err := Eval("(1 2)")
	//
	var aerr *ApplicationError
	require.ErrorAs(t, err, &aerr)
}

func TestEvalEmptyApplication(t *testing.T) {
	_, err := Eval("()")
	//
	var aerr *ApplicationError
	require.ErrorAs(t, err, &aerr)
}

func TestEvalWrongArity(t *testing.T) {
	_, err := Eval("(add 1)")
	//
	var aerr *ApplicationError
	require.ErrorAs(t, err, &aerr)
}

func TestEvalWrongOperandTypes(t *testing.T) {
	_, err := Eval("(add 1 'x')")
	//
	var aerr *ApplicationError
	require.ErrorAs(t, err, &aerr)
}

func TestEvalIndexOutOfBounds(t *testing.T) {
	_, err := Eval("(nth (list 1) 5)")
	//
	var aerr *ApplicationError
	require.ErrorAs(t, err, &aerr)
}

func TestEvalSyntaxErrorPassesThrough(t *testing.T) {
	_, err := Eval("(add 1 1")
	//
	var serr *sexp.SyntaxError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, sexp.UnexpectedEndOfInput, serr.Code())
}
