package types

import (
	"testing"

	"github.com/consensys/go-slisp/pkg/sexp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckAdd(t *testing.T) {
	typ, err := Check("(add 1 1)")
	require.NoError(t, err)
	assert.Equal(t, Int, typ)
}

func TestCheckNth(t *testing.T) {
	typ, err := Check("(nth (list 1 (add 2 3) 9) 1)")
	require.NoError(t, err)
	assert.Equal(t, Int, typ)
}

func TestCheckListOfString(t *testing.T) {
	typ, err := Check("(list 's')")
	require.NoError(t, err)
	assert.Equal(t, ListOf(String), typ)
}

func TestCheckNestedList(t *testing.T) {
	typ, err := Check("(list (list 1) (list 2 3))")
	require.NoError(t, err)
	assert.Equal(t, ListOf(ListOf(Int)), typ)
}

func TestCheckNthOfNested(t *testing.T) {
	typ, err := Check("(nth (list (list 1.5)) 0)")
	require.NoError(t, err)
	assert.Equal(t, ListOf(Float), typ)
}

func TestCheckIdempotent(t *testing.T) {
	first, err := Check("(list 's')")
	require.NoError(t, err)
	second, err := Check("(list 's')")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

// ============================================================================
// Descriptor equality and printing
// ============================================================================

func TestTypeEquality(t *testing.T) {
	assert.True(t, Int.Equals(Int))
	assert.False(t, Int.Equals(Float))
	assert.False(t, Bool.Equals(String))
	assert.True(t, ListOf(Int).Equals(ListOf(Int)))
	assert.False(t, ListOf(Int).Equals(ListOf(String)))
	assert.False(t, ListOf(Int).Equals(Int))
	assert.True(t, ListOf(ListOf(String)).Equals(ListOf(ListOf(String))))
}

func TestTypeString(t *testing.T) {
	assert.Equal(t, "int", Int.String())
	assert.Equal(t, "(list string)", ListOf(String).String())
	assert.Equal(t, "(list (list float))", ListOf(ListOf(Float)).String())
}

// ============================================================================
// Errors
// ============================================================================

func TestCheckUnknownSymbol(t *testing.T) {
	_, err := Check("(foo 1)")
	//
	var uerr *UnknownSymbolError
	require.ErrorAs(t, err, &uerr)
	assert.Equal(t, "foo", uerr.Name)
}

func TestCheckHeterogeneousList(t *testing.T) {
	_, err := Check("(list 'd' 2 3)")
	//
	var merr *MismatchError
	require.ErrorAs(t, err, &merr)
}

func TestCheckEmptyList(t *testing.T) {
	_, err := Check("(list)")
	//
	var merr *MismatchError
	require.ErrorAs(t, err, &merr)
}

func TestCheckAddFloat(t *testing.T) {
	_, err := Check("(add 1 1.5)")
	//
	var merr *MismatchError
	require.ErrorAs(t, err, &merr)
}

func TestCheckAddStrings(t *testing.T) {
	_, err := Check("(add 'a' 'b')")
	//
	var merr *MismatchError
	require.ErrorAs(t, err, &merr)
}

func TestCheckNthNonList(t *testing.T) {
	_, err := Check("(nth 1 1)")
	//
	var merr *MismatchError
	require.ErrorAs(t, err, &merr)
}

func TestCheckNthNonIntIndex(t *testing.T) {
	_, err := Check("(nth (list 1) 'a')")
	//
	var merr *MismatchError
	require.ErrorAs(t, err, &merr)
}

func TestCheckNonFunctionHead(t *testing.T) {
	_, err := Check("(1 2)")
	//
	var merr *MismatchError
	require.ErrorAs(t, err, &merr)
}

func TestCheckSyntaxErrorPassesThrough(t *testing.T) {
	_, err := Check("(add 1 1) x")
	//
	var serr *sexp.SyntaxError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, sexp.TrailingInput, serr.Code())
}
