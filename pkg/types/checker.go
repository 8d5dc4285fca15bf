// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package types

import (
	"github.com/consensys/go-slisp/pkg/sexp"
)

// Check parses and typechecks a given expression in a single pass, without
// materializing an intermediate tree.  This mirrors evaluation structurally,
// but over the type-level domain: symbols resolve to type-level functions
// and applying a list form validates argument types rather than computing a
// value.
func Check(text string) (Type, error) {
	return sexp.Parse[Type](text, Checker{})
}

// Checker implements the parser callbacks over the type descriptor domain.
type Checker struct{}

// NOTE: This is used for compile time type checking if the given type
// satisfies the given interface.
var _ sexp.Callbacks[Type] = Checker{}

// OnInteger yields the integer base type.
func (c Checker) OnInteger(value int64) (Type, error) {
	return Int, nil
}

// OnFloat yields the float base type.
func (c Checker) OnFloat(value float64) (Type, error) {
	return Float, nil
}

// OnBoolean yields the boolean base type (reserved, see sexp.Callbacks).
func (c Checker) OnBoolean(value bool) (Type, error) {
	return Bool, nil
}

// OnString yields the string base type.
func (c Checker) OnString(value string) (Type, error) {
	return String, nil
}

// OnSymbol resolves a symbol against the table of type-level functions,
// failing immediately on a miss.
func (c Checker) OnSymbol(value string) (Type, error) {
	builtin, ok := builtins[value]
	if !ok {
		return nil, &UnknownSymbolError{value}
	}

	return builtin, nil
}

// OnList applies the first element as a type-level function to the
// remaining elements.
func (c Checker) OnList(values []Type) (Type, error) {
	if len(values) == 0 {
		return nil, mismatchErrorf("cannot apply empty list")
	}
	//
	builtin, ok := values[0].(*Builtin)
	if !ok {
		return nil, mismatchErrorf("cannot apply non-function type %s", values[0])
	}

	return builtin.Apply(values[1:])
}
