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
package interp

import (
	"github.com/consensys/go-slisp/pkg/sexp"
)

// Eval parses and evaluates a given expression in a single pass, without
// materializing an intermediate tree.  Symbols resolve eagerly against the
// builtin table and every list form is applied as soon as it closes.
func Eval(text string) (Value, error) {
	return sexp.Parse[Value](text, Evaluator{})
}

// Evaluator implements the parser callbacks over the runtime value domain.
type Evaluator struct{}

// NOTE: This is used for compile time type checking if the given type
// satisfies the given interface.
var _ sexp.Callbacks[Value] = Evaluator{}

// OnInteger yields the integer itself.
func (e Evaluator) OnInteger(value int64) (Value, error) {
	return &Int{value}, nil
}

// OnFloat yields the float itself.
func (e Evaluator) OnFloat(value float64) (Value, error) {
	return &Float{value}, nil
}

// OnBoolean yields the boolean itself (reserved, see sexp.Callbacks).
func (e Evaluator) OnBoolean(value bool) (Value, error) {
	return &Bool{value}, nil
}

// OnString yields the string contents.
func (e Evaluator) OnString(value string) (Value, error) {
	return &Str{value}, nil
}

// OnSymbol resolves a symbol against the builtin table, failing immediately
// on a miss.
func (e Evaluator) OnSymbol(value string) (Value, error) {
	builtin, ok := builtins[value]
	if !ok {
		return nil, &UnknownSymbolError{value}
	}

	return builtin, nil
}

// OnList applies the first element as a callable to the remaining elements.
func (e Evaluator) OnList(values []Value) (Value, error) {
	if len(values) == 0 {
		return nil, applicationErrorf("cannot apply empty list")
	}
	//
	builtin, ok := values[0].(*Builtin)
	if !ok {
		return nil, applicationErrorf("cannot apply non-callable value %s", values[0])
	}

	return builtin.Apply(values[1:])
}
