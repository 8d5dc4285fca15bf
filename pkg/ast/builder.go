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
package ast

import (
	"github.com/consensys/go-slisp/pkg/sexp"
)

// Parse a given string into an abstract syntax tree, or return an error if
// the string is malformed.
func Parse(text string) (Node, error) {
	return sexp.Parse[Node](text, Builder{})
}

// Builder implements the parser callbacks by mapping every literal to its
// natural tree representation, and lists to ordered sequences of child
// nodes.  Builders are stateless, hence a single traversal with one never
// leaks state into the next.
type Builder struct{}

// NOTE: This is used for compile time type checking if the given type
// satisfies the given interface.
var _ sexp.Callbacks[Node] = Builder{}

// OnInteger constructs an integer node.
func (b Builder) OnInteger(value int64) (Node, error) {
	return NewInteger(value), nil
}

// OnFloat constructs a float node.
func (b Builder) OnFloat(value float64) (Node, error) {
	return NewFloat(value), nil
}

// OnBoolean constructs a boolean node (reserved, see sexp.Callbacks).
func (b Builder) OnBoolean(value bool) (Node, error) {
	return NewBoolean(value), nil
}

// OnString constructs a string node.
func (b Builder) OnString(value string) (Node, error) {
	return NewString(value), nil
}

// OnSymbol constructs a symbol node.
func (b Builder) OnSymbol(value string) (Node, error) {
	return NewSymbol(value), nil
}

// OnList constructs a list node.
func (b Builder) OnList(values []Node) (Node, error) {
	return NewList(values), nil
}
