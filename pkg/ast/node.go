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
	"strconv"
	"strings"
)

// Node is a node of an abstract syntax tree: an integer, float, boolean,
// string or symbol literal, or a list of zero or more nodes.
type Node interface {
	// AsInteger checks whether this node is an integer literal and, if so,
	// returns it.  Otherwise, it returns nil.
	AsInteger() *Integer
	// AsFloat checks whether this node is a float literal and, if so,
	// returns it.  Otherwise, it returns nil.
	AsFloat() *Float
	// AsBoolean checks whether this node is a boolean literal and, if so,
	// returns it.  Otherwise, it returns nil.
	AsBoolean() *Boolean
	// AsString checks whether this node is a string literal and, if so,
	// returns it.  Otherwise, it returns nil.
	AsString() *String
	// AsSymbol checks whether this node is a symbol and, if so, returns it.
	// Otherwise, it returns nil.
	AsSymbol() *Symbol
	// AsList checks whether this node is a list and, if so, returns it.
	// Otherwise, it returns nil.
	AsList() *List
	// String generates the textual form of this node.  Parsing the result
	// again yields a structurally equal tree.
	String() string
}

// ===================================================================
// Integer
// ===================================================================

// Integer represents an integer literal.
type Integer struct {
	Value int64
}

// NOTE: This is used for compile time type checking if the given type
// satisfies the given interface.
var _ Node = (*Integer)(nil)

// NewInteger creates a new integer literal node.
func NewInteger(value int64) *Integer {
	return &Integer{value}
}

// AsInteger returns the given integer.
func (n *Integer) AsInteger() *Integer { return n }

// AsFloat returns nil for an integer.
func (n *Integer) AsFloat() *Float { return nil }

// AsBoolean returns nil for an integer.
func (n *Integer) AsBoolean() *Boolean { return nil }

// AsString returns nil for an integer.
func (n *Integer) AsString() *String { return nil }

// AsSymbol returns nil for an integer.
func (n *Integer) AsSymbol() *Symbol { return nil }

// AsList returns nil for an integer.
func (n *Integer) AsList() *List { return nil }

func (n *Integer) String() string {
	return strconv.FormatInt(n.Value, 10)
}

// ===================================================================
// Float
// ===================================================================

// Float represents a float literal.
type Float struct {
	Value float64
}

var _ Node = (*Float)(nil)

// NewFloat creates a new float literal node.
func NewFloat(value float64) *Float {
	return &Float{value}
}

// AsInteger returns nil for a float.
func (n *Float) AsInteger() *Integer { return nil }

// AsFloat returns the given float.
func (n *Float) AsFloat() *Float { return n }

// AsBoolean returns nil for a float.
func (n *Float) AsBoolean() *Boolean { return nil }

// AsString returns nil for a float.
func (n *Float) AsString() *String { return nil }

// AsSymbol returns nil for a float.
func (n *Float) AsSymbol() *Symbol { return nil }

// AsList returns nil for a float.
func (n *Float) AsList() *List { return nil }

func (n *Float) String() string {
	s := strconv.FormatFloat(n.Value, 'f', -1, 64)
	// Ensure result still lexes as a float.
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}

	return s
}

// ===================================================================
// Boolean
// ===================================================================

// Boolean represents a boolean literal.  No production of the current
// grammar constructs one (True/False lex as symbols); the kind exists to
// mirror the full callback contract.
type Boolean struct {
	Value bool
}

var _ Node = (*Boolean)(nil)

// NewBoolean creates a new boolean literal node.
func NewBoolean(value bool) *Boolean {
	return &Boolean{value}
}

// AsInteger returns nil for a boolean.
func (n *Boolean) AsInteger() *Integer { return nil }

// AsFloat returns nil for a boolean.
func (n *Boolean) AsFloat() *Float { return nil }

// AsBoolean returns the given boolean.
func (n *Boolean) AsBoolean() *Boolean { return n }

// AsString returns nil for a boolean.
func (n *Boolean) AsString() *String { return nil }

// AsSymbol returns nil for a boolean.
func (n *Boolean) AsSymbol() *Symbol { return nil }

// AsList returns nil for a boolean.
func (n *Boolean) AsList() *List { return nil }

func (n *Boolean) String() string {
	if n.Value {
		return "True"
	}

	return "False"
}

// ===================================================================
// String
// ===================================================================

// String represents a string literal.  The value holds the unquoted,
// unescaped contents; quoting is reapplied when rendering.
type String struct {
	Value string
}

var _ Node = (*String)(nil)

// NewString creates a new string literal node.
func NewString(value string) *String {
	return &String{value}
}

// AsInteger returns nil for a string.
func (n *String) AsInteger() *Integer { return nil }

// AsFloat returns nil for a string.
func (n *String) AsFloat() *Float { return nil }

// AsBoolean returns nil for a string.
func (n *String) AsBoolean() *Boolean { return nil }

// AsString returns the given string.
func (n *String) AsString() *String { return n }

// AsSymbol returns nil for a string.
func (n *String) AsSymbol() *Symbol { return nil }

// AsList returns nil for a string.
func (n *String) AsList() *List { return nil }

func (n *String) String() string {
	var (
		builder strings.Builder
		quote   rune = '\''
	)
	// Prefer single quotes, switching when that avoids escaping.
	if strings.ContainsRune(n.Value, '\'') && !strings.ContainsRune(n.Value, '"') {
		quote = '"'
	}

	builder.WriteRune(quote)

	for _, char := range n.Value {
		if char == quote || char == '\\' {
			builder.WriteRune('\\')
		}

		builder.WriteRune(char)
	}

	builder.WriteRune(quote)

	return builder.String()
}

// ===================================================================
// Symbol
// ===================================================================

// Symbol represents an identifier or operator.
type Symbol struct {
	Value string
}

var _ Node = (*Symbol)(nil)

// NewSymbol creates a new symbol node.
func NewSymbol(value string) *Symbol {
	return &Symbol{value}
}

// AsInteger returns nil for a symbol.
func (n *Symbol) AsInteger() *Integer { return nil }

// AsFloat returns nil for a symbol.
func (n *Symbol) AsFloat() *Float { return nil }

// AsBoolean returns nil for a symbol.
func (n *Symbol) AsBoolean() *Boolean { return nil }

// AsString returns nil for a symbol.
func (n *Symbol) AsString() *String { return nil }

// AsSymbol returns the given symbol.
func (n *Symbol) AsSymbol() *Symbol { return n }

// AsList returns nil for a symbol.
func (n *Symbol) AsList() *List { return nil }

func (n *Symbol) String() string {
	return n.Value
}

// ===================================================================
// List
// ===================================================================

// List represents a list of zero or more nodes, in parse order.
type List struct {
	Elements []Node
}

var _ Node = (*List)(nil)

// NewList creates a new list from a given array of nodes.
func NewList(elements []Node) *List {
	return &List{elements}
}

// AsInteger returns nil for a list.
func (n *List) AsInteger() *Integer { return nil }

// AsFloat returns nil for a list.
func (n *List) AsFloat() *Float { return nil }

// AsBoolean returns nil for a list.
func (n *List) AsBoolean() *Boolean { return nil }

// AsString returns nil for a list.
func (n *List) AsString() *String { return nil }

// AsSymbol returns nil for a list.
func (n *List) AsSymbol() *Symbol { return nil }

// AsList returns the given list.
func (n *List) AsList() *List { return n }

// Len gets the number of elements in this list.
func (n *List) Len() int { return len(n.Elements) }

// Get the ith element of this list
func (n *List) Get(i int) Node { return n.Elements[i] }

func (n *List) String() string {
	var s = "("

	for i := 0; i < len(n.Elements); i++ {
		if i != 0 {
			s += " "
		}

		s += n.Elements[i].String()
	}

	s += ")"

	return s
}
