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
	"fmt"
)

// Type is a symbolic type descriptor: a base type, a parameterized list
// type, or a type-level function mirroring a runtime builtin's signature.
type Type interface {
	// Equals determines whether two descriptors denote the same type.
	Equals(other Type) bool
	// String generates a printable representation of this type.
	String() string
}

// Base type descriptors.  These are singletons, so identity comparison
// suffices for equality.
var (
	// Int is the type of integer literals.
	Int Type = &base{"int"}
	// Float is the type of float literals.
	Float Type = &base{"float"}
	// Bool is the type of boolean literals.
	Bool Type = &base{"bool"}
	// String is the type of string literals.
	String Type = &base{"string"}
)

type base struct {
	name string
}

// Equals holds only for the identical base type.
func (t *base) Equals(other Type) bool {
	return t == other
}

func (t *base) String() string {
	return t.name
}

// List is a parameterized list type, as produced by the list builtin.
type List struct {
	// Element is the type shared by every element of the list.
	Element Type
}

// NOTE: This is used for compile time type checking if the given type
// satisfies the given interface.
var _ Type = (*List)(nil)

// ListOf constructs the type of lists whose elements all have the given
// type.
func ListOf(element Type) *List {
	return &List{element}
}

// Equals holds for list types with equal element types.
func (t *List) Equals(other Type) bool {
	if o, ok := other.(*List); ok {
		return t.Element.Equals(o.Element)
	}

	return false
}

func (t *List) String() string {
	return fmt.Sprintf("(list %s)", t.Element)
}

// Builtin is a type-level function: applying a list form looks its head up
// to one of these, which validates the argument types and computes the
// result type.
type Builtin struct {
	// Name under which this builtin is registered.
	Name string
	// Apply this builtin to zero or more argument types.
	Apply func(args []Type) (Type, error)
}

var _ Type = (*Builtin)(nil)

// Equals holds only for the identical builtin.
func (t *Builtin) Equals(other Type) bool {
	return t == other
}

func (t *Builtin) String() string {
	return fmt.Sprintf("<builtin %s>", t.Name)
}
