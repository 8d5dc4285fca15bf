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
	"fmt"
	"strconv"
	"strings"
)

// Value is a runtime value produced by evaluation: a number, boolean,
// string, sequence, or a callable builtin.
type Value interface {
	// String generates a printable representation of this value.
	String() string
}

// Int is an integer value.
type Int struct {
	Value int64
}

// Float is a float value.
type Float struct {
	Value float64
}

// Bool is a boolean value.
type Bool struct {
	Value bool
}

// Str is a string value.
type Str struct {
	Value string
}

// Seq is an ordered sequence of values, as produced by the list builtin.
type Seq struct {
	Elements []Value
}

// Builtin is a callable value: applying a list form looks its head up to one
// of these and invokes it with the remaining elements as arguments.
type Builtin struct {
	// Name under which this builtin is registered.
	Name string
	// Apply this builtin to zero or more evaluated arguments.
	Apply func(args []Value) (Value, error)
}

// NOTE: These are used for compile time type checking if the given types
// satisfy the given interface.
var (
	_ Value = (*Int)(nil)
	_ Value = (*Float)(nil)
	_ Value = (*Bool)(nil)
	_ Value = (*Str)(nil)
	_ Value = (*Seq)(nil)
	_ Value = (*Builtin)(nil)
)

func (v *Int) String() string {
	return strconv.FormatInt(v.Value, 10)
}

func (v *Float) String() string {
	return strconv.FormatFloat(v.Value, 'f', -1, 64)
}

func (v *Bool) String() string {
	if v.Value {
		return "True"
	}

	return "False"
}

func (v *Str) String() string {
	return v.Value
}

func (v *Seq) String() string {
	var builder strings.Builder
	//
	builder.WriteString("(")

	for i, element := range v.Elements {
		if i != 0 {
			builder.WriteString(" ")
		}

		builder.WriteString(element.String())
	}

	builder.WriteString(")")

	return builder.String()
}

func (v *Builtin) String() string {
	return fmt.Sprintf("<builtin %s>", v.Name)
}
