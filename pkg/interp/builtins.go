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

// builtins is the fixed symbol table against which every symbol resolves.
// Initialized once, never mutated.
var builtins = map[string]*Builtin{
	"list": {"list", listBuiltin},
	"add":  {"add", addBuiltin},
	"nth":  {"nth", nthBuiltin},
	"+":    {"+", addBuiltin},
}

// Construct a sequence from the given arguments.
func listBuiltin(args []Value) (Value, error) {
	return &Seq{args}, nil
}

// Add two values together.  Two ints yield an int; any numeric mix yields a
// float; strings and sequences concatenate.
func addBuiltin(args []Value) (Value, error) {
	if len(args) != 2 {
		return nil, applicationErrorf("add expects 2 arguments, got %d", len(args))
	}
	//
	switch lhs := args[0].(type) {
	case *Int:
		switch rhs := args[1].(type) {
		case *Int:
			return &Int{lhs.Value + rhs.Value}, nil
		case *Float:
			return &Float{float64(lhs.Value) + rhs.Value}, nil
		}
	case *Float:
		switch rhs := args[1].(type) {
		case *Int:
			return &Float{lhs.Value + float64(rhs.Value)}, nil
		case *Float:
			return &Float{lhs.Value + rhs.Value}, nil
		}
	case *Str:
		if rhs, ok := args[1].(*Str); ok {
			return &Str{lhs.Value + rhs.Value}, nil
		}
	case *Seq:
		if rhs, ok := args[1].(*Seq); ok {
			elements := make([]Value, 0, len(lhs.Elements)+len(rhs.Elements))
			elements = append(elements, lhs.Elements...)
			elements = append(elements, rhs.Elements...)
			//
			return &Seq{elements}, nil
		}
	}
	//
	return nil, applicationErrorf("cannot add %s and %s", args[0], args[1])
}

// Extract the ith element of a sequence (or character of a string).
func nthBuiltin(args []Value) (Value, error) {
	if len(args) != 2 {
		return nil, applicationErrorf("nth expects 2 arguments, got %d", len(args))
	}
	//
	index, ok := args[1].(*Int)
	if !ok {
		return nil, applicationErrorf("nth index must be an integer, got %s", args[1])
	}
	//
	switch target := args[0].(type) {
	case *Seq:
		if index.Value < 0 || index.Value >= int64(len(target.Elements)) {
			return nil, applicationErrorf("index %d out of bounds", index.Value)
		}

		return target.Elements[index.Value], nil
	case *Str:
		runes := []rune(target.Value)
		//
		if index.Value < 0 || index.Value >= int64(len(runes)) {
			return nil, applicationErrorf("index %d out of bounds", index.Value)
		}

		return &Str{string(runes[index.Value])}, nil
	}
	//
	return nil, applicationErrorf("cannot index into %s", args[0])
}
