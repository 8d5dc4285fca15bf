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

// builtins is the fixed table of type-level functions against which every
// symbol resolves.  Initialized once, never mutated.
var builtins = map[string]*Builtin{
	"list": {"list", listBuiltin},
	"add":  {"add", addBuiltin},
	"nth":  {"nth", nthBuiltin},
}

// A list of elements of type E has type (list E).  The check is applied per
// call: every element type must equal the first.
func listBuiltin(args []Type) (Type, error) {
	if len(args) == 0 {
		return nil, mismatchErrorf("list requires at least one element")
	}
	//
	for _, arg := range args[1:] {
		if !arg.Equals(args[0]) {
			return nil, mismatchErrorf("list elements must share one type, got %s and %s", args[0], arg)
		}
	}
	//
	return ListOf(args[0]), nil
}

// Adding two ints yields an int.
func addBuiltin(args []Type) (Type, error) {
	if len(args) != 2 {
		return nil, mismatchErrorf("add expects 2 arguments, got %d", len(args))
	} else if !args[0].Equals(Int) {
		return nil, mismatchErrorf("add expects %s, got %s", Int, args[0])
	} else if !args[1].Equals(Int) {
		return nil, mismatchErrorf("add expects %s, got %s", Int, args[1])
	}
	//
	return Int, nil
}

// Indexing a (list E) with an int yields an E.
func nthBuiltin(args []Type) (Type, error) {
	if len(args) != 2 {
		return nil, mismatchErrorf("nth expects 2 arguments, got %d", len(args))
	}
	//
	list, ok := args[0].(*List)
	//
	if !ok {
		return nil, mismatchErrorf("nth expects a list type, got %s", args[0])
	} else if !args[1].Equals(Int) {
		return nil, mismatchErrorf("nth index must be %s, got %s", Int, args[1])
	}
	//
	return list.Element, nil
}
