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
package sexp

// Callbacks describes how each syntactic category of a parsed expression is
// turned into a result of type T.  The parser invokes exactly one callback
// per completed syntactic unit, and never invokes a callback twice for the
// same unit.  This is what allows a single grammar traversal to serve
// multiple interpretations: building a tree, evaluating eagerly, or
// computing a type.
//
// A callback may fail, in which case the parse in progress is aborted and
// the error propagated to the caller unmodified.
type Callbacks[T any] interface {
	// OnInteger is invoked when an integer literal completes.
	OnInteger(value int64) (T, error)
	// OnFloat is invoked when a float literal completes.
	OnFloat(value float64) (T, error)
	// OnBoolean is reserved contract surface: no production of the current
	// grammar reaches it, since boolean-looking tokens (True/False) are
	// lexically indistinguishable from symbols and are dispatched through
	// OnSymbol instead.
	OnBoolean(value bool) (T, error)
	// OnString is invoked when a quoted string literal completes, with the
	// unquoted (and unescaped) contents.
	OnString(value string) (T, error)
	// OnSymbol is invoked when a symbol (identifier or operator) completes.
	OnSymbol(value string) (T, error)
	// OnList is invoked when a parenthesized list closes, with the results
	// already produced for its elements (in parse order).
	OnList(values []T) (T, error)
}
