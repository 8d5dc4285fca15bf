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

// state is the sum of states a parser can be in whilst consuming a single
// syntactic unit.  Exactly one state is active at a time; transitions are a
// pure function of the current state and the next character.
type state[T any] interface {
	isState()
}

// initial indicates no characters have been consumed yet for this unit.
type initial[T any] struct{}

// inList indicates the parser is inside "(...)", accumulating fully-parsed
// element results.
type inList[T any] struct {
	values []T
}

// inDigits indicates the parser is accumulating an integer literal.
type inDigits[T any] struct {
	value []rune
}

// inDecimal indicates the parser is accumulating a float literal, with the
// decimal point already appended.
type inDecimal[T any] struct {
	value []rune
}

// inString indicates the parser is accumulating a string literal.  The quote
// rune fixes which character closes it.
type inString[T any] struct {
	value []rune
	quote rune
}

// inSymbol indicates the parser is accumulating a symbol.
type inSymbol[T any] struct {
	value []rune
}

func (initial[T]) isState()   {}
func (*inList[T]) isState()   {}
func (*inDigits[T]) isState() {}
func (*inDecimal[T]) isState() {}
func (*inString[T]) isState() {}
func (*inSymbol[T]) isState() {}
