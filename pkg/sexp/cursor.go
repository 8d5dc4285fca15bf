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

// cursor is a position into the text being parsed.  It is created once per
// top-level parse and shared by reference across all recursive sub-parses,
// so that nested parses consume a contiguous prefix of the remaining input.
type cursor struct {
	// Text being parsed
	text []rune
	// Determine current position within text
	index int
}

func newCursor(text string) *cursor {
	return &cursor{
		text:  []rune(text),
		index: 0,
	}
}

// next consumes and returns the character at the front of the remaining
// input, or false if the input is exhausted.
func (p *cursor) next() (rune, bool) {
	if p.index == len(p.text) {
		return 0, false
	}

	p.index++

	return p.text[p.index-1], true
}

// pushBack returns the most recently consumed character to the front of the
// input, so it can be re-examined by the enclosing context.  This is the
// single mechanism which lets atom-parsing and list-closing share one
// lookahead character without a separate tokenizer pass.
func (p *cursor) pushBack() {
	p.index-- // backup
}

// exhausted reports whether any characters remain.
func (p *cursor) exhausted() bool {
	return p.index == len(p.text)
}

// Construct a parser error at the current position in the input stream.
func (p *cursor) syntaxError(code ErrorCode, msg string) *SyntaxError {
	span := NewSpan(p.index, p.index+1)
	return NewSyntaxError(code, span, msg)
}
