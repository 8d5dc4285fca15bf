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

import (
	"strconv"
)

// Parse a given string as exactly one expression, mapping each completed
// syntactic unit through the given callbacks.  The result for the top-level
// expression is returned, or an error if the string is malformed.
func Parse[T any](text string, callbacks Callbacks[T]) (T, error) {
	var empty T
	//
	c := newCursor(text)
	// Parse the input
	result, err := newParser(callbacks).parse(c)
	// Sanity check everything was parsed
	if err == nil && !c.exhausted() {
		return empty, c.syntaxError(TrailingInput, "unexpected remaining characters")
	} else if err != nil {
		return empty, err
	}

	return result, nil
}

// parser drives the character-level state machine for a single syntactic
// unit.  A fresh parser is constructed per unit; all parsers of one
// top-level parse share the same underlying cursor.
type parser[T any] struct {
	callbacks Callbacks[T]
	state     state[T]
}

func newParser[T any](callbacks Callbacks[T]) *parser[T] {
	return &parser[T]{
		callbacks: callbacks,
		state:     initial[T]{},
	}
}

// parse consumes characters until exactly one expression completes, firing
// exactly one callback and returning its result.  An atom is terminated by
// either a space (consumed) or a closing parenthesis (pushed back, so the
// enclosing list sees it and closes itself).
func (p *parser[T]) parse(c *cursor) (T, error) {
	var empty T
	//
	for {
		char, ok := c.next()
		if !ok {
			break
		}
		// Dispatch on (state, character)
		switch st := p.state.(type) {
		case initial[T]:
			switch {
			case char == ' ':
				// skip leading whitespace
			case char == '(':
				p.state = &inList[T]{}
			case isDigit(char):
				p.state = &inDigits[T]{[]rune{char}}
			case isSymbolRune(char):
				p.state = &inSymbol[T]{[]rune{char}}
			case char == '\'' || char == '"':
				p.state = &inString[T]{nil, char}
			default:
				return empty, unexpected(c, char)
			}
		case *inList[T]:
			switch {
			case char == ')':
				return p.callbacks.OnList(st.values)
			case char == ' ':
				// skip separator
			default:
				// Let a fresh parser re-examine this character as the start
				// of the next element.
				c.pushBack()
				//
				value, err := newParser(p.callbacks).parse(c)
				if err != nil {
					return empty, err
				}

				st.values = append(st.values, value)
			}
		case *inDigits[T]:
			switch {
			case isDigit(char):
				st.value = append(st.value, char)
			case char == '.':
				p.state = &inDecimal[T]{append(st.value, '.')}
			case char == ' ':
				return p.fireInteger(st.value)
			case char == ')':
				c.pushBack()
				return p.fireInteger(st.value)
			default:
				return empty, unexpected(c, char)
			}
		case *inDecimal[T]:
			switch {
			case isDigit(char):
				st.value = append(st.value, char)
			case char == ' ':
				return p.fireFloat(st.value)
			case char == ')':
				c.pushBack()
				return p.fireFloat(st.value)
			default:
				return empty, unexpected(c, char)
			}
		case *inSymbol[T]:
			switch {
			case isSymbolRune(char):
				st.value = append(st.value, char)
			case char == ' ':
				return p.callbacks.OnSymbol(string(st.value))
			case char == ')':
				c.pushBack()
				return p.callbacks.OnSymbol(string(st.value))
			default:
				return empty, unexpected(c, char)
			}
		case *inString[T]:
			switch {
			case char == st.quote:
				return p.callbacks.OnString(string(st.value))
			case char == '\\':
				escaped, ok := c.next()
				//
				if !ok {
					return empty, c.syntaxError(UnexpectedEndOfInput, "unexpected end of input")
				} else if escaped != st.quote && escaped != '\\' {
					return empty, invalidEscape(c, escaped)
				}

				st.value = append(st.value, escaped)
			default:
				st.value = append(st.value, char)
			}
		}
	}
	// Ran out of characters before this unit completed.
	return empty, c.syntaxError(UnexpectedEndOfInput, "unexpected end of input")
}

func (p *parser[T]) fireInteger(text []rune) (T, error) {
	var empty T
	//
	value, err := strconv.ParseInt(string(text), 10, 64)
	if err != nil {
		return empty, err
	}

	return p.callbacks.OnInteger(value)
}

func (p *parser[T]) fireFloat(text []rune) (T, error) {
	var empty T
	//
	value, err := strconv.ParseFloat(string(text), 64)
	if err != nil {
		return empty, err
	}

	return p.callbacks.OnFloat(value)
}

func isDigit(char rune) bool {
	return char >= '0' && char <= '9'
}

// Symbol characters are ASCII letters plus the four operator characters.
func isSymbolRune(char rune) bool {
	switch {
	case char >= 'a' && char <= 'z':
		return true
	case char >= 'A' && char <= 'Z':
		return true
	case char == '*' || char == '-' || char == '+' || char == '/':
		return true
	}

	return false
}

// Construct an error pointing at the most recently consumed character.
func unexpected(c *cursor, char rune) *SyntaxError {
	span := NewSpan(c.index-1, c.index)
	return NewSyntaxError(UnexpectedCharacter, span, "unexpected character '"+string(char)+"'")
}

// Construct an error for an unescapable character following a backslash.
func invalidEscape(c *cursor, char rune) *SyntaxError {
	span := NewSpan(c.index-1, c.index)
	return NewSyntaxError(InvalidEscape, span, "unexpected character after backslash '"+string(char)+"'")
}
