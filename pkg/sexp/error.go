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
	"fmt"
)

// ErrorCode classifies the ways in which parsing itself can fail.  Errors
// arising from callbacks (e.g. an unknown symbol) are not syntax errors and
// pass through the parser unmodified.
type ErrorCode int

const (
	// UnexpectedCharacter indicates a character which matches no transition
	// for the current parser state.
	UnexpectedCharacter ErrorCode = iota
	// UnexpectedEndOfInput indicates the input was exhausted mid-literal or
	// mid-list.
	UnexpectedEndOfInput
	// TrailingInput indicates characters remained after a complete top-level
	// expression.
	TrailingInput
	// InvalidEscape indicates the character following a backslash inside a
	// string was neither the active quote nor a backslash.
	InvalidEscape
)

// SyntaxError is a structured error which retains the index into the original
// string where an error occurred, along with an error code and message.
type SyntaxError struct {
	// Classification of this error.
	code ErrorCode
	// Index into string being parsed where error arose.
	span Span
	// Error message being reported
	msg string
}

// NewSyntaxError simply constructs a new syntax error.
func NewSyntaxError(code ErrorCode, span Span, msg string) *SyntaxError {
	return &SyntaxError{code, span, msg}
}

// Code returns the classification of this error.
func (p *SyntaxError) Code() ErrorCode {
	return p.code
}

// Span returns the span of the original text on which this error is reported.
func (p *SyntaxError) Span() Span {
	return p.span
}

// Message returns the message to be reported.
func (p *SyntaxError) Message() string {
	return p.msg
}

// Error implements the error interface.
func (p *SyntaxError) Error() string {
	return fmt.Sprintf("%d:%d:%s", p.span.Start(), p.span.End(), p.Message())
}
