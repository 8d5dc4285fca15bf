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
)

// UnknownSymbolError indicates a symbol absent from the symbol table.  It is
// raised as soon as the symbol token completes, not deferred to when (or
// whether) the enclosing list is applied.
type UnknownSymbolError struct {
	// Name of the offending symbol.
	Name string
}

// Error implements the error interface.
func (p *UnknownSymbolError) Error() string {
	return fmt.Sprintf("unknown symbol: %s", p.Name)
}

// ApplicationError indicates a list form could not be applied: its head was
// not callable, or a builtin was called with the wrong number or kind of
// arguments.
type ApplicationError struct {
	msg string
}

// Error implements the error interface.
func (p *ApplicationError) Error() string {
	return p.msg
}

func applicationErrorf(format string, args ...any) *ApplicationError {
	return &ApplicationError{fmt.Sprintf(format, args...)}
}
