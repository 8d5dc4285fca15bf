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

// UnknownSymbolError indicates a symbol absent from the type table.  It is
// raised as soon as the symbol token completes.
type UnknownSymbolError struct {
	// Name of the offending symbol.
	Name string
}

// Error implements the error interface.
func (p *UnknownSymbolError) Error() string {
	return fmt.Sprintf("unknown symbol: %s", p.Name)
}

// MismatchError indicates a type-level function rejected the shape or
// compatibility of its argument types.
type MismatchError struct {
	msg string
}

// Error implements the error interface.
func (p *MismatchError) Error() string {
	return p.msg
}

func mismatchErrorf(format string, args ...any) *MismatchError {
	return &MismatchError{fmt.Sprintf(format, args...)}
}
