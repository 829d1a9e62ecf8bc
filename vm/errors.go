// This file is part of aoc-2019 - https://github.com/Denaun/aoc-2019
//
// Copyright 2019 Denaun
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package vm

import "fmt"

// All machine errors are fatal: execution aborts on the first one and the
// error is surfaced to the caller, wrapped with the PC of the offending
// instruction. Use errors.Cause to get back to one of the types below.

// AddressError reports a computed address that the machine cannot
// dereference (negative).
type AddressError struct {
	Address Cell
}

func (e *AddressError) Error() string {
	return fmt.Sprintf("invalid address %d", e.Address)
}

// IPError reports a jump target or fall-through position outside the
// program region.
type IPError struct {
	IP Cell
}

func (e *IPError) Error() string {
	return fmt.Sprintf("invalid instruction pointer %d", e.IP)
}

// OpcodeError reports an instruction word whose low two digits match no
// known operation.
type OpcodeError struct {
	Word Cell
}

func (e *OpcodeError) Error() string {
	return fmt.Sprintf("invalid op-code %d", e.Word)
}

// ModeError reports a mode digit outside {0, 1, 2}.
type ModeError struct {
	Digit Cell
}

func (e *ModeError) Error() string {
	return fmt.Sprintf("invalid mode %d", e.Digit)
}

// DigitsError reports an instruction word carrying more mode digits than
// the instruction has operands.
type DigitsError struct {
	Op     Opcode
	Digits []Mode
}

func (e *DigitsError) Error() string {
	return fmt.Sprintf("too many mode digits for %v: %v", e.Op, e.Digits)
}

// WriteModeError reports a writing instruction whose destination operand is
// in immediate mode. Immediate destinations are always rejected.
type WriteModeError struct {
	Op Opcode
}

func (e *WriteModeError) Error() string {
	return fmt.Sprintf("immediate destination for %v", e.Op)
}

// OverflowError reports an arithmetic result that does not fit in a Cell.
// Arithmetic is checked: the machine never wraps silently.
type OverflowError struct {
	Op       Opcode
	LHS, RHS Cell
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("%v overflow: %d, %d", e.Op, e.LHS, e.RHS)
}
