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

// Instruction is one decoded instruction word: the operation plus one
// addressing mode per operand. Instructions are decoded fresh every cycle
// and never persisted.
type Instruction struct {
	Op    Opcode
	Modes []Mode
}

// Decode decodes a single instruction word. The low two decimal digits
// select the opcode; the remaining digits, least-significant first, select
// the mode of each operand in order. Operands beyond the supplied digits
// default to Position.
func Decode(w Cell) (Instruction, error) {
	if w < 0 {
		return Instruction{}, &OpcodeError{Word: w}
	}
	op := Opcode(w % 100)
	if !op.Valid() {
		return Instruction{}, &OpcodeError{Word: w}
	}
	digits := make([]Mode, 0, 3)
	for d := w / 100; d > 0; d /= 10 {
		m := Mode(d % 10)
		if m > Relative {
			return Instruction{}, &ModeError{Digit: Cell(m)}
		}
		digits = append(digits, m)
	}
	n := op.Operands()
	if len(digits) > n {
		return Instruction{}, &DigitsError{Op: op, Digits: digits}
	}
	modes := make([]Mode, n)
	copy(modes, digits)
	return Instruction{Op: op, Modes: modes}, nil
}

// Encode is the inverse of Decode. It rejects unknown opcodes, mode lists
// longer than the opcode's operand count, and out-of-range modes, so that
// Decode(Encode(instr)) is the identity on well-formed instructions.
func Encode(instr Instruction) (Cell, error) {
	if !instr.Op.Valid() {
		return 0, &OpcodeError{Word: Cell(instr.Op)}
	}
	if len(instr.Modes) > instr.Op.Operands() {
		return 0, &DigitsError{Op: instr.Op, Digits: instr.Modes}
	}
	w := Cell(instr.Op)
	mul := Cell(100)
	for _, m := range instr.Modes {
		if m < Position || m > Relative {
			return 0, &ModeError{Digit: Cell(m)}
		}
		w += Cell(m) * mul
		mul *= 10
	}
	return w, nil
}
