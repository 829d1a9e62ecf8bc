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

import "strconv"

// Cell is the raw type stored in a memory location.
type Cell int64

// Opcode is the operation selector of an instruction word (its low two
// decimal digits).
type Opcode Cell

// Intcode Virtual Machine Opcodes.
const (
	OpAdd            Opcode = 1
	OpMul            Opcode = 2
	OpInput          Opcode = 3
	OpOutput         Opcode = 4
	OpJumpIfTrue     Opcode = 5
	OpJumpIfFalse    Opcode = 6
	OpLessThan       Opcode = 7
	OpEquals         Opcode = 8
	OpAdjustRelative Opcode = 9
	OpHalt           Opcode = 99
)

// Valid reports whether op is a known opcode.
func (op Opcode) Valid() bool {
	return (op >= OpAdd && op <= OpAdjustRelative) || op == OpHalt
}

// Inputs returns the number of source operands of op.
func (op Opcode) Inputs() int {
	switch op {
	case OpAdd, OpMul, OpJumpIfTrue, OpJumpIfFalse, OpLessThan, OpEquals:
		return 2
	case OpOutput, OpAdjustRelative:
		return 1
	default:
		return 0
	}
}

// Outputs returns the number of destination operands of op.
func (op Opcode) Outputs() int {
	switch op {
	case OpAdd, OpMul, OpInput, OpLessThan, OpEquals:
		return 1
	default:
		return 0
	}
}

// Operands returns the total operand count of op. An instruction occupies
// 1+op.Operands() memory cells.
func (op Opcode) Operands() int {
	return op.Inputs() + op.Outputs()
}

func (op Opcode) String() string {
	switch op {
	case OpAdd:
		return "add"
	case OpMul:
		return "mul"
	case OpInput:
		return "in"
	case OpOutput:
		return "out"
	case OpJumpIfTrue:
		return "jnz"
	case OpJumpIfFalse:
		return "jz"
	case OpLessThan:
		return "lt"
	case OpEquals:
		return "eq"
	case OpAdjustRelative:
		return "rel"
	case OpHalt:
		return "halt"
	default:
		return "opcode(" + strconv.FormatInt(int64(op), 10) + ")"
	}
}

// Mode is the addressing mode of a single operand.
type Mode int8

// Operand addressing modes.
const (
	Position  Mode = 0 // operand cell is an absolute address
	Immediate Mode = 1 // operand cell is the value itself
	Relative  Mode = 2 // operand cell is an offset from the relative base
)

func (m Mode) String() string {
	switch m {
	case Position:
		return "position"
	case Immediate:
		return "immediate"
	case Relative:
		return "relative"
	default:
		return "mode(" + strconv.Itoa(int(m)) + ")"
	}
}
