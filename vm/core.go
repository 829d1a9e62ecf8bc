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

import "github.com/pkg/errors"

// Run drives the VM to a halt instruction. If an error occurs, the PC will
// point to the instruction that triggered the error and the returned error
// carries it as context; errors.Cause recovers the typed error.
func (i *Instance) Run() error {
	for {
		more, err := i.Step()
		if err != nil {
			return err
		}
		if !more {
			return nil
		}
	}
}

// Step executes exactly one instruction and reports whether the machine is
// still runnable. It returns false once a halt instruction is reached, and
// keeps returning false on subsequent calls.
func (i *Instance) Step() (bool, error) {
	if i.halted {
		return false, nil
	}
	if i.PC < 0 || int(i.PC) >= i.Mem.Size() {
		return false, &IPError{IP: i.PC}
	}
	w, err := i.Mem.Fetch(i.PC)
	if err != nil {
		return false, errors.Wrapf(err, "pc=%d", i.PC)
	}
	instr, err := Decode(w)
	if err != nil {
		return false, errors.Wrapf(err, "pc=%d", i.PC)
	}
	i.insCount++
	if instr.Op == OpHalt {
		i.halted = true
		return false, nil
	}
	jumped, err := i.execute(instr)
	if err != nil {
		return false, errors.Wrapf(err, "pc=%d", i.PC)
	}
	if !jumped {
		i.PC += Cell(1 + instr.Op.Operands())
	}
	return true, nil
}

// execute runs one decoded instruction. It reports whether the instruction
// set the PC itself.
func (i *Instance) execute(instr Instruction) (bool, error) {
	switch instr.Op {
	case OpAdd, OpMul:
		lhs, err := i.load(1, instr.Modes[0])
		if err != nil {
			return false, err
		}
		rhs, err := i.load(2, instr.Modes[1])
		if err != nil {
			return false, err
		}
		var v Cell
		if instr.Op == OpAdd {
			v = lhs + rhs
			// overflow iff operand signs agree and the result's differs
			if (lhs > 0 && rhs > 0 && v < 0) || (lhs < 0 && rhs < 0 && v >= 0) {
				return false, &OverflowError{Op: instr.Op, LHS: lhs, RHS: rhs}
			}
		} else {
			v = lhs * rhs
			if lhs != 0 && (v/lhs != rhs || (lhs == -1 && rhs == minCell)) {
				return false, &OverflowError{Op: instr.Op, LHS: lhs, RHS: rhs}
			}
		}
		return false, i.store(instr.Op, 3, v, instr.Modes[2])
	case OpInput:
		if i.in == nil {
			return false, errors.New("no input source")
		}
		v, err := i.in.ReadCell()
		if err != nil {
			return false, errors.Wrap(err, "input")
		}
		return false, i.store(instr.Op, 1, v, instr.Modes[0])
	case OpOutput:
		v, err := i.load(1, instr.Modes[0])
		if err != nil {
			return false, err
		}
		if i.out == nil {
			return false, errors.New("no output sink")
		}
		return false, errors.Wrap(i.out.WriteCell(v), "output")
	case OpJumpIfTrue, OpJumpIfFalse:
		cond, err := i.load(1, instr.Modes[0])
		if err != nil {
			return false, err
		}
		if (cond != 0) != (instr.Op == OpJumpIfTrue) {
			return false, nil
		}
		target, err := i.load(2, instr.Modes[1])
		if err != nil {
			return false, err
		}
		if target < 0 || int(target) > i.Mem.Size() {
			return false, &IPError{IP: target}
		}
		i.PC = target
		return true, nil
	case OpLessThan, OpEquals:
		lhs, err := i.load(1, instr.Modes[0])
		if err != nil {
			return false, err
		}
		rhs, err := i.load(2, instr.Modes[1])
		if err != nil {
			return false, err
		}
		var v Cell
		if (instr.Op == OpLessThan && lhs < rhs) || (instr.Op == OpEquals && lhs == rhs) {
			v = 1
		}
		return false, i.store(instr.Op, 3, v, instr.Modes[2])
	case OpAdjustRelative:
		v, err := i.load(1, instr.Modes[0])
		if err != nil {
			return false, err
		}
		i.rb += v
		return false, nil
	}
	return false, &OpcodeError{Word: Cell(instr.Op)}
}

const minCell = Cell(-1 << 63)

// load resolves the off-th operand of the current instruction and reads its
// value according to the given mode.
func (i *Instance) load(off int, m Mode) (Cell, error) {
	v, err := i.Mem.Fetch(i.PC + Cell(off))
	if err != nil {
		return 0, err
	}
	switch m {
	case Immediate:
		return v, nil
	case Relative:
		v += i.rb
	}
	return i.Mem.Fetch(v)
}

// store resolves the off-th operand of instruction op as a destination
// address and writes v there. Immediate destinations are rejected.
func (i *Instance) store(op Opcode, off int, v Cell, m Mode) error {
	addr, err := i.Mem.Fetch(i.PC + Cell(off))
	if err != nil {
		return err
	}
	switch m {
	case Immediate:
		return &WriteModeError{Op: op}
	case Relative:
		addr += i.rb
	}
	return i.Mem.Store(addr, v)
}
