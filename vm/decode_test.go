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

package vm_test

import (
	"reflect"
	"testing"

	"github.com/Denaun/aoc-2019/vm"
)

func instr(op vm.Opcode, modes ...vm.Mode) vm.Instruction {
	all := make([]vm.Mode, op.Operands())
	copy(all, modes)
	return vm.Instruction{Op: op, Modes: all}
}

var decodeTests = [...]struct {
	word vm.Cell
	want vm.Instruction
}{
	{1, instr(vm.OpAdd)},
	{2, instr(vm.OpMul)},
	{3, instr(vm.OpInput)},
	{4, instr(vm.OpOutput)},
	{5, instr(vm.OpJumpIfTrue)},
	{6, instr(vm.OpJumpIfFalse)},
	{7, instr(vm.OpLessThan)},
	{8, instr(vm.OpEquals)},
	{9, instr(vm.OpAdjustRelative)},
	{99, instr(vm.OpHalt)},
	{21101, instr(vm.OpAdd, vm.Immediate, vm.Immediate, vm.Relative)},
	{1001, instr(vm.OpAdd, vm.Position, vm.Immediate)},
	{102, instr(vm.OpMul, vm.Immediate)},
	{104, instr(vm.OpOutput, vm.Immediate)},
	{105, instr(vm.OpJumpIfTrue, vm.Immediate)},
	{1006, instr(vm.OpJumpIfFalse, vm.Position, vm.Immediate)},
	{1107, instr(vm.OpLessThan, vm.Immediate, vm.Immediate)},
	{1108, instr(vm.OpEquals, vm.Immediate, vm.Immediate)},
	{209, instr(vm.OpAdjustRelative, vm.Relative)},
}

func TestDecode(t *testing.T) {
	for _, tt := range decodeTests {
		got, err := vm.Decode(tt.word)
		if err != nil {
			t.Errorf("Decode(%d): %v", tt.word, err)
			continue
		}
		if got.Op != vm.Opcode(tt.word%100) {
			t.Errorf("Decode(%d): opcode %v, want %d", tt.word, got.Op, tt.word%100)
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Decode(%d) = %v, want %v", tt.word, got, tt.want)
		}
	}
}

func TestDecode_errors(t *testing.T) {
	for _, tt := range [...]struct {
		word vm.Cell
		want error
	}{
		{0, &vm.OpcodeError{}},
		{98, &vm.OpcodeError{}},
		{-1, &vm.OpcodeError{}},
		{302, &vm.ModeError{}},
		// 199 is halt with a mode digit, 11104 is out with three
		{199, &vm.DigitsError{}},
		{11104, &vm.DigitsError{}},
	} {
		_, err := vm.Decode(tt.word)
		if err == nil {
			t.Errorf("Decode(%d): expected error", tt.word)
			continue
		}
		if reflect.TypeOf(err) != reflect.TypeOf(tt.want) {
			t.Errorf("Decode(%d) = %v (%T), want %T", tt.word, err, err, tt.want)
		}
	}
}

func TestEncode_roundTrip(t *testing.T) {
	for _, tt := range decodeTests {
		in, err := vm.Decode(tt.word)
		if err != nil {
			t.Fatalf("Decode(%d): %v", tt.word, err)
		}
		w, err := vm.Encode(in)
		if err != nil {
			t.Errorf("Encode(%v): %v", in, err)
			continue
		}
		// trailing Position modes carry no digits, so the round trip may
		// legally shed them: compare decoded forms instead of raw words
		out, err := vm.Decode(w)
		if err != nil {
			t.Errorf("Decode(Encode(%v)): %v", in, err)
			continue
		}
		if !reflect.DeepEqual(in, out) {
			t.Errorf("round trip %d -> %v -> %d -> %v", tt.word, in, w, out)
		}
	}
}

func TestEncode_errors(t *testing.T) {
	if _, err := vm.Encode(vm.Instruction{Op: 42}); err == nil {
		t.Error("Encode: expected error for unknown opcode")
	}
	bad := vm.Instruction{Op: vm.OpOutput, Modes: []vm.Mode{0, 0}}
	if _, err := vm.Encode(bad); err == nil {
		t.Error("Encode: expected error for excess modes")
	}
	bad = vm.Instruction{Op: vm.OpOutput, Modes: []vm.Mode{3}}
	if _, err := vm.Encode(bad); err == nil {
		t.Error("Encode: expected error for out-of-range mode")
	}
}
