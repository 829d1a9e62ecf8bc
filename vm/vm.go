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

// Instance represents an Intcode VM instance.
type Instance struct {
	PC       Cell // Program Counter (aka. Instruction Pointer)
	Mem      *Mem // Memory
	rb       Cell // relative base register
	halted   bool
	insCount int64
	in       Source
	out      Sink
}

// Option interface
type Option func(*Instance) error

// Input configures the input port. An Instance without an input port fails
// on the first input instruction.
func Input(s Source) Option {
	return func(i *Instance) error {
		i.in = s
		return nil
	}
}

// Output configures the output port. An Instance without an output port
// fails on the first output instruction.
func Output(s Sink) Option {
	return func(i *Instance) error {
		i.out = s
		return nil
	}
}

// SetOptions sets the provided options.
func (i *Instance) SetOptions(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(i); err != nil {
			return err
		}
	}
	return nil
}

// New creates a new Intcode Virtual Machine instance loaded with a copy of
// the given program. The PC and the relative base start at 0.
//
// Options will be set by calling SetOptions.
func New(program []Cell, opts ...Option) (*Instance, error) {
	i := &Instance{
		Mem: NewMem(program),
	}
	if err := i.SetOptions(opts...); err != nil {
		return nil, err
	}
	return i, nil
}

// Halted reports whether the instance reached a halt instruction.
func (i *Instance) Halted() bool {
	return i.halted
}

// RelativeBase returns the current value of the relative base register.
func (i *Instance) RelativeBase() Cell {
	return i.rb
}

// InstructionCount returns the number of instructions executed so far.
func (i *Instance) InstructionCount() int64 {
	return i.insCount
}
