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

// Mem is the machine's addressable store: a dense image holding the program
// plus a sparse extension for everything above it. Extension cells read as
// zero until written. Callers never see the split.
type Mem struct {
	image []Cell
	ext   map[Cell]Cell
}

// NewMem builds a store initialized with a copy of the given program.
// The program itself is never modified.
func NewMem(program []Cell) *Mem {
	image := make([]Cell, len(program))
	copy(image, program)
	return &Mem{image: image}
}

// Fetch reads the cell at the given address. Any non-negative address is
// readable; addresses beyond the program region read as zero until stored
// to. A negative address is an AddressError.
func (m *Mem) Fetch(addr Cell) (Cell, error) {
	if addr < 0 {
		return 0, &AddressError{Address: addr}
	}
	if int(addr) < len(m.image) {
		return m.image[addr], nil
	}
	return m.ext[addr], nil
}

// Store writes the cell at the given address, growing the sparse extension
// as needed. A negative address is an AddressError.
func (m *Mem) Store(addr, v Cell) error {
	if addr < 0 {
		return &AddressError{Address: addr}
	}
	if int(addr) < len(m.image) {
		m.image[addr] = v
		return nil
	}
	if m.ext == nil {
		m.ext = make(map[Cell]Cell)
	}
	m.ext[addr] = v
	return nil
}

// Image returns the dense program region. Value changes are reflected in
// the store, re-slicing is not.
func (m *Mem) Image() []Cell {
	return m.image
}

// Size returns the length of the dense program region.
func (m *Mem) Size() int {
	return len(m.image)
}
