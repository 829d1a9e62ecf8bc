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
	"bytes"
	"testing"

	"github.com/Denaun/aoc-2019/vm"
)

func TestMem_sparse(t *testing.T) {
	m := vm.NewMem(C{1, 2, 3})
	if v, err := m.Fetch(2); err != nil || v != 3 {
		t.Errorf("Fetch(2) = %d, %v; want 3", v, err)
	}
	// anything above the image reads as zero
	for _, addr := range []vm.Cell{3, 100, 1 << 40} {
		if v, err := m.Fetch(addr); err != nil || v != 0 {
			t.Errorf("Fetch(%d) = %d, %v; want 0", addr, v, err)
		}
	}
	if err := m.Store(1<<40, -7); err != nil {
		t.Fatalf("Store: %v", err)
	}
	if v, err := m.Fetch(1 << 40); err != nil || v != -7 {
		t.Errorf("Fetch(1<<40) = %d, %v; want -7", v, err)
	}
	if m.Size() != 3 {
		t.Errorf("Size = %d, want 3", m.Size())
	}
}

func TestMem_invalidAddress(t *testing.T) {
	m := vm.NewMem(C{99})
	if _, err := m.Fetch(-1); err == nil {
		t.Error("Fetch(-1): expected error")
	} else if _, ok := err.(*vm.AddressError); !ok {
		t.Errorf("Fetch(-1): %T, want *vm.AddressError", err)
	}
	if err := m.Store(-42, 1); err == nil {
		t.Error("Store(-42): expected error")
	} else if _, ok := err.(*vm.AddressError); !ok {
		t.Errorf("Store(-42): %T, want *vm.AddressError", err)
	}
}

func TestMem_isolated(t *testing.T) {
	program := C{1, 0, 0, 0, 99}
	m := vm.NewMem(program)
	if err := m.Store(0, 2); err != nil {
		t.Fatal(err)
	}
	if program[0] != 1 {
		t.Errorf("Store leaked into the source program: %v", program)
	}
}

func TestMem_dump(t *testing.T) {
	var b bytes.Buffer
	if err := vm.NewMem(C{109, 1, -4, 0}).Dump(&b); err != nil {
		t.Fatal(err)
	}
	if got, want := b.String(), "109,1,-4,0"; got != want {
		t.Errorf("Dump = %q, want %q", got, want)
	}
}
