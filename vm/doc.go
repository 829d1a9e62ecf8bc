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

// Package vm implements the Intcode virtual machine.
//
// An Intcode program is a flat sequence of signed integers. The low two
// decimal digits of each instruction word select the opcode; the remaining
// digits, read least-significant first, select an addressing mode (position,
// immediate or relative) for each parameter in turn. Memory is unbounded:
// the program image is dense, everything above it reads as zero until
// written.
//
// The machine talks to the outside world through two narrow ports, Source
// and Sink. Both are blocking by contract and carry no buffering guarantees,
// which is what lets the same Instance be driven from a pre-built value
// list, interactively, against external simulation state, or across
// channels (see the pipeline package) without any change to the core.
//
// Callers that must interleave with external state between instructions can
// drive the machine one cycle at a time with Step instead of Run.
package vm
