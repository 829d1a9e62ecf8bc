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

// Package pipeline composes several Intcode machines into a directed ring
// with feedback (the amplifier network of day 7).
//
// Every machine runs the same program on its own memory and its own
// goroutine. Machine i's output feeds machine (i+1) mod N's input over a
// point-to-point channel; each channel is seeded with the receiving
// machine's phase setting, and the first one additionally with the initial
// signal 0. Values circulate until every machine halts. The result is the
// last value the terminal machine emitted.
//
// The same wiring serves single-pass amplifier chains: there the loop-back
// value simply parks in the first channel's buffer once every machine has
// halted.
package pipeline
