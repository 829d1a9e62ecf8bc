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

// Source produces the machine's next input value. ReadCell may block; a
// returned error aborts execution.
type Source interface {
	ReadCell() (Cell, error)
}

// Sink consumes one output value from the machine. WriteCell may block; a
// returned error aborts execution.
type Sink interface {
	WriteCell(v Cell) error
}

// SourceFunc adapts a plain function to the Source interface.
type SourceFunc func() (Cell, error)

// ReadCell calls f.
func (f SourceFunc) ReadCell() (Cell, error) { return f() }

// SinkFunc adapts a plain function to the Sink interface.
type SinkFunc func(v Cell) error

// WriteCell calls f.
func (f SinkFunc) WriteCell(v Cell) error { return f(v) }

// Values returns a Source that yields the given values in order and fails
// once they are exhausted.
func Values(vs ...Cell) Source {
	return SourceFunc(func() (Cell, error) {
		if len(vs) == 0 {
			return 0, errors.New("input exhausted")
		}
		v := vs[0]
		vs = vs[1:]
		return v, nil
	})
}

// Collect returns a Sink that appends every written value to *dst.
func Collect(dst *[]Cell) Sink {
	return SinkFunc(func(v Cell) error {
		*dst = append(*dst, v)
		return nil
	})
}
