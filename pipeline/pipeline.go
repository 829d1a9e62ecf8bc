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

package pipeline

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat/combin"

	"github.com/Denaun/aoc-2019/vm"
)

// DefaultTimeout bounds every blocking channel operation in a run. All
// machines are expected to halt on their own; hitting the timeout means the
// wiring is broken, never that waiting longer would help.
const DefaultTimeout = 10 * time.Second

// ProtocolError reports a channel operation that timed out, i.e. a wiring
// or liveness bug in the ring. It is fatal.
type ProtocolError struct {
	Stage int
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("stage %d: channel operation timed out", e.Stage)
}

// Pipeline is a ring of Intcode machines sharing one program, one machine
// per phase setting.
type Pipeline struct {
	program []vm.Cell
	phases  []vm.Cell
	timeout time.Duration
}

// Option interface
type Option func(*Pipeline) error

// Timeout overrides DefaultTimeout for every channel operation.
func Timeout(d time.Duration) Option {
	return func(p *Pipeline) error {
		if d <= 0 {
			return errors.Errorf("non-positive timeout %v", d)
		}
		p.timeout = d
		return nil
	}
}

// New creates a Pipeline of len(phases) machines loaded with copies of the
// given program. Program and phases are copied; the caller may reuse them.
func New(program, phases []vm.Cell, opts ...Option) (*Pipeline, error) {
	if len(phases) == 0 {
		return nil, errors.New("empty phase settings")
	}
	p := &Pipeline{
		program: append([]vm.Cell(nil), program...),
		phases:  append([]vm.Cell(nil), phases...),
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		if err := opt(p); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// Run executes all machines concurrently until every one has halted and
// returns the last value emitted by the terminal machine. The first machine
// receives the initial signal 0 after its phase setting.
func (p *Pipeline) Run() (vm.Cell, error) {
	n := len(p.phases)
	chs := make([]chan vm.Cell, n)
	for s := range chs {
		// cap 2: the phase seed plus at most one in-flight value, which
		// also absorbs the final loop-back send nobody receives
		chs[s] = make(chan vm.Cell, 2)
		chs[s] <- p.phases[s]
	}
	chs[0] <- 0

	var result vm.Cell // written by the terminal stage only, read after Wait
	var g errgroup.Group
	for s := 0; s < n; s++ {
		s := s
		in, out := chs[s], chs[(s+1)%n]
		terminal := s == n-1
		g.Go(func() error {
			src := vm.SourceFunc(func() (vm.Cell, error) {
				select {
				case v := <-in:
					return v, nil
				case <-time.After(p.timeout):
					return 0, &ProtocolError{Stage: s}
				}
			})
			sink := vm.SinkFunc(func(v vm.Cell) error {
				if terminal {
					result = v
				}
				select {
				case out <- v:
					return nil
				case <-time.After(p.timeout):
					return &ProtocolError{Stage: s}
				}
			})
			m, err := vm.New(p.program, vm.Input(src), vm.Output(sink))
			if err != nil {
				return err
			}
			return errors.Wrapf(m.Run(), "stage %d", s)
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}
	return result, nil
}

// MaxSignal runs the pipeline once per permutation of the given phase
// settings and returns the highest terminal signal found.
func MaxSignal(program, phases []vm.Cell, opts ...Option) (vm.Cell, error) {
	var best vm.Cell
	perm := make([]vm.Cell, len(phases))
	for k, idx := range combin.Permutations(len(phases), len(phases)) {
		for j, i := range idx {
			perm[j] = phases[i]
		}
		p, err := New(program, perm, opts...)
		if err != nil {
			return 0, err
		}
		v, err := p.Run()
		if err != nil {
			return 0, err
		}
		if k == 0 || v > best {
			best = v
		}
	}
	return best, nil
}
