// SPDX-License-Identifier: MIT

package network

import (
	"sync"

	"github.com/katalvlaran/vnn/matrix"
)

// Guarded serializes every operation on a Network behind one mutex so that
// several goroutines can share it. Feed returns a clone, because the view a
// bare Network returns would be overwritten by the next caller.
type Guarded[T any] struct {
	mu  sync.Mutex
	net *Network[T]
}

// NewGuarded wraps net. net must not be used directly afterwards.
func NewGuarded[T any](net *Network[T]) *Guarded[T] {
	return &Guarded[T]{net: net}
}

// Feed runs the forward pass and returns an independent copy of the output.
func (g *Guarded[T]) Feed(input *matrix.Dense[T]) (*matrix.Dense[T], error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	out, err := g.net.Feed(input)
	if err != nil {
		return nil, err
	}
	return matrix.Clone(out)
}

// Step feeds input, measures the error against target and adjusts, as one
// atomic unit. It returns the error measured before the adjustment.
func (g *Guarded[T]) Step(input, target *matrix.Dense[T]) (T, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	var zero T
	if _, err := g.net.Feed(input); err != nil {
		return zero, err
	}
	e, err := g.net.Error(target)
	if err != nil {
		return zero, err
	}
	if err = g.net.Adjust(target); err != nil {
		return zero, err
	}
	return e, nil
}

// Train runs Network.Train under the lock.
func (g *Guarded[T]) Train(samples []Sample[T], opts ...TrainOption) (float64, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.net.Train(samples, opts...)
}

// Do runs fn with exclusive access to the wrapped network. fn must not keep
// references to epoch buffers after it returns.
func (g *Guarded[T]) Do(fn func(*Network[T]) error) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return fn(g.net)
}

// Release releases the wrapped network.
func (g *Guarded[T]) Release() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.net.Release()
}
