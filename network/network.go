// SPDX-License-Identifier: MIT

package network

import (
	"reflect"

	"github.com/katalvlaran/vnn/activation"
	"github.com/katalvlaran/vnn/matrix"
	"github.com/katalvlaran/vnn/numeric"
)

// Network is a fully connected feed-forward network over element type T.
type Network[T any] struct {
	ar          numeric.Arithmetic[T]
	units       []int
	rate        float64
	activations []activation.Activation[T]

	weights []*matrix.Dense[T] // L-1, (units[i]+1) × units[i+1]
	inner   []*matrix.Dense[T] // L-1, views of weights without the bias row

	// Epoch buffers; nil until the first Feed.
	outputs     []*matrix.Dense[T] // L, 1 × (units[i]+1)
	excitations []*matrix.Dense[T] // L-1, 1 × units[i+1], reused for f'(x)
	diagonals   []*matrix.Dense[T] // L-1, units[i+1] × units[i+1]
	deltas      []*matrix.Dense[T] // L-1, see package doc

	// Backprop scratch; nil until the first Feed.
	residual *matrix.Dense[T]   // 1 × units[L-1], output − target
	top      *matrix.Dense[T]   // 1 × units[L-1], residual · diagonals[L-2]
	columns  []*matrix.Dense[T] // L-1, units[i+1] × 1 (columns[L-2] unused)
	backward []*matrix.Dense[T] // L-1, units[i+1] × 1 (backward[L-2] unused)

	released bool
}

// New builds a network with len(units) layers. Layer i has units[i] neurons;
// activations[i] is applied at the boundary between layers i and i+1. Every
// weight (bias weights included) is drawn from gen, layer by layer in
// row-major order, so a seeded generator makes construction reproducible.
//
// Errors: ErrNilArithmetic, ErrTooFewLayers, ErrInvalidUnits,
// ErrActivationCount, ErrNilActivation, ErrNilGenerator.
func New[T any](
	ar numeric.Arithmetic[T],
	units []int,
	rate float64,
	activations []activation.Activation[T],
	gen matrix.Generator[T],
) (*Network[T], error) {
	if ar == nil {
		return nil, networkErrorf(opNew, ErrNilArithmetic)
	}
	if len(units) < 2 {
		return nil, networkErrorf(opNew, ErrTooFewLayers)
	}
	for _, u := range units {
		if u <= 0 {
			return nil, networkErrorf(opNew, ErrInvalidUnits)
		}
	}
	if len(activations) != len(units)-1 {
		return nil, networkErrorf(opNew, ErrActivationCount)
	}
	for _, a := range activations {
		if !validActivation(a) {
			return nil, networkErrorf(opNew, ErrNilActivation)
		}
	}
	if gen == nil {
		return nil, networkErrorf(opNew, ErrNilGenerator)
	}

	n := &Network[T]{
		ar:          ar,
		units:       append([]int(nil), units...),
		rate:        rate,
		activations: append([]activation.Activation[T](nil), activations...),
		weights:     make([]*matrix.Dense[T], len(units)-1),
		inner:       make([]*matrix.Dense[T], len(units)-1),
	}
	for i := range n.weights {
		w, err := matrix.Rand(ar, units[i]+1, units[i+1], gen)
		if err != nil {
			return nil, networkErrorf(opNew, err)
		}
		v, err := w.View(0, 0, units[i], units[i+1])
		if err != nil {
			return nil, networkErrorf(opNew, err)
		}
		n.weights[i], n.inner[i] = w, v
	}
	return n, nil
}

// validActivation rejects nil interfaces, typed nil pointers and
// activations whose Valid method reports a missing member.
func validActivation[T any](a activation.Activation[T]) bool {
	if a == nil {
		return false
	}
	if rv := reflect.ValueOf(a); rv.Kind() == reflect.Pointer && rv.IsNil() {
		return false
	}
	if v, ok := a.(interface{ Valid() bool }); ok {
		return v.Valid()
	}
	return true
}

// allocEpoch sizes every epoch buffer for the network's shape.
func (n *Network[T]) allocEpoch() error {
	L := len(n.units)
	outputs := make([]*matrix.Dense[T], L)
	excitations := make([]*matrix.Dense[T], L-1)
	diagonals := make([]*matrix.Dense[T], L-1)
	deltas := make([]*matrix.Dense[T], L-1)
	columns := make([]*matrix.Dense[T], L-1)
	backward := make([]*matrix.Dense[T], L-1)

	var err error
	zeros := func(rows, cols int) *matrix.Dense[T] {
		if err != nil {
			return nil
		}
		var m *matrix.Dense[T]
		m, err = matrix.Zeros(n.ar, rows, cols)
		return m
	}
	for i := 0; i < L; i++ {
		outputs[i] = zeros(1, n.units[i]+1)
	}
	for i := 0; i < L-1; i++ {
		next := n.units[i+1]
		excitations[i] = zeros(1, next)
		diagonals[i] = zeros(next, next)
		deltas[i] = zeros(next, n.units[i]+1)
		if i < L-2 {
			columns[i] = zeros(next, 1)
			backward[i] = zeros(next, 1)
		}
	}
	residual := zeros(1, n.units[L-1])
	top := zeros(1, n.units[L-1])
	if err != nil {
		return err
	}

	n.outputs, n.excitations, n.diagonals, n.deltas = outputs, excitations, diagonals, deltas
	n.columns, n.backward = columns, backward
	n.residual, n.top = residual, top
	return nil
}

// fed reports whether the forward pass has run; diagonals[0] stays nil until then.
func (n *Network[T]) fed() bool {
	return len(n.diagonals) > 0 && n.diagonals[0] != nil
}

// live checks the network can be used.
func (n *Network[T]) live() error {
	if n == nil || n.released {
		return ErrReleased
	}
	return nil
}

// Layers returns the layer count L (0 once released).
func (n *Network[T]) Layers() int {
	if n.live() != nil {
		return 0
	}
	return len(n.units)
}

// Units returns a copy of the units-per-layer vector.
func (n *Network[T]) Units() []int {
	if n.live() != nil {
		return nil
	}
	return append([]int(nil), n.units...)
}

// Rate returns the learning rate.
func (n *Network[T]) Rate() float64 { return n.rate }

// SetRate changes the learning rate used by later Adjust calls.
func (n *Network[T]) SetRate(rate float64) { n.rate = rate }

// Arithmetic returns the element arithmetic of the network.
func (n *Network[T]) Arithmetic() numeric.Arithmetic[T] { return n.ar }

// Activations returns a copy of the per-boundary activations.
func (n *Network[T]) Activations() []activation.Activation[T] {
	return append([]activation.Activation[T](nil), n.activations...)
}

// Fed reports whether at least one sample has been fed.
func (n *Network[T]) Fed() bool { return n.live() == nil && n.fed() }

// Released reports whether Release has been called.
func (n *Network[T]) Released() bool { return n == nil || n.released }

// Weights returns weight matrix i (0 ≤ i < L-1). The result is the live
// matrix: writes through it change the network, and it must not be released
// independently.
func (n *Network[T]) Weights(i int) (*matrix.Dense[T], error) {
	if err := n.live(); err != nil {
		return nil, networkErrorf(opPeek, err)
	}
	if i < 0 || i >= len(n.weights) {
		return nil, networkErrorf(opPeek, ErrLayerOutOfRange)
	}
	return n.weights[i], nil
}

// Output returns the bias-augmented activations of layer i (0 ≤ i < L) from
// the most recent Feed.
func (n *Network[T]) Output(i int) (*matrix.Dense[T], error) {
	return n.peekEpoch(i, func() []*matrix.Dense[T] { return n.outputs })
}

// Diagonal returns the diagonalized derivative of boundary i (0 ≤ i < L-1)
// from the most recent Feed.
func (n *Network[T]) Diagonal(i int) (*matrix.Dense[T], error) {
	return n.peekEpoch(i, func() []*matrix.Dense[T] { return n.diagonals })
}

// Delta returns the update applied to weights i by the most recent Adjust,
// in weight orientation and already scaled by −rate. Before the first Adjust
// it is all zeros.
func (n *Network[T]) Delta(i int) (*matrix.Dense[T], error) {
	return n.peekEpoch(i, func() []*matrix.Dense[T] { return n.deltas })
}

func (n *Network[T]) peekEpoch(i int, list func() []*matrix.Dense[T]) (*matrix.Dense[T], error) {
	if err := n.live(); err != nil {
		return nil, networkErrorf(opPeek, err)
	}
	if !n.fed() {
		return nil, networkErrorf(opPeek, ErrNotFed)
	}
	ms := list()
	if i < 0 || i >= len(ms) {
		return nil, networkErrorf(opPeek, ErrLayerOutOfRange)
	}
	return ms[i], nil
}

// Release frees the weights and every epoch buffer and moves the network to
// its terminal state. Matrices obtained from accessors or Feed observe the
// release. Releasing twice returns ErrReleased.
func (n *Network[T]) Release() error {
	if err := n.live(); err != nil {
		return networkErrorf(opRelease, err)
	}
	for _, group := range [][]*matrix.Dense[T]{n.weights, n.outputs, n.excitations, n.diagonals, n.deltas, n.columns, n.backward} {
		for _, m := range group {
			if m != nil {
				_ = m.Release()
			}
		}
	}
	for _, m := range []*matrix.Dense[T]{n.residual, n.top} {
		if m != nil {
			_ = m.Release()
		}
	}
	n.weights, n.inner = nil, nil
	n.outputs, n.excitations, n.diagonals, n.deltas = nil, nil, nil, nil
	n.columns, n.backward = nil, nil
	n.residual, n.top = nil, nil
	n.units = nil
	n.released = true
	return nil
}
