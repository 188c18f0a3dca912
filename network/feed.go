// SPDX-License-Identifier: MIT

package network

import "github.com/katalvlaran/vnn/matrix"

// Feed runs the forward pass for one sample and returns the output layer's
// activations (1 × units[L-1]).
//
// input must be 1 × units[0]. For every boundary i the pass
//   - computes the excitation outputs[i] · weights[i];
//   - stores f(excitation) plus a trailing bias cell of one in outputs[i+1];
//   - stores diag(f'(excitation)) in diagonals[i] for the next Adjust.
//
// The returned matrix is a view into the network's epoch buffers: it is
// overwritten by the next Feed and must not be released by the caller. Clone
// it to keep the values.
//
// Errors: ErrReleased, ErrShapeMismatch, or a wrapped matrix error if input
// is nil, released or shares storage with the network.
// Complexity: O(Σ n_i·n_(i+1) + Σ n_(i+1)²).
func (n *Network[T]) Feed(input *matrix.Dense[T]) (*matrix.Dense[T], error) {
	if err := n.live(); err != nil {
		return nil, networkErrorf(opFeed, err)
	}
	if err := matrix.ValidateLive(input); err != nil {
		return nil, networkErrorf(opFeed, err)
	}
	if input.Rows() != 1 || input.Cols() != n.units[0] {
		return nil, networkErrorf(opFeed, ErrShapeMismatch)
	}
	if !n.fed() {
		if err := n.allocEpoch(); err != nil {
			return nil, networkErrorf(opFeed, err)
		}
	}

	one := n.ar.One()
	if err := matrix.ResizeInto(n.outputs[0], input, one); err != nil {
		return nil, networkErrorf(opFeed, err)
	}
	for i, act := range n.activations {
		if err := n.forward(i, act.Activate, act.Derivative, one); err != nil {
			return nil, networkErrorf(opFeed, err)
		}
	}

	last := len(n.units) - 1
	out, err := n.outputs[last].View(0, 0, 1, n.units[last])
	if err != nil {
		return nil, networkErrorf(opFeed, err)
	}
	return out, nil
}

// forward computes boundary i: outputs[i] → outputs[i+1], diagonals[i].
func (n *Network[T]) forward(i int, activate, derivative func(T) T, one T) error {
	exc, next := n.excitations[i], n.outputs[i+1]
	if err := matrix.MultiplyInto(exc, n.outputs[i], n.weights[i]); err != nil {
		return err
	}

	// Resize appends the bias cell; only the unit columns are activated.
	if err := matrix.ResizeInto(next, exc, one); err != nil {
		return err
	}
	units, err := next.View(0, 0, 1, n.units[i+1])
	if err != nil {
		return err
	}
	if err = units.Apply(activate); err != nil {
		return err
	}

	// The excitation is not needed past this point; turn it into f'(x) in place.
	if err = exc.Apply(derivative); err != nil {
		return err
	}
	return matrix.DiagonalizeInto(n.diagonals[i], exc)
}
