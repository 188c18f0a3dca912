// SPDX-License-Identifier: MIT

package network

import (
	"github.com/katalvlaran/vnn/matrix"
	"github.com/katalvlaran/vnn/numeric"
)

// Error returns ‖output − target‖² / 2 for the output of the most recent Feed.
// Neither the network nor target is modified.
//
// Errors: ErrReleased, ErrNotFed, ErrShapeMismatch (target not 1 × units[L-1]).
// Complexity: O(units[L-1]).
func (n *Network[T]) Error(target *matrix.Dense[T]) (T, error) {
	var zero T
	if err := n.checkTarget(target); err != nil {
		return zero, networkErrorf(opError, err)
	}

	ar := n.ar
	out := n.outputs[len(n.units)-1]
	acc := ar.Zero()
	for j := 0; j < target.Cols(); j++ {
		y, _ := out.At(0, j)
		t, _ := target.At(0, j)
		d := numeric.Sub(ar, y, t)
		acc = ar.Add(acc, ar.Mul(d, d))
	}
	return ar.Div(acc, ar.FromFloat64(2)), nil
}

// Adjust runs one step of backpropagation for target against the most recent
// Feed and updates every weight matrix in place.
//
// Stage 1 (backward, no weight changes): starting from dE/dy = output − target,
//   - the last boundary's unit derivative is (dE/dy · diagonals[L-2])ᵀ;
//   - delta for boundary i is unitsᵀ_i · outputs[i];
//   - for i > 0 the unit derivative flows back through weights[i] without its
//     bias row, then through diagonals[i-1].
//
// Stage 2 (update): every delta is flipped to weight orientation, scaled by
// −rate and added into its weight matrix.
//
// Errors: ErrReleased, ErrNotFed, ErrShapeMismatch.
// Complexity: O(Σ n_i·n_(i+1) + Σ n_(i+1)²).
func (n *Network[T]) Adjust(target *matrix.Dense[T]) error {
	if err := n.checkTarget(target); err != nil {
		return networkErrorf(opAdjust, err)
	}
	if err := n.backpropagate(target); err != nil {
		return networkErrorf(opAdjust, err)
	}
	if err := n.update(); err != nil {
		return networkErrorf(opAdjust, err)
	}
	return nil
}

// checkTarget validates the shared preconditions of Error and Adjust.
func (n *Network[T]) checkTarget(target *matrix.Dense[T]) error {
	if err := n.live(); err != nil {
		return err
	}
	if !n.fed() {
		return ErrNotFed
	}
	if err := matrix.ValidateLive(target); err != nil {
		return err
	}
	if target.Rows() != 1 || target.Cols() != n.units[len(n.units)-1] {
		return ErrShapeMismatch
	}
	return nil
}

// backpropagate fills deltas with the raw gradients dE/dW for every boundary.
func (n *Network[T]) backpropagate(target *matrix.Dense[T]) error {
	last := len(n.weights) - 1

	// dE/dy = y − t, written into the residual buffer so target stays intact.
	out, err := n.outputs[last+1].View(0, 0, 1, n.units[last+1])
	if err != nil {
		return err
	}
	if err = matrix.CopyInto(n.residual, target); err != nil {
		return err
	}
	if err = n.residual.Negate(); err != nil {
		return err
	}
	if err = n.residual.AddInPlace(out); err != nil {
		return err
	}
	if err = matrix.MultiplyInto(n.top, n.residual, n.diagonals[last]); err != nil {
		return err
	}
	column, err := n.top.TransposeView()
	if err != nil {
		return err
	}

	for i := last; i >= 0; i-- {
		delta := n.deltas[i]
		if delta.Transposed() {
			if err = delta.Transpose(); err != nil {
				return err
			}
		}
		if err = matrix.MultiplyInto(delta, column, n.outputs[i]); err != nil {
			return err
		}
		if i == 0 {
			break
		}
		// Bias weights have no upstream unit, so the bias row is skipped.
		if err = matrix.MultiplyInto(n.backward[i-1], n.inner[i], column); err != nil {
			return err
		}
		if err = matrix.MultiplyInto(n.columns[i-1], n.diagonals[i-1], n.backward[i-1]); err != nil {
			return err
		}
		column = n.columns[i-1]
	}
	return nil
}

// update applies weights[i] += −rate · deltas[i]ᵀ for every boundary.
func (n *Network[T]) update() error {
	step := n.ar.FromFloat64(-n.rate)
	for i, delta := range n.deltas {
		if err := delta.Transpose(); err != nil {
			return err
		}
		if err := delta.MultiplyScalar(step); err != nil {
			return err
		}
		if err := n.weights[i].AddInPlace(delta); err != nil {
			return err
		}
	}
	return nil
}
