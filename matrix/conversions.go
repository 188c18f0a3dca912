// SPDX-License-Identifier: MIT
// Package matrix - gonum interop.
//
// ToGonum/FromGonum bridge a Dense of any element type to gonum's float64
// mat.Dense through the arithmetic's float64 conversions, so results can be
// cross-checked against (or handed to) the wider gonum ecosystem.

package matrix

import (
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/vnn/numeric"
)

// ToGonum copies the logical view of m into a new *mat.Dense.
// Errors: ErrNilMatrix, ErrReleased.
func ToGonum[T any](m *Dense[T]) (*mat.Dense, error) {
	if err := m.live(); err != nil {
		return nil, matrixErrorf(opToGonum, err)
	}
	data := make([]float64, m.lay.size())
	for k := range data {
		data[k] = m.ar.ToFloat64(m.atFlat(k))
	}
	return mat.NewDense(m.lay.rows, m.lay.cols, data), nil
}

// FromGonum copies any gonum matrix into a new Dense over ar.
// Errors: ErrNilArithmetic, ErrNilMatrix (nil src), ErrInvalidDimensions.
func FromGonum[T any](ar numeric.Arithmetic[T], src mat.Matrix) (*Dense[T], error) {
	if src == nil {
		return nil, matrixErrorf(opFromGonum, ErrNilMatrix)
	}
	rows, cols := src.Dims()
	m, err := Empty(ar, rows, cols)
	if err != nil {
		return nil, matrixErrorf(opFromGonum, err)
	}
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			m.set(i, j, ar.FromFloat64(src.At(i, j)))
		}
	}
	return m, nil
}

// EqualApprox reports whether a and b have the same logical shape and every
// pair of elements agrees within absTol or relTol (compared as float64).
// Nil or released operands are never equal.
func EqualApprox[T any](a, b *Dense[T], absTol, relTol float64) bool {
	if ValidateSameShape(a, b) != nil {
		return false
	}
	for i := 0; i < a.lay.rows; i++ {
		for j := 0; j < a.lay.cols; j++ {
			x, y := a.ar.ToFloat64(a.at(i, j)), b.ar.ToFloat64(b.at(i, j))
			if !scalar.EqualWithinAbsOrRel(x, y, absTol, relTol) {
				return false
			}
		}
	}
	return true
}
