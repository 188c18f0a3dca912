// SPDX-License-Identifier: MIT
// Package matrix - factories.
//
// Every factory validates its arguments before allocating and returns a
// matrix that owns fresh storage, with one deliberate exception: Wrap, which
// aliases the caller's slice.

package matrix

import "github.com/katalvlaran/vnn/numeric"

// Empty allocates a rows×cols matrix without filling it with ar.Zero().
// The buffer holds Go zero values of T, which for the shipped arithmetics
// coincide with the additive identity.
// Errors: ErrNilArithmetic, ErrInvalidDimensions.
// Complexity: O(r*c) (runtime zeroing).
func Empty[T any](ar numeric.Arithmetic[T], rows, cols int) (*Dense[T], error) {
	if ar == nil {
		return nil, matrixErrorf(opEmpty, ErrNilArithmetic)
	}
	if !validShape(rows, cols) {
		return nil, matrixErrorf(opEmpty, ErrInvalidDimensions)
	}
	return newDense(ar, rows, cols), nil
}

// Zeros allocates a rows×cols matrix filled with ar.Zero().
// Errors: ErrNilArithmetic, ErrInvalidDimensions.
// Complexity: O(r*c).
func Zeros[T any](ar numeric.Arithmetic[T], rows, cols int) (*Dense[T], error) {
	m, err := Empty(ar, rows, cols)
	if err != nil {
		return nil, matrixErrorf(opZeros, err)
	}
	zero := ar.Zero()
	for k := range m.st.buf {
		m.st.buf[k] = zero
	}
	return m, nil
}

// Rand allocates a rows×cols matrix and fills it with gen(), called once per
// element in row-major order.
// Errors: ErrNilArithmetic, ErrInvalidDimensions, ErrNilGenerator.
// Complexity: O(r*c) plus r*c calls to gen.
func Rand[T any](ar numeric.Arithmetic[T], rows, cols int, gen Generator[T]) (*Dense[T], error) {
	if gen == nil {
		return nil, matrixErrorf(opRand, ErrNilGenerator)
	}
	m, err := Empty(ar, rows, cols)
	if err != nil {
		return nil, matrixErrorf(opRand, err)
	}
	for k := range m.st.buf {
		m.st.buf[k] = gen()
	}
	return m, nil
}

// FromSlice builds a rows×cols matrix from row-major data. The data is copied,
// so the result is independent of the caller's slice.
// Errors: ErrNilArithmetic, ErrInvalidDimensions, ErrDimensionMismatch (len(data) != rows*cols).
func FromSlice[T any](ar numeric.Arithmetic[T], data []T, rows, cols int) (*Dense[T], error) {
	m, err := Empty(ar, rows, cols)
	if err != nil {
		return nil, matrixErrorf(opFromSlice, err)
	}
	if len(data) != rows*cols {
		return nil, matrixErrorf(opFromSlice, ErrDimensionMismatch)
	}
	copy(m.st.buf, data)
	return m, nil
}

// Wrap builds a rows×cols matrix directly on top of data without copying.
//
// Aliasing hazard: every in-place operation on the result (Set, AddScalar,
// Apply, ...) writes through to data, and writes to data show up in the
// matrix. Only wrap throwaway buffers; Clone the result before mutating it if
// the caller still needs the original contents. Release on a wrapped matrix
// only detaches it; the caller's slice is left untouched.
// Errors: ErrNilArithmetic, ErrInvalidDimensions, ErrDimensionMismatch.
// Complexity: O(1).
func Wrap[T any](ar numeric.Arithmetic[T], data []T, rows, cols int) (*Dense[T], error) {
	if ar == nil {
		return nil, matrixErrorf(opWrap, ErrNilArithmetic)
	}
	if !validShape(rows, cols) {
		return nil, matrixErrorf(opWrap, ErrInvalidDimensions)
	}
	if len(data) != rows*cols {
		return nil, matrixErrorf(opWrap, ErrDimensionMismatch)
	}
	return &Dense[T]{
		ar:    ar,
		st:    &storage[T]{buf: data},
		lay:   rowMajor(rows, cols),
		owner: true,
	}, nil
}

// Clone returns a deep copy of the current logical view of src. The result is
// always row-major and never transposed, whatever the state of src.
// Errors: ErrNilMatrix, ErrReleased.
// Complexity: O(r*c).
func Clone[T any](src *Dense[T]) (*Dense[T], error) {
	if err := src.live(); err != nil {
		return nil, matrixErrorf(opClone, err)
	}
	dst := newDense(src.ar, src.lay.rows, src.lay.cols)
	copyView(dst, src)
	return dst, nil
}

// Resize returns a rows×cols matrix holding the first min(old, new) elements of
// src in row-major order; every remaining cell is set to pad.
//
// Appending pad=1 to a 1×n row yields the bias-augmented 1×(n+1) row; resizing
// a 1×(n+1) row back to 1×n drops the trailing bias cell.
// Errors: ErrNilMatrix, ErrReleased, ErrInvalidDimensions.
func Resize[T any](src *Dense[T], rows, cols int, pad T) (*Dense[T], error) {
	if err := src.live(); err != nil {
		return nil, matrixErrorf(opResize, err)
	}
	if !validShape(rows, cols) {
		return nil, matrixErrorf(opResize, ErrInvalidDimensions)
	}
	dst := newDense(src.ar, rows, cols)
	resizeKernel(dst, src, pad)
	return dst, nil
}

// Diagonalize returns the n×n matrix (n = rows*cols of src) whose diagonal holds
// the elements of src in row-major order and whose off-diagonal cells are
// ar.Zero(). It turns an element-wise derivative vector into a linear operator.
// Errors: ErrNilMatrix, ErrReleased, ErrInvalidDimensions (n*n overflow).
// Complexity: O(n^2).
func Diagonalize[T any](src *Dense[T]) (*Dense[T], error) {
	if err := src.live(); err != nil {
		return nil, matrixErrorf(opDiagonalize, err)
	}
	n := src.lay.size()
	if !validShape(n, n) {
		return nil, matrixErrorf(opDiagonalize, ErrInvalidDimensions)
	}
	dst := newDense(src.ar, n, n)
	diagonalizeKernel(dst, src)
	return dst, nil
}

// ZerosLike returns a zero matrix with the logical shape of m.
func ZerosLike[T any](m *Dense[T]) (*Dense[T], error) {
	if err := m.live(); err != nil {
		return nil, matrixErrorf(opZeros, err)
	}
	return Zeros(m.ar, m.lay.rows, m.lay.cols)
}
