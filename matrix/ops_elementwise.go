// SPDX-License-Identifier: MIT
// Package: matrix
//
// In-place element-wise transforms. Each one walks the logical view, so a
// transposed matrix or a window is updated exactly where it points; views and
// wrapped matrices therefore write through to the storage they share.

package matrix

// forEach replaces every element v of the view with fn(v).
func (m *Dense[T]) forEach(fn func(T) T) {
	if m.lay.contiguous() {
		n := m.lay.size()
		buf := m.st.buf[m.lay.base : m.lay.base+n]
		for k := range buf {
			buf[k] = fn(buf[k])
		}
		return
	}
	for i := 0; i < m.lay.rows; i++ {
		for j := 0; j < m.lay.cols; j++ {
			m.set(i, j, fn(m.at(i, j)))
		}
	}
}

// AddScalar adds v to every element in place.
func (m *Dense[T]) AddScalar(v T) error {
	if err := m.live(); err != nil {
		return matrixErrorf(opAddScalar, err)
	}
	ar := m.ar
	m.forEach(func(x T) T { return ar.Add(x, v) })
	return nil
}

// MultiplyScalar multiplies every element by v in place.
func (m *Dense[T]) MultiplyScalar(v T) error {
	if err := m.live(); err != nil {
		return matrixErrorf(opMultiplyScalar, err)
	}
	ar := m.ar
	m.forEach(func(x T) T { return ar.Mul(x, v) })
	return nil
}

// Negate flips the sign of every element in place.
func (m *Dense[T]) Negate() error {
	if err := m.live(); err != nil {
		return matrixErrorf(opNegate, err)
	}
	m.forEach(m.ar.Neg)
	return nil
}

// Apply replaces every element x with fn(x) in place.
func (m *Dense[T]) Apply(fn func(T) T) error {
	if err := m.live(); err != nil {
		return matrixErrorf(opApply, err)
	}
	if fn == nil {
		return matrixErrorf(opApply, ErrNilFunc)
	}
	m.forEach(fn)
	return nil
}

// AddInPlace performs m += src element-wise; shapes must match.
// src may be a transposed or windowed view; it must not share storage with m.
// Errors: ErrNilMatrix, ErrReleased, ErrDimensionMismatch, ErrAliasing.
// Complexity: O(r*c).
func (m *Dense[T]) AddInPlace(src *Dense[T]) error {
	if err := ValidateSameShape(m, src); err != nil {
		return matrixErrorf(opAddInPlace, err)
	}
	if err := validateDistinct(m, src); err != nil {
		return matrixErrorf(opAddInPlace, err)
	}
	ar := m.ar
	for i := 0; i < m.lay.rows; i++ {
		for j := 0; j < m.lay.cols; j++ {
			m.set(i, j, ar.Add(m.at(i, j), src.at(i, j)))
		}
	}
	return nil
}

// Transpose flips m in place in O(1): rows and columns swap and the
// transposed flag toggles, but no element moves. Transposing twice restores
// the original view exactly.
// Errors: ErrNilMatrix, ErrReleased.
// Complexity: O(1).
func (m *Dense[T]) Transpose() error {
	if err := m.live(); err != nil {
		return matrixErrorf(opTranspose, err)
	}
	m.lay = m.lay.transpose()
	return nil
}

// TransposeView returns a transposed view of m sharing its storage, leaving m untouched.
func (m *Dense[T]) TransposeView() (*Dense[T], error) {
	if err := m.live(); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	return &Dense[T]{ar: m.ar, st: m.st, lay: m.lay.transpose()}, nil
}
