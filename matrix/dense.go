// SPDX-License-Identifier: MIT

// Package matrix - Dense storage & safe accessors.
//
// Purpose:
//   - Provide a row-major buffer addressed through a stride descriptor, so the
//     logical view can be transposed or windowed without moving data.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Make Release observable through every alias of the same storage.
//
// Complexity quicksheet:
//   - At/Set/Transpose/View: O(1); Clone/RawData: O(r*c).

package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/vnn/numeric"
)

// Dense is a matrix over T.
//   - ar is the injected element arithmetic.
//   - st is the (possibly shared) buffer; st.buf == nil once released.
//   - lay maps logical coordinates onto st.buf.
//   - owner is false for views, which may not Release the shared storage.
type Dense[T any] struct {
	ar    numeric.Arithmetic[T]
	st    *storage[T]
	lay   layout
	owner bool
}

var _ fmt.Stringer = (*Dense[float64])(nil)

// newDense allocates a rows×cols owner with the canonical layout.
// Callers validate the shape first.
func newDense[T any](ar numeric.Arithmetic[T], rows, cols int) *Dense[T] {
	return &Dense[T]{
		ar:    ar,
		st:    &storage[T]{buf: make([]T, rows*cols)},
		lay:   rowMajor(rows, cols),
		owner: true,
	}
}

// Rows returns the number of logical rows (0 for a nil matrix).
func (m *Dense[T]) Rows() int {
	if m == nil {
		return 0
	}
	return m.lay.rows
}

// Cols returns the number of logical columns (0 for a nil matrix).
func (m *Dense[T]) Cols() int {
	if m == nil {
		return 0
	}
	return m.lay.cols
}

// Dims returns (rows, cols).
func (m *Dense[T]) Dims() (int, int) {
	return m.Rows(), m.Cols()
}

// Transposed reports whether the logical view is flipped relative to the
// physical allocation.
func (m *Dense[T]) Transposed() bool {
	return m != nil && m.lay.transposed
}

// Released reports whether the underlying storage has been released.
func (m *Dense[T]) Released() bool {
	return m == nil || m.st == nil || m.st.buf == nil
}

// Arithmetic returns the element arithmetic the matrix was built with.
func (m *Dense[T]) Arithmetic() numeric.Arithmetic[T] {
	if m == nil {
		return nil
	}
	return m.ar
}

// live checks that m can be read or written.
func (m *Dense[T]) live() error {
	if m == nil {
		return ErrNilMatrix
	}
	if m.Released() {
		return ErrReleased
	}
	return nil
}

// at reads logical (i, j) without checks.
func (m *Dense[T]) at(i, j int) T {
	return m.st.buf[m.lay.offset(i, j)]
}

// set writes logical (i, j) without checks.
func (m *Dense[T]) set(i, j int, v T) {
	m.st.buf[m.lay.offset(i, j)] = v
}

// atFlat reads the k-th element of the logical view in row-major order.
func (m *Dense[T]) atFlat(k int) T {
	if m.lay.contiguous() {
		return m.st.buf[m.lay.base+k]
	}
	return m.at(k/m.lay.cols, k%m.lay.cols)
}

// setFlat writes the k-th element of the logical view in row-major order.
func (m *Dense[T]) setFlat(k int, v T) {
	if m.lay.contiguous() {
		m.st.buf[m.lay.base+k] = v
		return
	}
	m.set(k/m.lay.cols, k%m.lay.cols, v)
}

// indexOf validates (row, col) against the logical view.
func (m *Dense[T]) indexOf(method string, row, col int) error {
	if err := m.live(); err != nil {
		return denseErrorf(method, row, col, err)
	}
	if row < 0 || row >= m.lay.rows || col < 0 || col >= m.lay.cols {
		return denseErrorf(method, row, col, ErrOutOfRange)
	}
	return nil
}

// At returns the element at logical (row, col).
// Errors: ErrNilMatrix, ErrReleased, ErrOutOfRange.
func (m *Dense[T]) At(row, col int) (T, error) {
	if err := m.indexOf(opAt, row, col); err != nil {
		var zero T
		return zero, err
	}
	return m.at(row, col), nil
}

// Set assigns v at logical (row, col).
// Errors: ErrNilMatrix, ErrReleased, ErrOutOfRange.
func (m *Dense[T]) Set(row, col int, v T) error {
	if err := m.indexOf(opSet, row, col); err != nil {
		return err
	}
	m.set(row, col, v)
	return nil
}

// RawData returns a fresh row-major copy of the logical view.
// A released or nil matrix yields nil.
func (m *Dense[T]) RawData() []T {
	if m.live() != nil {
		return nil
	}
	out := make([]T, m.lay.size())
	for k := range out {
		out[k] = m.atFlat(k)
	}
	return out
}

// View returns a rows×cols window whose top-left corner is (r0, c0).
// The window shares storage with m: writes through either are visible in
// both. Views cannot Release the storage they borrow.
// Complexity: O(1).
func (m *Dense[T]) View(r0, c0, rows, cols int) (*Dense[T], error) {
	if err := m.live(); err != nil {
		return nil, matrixErrorf(opView, err)
	}
	if rows <= 0 || cols <= 0 {
		return nil, matrixErrorf(opView, ErrInvalidDimensions)
	}
	if r0 < 0 || c0 < 0 || r0+rows > m.lay.rows || c0+cols > m.lay.cols {
		return nil, matrixErrorf(opView, ErrOutOfRange)
	}
	lay := m.lay
	lay.base = m.lay.offset(r0, c0)
	lay.rows, lay.cols = rows, cols
	return &Dense[T]{ar: m.ar, st: m.st, lay: lay}, nil
}

// Release drops the storage and puts m (and every view sharing it) into the
// released state. Releasing twice, or releasing through a view, is an error.
func (m *Dense[T]) Release() error {
	if err := m.live(); err != nil {
		return matrixErrorf(opRelease, err)
	}
	if !m.owner {
		return matrixErrorf(opRelease, ErrBorrowed)
	}
	m.st.buf = nil
	return nil
}

// String renders the matrix with the default print options.
func (m *Dense[T]) String() string {
	if m.live() != nil {
		return "<released>\n"
	}
	var sb strings.Builder
	_ = Fprint(&sb, m)
	return sb.String()
}
