// SPDX-License-Identifier: MIT

// Package matrix: storage handle and view descriptor.
//
// A Dense is a (storage, layout) pair. Storage is shared by every view cut
// from the same allocation; layout maps logical (i, j) to a physical offset.
// Release clears the shared buffer so that every alias observes it.

package matrix

// Generator produces one element per call; Rand invokes it rows*cols times in
// row-major order.
type Generator[T any] func() T

// storage is the shared buffer handle. buf == nil is the released sentinel.
type storage[T any] struct {
	buf []T
}

// layout describes how a logical rows×cols view maps onto storage.
//   - offset(i, j) = base + i*rowStride + j*colStride.
//   - transposed records that rows/cols were swapped relative to the allocation.
type layout struct {
	rows, cols           int
	rowStride, colStride int
	base                 int
	transposed           bool
}

// rowMajor returns the canonical layout of a freshly allocated rows×cols buffer.
func rowMajor(rows, cols int) layout {
	return layout{rows: rows, cols: cols, rowStride: cols, colStride: 1}
}

// offset is the physical index of logical element (i, j). No bounds checks.
func (l layout) offset(i, j int) int {
	return l.base + i*l.rowStride + j*l.colStride
}

// size is the number of logical elements.
func (l layout) size() int {
	return l.rows * l.cols
}

// contiguous reports whether the view is a plain row-major run starting at base,
// which lets kernels walk the buffer with a single flat loop.
func (l layout) contiguous() bool {
	return (l.colStride == 1 || l.cols == 1) && (l.rowStride == l.cols || l.rows == 1)
}

// transpose swaps the logical axes in O(1) without touching storage.
func (l layout) transpose() layout {
	l.rows, l.cols = l.cols, l.rows
	l.rowStride, l.colStride = l.colStride, l.rowStride
	l.transposed = !l.transposed
	return l
}

// validShape reports whether rows×cols is allocatable (both positive, no overflow).
func validShape(rows, cols int) bool {
	if rows <= 0 || cols <= 0 {
		return false
	}
	return rows <= maxInt/cols
}

const maxInt = int(^uint(0) >> 1)
