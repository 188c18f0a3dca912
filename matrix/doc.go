// SPDX-License-Identifier: MIT

// Package matrix is the linear-algebra kernel of vnn: a row-major dense
// matrix over a caller-selected element type.
//
// What & Why:
//
//	Dense[T] couples a flat buffer with a view descriptor (rows, cols, strides).
//	Every indexed access goes through the descriptor, which makes Transpose an
//	O(1) in-place flip and lets View expose windows without copying. The element
//	arithmetic is injected as a numeric.Arithmetic[T], so the same kernels serve
//	float64, float32 and fixed-point data.
//
// Factories:
//
//	Empty, Zeros, Rand      - fresh storage of a given shape.
//	FromSlice               - copies caller data (independent ownership).
//	Wrap                    - aliases caller data (mutations write through).
//	Clone                   - materializes the current logical view.
//	Resize, Diagonalize     - reshaping copies used for bias augmentation and
//	                          derivative operators.
//
// Errors:
//
//	Caller mistakes (bad shapes, nil arguments, use after Release) are reported
//	as sentinel errors wrapped with the operation name; match them with errors.Is.
//	Numeric trouble (NaN, Inf, fixed-point saturation) is not detected.
//
// Concurrency:
//
//	A Dense is not safe for concurrent mutation. Read-only use from several
//	goroutines is fine as long as nobody writes.
package matrix
