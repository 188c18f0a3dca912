// SPDX-License-Identifier: MIT

// Package numeric describes the element types the matrix and network
// packages compute with.
//
// Purpose:
//   - Keep the algorithms independent of the concrete number representation.
//   - Let callers substitute floating point, fixed point or any custom type by
//     passing an Arithmetic value instead of recompiling the kernels.
//
// Three arithmetics ship with the package:
//
//	Float64 - IEEE double precision, transcendentals from math.
//	Float32 - IEEE single precision, transcendentals from github.com/chewxy/math32.
//	Fixed   - signed 16-bit fixed point with a configurable scale (default 1000).
//
// All operations are pure and allocation-free; an Arithmetic value can be shared
// by any number of matrices and goroutines.
package numeric
