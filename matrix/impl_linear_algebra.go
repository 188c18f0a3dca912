// SPDX-License-Identifier: MIT

// Package matrix - linear algebra kernels.
//
// Two flavours exist for every structural kernel:
//   - allocating (Add, Multiply, Resize, Diagonalize) returns a fresh owner;
//   - buffer-reusing (*Into) writes into a caller-supplied destination of the
//     exact target shape, which the network uses to avoid per-sample churn.
//
// All loops run in fixed i→j(→k) order and accumulate with the injected
// arithmetic only (Zero/Add/Mul), so custom element types behave exactly like
// their own arithmetic says.

package matrix

// copyView writes src's logical view into dst (same logical shape).
func copyView[T any](dst, src *Dense[T]) {
	if dst.lay.contiguous() && src.lay.contiguous() {
		n := src.lay.size()
		copy(dst.st.buf[dst.lay.base:dst.lay.base+n], src.st.buf[src.lay.base:src.lay.base+n])
		return
	}
	for i := 0; i < src.lay.rows; i++ {
		for j := 0; j < src.lay.cols; j++ {
			dst.set(i, j, src.at(i, j))
		}
	}
}

// resizeKernel copies min(|src|, |dst|) elements in row-major order and pads the rest.
func resizeKernel[T any](dst, src *Dense[T], pad T) {
	n := src.lay.size()
	total := dst.lay.size()
	if total < n {
		n = total
	}
	var k int
	for k = 0; k < n; k++ {
		dst.setFlat(k, src.atFlat(k))
	}
	for ; k < total; k++ {
		dst.setFlat(k, pad)
	}
}

// diagonalizeKernel writes diag(src) into the n×n dst.
func diagonalizeKernel[T any](dst, src *Dense[T]) {
	zero := src.ar.Zero()
	n := src.lay.size()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			dst.set(i, j, zero)
		}
		dst.set(i, i, src.atFlat(i))
	}
}

// multiplyKernel computes dst = a·b with the i→j→k triple loop.
func multiplyKernel[T any](dst, a, b *Dense[T]) {
	ar := a.ar
	rows, inner, cols := a.lay.rows, a.lay.cols, b.lay.cols
	var acc T
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			acc = ar.Zero()
			for k := 0; k < inner; k++ {
				acc = ar.Add(acc, ar.Mul(a.at(i, k), b.at(k, j)))
			}
			dst.set(i, j, acc)
		}
	}
}

// Add returns a fresh matrix holding a + b element-wise.
// Errors: ErrNilMatrix, ErrReleased, ErrDimensionMismatch.
// Complexity: O(r*c).
func Add[T any](a, b *Dense[T]) (*Dense[T], error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}
	res := newDense(a.ar, a.lay.rows, a.lay.cols)
	ar := a.ar
	for i := 0; i < a.lay.rows; i++ {
		for j := 0; j < a.lay.cols; j++ {
			res.set(i, j, ar.Add(a.at(i, j), b.at(i, j)))
		}
	}
	return res, nil
}

// Multiply returns the matrix product a·b with shape a.Rows × b.Cols.
// Errors: ErrNilMatrix, ErrReleased, ErrDimensionMismatch (a.Cols != b.Rows).
// Complexity: O(r*n*c).
func Multiply[T any](a, b *Dense[T]) (*Dense[T], error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMultiply, err)
	}
	res := newDense(a.ar, a.lay.rows, b.lay.cols)
	multiplyKernel(res, a, b)
	return res, nil
}

// MultiplyInto overwrites dst with a·b. dst must already be a.Rows × b.Cols and
// must not share storage with a or b.
// Errors: ErrNilMatrix, ErrReleased, ErrDimensionMismatch, ErrAliasing.
func MultiplyInto[T any](dst, a, b *Dense[T]) error {
	if err := ValidateMulCompatible(a, b); err != nil {
		return matrixErrorf(opMultiply, err)
	}
	if err := ValidateShape(dst, a.lay.rows, b.lay.cols); err != nil {
		return matrixErrorf(opMultiply, err)
	}
	if err := validateDistinct(dst, a, b); err != nil {
		return matrixErrorf(opMultiply, err)
	}
	multiplyKernel(dst, a, b)
	return nil
}

// ResizeInto overwrites dst with the resize of src to dst's shape (see Resize).
// Errors: ErrNilMatrix, ErrReleased, ErrAliasing.
func ResizeInto[T any](dst, src *Dense[T], pad T) error {
	if err := ValidateLive(src); err != nil {
		return matrixErrorf(opResize, err)
	}
	if err := ValidateLive(dst); err != nil {
		return matrixErrorf(opResize, err)
	}
	if err := validateDistinct(dst, src); err != nil {
		return matrixErrorf(opResize, err)
	}
	resizeKernel(dst, src, pad)
	return nil
}

// DiagonalizeInto overwrites the n×n dst with diag(src), n = rows*cols of src.
// Errors: ErrNilMatrix, ErrReleased, ErrDimensionMismatch, ErrAliasing.
func DiagonalizeInto[T any](dst, src *Dense[T]) error {
	if err := ValidateLive(src); err != nil {
		return matrixErrorf(opDiagonalize, err)
	}
	n := src.lay.size()
	if err := ValidateShape(dst, n, n); err != nil {
		return matrixErrorf(opDiagonalize, err)
	}
	if err := validateDistinct(dst, src); err != nil {
		return matrixErrorf(opDiagonalize, err)
	}
	diagonalizeKernel(dst, src)
	return nil
}

// CopyInto overwrites dst with the logical view of src; shapes must match.
// Overlapping views of the same storage are rejected.
func CopyInto[T any](dst, src *Dense[T]) error {
	if err := ValidateSameShape(dst, src); err != nil {
		return matrixErrorf(opClone, err)
	}
	if err := validateDistinct(dst, src); err != nil {
		return matrixErrorf(opClone, err)
	}
	copyView(dst, src)
	return nil
}
