// SPDX-License-Identifier: MIT
package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/vnn/matrix"
	"github.com/katalvlaran/vnn/numeric"
)

// ExampleMultiply multiplies a 2×3 matrix by a 3×1 column and post-processes
// the product in place.
func ExampleMultiply() {
	ar := numeric.Float64{}
	a, _ := matrix.FromSlice[float64](ar, []float64{1, 2, 3, 4, 5, 6}, 2, 3)
	b, _ := matrix.FromSlice[float64](ar, []float64{7, 8, 9}, 3, 1)

	ab, _ := matrix.Multiply(a, b)
	fmt.Print(ab)

	_ = ab.MultiplyScalar(-1)
	_ = ab.Transpose()
	fmt.Print(ab)
	// Output:
	// [ 50]
	// [122]
	// [-50, -122]
}

// ExampleResize appends a bias cell to an input row.
func ExampleResize() {
	ar := numeric.Float64{}
	in, _ := matrix.FromSlice[float64](ar, []float64{0, 1}, 1, 2)
	withBias, _ := matrix.Resize(in, 1, 3, ar.One())
	fmt.Print(withBias)
	// Output:
	// [0, 1, 1]
}

// ExampleDiagonalize turns a derivative row into a linear operator.
func ExampleDiagonalize() {
	ar := numeric.Float64{}
	row, _ := matrix.FromSlice[float64](ar, []float64{0.25, 0.5}, 1, 2)
	d, _ := matrix.Diagonalize(row)
	fmt.Print(d)
	// Output:
	// [0.25,   0]
	// [   0, 0.5]
}
