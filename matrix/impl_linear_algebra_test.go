// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vnn/matrix"
)

func TestAddCommutes(t *testing.T) {
	a := mustRand(t, 3, 4, 1)
	b := mustRand(t, 3, 4, 2)

	ab, err := matrix.Add(a, b)
	require.NoError(t, err)
	ba, err := matrix.Add(b, a)
	require.NoError(t, err)

	assert.Equal(t, ab.RawData(), ba.RawData())
}

func TestAddShapeMismatch(t *testing.T) {
	_, err := matrix.Add(mustRand(t, 2, 3, 1), mustRand(t, 3, 2, 1))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestAddRespectsTransposedOperand(t *testing.T) {
	a := mustFromSlice(t, sequence(6), 2, 3)
	b := mustFromSlice(t, sequence(6), 3, 2)
	require.NoError(t, b.Transpose())

	sum, err := matrix.Add(a, b)
	require.NoError(t, err)
	// bᵀ = [[1,3,5],[2,4,6]]
	assert.Equal(t, []float64{2, 5, 8, 6, 9, 12}, sum.RawData())
}

// TestMultiplyWalkthrough replays the classic 2×3 · 3×1 product and the scalar
// ops that follow it.
func TestMultiplyWalkthrough(t *testing.T) {
	a := mustFromSlice(t, sequence(6), 2, 3)
	b := mustFromSlice(t, []float64{7, 8, 9}, 3, 1)

	ab, err := matrix.Multiply(a, b)
	require.NoError(t, err)
	require.Equal(t, 2, ab.Rows())
	require.Equal(t, 1, ab.Cols())
	assert.Equal(t, []float64{50, 122}, ab.RawData())

	require.NoError(t, ab.MultiplyScalar(-1))
	assert.Equal(t, []float64{-50, -122}, ab.RawData())

	c, err := matrix.Add(ab, ab)
	require.NoError(t, err)
	assert.Equal(t, []float64{-100, -244}, c.RawData())

	require.NoError(t, c.AddScalar(100))
	assert.Equal(t, []float64{0, -144}, c.RawData())

	require.NoError(t, ab.Transpose())
	assert.Equal(t, "[-50, -122]\n", ab.String())
}

func TestMultiplyShapeMismatch(t *testing.T) {
	_, err := matrix.Multiply(mustRand(t, 2, 3, 1), mustRand(t, 2, 3, 1))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestMultiplyShapes(t *testing.T) {
	cases := []struct{ r, n, c int }{{1, 1, 1}, {1, 3, 4}, {4, 3, 1}, {5, 2, 7}}
	for _, tc := range cases {
		p, err := matrix.Multiply(mustRand(t, tc.r, tc.n, 3), mustRand(t, tc.n, tc.c, 4))
		require.NoError(t, err)
		assert.Equal(t, tc.r, p.Rows())
		assert.Equal(t, tc.c, p.Cols())
	}
}

func TestMultiplyIntoValidatesDestination(t *testing.T) {
	a := mustFromSlice(t, sequence(6), 2, 3)
	b := mustFromSlice(t, []float64{7, 8, 9}, 3, 1)

	wrong, err := matrix.Zeros[float64](f64, 1, 2)
	require.NoError(t, err)
	require.ErrorIs(t, matrix.MultiplyInto(wrong, a, b), matrix.ErrDimensionMismatch)

	dst, err := matrix.Zeros[float64](f64, 2, 1)
	require.NoError(t, err)
	require.NoError(t, matrix.MultiplyInto(dst, a, b))
	assert.Equal(t, []float64{50, 122}, dst.RawData())

	sq := mustFromSlice(t, sequence(4), 2, 2)
	require.ErrorIs(t, matrix.MultiplyInto(sq, sq, sq), matrix.ErrAliasing)
}

func TestTransposeTwiceRestoresView(t *testing.T) {
	for _, shape := range [][2]int{{1, 1}, {1, 5}, {4, 1}, {3, 7}} {
		a := mustRand(t, shape[0], shape[1], 9)
		before := a.RawData()

		require.NoError(t, a.Transpose())
		assert.True(t, a.Transposed())
		assert.Equal(t, shape[1], a.Rows())
		assert.Equal(t, shape[0], a.Cols())

		require.NoError(t, a.Transpose())
		assert.False(t, a.Transposed())
		assert.Equal(t, shape[0], a.Rows())
		assert.Equal(t, shape[1], a.Cols())
		assert.Equal(t, before, a.RawData())
	}
}

func TestTransposeRemapsAccess(t *testing.T) {
	a := mustFromSlice(t, sequence(6), 2, 3)
	require.NoError(t, a.Transpose())

	assert.Equal(t, 4.0, mustAt(t, a, 0, 1))
	assert.Equal(t, 3.0, mustAt(t, a, 2, 0))

	// Mutating the transposed view and flipping back lands in the right cells.
	require.NoError(t, a.Set(2, 1, 60))
	require.NoError(t, a.AddScalar(1))
	require.NoError(t, a.Transpose())
	assert.Equal(t, []float64{2, 3, 4, 5, 6, 61}, a.RawData())
}

func TestResizeCopiesAndPads(t *testing.T) {
	cases := []struct {
		name       string
		rows, cols int
		want       []float64
	}{
		{"append bias column", 1, 4, []float64{1, 2, 3, 9}},
		{"drop trailing cell", 1, 2, []float64{1, 2}},
		{"same size", 1, 3, []float64{1, 2, 3}},
		{"reshape and pad", 2, 3, []float64{1, 2, 3, 9, 9, 9}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			src := mustFromSlice(t, []float64{1, 2, 3}, 1, 3)
			got, err := matrix.Resize(src, tc.rows, tc.cols, 9)
			require.NoError(t, err)
			assert.Equal(t, tc.rows, got.Rows())
			assert.Equal(t, tc.cols, got.Cols())
			assert.Equal(t, tc.want, got.RawData())
		})
	}

	_, err := matrix.Resize(mustRand(t, 1, 1, 1), 0, 1, 0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestResizeFollowsLogicalOrder(t *testing.T) {
	src := mustFromSlice(t, sequence(4), 2, 2)
	require.NoError(t, src.Transpose())

	got, err := matrix.Resize(src, 1, 5, 0)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 3, 2, 4, 0}, got.RawData())

	dst, err := matrix.Zeros[float64](f64, 1, 3)
	require.NoError(t, err)
	require.NoError(t, matrix.ResizeInto(dst, src, -1))
	assert.Equal(t, []float64{1, 3, 2}, dst.RawData())
}

func TestDiagonalize(t *testing.T) {
	src := mustFromSlice(t, sequence(6), 2, 3)
	d, err := matrix.Diagonalize(src)
	require.NoError(t, err)
	require.Equal(t, 6, d.Rows())
	require.Equal(t, 6, d.Cols())

	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			if i == j {
				assert.Equal(t, float64(i+1), mustAt(t, d, i, j))
				continue
			}
			assert.Zero(t, mustAt(t, d, i, j))
		}
	}
}

func TestDiagonalizeInto(t *testing.T) {
	src := mustFromSlice(t, []float64{2, 3}, 1, 2)

	dst := mustFromSlice(t, []float64{7, 7, 7, 7}, 2, 2)
	require.NoError(t, matrix.DiagonalizeInto(dst, src))
	assert.Equal(t, []float64{2, 0, 0, 3}, dst.RawData())

	small := mustFromSlice(t, []float64{1}, 1, 1)
	require.ErrorIs(t, matrix.DiagonalizeInto(small, src), matrix.ErrDimensionMismatch)
}

func TestCopyInto(t *testing.T) {
	src := mustFromSlice(t, sequence(4), 2, 2)
	require.NoError(t, src.Transpose())
	dst, err := matrix.ZerosLike(src)
	require.NoError(t, err)

	require.NoError(t, matrix.CopyInto(dst, src))
	assert.Equal(t, []float64{1, 3, 2, 4}, dst.RawData())
}
