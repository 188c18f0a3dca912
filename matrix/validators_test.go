// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vnn/matrix"
)

func TestValidators(t *testing.T) {
	a := mustRand(t, 2, 3, 1)
	b := mustRand(t, 3, 2, 1)

	require.NoError(t, matrix.ValidateLive(a))
	require.NoError(t, matrix.ValidateMulCompatible(a, b))
	require.NoError(t, matrix.ValidateShape(a, 2, 3))
	require.ErrorIs(t, matrix.ValidateSameShape(a, b), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateMulCompatible(a, a), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateShape(a, 3, 2), matrix.ErrDimensionMismatch)

	require.NoError(t, b.Transpose())
	require.NoError(t, matrix.ValidateSameShape(a, b))

	var nilM *matrix.Dense[float64]
	require.ErrorIs(t, matrix.ValidateLive(nilM), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateSameShape(a, nilM), matrix.ErrNilMatrix)

	require.NoError(t, a.Release())
	require.ErrorIs(t, matrix.ValidateLive(a), matrix.ErrReleased)
}
