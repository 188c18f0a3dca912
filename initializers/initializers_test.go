// SPDX-License-Identifier: MIT

package initializers_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/vnn/initializers"
	"github.com/katalvlaran/vnn/matrix"
	"github.com/katalvlaran/vnn/numeric"
)

var f64 = numeric.Float64{}

func draw(gen matrix.Generator[float64], n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = gen()
	}
	return out
}

func TestUniformDeterministicAndInRange(t *testing.T) {
	a := draw(initializers.Uniform[float64](f64, -1, 1, 42), 1000)
	b := draw(initializers.Uniform[float64](f64, -1, 1, 42), 1000)
	require.Equal(t, a, b)

	for _, v := range a {
		require.GreaterOrEqual(t, v, -1.0)
		require.Less(t, v, 1.0)
	}
	assert.InDelta(t, 0, stat.Mean(a, nil), 0.1)

	c := draw(initializers.Uniform[float64](f64, -1, 1, 43), 1000)
	assert.NotEqual(t, a, c)
}

func TestZeroSeedUsesDefault(t *testing.T) {
	a := draw(initializers.Uniform[float64](f64, 0, 1, 0), 16)
	b := draw(initializers.Uniform[float64](f64, 0, 1, initializers.DefaultSeed), 16)
	assert.Equal(t, a, b)
}

func TestNormalMoments(t *testing.T) {
	vals := draw(initializers.Normal[float64](f64, 2, 0.5, 7), 20000)
	mean, std := stat.MeanStdDev(vals, nil)
	assert.InDelta(t, 2, mean, 0.05)
	assert.InDelta(t, 0.5, std, 0.05)
}

func TestInvalidArgumentsPanic(t *testing.T) {
	assert.Panics(t, func() { initializers.Uniform[float64](f64, 1, 1, 1) })
	assert.Panics(t, func() { initializers.Uniform[float64](nil, 0, 1, 1) })
	assert.Panics(t, func() { initializers.Normal[float64](f64, 0, 0, 1) })
	assert.Panics(t, func() { initializers.Sequence[float64]() })
}

func TestConstantAndSequence(t *testing.T) {
	assert.Equal(t, []float64{1, 1, 1}, draw(initializers.Constant(1.0), 3))

	src := []float64{1, 2, 3}
	seq := initializers.Sequence(src...)
	src[0] = 100
	assert.Equal(t, []float64{1, 2, 3, 1, 2}, draw(seq, 5))
}

func TestFixedUniform(t *testing.T) {
	gen := initializers.Uniform[int16](numeric.Fixed{}, -1, 1, 3)
	for i := 0; i < 100; i++ {
		v := gen()
		require.GreaterOrEqual(t, v, int16(-1000))
		require.LessOrEqual(t, v, int16(1000))
	}
}

func TestGeneratorFeedsMatrixRand(t *testing.T) {
	m, err := matrix.Rand(f64, 2, 2, initializers.Sequence(1.0, 2.0))
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 1, 2}, m.RawData())
}
