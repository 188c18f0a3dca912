// SPDX-License-Identifier: MIT

package network_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vnn/activation"
	"github.com/katalvlaran/vnn/matrix"
	"github.com/katalvlaran/vnn/network"
	"github.com/katalvlaran/vnn/numeric"
)

var f64 = numeric.Float64{}

// row builds a 1×len(vals) float64 matrix.
func row(t testing.TB, vals ...float64) *matrix.Dense[float64] {
	t.Helper()
	m, err := matrix.FromSlice[float64](f64, vals, 1, len(vals))
	require.NoError(t, err)
	return m
}

// sigmoids returns the per-boundary sigmoid list for a network with the given units.
func sigmoids(units []int) []activation.Activation[float64] {
	return activation.Repeat[float64](activation.NewSigmoid[float64](f64), len(units)-1)
}

// mustNew builds a sigmoid network or fails the test.
func mustNew(t testing.TB, units []int, rate float64, gen matrix.Generator[float64]) *network.Network[float64] {
	t.Helper()
	n, err := network.New(f64, units, rate, sigmoids(units), gen)
	require.NoError(t, err)
	return n
}

func sigmoid(x float64) float64 {
	return activation.NewSigmoid[float64](f64).Activate(x)
}

// xorSamples are the four XOR pairs.
func xorSamples(t testing.TB) []network.Sample[float64] {
	t.Helper()
	pairs := [][3]float64{{0, 0, 0}, {0, 1, 1}, {1, 0, 1}, {1, 1, 0}}
	out := make([]network.Sample[float64], len(pairs))
	for i, p := range pairs {
		out[i] = network.Sample[float64]{Input: row(t, p[0], p[1]), Target: row(t, p[2])}
	}
	return out
}

func fixedArithmetic() numeric.Fixed {
	return numeric.Fixed{Scale: numeric.DefaultFixedScale}
}

func fixedSigmoids(n int) []activation.Activation[int16] {
	return activation.Repeat[int16](activation.NewSigmoid[int16](fixedArithmetic()), n)
}
