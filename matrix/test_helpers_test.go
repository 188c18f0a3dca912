// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.
//
// Purpose:
//   • Provide small deterministic fixtures shared by the kernel tests.
//   • Keep all data finite so comparisons can be exact where the math is exact.

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vnn/initializers"
	"github.com/katalvlaran/vnn/matrix"
	"github.com/katalvlaran/vnn/numeric"
)

// f64 is the arithmetic used by most tests.
var f64 = numeric.Float64{}

// mustFromSlice builds a float64 matrix from row-major data or fails the test.
func mustFromSlice(t testing.TB, data []float64, rows, cols int) *matrix.Dense[float64] {
	t.Helper()
	m, err := matrix.FromSlice[float64](f64, data, rows, cols)
	require.NoError(t, err)
	return m
}

// mustRand builds a rows×cols matrix with deterministic values in [-1, 1).
func mustRand(t testing.TB, rows, cols int, seed uint64) *matrix.Dense[float64] {
	t.Helper()
	rng := initializers.NewRand(seed)
	m, err := matrix.Rand[float64](f64, rows, cols, func() float64 { return rng.Float64()*2 - 1 })
	require.NoError(t, err)
	return m
}

// mustAt reads (i, j) or fails the test.
func mustAt(t testing.TB, m *matrix.Dense[float64], i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)
	return v
}

// sequence returns 1, 2, ..., n as float64.
func sequence(n int) []float64 {
	out := make([]float64, n)
	for k := range out {
		out[k] = float64(k + 1)
	}
	return out
}
