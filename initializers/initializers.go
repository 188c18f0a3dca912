// SPDX-License-Identifier: MIT

package initializers

import (
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/vnn/matrix"
	"github.com/katalvlaran/vnn/numeric"
)

const (
	panicNilArithmetic = "initializers: nil arithmetic"
	panicBadRange      = "initializers: Uniform: max must be greater than min"
	panicBadSigma      = "initializers: Normal: sigma must be > 0"
	panicNoValues      = "initializers: Sequence: at least one value is required"
)

// Uniform draws each element from U[min, max) with a PCG source seeded by seed.
// Panics if ar is nil or max <= min.
func Uniform[T any](ar numeric.Arithmetic[T], min, max float64, seed uint64) matrix.Generator[T] {
	if ar == nil {
		panic(panicNilArithmetic)
	}
	if !(max > min) {
		panic(panicBadRange)
	}
	d := distuv.Uniform{Min: min, Max: max, Src: NewSource(seed)}
	return func() T { return ar.FromFloat64(d.Rand()) }
}

// Normal draws each element from N(mu, sigma²) with a PCG source seeded by seed.
// Panics if ar is nil or sigma <= 0.
func Normal[T any](ar numeric.Arithmetic[T], mu, sigma float64, seed uint64) matrix.Generator[T] {
	if ar == nil {
		panic(panicNilArithmetic)
	}
	if !(sigma > 0) {
		panic(panicBadSigma)
	}
	d := distuv.Normal{Mu: mu, Sigma: sigma, Src: NewSource(seed)}
	return func() T { return ar.FromFloat64(d.Rand()) }
}

// Constant returns v for every element.
func Constant[T any](v T) matrix.Generator[T] {
	return func() T { return v }
}

// Sequence cycles through values in order: values[0], values[1], ...,
// values[0], ... Useful for pinning hand-computed weights in tests.
// Panics if values is empty.
func Sequence[T any](values ...T) matrix.Generator[T] {
	if len(values) == 0 {
		panic(panicNoValues)
	}
	vs := append([]T(nil), values...)
	var k int
	return func() T {
		v := vs[k]
		k = (k + 1) % len(vs)
		return v
	}
}
