// SPDX-License-Identifier: MIT

// Package activation provides the per-layer nonlinearities of a network.
//
// Every variant implements Activation: Activate maps an excitation to a layer
// output and Derivative returns d(Activate)/dx at the same excitation, which the
// network diagonalizes during the forward pass and consumes during backprop.
//
// Variants:
//
//	Sigmoid  - 1/(1+e^-x), derivative σ(x)(1−σ(x)).
//	Tanh     - tanh x, derivative 1−tanh²x.
//	ReLU     - leaky rectifier with slope 1e-4 below zero.
//	Identity - x, derivative 1.
//	Func     - caller-supplied pair of functions.
//
// All variants are generic over the element type and compute with the injected
// numeric.Arithmetic, so the same network code runs on float64, float32 or
// fixed point.
package activation
