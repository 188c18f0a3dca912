// SPDX-License-Identifier: MIT

// Package vnn is a compact linear-algebra kernel plus a multilayer
// feed-forward neural network trained by online backpropagation.
//
// The element type is injected: every matrix and network is generic over T
// and computes only through a numeric.Arithmetic[T], so the same code runs on
// float64, float32 or 16-bit fixed point.
//
// Packages:
//
//	numeric/      - Arithmetic interface and the Float64, Float32, Fixed implementations
//	matrix/       - Dense[T]: strided views, O(1) transpose, resize, diagonalize,
//	                products, in-place ops, *Into kernels, printing, gonum interop
//	activation/   - Sigmoid, Tanh, ReLU, Identity and caller-supplied Func
//	initializers/ - seeded Uniform/Normal weight generators, Constant, Sequence
//	network/      - Network[T]: Feed, Error, Adjust, Train, and the Guarded wrapper
//	examples/     - runnable demos: matrices, ones, xor, digits
//
// Quick start:
//
//	ar := numeric.Float64{}
//	units := []int{2, 2, 1}
//	acts := activation.Repeat[float64](activation.NewSigmoid[float64](ar), len(units)-1)
//	nn, err := network.New(ar, units, 1, acts, initializers.Uniform[float64](ar, 0, 1, 12))
//	if err != nil { ... }
//	defer nn.Release()
//	mean, err := nn.Train(samples, network.WithEpochs(2500), network.WithOrder(network.Sampled, 7))
//
// Errors are sentinel values per package (matrix.ErrDimensionMismatch,
// network.ErrNotFed, ...) wrapped with the failing operation; match them with
// errors.Is. Library packages never log and never panic on caller data; only
// functional-option constructors panic on nonsensical arguments.
//
// Installation:
//
//	go get github.com/katalvlaran/vnn
package vnn
