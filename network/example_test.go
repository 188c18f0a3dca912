// SPDX-License-Identifier: MIT

package network_test

import (
	"os"

	"github.com/katalvlaran/vnn/activation"
	"github.com/katalvlaran/vnn/initializers"
	"github.com/katalvlaran/vnn/matrix"
	"github.com/katalvlaran/vnn/network"
	"github.com/katalvlaran/vnn/numeric"
)

// ExampleNetwork_Feed feeds one sample through a network whose weights are
// all one.
func ExampleNetwork_Feed() {
	ar := numeric.Float64{}
	units := []int{2, 3, 2}
	acts := activation.Repeat[float64](activation.NewSigmoid[float64](ar), len(units)-1)
	nn, _ := network.New(ar, units, 1, acts, initializers.Constant(1.0))
	defer nn.Release()

	in, _ := matrix.FromSlice[float64](ar, []float64{1, 2}, 1, 2)
	out, _ := nn.Feed(in)
	_ = matrix.Fprint(os.Stdout, out, matrix.WithFormat('f'), matrix.WithPrecision(4))
	// Output:
	// [0.9810, 0.9810]
}
