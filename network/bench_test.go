// SPDX-License-Identifier: MIT
// Package network_test provides benchmarks for one online training step at a
// few network sizes.
package network_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/vnn/initializers"
)

var benchShapes = [][]int{{2, 2, 1}, {25, 100, 20, 10}, {64, 64, 64, 8}}

// sink to defeat dead-code elimination
var sinkE float64

func BenchmarkFeed(b *testing.B) {
	b.ReportAllocs()
	for _, units := range benchShapes {
		b.Run(fmt.Sprint(units), func(b *testing.B) {
			n := mustNew(b, units, 1, initializers.Uniform[float64](f64, -1, 1, 1))
			in := row(b, make([]float64, units[0])...)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := n.Feed(in); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkStep(b *testing.B) {
	b.ReportAllocs()
	for _, units := range benchShapes {
		b.Run(fmt.Sprint(units), func(b *testing.B) {
			n := mustNew(b, units, 0.1, initializers.Uniform[float64](f64, -1, 1, 1))
			in := row(b, make([]float64, units[0])...)
			target := row(b, make([]float64, units[len(units)-1])...)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := n.Feed(in); err != nil {
					b.Fatal(err)
				}
				e, err := n.Error(target)
				if err != nil {
					b.Fatal(err)
				}
				sinkE = e
				if err = n.Adjust(target); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
