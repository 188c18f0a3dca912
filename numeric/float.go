// SPDX-License-Identifier: MIT

package numeric

import (
	"math"

	"github.com/chewxy/math32"
)

// Float64 is the default arithmetic: plain IEEE-754 double precision.
type Float64 struct{}

// Compile-time conformance.
var (
	_ Arithmetic[float64]     = Float64{}
	_ Transcendental[float64] = Float64{}
	_ Arithmetic[float32]     = Float32{}
	_ Transcendental[float32] = Float32{}
)

func (Float64) Zero() float64                 { return 0 }
func (Float64) One() float64                  { return 1 }
func (Float64) Add(a, b float64) float64      { return a + b }
func (Float64) Mul(a, b float64) float64      { return a * b }
func (Float64) Neg(a float64) float64         { return -a }
func (Float64) Div(a, b float64) float64      { return a / b }
func (Float64) FromFloat64(v float64) float64 { return v }
func (Float64) ToFloat64(v float64) float64   { return v }
func (Float64) Exp(v float64) float64         { return math.Exp(v) }
func (Float64) Tanh(v float64) float64        { return math.Tanh(v) }

// Float32 is single precision; exp and tanh come from math32 so no value is
// widened to float64 inside activations.
type Float32 struct{}

func (Float32) Zero() float32                 { return 0 }
func (Float32) One() float32                  { return 1 }
func (Float32) Add(a, b float32) float32      { return a + b }
func (Float32) Mul(a, b float32) float32      { return a * b }
func (Float32) Neg(a float32) float32         { return -a }
func (Float32) Div(a, b float32) float32      { return a / b }
func (Float32) FromFloat64(v float64) float32 { return float32(v) }
func (Float32) ToFloat64(v float32) float64   { return float64(v) }
func (Float32) Exp(v float32) float32         { return math32.Exp(v) }
func (Float32) Tanh(v float32) float32        { return math32.Tanh(v) }

func expFloat64(v float64) float64  { return math.Exp(v) }
func tanhFloat64(v float64) float64 { return math.Tanh(v) }
