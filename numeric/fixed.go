// SPDX-License-Identifier: MIT

package numeric

import "math"

// DefaultFixedScale is the number of fixed-point units per 1.0 (three decimals).
const DefaultFixedScale = 1000

// Fixed is a signed 16-bit fixed-point arithmetic: the stored int16 n
// represents n/Scale. Products and quotients are rescaled through int32 and
// saturate at the int16 bounds instead of wrapping.
//
// The zero value uses DefaultFixedScale.
type Fixed struct {
	Scale int16
}

var _ Arithmetic[int16] = Fixed{}

func (f Fixed) scale() int32 {
	if f.Scale <= 0 {
		return DefaultFixedScale
	}
	return int32(f.Scale)
}

func (Fixed) Zero() int16            { return 0 }
func (f Fixed) One() int16           { return int16(f.scale()) }
func (Fixed) Add(a, b int16) int16   { return saturate(int32(a) + int32(b)) }
func (Fixed) Neg(a int16) int16      { return saturate(-int32(a)) }
func (f Fixed) Mul(a, b int16) int16 { return saturate(int32(a) * int32(b) / f.scale()) }
func (f Fixed) ToFloat64(v int16) float64 {
	return float64(v) / float64(f.scale())
}

// Div returns a/b; a zero divisor saturates toward the sign of a.
func (f Fixed) Div(a, b int16) int16 {
	if b == 0 {
		switch {
		case a > 0:
			return math.MaxInt16
		case a < 0:
			return math.MinInt16
		default:
			return 0
		}
	}
	return saturate(int32(a) * f.scale() / int32(b))
}

// FromFloat64 rounds v to the nearest representable value; NaN maps to zero.
func (f Fixed) FromFloat64(v float64) int16 {
	if math.IsNaN(v) {
		return 0
	}
	x := math.Round(v * float64(f.scale()))
	if x > math.MaxInt16 {
		return math.MaxInt16
	}
	if x < math.MinInt16 {
		return math.MinInt16
	}
	return int16(x)
}

func saturate(v int32) int16 {
	if v > math.MaxInt16 {
		return math.MaxInt16
	}
	if v < math.MinInt16 {
		return math.MinInt16
	}
	return int16(v)
}
