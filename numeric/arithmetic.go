// SPDX-License-Identifier: MIT

package numeric

// Arithmetic is the injected configuration for an element type T: its neutral
// elements, the four primitive operations and the float64 bridge used by
// activations and diagnostics.
//
// Subtraction is never part of the contract; callers compose Add(a, Neg(b)).
type Arithmetic[T any] interface {
	// Zero returns the additive identity.
	Zero() T
	// One returns the multiplicative identity.
	One() T
	// Add returns a + b.
	Add(a, b T) T
	// Mul returns a * b.
	Mul(a, b T) T
	// Neg returns -a.
	Neg(a T) T
	// Div returns a / b. Division by zero follows the representation's own rules.
	Div(a, b T) T
	// FromFloat64 converts a float64 into T (rounding or saturating as needed).
	FromFloat64(v float64) T
	// ToFloat64 converts T into float64.
	ToFloat64(v T) float64
}

// Transcendental is an optional capability: arithmetics that can evaluate
// exp and tanh natively implement it so activations avoid the float64 detour.
type Transcendental[T any] interface {
	Exp(v T) T
	Tanh(v T) T
}

// Sub returns a - b expressed through the primitives of ar.
func Sub[T any](ar Arithmetic[T], a, b T) T {
	return ar.Add(a, ar.Neg(b))
}

// Exp evaluates e^v, natively when ar implements Transcendental.
func Exp[T any](ar Arithmetic[T], v T) T {
	if tr, ok := ar.(Transcendental[T]); ok {
		return tr.Exp(v)
	}
	return ar.FromFloat64(expFloat64(ar.ToFloat64(v)))
}

// Tanh evaluates tanh(v), natively when ar implements Transcendental.
func Tanh[T any](ar Arithmetic[T], v T) T {
	if tr, ok := ar.(Transcendental[T]); ok {
		return tr.Tanh(v)
	}
	return ar.FromFloat64(tanhFloat64(ar.ToFloat64(v)))
}
