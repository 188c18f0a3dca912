// SPDX-License-Identifier: MIT

package activation

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/vnn/numeric"
)

// Names accepted by ByName.
const (
	NameSigmoid  = "sigmoid"
	NameTanh     = "tanh"
	NameReLU     = "relu"
	NameIdentity = "identity"
)

// LeakySlope is the gradient ReLU keeps below zero.
const LeakySlope = 1e-4

var (
	// ErrUnknownActivation is returned by ByName for an unrecognized name.
	ErrUnknownActivation = errors.New("activation: unknown activation")
	// ErrNilArithmetic indicates a constructor was called without an arithmetic.
	ErrNilArithmetic = errors.New("activation: nil arithmetic")
)

// Activation is an element-wise nonlinearity together with its derivative.
type Activation[T any] interface {
	// Activate returns f(x).
	Activate(x T) T
	// Derivative returns f'(x), evaluated at the excitation x (not at f(x)).
	Derivative(x T) T
	// Name identifies the variant in logs and diagnostics.
	Name() string
}

// ByName returns the built-in activation called name (case-insensitive).
func ByName[T any](ar numeric.Arithmetic[T], name string) (Activation[T], error) {
	if ar == nil {
		return nil, fmt.Errorf("ByName(%q): %w", name, ErrNilArithmetic)
	}
	switch strings.ToLower(strings.TrimSpace(name)) {
	case NameSigmoid:
		return NewSigmoid(ar), nil
	case NameTanh:
		return NewTanh(ar), nil
	case NameReLU:
		return NewReLU(ar), nil
	case NameIdentity:
		return NewIdentity(ar), nil
	}
	return nil, fmt.Errorf("ByName(%q): %w", name, ErrUnknownActivation)
}

// Repeat returns a slice holding a n times, the usual shape of the
// per-boundary activation list of a network.
func Repeat[T any](a Activation[T], n int) []Activation[T] {
	if n <= 0 {
		return nil
	}
	out := make([]Activation[T], n)
	for i := range out {
		out[i] = a
	}
	return out
}

// native reports whether ar evaluates transcendentals itself; otherwise
// activations detour through float64 to avoid saturating narrow types.
func native[T any](ar numeric.Arithmetic[T]) bool {
	_, ok := ar.(numeric.Transcendental[T])
	return ok
}

// Sigmoid is the logistic function.
type Sigmoid[T any] struct {
	ar numeric.Arithmetic[T]
}

// NewSigmoid returns the logistic activation over ar.
func NewSigmoid[T any](ar numeric.Arithmetic[T]) Sigmoid[T] {
	return Sigmoid[T]{ar: ar}
}

// Activate returns 1/(1+e^-x).
func (s Sigmoid[T]) Activate(x T) T {
	if !native(s.ar) {
		return s.ar.FromFloat64(sigmoid64(s.ar.ToFloat64(x)))
	}
	one := s.ar.One()
	return s.ar.Div(one, s.ar.Add(one, numeric.Exp(s.ar, s.ar.Neg(x))))
}

// Derivative returns σ(x)(1−σ(x)), which equals e^-x/(1+e^-x)² but never
// overflows for large negative x.
func (s Sigmoid[T]) Derivative(x T) T {
	if !native(s.ar) {
		v := sigmoid64(s.ar.ToFloat64(x))
		return s.ar.FromFloat64(v * (1 - v))
	}
	y := s.Activate(x)
	return s.ar.Mul(y, numeric.Sub(s.ar, s.ar.One(), y))
}

func (Sigmoid[T]) Name() string { return NameSigmoid }

// Valid reports whether s was built with an arithmetic; the zero value is not.
func (s Sigmoid[T]) Valid() bool { return s.ar != nil }

func sigmoid64(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}

// Tanh is the hyperbolic tangent.
type Tanh[T any] struct {
	ar numeric.Arithmetic[T]
}

// NewTanh returns the tanh activation over ar.
func NewTanh[T any](ar numeric.Arithmetic[T]) Tanh[T] {
	return Tanh[T]{ar: ar}
}

func (t Tanh[T]) Activate(x T) T { return numeric.Tanh(t.ar, x) }

// Derivative returns 1 − tanh²(x).
func (t Tanh[T]) Derivative(x T) T {
	y := numeric.Tanh(t.ar, x)
	return numeric.Sub(t.ar, t.ar.One(), t.ar.Mul(y, y))
}

func (Tanh[T]) Name() string { return NameTanh }

func (t Tanh[T]) Valid() bool { return t.ar != nil }

// ReLU is the leaky rectifier: x above zero, LeakySlope·x below.
type ReLU[T any] struct {
	ar    numeric.Arithmetic[T]
	slope T
}

// NewReLU returns the leaky rectifier over ar. For coarse fixed-point scales
// the slope may round to zero, which degrades it to a plain rectifier.
func NewReLU[T any](ar numeric.Arithmetic[T]) ReLU[T] {
	return ReLU[T]{ar: ar, slope: ar.FromFloat64(LeakySlope)}
}

func (r ReLU[T]) Activate(x T) T {
	if r.ar.ToFloat64(x) < 0 {
		return r.ar.Mul(r.slope, x)
	}
	return x
}

func (r ReLU[T]) Derivative(x T) T {
	if r.ar.ToFloat64(x) < 0 {
		return r.slope
	}
	return r.ar.One()
}

func (ReLU[T]) Name() string { return NameReLU }

func (r ReLU[T]) Valid() bool { return r.ar != nil }

// Identity passes the excitation through unchanged.
type Identity[T any] struct {
	ar numeric.Arithmetic[T]
}

// NewIdentity returns the linear activation over ar.
func NewIdentity[T any](ar numeric.Arithmetic[T]) Identity[T] {
	return Identity[T]{ar: ar}
}

func (Identity[T]) Activate(x T) T   { return x }
func (i Identity[T]) Derivative(T) T { return i.ar.One() }
func (Identity[T]) Name() string     { return NameIdentity }
func (i Identity[T]) Valid() bool    { return i.ar != nil }

// Func adapts a caller-supplied function pair. Both functions must be set;
// the network rejects a Func with a nil member at construction.
type Func[T any] struct {
	Label        string
	ActivateFn   func(T) T
	DerivativeFn func(T) T
}

func (f Func[T]) Activate(x T) T   { return f.ActivateFn(x) }
func (f Func[T]) Derivative(x T) T { return f.DerivativeFn(x) }

func (f Func[T]) Name() string {
	if f.Label == "" {
		return "func"
	}
	return f.Label
}

// Valid reports whether both functions are set.
func (f Func[T]) Valid() bool {
	return f.ActivateFn != nil && f.DerivativeFn != nil
}
