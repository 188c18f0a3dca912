// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All exported operations return these sentinels wrapped with the operation
// tag ("Multiply: matrix: dimension mismatch"); tests and callers branch with
// errors.Is. Nothing in this package panics on user input except the print
// option constructors, which reject nonsensical values at construction time.

package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimensions is returned when a requested shape has a zero or
	// negative side, or when rows*cols overflows int.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrDimensionMismatch indicates incompatible operand shapes, e.g. Add on
	// different shapes, Multiply with a.Cols != b.Rows, or a data slice whose
	// length differs from rows*cols.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrOutOfRange indicates that a row or column index is outside the view.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNilArithmetic indicates a factory was called without an arithmetic.
	ErrNilArithmetic = errors.New("matrix: nil arithmetic")

	// ErrNilGenerator indicates Rand was called without a generator.
	ErrNilGenerator = errors.New("matrix: nil generator")

	// ErrNilFunc indicates Apply was called without a function.
	ErrNilFunc = errors.New("matrix: nil function")

	// ErrReleased indicates use of a matrix after Release (including a second Release).
	ErrReleased = errors.New("matrix: use of released matrix")

	// ErrBorrowed indicates Release was called on a view that does not own its storage.
	ErrBorrowed = errors.New("matrix: view does not own its storage")

	// ErrAliasing indicates an *Into kernel whose destination shares storage
	// with one of its sources.
	ErrAliasing = errors.New("matrix: destination aliases an operand")
)

// Operation tags used when wrapping sentinels.
const (
	opEmpty          = "Empty"
	opZeros          = "Zeros"
	opRand           = "Rand"
	opFromSlice      = "FromSlice"
	opWrap           = "Wrap"
	opClone          = "Clone"
	opResize         = "Resize"
	opDiagonalize    = "Diagonalize"
	opAdd            = "Add"
	opMultiply       = "Multiply"
	opAddScalar      = "AddScalar"
	opMultiplyScalar = "MultiplyScalar"
	opNegate         = "Negate"
	opApply          = "Apply"
	opAddInPlace     = "AddInPlace"
	opTranspose      = "Transpose"
	opRelease        = "Release"
	opView           = "View"
	opAt             = "At"
	opSet            = "Set"
	opToGonum        = "ToGonum"
	opFromGonum      = "FromGonum"
)

// matrixErrorf wraps err with the operation tag; err must be non-nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// denseErrorf wraps an index error with the method name and coordinates.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}
