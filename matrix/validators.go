// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single source of truth for the guards shared by kernels.
//  - Return plain sentinels wrapped with the validator tag so call sites can
//    wrap once more with their operation name.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateLive ensures m is non-nil and not released.
func ValidateLive[T any](m *Dense[T]) error {
	if err := m.live(); err != nil {
		return validatorErrorf("ValidateLive", err)
	}
	return nil
}

// ValidateSameShape ensures a and b are live and have equal logical dimensions.
func ValidateSameShape[T any](a, b *Dense[T]) error {
	if err := a.live(); err != nil {
		return validatorErrorf("ValidateSameShape", err)
	}
	if err := b.live(); err != nil {
		return validatorErrorf("ValidateSameShape", err)
	}
	if a.lay.rows != b.lay.rows {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.lay.cols != b.lay.cols {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}
	return nil
}

// ValidateMulCompatible ensures a and b are live and a.Cols == b.Rows.
func ValidateMulCompatible[T any](a, b *Dense[T]) error {
	if err := a.live(); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := b.live(); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.lay.cols != b.lay.rows {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}
	return nil
}

// ValidateShape ensures m is live and exactly rows×cols.
func ValidateShape[T any](m *Dense[T], rows, cols int) error {
	if err := m.live(); err != nil {
		return validatorErrorf("ValidateShape", err)
	}
	if m.lay.rows != rows || m.lay.cols != cols {
		return validatorErrorf("ValidateShape", ErrDimensionMismatch)
	}
	return nil
}

// validateDistinct rejects a destination that shares storage with a source.
func validateDistinct[T any](dst *Dense[T], srcs ...*Dense[T]) error {
	for _, s := range srcs {
		if dst.st == s.st {
			return validatorErrorf("validateDistinct", ErrAliasing)
		}
	}
	return nil
}
