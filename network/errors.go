// SPDX-License-Identifier: MIT

package network

import (
	"errors"
	"fmt"
)

var (
	// ErrNilArithmetic indicates New was called without an arithmetic.
	ErrNilArithmetic = errors.New("network: nil arithmetic")
	// ErrTooFewLayers indicates a units vector with fewer than two layers.
	ErrTooFewLayers = errors.New("network: at least two layers are required")
	// ErrInvalidUnits indicates a layer with zero or negative units.
	ErrInvalidUnits = errors.New("network: unit counts must be > 0")
	// ErrActivationCount indicates the activation list length differs from layers-1.
	ErrActivationCount = errors.New("network: need exactly one activation per layer boundary")
	// ErrNilActivation indicates a nil activation (or a Func with a nil member).
	ErrNilActivation = errors.New("network: nil activation")
	// ErrNilGenerator indicates New was called without a weight generator.
	ErrNilGenerator = errors.New("network: nil weight generator")
	// ErrNotFed indicates Error, Adjust or an epoch peek before the first Feed.
	ErrNotFed = errors.New("network: no sample has been fed")
	// ErrReleased indicates use of a network after Release.
	ErrReleased = errors.New("network: use of released network")
	// ErrShapeMismatch indicates an input or target of the wrong shape.
	ErrShapeMismatch = errors.New("network: sample shape mismatch")
	// ErrLayerOutOfRange indicates an accessor index outside the network.
	ErrLayerOutOfRange = errors.New("network: layer index out of range")
	// ErrNoSamples indicates Train was called with an empty sample set.
	ErrNoSamples = errors.New("network: no training samples")
)

// Operation tags used when wrapping errors.
const (
	opNew      = "New"
	opFeed     = "Feed"
	opError    = "Error"
	opAdjust   = "Adjust"
	opTrain    = "Train"
	opEvaluate = "Evaluate"
	opRelease  = "Release"
	opPeek     = "Peek"
)

// networkErrorf wraps err with the operation tag; err must be non-nil.
func networkErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
