// SPDX-License-Identifier: MIT
// Package: network
//
// Functional options for Train.
//
// Contract:
//   - Option constructors validate and PANIC on meaningless inputs (programmer
//     error); Train itself only returns errors.
//   - Defaults below are the single source of truth.

package network

// Training defaults.
const (
	// DefaultEpochs is the number of passes over the sample set.
	DefaultEpochs = 1
)

// Order selects how Train walks the samples within an epoch.
type Order int

const (
	// Sequential visits samples in the given order every epoch.
	Sequential Order = iota
	// Shuffled visits every sample once per epoch in a fresh random order.
	Shuffled
	// Sampled draws len(samples) samples uniformly with replacement per epoch.
	Sampled
)

const (
	panicEpochsInvalid = "network: WithEpochs: epochs must be >= 1"
	panicOrderInvalid  = "network: WithOrder: unknown order"
)

// TrainOption customizes Train.
type TrainOption func(*trainOptions)

type trainOptions struct {
	epochs   int
	order    Order
	seed     uint64
	progress func(epoch int, meanErr float64)
}

func defaultTrainOptions() trainOptions {
	return trainOptions{epochs: DefaultEpochs, order: Sequential}
}

func gatherTrainOptions(opts []TrainOption) trainOptions {
	o := defaultTrainOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// WithEpochs sets the number of passes over the samples.
func WithEpochs(n int) TrainOption {
	if n < 1 {
		panic(panicEpochsInvalid)
	}
	return func(o *trainOptions) { o.epochs = n }
}

// WithOrder selects the sample order; seed drives Shuffled and Sampled
// (0 selects the default seed of package initializers).
func WithOrder(order Order, seed uint64) TrainOption {
	switch order {
	case Sequential, Shuffled, Sampled:
	default:
		panic(panicOrderInvalid)
	}
	return func(o *trainOptions) {
		o.order = order
		o.seed = seed
	}
}

// WithShuffle is shorthand for WithOrder(Shuffled, seed).
func WithShuffle(seed uint64) TrainOption {
	return WithOrder(Shuffled, seed)
}

// WithProgress registers fn to be called after every epoch with the mean
// error of that epoch. A nil fn disables reporting.
func WithProgress(fn func(epoch int, meanErr float64)) TrainOption {
	return func(o *trainOptions) { o.progress = fn }
}
