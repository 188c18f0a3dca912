// SPDX-License-Identifier: MIT

package network

import (
	"github.com/katalvlaran/vnn/initializers"
	"github.com/katalvlaran/vnn/matrix"
)

// Sample is one (input, target) training pair.
type Sample[T any] struct {
	Input  *matrix.Dense[T]
	Target *matrix.Dense[T]
}

// Train runs online gradient descent: for every sample of every epoch it
// calls Feed, Error and Adjust in that order. It returns the mean error of
// the last epoch (as float64, via the arithmetic's bridge).
//
// Samples are validated up front, so a shape error never leaves the network
// half-trained. Errors: ErrReleased, ErrNoSamples, ErrShapeMismatch.
// Complexity: O(epochs · len(samples) · cost of Feed+Adjust).
func (n *Network[T]) Train(samples []Sample[T], opts ...TrainOption) (float64, error) {
	if err := n.live(); err != nil {
		return 0, networkErrorf(opTrain, err)
	}
	if len(samples) == 0 {
		return 0, networkErrorf(opTrain, ErrNoSamples)
	}
	in, out := n.units[0], n.units[len(n.units)-1]
	for _, s := range samples {
		if matrix.ValidateShape(s.Input, 1, in) != nil || matrix.ValidateShape(s.Target, 1, out) != nil {
			return 0, networkErrorf(opTrain, ErrShapeMismatch)
		}
	}

	o := gatherTrainOptions(opts)
	rng := initializers.NewRand(o.seed)
	order := make([]int, len(samples))
	for k := range order {
		order[k] = k
	}

	var mean float64
	for epoch := 1; epoch <= o.epochs; epoch++ {
		switch o.order {
		case Shuffled:
			rng.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })
		case Sampled:
			for k := range order {
				order[k] = rng.Intn(len(samples))
			}
		}

		var sum float64
		for _, k := range order {
			s := samples[k]
			if _, err := n.Feed(s.Input); err != nil {
				return 0, networkErrorf(opTrain, err)
			}
			e, err := n.Error(s.Target)
			if err != nil {
				return 0, networkErrorf(opTrain, err)
			}
			sum += n.ar.ToFloat64(e)
			if err = n.Adjust(s.Target); err != nil {
				return 0, networkErrorf(opTrain, err)
			}
		}
		mean = sum / float64(len(order))
		if o.progress != nil {
			o.progress(epoch, mean)
		}
	}
	return mean, nil
}

// Evaluate feeds every sample without adjusting and returns the mean error.
// Errors: as Train.
func (n *Network[T]) Evaluate(samples []Sample[T]) (float64, error) {
	if err := n.live(); err != nil {
		return 0, networkErrorf(opEvaluate, err)
	}
	if len(samples) == 0 {
		return 0, networkErrorf(opEvaluate, ErrNoSamples)
	}
	var sum float64
	for _, s := range samples {
		if _, err := n.Feed(s.Input); err != nil {
			return 0, networkErrorf(opEvaluate, err)
		}
		e, err := n.Error(s.Target)
		if err != nil {
			return 0, networkErrorf(opEvaluate, err)
		}
		sum += n.ar.ToFloat64(e)
	}
	return sum / float64(len(samples)), nil
}
