// SPDX-License-Identifier: MIT

package network_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vnn/initializers"
	"github.com/katalvlaran/vnn/network"
)

// TestXOR trains a 2→2→1 sigmoid network with 10 000 online steps drawn at
// random from the four XOR pairs.
func TestXOR(t *testing.T) {
	const (
		weightSeed = 12
		orderSeed  = 7
	)
	n := mustNew(t, []int{2, 2, 1}, 1, initializers.Uniform[float64](f64, 0, 1, weightSeed))
	samples := xorSamples(t)

	_, err := n.Train(samples, network.WithEpochs(2500), network.WithOrder(network.Sampled, orderSeed))
	require.NoError(t, err)

	mean, err := n.Evaluate(samples)
	require.NoError(t, err)
	assert.Less(t, mean, 0.05)

	for _, s := range samples {
		out, err := n.Feed(s.Input)
		require.NoError(t, err)
		y, err := out.At(0, 0)
		require.NoError(t, err)
		want, err := s.Target.At(0, 0)
		require.NoError(t, err)
		assert.InDelta(t, want, y, 0.2, "input %v", s.Input.RawData())
	}
}

func TestTrainDeterministic(t *testing.T) {
	run := func() ([]float64, float64) {
		n := mustNew(t, []int{2, 3, 1}, 1, initializers.Uniform[float64](f64, -1, 1, 3))
		mean, err := n.Train(xorSamples(t), network.WithEpochs(20), network.WithShuffle(99))
		require.NoError(t, err)
		w, err := n.Weights(0)
		require.NoError(t, err)
		return w.RawData(), mean
	}
	w1, m1 := run()
	w2, m2 := run()
	assert.Equal(t, w1, w2)
	assert.Equal(t, m1, m2)
}

func TestTrainProgress(t *testing.T) {
	n := mustNew(t, []int{2, 2, 1}, 1, initializers.Uniform[float64](f64, 0, 1, 1))

	var epochs []int
	var last float64
	mean, err := n.Train(xorSamples(t),
		network.WithEpochs(3),
		network.WithProgress(func(epoch int, meanErr float64) {
			epochs = append(epochs, epoch)
			last = meanErr
		}))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, epochs)
	assert.Equal(t, last, mean)
}

func TestTrainValidation(t *testing.T) {
	n := mustNew(t, []int{2, 1}, 1, initializers.Constant(0.0))

	_, err := n.Train(nil)
	require.ErrorIs(t, err, network.ErrNoSamples)

	bad := []network.Sample[float64]{{Input: row(t, 1, 2, 3), Target: row(t, 1)}}
	_, err = n.Train(bad)
	require.ErrorIs(t, err, network.ErrShapeMismatch)
	assert.False(t, n.Fed(), "validation runs before any Feed")

	_, err = n.Train([]network.Sample[float64]{{Input: row(t, 1, 2)}})
	require.ErrorIs(t, err, network.ErrShapeMismatch)

	_, err = n.Evaluate(nil)
	require.ErrorIs(t, err, network.ErrNoSamples)
	assert.Equal(t, "Evaluate: network: no training samples", err.Error())

	_, err = n.Evaluate(bad)
	require.ErrorIs(t, err, network.ErrShapeMismatch)
	assert.True(t, strings.HasPrefix(err.Error(), "Evaluate: "))
}

func TestTrainOptionPanics(t *testing.T) {
	assert.Panics(t, func() { network.WithEpochs(0) })
	assert.Panics(t, func() { network.WithOrder(network.Order(42), 1) })
	assert.NotPanics(t, func() { network.WithProgress(nil) })
}
