// SPDX-License-Identifier: MIT

package initializers

import "golang.org/x/exp/rand"

// DefaultSeed is used when callers pass seed == 0.
const DefaultSeed uint64 = 1

// NewSource returns a deterministic PCG source for seed (0 ⇒ DefaultSeed).
func NewSource(seed uint64) rand.Source {
	if seed == 0 {
		seed = DefaultSeed
	}
	return rand.NewSource(seed)
}

// NewRand wraps NewSource(seed) in a *rand.Rand.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(NewSource(seed))
}
