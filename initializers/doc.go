// SPDX-License-Identifier: MIT

// Package initializers builds weight generators for matrix.Rand and network.New.
//
// Every generator is deterministic: random initializers draw from a seeded
// PCG source (golang.org/x/exp/rand) through gonum's distuv distributions,
// so the same seed always yields the same weights on every platform.
//
// Seed policy: seed == 0 selects DefaultSeed; any other value is used verbatim.
//
// Generators are NOT goroutine-safe; build one per goroutine.
package initializers
