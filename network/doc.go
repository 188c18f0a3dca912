// SPDX-License-Identifier: MIT

// Package network implements a multilayer feed-forward neural network trained
// by online backpropagation on top of package matrix.
//
// Shape of a network with units {n0, n1, ..., n(L-1)}:
//
//	weights[i]   (n_i + 1) × n_(i+1)   the extra row holds the bias weights
//	outputs[i]   1 × (n_i + 1)         layer activations plus a trailing bias cell of one
//	diagonals[i] n_(i+1) × n_(i+1)     diag(f'(excitation)) cached by the forward pass
//	deltas[i]    (n_i + 1) × n_(i+1)   last weight update, already scaled by −rate
//
// Lifecycle:
//
//	New ─► Constructed ──Feed──► Fed ◄──Feed/Error/Adjust──┐
//	                                 └──────────────────────┘
//	any state ──Release──► Released (terminal)
//
// Error and Adjust before the first Feed return ErrNotFed; every call after
// Release returns ErrReleased.
//
// Buffers:
//   - Weights are allocated once by New and updated in place by Adjust.
//   - Epoch buffers (outputs, diagonals, deltas and backprop scratch) are
//     allocated by the first Feed and rewritten by every later pass through
//     the matrix *Into kernels, so steady-state training does not allocate
//     matrices.
//
// Concurrency: a Network is not safe for concurrent use. Wrap it in a Guarded
// when several goroutines need to feed or train the same instance.
package network
