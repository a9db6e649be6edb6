// SPDX-License-Identifier: MIT
// Package: gdwg/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with `%w`.
//   • Core precondition errors (core.ErrNodeNotFound) are wrapped, not replaced.

package builder

import "errors"

// ErrTooFewVertices indicates that a numeric parameter (n, rows, cols, ...)
// is smaller than the allowed minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates that a probability value is outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor requires a non-nil
// *rand.Rand (WithSeed/WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that construction could not proceed, e.g. a
// nil Constructor was passed to BuildGraph.
var ErrConstructFailed = errors.New("builder: construction failed")
