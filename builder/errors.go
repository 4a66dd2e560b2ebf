// SPDX-License-Identifier: MIT
// Package: gacolor/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Constructors attach context with "%s: ...: %w" (method name first).
//   • Constructors never panic; option constructors panic on nil inputs.

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, rows, cols, side)
// is smaller than the minimum for the requested family.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor was invoked
// without WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that the underlying core graph rejected the
// construction (for example, a nil constructor or a core policy violation).
var ErrConstructFailed = errors.New("builder: construction failed")
