// SPDX-License-Identifier: MIT
// Package: hyperpath/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Callers branch with errors.Is(err, ErrX).
//   • Constructors attach context with %w: "<Method>: <detail>: <sentinel>".
//   • Validation panics are confined to option constructors (WithX...).

package builder

import "errors"

// ErrTooFewStops indicates that a size parameter (n, rows, cols) is below the
// constructor's minimum.
var ErrTooFewStops = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a nil constructor or a network the builder could not freeze.
var ErrConstructFailed = errors.New("builder: construction failed")
