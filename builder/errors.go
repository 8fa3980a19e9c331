// SPDX-License-Identifier: MIT
// Package: lvrank/builder
//
// errors.go - sentinel errors. Constructors wrap them with method context
// ("Cycle: n=1 < min=2: builder: parameter too small"); callers match with errors.Is.

package builder

import "errors"

// ErrTooFewVertices indicates a size parameter below the constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates an edge probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without an RNG.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a structural failure (nil constructor, bad edge list).
var ErrConstructFailed = errors.New("builder: construction failed")
