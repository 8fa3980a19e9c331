// SPDX-License-Identifier: MIT
// Package: lvrank/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults (no surprises):
//   • idFn  = DefaultIDFn  ("0","1","2",...)
//   • rng   = nil          (pure/deterministic unless seeded)
//   • loops = false        (RandomSparse skips i→i trials)

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// Vertex ID strategy: index -> ID (deterministic).
	idFn IDFn

	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand

	// Whether stochastic constructors may emit self-loops.
	loops bool
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (last wins).
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn: DefaultIDFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
