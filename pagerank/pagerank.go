// Package pagerank implements damped power iteration over a core.Graph.
//
// The transition matrix is never materialized. Each iteration walks the
// snapshot's CSR arrays once, so one iteration costs O(V + E).
//
// Notes on implementation choices:
//
//   - Dangling vertices (out-degree 0) hand their whole rank to a shared
//     pool that is spread uniformly, exactly like teleportation. This keeps
//     every iterate a probability vector.
//   - Vertices are processed in ascending index order and all sums run in
//     that order, so repeated runs on the same topology are bit-identical.
//   - Two score buffers are allocated once and swapped between iterations.
package pagerank

import (
	"math"

	"github.com/katalvlaran/lvrank/core"
)

// Compute ranks every vertex of g.
//
// Returns:
//
//   - *Result: scores aligned to g.Vertices(), iteration count and the
//     per-iteration L1 deltas.
//   - error: ErrNilGraph, ErrInvalidParameter (via ErrBadDamping,
//     ErrBadTolerance, ErrBadMaxIterations) or ErrEmptyGraph.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. Options must be in range (ErrInvalidParameter).
//  3. g must have at least one vertex (ErrEmptyGraph).
//
// Reaching MaxIterations without meeting Tolerance is not an error; the
// Result reports Converged == false.
//
// Complexity:
//
//   - Time:  O(V + E) for the snapshot, then O(k·(V + E)) for k iterations.
//   - Space: O(V + E)
func Compute(g *core.Graph, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	cfg, err := resolve(opts)
	if err != nil {
		return nil, err
	}

	return run(g.Snapshot(), cfg)
}

// ComputeSnapshot ranks every vertex captured by s.
// Use it to run several parameter sets against one frozen topology.
func ComputeSnapshot(s *core.Snapshot, opts ...Option) (*Result, error) {
	if s == nil {
		return nil, ErrNilGraph
	}
	cfg, err := resolve(opts)
	if err != nil {
		return nil, err
	}

	return run(s, cfg)
}

// resolve applies opts over DefaultOptions and validates the outcome.
func resolve(opts []Option) (Options, error) {
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}
	if err := cfg.Validate(); err != nil {
		return Options{}, err
	}

	return cfg, nil
}

// run is the power-iteration loop over a validated configuration.
func run(s *core.Snapshot, cfg Options) (*Result, error) {
	n := s.VertexCount()
	if n == 0 {
		return nil, ErrEmptyGraph
	}

	offsets, targets := s.Adjacency()
	nf := float64(n)
	d := cfg.Damping
	teleport := (1 - d) / nf

	// 1) Uniform start.
	rank := make([]float64, n)
	next := make([]float64, n)
	for i := range rank {
		rank[i] = 1 / nf
	}

	history := make([]float64, 0, min(cfg.MaxIterations, 64))
	converged := false

	for iter := 0; iter < cfg.MaxIterations; iter++ {
		for j := range next {
			next[j] = 0
		}

		// 2) Push each vertex's rank along its edge occurrences;
		// 3) pool the rank of dangling vertices.
		var dangling float64
		for i := 0; i < n; i++ {
			lo, hi := offsets[i], offsets[i+1]
			if lo == hi {
				dangling += rank[i]
				continue
			}
			share := rank[i] / float64(hi-lo)
			for _, j := range targets[lo:hi] {
				next[j] += share
			}
		}

		// 4) Damp, teleport and redistribute the dangling pool;
		// 5) accumulate the L1 delta in index order.
		spread := dangling / nf
		var delta float64
		for j := 0; j < n; j++ {
			next[j] = teleport + d*(next[j]+spread)
			delta += math.Abs(next[j] - rank[j])
		}

		history = append(history, delta)
		rank, next = next, rank

		// 6) Stop on convergence; the loop bound handles exhaustion.
		if delta <= cfg.Tolerance {
			converged = true
			break
		}
	}

	return &Result{
		Nodes:              s.Vertices(),
		Scores:             rank,
		NumIterations:      len(history),
		ConvergenceHistory: history,
		Converged:          converged,
		Damping:            cfg.Damping,
		Tolerance:          cfg.Tolerance,
		MaxIterations:      cfg.MaxIterations,
	}, nil
}
