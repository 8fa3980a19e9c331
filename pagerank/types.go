// Package pagerank defines the options, result type and sentinel errors
// of the damped power-iteration PageRank solver.
//
// Options:
//
//	– Damping:       probability mass that follows outgoing edges (0 < d < 1).
//	– Tolerance:     L1 distance between successive iterates that counts as converged (> 0).
//	– MaxIterations: hard cap on iterations (> 0); hitting it is not an error.
//
// Errors (sentinel):
//
//	– ErrNilGraph          if the provided graph or snapshot is nil.
//	– ErrInvalidParameter  if any option is out of range (wrapped by the three below).
//	– ErrBadDamping        if Damping is not in the open interval (0,1) or is NaN.
//	– ErrBadTolerance      if Tolerance is not positive or is NaN.
//	– ErrBadMaxIterations  if MaxIterations is not positive.
//	– ErrEmptyGraph        if the graph has no vertices.
package pagerank

import (
	"errors"
	"fmt"
	"sort"
)

// Sentinel errors returned by Compute.
var (
	// ErrNilGraph indicates that a nil *core.Graph or *core.Snapshot was passed.
	ErrNilGraph = errors.New("pagerank: graph is nil")

	// ErrEmptyGraph indicates Compute was invoked on a graph with zero vertices.
	ErrEmptyGraph = errors.New("pagerank: graph has no vertices")

	// ErrInvalidParameter is the umbrella for every rejected option value.
	ErrInvalidParameter = errors.New("pagerank: invalid parameter")

	// ErrBadDamping indicates Damping outside (0,1).
	ErrBadDamping = fmt.Errorf("%w: damping must be in (0,1)", ErrInvalidParameter)

	// ErrBadTolerance indicates a non-positive Tolerance.
	ErrBadTolerance = fmt.Errorf("%w: tolerance must be positive", ErrInvalidParameter)

	// ErrBadMaxIterations indicates a non-positive MaxIterations.
	ErrBadMaxIterations = fmt.Errorf("%w: max iterations must be positive", ErrInvalidParameter)
)

// Default parameter values.
const (
	DefaultDamping       = 0.85
	DefaultTolerance     = 1e-6
	DefaultMaxIterations = 100
)

// Options configures one PageRank computation.
//
// Damping       – share of rank that follows edges; 1-Damping teleports uniformly.
// Tolerance     – stop once the L1 delta between iterates is ≤ Tolerance.
// MaxIterations – stop after this many iterations even if not converged.
type Options struct {
	Damping       float64
	Tolerance     float64
	MaxIterations int
}

// Option represents a functional option for configuring Compute.
type Option func(*Options)

// WithDamping sets the damping factor.
// Values outside (0,1) are reported by Compute as ErrBadDamping.
func WithDamping(d float64) Option {
	return func(o *Options) {
		o.Damping = d
	}
}

// WithTolerance sets the L1 convergence threshold.
// Non-positive values are reported by Compute as ErrBadTolerance.
func WithTolerance(eps float64) Option {
	return func(o *Options) {
		o.Tolerance = eps
	}
}

// WithMaxIterations sets the iteration cap.
// Non-positive values are reported by Compute as ErrBadMaxIterations.
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		o.MaxIterations = n
	}
}

// DefaultOptions returns the conventional parameters:
// damping 0.85, tolerance 1e-6, at most 100 iterations.
func DefaultOptions() Options {
	return Options{
		Damping:       DefaultDamping,
		Tolerance:     DefaultTolerance,
		MaxIterations: DefaultMaxIterations,
	}
}

// Validate checks every field and returns the first violation.
// NaN compares false against every bound, so it is rejected explicitly
// by the negated range checks.
func (o Options) Validate() error {
	if !(o.Damping > 0 && o.Damping < 1) {
		return fmt.Errorf("damping=%v: %w", o.Damping, ErrBadDamping)
	}
	if !(o.Tolerance > 0) {
		return fmt.Errorf("tolerance=%v: %w", o.Tolerance, ErrBadTolerance)
	}
	if o.MaxIterations <= 0 {
		return fmt.Errorf("max_iterations=%d: %w", o.MaxIterations, ErrBadMaxIterations)
	}

	return nil
}

// Result is the immutable outcome of one Compute call.
//
// Scores[i] belongs to Nodes[i], which is the graph's Vertices() order at the
// time of the call. A Result never tracks later graph mutation.
type Result struct {
	// Nodes is the vertex order the scores are aligned to.
	Nodes []string

	// Scores holds one probability per vertex; they sum to 1 within rounding.
	Scores []float64

	// NumIterations is the number of completed iterations.
	NumIterations int

	// ConvergenceHistory holds the L1 delta of each completed iteration, in order.
	ConvergenceHistory []float64

	// Converged reports whether the last delta met the tolerance.
	// When false, NumIterations == MaxIterations.
	Converged bool

	// Effective parameters used for this run.
	Damping       float64
	Tolerance     float64
	MaxIterations int
}

// Ranked pairs a vertex with its score and dense index.
type Ranked struct {
	Index int
	ID    string
	Score float64
}

// FinalDelta returns the last convergence delta, or 0 for an empty history.
func (r *Result) FinalDelta() float64 {
	if len(r.ConvergenceHistory) == 0 {
		return 0
	}

	return r.ConvergenceHistory[len(r.ConvergenceHistory)-1]
}

// Score returns the score of vertex id and whether it was part of the run.
// Complexity: O(V).
func (r *Result) Score(id string) (float64, bool) {
	for i, n := range r.Nodes {
		if n == id {
			return r.Scores[i], true
		}
	}

	return 0, false
}

// Ranking returns vertices ordered by descending score.
// Ties keep ascending index order, so the ranking is deterministic.
// Complexity: O(V log V).
func (r *Result) Ranking() []Ranked {
	out := make([]Ranked, len(r.Scores))
	for i, s := range r.Scores {
		out[i] = Ranked{Index: i, ID: r.Nodes[i], Score: s}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })

	return out
}
