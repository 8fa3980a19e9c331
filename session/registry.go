// File: registry.go
// Role: Session-key → Graph Store registry with expiry and serialized computes.
// Policy:
//   - r.mu guards the entry map and every entry's graph/result/touched fields.
//   - entry.compute serializes pagerank runs of one session; it is never held
//     together with r.mu.

package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/lvrank/core"
	"github.com/katalvlaran/lvrank/pagerank"
)

var (
	// ErrSessionNotFound indicates an unknown or expired session key.
	ErrSessionNotFound = errors.New("session: not found")

	// ErrNilGraph indicates Submit was called without a graph.
	ErrNilGraph = errors.New("session: graph is nil")
)

type entry struct {
	compute sync.Mutex

	graph   *core.Graph
	result  *pagerank.Result
	touched time.Time
}

// Registry holds independent sessions. The zero value is not usable; call NewRegistry.
type Registry struct {
	mu      sync.Mutex
	entries map[string]*entry

	ttl    time.Duration
	logger *slog.Logger
	tracer trace.Tracer
	now    func() time.Time
}

// NewRegistry returns an empty Registry configured by opts.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{entries: make(map[string]*entry)}
	defaults(r)
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Submit stores a private copy of g under key and returns the key.
// An empty key starts a new session with a generated key. Replacing the
// graph of an existing session discards its previous Result.
func (r *Registry) Submit(key string, g *core.Graph) (string, error) {
	if g == nil {
		return "", ErrNilGraph
	}
	if key == "" {
		key = uuid.NewString()
	}
	own := g.Clone()

	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.lookupLocked(key)
	if !ok {
		e = &entry{}
		r.entries[key] = e
	}
	e.graph = own
	e.result = nil
	e.touched = r.now()

	r.logger.Debug("graph submitted",
		"session", key,
		"replaced", ok,
		"nodes", own.VertexCount(),
		"edges", own.EdgeCount())

	return key, nil
}

// Graph returns a copy of the session's graph. Changes to the copy do not
// reach the session; call Submit to replace the stored graph.
func (r *Registry) Graph(key string) (*core.Graph, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.lookupLocked(key)
	if !ok {
		return nil, fmt.Errorf("%q: %w", key, ErrSessionNotFound)
	}
	e.touched = r.now()

	return e.graph.Clone(), nil
}

// Result returns the latest Result computed for the session, or nil when
// none has been computed since the graph was submitted.
func (r *Registry) Result(key string) (*pagerank.Result, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.lookupLocked(key)
	if !ok {
		return nil, fmt.Errorf("%q: %w", key, ErrSessionNotFound)
	}
	e.touched = r.now()

	return e.result, nil
}

// Compute runs PageRank over the session's graph and stores the Result.
//
// Implementation:
//   - Stage 1: Resolve the entry; fail with ErrSessionNotFound.
//   - Stage 2: Take the session's compute lock; other sessions proceed in parallel.
//   - Stage 3: Run the engine inside a "session.compute" span.
//   - Stage 4: Publish the Result unless the graph was replaced meanwhile.
//
// A canceled ctx is honored before the engine starts; a running computation
// is not interrupted.
func (r *Registry) Compute(ctx context.Context, key string, opts ...pagerank.Option) (*pagerank.Result, error) {
	r.mu.Lock()
	e, ok := r.lookupLocked(key)
	if ok {
		e.touched = r.now()
	}
	r.mu.Unlock()
	if !ok {
		return nil, fmt.Errorf("%q: %w", key, ErrSessionNotFound)
	}

	e.compute.Lock()
	defer e.compute.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("session %q: %w", key, err)
	}

	r.mu.Lock()
	g := e.graph
	r.mu.Unlock()

	_, span := r.tracer.Start(ctx, "session.compute", trace.WithAttributes(
		attribute.String("session.key", key),
		attribute.Int("graph.nodes", g.VertexCount()),
		attribute.Int("graph.edges", g.EdgeCount()),
	))
	defer span.End()

	res, err := pagerank.Compute(g, opts...)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		r.logger.Warn("compute failed", "session", key, "error", err)

		return nil, fmt.Errorf("session %q: %w", key, err)
	}

	span.SetAttributes(
		attribute.Int("pagerank.iterations", res.NumIterations),
		attribute.Bool("pagerank.converged", res.Converged),
		attribute.Float64("pagerank.final_delta", res.FinalDelta()),
	)
	span.SetStatus(codes.Ok, "")

	r.mu.Lock()
	if e.graph == g {
		e.result = res
		e.touched = r.now()
	}
	r.mu.Unlock()

	r.logger.Debug("compute finished",
		"session", key,
		"iterations", res.NumIterations,
		"converged", res.Converged)

	return res, nil
}

// Clear removes the session.
func (r *Registry) Clear(key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.lookupLocked(key); !ok {
		return fmt.Errorf("%q: %w", key, ErrSessionNotFound)
	}
	delete(r.entries, key)
	r.logger.Debug("session cleared", "session", key)

	return nil
}

// Sweep drops every expired session and reports how many were removed.
func (r *Registry) Sweep() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	removed := 0
	for key, e := range r.entries {
		if r.expired(e, now) {
			delete(r.entries, key)
			removed++
		}
	}
	if removed > 0 {
		r.logger.Info("expired sessions swept", "removed", removed, "remaining", len(r.entries))
	}

	return removed
}

// Len reports the number of stored sessions, expired ones included until swept.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.entries)
}

// lookupLocked resolves key, dropping it if expired. Caller holds r.mu.
func (r *Registry) lookupLocked(key string) (*entry, bool) {
	e, ok := r.entries[key]
	if !ok {
		return nil, false
	}
	if r.expired(e, r.now()) {
		delete(r.entries, key)
		return nil, false
	}

	return e, true
}

func (r *Registry) expired(e *entry, now time.Time) bool {
	return r.ttl > 0 && now.Sub(e.touched) > r.ttl
}
