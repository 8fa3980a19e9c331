package session

import (
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// DefaultTTL is the idle lifetime of a session when WithTTL is not given.
const DefaultTTL = time.Hour

const tracerName = "github.com/katalvlaran/lvrank/session"

// Option configures a Registry.
type Option func(*Registry)

// WithTTL sets the idle lifetime of sessions; d <= 0 disables expiry.
func WithTTL(d time.Duration) Option {
	return func(r *Registry) {
		if d < 0 {
			d = 0
		}
		r.ttl = d
	}
}

// WithLogger sets the logger for lifecycle events. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(r *Registry) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithTracer sets the tracer used for compute spans. Nil is ignored.
func WithTracer(t trace.Tracer) Option {
	return func(r *Registry) {
		if t != nil {
			r.tracer = t
		}
	}
}

// WithClock replaces time.Now, mainly for expiry tests. Nil is ignored.
func WithClock(now func() time.Time) Option {
	return func(r *Registry) {
		if now != nil {
			r.now = now
		}
	}
}

func defaults(r *Registry) {
	r.ttl = DefaultTTL
	r.logger = slog.New(slog.DiscardHandler)
	r.tracer = otel.Tracer(tracerName)
	r.now = time.Now
}
