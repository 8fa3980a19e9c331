// Package session keeps one Graph Store per caller-owned session key.
//
// A Registry maps keys to independent graphs together with the latest
// PageRank Result computed over each. It replaces process-wide mutable maps:
// the registry is an explicit value, every session owns a private copy of
// the graph it was given, and computations over the same session are
// serialized so at most one is in flight per store.
//
// Entries idle for longer than the configured TTL are invisible to lookups
// and are dropped by Sweep. A zero TTL disables expiry.
//
// Each Compute records an OpenTelemetry span ("session.compute") on the
// configured tracer; by default the global provider is used, which is a
// no-op until internal/telemetry installs one.
package session
