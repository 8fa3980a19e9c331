// Package lvrank is an in-memory PageRank toolkit: a directed multigraph
// store plus a deterministic damped power-iteration engine.
//
// 🚀 What is lvrank?
//
//	A small, thread-safe library and CLI that brings together:
//		• Graph Store: string-labelled vertices with dense insertion-ordered
//		  indices, directed edges with self-loops and parallel edges
//		• PageRank Engine: damped power iteration with dangling-mass
//		  redistribution, L1 convergence trace, bit-identical results
//		• Builders: cycle, path, star, complete and seeded random graphs
//		• Graph documents: the {nodes, edges, parameters} JSON/YAML shape
//		• Sessions: isolated per-key graphs with serialized computes
//
// ✨ Why choose lvrank?
//
//   - Predictable – same graph and parameters give the same bits every run
//   - Honest results – non-convergence is reported, never raised as an error
//   - Fail-fast store – an edge to an unknown node is rejected, not invented
//   - Observable – slog logging and OpenTelemetry spans at the outer layers
//
// Under the hood, everything is organized under these subpackages:
//
//	core/        - Graph store, CSR Snapshot view, Stats, Clone
//	pagerank/    - Compute, options, Result, sentinel errors
//	builder/     - deterministic topology constructors and ID schemes
//	graphfile/   - graph document decoding/encoding (yaml.v3)
//	session/     - session-key → graph registry with expiry and tracing
//	cmd/lvrank/  - the `lvrank` command (rank, generate, version)
//
// Quick ASCII example:
//
//	    A ──► B
//	    │
//	    └───► C
//
//	A splits its rank between B and C; B and C are dangling, so their mass
//	is spread over every vertex. At d=0.85: A≈0.2597, B=C≈0.3701.
//
//	go get github.com/katalvlaran/lvrank
package lvrank
