// Package builder provides deterministic, functional‐options‐style topology
// constructors that populate a core.Graph. They serve as fixtures for tests,
// benchmarks and the `lvrank generate` command.
//
// The package offers the following key components:
//
//   - Orchestrator:
//     – BuildGraph(bopts, cons...) creates a graph and applies constructors in order.
//   - Topologies (Constructor implementations):
//     – Cycle(n):          directed ring i→i+1 mod n.
//     – Path(n):           directed chain; the tail is dangling.
//     – Star(n):           hub "Center" with bidirectional spokes.
//     – Complete(n):       every ordered pair i≠j.
//     – RandomSparse(n,p): independent ordered-pair trials with probability p.
//     – Edges(pairs):      an explicit edge list.
//   - Configuration primitives:
//     – WithIDScheme, WithSeed, WithRand, WithLoops.
//   - Vertex‐ID schemes (IDFn implementations):
//     – DefaultIDFn:       decimal strings ("0","1",…).
//     – SymbolIDFn:        single letters ("A","B",…).
//     – ExcelColumnIDFn:   Excel‐style columns ("A","Z","AA",…).
//     – SymbolNumberIDFn:  prefixed decimals ("v0","v1",…).
//
// Guarantees:
//
//   - Same options, seed and constructor order ⇒ identical vertex indices and
//     identical edge insertion order.
//   - Fast‐fail on invalid option parameters via panics in option constructors.
//   - Constructors return wrapped sentinel errors (ErrTooFewVertices,
//     ErrInvalidProbability, ErrNeedRandSource, ErrConstructFailed).
package builder
