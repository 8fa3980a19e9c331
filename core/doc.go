// Package core provides the in-memory directed Graph store used by lvrank.
//
// The Graph G = (V,E) is deliberately narrow:
//
//   - Directed edges only; every edge occurrence flows From → To.
//   - Multigraph semantics: parallel edges are kept as a multiset, so the
//     out-degree of a vertex is its edge-occurrence count.
//   - Self-loops are ordinary edges.
//   - Dense vertex indices: each identifier is mapped once, in first-seen
//     order, to an integer in [0, V). Indices are never reused or reordered.
//   - Per-vertex out-lists sized to the real edge count; no V×V matrix is
//     ever materialized.
//
// Why dense indices?
//
//   - Score vectors are plain []float64 aligned to Vertices().
//   - The ranking hot loop never hashes strings; it walks a Snapshot's
//     offsets/targets arrays.
//
// Core Methods:
//
//	// Vertex registration
//	AddVertex(id string) int              // O(1), idempotent, never fails
//	HasVertex(id string) bool             // O(1)
//	IndexOf(id string) (int, bool)        // O(1)
//	VertexAt(idx int) (string, error)     // O(1)
//
//	// Edge registration
//	AddEdge(from, to string) error        // O(1)†, ErrUnknownNode if an endpoint is missing
//
//	// Query
//	Vertices() []string                   // O(V), insertion order
//	Edges() []Edge                        // O(E), insertion order
//	OutDegree(idx int) (int, error)       // O(1)
//	OutNeighbors(idx int) ([]int, error)  // O(deg), duplicates kept
//	VertexCount() int / EdgeCount() int   // O(1)
//	Stats() GraphStats                    // O(V+E)
//
//	// Views & copies
//	Snapshot() *Snapshot                  // O(V+E), immutable CSR view
//	Clone() *Graph                        // O(V+E), deep copy
//
// Errors:
//
//	ErrUnknownNode     – AddEdge endpoint never registered; graph unchanged
//	ErrIndexOutOfRange – dense index outside [0, V)
//
// † amortized: slice appends.
package core
