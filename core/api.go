// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only diagnostics facade over the Graph store.
// Policy:
//   - No algorithms or hidden state here.
//   - Concurrency model and invariants are defined in types.go/doc.go.
// AI-HINT (file):
//   - Stats() is an O(V+E) snapshot; rely on it for admissions/diagnostics.

package core

// GraphStats is a point-in-time summary of a Graph.
type GraphStats struct {
	VertexCount   int // registered vertices
	EdgeCount     int // edge occurrences (parallel edges counted individually)
	DanglingCount int // vertices with out-degree 0
	SelfLoopCount int // occurrences with From == To
	ParallelCount int // occurrences repeating an earlier (From, To) pair
}

// Stats produces a deterministic, read-only summary of vertex and edge counts,
// including the dangling vertices that PageRank redistributes.
//
// Implementation:
//   - Stage 1: Acquire the read lock.
//   - Stage 2: Scan each out-list once; count self-loops and repeated destinations.
//
// Returns:
//   - GraphStats: value snapshot of the counters.
//
// Complexity:
//   - Time O(V+E), Space O(max out-degree) for the per-source duplicate set.
//
// AI-Hints:
//   - DanglingCount == VertexCount means PageRank degenerates to pure teleportation.
func (g *Graph) Stats() GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	stats := GraphStats{
		VertexCount: len(g.ids),
		EdgeCount:   len(g.arcs),
	}

	seen := make(map[int]struct{})
	for src, dsts := range g.out {
		if len(dsts) == 0 {
			stats.DanglingCount++
			continue
		}
		clear(seen)
		for _, dst := range dsts {
			if dst == src {
				stats.SelfLoopCount++
			}
			if _, dup := seen[dst]; dup {
				stats.ParallelCount++
				continue
			}
			seen[dst] = struct{}{}
		}
	}

	return stats
}
