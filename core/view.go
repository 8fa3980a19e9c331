// File: view.go
// Role: Immutable, lock-free read views of a Graph.
// Determinism:
//   - Preserves vertex indices and per-source edge insertion order exactly.
// Concurrency:
//   - Read lock on the source only while copying; the view is independent afterwards.
// AI-HINT (file):
//   - Views do NOT observe later mutation of the Graph.
//   - Snapshot is compressed sparse row: targets[offsets[i]:offsets[i+1]] are i's destinations.

package core

import "fmt"

// Snapshot is a frozen compressed-sparse-row copy of a Graph's topology.
//
// It stores no string hashing structures, so ranking loops touch only
// integer slices. A Snapshot is safe for concurrent readers.
type Snapshot struct {
	ids     []string // dense index → vertex ID
	offsets []int    // len == V+1; offsets[V] == E
	targets []int    // concatenated out-lists, insertion order per source
}

// Snapshot copies the current topology into an immutable CSR view.
//
// Implementation:
//   - Stage 1: Acquire the read lock.
//   - Stage 2: Prefix-sum out-degrees into offsets (length V+1).
//   - Stage 3: Concatenate every out-list into targets, keeping insertion order.
//
// Complexity:
//   - Time O(V+E), Space O(V+E).
//
// AI-Hints:
//   - Take one Snapshot per computation; reuse it for repeated runs to avoid copies.
func (g *Graph) Snapshot() *Snapshot {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n := len(g.ids)
	s := &Snapshot{
		ids:     make([]string, n),
		offsets: make([]int, n+1),
		targets: make([]int, 0, len(g.arcs)),
	}
	copy(s.ids, g.ids)

	for i := 0; i < n; i++ {
		s.targets = append(s.targets, g.out[i]...)
		s.offsets[i+1] = len(s.targets)
	}

	return s
}

// VertexCount returns the number of vertices captured by the snapshot.
func (s *Snapshot) VertexCount() int { return len(s.ids) }

// EdgeCount returns the number of edge occurrences captured by the snapshot.
func (s *Snapshot) EdgeCount() int { return len(s.targets) }

// Vertices returns a copy of the vertex IDs in index order.
func (s *Snapshot) Vertices() []string {
	ids := make([]string, len(s.ids))
	copy(ids, s.ids)

	return ids
}

// OutDegree returns the out-degree of vertex idx.
// Unlike Graph.OutDegree it does not bounds-check beyond the slice access;
// use it from loops that already iterate [0, VertexCount()).
func (s *Snapshot) OutDegree(idx int) int {
	return s.offsets[idx+1] - s.offsets[idx]
}

// OutNeighbors returns the destination indices of vertex idx, duplicates
// included, in insertion order. The returned slice aliases the snapshot and
// must not be modified.
//
// Errors:
//   - ErrIndexOutOfRange: if idx is outside [0, VertexCount()).
func (s *Snapshot) OutNeighbors(idx int) ([]int, error) {
	if idx < 0 || idx >= len(s.ids) {
		return nil, fmt.Errorf("Snapshot.OutNeighbors(%d): %w", idx, ErrIndexOutOfRange)
	}

	return s.targets[s.offsets[idx]:s.offsets[idx+1]:s.offsets[idx+1]], nil
}

// Adjacency exposes the raw CSR arrays (offsets, targets) for hot loops.
// Both slices alias the snapshot and must be treated as read-only.
func (s *Snapshot) Adjacency() (offsets, targets []int) {
	return s.offsets, s.targets
}
