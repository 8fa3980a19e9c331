// File: methods_vertices.go
// Role: Vertex registration & queries.
//
// Determinism:
//   - Vertices() returns IDs in first-seen (index) order.
//
// Concurrency:
//   - Mutations under mu write lock, queries under mu read lock.
//
// AI-Hints (file):
//   - Vertices() order is the canonical order of every score vector.
//   - AddVertex never fails; the empty string is an ordinary identifier.
package core

import "fmt"

// AddVertex registers id and returns its dense index (idempotent).
//
// Implementation:
//   - Stage 1: Under the write lock, look up id in the index map.
//   - Stage 2: If present, return the existing index unchanged.
//   - Stage 3: Otherwise append id, allocate an empty out-list and return len-1.
//
// Behavior highlights:
//   - Idempotent: re-adding an existing id is a no-op that reports its index.
//   - Indices are permanent: no reuse, no reordering.
//
// Inputs:
//   - id: external vertex identifier (any string, including "").
//
// Returns:
//   - int: dense index of id in [0, VertexCount()).
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
//
// AI-Hints:
//   - Register every vertex before wiring edges; AddEdge does not auto-create endpoints.
func (g *Graph) AddVertex(id string) int {
	g.mu.Lock()
	defer g.mu.Unlock()

	if idx, ok := g.index[id]; ok {
		return idx
	}

	idx := len(g.ids)
	g.index[id] = idx
	g.ids = append(g.ids, id)
	g.out = append(g.out, nil)

	return idx
}

// HasVertex reports whether id has been registered.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.index[id]

	return ok
}

// IndexOf returns the dense index of id and whether it exists.
// Complexity: O(1).
func (g *Graph) IndexOf(id string) (int, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	idx, ok := g.index[id]

	return idx, ok
}

// VertexAt returns the identifier stored at dense index idx.
//
// Errors:
//   - ErrIndexOutOfRange: if idx is outside [0, VertexCount()).
//
// Complexity: O(1).
func (g *Graph) VertexAt(idx int) (string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if idx < 0 || idx >= len(g.ids) {
		return "", fmt.Errorf("VertexAt(%d): %w", idx, ErrIndexOutOfRange)
	}

	return g.ids[idx], nil
}

// Vertices returns all vertex IDs in insertion order.
//
// Implementation:
//   - Stage 1: Acquire the read lock.
//   - Stage 2: Copy the index → ID table into a fresh slice.
//
// Behavior highlights:
//   - The result is a snapshot, not a live view: the caller may keep iterating
//     it while the graph grows.
//
// Returns:
//   - []string: IDs where element i is the vertex with dense index i.
//
// Determinism:
//   - Deterministic output order (first-seen).
//
// Complexity:
//   - Time O(V), Space O(V).
//
// AI-Hints:
//   - Pair Vertices()[i] with Result.Scores[i]; both follow index order.
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]string, len(g.ids))
	copy(ids, g.ids)

	return ids
}

// VertexCount returns the number of registered vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.ids)
}

// OutDegree returns the number of outgoing edge occurrences of vertex idx.
// Parallel edges count once per occurrence; a self-loop counts once.
//
// Errors:
//   - ErrIndexOutOfRange: if idx is outside [0, VertexCount()).
//
// Complexity: O(1).
func (g *Graph) OutDegree(idx int) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if idx < 0 || idx >= len(g.out) {
		return 0, fmt.Errorf("OutDegree(%d): %w", idx, ErrIndexOutOfRange)
	}

	return len(g.out[idx]), nil
}

// OutNeighbors returns the destination index of every outgoing edge occurrence
// of vertex idx, duplicates included, in insertion order.
//
// Errors:
//   - ErrIndexOutOfRange: if idx is outside [0, VertexCount()).
//
// Complexity: O(deg(idx)) time and space; the slice is a fresh copy.
func (g *Graph) OutNeighbors(idx int) ([]int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if idx < 0 || idx >= len(g.out) {
		return nil, fmt.Errorf("OutNeighbors(%d): %w", idx, ErrIndexOutOfRange)
	}

	dst := make([]int, len(g.out[idx]))
	copy(dst, g.out[idx])

	return dst, nil
}
