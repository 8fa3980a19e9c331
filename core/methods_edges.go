// File: methods_edges.go
// Role: Edge insertion & enumeration: AddEdge/Edges/EdgeCount.
// Determinism:
//   - Edges() returns edge occurrences in insertion order.
// Concurrency:
//   - Mutations under mu write lock.
//   - Read queries under mu read lock.
// AI-HINT (file):
//   - Both endpoints MUST be registered first (else ErrUnknownNode, graph unchanged).
//   - Self-loops and parallel edges are always accepted; edges form a multiset.

package core

import "fmt"

// AddEdge appends one directed edge occurrence from→to.
//
// AI-HINT:
//   - If either endpoint was never passed to AddVertex, this returns ErrUnknownNode
//     and the graph is left exactly as it was.
//   - Adding the same pair k times gives the destination k shares of the source's mass.
//
// Steps:
//  1. Lock mu.
//  2. Resolve both endpoints; missing ⇒ ErrUnknownNode (wrapped with the missing ID).
//  3. Append the destination to out[from] and the arc to the global edge log.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	src, ok := g.index[from]
	if !ok {
		return fmt.Errorf("AddEdge(%q→%q): source %q: %w", from, to, from, ErrUnknownNode)
	}
	dst, ok := g.index[to]
	if !ok {
		return fmt.Errorf("AddEdge(%q→%q): destination %q: %w", from, to, to, ErrUnknownNode)
	}

	g.out[src] = append(g.out[src], dst)
	g.arcs = append(g.arcs, arc{from: src, to: dst})

	return nil
}

// Edges returns every edge occurrence as (From, To) identifiers in insertion order.
// Complexity: O(E) time and space.
func (g *Graph) Edges() []Edge {
	// AI-HINT: Parallel edges appear once per occurrence; order is stable for golden tests.
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, len(g.arcs))
	for i, a := range g.arcs {
		out[i] = Edge{From: g.ids[a.from], To: g.ids[a.to]}
	}

	return out
}

// EdgeCount returns the total number of edge occurrences.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.arcs)
}
