// File: methods_clone.go
// Role: Deep copy of a Graph.
// Determinism:
//   - Clone preserves vertex indices and edge insertion order.
// Concurrency:
//   - Read lock on the source while copying.

package core

// Clone returns an independent deep copy of g.
// Mutating either graph afterwards never affects the other.
//
// Complexity: O(V+E) time and space.
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	c := &Graph{
		index: make(map[string]int, len(g.index)),
		ids:   make([]string, len(g.ids)),
		out:   make([][]int, len(g.out)),
		arcs:  make([]arc, len(g.arcs)),
	}
	for id, idx := range g.index {
		c.index[id] = idx
	}
	copy(c.ids, g.ids)
	for i, dsts := range g.out {
		if len(dsts) > 0 {
			c.out[i] = append([]int(nil), dsts...)
		}
	}
	copy(c.arcs, g.arcs)

	return c
}
