// Package core defines the Graph store, the Edge type and the read-only
// Snapshot consumed by ranking algorithms.
//
// All Graph methods take a single sync.RWMutex internally, so a Graph may be
// shared across goroutines. Algorithms should not hold that lock while they
// iterate; they take a Snapshot once and work on it lock-free.
//
// This file declares Edge, Graph, sentinel errors, and the NewGraph constructor.
//
// Errors:
//
//	ErrUnknownNode      - an edge endpoint was never registered with AddVertex.
//	ErrIndexOutOfRange  - a dense vertex index is outside [0, VertexCount()).
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrUnknownNode indicates AddEdge referenced an identifier never passed to AddVertex.
	ErrUnknownNode = errors.New("core: unknown node")

	// ErrIndexOutOfRange indicates a dense vertex index outside [0, VertexCount()).
	ErrIndexOutOfRange = errors.New("core: vertex index out of range")
)

// Edge is one directed edge occurrence, reported by external identifiers.
//
// Parallel edges are reported once per occurrence; a self-loop has From == To.
type Edge struct {
	// From is the source vertex ID.
	From string

	// To is the destination vertex ID.
	To string
}

// arc is the internal, index-based form of an Edge.
type arc struct {
	from, to int
}

// Graph is a directed multigraph with dense, insertion-ordered vertex indices.
//
// Invariants:
//   - ids[i] is the identifier of vertex i; index[ids[i]] == i.
//   - Indices form the contiguous range [0, len(ids)) and are never reused.
//   - out[i] lists destination indices of every edge occurrence leaving i,
//     in insertion order, so len(out[i]) is the out-degree of i.
//   - arcs records every edge occurrence in global insertion order.
type Graph struct {
	mu sync.RWMutex // guards every field below

	index map[string]int // vertex ID → dense index
	ids   []string       // dense index → vertex ID
	out   [][]int        // dense index → destination indices (multiset)
	arcs  []arc          // edge occurrences in insertion order
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		index: make(map[string]int),
	}
}
