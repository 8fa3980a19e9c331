package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvrank/core"
)

// Shared vertex IDs keep failure output compact.
const (
	VertexA       = "A"
	VertexB       = "B"
	VertexC       = "C"
	VertexD       = "D"
	VertexMissing = "Missing"
)

// buildTriangle returns A→B→C→A.
func buildTriangle(t testing.TB) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	g.AddVertex(VertexA)
	g.AddVertex(VertexB)
	g.AddVertex(VertexC)
	require.NoError(t, g.AddEdge(VertexA, VertexB))
	require.NoError(t, g.AddEdge(VertexB, VertexC))
	require.NoError(t, g.AddEdge(VertexC, VertexA))

	return g
}
