package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvrank/core"
)

// TestSnapshot_CSRLayout checks offsets/targets against per-vertex out-lists.
func TestSnapshot_CSRLayout(t *testing.T) {
	g := core.NewGraph()
	g.AddVertex(VertexA)
	g.AddVertex(VertexB)
	g.AddVertex(VertexC)
	require.NoError(t, g.AddEdge(VertexB, VertexC))
	require.NoError(t, g.AddEdge(VertexA, VertexC))
	require.NoError(t, g.AddEdge(VertexB, VertexA))
	require.NoError(t, g.AddEdge(VertexB, VertexC))

	s := g.Snapshot()
	require.Equal(t, 3, s.VertexCount())
	require.Equal(t, 4, s.EdgeCount())
	require.Equal(t, []string{VertexA, VertexB, VertexC}, s.Vertices())

	offsets, targets := s.Adjacency()
	require.Equal(t, []int{0, 1, 4, 4}, offsets)
	require.Equal(t, []int{2, 2, 0, 2}, targets)

	require.Equal(t, 1, s.OutDegree(0))
	require.Equal(t, 3, s.OutDegree(1))
	require.Equal(t, 0, s.OutDegree(2))

	nbs, err := s.OutNeighbors(1)
	require.NoError(t, err)
	require.Equal(t, []int{2, 0, 2}, nbs)

	_, err = s.OutNeighbors(3)
	require.ErrorIs(t, err, core.ErrIndexOutOfRange)
}

// TestSnapshot_IndependentOfLaterMutation checks the view is frozen at call time.
func TestSnapshot_IndependentOfLaterMutation(t *testing.T) {
	g := buildTriangle(t)
	s := g.Snapshot()

	g.AddVertex(VertexD)
	require.NoError(t, g.AddEdge(VertexA, VertexD))

	require.Equal(t, 3, s.VertexCount())
	require.Equal(t, 3, s.EdgeCount())
	require.Equal(t, 1, s.OutDegree(0))
}

// TestSnapshot_Empty checks the degenerate empty graph.
func TestSnapshot_Empty(t *testing.T) {
	s := core.NewGraph().Snapshot()
	require.Zero(t, s.VertexCount())
	require.Zero(t, s.EdgeCount())
	offsets, targets := s.Adjacency()
	require.Equal(t, []int{0}, offsets)
	require.Empty(t, targets)
}
