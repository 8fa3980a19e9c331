// File: builder_impl_test.go
// Package builder_test contains functional tests for all Constructor
// implementations in the builder package, verifying topology, counts,
// vertex order and error contracts.
package builder_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvrank/builder"
	"github.com/katalvlaran/lvrank/core"
)

// edgeCounts returns the multiplicity of every (from,to) pair in g.
func edgeCounts(g *core.Graph) map[core.Edge]int {
	m := make(map[core.Edge]int)
	for _, e := range g.Edges() {
		m[e]++
	}
	return m
}

// TestBuilders_Functional runs table-driven functional tests for each builder.
func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		ctor        builder.Constructor
		wantV       int
		wantE       int
		sampleCheck func(t *testing.T, g *core.Graph)
	}{
		{
			name:  "Cycle(5)",
			ctor:  builder.Cycle(5),
			wantV: 5, wantE: 5,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				edges := edgeCounts(g)
				for i := 0; i < 5; i++ {
					e := core.Edge{From: fmt.Sprint(i), To: fmt.Sprint((i + 1) % 5)}
					require.Equal(t, 1, edges[e], "Cycle: edge %v", e)
				}
			},
		},
		{
			name:  "Cycle(2)",
			ctor:  builder.Cycle(2),
			wantV: 2, wantE: 2,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				require.Equal(t, []core.Edge{{From: "0", To: "1"}, {From: "1", To: "0"}}, g.Edges())
			},
		},
		{
			name:  "Path(4)",
			ctor:  builder.Path(4),
			wantV: 4, wantE: 3,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				idx, ok := g.IndexOf("3")
				require.True(t, ok)
				deg, err := g.OutDegree(idx)
				require.NoError(t, err)
				require.Zero(t, deg, "Path: tail must be dangling")
			},
		},
		{
			name:  "Path(1)",
			ctor:  builder.Path(1),
			wantV: 1, wantE: 0,
		},
		{
			name:  "Star(4)",
			ctor:  builder.Star(4),
			wantV: 4, wantE: 6,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				require.Equal(t, builder.CenterVertexID, g.Vertices()[0])
				edges := edgeCounts(g)
				for i := 1; i < 4; i++ {
					leaf := fmt.Sprint(i)
					require.Equal(t, 1, edges[core.Edge{From: builder.CenterVertexID, To: leaf}])
					require.Equal(t, 1, edges[core.Edge{From: leaf, To: builder.CenterVertexID}])
				}
			},
		},
		{
			name:  "Complete(4)",
			ctor:  builder.Complete(4),
			wantV: 4, wantE: 12,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				require.Zero(t, g.Stats().SelfLoopCount)
				for idx := 0; idx < 4; idx++ {
					deg, err := g.OutDegree(idx)
					require.NoError(t, err)
					require.Equal(t, 3, deg)
				}
			},
		},
		{
			name:  "Complete(1)",
			ctor:  builder.Complete(1),
			wantV: 1, wantE: 0,
		},
		{
			name:  "RandomSparse(5,1.0)",
			ctor:  builder.RandomSparse(5, 1.0),
			wantV: 5, wantE: 20,
		},
		{
			name:  "RandomSparse(5,0.0)",
			ctor:  builder.RandomSparse(5, 0.0),
			wantV: 5, wantE: 0,
		},
		{
			name:  "Edges",
			ctor:  builder.Edges([][2]string{{"x", "y"}, {"y", "x"}, {"x", "y"}, {"z", "z"}}),
			wantV: 3, wantE: 4,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				if diff := cmp.Diff([]string{"x", "y", "z"}, g.Vertices()); diff != "" {
					t.Errorf("vertex order mismatch (-want +got):\n%s", diff)
				}
				stats := g.Stats()
				require.Equal(t, 1, stats.SelfLoopCount)
				require.Equal(t, 1, stats.ParallelCount)
			},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := builder.BuildGraph(nil, tc.ctor)
			require.NoError(t, err)
			require.Equal(t, tc.wantV, g.VertexCount(), "vertex count")
			require.Equal(t, tc.wantE, g.EdgeCount(), "edge count")
			if tc.sampleCheck != nil {
				tc.sampleCheck(t, g)
			}
		})
	}
}

// TestBuilders_Errors verifies that every constructor rejects bad parameters
// with the documented sentinel.
func TestBuilders_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		ctor    builder.Constructor
		wantErr error
	}{
		{"Cycle(1)", builder.Cycle(1), builder.ErrTooFewVertices},
		{"Path(0)", builder.Path(0), builder.ErrTooFewVertices},
		{"Star(1)", builder.Star(1), builder.ErrTooFewVertices},
		{"Complete(0)", builder.Complete(0), builder.ErrTooFewVertices},
		{"RandomSparse(0,0.5)", builder.RandomSparse(0, 0.5), builder.ErrTooFewVertices},
		{"RandomSparse(p<0)", builder.RandomSparse(3, -0.1), builder.ErrInvalidProbability},
		{"RandomSparse(p>1)", builder.RandomSparse(3, 1.5), builder.ErrInvalidProbability},
		{"RandomSparse(noRNG)", builder.RandomSparse(3, 0.5), builder.ErrNeedRandSource},
		{"nil constructor", nil, builder.ErrConstructFailed},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := builder.BuildGraph(nil, tc.ctor)
			require.Nil(t, g)
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

// TestRandomSparse_Deterministic checks that a fixed seed yields an identical
// graph, including edge insertion order.
func TestRandomSparse_Deterministic(t *testing.T) {
	t.Parallel()

	build := func(seed int64) *core.Graph {
		g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(seed)}, builder.RandomSparse(30, 0.2))
		require.NoError(t, err)
		return g
	}

	a, b := build(11), build(11)
	require.Equal(t, a.Vertices(), b.Vertices())
	require.Equal(t, a.Edges(), b.Edges())
	require.Zero(t, a.Stats().SelfLoopCount, "loops are off by default")
}

// TestRandomSparse_Loops enables self-loop trials and expects all n² pairs at p=1.
func TestRandomSparse_Loops(t *testing.T) {
	t.Parallel()

	g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithLoops()}, builder.RandomSparse(4, 1.0))
	require.NoError(t, err)
	require.Equal(t, 16, g.EdgeCount())
	require.Equal(t, 4, g.Stats().SelfLoopCount)
}

// TestBuildGraph_Compose verifies that constructors share vertices by ID and
// that a failing constructor discards the graph.
func TestBuildGraph_Compose(t *testing.T) {
	t.Parallel()

	opts := []builder.BuilderOption{builder.WithIDScheme(builder.SymbolIDFn)}
	g, err := builder.BuildGraph(opts, builder.Cycle(3), builder.Edges([][2]string{{"C", "D"}}))
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B", "C", "D"}, g.Vertices())
	require.Equal(t, 4, g.EdgeCount())

	_, err = builder.BuildGraph(opts, builder.Cycle(3), builder.Path(0))
	require.True(t, errors.Is(err, builder.ErrTooFewVertices))
}
