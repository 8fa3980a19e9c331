// Package core_test verifies thread-safety of core.Graph under concurrent operations.
package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvrank/core"
)

// TestConcurrentAddEdge ensures concurrent AddEdge calls all land as parallel occurrences.
func TestConcurrentAddEdge(t *testing.T) {
	g := core.NewGraph()
	g.AddVertex("X")
	const num = 200
	for i := 0; i < num; i++ {
		g.AddVertex(fmt.Sprintf("V%d", i))
	}

	var wg sync.WaitGroup
	wg.Add(num)
	for i := 0; i < num; i++ {
		go func(id int) {
			defer wg.Done()
			require.NoError(t, g.AddEdge("X", fmt.Sprintf("V%d", id%10)))
		}(i)
	}
	wg.Wait()

	deg, err := g.OutDegree(0)
	require.NoError(t, err)
	require.Equal(t, num, deg)
	require.Equal(t, num-10, g.Stats().ParallelCount)
}

// TestConcurrentAddVertexIdempotent ensures racing registrations agree on one index per ID.
func TestConcurrentAddVertexIdempotent(t *testing.T) {
	g := core.NewGraph()
	const workers = 16
	const ids = 50

	results := make([][]int, workers)
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(w int) {
			defer wg.Done()
			got := make([]int, ids)
			for i := 0; i < ids; i++ {
				got[i] = g.AddVertex(fmt.Sprintf("N%d", i))
			}
			results[w] = got
		}(w)
	}
	wg.Wait()

	require.Equal(t, ids, g.VertexCount())
	for w := 1; w < workers; w++ {
		require.Equal(t, results[0], results[w])
	}
}

// TestConcurrentSnapshotWhileWriting mixes readers and writers; the race detector is the oracle.
func TestConcurrentSnapshotWhileWriting(t *testing.T) {
	g := buildTriangle(t)
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 100; i++ {
			_ = g.AddEdge(VertexA, VertexC)
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 100; i++ {
			s := g.Snapshot()
			offsets, targets := s.Adjacency()
			require.Equal(t, len(targets), offsets[len(offsets)-1])
		}
	}()
	wg.Wait()
	require.Equal(t, 103, g.EdgeCount())
}
