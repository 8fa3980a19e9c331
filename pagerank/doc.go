// Package pagerank computes PageRank importance scores over a core.Graph by
// damped power iteration, and reports the convergence trace of the run.
//
// Overview:
//
//   - A random surfer follows an outgoing edge with probability Damping and
//     teleports to a uniformly random vertex otherwise.
//   - Rank stuck at a dangling vertex (no outgoing edges) is treated as if it
//     teleported uniformly, so no mass leaks and scores always sum to 1.
//   - Parallel edges are weighted: k copies of i→j give j k shares of i's rank.
//   - Self-loops return their share to the source vertex.
//
// Update rule for iteration t, with N vertices and D the set of dangling vertices:
//
//	next[j] = (1-d)/N + d · ( Σ_{i→j} rank[i]/outdeg(i) + Σ_{i∈D} rank[i]/N )
//	delta   = Σ_j |next[j] - rank[j]|
//
// The loop stops when delta ≤ Tolerance or after MaxIterations iterations.
//
// Determinism:
//
//   - Vertices are visited in ascending index order and every floating-point
//     sum runs in that order. Two calls on an unmodified graph with equal
//     options return bit-identical Scores and ConvergenceHistory.
//
// Performance and complexity:
//
//   - Time:  O(V + E) per iteration; the transition matrix is never built.
//   - Space: O(V + E) for the snapshot plus two score buffers.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph:         nil graph or snapshot.
//   - ErrInvalidParameter: damping outside (0,1), non-positive tolerance or
//     non-positive max iterations (ErrBadDamping, ErrBadTolerance,
//     ErrBadMaxIterations wrap it).
//   - ErrEmptyGraph:       the graph has no vertices; nothing is iterated.
//
// Non-convergence is not an error. A Result with Converged == false has
// NumIterations == MaxIterations; inspect FinalDelta() to judge its quality.
//
// Example usage:
//
//	g := core.NewGraph()
//	g.AddVertex("A")
//	g.AddVertex("B")
//	_ = g.AddEdge("A", "B")
//	res, err := pagerank.Compute(g, pagerank.WithDamping(0.9))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Nodes, res.Scores, res.NumIterations)
package pagerank
