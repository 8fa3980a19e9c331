// File: build.go
// Role: Document → core.Graph conversion and parameter extraction.

package graphfile

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/lvrank/core"
	"github.com/katalvlaran/lvrank/pagerank"
)

const edgeArity = 2

// Build materializes the document as a Graph.
//
// Implementation:
//   - Stage 1: Reject an empty node list (ErrNoNodes).
//   - Stage 2: Register nodes in document order; duplicates keep their first index.
//   - Stage 3: Add edges in document order, skipping malformed entries with a warning.
//
// Errors:
//   - ErrNoNodes.
//   - core.ErrUnknownNode (wrapped with the edge position) for an undeclared endpoint.
//
// A nil logger discards warnings.
func (d *Document) Build(logger *slog.Logger) (*core.Graph, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if len(d.Nodes) == 0 {
		return nil, ErrNoNodes
	}

	g := core.NewGraph()
	for _, n := range d.Nodes {
		g.AddVertex(string(n))
	}

	if len(d.Edges) == 0 {
		logger.Warn("no edges defined", "nodes", g.VertexCount())
	}
	for i, e := range d.Edges {
		if len(e) != edgeArity {
			logger.Warn("skipping edge with invalid format", "index", i, "arity", len(e))
			continue
		}
		if err := g.AddEdge(string(e[0]), string(e[1])); err != nil {
			return nil, fmt.Errorf("graphfile: edge %d: %w", i, err)
		}
	}

	return g, nil
}

// Options returns the parameters present in the document as engine options,
// in the order damping, tolerance, max iterations.
func (d *Document) Options() []pagerank.Option {
	var opts []pagerank.Option
	p := d.Parameters
	if p.Damping != nil {
		opts = append(opts, pagerank.WithDamping(*p.Damping))
	}
	if p.Tolerance != nil {
		opts = append(opts, pagerank.WithTolerance(*p.Tolerance))
	}
	if p.MaxIterations != nil {
		opts = append(opts, pagerank.WithMaxIterations(*p.MaxIterations))
	}

	return opts
}
