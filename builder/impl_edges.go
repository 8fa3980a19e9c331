// SPDX-License-Identifier: MIT
// Package: lvrank/builder
//
// impl_edges.go - implementation of Edges(pairs) constructor.
//
// Contract:
//   • Each pair is (from, to). Endpoints are registered in first-seen order
//     while scanning pairs left to right, then the edge is appended.
//   • Duplicated pairs become parallel edges; (v, v) is a self-loop.
//   • cfg.idFn is not consulted: identifiers are taken verbatim.

package builder

import "github.com/katalvlaran/lvrank/core"

const methodEdges = "Edges"

// Edges returns a Constructor that wires an explicit edge list.
func Edges(pairs [][2]string) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		for _, p := range pairs {
			g.AddVertex(p[0])
			g.AddVertex(p[1])
			if err := addEdge(g, methodEdges, p[0], p[1]); err != nil {
				return err
			}
		}

		return nil
	}
}
