// SPDX-License-Identifier: MIT
// Package: lvrank/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Adds hub vertex with fixed ID "Center" first (index 0).
//   - Adds leaves via cfg.idFn for i = 1..n-1.
//   - Emits spokes in stable order Center → leaf[i], leaf[i] → Center.
//
// Complexity:
//   - Time: O(n) vertices + O(2n-2) edges. Space: O(1) extra.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvrank/core"
)

const (
	methodStar   = "Star"
	minStarNodes = 2

	// CenterVertexID is the fixed hub identifier used by Star.
	CenterVertexID = "Center"
)

// Star returns a Constructor that builds a bidirectional star with n vertices:
// one hub "Center" and n-1 leaves.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}

		g.AddVertex(CenterVertexID)
		for i := 1; i < n; i++ {
			leafID := cfg.idFn(i)
			g.AddVertex(leafID)
			if err := addEdge(g, methodStar, CenterVertexID, leafID); err != nil {
				return err
			}
			if err := addEdge(g, methodStar, leafID, CenterVertexID); err != nil {
				return err
			}
		}

		return nil
	}
}
