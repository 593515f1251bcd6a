// SPDX-License-Identifier: MIT
// Package: lvsearch/builder
//
// impl_star.go - Star(n) and Complete(n) constructors.
//
// Contract:
//   - Star: n ≥ 2; hub CenterVertexID plus leaves idFn(0..n-2), edges Center → leaf.
//   - Complete: n ≥ 1; directed emits every ordered pair (i,j), i≠j;
//     WithUndirected emits each unordered pair {i<j} once as two arcs.
//
// Complexity: Star O(n); Complete O(n²).

package builder

import "github.com/katalvlaran/lvsearch/core"

// CenterVertexID is the identifier of the hub vertex in Star.
const CenterVertexID = "Center"

const (
	methodStar       = "Star"
	methodComplete   = "Complete"
	minStarNodes     = 2
	minCompleteNodes = 1
)

// Star returns a Constructor that builds a star with n-1 leaves.
func Star(n int) Constructor {
	return func(g *core.Digraph[string], cfg builderConfig) error {
		if err := validateMin(methodStar, "n", n, minStarNodes); err != nil {
			return err
		}
		g.AddVertex(CenterVertexID)
		addVertices(g, cfg, n-1)
		for i := 0; i < n-1; i++ {
			if err := addEdge(g, cfg, methodStar, CenterVertexID, cfg.idFn(i)); err != nil {
				return err
			}
		}

		return nil
	}
}

// Complete returns a Constructor that builds the complete graph K_n.
func Complete(n int) Constructor {
	return func(g *core.Digraph[string], cfg builderConfig) error {
		if err := validateMin(methodComplete, "n", n, minCompleteNodes); err != nil {
			return err
		}
		addVertices(g, cfg, n)
		for i := 0; i < n; i++ {
			start := 0
			if cfg.undirected {
				start = i + 1
			}
			for j := start; j < n; j++ {
				if i == j {
					continue
				}
				if err := addEdge(g, cfg, methodComplete, cfg.idFn(i), cfg.idFn(j)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
