// SPDX-License-Identifier: MIT
// Package: lvsearch/builder
//
// impl_path.go - Path(n) and Cycle(n) constructors.
//
// Contract:
//   - Path: n ≥ 2; edges (i-1) → i for i=1..n-1.
//   - Cycle: n ≥ 3; Path edges plus the closing edge (n-1) → 0.
//   - Vertices added via cfg.idFn in ascending index order.
//   - Weights drawn from cfg.weightFn in edge emission order.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import "github.com/katalvlaran/lvsearch/core"

const (
	methodPath    = "Path"
	methodCycle   = "Cycle"
	minPathNodes  = 2
	minCycleNodes = 3
)

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(g *core.Digraph[string], cfg builderConfig) error {
		if err := validateMin(methodPath, "n", n, minPathNodes); err != nil {
			return err
		}
		addVertices(g, cfg, n)

		return chain(g, cfg, methodPath, n)
	}
}

// Cycle returns a Constructor that builds a simple cycle C_n.
func Cycle(n int) Constructor {
	return func(g *core.Digraph[string], cfg builderConfig) error {
		if err := validateMin(methodCycle, "n", n, minCycleNodes); err != nil {
			return err
		}
		addVertices(g, cfg, n)
		if err := chain(g, cfg, methodCycle, n); err != nil {
			return err
		}

		return addEdge(g, cfg, methodCycle, cfg.idFn(n-1), cfg.idFn(0))
	}
}

// chain emits 0→1→…→(n-1).
func chain(g *core.Digraph[string], cfg builderConfig, method string, n int) error {
	for i := 1; i < n; i++ {
		if err := addEdge(g, cfg, method, cfg.idFn(i-1), cfg.idFn(i)); err != nil {
			return err
		}
	}

	return nil
}
