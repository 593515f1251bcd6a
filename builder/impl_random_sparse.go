// SPDX-License-Identifier: MIT
// Package: lvsearch/builder
//
// impl_random_sparse.go - RandomSparse(n, p) and RandomDAG(n, p) constructors.
//
// Canonical model:
//   - Erdős–Rényi-like generator: include each admissible edge independently with prob p.
//   - RandomSparse directed: ordered pairs (i,j), i≠j. WithUndirected: unordered {i<j}.
//   - RandomDAG: only i<j, always a single arc i→j, so the result is acyclic
//     with idFn order as a topological order.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//
// Complexity: O(n²) Bernoulli trials.
//
// Determinism:
//   - Stable edge-trial order: for each i asc, j asc.
//   - Each trial draws once; each accepted edge then draws its weight.

package builder

import "github.com/katalvlaran/lvsearch/core"

const (
	methodRandomSparse = "RandomSparse"
	methodRandomDAG    = "RandomDAG"
	minRandomVertices  = 1
)

// RandomSparse returns a Constructor that samples a random graph over n
// vertices with independent edge probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Digraph[string], cfg builderConfig) error {
		if err := validateMin(methodRandomSparse, "n", n, minRandomVertices); err != nil {
			return err
		}
		if err := validateProbability(methodRandomSparse, p, cfg); err != nil {
			return err
		}
		addVertices(g, cfg, n)

		for i := 0; i < n; i++ {
			start := 0
			if cfg.undirected {
				start = i + 1
			}
			for j := start; j < n; j++ {
				if i == j || !trial(cfg, p) {
					continue
				}
				if err := addEdge(g, cfg, methodRandomSparse, cfg.idFn(i), cfg.idFn(j)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// RandomDAG returns a Constructor that samples a random DAG over n
// vertices: each forward arc i→j (i<j) is kept with probability p.
func RandomDAG(n int, p float64) Constructor {
	return func(g *core.Digraph[string], cfg builderConfig) error {
		if err := validateMin(methodRandomDAG, "n", n, minRandomVertices); err != nil {
			return err
		}
		if err := validateProbability(methodRandomDAG, p, cfg); err != nil {
			return err
		}
		addVertices(g, cfg, n)

		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if !trial(cfg, p) {
					continue
				}
				if err := addArc(g, cfg, methodRandomDAG, cfg.idFn(i), cfg.idFn(j)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
