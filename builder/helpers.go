// Package builder provides internal helper functions used by Constructor
// implementations to build common topologies.
package builder

import (
	"fmt"

	"github.com/katalvlaran/lvsearch/core"
)

// addVertices inserts cfg.idFn(0..n-1) into g in ascending index order.
// Re-adding an existing vertex is a no-op.
func addVertices(g *core.Digraph[string], cfg builderConfig, n int) {
	for i := 0; i < n; i++ {
		g.AddVertex(cfg.idFn(i))
	}
}

// addEdge draws one weight and inserts u→v, plus v→u when cfg.undirected.
func addEdge(g *core.Digraph[string], cfg builderConfig, method, u, v string) error {
	w := cfg.weightFn(cfg.rng)
	var err error
	if cfg.undirected {
		err = g.AddUndirectedEdge(u, v, w)
	} else {
		err = g.AddEdge(u, v, w)
	}
	if err != nil {
		return fmt.Errorf("%s: AddEdge(%s→%s, w=%g): %w", method, u, v, w, err)
	}

	return nil
}

// addArc inserts the single arc u→v regardless of cfg.undirected.
func addArc(g *core.Digraph[string], cfg builderConfig, method, u, v string) error {
	w := cfg.weightFn(cfg.rng)
	if err := g.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%s→%s, w=%g): %w", method, u, v, w, err)
	}

	return nil
}

// validateMin reports ErrTooFewVertices when got < min.
func validateMin(method, name string, got, min int) error {
	if got < min {
		return fmt.Errorf("%s: %s=%d < min=%d: %w", method, name, got, min, ErrTooFewVertices)
	}

	return nil
}

// validateProbability enforces p ∈ [0,1] and an RNG for 0 < p < 1.
func validateProbability(method string, p float64, cfg builderConfig) error {
	if p < 0 || p > 1 {
		return fmt.Errorf("%s: p=%.6f not in [0,1]: %w", method, p, ErrInvalidProbability)
	}
	if cfg.rng == nil && p > 0 && p < 1 {
		return fmt.Errorf("%s: rng is required: %w", method, ErrNeedRandSource)
	}

	return nil
}

// trial reports a Bernoulli(p) outcome; p ∈ {0,1} never consults rng.
func trial(cfg builderConfig, p float64) bool {
	switch p {
	case 0:
		return false
	case 1:
		return true
	default:
		return cfg.rng.Float64() < p
	}
}
