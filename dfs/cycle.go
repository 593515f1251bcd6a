// Package dfs implements directed cycle detection on core.Graph.
//
// FindCycle reports one directed cycle if any exists, using the same
// three-color iterative walk as TopologicalSort: a Gray→Gray edge closes
// the cycle formed by the stack segment it points back to.
//
// Complexity:
//
//   - Time:   O(V + E)
//   - Memory: O(V)
package dfs

import (
	"errors"

	"github.com/katalvlaran/lvsearch/core"
)

// FindCycle returns a directed cycle of g and true, or nil and false if g
// is acyclic. Self-loops are cycles of length one.
// Returns ErrGraphNil for a nil graph.
func FindCycle[N comparable](g core.Graph[N]) ([]N, bool, error) {
	if g == nil {
		return nil, false, ErrGraphNil
	}
	_, err := TopologicalSort(g)
	if err == nil {
		return nil, false, nil
	}
	var ce *CycleError[N]
	if errors.As(err, &ce) {
		return ce.Cycle, true, nil
	}

	return nil, false, err
}

// IsDAG reports whether g has no directed cycle.
func IsDAG[N comparable](g core.Graph[N]) bool {
	_, cyclic, err := FindCycle(g)

	return err == nil && !cyclic
}
