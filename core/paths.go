// SPDX-License-Identifier: MIT
// Package: lvsearch/core
//
// paths.go - ShortestPaths[N], the (distance-to, predecessor-edge) result
// shared by bfs, dijkstra, bellmanford and dagsp.

package core

import (
	"fmt"
	"math"
)

// ShortestPaths holds the outcome of a single-source search.
//
// DistTo contains every node of the searched graph; unreached nodes keep
// Infinity. EdgeTo contains an entry only for reached nodes other than the
// source.
type ShortestPaths[N comparable] struct {
	Source N
	DistTo map[N]float64
	EdgeTo map[N]Edge[N]
}

// NewShortestPaths seeds a result for g: DistTo[v] = +Inf for every node,
// DistTo[source] = 0, EdgeTo empty.
// Complexity: O(V).
func NewShortestPaths[N comparable](g Graph[N], source N) *ShortestPaths[N] {
	nodes := g.Nodes()
	sp := &ShortestPaths[N]{
		Source: source,
		DistTo: make(map[N]float64, len(nodes)),
		EdgeTo: make(map[N]Edge[N], len(nodes)),
	}
	for _, n := range nodes {
		sp.DistTo[n] = Infinity
	}
	sp.DistTo[source] = 0

	return sp
}

// Distance returns DistTo[n], or +Inf if n is unknown.
func (sp *ShortestPaths[N]) Distance(n N) float64 {
	d, ok := sp.DistTo[n]
	if !ok {
		return Infinity
	}

	return d
}

// HasPathTo reports whether n was reached from the source.
func (sp *ShortestPaths[N]) HasPathTo(n N) bool {
	return !math.IsInf(sp.Distance(n), 1)
}

// Relax tries to improve DistTo[e.To] through e. It reports whether the
// distance strictly decreased, in which case EdgeTo[e.To] = e.
func (sp *ShortestPaths[N]) Relax(e Edge[N]) bool {
	du := sp.Distance(e.From)
	if math.IsInf(du, 1) {
		return false
	}
	nd := du + e.Weight
	if nd >= sp.Distance(e.To) {
		return false
	}
	sp.DistTo[e.To] = nd
	sp.EdgeTo[e.To] = e

	return true
}

// PathTo returns the edges of the recorded path Source → n, in order.
//
// Returns an empty, non-nil slice for the source itself and
// ErrUnreachable for a node the search never reached.
// Complexity: O(path length).
func (sp *ShortestPaths[N]) PathTo(n N) ([]Edge[N], error) {
	if !sp.HasPathTo(n) {
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, n)
	}

	path := []Edge[N]{}
	for cur := n; cur != sp.Source; {
		e, ok := sp.EdgeTo[cur]
		if !ok {
			return nil, fmt.Errorf("%w: broken predecessor chain at %v", ErrUnreachable, cur)
		}
		path = append(path, e)
		cur = e.From
		if len(path) > len(sp.DistTo) {
			return nil, fmt.Errorf("%w: predecessor cycle through %v", ErrUnreachable, cur)
		}
	}
	// reverse to get source → n
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// NodesTo returns the node sequence Source → n (inclusive at both ends).
func (sp *ShortestPaths[N]) NodesTo(n N) ([]N, error) {
	edges, err := sp.PathTo(n)
	if err != nil {
		return nil, err
	}
	nodes := make([]N, 0, len(edges)+1)
	nodes = append(nodes, sp.Source)
	for _, e := range edges {
		nodes = append(nodes, e.To)
	}

	return nodes, nil
}
