// SPDX-License-Identifier: MIT
// Package: lvsearch/core
//
// digraph.go - Digraph[N], an adjacency-list weighted directed graph.
//
// Storage:
//   - order:     vertices in insertion order (stable Nodes()).
//   - index:     vertex → position in order (O(1) HasVertex).
//   - adjacency: vertex → outgoing edges in insertion order.
//
// Policy:
//   - AddEdge auto-creates missing endpoints.
//   - At most one edge per ordered pair; the second insert fails.
//   - Weights must be finite; negative weights are allowed (Bellman-Ford).

package core

import (
	"fmt"
	"math"
)

// Digraph is a weighted directed graph over comparable node values.
// The zero value is not usable; construct with NewDigraph.
type Digraph[N comparable] struct {
	order     []N
	index     map[N]int
	adjacency map[N][]Edge[N]
	edgeCount int
}

// NewDigraph returns an empty Digraph.
// Complexity: O(1).
func NewDigraph[N comparable]() *Digraph[N] {
	return &Digraph[N]{
		index:     make(map[N]int),
		adjacency: make(map[N][]Edge[N]),
	}
}

// AddVertex inserts n if absent; adding an existing vertex is a no-op.
// Complexity: O(1) amortized.
func (g *Digraph[N]) AddVertex(n N) {
	if _, ok := g.index[n]; ok {
		return
	}
	g.index[n] = len(g.order)
	g.order = append(g.order, n)
	g.adjacency[n] = nil
}

// HasVertex reports whether n is a vertex of g.
func (g *Digraph[N]) HasVertex(n N) bool {
	_, ok := g.index[n]

	return ok
}

// AddEdge inserts the directed edge from → to with the given weight,
// creating either endpoint if needed.
//
// Errors:
//   - ErrBadWeight if weight is NaN or ±Inf.
//   - ErrMultiEdgeNotAllowed if from → to already exists.
//
// Complexity: O(deg(from)) for the duplicate check.
func (g *Digraph[N]) AddEdge(from, to N, weight float64) error {
	if math.IsNaN(weight) || math.IsInf(weight, 0) {
		return fmt.Errorf("%w: %v→%v weight=%v", ErrBadWeight, from, to, weight)
	}
	if g.HasEdge(from, to) {
		return fmt.Errorf("%w: %v→%v", ErrMultiEdgeNotAllowed, from, to)
	}

	g.AddVertex(from)
	g.AddVertex(to)
	g.adjacency[from] = append(g.adjacency[from], Edge[N]{From: from, To: to, Weight: weight})
	g.edgeCount++

	return nil
}

// AddUndirectedEdge inserts both u → v and v → u with the same weight.
// Nothing is inserted if either direction already exists.
func (g *Digraph[N]) AddUndirectedEdge(u, v N, weight float64) error {
	if g.HasEdge(u, v) || g.HasEdge(v, u) {
		return fmt.Errorf("%w: %v↔%v", ErrMultiEdgeNotAllowed, u, v)
	}
	if err := g.AddEdge(u, v, weight); err != nil {
		return err
	}
	if u == v {
		return nil
	}

	return g.AddEdge(v, u, weight)
}

// RemoveEdge deletes the edge from → to.
// Returns ErrEdgeNotFound if it does not exist.
// Complexity: O(deg(from)).
func (g *Digraph[N]) RemoveEdge(from, to N) error {
	edges := g.adjacency[from]
	for i, e := range edges {
		if e.To != to {
			continue
		}
		// preserve insertion order of the remaining edges
		copy(edges[i:], edges[i+1:])
		edges[len(edges)-1] = Edge[N]{}
		g.adjacency[from] = edges[:len(edges)-1]
		g.edgeCount--

		return nil
	}

	return fmt.Errorf("%w: %v→%v", ErrEdgeNotFound, from, to)
}

// HasEdge reports whether the edge from → to exists.
func (g *Digraph[N]) HasEdge(from, to N) bool {
	_, ok := g.EdgeWeight(from, to)

	return ok
}

// Nodes returns all vertices in insertion order. The slice is a copy.
func (g *Digraph[N]) Nodes() []N {
	out := make([]N, len(g.order))
	copy(out, g.order)

	return out
}

// Neighbors returns the heads of every edge leaving n, in insertion order.
// Unknown vertices yield nil.
func (g *Digraph[N]) Neighbors(n N) []N {
	edges := g.adjacency[n]
	if len(edges) == 0 {
		return nil
	}
	out := make([]N, len(edges))
	for i, e := range edges {
		out[i] = e.To
	}

	return out
}

// EdgeWeight returns the weight of u → v and whether that edge exists.
func (g *Digraph[N]) EdgeWeight(u, v N) (float64, bool) {
	for _, e := range g.adjacency[u] {
		if e.To == v {
			return e.Weight, true
		}
	}

	return 0, false
}

// Edges returns every edge, grouped by tail vertex in insertion order.
// Complexity: O(V + E).
func (g *Digraph[N]) Edges() []Edge[N] {
	out := make([]Edge[N], 0, g.edgeCount)
	for _, u := range g.order {
		out = append(out, g.adjacency[u]...)
	}

	return out
}

// VertexCount returns |V|.
func (g *Digraph[N]) VertexCount() int { return len(g.order) }

// EdgeCount returns |E|.
func (g *Digraph[N]) EdgeCount() int { return g.edgeCount }

// Reverse returns a new Digraph with every edge flipped.
// Complexity: O(V + E).
func (g *Digraph[N]) Reverse() *Digraph[N] {
	r := NewDigraph[N]()
	for _, n := range g.order {
		r.AddVertex(n)
	}
	for _, e := range g.Edges() {
		// cannot fail: source edges are unique and finite
		_ = r.AddEdge(e.To, e.From, e.Weight)
	}

	return r
}
