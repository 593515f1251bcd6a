// SPDX-License-Identifier: MIT
// Package: lvsearch/core
//
// types.go - the Graph collaborator contract, Edge, and sentinel errors.

package core

import (
	"errors"
	"math"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrMultiEdgeNotAllowed indicates a second edge between the same ordered pair.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")

	// ErrBadWeight indicates a NaN or infinite edge weight.
	ErrBadWeight = errors.New("core: edge weight must be finite")

	// ErrUnreachable indicates a path was requested to a node that the
	// search never reached.
	ErrUnreachable = errors.New("core: node unreachable from source")
)

// Graph is the read-only view every search routine consumes.
//
// Implementations must be immutable for the duration of a single search.
// Neighbors of an unknown node return nil. EdgeWeight reports false when
// there is no edge u→v. Neighbors should only name members of Nodes(); a
// head outside it is still reached by every search, but edges leaving it
// are seen only by searches that walk Neighbors, not by those scanning
// Edges() of a graph without EdgeLister.
type Graph[N comparable] interface {
	// Nodes returns every node of the graph in a stable order.
	Nodes() []N

	// Neighbors returns the heads of all edges leaving n.
	Neighbors(n N) []N

	// EdgeWeight returns the weight of edge u→v and whether it exists.
	EdgeWeight(u, v N) (float64, bool)
}

// EdgeLister is an optional fast path for algorithms that scan every edge
// (Bellman-Ford, negative-weight pre-scans). Graphs that do not implement
// it are enumerated through Nodes/Neighbors/EdgeWeight.
type EdgeLister[N comparable] interface {
	Edges() []Edge[N]
}

// Edge is a directed, weighted connection From → To.
type Edge[N comparable] struct {
	From   N
	To     N
	Weight float64
}

// Infinity is the distance of every node a search has not reached.
var Infinity = math.Inf(1)

// Edges returns every edge of g. If g implements EdgeLister its list is
// returned as is; otherwise edges are collected node by node.
//
// Complexity: O(V + E).
func Edges[N comparable](g Graph[N]) []Edge[N] {
	if el, ok := g.(EdgeLister[N]); ok {
		return el.Edges()
	}

	var out []Edge[N]
	for _, u := range g.Nodes() {
		for _, v := range g.Neighbors(u) {
			w, ok := g.EdgeWeight(u, v)
			if !ok {
				continue
			}
			out = append(out, Edge[N]{From: u, To: v, Weight: w})
		}
	}

	return out
}

// OutEdges returns the edges leaving u, in Neighbors order.
func OutEdges[N comparable](g Graph[N], u N) []Edge[N] {
	nbrs := g.Neighbors(u)
	out := make([]Edge[N], 0, len(nbrs))
	for _, v := range nbrs {
		if w, ok := g.EdgeWeight(u, v); ok {
			out = append(out, Edge[N]{From: u, To: v, Weight: w})
		}
	}

	return out
}

// HasNode reports whether n is one of g.Nodes(). Graphs with their own
// membership test (like Digraph.HasVertex) are asked directly.
//
// Complexity: O(1) for Digraph, O(V) otherwise.
func HasNode[N comparable](g Graph[N], n N) bool {
	if hv, ok := g.(interface{ HasVertex(N) bool }); ok {
		return hv.HasVertex(n)
	}
	for _, x := range g.Nodes() {
		if x == n {
			return true
		}
	}

	return false
}
