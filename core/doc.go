// Package core defines the graph collaborator consumed by every search
// routine in lvsearch, a concrete weighted digraph that implements it, and the
// shared shortest-path result type.
//
// The collaborator is deliberately small:
//
//	type Graph[N comparable] interface {
//	    Nodes() []N
//	    Neighbors(n N) []N
//	    EdgeWeight(u, v N) (float64, bool)
//	}
//
// Any adjacency representation (maps, matrices, implicit grids) can be
// searched once it exposes these three methods. A Graph must not be mutated
// while a search runs over it.
//
// Digraph[N] is the reference implementation:
//
//   - Deterministic iteration: Nodes() in insertion order, Neighbors() in
//     edge-insertion order.
//   - At most one edge per ordered pair (u,v); AddEdge on an existing pair
//     returns ErrMultiEdgeNotAllowed.
//   - AddUndirectedEdge mirrors an edge in both directions.
//   - Not safe for concurrent mutation; wrap it in your own lock if needed.
//
// ShortestPaths[N] carries the output of a single-source search:
//
//	DistTo[v] – best known distance from Source (math.Inf(1) if unreached)
//	EdgeTo[v] – last edge on a shortest path Source → v
//
// PathTo walks EdgeTo backwards from the target and reverses the result.
// For the source itself it returns an empty, non-nil path; for a node that
// was never reached it returns ErrUnreachable, so the two cases stay
// distinguishable.
package core
