// Package bfs provides breadth-first search over a core.Graph[N],
// returning unweighted shortest-path distances, parent links, and visit order.
//
// What
//
//   - Explore nodes in non-decreasing distance (edge count) from a start node.
//   - Every node is unvisited, then frontier, then visited. A node enters the
//     FIFO frontier exactly once: it is marked before insertion.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: map from node → distance (edges) from start
//   - the embedded core.ShortestPaths (DistTo as hop count, EdgeTo, PathTo)
//   - Supports functional hooks at three stages:
//   - OnEnqueue (when a node enters the frontier)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Allows filtering of individual neighbor edges via WithFilterNeighbor.
//   - Honors a MaxDepth limit (d>0) or explicit "no limit" (d==0), and a
//     step budget (WithMaxSteps) bounding the number of dequeued nodes.
//
// Determinism
//
//	Neighbors are enqueued in the order the graph returns them, so for
//	core.Digraph (insertion-ordered adjacency) the visit sequence is fully
//	reproducible.
//
// Complexity (V = |Nodes|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(g, "start")
//
//	res, err := bfs.BFS(g, "start",
//	    bfs.WithContext[string](ctx),
//	    bfs.WithMaxDepth[string](3),
//	    bfs.WithOnVisit(func(n string, depth int) error { return nil }),
//	)
//	nodes, err := res.PathNodes("goal")
//
// Errors
//
//   - ErrGraphNil             if the graph is nil.
//   - ErrStartVertexNotFound  if the start node does not exist.
//   - ErrOptionViolation      for an invalid Option (e.g. negative MaxDepth).
//   - ErrStepBudget           when WithMaxSteps runs out.
//   - ctx.Err()               on cancellation.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
