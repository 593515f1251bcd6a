// Package dijkstra provides Dijkstra's single-source shortest-path algorithm
// for weighted graphs with non-negative edge weights.
//
// Overview:
//
//   - Dijkstra(g, source, opts...) works on any core.Graph[N] and returns a
//     *core.ShortestPaths[N] (DistTo, EdgeTo, PathTo).
//   - It drives a pq.Indexed min-queue preloaded with every node and moves
//     nodes forward with DecreasePriority when a relaxation succeeds.
//
// Key features:
//
//   - MaxDistance: caps exploration, leaving farther nodes at +Inf.
//   - InfEdgeThreshold: treats any edge with weight ≥ threshold as impassable.
//   - Arity: runs on a d-ary indexed heap.
//   - Context cancellation, checked once per dequeue.
//   - zap Debug logging of start/finish with settled and decrease counts.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V)
//
// Thread safety:
//
//   - Dijkstra does not modify g; g must not be mutated concurrently.
//
// See also:
//
//   - bellmanford for graphs with negative weights.
//   - dagsp for acyclic graphs, in O(V + E).
package dijkstra
