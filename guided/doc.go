// Package guided implements best-first search toward a single target over
// a core.Graph[N].
//
// Where BFS expands the frontier in FIFO order and DFS in LIFO order,
// guided search keeps it in a pq.Heap ordered by a caller-supplied
// estimate distance(node, target) and always expands the node that looks
// closest. On graphs whose layout matches the estimate (grids, road maps
// with straight-line distance) it reaches the target after exploring a
// small fraction of the nodes; a misleading layout can still force it to
// explore nearly everything, and the path it returns need not be shortest.
//
// Usage
//
//	manhattan := func(a, b cell) float64 { return float64(abs(a.r-b.r) + abs(a.c-b.c)) }
//	res, err := guided.Search(g, start, goal, manhattan)
//	if err == nil && res.Found {
//	    fmt.Println(res.Path, res.Explored)
//	}
//
// Complexity: O((V + E) log V) in the worst case, usually far less since the
// search stops at the target.
//
// Errors
//
//   - ErrGraphNil         if the graph is nil.
//   - ErrVertexNotFound   if source or target is missing.
//   - ErrNilDistance      if distance is nil.
//   - ErrOptionViolation  for a negative step budget.
//   - ErrStepBudget       when WithMaxSteps runs out.
//   - ctx.Err()           on cancellation.
package guided
