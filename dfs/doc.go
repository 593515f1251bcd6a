// Package dfs implements depth-first search (single-source and forest),
// topological sort and directed cycle detection on core.Graph[N].
//
// Every node moves unvisited (White) → on-stack (Gray) → finished (Black).
// All walks are iterative over an explicit stack of (node, neighbor cursor)
// frames, so very deep graphs cannot overflow the goroutine stack.
//
// Key features:
//   - DFS(g, start, opts...): traverse from a root, or the full forest via WithFullTraversal
//   - Hooks: OnVisit (pre-order) & OnExit (post-order) with error aborts
//   - Limits: MaxDepth, MaxSteps, FilterNeighbor with a SkippedNeighbors count
//   - Cancellation via context.Context
//   - TopologicalSort: reverse post-order, *CycleError on cyclic input
//   - FindCycle / IsDAG
//
// Complexity:
//
//   - Time:   O(V + E), plus the cost of hooks and filters.
//   - Memory: O(V) for the stack and metadata maps.
//
// Errors:
//
//   - ErrGraphNil               if g is nil.
//   - ErrStartVertexNotFound    if start is missing.
//   - ErrOptionViolation        for a negative step budget.
//   - ErrStepBudget             when WithMaxSteps runs out.
//   - ErrCycleDetected          (as *CycleError) from TopologicalSort.
//   - context.Canceled          if ctx is done.
//   - any error returned by OnVisit or OnExit.
package dfs
