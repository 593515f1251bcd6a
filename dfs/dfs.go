// Package dfs implements depth-first search (single-source and forest) on core.Graph.
package dfs

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvsearch/core"
)

// frame is one entry of the explicit stack: a node and a cursor into its
// neighbor list.
type frame[N comparable] struct {
	node  N
	depth int
	nbrs  []N
	next  int
}

// dfsWalker encapsulates state during DFS.
type dfsWalker[N comparable] struct {
	graph core.Graph[N]
	opts  DFSOptions[N]
	res   *DFSResult[N]
	steps int
}

// DFS performs depth-first search on graph g. If opts include WithFullTraversal,
// it covers all disconnected components in g.Nodes() order; otherwise, it
// starts only from start.
//
// The traversal is iterative: an explicit stack of (node, neighbor cursor)
// frames replaces recursion, so graph depth is bounded by memory only.
// Neighbors are descended into in the order g.Neighbors returns them.
//
// Returns the (possibly partial) DFSResult together with ctx.Err(),
// ErrStepBudget, or a hook error when the traversal is aborted.
func DFS[N comparable](g core.Graph[N], start N, opts ...Option[N]) (*DFSResult[N], error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	o := DefaultOptions[N]()
	for _, fn := range opts {
		fn(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !o.FullTraversal && !core.HasNode(g, start) {
		return nil, fmt.Errorf("%w: %v", ErrStartVertexNotFound, start)
	}

	nodes := g.Nodes()
	res := &DFSResult[N]{
		Order:    make([]N, 0, len(nodes)),
		PreOrder: make([]N, 0, len(nodes)),
		Depth:    make(map[N]int, len(nodes)),
		Parent:   make(map[N]N, len(nodes)),
		Visited:  make(map[N]bool, len(nodes)),
	}
	w := &dfsWalker[N]{graph: g, opts: o, res: res}
	o.Logger.Debug("dfs: start", zap.Any("source", start), zap.Bool("full", o.FullTraversal))

	var err error
	if o.FullTraversal {
		for _, v := range nodes {
			if !res.Visited[v] {
				if err = w.traverse(v); err != nil {
					break
				}
			}
		}
	} else {
		err = w.traverse(start)
	}
	o.Logger.Debug("dfs: finish",
		zap.Int("visited", len(res.PreOrder)),
		zap.Int("skipped", res.SkippedNeighbors),
		zap.Error(err),
	)

	return res, err
}

// discover marks n visited at depth, fires OnVisit and returns its frame.
func (w *dfsWalker[N]) discover(n N, depth int) (frame[N], error) {
	if w.opts.MaxSteps > 0 && w.steps >= w.opts.MaxSteps {
		return frame[N]{}, fmt.Errorf("%w: %d nodes discovered", ErrStepBudget, w.steps)
	}
	w.steps++
	w.res.Visited[n] = true
	w.res.Depth[n] = depth
	w.res.PreOrder = append(w.res.PreOrder, n)
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(n); err != nil {
			w.res.Order = nil
			return frame[N]{}, fmt.Errorf("dfs: OnVisit hook for %v: %w", n, err)
		}
	}

	var nbrs []N
	if w.opts.MaxDepth < 0 || depth < w.opts.MaxDepth {
		nbrs = w.graph.Neighbors(n)
	}

	return frame[N]{node: n, depth: depth, nbrs: nbrs}, nil
}

// traverse runs one DFS tree rooted at root.
func (w *dfsWalker[N]) traverse(root N) error {
	f, err := w.discover(root, 0)
	if err != nil {
		return err
	}
	stack := []frame[N]{f}

	for len(stack) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		top := &stack[len(stack)-1]
		if top.next < len(top.nbrs) {
			nid := top.nbrs[top.next]
			top.next++
			if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(nid) {
				w.res.SkippedNeighbors++
				continue
			}
			if w.res.Visited[nid] {
				continue
			}
			w.res.Parent[nid] = top.node
			child, err := w.discover(nid, top.depth+1)
			if err != nil {
				return err
			}
			stack = append(stack, child)
			continue
		}

		// all neighbors explored: post-order
		if w.opts.OnExit != nil {
			if err := w.opts.OnExit(top.node); err != nil {
				w.res.Order = nil
				return fmt.Errorf("dfs: OnExit hook for %v: %w", top.node, err)
			}
		}
		w.res.Order = append(w.res.Order, top.node)
		stack = stack[:len(stack)-1]
	}

	return nil
}
