// Package dfs provides topological sort over directed graphs.
//
// TopologicalSort computes a linear ordering of nodes such that for
// every edge u→v, u appears before v in the ordering: the reverse of the
// DFS post-order. If the graph contains a cycle, a *CycleError (matching
// ErrCycleDetected) is returned.
//
// Complexity:
//
//   - Time:   O(V + E) (each node and edge visited once)
//   - Memory: O(V)     (explicit stack and state map)
package dfs

import (
	"context"
	"slices"

	"github.com/katalvlaran/lvsearch/core"
)

// TopoOption configures optional behavior for TopologicalSort.
type TopoOption func(*topoOptions)

// topoOptions holds settings for TopologicalSort, currently only cancellation.
type topoOptions struct {
	ctx context.Context
}

func defaultTopoOptions() topoOptions {
	return topoOptions{ctx: context.Background()}
}

// WithCancelContext sets the cancellation context.
// Passing a nil context has no effect.
func WithCancelContext(ctx context.Context) TopoOption {
	return func(o *topoOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// topoSorter encapsulates state for a topological sort traversal.
type topoSorter[N comparable] struct {
	graph core.Graph[N]
	opts  topoOptions
	state map[N]int // White (absent), Gray, Black
	order []N       // post-order
}

// TopologicalSort computes a topological ordering of all nodes in g.
// Roots are tried in g.Nodes() order and children in g.Neighbors order,
// so the result is deterministic for a deterministic graph.
//
// Errors:
//   - ErrGraphNil if g is nil.
//   - *CycleError (errors.Is ErrCycleDetected) carrying the cycle found.
//   - ctx.Err() when cancelled through WithCancelContext.
func TopologicalSort[N comparable](g core.Graph[N], options ...TopoOption) ([]N, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	opts := defaultTopoOptions()
	for _, opt := range options {
		opt(&opts)
	}

	nodes := g.Nodes()
	sorter := &topoSorter[N]{
		graph: g,
		opts:  opts,
		state: make(map[N]int, len(nodes)),
		order: make([]N, 0, len(nodes)),
	}
	for _, v := range nodes {
		if sorter.state[v] == White {
			if err := sorter.visit(v); err != nil {
				return nil, err
			}
		}
	}
	slices.Reverse(sorter.order)

	return sorter.order, nil
}

// visit runs an iterative DFS from root. A Gray neighbor is a back edge;
// the cycle is the stack segment from that neighbor to the top.
func (t *topoSorter[N]) visit(root N) error {
	t.state[root] = Gray
	stack := []frame[N]{{node: root, nbrs: t.graph.Neighbors(root)}}

	for len(stack) > 0 {
		select {
		case <-t.opts.ctx.Done():
			return t.opts.ctx.Err()
		default:
		}

		top := &stack[len(stack)-1]
		if top.next < len(top.nbrs) {
			nid := top.nbrs[top.next]
			top.next++
			switch t.state[nid] {
			case Gray:
				return &CycleError[N]{Cycle: cycleFrom(stack, nid)}
			case Black:
				continue
			}
			t.state[nid] = Gray
			stack = append(stack, frame[N]{node: nid, nbrs: t.graph.Neighbors(nid)})
			continue
		}

		t.state[top.node] = Black
		t.order = append(t.order, top.node)
		stack = stack[:len(stack)-1]
	}

	return nil
}

// cycleFrom extracts the nodes from head up to the top of stack.
func cycleFrom[N comparable](stack []frame[N], head N) []N {
	i := slices.IndexFunc(stack, func(f frame[N]) bool { return f.node == head })
	cycle := make([]N, 0, len(stack)-i)
	for _, f := range stack[i:] {
		cycle = append(cycle, f.node)
	}

	return cycle
}
