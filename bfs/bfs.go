// Package bfs provides breadth-first search over a core.Graph,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// BFS explores nodes in increasing distance from a start node,
// with optional hooks, depth limiting, and neighbor filtering.
package bfs

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvsearch/core"
)

// queueItem pairs a node with its BFS depth.
type queueItem[N comparable] struct {
	node  N
	depth int
}

// walker encapsulates mutable BFS state.
type walker[N comparable] struct {
	graph  core.Graph[N]
	opts   BFSOptions[N]
	ctx    context.Context
	queue  []queueItem[N]
	head   int
	marked map[N]bool
	steps  int
	res    *BFSResult[N]
}

// BFS runs breadth-first search on g starting from start,
// applying any number of functional Options.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, ErrStepBudget when the step budget
// runs out, ctx.Err() on cancellation, or any user-supplied hook error.
// The partially filled result accompanies budget, cancellation and hook
// errors.
func BFS[N comparable](g core.Graph[N], start N, opts ...Option[N]) (*BFSResult[N], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions[N]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !core.HasNode(g, start) {
		return nil, fmt.Errorf("%w: %v", ErrStartVertexNotFound, start)
	}

	n := len(g.Nodes())
	w := &walker[N]{
		graph:  g,
		opts:   o,
		ctx:    o.Ctx,
		queue:  make([]queueItem[N], 0, n),
		marked: make(map[N]bool, n),
		res: &BFSResult[N]{
			ShortestPaths: core.NewShortestPaths(g, start),
			Order:         make([]N, 0, n),
			Depth:         make(map[N]int, n),
		},
	}
	o.Logger.Debug("bfs: start", zap.Any("source", start), zap.Int("nodes", n))

	// Seed queue with start node (no parent)
	w.enqueue(start, 0)
	err := w.loop()
	o.Logger.Debug("bfs: finish",
		zap.Int("visited", len(w.res.Order)),
		zap.Int("steps", w.steps),
		zap.Error(err),
	)

	return w.res, err
}

// enqueue marks n, records its depth, calls OnEnqueue and appends it.
// Nodes are marked before insertion so each enters the frontier once.
func (w *walker[N]) enqueue(n N, d int) {
	w.marked[n] = true
	w.res.Depth[n] = d
	w.res.DistTo[n] = float64(d)
	w.opts.OnEnqueue(n, d)
	w.queue = append(w.queue, queueItem[N]{node: n, depth: d})
}

// loop processes the queue until empty, error, budget or cancellation.
func (w *walker[N]) loop() error {
	for w.head < len(w.queue) {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}
		if w.opts.MaxSteps > 0 && w.steps >= w.opts.MaxSteps {
			return fmt.Errorf("%w: %d nodes dequeued", ErrStepBudget, w.steps)
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		w.enqueueNeighbors(item)
	}

	return nil
}

// dequeue pops the first item, invokes OnDequeue, and returns it.
func (w *walker[N]) dequeue() queueItem[N] {
	item := w.queue[w.head]
	w.head++
	w.steps++
	w.opts.OnDequeue(item.node, item.depth)

	return item
}

// visit records the node in Order and calls OnVisit.
func (w *walker[N]) visit(item queueItem[N]) error {
	w.res.Order = append(w.res.Order, item.node)
	if err := w.opts.OnVisit(item.node, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %v: %w", item.node, err)
	}

	return nil
}

// enqueueNeighbors applies filtering and MaxDepth and enqueues each
// unmarked neighbor, recording the discovering edge.
func (w *walker[N]) enqueueNeighbors(item queueItem[N]) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for _, nbr := range w.graph.Neighbors(item.node) {
		if w.marked[nbr] || !w.opts.FilterNeighbor(item.node, nbr) {
			continue
		}
		wt, _ := w.graph.EdgeWeight(item.node, nbr)
		w.res.EdgeTo[nbr] = core.Edge[N]{From: item.node, To: nbr, Weight: wt}
		w.enqueue(nbr, nextDepth)
	}
}
