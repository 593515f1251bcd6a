package guided

import (
	"context"
	"fmt"
	"slices"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/pq"
)

// walker holds the mutable state of one search.
type walker[N comparable] struct {
	graph    core.Graph[N]
	target   N
	distance Distance[N]
	opts     Options[N]
	ctx      context.Context
	frontier *pq.Heap[N, float64]
	marked   map[N]bool
	steps    int
	res      *Result[N]
}

// Search runs best-first search from source toward target. The frontier is
// a min-heap keyed by distance(node, target), so the node that looks
// closest is always expanded next; the search stops as soon as target is
// dequeued. Every node is marked when it enters the frontier and enters it
// at most once.
//
// The path found is not necessarily shortest: the estimate only decides
// the expansion order. A target that cannot be reached yields Found=false
// and a nil error once the reachable part of g is exhausted.
//
// Errors: ErrGraphNil, ErrVertexNotFound, ErrNilDistance,
// ErrOptionViolation, ErrStepBudget and ctx.Err(); the partial result
// accompanies the last two.
func Search[N comparable](g core.Graph[N], source, target N, distance Distance[N], opts ...Option[N]) (*Result[N], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if distance == nil {
		return nil, ErrNilDistance
	}
	o := DefaultOptions[N]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	for _, n := range []N{source, target} {
		if !core.HasNode(g, n) {
			return nil, fmt.Errorf("%w: %v", ErrVertexNotFound, n)
		}
	}

	n := len(g.Nodes())
	frontier, err := pq.New[N, float64](max(1, n), pq.WithOrder(pq.Min), pq.WithGrowth())
	if err != nil {
		return nil, fmt.Errorf("guided: frontier: %w", err)
	}
	w := &walker[N]{
		graph:    g,
		target:   target,
		distance: distance,
		opts:     o,
		ctx:      o.Ctx,
		frontier: frontier,
		marked:   make(map[N]bool, n),
		res:      &Result[N]{Parent: make(map[N]N)},
	}
	o.Logger.Debug("guided: start", zap.Any("source", source), zap.Any("target", target))

	w.push(source)
	err = w.loop()
	w.res.Explored = len(w.marked)
	o.Logger.Debug("guided: finish",
		zap.Bool("found", w.res.Found),
		zap.Int("explored", w.res.Explored),
		zap.Int("steps", w.steps),
		zap.Error(err),
	)

	return w.res, err
}

// push marks n and queues it under its estimated distance to the target.
// The frontier grows on demand, so Enqueue cannot fail.
func (w *walker[N]) push(n N) {
	w.marked[n] = true
	_ = w.frontier.Enqueue(n, w.distance(n, w.target))
}

func (w *walker[N]) loop() error {
	for !w.frontier.IsEmpty() {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}
		if w.opts.MaxSteps > 0 && w.steps >= w.opts.MaxSteps {
			return fmt.Errorf("%w: %d nodes dequeued", ErrStepBudget, w.steps)
		}

		v, err := w.frontier.Dequeue()
		if err != nil {
			return fmt.Errorf("guided: frontier: %w", err)
		}
		w.steps++
		w.res.Order = append(w.res.Order, v)
		if v == w.target {
			w.res.Found = true
			w.res.Path = w.pathTo(v)
			return nil
		}

		for _, nbr := range w.graph.Neighbors(v) {
			if w.marked[nbr] || !w.opts.FilterNeighbor(v, nbr) {
				continue
			}
			w.res.Parent[nbr] = v
			w.push(nbr)
		}
	}

	return nil
}

// pathTo follows Parent links back from n to the source.
func (w *walker[N]) pathTo(n N) []N {
	path := []N{n}
	for {
		p, ok := w.res.Parent[n]
		if !ok {
			break
		}
		path = append(path, p)
		n = p
	}
	slices.Reverse(path)

	return path
}
