// Package dijkstra implements Dijkstra's shortest-path algorithm on weighted graphs.
//
// Dijkstra computes the minimum-cost path from a single source node to all
// other reachable nodes in a graph with non-negative edge weights.
// Every node is preloaded into an indexed min-priority queue at its current
// distance (0 for the source, +Inf otherwise). The loop dequeues the closest
// node, relaxes its outgoing edges and moves improved neighbors forward with
// DecreasePriority, so no stale entries are ever queued.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - V dequeues and at most E DecreasePriority calls, each O(log V).
//   - Space: O(V) for the queue, its location map and the result maps.
//
// Notes on implementation choices:
//
//   - We perform an upfront scan of all edges (O(E)) to detect negative weights and fail fast.
//   - We treat any edge with weight ≥ InfEdgeThreshold as an impassable “wall”.
//   - A relaxation that would exceed MaxDistance is skipped, leaving the node at +Inf.
//   - The loop ends early once the front of the queue is +Inf: the rest is unreachable.
//   - A neighbor absent from g.Nodes() is queued when first reached instead of preloaded.
package dijkstra

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/pq"
)

// Dijkstra computes shortest distances from source to every node of g.
//
// Returns a *core.ShortestPaths whose DistTo holds +Inf for unreachable
// nodes and whose EdgeTo records the last edge of each shortest path.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. g must contain source (ErrVertexNotFound).
//  3. No edge in g can have negative weight (ErrNegativeWeight).
//
// On cancellation the partial result is returned together with ctx.Err().
func Dijkstra[N comparable](g core.Graph[N], source N, opts ...Option) (*core.ShortestPaths[N], error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil {
		return nil, ErrNilGraph
	}
	if !core.HasNode(g, source) {
		return nil, fmt.Errorf("%w: %v", ErrVertexNotFound, source)
	}
	for _, e := range core.Edges(g) {
		if e.Weight < 0 {
			return nil, fmt.Errorf("%w: edge %v→%v weight=%g", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
	}

	nodes := g.Nodes()
	queue, err := pq.NewIndexed[N, float64](max(1, len(nodes)), pq.WithOrder(pq.Min), pq.WithArity(cfg.Arity), pq.WithGrowth())
	if err != nil {
		return nil, fmt.Errorf("dijkstra: queue: %w", err)
	}

	r := &runner[N]{
		g:     g,
		cfg:   cfg,
		sp:    core.NewShortestPaths(g, source),
		queue: queue,
	}
	cfg.Logger.Debug("dijkstra: start", zap.Any("source", source), zap.Int("nodes", len(nodes)))
	if err = r.init(nodes); err == nil {
		err = r.process()
	}
	cfg.Logger.Debug("dijkstra: finish",
		zap.Int("settled", r.settled),
		zap.Int("decreases", r.decreases),
		zap.Error(err),
	)

	return r.sp, err
}

// runner holds the mutable state for a single Dijkstra execution.
type runner[N comparable] struct {
	g         core.Graph[N]
	cfg       Options
	sp        *core.ShortestPaths[N]
	queue     *pq.Indexed[N, float64]
	settled   int
	decreases int
}

// init enqueues every node at its seeded distance.
func (r *runner[N]) init(nodes []N) error {
	for _, n := range nodes {
		if err := r.queue.Enqueue(n, r.sp.DistTo[n]); err != nil {
			return fmt.Errorf("dijkstra: preload %v: %w", n, err)
		}
	}

	return nil
}

// process is the core loop. It stops when the queue empties, when only
// unreachable nodes remain, or when the context is done.
func (r *runner[N]) process() error {
	for !r.queue.IsEmpty() {
		select {
		case <-r.cfg.Ctx.Done():
			return r.cfg.Ctx.Err()
		default:
		}

		u, du, err := r.queue.DequeueItem()
		if err != nil {
			return err
		}
		if math.IsInf(du, 1) {
			break
		}
		r.settled++
		if err = r.relax(u, du); err != nil {
			return err
		}
	}

	return nil
}

// relax examines each edge leaving u and improves its head when a shorter
// path through u exists. du is u's final distance.
func (r *runner[N]) relax(u N, du float64) error {
	for _, v := range r.g.Neighbors(u) {
		w, ok := r.g.EdgeWeight(u, v)
		if !ok || w >= r.cfg.InfEdgeThreshold {
			continue
		}
		if w < 0 {
			return fmt.Errorf("%w: edge %v→%v weight=%g", ErrNegativeWeight, u, v, w)
		}
		nd := du + w
		if nd > r.cfg.MaxDistance || nd >= r.sp.Distance(v) {
			continue
		}
		// a head missing from Nodes() is queued on first discovery
		var err error
		if r.queue.Contains(v) {
			err = r.queue.DecreasePriority(v, nd)
		} else {
			err = r.queue.Enqueue(v, nd)
		}
		if err != nil {
			return fmt.Errorf("dijkstra: relax %v→%v: %w", u, v, err)
		}
		r.sp.DistTo[v] = nd
		r.sp.EdgeTo[v] = core.Edge[N]{From: u, To: v, Weight: w}
		r.decreases++
	}

	return nil
}
