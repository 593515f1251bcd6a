package bellmanford

import (
	"fmt"
	"slices"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvsearch/core"
)

// BellmanFord computes shortest distances from source to every node of g.
// Negative edge weights are allowed.
//
// Every edge is relaxed in each of up to |V| rounds. A relaxation in round
// |V| proves a negative cycle reachable from source; the cycle is recovered
// by walking EdgeTo backwards and returned as a *NegativeCycleError.
// Cycles that source cannot reach are not reported and do not affect the result.
//
// Errors:
//   - ErrNilGraph, ErrVertexNotFound (wrapped).
//   - *NegativeCycleError (errors.Is ErrNegativeCycle).
//   - ctx.Err() on cancellation, together with the partial result.
//
// Complexity: O(V·E) time, O(V + E) memory.
func BellmanFord[N comparable](g core.Graph[N], source N, opts ...Option) (*core.ShortestPaths[N], error) {
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

	sp := core.NewShortestPaths(g, source)
	edges := core.Edges(g)
	// endpoints outside Nodes() still count toward the V-1 rounds
	for _, e := range edges {
		for _, x := range [2]N{e.From, e.To} {
			if _, ok := sp.DistTo[x]; !ok {
				sp.DistTo[x] = core.Infinity
			}
		}
	}
	n := len(sp.DistTo)
	cfg.Logger.Debug("bellmanford: start",
		zap.Any("source", source),
		zap.Int("nodes", n),
		zap.Int("edges", len(edges)),
	)

	rounds := 0
	for i := 0; i < n; i++ {
		select {
		case <-cfg.Ctx.Done():
			return sp, cfg.Ctx.Err()
		default:
		}
		rounds++

		relaxed := false
		for _, e := range edges {
			if !sp.Relax(e) {
				continue
			}
			relaxed = true
			if i == n-1 {
				err := negativeCycle(sp, e.To, n)
				cfg.Logger.Debug("bellmanford: negative cycle", zap.Int("rounds", rounds), zap.Error(err))
				return nil, err
			}
		}
		if !relaxed && !cfg.FullRounds {
			break
		}
	}
	cfg.Logger.Debug("bellmanford: finish", zap.Int("rounds", rounds))

	return sp, nil
}

// negativeCycle recovers the cycle behind a relaxation of v in the last
// round. Stepping back n predecessors from v is guaranteed to land on it.
func negativeCycle[N comparable](sp *core.ShortestPaths[N], v N, n int) error {
	x := v
	for i := 0; i < n; i++ {
		e, ok := sp.EdgeTo[x]
		if !ok {
			return fmt.Errorf("%w: predecessor chain ends at %v", ErrNegativeCycle, x)
		}
		x = e.From
	}

	back := []N{x}
	weight := 0.0
	for cur := x; ; {
		e, ok := sp.EdgeTo[cur]
		if !ok {
			return fmt.Errorf("%w: predecessor chain ends at %v", ErrNegativeCycle, cur)
		}
		weight += e.Weight
		cur = e.From
		if cur == x {
			break
		}
		back = append(back, cur)
	}
	// back is x, pred(x), pred(pred(x)), …; flip the tail into edge order
	slices.Reverse(back[1:])

	return &NegativeCycleError[N]{Cycle: back, Weight: weight}
}
