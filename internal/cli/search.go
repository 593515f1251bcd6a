package cli

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvsearch/bellmanford"
	"github.com/katalvlaran/lvsearch/bfs"
	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/dagsp"
	"github.com/katalvlaran/lvsearch/dfs"
	"github.com/katalvlaran/lvsearch/dijkstra"
	"github.com/katalvlaran/lvsearch/internal/config"
)

var errEmptyGraph = errors.New("graph has no nodes")

// outcome is what one algorithm run produced. Paths is nil for dfs and
// topo; Order is nil for the path algorithms.
type outcome struct {
	Algorithm string
	Source    string
	Paths     *core.ShortestPaths[string]
	Order     []string
	PostOrder []string
}

// resolveSource returns s.Source, or the first node of g when unset.
func resolveSource(g core.Graph[string], s config.Search) (string, error) {
	if s.Source != "" {
		return s.Source, nil
	}
	nodes := g.Nodes()
	if len(nodes) == 0 {
		return "", errEmptyGraph
	}

	return nodes[0], nil
}

// search runs the configured algorithm on g.
func search(ctx context.Context, g core.Graph[string], s config.Search, log *zap.Logger) (*outcome, error) {
	src, err := resolveSource(g, s)
	if err != nil && s.Algorithm != config.AlgoTopological {
		return nil, err
	}
	out := &outcome{Algorithm: s.Algorithm, Source: src}

	switch s.Algorithm {
	case config.AlgoBFS:
		opts := []bfs.Option[string]{bfs.WithContext[string](ctx), bfs.WithLogger[string](log)}
		switch {
		case s.MaxDepth == 0:
			// bfs reads depth 0 as unlimited; keep the source alone instead
			opts = append(opts, bfs.WithFilterNeighbor(func(_, _ string) bool { return false }))
		case s.MaxDepth > 0:
			opts = append(opts, bfs.WithMaxDepth[string](s.MaxDepth))
		}
		var res *bfs.BFSResult[string]
		if res, err = bfs.BFS(g, src, opts...); err == nil {
			out.Paths, out.Order = res.ShortestPaths, res.Order
		}

	case config.AlgoDFS:
		var res *dfs.DFSResult[string]
		res, err = dfs.DFS(g, src,
			dfs.WithContext[string](ctx),
			dfs.WithLogger[string](log),
			dfs.WithMaxDepth[string](s.MaxDepth),
		)
		if err == nil {
			out.Order, out.PostOrder = res.PreOrder, res.Order
		}

	case config.AlgoDijkstra:
		opts := []dijkstra.Option{
			dijkstra.WithContext(ctx),
			dijkstra.WithLogger(log),
			dijkstra.WithArity(s.Arity),
		}
		if s.MaxDistance > 0 {
			opts = append(opts, dijkstra.WithMaxDistance(s.MaxDistance))
		}
		out.Paths, err = dijkstra.Dijkstra(g, src, opts...)

	case config.AlgoBellmanFord:
		opts := []bellmanford.Option{bellmanford.WithContext(ctx), bellmanford.WithLogger(log)}
		if s.FullRounds {
			opts = append(opts, bellmanford.WithFullRounds())
		}
		out.Paths, err = bellmanford.BellmanFord(g, src, opts...)

	case config.AlgoDAG:
		out.Paths, err = dagsp.ShortestPaths(g, src, dagsp.WithContext(ctx), dagsp.WithLogger(log))

	case config.AlgoDAGLongest:
		out.Paths, err = dagsp.LongestPaths(g, src, dagsp.WithContext(ctx), dagsp.WithLogger(log))

	case config.AlgoTopological:
		out.Source = ""
		out.Order, err = dfs.TopologicalSort(g, dfs.WithCancelContext(ctx))

	default:
		err = fmt.Errorf("%w: algorithm %q", config.ErrInvalid, s.Algorithm)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.Algorithm, err)
	}

	return out, nil
}

// reached counts nodes with a finite distance and the largest such distance.
func reached(sp *core.ShortestPaths[string]) (count int, farthest float64) {
	for n, d := range sp.DistTo {
		if !sp.HasPathTo(n) {
			continue
		}
		count++
		if count == 1 || d > farthest {
			farthest = d
		}
	}

	return count, farthest
}
