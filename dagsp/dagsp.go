// Package dagsp computes single-source shortest and longest paths on
// directed acyclic graphs.
//
// Nodes are processed in the topological order produced by
// dfs.TopologicalSort (reverse DFS post-order) and every outgoing edge is
// relaxed exactly once, giving O(V + E) time with any sign of edge weight.
// Cyclic input is rejected with dfs.ErrCycleDetected.
//
// LongestPaths solves the critical-path problem by relaxing negated
// weights and flipping the signs back.
package dagsp

import (
	"context"
	"errors"
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/dfs"
)

var (
	// ErrNilGraph indicates that a nil graph was passed.
	ErrNilGraph = errors.New("dagsp: graph is nil")

	// ErrVertexNotFound indicates that the source node is not in the graph.
	ErrVertexNotFound = errors.New("dagsp: source vertex not found in graph")
)

// Options configures ShortestPaths and LongestPaths.
type Options struct {
	Ctx    context.Context
	Logger *zap.Logger
}

// Option is a functional option.
type Option func(*Options)

// WithContext sets the context forwarded to the topological sort and
// checked once per processed node. Nil has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithLogger sets the logger; nil keeps the no-op default.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// ShortestPaths returns minimum-weight paths from source on the DAG g.
//
// Errors: ErrNilGraph, ErrVertexNotFound, *dfs.CycleError (errors.Is
// dfs.ErrCycleDetected), ctx.Err().
func ShortestPaths[N comparable](g core.Graph[N], source N, opts ...Option) (*core.ShortestPaths[N], error) {
	return run(g, source, false, opts)
}

// LongestPaths returns maximum-weight paths from source on the DAG g.
// DistTo keeps +Inf for nodes source cannot reach.
func LongestPaths[N comparable](g core.Graph[N], source N, opts ...Option) (*core.ShortestPaths[N], error) {
	return run(g, source, true, opts)
}

func run[N comparable](g core.Graph[N], source N, longest bool, opts []Option) (*core.ShortestPaths[N], error) {
	cfg := Options{Ctx: context.Background(), Logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&cfg)
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	if !core.HasNode(g, source) {
		return nil, fmt.Errorf("%w: %v", ErrVertexNotFound, source)
	}

	order, err := dfs.TopologicalSort(g, dfs.WithCancelContext(cfg.Ctx))
	if err != nil {
		return nil, fmt.Errorf("dagsp: %w", err)
	}
	cfg.Logger.Debug("dagsp: start", zap.Any("source", source), zap.Bool("longest", longest))

	sign := 1.0
	if longest {
		sign = -1
	}
	sp := core.NewShortestPaths(g, source)
	relaxed := 0
	for _, u := range order {
		if err = cfg.Ctx.Err(); err != nil {
			break
		}
		for _, e := range core.OutEdges(g, u) {
			e.Weight *= sign
			if sp.Relax(e) {
				relaxed++
			}
		}
	}
	if longest {
		flip(sp)
	}
	cfg.Logger.Debug("dagsp: finish", zap.Int("relaxed", relaxed), zap.Error(err))

	return sp, err
}

// flip restores the signs of a result computed on negated weights.
func flip[N comparable](sp *core.ShortestPaths[N]) {
	for n, d := range sp.DistTo {
		if !math.IsInf(d, 1) && d != 0 {
			sp.DistTo[n] = -d
		}
	}
	for n, e := range sp.EdgeTo {
		e.Weight = -e.Weight
		sp.EdgeTo[n] = e
	}
}
