// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm on weighted graphs.
//
// Options:
//
//	– MaxDistance:      optional cap on distances to explore; nodes beyond it stay at +Inf.
//	– InfEdgeThreshold: edges with weight >= this threshold are treated as impassable.
//	– Arity:            children per node of the indexed d-ary heap (default 2).
//	– Ctx / Logger:     cancellation and structured debug logging.
//
// Errors (sentinel):
//
//	– ErrNilGraph        if the provided graph is nil.
//	– ErrVertexNotFound  if the source node does not exist in the graph.
//	– ErrNegativeWeight  if a negative edge weight is detected in the graph.
//	– ErrBadMaxDistance  (panic) if MaxDistance < 0 or NaN.
//	– ErrBadInfThreshold (panic) if InfEdgeThreshold <= 0 or NaN.
package dijkstra

import (
	"context"
	"errors"
	"math"

	"go.uber.org/zap"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the specified source node does not exist
	// in the provided graph.
	ErrVertexNotFound = errors.New("dijkstra: source vertex not found in graph")

	// ErrNegativeWeight indicates that a negative edge weight was detected in the graph.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value,
	// which is not meaningful for a distance threshold.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative,
	// which would treat all edges (including zero-weight edges) as impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// MaxDistance      – nodes whose distance would exceed this value are not explored.
//
//	Must be ≥ 0. Default is +Inf (no cap).
//
// InfEdgeThreshold – treat edges with weight ≥ this threshold as impassable obstacles.
//
//	Must be > 0. Default is +Inf (no obstacles).
type Options struct {
	Ctx              context.Context // checked once per dequeue
	MaxDistance      float64         // Maximum distance to explore
	InfEdgeThreshold float64         // Weight threshold above which edges are non-traversable
	Arity            int             // heap arity, forwarded to pq.WithArity
	Logger           *zap.Logger     // Debug start/finish events
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithContext sets a context checked once per dequeued node.
// Passing a nil context has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Nodes whose shortest distance would exceed this value are not explored.
// Must pass a non-negative value; negative or NaN values panic with ErrBadMaxDistance.
func WithMaxDistance(max float64) Option {
	if max < 0 || math.IsNaN(max) {
		panic(ErrBadMaxDistance.Error())
	}

	return func(o *Options) {
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold defines a weight threshold above which edges are
// considered non-traversable (treated as infinite weight).
// Edges with weight ≥ threshold are skipped entirely.
// Must pass a positive value; zero, negative or NaN values panic with ErrBadInfThreshold.
func WithInfEdgeThreshold(threshold float64) Option {
	if threshold <= 0 || math.IsNaN(threshold) {
		panic(ErrBadInfThreshold.Error())
	}

	return func(o *Options) {
		o.InfEdgeThreshold = threshold
	}
}

// WithArity runs the search on a d-ary indexed heap instead of a binary one.
// Values below 2 make Dijkstra fail with pq.ErrBadArity.
func WithArity(d int) Option {
	return func(o *Options) {
		o.Arity = d
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

// DefaultOptions returns an Options struct initialized with:
//   - Ctx:              context.Background()
//   - MaxDistance:      +Inf (explore all reachable nodes)
//   - InfEdgeThreshold: +Inf (no edges treated as impassable)
//   - Arity:            2 (binary heap)
//   - Logger:           zap.NewNop()
func DefaultOptions() Options {
	return Options{
		Ctx:              context.Background(),
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
		Arity:            2,
		Logger:           zap.NewNop(),
	}
}
