package bellmanford

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// Sentinel errors returned by BellmanFord.
var (
	// ErrNilGraph indicates that a nil graph was passed to BellmanFord.
	ErrNilGraph = errors.New("bellmanford: graph is nil")

	// ErrVertexNotFound indicates that the source node is not in the graph.
	ErrVertexNotFound = errors.New("bellmanford: source vertex not found in graph")

	// ErrNegativeCycle matches every *NegativeCycleError via errors.Is.
	ErrNegativeCycle = errors.New("bellmanford: negative cycle reachable from source")
)

// NegativeCycleError reports a negative-weight cycle reachable from the
// source. Cycle lists v0 → v1 → … → vk with the closing edge vk → v0
// implied; Weight is the sum of the cycle's edge weights (always < 0).
type NegativeCycleError[N comparable] struct {
	Cycle  []N
	Weight float64
}

func (e *NegativeCycleError[N]) Error() string {
	var sb strings.Builder
	for _, n := range e.Cycle {
		fmt.Fprintf(&sb, "%v->", n)
	}
	if len(e.Cycle) > 0 {
		fmt.Fprintf(&sb, "%v", e.Cycle[0])
	}

	return fmt.Sprintf("%v: %s with weight=%g", ErrNegativeCycle, sb.String(), e.Weight)
}

// Unwrap exposes ErrNegativeCycle to errors.Is.
func (e *NegativeCycleError[N]) Unwrap() error { return ErrNegativeCycle }

// Options configures BellmanFord.
type Options struct {
	Ctx context.Context // checked once per round

	// FullRounds disables the early exit after a round without any
	// relaxation, so exactly |V| rounds always run.
	FullRounds bool

	Logger *zap.Logger
}

// Option represents a functional option for configuring BellmanFord.
type Option func(*Options)

// DefaultOptions returns background context, early exit on and a no-op logger.
func DefaultOptions() Options {
	return Options{Ctx: context.Background(), Logger: zap.NewNop()}
}

// WithContext sets a context checked before every round.
// Passing a nil context has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithFullRounds runs all |V| rounds even when a round relaxes nothing.
func WithFullRounds() Option {
	return func(o *Options) {
		o.FullRounds = true
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
