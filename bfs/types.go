// Package bfs provides tunable options and error definitions
// for breadth-first search over a core.Graph.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvsearch/core"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartVertexNotFound is returned when the start node is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil is returned if a nil graph is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrStepBudget is returned when the search dequeues more nodes than
	// WithMaxSteps allows. The partial result is returned alongside it.
	ErrStepBudget = errors.New("bfs: step budget exhausted")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option[N comparable] func(*BFSOptions[N])

// BFSOptions holds parameters and callbacks to customize BFS execution.
type BFSOptions[N comparable] struct {
	// Ctx allows cancellation and deadlines. Checked once per dequeue.
	Ctx context.Context

	// OnEnqueue is called when a node enters the frontier.
	// Receives the node and its depth from the start.
	OnEnqueue func(n N, depth int)

	// OnDequeue is called immediately before visiting a node.
	OnDequeue func(n N, depth int)

	// OnVisit is called when visiting a node. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(n N, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// MaxSteps, if > 0, bounds the number of dequeued nodes.
	MaxSteps int

	// FilterNeighbor can skip edges by returning false.
	// Called for each edge curr→neighbor.
	FilterNeighbor func(curr, neighbor N) bool

	// Logger receives Debug events for start and finish.
	Logger *zap.Logger

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a BFSOptions with sane defaults:
//   - Context.Background()
//   - no depth limit (MaxDepth == 0) and no step budget
//   - no filtering (all neighbors allowed)
//   - no-op hooks (OnEnqueue, OnDequeue, OnVisit)
//   - a no-op logger
func DefaultOptions[N comparable]() BFSOptions[N] {
	return BFSOptions[N]{
		Ctx:            context.Background(),
		OnEnqueue:      func(N, int) {},
		OnDequeue:      func(N, int) {},
		OnVisit:        func(N, int) error { return nil },
		FilterNeighbor: func(_, _ N) bool { return true },
		Logger:         zap.NewNop(),
	}
}

// WithContext sets a custom context for cancellation.
func WithContext[N comparable](ctx context.Context) Option[N] {
	return func(o *BFSOptions[N]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue[N comparable](fn func(n N, depth int)) Option[N] {
	return func(o *BFSOptions[N]) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue[N comparable](fn func(n N, depth int)) Option[N] {
	return func(o *BFSOptions[N]) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit[N comparable](fn func(n N, depth int) error) Option[N] {
	return func(o *BFSOptions[N]) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth (inclusive).
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth[N comparable](d int) Option[N] {
	return func(o *BFSOptions[N]) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		default:
			o.MaxDepth = d
		}
	}
}

// WithMaxSteps bounds the number of nodes BFS may dequeue. Zero disables
// the budget; negative values are an ErrOptionViolation.
func WithMaxSteps[N comparable](steps int) Option[N] {
	return func(o *BFSOptions[N]) {
		if steps < 0 {
			o.err = fmt.Errorf("%w: MaxSteps cannot be negative (%d)", ErrOptionViolation, steps)
			return
		}
		o.MaxSteps = steps
	}
}

// WithFilterNeighbor skips neighbors when fn returns false.
func WithFilterNeighbor[N comparable](fn func(curr, neighbor N) bool) Option[N] {
	return func(o *BFSOptions[N]) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// WithLogger sets the logger; nil keeps the no-op default.
func WithLogger[N comparable](l *zap.Logger) Option[N] {
	return func(o *BFSOptions[N]) {
		if l != nil {
			o.Logger = l
		}
	}
}

// BFSResult holds the outcome of a BFS traversal.
//
// The embedded ShortestPaths carries hop counts in DistTo (unreached nodes
// stay at +Inf) and the tree edge that discovered each node in EdgeTo; the
// edges keep their graph weights.
type BFSResult[N comparable] struct {
	*core.ShortestPaths[N]

	// Order lists nodes in visit sequence.
	Order []N

	// Depth maps every reached node to its distance in edges.
	Depth map[N]int
}

// PathNodes reconstructs the node sequence from the start to dest.
// Returns an error wrapping core.ErrUnreachable if dest was not reached.
func (r *BFSResult[N]) PathNodes(dest N) ([]N, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("bfs: no path to %v: %w", dest, core.ErrUnreachable)
	}

	return r.NodesTo(dest)
}
