// Package dfs defines types and options for depth-first search traversal,
// including cancellation, pre-/post-order hooks, depth limiting, neighbor filtering,
// full-graph (forest) traversal, a step budget, and basic diagnostics.
package dfs

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// VertexState represents the DFS visitation state of a node.
const (
	White = iota // White: the node has not been visited yet.
	Gray         // Gray: the node is on the explicit stack (visiting).
	Black        // Black: the node and all its descendants have been fully explored.
)

var (
	// ErrGraphNil is returned when a nil graph is passed to DFS,
	// TopologicalSort, or FindCycle.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that the specified start node
	// does not exist in the graph.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")

	// ErrCycleDetected indicates that a cycle was encountered during
	// TopologicalSort. The concrete error is a *CycleError.
	ErrCycleDetected = errors.New("dfs: cycle detected")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("dfs: invalid option supplied")

	// ErrStepBudget is returned when DFS discovers more nodes than
	// WithMaxSteps allows.
	ErrStepBudget = errors.New("dfs: step budget exhausted")
)

// CycleError reports the directed cycle that made a topological order
// impossible. Cycle lists the nodes v0 → v1 → … → vk → v0 without repeating
// v0 at the end. errors.Is(err, ErrCycleDetected) holds.
type CycleError[N comparable] struct {
	Cycle []N
}

func (e *CycleError[N]) Error() string {
	return fmt.Sprintf("%v: %v", ErrCycleDetected, e.Cycle)
}

// Unwrap exposes ErrCycleDetected to errors.Is.
func (e *CycleError[N]) Unwrap() error { return ErrCycleDetected }

// Option configures optional behavior of DFS traversal.
// Use with DFS(g, start, opts...).
type Option[N comparable] func(*DFSOptions[N])

// DFSOptions holds configurable parameters for DFS traversal.
// Complexity remains O(V+E) when filters and hooks are O(1).
type DFSOptions[N comparable] struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	// Checked once per stack step.
	Ctx context.Context

	// OnVisit, if non-nil, is invoked immediately upon discovering a node (pre-order).
	// Returning an error aborts traversal with that error.
	OnVisit func(n N) error

	// OnExit, if non-nil, is invoked after all descendants of a node
	// have been explored (post-order), before appending to result.Order.
	// Returning an error aborts traversal and leaves Order empty.
	OnExit func(n N) error

	// MaxDepth, if non-negative, limits exploration to the given depth.
	// A depth of 0 visits only the start node. Default is -1 (no limit).
	MaxDepth int

	// MaxSteps, if > 0, bounds the number of discovered nodes.
	MaxSteps int

	// FilterNeighbor, if non-nil, is called for each neighbor before descending.
	// Return true to traverse into that neighbor, false to skip it.
	FilterNeighbor func(n N) bool

	// FullTraversal, if true, runs DFS from every unvisited node in the graph,
	// covering disconnected components (forest traversal). Default is false.
	FullTraversal bool

	// Logger receives Debug events for start and finish.
	Logger *zap.Logger

	err error
}

// DefaultOptions returns a DFSOptions struct with:
//   - Background context
//   - No pre-/post-order hooks
//   - No depth limit (MaxDepth = -1) and no step budget
//   - No neighbor filtering
//   - Single-source traversal (FullTraversal = false)
func DefaultOptions[N comparable]() DFSOptions[N] {
	return DFSOptions[N]{
		Ctx:      context.Background(),
		MaxDepth: -1,
		Logger:   zap.NewNop(),
	}
}

// WithContext sets the Context for DFS traversal.
// Passing a nil context has no effect.
func WithContext[N comparable](ctx context.Context) Option[N] {
	return func(o *DFSOptions[N]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs fn as a pre-order hook.
func WithOnVisit[N comparable](fn func(n N) error) Option[N] {
	return func(o *DFSOptions[N]) {
		o.OnVisit = fn
	}
}

// WithOnExit installs fn as a post-order hook.
func WithOnExit[N comparable](fn func(n N) error) Option[N] {
	return func(o *DFSOptions[N]) {
		o.OnExit = fn
	}
}

// WithMaxDepth limits traversal depth to limit.
// A limit of 0 means only the start node is visited; a negative limit
// disables the bound.
func WithMaxDepth[N comparable](limit int) Option[N] {
	return func(o *DFSOptions[N]) {
		o.MaxDepth = limit
	}
}

// WithMaxSteps bounds the number of nodes DFS may discover. Zero disables
// the budget; negative values are an ErrOptionViolation.
func WithMaxSteps[N comparable](steps int) Option[N] {
	return func(o *DFSOptions[N]) {
		if steps < 0 {
			o.err = fmt.Errorf("%w: MaxSteps cannot be negative (%d)", ErrOptionViolation, steps)
			return
		}
		o.MaxSteps = steps
	}
}

// WithFilterNeighbor filters neighbors. If fn(n) == false, that neighbor
// is skipped and counted in SkippedNeighbors.
func WithFilterNeighbor[N comparable](fn func(n N) bool) Option[N] {
	return func(o *DFSOptions[N]) {
		o.FilterNeighbor = fn
	}
}

// WithFullTraversal restarts DFS from each unvisited node, covering
// disconnected components.
func WithFullTraversal[N comparable]() Option[N] {
	return func(o *DFSOptions[N]) {
		o.FullTraversal = true
	}
}

// WithLogger sets the logger; nil keeps the no-op default.
func WithLogger[N comparable](l *zap.Logger) Option[N] {
	return func(o *DFSOptions[N]) {
		if l != nil {
			o.Logger = l
		}
	}
}

// DFSResult captures the outcome of a depth-first traversal.
type DFSResult[N comparable] struct {
	// Order records nodes in the sequence they finished (post-order).
	Order []N

	// PreOrder records nodes in the sequence they were discovered.
	PreOrder []N

	// Depth maps each node to its tree depth from its root.
	Depth map[N]int

	// Parent maps each node to the node from which it was first discovered.
	// Roots do not appear in this map.
	Parent map[N]N

	// Visited flags which nodes were reached during the traversal.
	Visited map[N]bool

	// SkippedNeighbors reports how many neighbors were skipped
	// due to FilterNeighbor returning false, aggregated across all trees.
	SkippedNeighbors int
}
