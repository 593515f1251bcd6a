package guided

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// Sentinel errors for guided search.
var (
	// ErrGraphNil is returned if a nil graph is passed.
	ErrGraphNil = errors.New("guided: graph is nil")

	// ErrVertexNotFound is returned when the source or target is absent.
	ErrVertexNotFound = errors.New("guided: vertex not found")

	// ErrNilDistance is returned when no distance estimate is supplied.
	ErrNilDistance = errors.New("guided: distance function is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("guided: invalid option supplied")

	// ErrStepBudget is returned when more nodes are dequeued than
	// WithMaxSteps allows. The partial result is returned alongside it.
	ErrStepBudget = errors.New("guided: step budget exhausted")
)

// Distance estimates how far from is from to. Smaller is closer; only the
// relative order of estimates matters.
type Distance[N comparable] func(from, to N) float64

// Option configures Search via functional arguments. Invalid options are
// recorded and surfaced as ErrOptionViolation when Search is invoked.
type Option[N comparable] func(*Options[N])

// Options holds the knobs of a guided search.
type Options[N comparable] struct {
	// Ctx allows cancellation. Checked once per dequeue.
	Ctx context.Context

	// MaxSteps, if > 0, bounds the number of dequeued nodes.
	MaxSteps int

	// FilterNeighbor can skip edges by returning false.
	FilterNeighbor func(curr, neighbor N) bool

	// Logger receives Debug events for start and finish.
	Logger *zap.Logger

	err error
}

// DefaultOptions returns a background context, no budget, no filter and
// a no-op logger.
func DefaultOptions[N comparable]() Options[N] {
	return Options[N]{
		Ctx:            context.Background(),
		FilterNeighbor: func(_, _ N) bool { return true },
		Logger:         zap.NewNop(),
	}
}

// WithContext sets a custom context for cancellation.
func WithContext[N comparable](ctx context.Context) Option[N] {
	return func(o *Options[N]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxSteps bounds the number of nodes Search may dequeue. Zero disables
// the budget; negative values are an ErrOptionViolation.
func WithMaxSteps[N comparable](steps int) Option[N] {
	return func(o *Options[N]) {
		if steps < 0 {
			o.err = fmt.Errorf("%w: MaxSteps cannot be negative (%d)", ErrOptionViolation, steps)
			return
		}
		o.MaxSteps = steps
	}
}

// WithFilterNeighbor skips neighbors when fn returns false.
func WithFilterNeighbor[N comparable](fn func(curr, neighbor N) bool) Option[N] {
	return func(o *Options[N]) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// WithLogger sets the logger; nil keeps the no-op default.
func WithLogger[N comparable](l *zap.Logger) Option[N] {
	return func(o *Options[N]) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Result is the outcome of a guided search.
type Result[N comparable] struct {
	// Found reports whether the target was dequeued.
	Found bool

	// Path runs from source to target along discovery links; nil unless Found.
	Path []N

	// Order lists nodes in dequeue sequence.
	Order []N

	// Parent maps every discovered node except the source to its discoverer.
	Parent map[N]N

	// Explored counts every node ever placed on the frontier, source included.
	Explored int
}
