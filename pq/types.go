package pq

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by priority queues.
var (
	ErrBadCapacity     = errors.New("pq: capacity must be at least 1")
	ErrBadArity        = errors.New("pq: arity must be at least 2")
	ErrEmptyQueue      = errors.New("pq: queue is empty")
	ErrFullQueue       = errors.New("pq: queue is full")
	ErrDuplicate       = errors.New("pq: value already queued")
	ErrNotFound        = errors.New("pq: value not queued")
	ErrNotImproved     = errors.New("pq: priority does not improve")
	ErrOptionViolation = errors.New("pq: invalid option supplied")
)

// Order selects which end of the priority range is served first.
type Order int

const (
	// Max serves the largest priority first.
	Max Order = iota
	// Min serves the smallest priority first.
	Min
)

func (o Order) String() string {
	if o == Min {
		return "min"
	}

	return "max"
}

// Item is a (value, priority) pair as stored in a queue.
type Item[V any, P any] struct {
	Value    V
	Priority P
}

// Option configures a queue via functional arguments.
type Option func(*Options)

// Options holds queue configuration.
type Options struct {
	Order  Order // Max (default) or Min
	Arity  int   // children per node, ≥ 2
	Growth bool  // double the backing array instead of failing with ErrFullQueue

	err error
}

// DefaultOptions returns a fixed-capacity binary max-heap configuration.
func DefaultOptions() Options {
	return Options{Order: Max, Arity: 2}
}

// WithOrder selects Max or Min order.
func WithOrder(o Order) Option {
	return func(opts *Options) {
		if o != Max && o != Min {
			opts.err = fmt.Errorf("%w: unknown order %d", ErrOptionViolation, o)
			return
		}
		opts.Order = o
	}
}

// WithArity sets the number of children per node.
func WithArity(d int) Option {
	return func(opts *Options) {
		if d < 2 {
			opts.err = fmt.Errorf("%w: %d", ErrBadArity, d)
			return
		}
		opts.Arity = d
	}
}

// WithGrowth lets the queue grow instead of reporting ErrFullQueue.
func WithGrowth() Option {
	return func(opts *Options) {
		opts.Growth = true
	}
}

func resolve(capacity int, opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o, o.err
	}
	if capacity < 1 {
		return o, fmt.Errorf("%w: got %d", ErrBadCapacity, capacity)
	}

	return o, nil
}
