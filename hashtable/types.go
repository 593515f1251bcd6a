package hashtable

import (
	"errors"
	"fmt"
	"iter"

	"go.uber.org/zap"
)

// Sentinel errors for hash table construction and mutation.
var (
	// ErrCapacityTooSmall is returned when the initial capacity is below the minimum.
	ErrCapacityTooSmall = errors.New("hashtable: capacity too small")

	// ErrNotPowerOfTwo is returned by NewTriangular for capacities that are not 2^k.
	ErrNotPowerOfTwo = errors.New("hashtable: capacity must be a power of two")

	// ErrNilHasher is returned when a constructor receives a nil Hasher.
	ErrNilHasher = errors.New("hashtable: hasher is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("hashtable: invalid option supplied")

	// ErrCapacityExhausted is returned by Put on a fixed-capacity table with
	// no free slot left for a new key.
	ErrCapacityExhausted = errors.New("hashtable: capacity exhausted")
)

// Default resize policy values.
const (
	DefaultOpenLoadFactor      = 0.75
	DefaultOpenShrinkFactor    = 0.125
	DefaultChainedLoadFactor   = 2.0
	DefaultChainedShrinkFactor = 0.25

	minOpenCapacity    = 2
	minChainedCapacity = 1
)

// Table is the contract shared by every table in this package.
type Table[K, V any] interface {
	// Get returns the value stored for k and whether it was present.
	Get(k K) (V, bool)

	// Put inserts k or overwrites its value.
	Put(k K, v V) error

	// Remove deletes k and returns its last value. Removing an absent key
	// is a no-op returning (zero, false).
	Remove(k K) (V, bool)

	// Contains reports whether k is present.
	Contains(k K) bool

	// Len returns the number of live entries.
	Len() int

	// Capacity returns the number of slots or buckets.
	Capacity() int

	// All yields every live (key, value) pair in bucket order.
	All() iter.Seq2[K, V]

	// Stats returns a snapshot of occupancy counters.
	Stats() Stats
}

// Entry is a key/value pair owned by a table.
type Entry[K, V any] struct {
	Key   K
	Value V
}

// Stats is a read-only snapshot of a table's occupancy.
type Stats struct {
	Kind       string  // "linear", "triangular", "chained" or "sorted-chained"
	Len        int     // live entries
	Capacity   int     // slots (open) or buckets (chained)
	Tombstones int     // open addressing only
	LoadFactor float64 // (Len+Tombstones)/Capacity
	Resizes    int     // rebuilds performed since construction
	LongestRun int     // longest probe sequence (open) or chain (chained)
}

// Option configures a table via functional arguments. Invalid values are
// recorded and surfaced as ErrOptionViolation by the constructor.
type Option func(*Options)

// Options holds the resize policy and ambient collaborators.
type Options struct {
	// LoadFactor is the grow threshold; zero selects the family default.
	LoadFactor float64

	// ShrinkFactor is the shrink threshold; zero disables shrinking,
	// negative selects the family default.
	ShrinkFactor float64

	// Fixed disables every resize.
	Fixed bool

	// EarlyExit lets sorted chains stop a lookup once a larger key is seen.
	EarlyExit bool

	// Logger receives resize events at Debug level.
	Logger *zap.Logger

	err error
}

// DefaultOptions returns family defaults: automatic load/shrink factors,
// resizing enabled, sorted-chain early exit on, and a no-op logger.
func DefaultOptions() Options {
	return Options{
		LoadFactor:   0,
		ShrinkFactor: -1,
		Fixed:        false,
		EarlyExit:    true,
		Logger:       zap.NewNop(),
	}
}

// WithLoadFactor sets the grow threshold. Open addressing requires
// 0 < f < 1; chaining accepts any f > 0.
func WithLoadFactor(f float64) Option {
	return func(o *Options) {
		if f <= 0 {
			o.err = fmt.Errorf("%w: load factor must be positive (%g)", ErrOptionViolation, f)
			return
		}
		o.LoadFactor = f
	}
}

// WithShrinkFactor sets the shrink threshold; 0 disables shrinking.
func WithShrinkFactor(f float64) Option {
	return func(o *Options) {
		if f < 0 {
			o.err = fmt.Errorf("%w: shrink factor cannot be negative (%g)", ErrOptionViolation, f)
			return
		}
		o.ShrinkFactor = f
	}
}

// WithFixedCapacity disables growing and shrinking.
func WithFixedCapacity() Option {
	return func(o *Options) {
		o.Fixed = true
	}
}

// WithEarlyExit toggles the sorted-chain lookup fast path.
func WithEarlyExit(on bool) Option {
	return func(o *Options) {
		o.EarlyExit = on
	}
}

// WithLogger routes resize events to l. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// resolve applies opts over the defaults and fills family-specific values.
func resolve(loadDefault, shrinkDefault float64, open bool, opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o, o.err
	}
	if o.LoadFactor == 0 {
		o.LoadFactor = loadDefault
	}
	if o.ShrinkFactor < 0 {
		o.ShrinkFactor = shrinkDefault
	}
	if open && o.LoadFactor >= 1 {
		return o, fmt.Errorf("%w: open addressing load factor must be < 1 (%g)", ErrOptionViolation, o.LoadFactor)
	}
	// after halving, the load must stay below the grow threshold
	if 2*o.ShrinkFactor >= o.LoadFactor {
		return o, fmt.Errorf("%w: shrink factor %g must be below half the load factor %g",
			ErrOptionViolation, o.ShrinkFactor, o.LoadFactor)
	}

	return o, nil
}
