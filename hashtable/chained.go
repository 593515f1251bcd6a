package hashtable

import (
	"cmp"
	"fmt"
	"iter"

	"go.uber.org/zap"
)

// chainNode is a linked entry; each node exclusively owns its successor.
type chainNode[K, V any] struct {
	Entry[K, V]
	next *chainNode[K, V]
}

// Chained is a separate-chaining hash table. With a comparison function
// installed (NewSortedChained) each chain is kept in ascending key order.
type Chained[K, V any] struct {
	hasher  Hasher[K]
	compare func(a, b K) int // nil for plain chaining
	buckets []*chainNode[K, V]
	n       int
	minCap  int
	resizes int
	opts    Options
}

// NewChained returns a plain chaining table: new keys are pushed at the
// head of their bucket.
//
// Errors: ErrNilHasher, ErrCapacityTooSmall (capacity < 1), ErrOptionViolation.
func NewChained[K, V any](h Hasher[K], capacity int, opts ...Option) (*Chained[K, V], error) {
	return newChained[K, V](h, nil, capacity, opts)
}

// NewSortedChained returns a chaining table whose chains are kept in
// ascending cmp.Compare order.
func NewSortedChained[K cmp.Ordered, V any](h Hasher[K], capacity int, opts ...Option) (*Chained[K, V], error) {
	return newChained[K, V](h, cmp.Compare[K], capacity, opts)
}

// NewSortedChainedFunc is NewSortedChained with a caller-supplied ordering.
// compare must agree with h.Equal: compare(a, b) == 0 iff h.Equal(a, b).
func NewSortedChainedFunc[K, V any](h Hasher[K], compare func(a, b K) int, capacity int, opts ...Option) (*Chained[K, V], error) {
	if compare == nil {
		return nil, fmt.Errorf("%w: nil compare function", ErrOptionViolation)
	}

	return newChained[K, V](h, compare, capacity, opts)
}

func newChained[K, V any](h Hasher[K], compare func(a, b K) int, capacity int, opts []Option) (*Chained[K, V], error) {
	if h == nil {
		return nil, ErrNilHasher
	}
	if capacity < minChainedCapacity {
		return nil, fmt.Errorf("%w: %d (minimum %d)", ErrCapacityTooSmall, capacity, minChainedCapacity)
	}
	o, err := resolve(DefaultChainedLoadFactor, DefaultChainedShrinkFactor, false, opts)
	if err != nil {
		return nil, err
	}

	return &Chained[K, V]{
		hasher:  h,
		compare: compare,
		buckets: make([]*chainNode[K, V], capacity),
		minCap:  capacity,
		opts:    o,
	}, nil
}

func (t *Chained[K, V]) sorted() bool { return t.compare != nil }

func (t *Chained[K, V]) kind() string {
	if t.sorted() {
		return "sorted-chained"
	}

	return "chained"
}

func (t *Chained[K, V]) bucket(k K) int {
	return int(t.hasher.Hash(k) % uint64(len(t.buckets)))
}

// find returns the node holding k, or nil. Sorted chains stop at the first
// larger key when EarlyExit is on.
func (t *Chained[K, V]) find(k K) *chainNode[K, V] {
	for n := t.buckets[t.bucket(k)]; n != nil; n = n.next {
		if t.sorted() {
			c := t.compare(n.Key, k)
			if c == 0 {
				return n
			}
			if c > 0 && t.opts.EarlyExit {
				return nil
			}
			continue
		}
		if t.hasher.Equal(n.Key, k) {
			return n
		}
	}

	return nil
}

// Get returns the value for k. Complexity: O(chain length).
func (t *Chained[K, V]) Get(k K) (V, bool) {
	if n := t.find(k); n != nil {
		return n.Value, true
	}
	var zero V

	return zero, false
}

// Contains reports whether k is present.
func (t *Chained[K, V]) Contains(k K) bool { return t.find(k) != nil }

// Put inserts k or overwrites its value. Plain chains push at the head;
// sorted chains insert before the first larger key. A fixed-capacity chained
// table never runs out of room, it only gets longer chains.
func (t *Chained[K, V]) Put(k K, v V) error {
	if n := t.find(k); n != nil {
		n.Value = v
		return nil
	}
	if !t.opts.Fixed && float64(t.n+1) >= t.opts.LoadFactor*float64(len(t.buckets)) {
		t.resize(2 * len(t.buckets))
	}
	t.link(Entry[K, V]{Key: k, Value: v})
	t.n++

	return nil
}

// link inserts a key known to be absent.
func (t *Chained[K, V]) link(e Entry[K, V]) {
	b := t.bucket(e.Key)
	if !t.sorted() {
		t.buckets[b] = &chainNode[K, V]{Entry: e, next: t.buckets[b]}
		return
	}
	// walk with a pointer to the link field so the head needs no special case
	at := &t.buckets[b]
	for *at != nil && t.compare((*at).Key, e.Key) < 0 {
		at = &(*at).next
	}
	*at = &chainNode[K, V]{Entry: e, next: *at}
}

// Remove unlinks k from its chain and returns its value.
func (t *Chained[K, V]) Remove(k K) (V, bool) {
	var zero V
	at := &t.buckets[t.bucket(k)]
	for *at != nil {
		n := *at
		if t.sorted() {
			c := t.compare(n.Key, k)
			if c > 0 && t.opts.EarlyExit {
				return zero, false
			}
			if c != 0 {
				at = &n.next
				continue
			}
		} else if !t.hasher.Equal(n.Key, k) {
			at = &n.next
			continue
		}
		*at = n.next
		n.next = nil
		t.n--
		t.maybeShrink()

		return n.Value, true
	}

	return zero, false
}

// Len returns the number of entries.
func (t *Chained[K, V]) Len() int { return t.n }

// Capacity returns the number of buckets.
func (t *Chained[K, V]) Capacity() int { return len(t.buckets) }

// All yields entries bucket by bucket, head to tail.
func (t *Chained[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, head := range t.buckets {
			for n := head; n != nil; n = n.next {
				if !yield(n.Key, n.Value) {
					return
				}
			}
		}
	}
}

// Keys returns every key in bucket order.
func (t *Chained[K, V]) Keys() []K {
	out := make([]K, 0, t.n)
	for k := range t.All() {
		out = append(out, k)
	}

	return out
}

// Clear drops every entry and returns to the initial bucket count.
func (t *Chained[K, V]) Clear() {
	t.buckets = make([]*chainNode[K, V], t.minCap)
	t.n = 0
}

// Stats reports occupancy and the longest chain.
func (t *Chained[K, V]) Stats() Stats {
	longest := 0
	for _, head := range t.buckets {
		l := 0
		for n := head; n != nil; n = n.next {
			l++
		}
		if l > longest {
			longest = l
		}
	}
	return Stats{
		Kind:       t.kind(),
		Len:        t.n,
		Capacity:   len(t.buckets),
		LoadFactor: float64(t.n) / float64(len(t.buckets)),
		Resizes:    t.resizes,
		LongestRun: longest,
	}
}

func (t *Chained[K, V]) maybeShrink() {
	m := len(t.buckets)
	if t.opts.Fixed || t.opts.ShrinkFactor == 0 || m <= t.minCap {
		return
	}
	if float64(t.n) > t.opts.ShrinkFactor*float64(m) {
		return
	}
	target := m / 2
	if target < t.minCap {
		target = t.minCap
	}
	if target < m {
		t.resize(target)
	}
}

// resize re-walks every chain into a fresh bucket array.
func (t *Chained[K, V]) resize(capacity int) {
	old := t.buckets
	t.buckets = make([]*chainNode[K, V], capacity)
	for _, head := range old {
		for n := head; n != nil; {
			next := n.next
			t.link(n.Entry)
			n = next
		}
	}
	t.resizes++

	t.opts.Logger.Debug("hashtable: resized",
		zap.String("kind", t.kind()),
		zap.Int("from", len(old)),
		zap.Int("to", capacity),
		zap.Int("live", t.n),
	)
}
