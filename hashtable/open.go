package hashtable

import (
	"fmt"
	"iter"

	"go.uber.org/zap"
)

// probeKind selects the open-addressing probe sequence.
type probeKind int

const (
	linearProbe probeKind = iota
	triangularProbe
)

func (k probeKind) String() string {
	if k == triangularProbe {
		return "triangular"
	}

	return "linear"
}

// slotState marks a slot as never used, holding a live entry, or deleted.
type slotState uint8

const (
	slotEmpty slotState = iota
	slotLive
	slotTombstone
)

// markedEntry is an Entry plus its tombstone flag.
type markedEntry[K, V any] struct {
	Entry[K, V]
	state slotState
}

// Open is an open-addressing hash table with tombstone deletion.
//
// Invariants:
//   - live + tombstones ≤ len(slots) - 1 (at least one empty slot, so every
//     probe sequence terminates).
//   - triangular tables keep len(slots) a power of two.
type Open[K, V any] struct {
	hasher     Hasher[K]
	kind       probeKind
	slots      []markedEntry[K, V]
	live       int
	tombstones int
	minCap     int
	resizes    int
	opts       Options
}

// NewLinear returns an open-addressing table probing hc, hc+1, hc+2, …
//
// Errors: ErrNilHasher, ErrCapacityTooSmall (capacity < 2), ErrOptionViolation.
func NewLinear[K, V any](h Hasher[K], capacity int, opts ...Option) (*Open[K, V], error) {
	return newOpen[K, V](linearProbe, h, capacity, opts)
}

// NewTriangular returns an open-addressing table probing hc, hc+1, hc+3,
// hc+6, … over a power-of-two capacity.
//
// Errors: ErrNilHasher, ErrCapacityTooSmall, ErrNotPowerOfTwo, ErrOptionViolation.
func NewTriangular[K, V any](h Hasher[K], capacity int, opts ...Option) (*Open[K, V], error) {
	return newOpen[K, V](triangularProbe, h, capacity, opts)
}

func newOpen[K, V any](kind probeKind, h Hasher[K], capacity int, opts []Option) (*Open[K, V], error) {
	if h == nil {
		return nil, ErrNilHasher
	}
	if capacity < minOpenCapacity {
		return nil, fmt.Errorf("%w: %d (minimum %d)", ErrCapacityTooSmall, capacity, minOpenCapacity)
	}
	if kind == triangularProbe && !isPowerOfTwo(capacity) {
		return nil, fmt.Errorf("%w: %d", ErrNotPowerOfTwo, capacity)
	}
	o, err := resolve(DefaultOpenLoadFactor, DefaultOpenShrinkFactor, true, opts)
	if err != nil {
		return nil, err
	}

	return &Open[K, V]{
		hasher: h,
		kind:   kind,
		slots:  make([]markedEntry[K, V], capacity),
		minCap: capacity,
		opts:   o,
	}, nil
}

// Get returns the value for k. Tombstones are skipped, not treated as misses.
// Complexity: O(1) expected.
func (t *Open[K, V]) Get(k K) (V, bool) {
	if i, _, _ := t.lookup(k); i >= 0 {
		return t.slots[i].Value, true
	}
	var zero V

	return zero, false
}

// Contains reports whether k is live in the table.
func (t *Open[K, V]) Contains(k K) bool {
	i, _, _ := t.lookup(k)

	return i >= 0
}

// Put inserts k or overwrites its value in place. A new key reuses the
// first tombstone on its probe path when there is one.
//
// If the insert would bring live+tombstones to LoadFactor·M the table
// first grows (full rebuild). Fixed-capacity tables instead return
// ErrCapacityExhausted and stay unchanged.
// Complexity: O(1) amortized.
func (t *Open[K, V]) Put(k K, v V) error {
	found, free, _ := t.lookup(k)
	if found >= 0 {
		t.slots[found].Value = v
		return nil
	}
	if free >= 0 && t.slots[free].state == slotTombstone {
		t.slots[free] = markedEntry[K, V]{Entry: Entry[K, V]{Key: k, Value: v}, state: slotLive}
		t.tombstones--
		t.live++
		return nil
	}

	// the insert consumes an empty slot
	if t.opts.Fixed {
		if t.used()+1 > len(t.slots)-1 {
			return fmt.Errorf("%w: %d of %d slots in use", ErrCapacityExhausted, t.used(), len(t.slots))
		}
	} else if t.overThreshold(t.used() + 1) {
		for t.overThreshold(t.used() + 1) {
			t.resize(t.growTarget())
		}
		_, free, _ = t.lookup(k)
	}
	if free < 0 {
		return fmt.Errorf("%w: no empty slot on probe path", ErrCapacityExhausted)
	}
	t.slots[free] = markedEntry[K, V]{Entry: Entry[K, V]{Key: k, Value: v}, state: slotLive}
	t.live++

	return nil
}

// Remove marks k's slot as a tombstone and returns its value. Probe runs
// through the slot stay intact for other keys. A second Remove of the same
// key returns (zero, false).
//
// After a removal the table may shrink when live ≤ ShrinkFactor·M.
func (t *Open[K, V]) Remove(k K) (V, bool) {
	var zero V
	i, _, _ := t.lookup(k)
	if i < 0 {
		return zero, false
	}
	v := t.slots[i].Value
	t.slots[i] = markedEntry[K, V]{state: slotTombstone}
	t.live--
	t.tombstones++
	t.maybeShrink()

	return v, true
}

// Len returns the number of live entries.
func (t *Open[K, V]) Len() int { return t.live }

// Capacity returns the number of slots M.
func (t *Open[K, V]) Capacity() int { return len(t.slots) }

// All yields live entries in slot order.
func (t *Open[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for i := range t.slots {
			if t.slots[i].state != slotLive {
				continue
			}
			if !yield(t.slots[i].Key, t.slots[i].Value) {
				return
			}
		}
	}
}

// Keys returns the live keys in slot order.
func (t *Open[K, V]) Keys() []K {
	out := make([]K, 0, t.live)
	for k := range t.All() {
		out = append(out, k)
	}

	return out
}

// Clear drops every entry and returns to the initial capacity.
func (t *Open[K, V]) Clear() {
	t.slots = make([]markedEntry[K, V], t.minCap)
	t.live, t.tombstones = 0, 0
}

// Stats reports occupancy and the longest probe sequence of any live key.
// Complexity: O(M · probe length).
func (t *Open[K, V]) Stats() Stats {
	longest := 0
	for i := range t.slots {
		if t.slots[i].state != slotLive {
			continue
		}
		if _, _, probes := t.lookup(t.slots[i].Key); probes > longest {
			longest = probes
		}
	}

	return Stats{
		Kind:       t.kind.String(),
		Len:        t.live,
		Capacity:   len(t.slots),
		Tombstones: t.tombstones,
		LoadFactor: float64(t.used()) / float64(len(t.slots)),
		Resizes:    t.resizes,
		LongestRun: longest,
	}
}

// lookup walks k's probe sequence. It returns the slot holding k (or -1),
// the first slot a new k could occupy (first tombstone, else the empty slot
// that ended the walk, or -1), and the number of slots inspected.
func (t *Open[K, V]) lookup(k K) (found, free, probes int) {
	m := len(t.slots)
	free = -1
	idx := int(t.hasher.Hash(k) % uint64(m))
	for i := 1; i <= m; i++ {
		s := &t.slots[idx]
		switch s.state {
		case slotEmpty:
			if free < 0 {
				free = idx
			}
			return -1, free, i
		case slotTombstone:
			if free < 0 {
				free = idx
			}
		case slotLive:
			if t.hasher.Equal(s.Key, k) {
				return idx, free, i
			}
		}
		idx = t.next(idx, i)
	}

	return -1, free, m
}

// next returns the slot after idx on the i-th step. Adding i on step i
// accumulates triangular offsets 1, 3, 6, 10, …
func (t *Open[K, V]) next(idx, i int) int {
	if t.kind == triangularProbe {
		return (idx + i) & (len(t.slots) - 1)
	}

	return (idx + 1) % len(t.slots)
}

func (t *Open[K, V]) used() int { return t.live + t.tombstones }

// overThreshold reports whether n occupied slots reach the grow threshold.
func (t *Open[K, V]) overThreshold(n int) bool {
	return t.overThresholdAt(n, len(t.slots))
}

func (t *Open[K, V]) overThresholdAt(n, m int) bool {
	return float64(n) >= t.opts.LoadFactor*float64(m) || n > m-1
}

func (t *Open[K, V]) growTarget() int {
	if t.kind == triangularProbe {
		return 2 * len(t.slots)
	}

	return 2*len(t.slots) + 1
}

// maybeShrink halves the table once live entries fall to ShrinkFactor·M.
// Linear targets are forced odd; triangular targets stay powers of two.
func (t *Open[K, V]) maybeShrink() {
	m := len(t.slots)
	if t.opts.Fixed || t.opts.ShrinkFactor == 0 || m <= t.minCap {
		return
	}
	if float64(t.live) > t.opts.ShrinkFactor*float64(m) {
		return
	}
	target := m / 2
	if t.kind == linearProbe && target%2 == 0 {
		target++
	}
	if target < t.minCap {
		target = t.minCap
	}
	// the shrunk table must still accept one more key without growing back
	if target < m && !t.overThresholdAt(t.live+1, target) {
		t.resize(target)
	}
}

// resize rebuilds the table into capacity slots, carrying live entries only.
func (t *Open[K, V]) resize(capacity int) {
	old := t.slots
	dropped := t.tombstones
	t.slots = make([]markedEntry[K, V], capacity)
	t.live, t.tombstones = 0, 0
	for i := range old {
		if old[i].state == slotLive {
			t.place(old[i].Entry)
		}
	}
	t.resizes++

	t.opts.Logger.Debug("hashtable: resized",
		zap.String("kind", t.kind.String()),
		zap.Int("from", len(old)),
		zap.Int("to", capacity),
		zap.Int("live", t.live),
		zap.Int("tombstones", dropped),
	)
}

// place stores e in the first empty slot of its probe path. Only valid on a
// freshly allocated array with distinct keys.
func (t *Open[K, V]) place(e Entry[K, V]) {
	m := len(t.slots)
	idx := int(t.hasher.Hash(e.Key) % uint64(m))
	for i := 1; t.slots[idx].state != slotEmpty; i++ {
		idx = t.next(idx, i)
	}
	t.slots[idx] = markedEntry[K, V]{Entry: e, state: slotLive}
	t.live++
}

func isPowerOfTwo(n int) bool { return n > 0 && n&(n-1) == 0 }
