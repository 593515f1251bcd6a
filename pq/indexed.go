package pq

import (
	"cmp"
	"fmt"
	"iter"

	"github.com/katalvlaran/lvsearch/hashtable"
)

const minLocationSlots = 8

// Indexed is a priority queue whose elements can be re-prioritised in
// place. Values are unique; location[v] is always the slot holding v.
type Indexed[V comparable, P cmp.Ordered] struct {
	e        engine[V, P]
	location *hashtable.Open[V, int]
	opts     Options
}

// NewIndexed returns an empty indexed queue holding up to capacity values.
//
// Errors: ErrBadCapacity, ErrBadArity, ErrOptionViolation.
func NewIndexed[V comparable, P cmp.Ordered](capacity int, opts ...Option) (*Indexed[V, P], error) {
	o, err := resolve(capacity, opts)
	if err != nil {
		return nil, err
	}
	loc, err := hashtable.NewLinear[V, int](hashtable.Comparable[V](), max(minLocationSlots, 2*capacity))
	if err != nil {
		return nil, fmt.Errorf("pq: location map: %w", err)
	}

	q := &Indexed[V, P]{e: newEngine[V, P](capacity, o), location: loc, opts: o}
	q.e.moved = q.track

	return q, nil
}

// track records v's slot. Overwriting a present key never fails and the
// location table grows on demand, so Put cannot return an error here.
func (q *Indexed[V, P]) track(v V, slot int) {
	_ = q.location.Put(v, slot)
}

// Enqueue inserts v with priority p.
// Returns ErrDuplicate if v is already queued, ErrFullQueue when full.
func (q *Indexed[V, P]) Enqueue(v V, p P) error {
	if q.location.Contains(v) {
		return fmt.Errorf("%w: %v", ErrDuplicate, v)
	}
	if q.e.n == q.e.capacity() {
		if !q.opts.Growth {
			return fmt.Errorf("%w: capacity %d", ErrFullQueue, q.e.capacity())
		}
		q.e.grow()
	}
	q.e.push(v, p)

	return nil
}

// Dequeue removes the front value and forgets its location.
func (q *Indexed[V, P]) Dequeue() (V, error) {
	v, _, err := q.DequeueItem()

	return v, err
}

// DequeueItem removes the front value and returns it with its priority.
func (q *Indexed[V, P]) DequeueItem() (V, P, error) {
	if q.e.n == 0 {
		var v V
		var p P
		return v, p, ErrEmptyQueue
	}
	it := q.e.removeAt(1)
	q.location.Remove(it.Value)

	return it.Value, it.Priority, nil
}

// Peek returns the front value and priority without removing them.
func (q *Indexed[V, P]) Peek() (V, P, error) {
	if q.e.n == 0 {
		var v V
		var p P
		return v, p, ErrEmptyQueue
	}
	it := q.e.storage[1]

	return it.Value, it.Priority, nil
}

// DecreasePriority moves v toward the front with the new priority p.
//
// Errors:
//   - ErrNotFound if v is not queued.
//   - ErrNotImproved if p is not strictly better than v's current priority
//     (smaller for Min, larger for Max).
//
// Complexity: O(1) lookup + O(log n) swim.
func (q *Indexed[V, P]) DecreasePriority(v V, p P) error {
	slot, ok := q.location.Get(v)
	if !ok {
		return fmt.Errorf("%w: %v", ErrNotFound, v)
	}
	cur := q.e.storage[slot].Priority
	if !q.e.before(p, cur) {
		return fmt.Errorf("%w: %v → %v for %v (%s queue)", ErrNotImproved, cur, p, v, q.e.order)
	}
	q.e.storage[slot].Priority = p
	q.e.swim(slot)

	return nil
}

// Remove takes v out of the queue wherever it sits and returns its priority.
func (q *Indexed[V, P]) Remove(v V) (P, error) {
	slot, ok := q.location.Get(v)
	if !ok {
		var p P
		return p, fmt.Errorf("%w: %v", ErrNotFound, v)
	}
	it := q.e.removeAt(slot)
	q.location.Remove(v)

	return it.Priority, nil
}

// Contains reports whether v is queued.
func (q *Indexed[V, P]) Contains(v V) bool { return q.location.Contains(v) }

// Priority returns v's current priority.
func (q *Indexed[V, P]) Priority(v V) (P, bool) {
	slot, ok := q.location.Get(v)
	if !ok {
		var p P
		return p, false
	}

	return q.e.storage[slot].Priority, true
}

// Len returns the number of queued values.
func (q *Indexed[V, P]) Len() int { return q.e.n }

// Cap returns the current capacity.
func (q *Indexed[V, P]) Cap() int { return q.e.capacity() }

// IsEmpty reports whether nothing is queued.
func (q *Indexed[V, P]) IsEmpty() bool { return q.e.n == 0 }

// IsFull reports whether the next Enqueue would fail.
func (q *Indexed[V, P]) IsFull() bool { return !q.opts.Growth && q.e.n == q.e.capacity() }

// Items returns a copy of the queued items in storage order.
func (q *Indexed[V, P]) Items() []Item[V, P] {
	out := make([]Item[V, P], q.e.n)
	copy(out, q.e.storage[1:q.e.n+1])

	return out
}

// Ordered iterates the queued values in service order without dequeuing.
func (q *Indexed[V, P]) Ordered() iter.Seq2[V, P] { return q.e.ordered() }
