package pq

import (
	"cmp"
	"fmt"
	"iter"
)

// engine is the shared 1-indexed d-ary heap. moved, when set, is told the
// new slot of every value that changes position.
type engine[V any, P cmp.Ordered] struct {
	storage []Item[V, P] // storage[0] unused
	n       int
	arity   int
	order   Order
	moved   func(v V, slot int)
}

func newEngine[V any, P cmp.Ordered](capacity int, o Options) engine[V, P] {
	return engine[V, P]{
		storage: make([]Item[V, P], capacity+1),
		arity:   o.Arity,
		order:   o.Order,
	}
}

func (e *engine[V, P]) capacity() int { return len(e.storage) - 1 }

// before reports whether priority a is served before priority b.
func (e *engine[V, P]) before(a, b P) bool {
	if e.order == Min {
		return a < b
	}

	return a > b
}

func (e *engine[V, P]) higher(i, j int) bool {
	return e.before(e.storage[i].Priority, e.storage[j].Priority)
}

func (e *engine[V, P]) parent(i int) int { return (i-2)/e.arity + 1 }

func (e *engine[V, P]) firstChild(i int) int { return e.arity*(i-1) + 2 }

func (e *engine[V, P]) swap(i, j int) {
	e.storage[i], e.storage[j] = e.storage[j], e.storage[i]
	if e.moved != nil {
		e.moved(e.storage[i].Value, i)
		e.moved(e.storage[j].Value, j)
	}
}

// swim moves slot i up while it outranks its parent.
func (e *engine[V, P]) swim(i int) {
	for i > 1 {
		p := e.parent(i)
		if !e.higher(i, p) {
			return
		}
		e.swap(i, p)
		i = p
	}
}

// sink moves slot i down, always swapping with the highest-ranked child.
func (e *engine[V, P]) sink(i int) {
	for {
		c := e.firstChild(i)
		if c > e.n {
			return
		}
		best := c
		last := min(c+e.arity-1, e.n)
		for j := c + 1; j <= last; j++ {
			if e.higher(j, best) {
				best = j
			}
		}
		if !e.higher(best, i) {
			return
		}
		e.swap(i, best)
		i = best
	}
}

func (e *engine[V, P]) grow() {
	next := make([]Item[V, P], 2*e.capacity()+1)
	copy(next, e.storage[:e.n+1])
	e.storage = next
}

// push appends at slot n+1 and swims it. The caller checks capacity.
func (e *engine[V, P]) push(v V, p P) {
	e.n++
	e.storage[e.n] = Item[V, P]{Value: v, Priority: p}
	if e.moved != nil {
		e.moved(v, e.n)
	}
	e.swim(e.n)
}

// removeAt takes slot i out, fills it with the last element and repairs
// order in whichever direction is needed.
func (e *engine[V, P]) removeAt(i int) Item[V, P] {
	out := e.storage[i]
	if i != e.n {
		e.swap(i, e.n)
	}
	e.storage[e.n] = Item[V, P]{}
	e.n--
	if i <= e.n {
		e.sink(i)
		e.swim(i)
	}

	return out
}

// ordered yields the items in service order without changing the heap.
// An auxiliary heap of slot indices starts at the root; serving slot i
// queues i's children, so after k steps it holds at most (d-1)·k+1 slots.
func (e *engine[V, P]) ordered() iter.Seq2[V, P] {
	return func(yield func(V, P) bool) {
		if e.n == 0 {
			return
		}
		aux := engine[int, P]{storage: make([]Item[int, P], 2), arity: e.arity, order: e.order}
		aux.push(1, e.storage[1].Priority)
		for aux.n > 0 {
			slot := aux.removeAt(1).Value
			it := e.storage[slot]
			if !yield(it.Value, it.Priority) {
				return
			}
			c := e.firstChild(slot)
			for j := c; j <= min(c+e.arity-1, e.n); j++ {
				if aux.n == aux.capacity() {
					aux.grow()
				}
				aux.push(j, e.storage[j].Priority)
			}
		}
	}
}

// Heap is an array-backed d-ary priority queue.
type Heap[V any, P cmp.Ordered] struct {
	e    engine[V, P]
	opts Options
}

// New returns an empty heap holding up to capacity items.
//
// Errors: ErrBadCapacity, ErrBadArity, ErrOptionViolation.
func New[V any, P cmp.Ordered](capacity int, opts ...Option) (*Heap[V, P], error) {
	o, err := resolve(capacity, opts)
	if err != nil {
		return nil, err
	}

	return &Heap[V, P]{e: newEngine[V, P](capacity, o), opts: o}, nil
}

// Enqueue inserts v with priority p and swims it into place.
// Returns ErrFullQueue on a full fixed-capacity heap.
func (h *Heap[V, P]) Enqueue(v V, p P) error {
	if h.e.n == h.e.capacity() {
		if !h.opts.Growth {
			return fmt.Errorf("%w: capacity %d", ErrFullQueue, h.e.capacity())
		}
		h.e.grow()
	}
	h.e.push(v, p)

	return nil
}

// Dequeue removes and returns the root value.
func (h *Heap[V, P]) Dequeue() (V, error) {
	v, _, err := h.DequeueItem()

	return v, err
}

// DequeueItem removes the root and returns both its value and priority.
func (h *Heap[V, P]) DequeueItem() (V, P, error) {
	if h.e.n == 0 {
		var v V
		var p P
		return v, p, ErrEmptyQueue
	}
	it := h.e.removeAt(1)

	return it.Value, it.Priority, nil
}

// Peek returns the root without removing it.
func (h *Heap[V, P]) Peek() (V, P, error) {
	if h.e.n == 0 {
		var v V
		var p P
		return v, p, ErrEmptyQueue
	}
	it := h.e.storage[1]

	return it.Value, it.Priority, nil
}

// Len returns the number of queued items.
func (h *Heap[V, P]) Len() int { return h.e.n }

// Cap returns the current capacity.
func (h *Heap[V, P]) Cap() int { return h.e.capacity() }

// IsEmpty reports whether the heap holds no items.
func (h *Heap[V, P]) IsEmpty() bool { return h.e.n == 0 }

// IsFull reports whether the next Enqueue would fail. Growable heaps are
// never full.
func (h *Heap[V, P]) IsFull() bool { return !h.opts.Growth && h.e.n == h.e.capacity() }

// Items returns a copy of the queued items in storage order (storage[1..N]).
func (h *Heap[V, P]) Items() []Item[V, P] {
	out := make([]Item[V, P], h.e.n)
	copy(out, h.e.storage[1:h.e.n+1])

	return out
}

// Ordered iterates the queued items from front to back, as successive
// Dequeue calls would return them, leaving the heap intact. Stopping early
// costs only the items seen. Mutating the heap during iteration is undefined.
func (h *Heap[V, P]) Ordered() iter.Seq2[V, P] { return h.e.ordered() }
