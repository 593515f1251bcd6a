// Package pq provides array-backed priority queues.
//
// Heap[V, P] is a 1-indexed d-ary heap (binary by default) over
// (value, priority) pairs:
//
//	storage[1..N], children of i at d·(i-1)+2 … d·i+1, parent at (i-2)/d+1
//
// For d = 2 this is the textbook layout: children 2i and 2i+1, parent i/2.
// Max order keeps the largest priority at the root; Min order mirrors the
// comparison.
//
// Indexed[V, P] adds a location map value → slot so an element already in
// the queue can be re-prioritised in O(log n) through DecreasePriority. The
// map is a hashtable.Open with linear probing. "Decrease" means "move toward
// the front": smaller for a Min queue, larger for a Max queue; a priority
// that does not strictly improve is rejected with ErrNotImproved.
//
// Ordered walks either queue in service order without consuming it, using a
// second heap over slot indices seeded with the root.
//
// Capacity is fixed at construction unless WithGrowth is given, in which
// case the backing array doubles on demand.
//
// Errors:
//
//	ErrBadCapacity  – capacity < 1 at construction.
//	ErrBadArity     – arity < 2.
//	ErrEmptyQueue   – Dequeue/Peek on an empty queue.
//	ErrFullQueue    – Enqueue on a full, fixed-capacity queue.
//	ErrDuplicate    – Indexed.Enqueue of a value already queued.
//	ErrNotFound     – Indexed operation on a value not queued.
//	ErrNotImproved  – DecreasePriority that does not move toward the front.
//
// A failed call never changes the queue. Queues are not safe for concurrent
// use.
//
// Complexity: Enqueue, Dequeue, DecreasePriority O(d·log_d n); Peek,
// Contains O(1).
package pq
