// Package hashtable implements resizable hash tables over caller-supplied
// hashing capabilities.
//
// Two families share one contract (Table[K, V]):
//
//   - Open[K, V] - open addressing with tombstone deletion.
//     NewLinear probes hc, hc+1, hc+2, …; NewTriangular probes
//     hc, hc+1, hc+3, hc+6, … (triangular offsets) and requires a
//     power-of-two capacity so that the sequence visits every slot.
//   - Chained[K, V] - separate chaining with owned singly-linked buckets.
//     NewChained pushes new entries at the chain head; NewSortedChained keeps
//     each chain in ascending key order and can stop a lookup early once the
//     chain passes the target key.
//
// Hashing is a capability, not a property of K: every constructor takes a
// Hasher[K]. Comparable[K]() derives one from hash/maphash for any comparable
// key; HasherFunc and ConstantHasher let tests inject weak or pathological
// hash functions without special key types.
//
// Growth and shrink policy:
//
//	open addressing:  grow   when live+tombstones reaches LoadFactor·M (default 0.75)
//	                  shrink when live ≤ ShrinkFactor·M (default 0.125), never below
//	                  the initial capacity; linear targets are forced odd
//	chaining:         grow   when live reaches LoadFactor·M (default 2.0 per bucket)
//	                  shrink when live ≤ ShrinkFactor·M (default 0.25)
//
// Every resize is a full rebuild into a fresh slot array; only live entries
// are carried over, so tombstones disappear. WithFixedCapacity disables
// resizing: an insert that would leave no empty slot then fails with
// ErrCapacityExhausted and the table is unchanged.
//
// Errors:
//
//	ErrCapacityTooSmall   – capacity below the family minimum (2 for open, 1 for chained).
//	ErrNotPowerOfTwo      – triangular probing with a non power-of-two capacity.
//	ErrNilHasher          – nil Hasher passed to a constructor.
//	ErrOptionViolation    – invalid option values (load/shrink factors).
//	ErrCapacityExhausted  – fixed-capacity table has no free slot left.
//
// Concurrency: tables are not safe for concurrent use. Iterating with All
// while mutating the table is undefined.
package hashtable
