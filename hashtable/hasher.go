package hashtable

import "hash/maphash"

// Hasher supplies the hash function and equivalence relation for keys of
// type K. Equal keys must hash equally.
type Hasher[K any] interface {
	Hash(k K) uint64
	Equal(a, b K) bool
}

// comparableHasher hashes any comparable key with a per-table maphash seed.
type comparableHasher[K comparable] struct {
	seed maphash.Seed
}

// Comparable returns a Hasher for comparable keys backed by hash/maphash
// with a fresh random seed. Equal is consistent with ==.
func Comparable[K comparable]() Hasher[K] {
	return comparableHasher[K]{seed: maphash.MakeSeed()}
}

func (h comparableHasher[K]) Hash(k K) uint64 { return maphash.Comparable(h.seed, k) }
func (comparableHasher[K]) Equal(a, b K) bool { return a == b }

// HasherFunc adapts a plain hash function to a Hasher whose Equal is ==.
type HasherFunc[K comparable] func(K) uint64

func (f HasherFunc[K]) Hash(k K) uint64 { return f(k) }
func (HasherFunc[K]) Equal(a, b K) bool { return a == b }

// ConstantHasher maps every key to h. It turns every table into a single
// probe run or a single chain, which is useful for stress tests.
func ConstantHasher[K comparable](h uint64) Hasher[K] {
	return HasherFunc[K](func(K) uint64 { return h })
}
