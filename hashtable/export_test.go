package hashtable

// SlotOf exposes the slot index holding k (or -1) to hashtable_test.
func (t *Open[K, V]) SlotOf(k K) int {
	i, _, _ := t.lookup(k)

	return i
}

// ChainOf exposes the keys of k's bucket, head to tail, to hashtable_test.
func (t *Chained[K, V]) ChainOf(k K) []K {
	var out []K
	for n := t.buckets[t.bucket(k)]; n != nil; n = n.next {
		out = append(out, n.Key)
	}

	return out
}
