package Maps

import Go_Trees "github.com/g-m-twostay/go-trees"

// HashMap is a hash table that resolves collisions with a red-black tree per bucket, so a lookup is
// O(log n) even when every key shares a hash. Keys sharing a hash are ordered naturally when possible
// and otherwise by a stable but arbitrary per-map identity. All iterates by bucket.
type HashMap[K comparable, V any] struct {
	table[K, V]
}

// NewHashMap hashes keys with Go_Trees.HashAny, seeded by WithSeed.
func NewHashMap[K comparable, V any](opts ...Option) *HashMap[K, V] {
	o := makeOptions(opts)
	return &HashMap[K, V]{makeTable[K, V](Go_Trees.HashFunc[K](o.seed), o, false)}
}

// NewHashMapFunc hashes keys with hashF. Keys that are equal must have equal hashes.
func NewHashMapFunc[K comparable, V any](hashF func(K) uint64, opts ...Option) *HashMap[K, V] {
	return &HashMap[K, V]{makeTable[K, V](hashF, makeOptions(opts), false)}
}

// LinkedHashMap is a HashMap that also links its elements in insertion order, which is the order of All.
// Overwriting the value of a key keeps its place.
type LinkedHashMap[K comparable, V any] struct {
	table[K, V]
}

// NewLinkedHashMap is the LinkedHashMap equivalence of NewHashMap.
func NewLinkedHashMap[K comparable, V any](opts ...Option) *LinkedHashMap[K, V] {
	o := makeOptions(opts)
	return &LinkedHashMap[K, V]{makeTable[K, V](Go_Trees.HashFunc[K](o.seed), o, true)}
}

// NewLinkedHashMapFunc is the LinkedHashMap equivalence of NewHashMapFunc.
func NewLinkedHashMapFunc[K comparable, V any](hashF func(K) uint64, opts ...Option) *LinkedHashMap[K, V] {
	return &LinkedHashMap[K, V]{makeTable[K, V](hashF, makeOptions(opts), true)}
}

// First element in insertion order.
func (u *LinkedHashMap[K, V]) First() (k K, v V, ok bool) {
	if u.head != nil {
		return u.head.k, u.head.v, true
	}
	return
}

// Last element in insertion order.
func (u *LinkedHashMap[K, V]) Last() (k K, v V, ok bool) {
	if u.tail != nil {
		return u.tail.k, u.tail.v, true
	}
	return
}
