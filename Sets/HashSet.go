package Sets

import "github.com/g-m-twostay/go-trees/Maps"

// HashSet is a Set atop a Maps.HashMap.
type HashSet[E comparable] struct {
	mapSet[E]
	hm *Maps.HashMap[E, struct{}]
}

// NewHashSet takes the same options as Maps.NewHashMap.
func NewHashSet[E comparable](opts ...Maps.Option) *HashSet[E] {
	m := Maps.NewHashMap[E, struct{}](opts...)
	return &HashSet[E]{mapSet[E]{m}, m}
}

// NewHashSetFunc hashes elements with hashF, see Maps.NewHashMapFunc.
func NewHashSetFunc[E comparable](hashF func(E) uint64, opts ...Maps.Option) *HashSet[E] {
	m := Maps.NewHashMapFunc[E, struct{}](hashF, opts...)
	return &HashSet[E]{mapSet[E]{m}, m}
}

// Check the underlying map.
func (u *HashSet[E]) Check() error {
	return u.hm.Check()
}

// LinkedHashSet is a Set atop a Maps.LinkedHashMap, it iterates in insertion order.
type LinkedHashSet[E comparable] struct {
	mapSet[E]
	hm *Maps.LinkedHashMap[E, struct{}]
}

func NewLinkedHashSet[E comparable](opts ...Maps.Option) *LinkedHashSet[E] {
	m := Maps.NewLinkedHashMap[E, struct{}](opts...)
	return &LinkedHashSet[E]{mapSet[E]{m}, m}
}

func NewLinkedHashSetFunc[E comparable](hashF func(E) uint64, opts ...Maps.Option) *LinkedHashSet[E] {
	m := Maps.NewLinkedHashMapFunc[E, struct{}](hashF, opts...)
	return &LinkedHashSet[E]{mapSet[E]{m}, m}
}

// Take the oldest element.
func (u *LinkedHashSet[E]) Take() (e E, ok bool) {
	e, _, ok = u.hm.First()
	return
}

func (u *LinkedHashSet[E]) Check() error {
	return u.hm.Check()
}
