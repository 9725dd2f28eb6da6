package Maps

import (
	"cmp"
	"iter"
	"reflect"

	"github.com/g-m-twostay/go-trees/Trees"
	"golang.org/x/exp/constraints"
)

// TreeMap is a Map backed by a Trees.RBTree. All iterates in key order.
type TreeMap[K, V any] struct {
	t *Trees.RBTree[K, V]
}

// NewTreeMap orders keys with compare, see Trees.NewBST.
func NewTreeMap[K, V any](compare func(K, K) int) *TreeMap[K, V] {
	return &TreeMap[K, V]{Trees.NewRBTree[K, V](compare)}
}

// NewOrderedTreeMap orders keys naturally.
func NewOrderedTreeMap[K constraints.Ordered, V any]() *TreeMap[K, V] {
	return NewTreeMap[K, V](cmp.Compare[K])
}

func (u *TreeMap[K, V]) Put(k K, v V) (V, bool, error) {
	return u.t.Add(k, v)
}

func (u *TreeMap[K, V]) Get(k K) (V, bool, error) {
	return u.t.Get(k)
}

func (u *TreeMap[K, V]) Remove(k K) (V, bool, error) {
	return u.t.Remove(k)
}

func (u *TreeMap[K, V]) HasKey(k K) (bool, error) {
	return u.t.Contains(k)
}

// HasValue [Map.HasValue]
// Time: O(n)
func (u *TreeMap[K, V]) HasValue(v V) bool {
	for _, x := range u.t.All() {
		if reflect.DeepEqual(x, v) {
			return true
		}
	}
	return false
}

func (u *TreeMap[K, V]) Size() uint {
	return u.t.Size()
}

func (u *TreeMap[K, V]) IsEmpty() bool {
	return u.t.IsEmpty()
}

func (u *TreeMap[K, V]) Clear() {
	u.t.Clear()
}

func (u *TreeMap[K, V]) All() iter.Seq2[K, V] {
	return u.t.All()
}

func (u *TreeMap[K, V]) Keys() iter.Seq[K] {
	return u.t.Keys()
}

func (u *TreeMap[K, V]) Range(f func(K, V) bool) {
	for k, v := range u.t.All() {
		if !f(k, v) {
			return
		}
	}
}

// FirstKey is the smallest key.
func (u *TreeMap[K, V]) FirstKey() (K, bool) {
	return u.t.Minimum()
}

// LastKey is the largest key.
func (u *TreeMap[K, V]) LastKey() (K, bool) {
	return u.t.Maximum()
}

// Check the underlying tree, see Trees.Tree.
func (u *TreeMap[K, V]) Check() error {
	return u.t.Check()
}
