package Maps

import (
	"cmp"
	"iter"
	"reflect"

	Go_Trees "github.com/g-m-twostay/go-trees"
	"github.com/g-m-twostay/go-trees/Queues"
	"go.uber.org/zap"
)

// table is a hash table whose buckets are red-black trees instead of chains. The length of
// buckets is always a power of 2.
type table[K comparable, V any] struct {
	buckets    []*hnode[K, V]
	used       Go_Trees.BitArray //bit i is set iff buckets[i]!=nil
	size       uint
	serial     uint64 //serial of the next new node.
	hashF      func(K) uint64
	keys       Go_Trees.KeyCheck[K]
	loadFactor float64
	log        *zap.Logger
	linked     bool
	head, tail *hnode[K, V] //insertion order if linked.
}

func makeTable[K comparable, V any](hashF func(K) uint64, o options, linked bool) table[K, V] {
	n := o.bucketCount()
	return table[K, V]{
		buckets:    make([]*hnode[K, V], n),
		used:       Go_Trees.NewBitArray(n),
		hashF:      hashF,
		keys:       Go_Trees.NewKeyCheck[K](),
		loadFactor: o.loadFactor,
		log:        o.log,
		linked:     linked,
	}
}

// spread folds the high bits into the low bits used for the index.
func spread(h uint64) uint64 {
	return h ^ h>>32
}

func (u *table[K, V]) index(hash uint64) int {
	return int(spread(hash) & uint64(len(u.buckets)-1))
}

// Size of the map.
// Time: O(1); Space: O(1)
func (u *table[K, V]) Size() uint {
	return u.size
}

func (u *table[K, V]) IsEmpty() bool {
	return u.size == 0
}

// Clear all elements, keeps the length of the bucket array.
// Time: O(len(buckets))
func (u *table[K, V]) Clear() {
	clear(u.buckets)
	u.used.Reset()
	u.size = 0
	u.head, u.tail = nil, nil
}

// find the node with key k and hash h in the subtree of n. Where keys are tied, both subtrees are searched.
// Time: O(D), O(t) with t tied keys.
func (u *table[K, V]) find(n *hnode[K, V], h uint64, k K) *hnode[K, V] {
	for n != nil {
		if h != n.hash {
			if h < n.hash {
				n = n.l
			} else {
				n = n.r
			}
		} else if k == n.k {
			return n
		} else if c, ok := keyOrder(k, n.k); ok {
			if c < 0 {
				n = n.l
			} else {
				n = n.r
			}
		} else if f := u.find(n.r, h, k); f != nil {
			return f
		} else {
			n = n.l
		}
	}
	return nil
}

func (u *table[K, V]) getNode(k K) *hnode[K, V] {
	h := u.hashF(k)
	return u.find(u.buckets[u.index(h)], h, k)
}

// Put v under k. Returns the old value if k was present.
// Time: O(D) amortized.
func (u *table[K, V]) Put(k K, v V) (old V, replaced bool, err error) {
	if err = u.keys.Check("Put", k); err != nil {
		return
	}
	h := u.hashF(k)
	i := u.index(h)
	if u.buckets[i] == nil {
		n := u.newNode(k, v, h, nil)
		u.buckets[i] = n
		u.used.Set(i)
		u.added(n)
		return
	}
	var parent *hnode[K, V]
	c, searched := 0, false
	for cur := u.buckets[i]; cur != nil; {
		parent = cur
		if h != cur.hash {
			c = cmp.Compare(h, cur.hash)
		} else if k == cur.k {
			old, replaced = cur.v, true
			cur.k, cur.v = k, v
			return
		} else if o, ok := keyOrder(k, cur.k); ok {
			c = o
		} else {
			// k could be anywhere below cur, search once before tie breaking.
			if !searched {
				searched = true
				f := u.find(cur.l, h, k)
				if f == nil {
					f = u.find(cur.r, h, k)
				}
				if f != nil {
					old, replaced = f.v, true
					f.k, f.v = k, v
					return
				}
			}
			c = cmp.Compare(u.serial, cur.serial)
		}
		if c < 0 {
			cur = cur.l
		} else {
			cur = cur.r
		}
	}
	n := u.newNode(k, v, h, parent)
	if c < 0 {
		parent.l = n
	} else {
		parent.r = n
	}
	u.added(n)
	return
}

func (u *table[K, V]) newNode(k K, v V, h uint64, parent *hnode[K, V]) *hnode[K, V] {
	n := &hnode[K, V]{k: k, v: v, hash: h, serial: u.serial, p: parent}
	u.serial++
	if u.linked {
		if u.tail == nil {
			u.head = n
		} else {
			u.tail.next = n
			n.prev = u.tail
		}
		u.tail = n
	}
	return n
}

// added counts the new node n, balances its bucket, and grows the table if needed.
func (u *table[K, V]) added(n *hnode[K, V]) {
	u.size++
	u.afterPut(n)
	if float64(u.size) > float64(len(u.buckets))*u.loadFactor {
		u.grow()
	}
}

// grow doubles the bucket array. Every node is detached from its old bucket and inserted into its
// new bucket, keeping its serial and its place in the insertion order.
// Time: O(n*D)
func (u *table[K, V]) grow() {
	old := u.buckets
	u.buckets = make([]*hnode[K, V], len(old)<<1)
	u.used = Go_Trees.NewBitArray(len(u.buckets))
	q := Queues.MakeArrayQueue[*hnode[K, V]](8)
	for _, root := range old {
		if root == nil {
			continue
		}
		q.Push(root)
		for !q.Empty() {
			n, _ := q.Pop()
			if n.l != nil {
				q.Push(n.l)
			}
			if n.r != nil {
				q.Push(n.r)
			}
			u.place(n)
		}
	}
	u.log.Debug("grew bucket array",
		zap.Int("from", len(old)),
		zap.Int("to", len(u.buckets)),
		zap.Uint("size", u.size))
}

// place the detached node n into its bucket. Keys are known to be distinct.
func (u *table[K, V]) place(n *hnode[K, V]) {
	n.l, n.r, n.p, n.black = nil, nil, nil, false
	i := u.index(n.hash)
	if u.buckets[i] == nil {
		u.buckets[i] = n
		u.used.Set(i)
		u.afterPut(n)
		return
	}
	var parent *hnode[K, V]
	c := 0
	for cur := u.buckets[i]; cur != nil; {
		parent = cur
		if c = compareNodes(n, cur); c < 0 {
			cur = cur.l
		} else {
			cur = cur.r
		}
	}
	n.p = parent
	if c < 0 {
		parent.l = n
	} else {
		parent.r = n
	}
	u.afterPut(n)
}

// Remove k. Returns the value it held if k was present.
// Time: O(D)
func (u *table[K, V]) Remove(k K) (old V, removed bool, err error) {
	if err = u.keys.Check("Remove", k); err != nil {
		return
	}
	if n := u.getNode(k); n != nil {
		old, removed = n.v, true
		u.removeNode(n)
	}
	return
}

// removeNode unlinks n from its bucket. A node with 2 children takes over the entry of its predecessor,
// which is unlinked instead. For linked tables the insertion order follows the entries, not the nodes.
func (u *table[K, V]) removeNode(n *hnode[K, V]) {
	target := n
	if n.l != nil && n.r != nil {
		pre := n.predecessor()
		n.k, n.v, n.hash, n.serial = pre.k, pre.v, pre.hash, pre.serial
		n = pre
	}
	if u.linked {
		u.unlinkOrder(target, n)
	}
	replacement := n.l
	if replacement == nil {
		replacement = n.r
	}
	i := u.index(n.hash)
	if replacement != nil {
		replacement.p = n.p
		if n.p == nil {
			u.buckets[i] = replacement
		} else if n == n.p.l {
			n.p.l = replacement
		} else {
			n.p.r = replacement
		}
		u.size--
		u.afterRemove(replacement)
	} else if n.p == nil {
		u.buckets[i] = nil
		u.used.Clr(i)
		u.size--
		u.afterRemove(n)
	} else {
		if n == n.p.l {
			n.p.l = nil
		} else {
			n.p.r = nil
		}
		u.size--
		u.afterRemove(n)
	}
}

// unlinkOrder removes the entry that was in target from the insertion order, when the node removed is
// removed. If they differ, removed's entry now lives in target, so the two swap places in the list first.
func (u *table[K, V]) unlinkOrder(target, removed *hnode[K, V]) {
	if target != removed {
		target.prev, removed.prev = removed.prev, target.prev
		if target.prev == nil {
			u.head = target
		} else {
			target.prev.next = target
		}
		if removed.prev == nil {
			u.head = removed
		} else {
			removed.prev.next = removed
		}
		target.next, removed.next = removed.next, target.next
		if target.next == nil {
			u.tail = target
		} else {
			target.next.prev = target
		}
		if removed.next == nil {
			u.tail = removed
		} else {
			removed.next.prev = removed
		}
	}
	if removed.prev == nil {
		u.head = removed.next
	} else {
		removed.prev.next = removed.next
	}
	if removed.next == nil {
		u.tail = removed.prev
	} else {
		removed.next.prev = removed.prev
	}
	removed.prev, removed.next = nil, nil
}

// Get the value under k.
// Time: O(D)
func (u *table[K, V]) Get(k K) (v V, ok bool, err error) {
	if err = u.keys.Check("Get", k); err != nil {
		return
	}
	if n := u.getNode(k); n != nil {
		return n.v, true, nil
	}
	return
}

// HasKey k.
// Time: O(D)
func (u *table[K, V]) HasKey(k K) (bool, error) {
	if err := u.keys.Check("HasKey", k); err != nil {
		return false, err
	}
	return u.getNode(k) != nil, nil
}

// HasValue v, values are compared with reflect.DeepEqual.
// Time: O(n)
func (u *table[K, V]) HasValue(v V) bool {
	for _, x := range u.All() {
		if reflect.DeepEqual(x, v) {
			return true
		}
	}
	return false
}

// All elements. Linked tables give them in insertion order, others by bucket, each bucket in level-order.
// The map must not be modified during the iteration.
func (u *table[K, V]) All() iter.Seq2[K, V] {
	if u.linked {
		return func(yield func(K, V) bool) {
			for n := u.head; n != nil; n = n.next {
				if !yield(n.k, n.v) {
					return
				}
			}
		}
	}
	return func(yield func(K, V) bool) {
		q := Queues.MakeArrayQueue[*hnode[K, V]](8)
		for i := u.used.First(); i >= 0; i = u.used.Next(i + 1) {
			q.Push(u.buckets[i])
			for !q.Empty() {
				n, _ := q.Pop()
				if !yield(n.k, n.v) {
					return
				}
				if n.l != nil {
					q.Push(n.l)
				}
				if n.r != nil {
					q.Push(n.r)
				}
			}
		}
	}
}

// Keys in the order of All.
func (u *table[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range u.All() {
			if !yield(k) {
				return
			}
		}
	}
}

// Range calls f on the elements in the order of All until f returns false.
func (u *table[K, V]) Range(f func(K, V) bool) {
	for k, v := range u.All() {
		if !f(k, v) {
			return
		}
	}
}
