package Trees

import (
	"cmp"

	Go_Trees "github.com/g-m-twostay/go-trees"
	"golang.org/x/exp/constraints"
)

// balancer restores the balance of a tree after its structure changed.
type balancer[K, V any] interface {
	// afterAdd is called with the new leaf n, after it's linked and counted.
	afterAdd(u *base[K, V], n *node[K, V])
	// afterRemove is called with the node that took the place of the unlinked node, or with the
	// unlinked node itself when it had no child. In the latter case n.p still refers to its old parent.
	afterRemove(u *base[K, V], n *node[K, V])
	// check the invariants the balancer maintains.
	check(u *base[K, V]) error
}

// bst is a binary search tree with no repeated keys that calls bal after every structural change.
type bst[K, V any] struct {
	base[K, V]
	cmp  func(K, K) int
	keys Go_Trees.KeyCheck[K]
	bal  balancer[K, V]
}

func makeBST[K, V any](compare func(K, K) int, bal balancer[K, V]) bst[K, V] {
	return bst[K, V]{cmp: compare, keys: Go_Trees.NewKeyCheck[K](), bal: bal}
}

// find the node holding k, nil if k isn't in the tree.
// Time: O(D); Space: O(1)
func (u *bst[K, V]) find(k K) *node[K, V] {
	for cur := u.root; cur != nil; {
		if c := u.cmp(k, cur.k); c < 0 {
			cur = cur.l
		} else if c > 0 {
			cur = cur.r
		} else {
			return cur
		}
	}
	return nil
}

// Add [Tree.Add]
// Time: O(D) plus the balancer.
func (u *bst[K, V]) Add(k K, v V) (old V, replaced bool, err error) {
	if err = u.keys.Check("Add", k); err != nil {
		return
	}
	if u.root == nil {
		u.root = &node[K, V]{k: k, v: v, h: 1}
		u.size++
		u.bal.afterAdd(&u.base, u.root)
		return
	}
	var parent *node[K, V]
	c := 0
	for cur := u.root; cur != nil; {
		parent = cur
		if c = u.cmp(k, cur.k); c < 0 {
			cur = cur.l
		} else if c > 0 {
			cur = cur.r
		} else {
			old, replaced = cur.v, true
			cur.k, cur.v = k, v
			return
		}
	}
	n := &node[K, V]{k: k, v: v, p: parent, h: 1}
	if c < 0 {
		parent.l = n
	} else {
		parent.r = n
	}
	u.size++
	u.bal.afterAdd(&u.base, n)
	return
}

// Remove [Tree.Remove]
// Time: O(D) plus the balancer.
func (u *bst[K, V]) Remove(k K) (old V, removed bool, err error) {
	if err = u.keys.Check("Remove", k); err != nil {
		return
	}
	if n := u.find(k); n != nil {
		old, removed = n.v, true
		u.remove(n)
	}
	return
}

// remove n from the tree. A node with 2 children takes over the key and value of its predecessor,
// and the predecessor, which has at most 1 child, is unlinked instead.
func (u *bst[K, V]) remove(n *node[K, V]) {
	if n.hasTwoChildren() {
		pre := predecessor(n)
		n.k, n.v = pre.k, pre.v
		n = pre
	}
	replacement := n.l
	if replacement == nil {
		replacement = n.r
	}
	if replacement != nil {
		replacement.p = n.p
		if n.p == nil {
			u.root = replacement
		} else if n == n.p.l {
			n.p.l = replacement
		} else {
			n.p.r = replacement
		}
		u.size--
		u.bal.afterRemove(&u.base, replacement)
	} else if n.p == nil {
		u.root = nil
		u.size--
		u.bal.afterRemove(&u.base, n)
	} else {
		if n == n.p.l {
			n.p.l = nil
		} else {
			n.p.r = nil
		}
		u.size--
		u.bal.afterRemove(&u.base, n)
	}
}

// Get [Tree.Get]
// Time: O(D); Space: O(1)
func (u *bst[K, V]) Get(k K) (v V, ok bool, err error) {
	if err = u.keys.Check("Get", k); err != nil {
		return
	}
	if n := u.find(k); n != nil {
		return n.v, true, nil
	}
	return
}

// Contains [Tree.Contains]
// Time: O(D); Space: O(1)
func (u *bst[K, V]) Contains(k K) (bool, error) {
	if err := u.keys.Check("Contains", k); err != nil {
		return false, err
	}
	return u.find(k) != nil, nil
}

// Predecessor [Tree.Predecessor]. Nil keys have no predecessor.
// Time: O(D); Space: O(1)
func (u *bst[K, V]) Predecessor(k K) (K, bool) {
	if u.keys.Check("Predecessor", k) != nil {
		return *new(K), false
	}
	var p *node[K, V]
	if n := u.find(k); n != nil {
		p = predecessor(n)
	} else {
		for cur := u.root; cur != nil; {
			if u.cmp(k, cur.k) <= 0 {
				cur = cur.l
			} else {
				p = cur
				cur = cur.r
			}
		}
	}
	if p == nil {
		return *new(K), false
	}
	return p.k, true
}

// Successor [Tree.Successor]. Nil keys have no successor.
// Time: O(D); Space: O(1)
func (u *bst[K, V]) Successor(k K) (K, bool) {
	if u.keys.Check("Successor", k) != nil {
		return *new(K), false
	}
	var s *node[K, V]
	if n := u.find(k); n != nil {
		s = successor(n)
	} else {
		for cur := u.root; cur != nil; {
			if u.cmp(k, cur.k) < 0 {
				s = cur
				cur = cur.l
			} else {
				cur = cur.r
			}
		}
	}
	if s == nil {
		return *new(K), false
	}
	return s.k, true
}

// Check [Tree.Check]
// Time: O(n); Space: O(D)
func (u *bst[K, V]) Check() error {
	if err := u.checkLinks(); err != nil {
		return err
	}
	return u.bal.check(&u.base)
}

// Corrupt [Tree.Corrupt]
func (u *bst[K, V]) Corrupt() bool {
	return u.Check() != nil
}

// noBalance never changes the structure.
type noBalance[K, V any] struct{}

func (noBalance[K, V]) afterAdd(*base[K, V], *node[K, V])    {}
func (noBalance[K, V]) afterRemove(*base[K, V], *node[K, V]) {}
func (noBalance[K, V]) check(*base[K, V]) error              { return nil }

// BST is a plain binary search tree with no repeated keys. Its height depends on the order of insertion,
// so D is O(n) in the worst case.
type BST[K, V any] struct {
	bst[K, V]
}

// NewBST that orders keys with compare, which returns a negative number, 0, or a positive number
// when its first argument is less than, equal to, or greater than the second.
func NewBST[K, V any](compare func(K, K) int) *BST[K, V] {
	return &BST[K, V]{makeBST[K, V](compare, noBalance[K, V]{})}
}

// NewOrderedBST orders keys naturally.
func NewOrderedBST[K constraints.Ordered, V any]() *BST[K, V] {
	return NewBST[K, V](cmp.Compare[K])
}
