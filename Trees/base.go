package Trees

import (
	"fmt"
	"iter"
	"strings"

	"github.com/g-m-twostay/go-trees/Queues"
)

const placeholder = "nil"

// base holds the nodes and the parts shared by all trees that don't need to compare keys.
type base[K, V any] struct {
	root *node[K, V]
	size uint
}

// Size [Tree.Size]
// Time: O(1); Space: O(1)
func (u *base[K, V]) Size() uint {
	return u.size
}

// IsEmpty [Tree.IsEmpty]
func (u *base[K, V]) IsEmpty() bool {
	return u.size == 0
}

// Clear [Tree.Clear]. The nodes are left to the garbage collector.
func (u *base[K, V]) Clear() {
	u.root, u.size = nil, 0
}

func (u *base[K, V]) first() *node[K, V] {
	cur := u.root
	for cur != nil && cur.l != nil {
		cur = cur.l
	}
	return cur
}

func (u *base[K, V]) last() *node[K, V] {
	cur := u.root
	for cur != nil && cur.r != nil {
		cur = cur.r
	}
	return cur
}

// Minimum [Tree.Minimum]
// Time: O(D); Space: O(1)
func (u *base[K, V]) Minimum() (k K, ok bool) {
	if n := u.first(); n != nil {
		return n.k, true
	}
	return
}

// Maximum [Tree.Maximum]
// Time: O(D); Space: O(1)
func (u *base[K, V]) Maximum() (k K, ok bool) {
	if n := u.last(); n != nil {
		return n.k, true
	}
	return
}

// Height [Tree.Height]. Counts levels of a level-order traversal.
// Time: O(n); Space: O(n)
func (u *base[K, V]) Height() (h int) {
	if u.root == nil {
		return 0
	}
	q := Queues.MakeArrayQueue[*node[K, V]](8)
	q.Push(u.root)
	for levelSize := uint(1); !q.Empty(); {
		n, _ := q.Pop()
		if n.l != nil {
			q.Push(n.l)
		}
		if n.r != nil {
			q.Push(n.r)
		}
		if levelSize--; levelSize == 0 {
			levelSize = q.Size()
			h++
		}
	}
	return
}

// heightRec is the recursive equivalent of Height.
func heightRec[K, V any](n *node[K, V]) int {
	if n == nil {
		return 0
	}
	return 1 + max(heightRec(n.l), heightRec(n.r))
}

// IsComplete [Tree.IsComplete]
// Time: O(n); Space: O(n)
func (u *base[K, V]) IsComplete() bool {
	if u.root == nil {
		return false
	}
	q := Queues.MakeArrayQueue[*node[K, V]](8)
	q.Push(u.root)
	leaf := false //once set, every node left in the level-order must be a leaf.
	for !q.Empty() {
		n, _ := q.Pop()
		if leaf && !n.isLeaf() {
			return false
		}
		if n.l != nil {
			q.Push(n.l)
		} else if n.r != nil {
			return false
		}
		if n.r != nil {
			q.Push(n.r)
		} else {
			leaf = true
		}
	}
	return true
}

// Traverse [Tree.Traverse]
// Time: O(n) for the whole sequence; Space: O(D), O(n) for LevelOrder.
func (u *base[K, V]) Traverse(o Order) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if u.root == nil {
			return
		}
		switch o {
		case PreOrder:
			u.preOrder(yield)
		case InOrder:
			u.inOrder(yield)
		case PostOrder:
			u.postOrder(yield)
		case LevelOrder:
			u.levelOrder(yield)
		}
	}
}

// All [Tree.All]
func (u *base[K, V]) All() iter.Seq2[K, V] {
	return u.Traverse(InOrder)
}

// Keys [Tree.Keys]
func (u *base[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range u.Traverse(InOrder) {
			if !yield(k) {
				return
			}
		}
	}
}

func (u *base[K, V]) preOrder(yield func(K, V) bool) {
	for st := []*node[K, V]{u.root}; len(st) > 0; {
		n := st[len(st)-1]
		st = st[:len(st)-1]
		if !yield(n.k, n.v) {
			return
		}
		if n.r != nil {
			st = append(st, n.r)
		}
		if n.l != nil {
			st = append(st, n.l)
		}
	}
}

func (u *base[K, V]) inOrder(yield func(K, V) bool) {
	var st []*node[K, V]
	for cur := u.root; cur != nil; cur = cur.l {
		st = append(st, cur)
	}
	for len(st) > 0 {
		n := st[len(st)-1]
		st = st[:len(st)-1]
		if !yield(n.k, n.v) {
			return
		}
		for cur := n.r; cur != nil; cur = cur.l {
			st = append(st, cur)
		}
	}
}

// postOrder pops a node once it's a leaf or the node popped before it is its child.
func (u *base[K, V]) postOrder(yield func(K, V) bool) {
	var prev *node[K, V]
	for st := []*node[K, V]{u.root}; len(st) > 0; {
		top := st[len(st)-1]
		if top.isLeaf() || (prev != nil && prev.p == top) {
			st = st[:len(st)-1]
			if !yield(top.k, top.v) {
				return
			}
			prev = top
		} else {
			if top.r != nil {
				st = append(st, top.r)
			}
			if top.l != nil {
				st = append(st, top.l)
			}
		}
	}
}

func (u *base[K, V]) levelOrder(yield func(K, V) bool) {
	q := Queues.MakeArrayQueue[*node[K, V]](8)
	q.Push(u.root)
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

// TraverseRec [Tree.TraverseRec]. Recursive.
// Time: O(n) for the whole sequence, O(n*D) for LevelOrder; Space: O(D)
func (u *base[K, V]) TraverseRec(o Order) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		switch o {
		case PreOrder:
			preOrderRec(u.root, yield)
		case InOrder:
			inOrderRec(u.root, yield)
		case PostOrder:
			postOrderRec(u.root, yield)
		case LevelOrder:
			for d, h := 0, heightRec(u.root); d < h; d++ {
				if !levelRec(u.root, d, yield) {
					return
				}
			}
		}
	}
}

// The recursive traversals return false as soon as yield did, which unwinds every call in progress.

func preOrderRec[K, V any](n *node[K, V], yield func(K, V) bool) bool {
	return n == nil || (yield(n.k, n.v) && preOrderRec(n.l, yield) && preOrderRec(n.r, yield))
}

func inOrderRec[K, V any](n *node[K, V], yield func(K, V) bool) bool {
	return n == nil || (inOrderRec(n.l, yield) && yield(n.k, n.v) && inOrderRec(n.r, yield))
}

func postOrderRec[K, V any](n *node[K, V], yield func(K, V) bool) bool {
	return n == nil || (postOrderRec(n.l, yield) && postOrderRec(n.r, yield) && yield(n.k, n.v))
}

// levelRec yields the nodes at depth d below n, from left to right.
func levelRec[K, V any](n *node[K, V], d int, yield func(K, V) bool) bool {
	if n == nil {
		return true
	} else if d == 0 {
		return yield(n.k, n.v)
	}
	return levelRec(n.l, d-1, yield) && levelRec(n.r, d-1, yield)
}

// String [Tree.String]. Every level down to the height of the tree is one line, every position
// of the level is one token separated by a space, with "nil" for positions without a node.
// Time: O(2^D)
func (u *base[K, V]) String() string {
	sb := new(strings.Builder)
	level := []*node[K, V]{u.root}
	for d, h := 0, u.Height(); d < h; d++ {
		next := make([]*node[K, V], 0, len(level)<<1)
		for i, n := range level {
			if i > 0 {
				sb.WriteByte(' ')
			}
			if n == nil {
				sb.WriteString(placeholder)
				next = append(next, nil, nil)
			} else {
				fmt.Fprint(sb, n.k)
				next = append(next, n.l, n.r)
			}
		}
		sb.WriteByte('\n')
		level = next
	}
	return sb.String()
}
