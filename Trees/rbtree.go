package Trees

import (
	"cmp"
	"fmt"

	"golang.org/x/exp/constraints"
)

// RBTree is a red-black tree with no repeated keys. Every node is red or black, the root is
// black, a red node has no red child, and every path from a node down to a missing child passes
// through the same number of black nodes. The height is at most 2*log2(n+1).
// Compared to AVL, it does fewer rotations on Remove, at most 3, in exchange for a taller tree.
type RBTree[K, V any] struct {
	bst[K, V]
}

// NewRBTree that orders keys with compare, see [NewBST].
func NewRBTree[K, V any](compare func(K, K) int) *RBTree[K, V] {
	return &RBTree[K, V]{makeBST[K, V](compare, rbBalance[K, V]{})}
}

// NewOrderedRBTree orders keys naturally.
func NewOrderedRBTree[K constraints.Ordered, V any]() *RBTree[K, V] {
	return NewRBTree[K, V](cmp.Compare[K])
}

// isRed n, a missing node is black.
func isRed[K, V any](n *node[K, V]) bool {
	return n != nil && !n.black
}

type rbBalance[K, V any] struct{}

// afterAdd fixes a red n with a red parent. A red uncle means the 4-node in the equivalent 2-3-4 tree
// splits, which pushes the grandparent up as the new red node. Otherwise one or two rotations
// end it.
func (rbBalance[K, V]) afterAdd(u *base[K, V], n *node[K, V]) {
	for {
		p := n.p
		if p == nil {
			n.black = true
			return
		}
		if p.black {
			return
		}
		uncle, g := p.sibling(), p.p
		g.black = false
		if isRed(uncle) {
			p.black, uncle.black = true, true
			n = g
			continue
		}
		if p.isLeftChild() {
			if n.isLeftChild() { //LL
				p.black = true
			} else { //LR
				n.black = true
				u.rotateLeft(p)
			}
			u.rotateRight(g)
		} else {
			if n.isLeftChild() { //RL
				n.black = true
				u.rotateRight(p)
			} else { //RR
				p.black = true
			}
			u.rotateLeft(g)
		}
		return
	}
}

// afterRemove fixes the missing black of the unlinked node. n is either the replacement, which
// is red if there's one, or the unlinked leaf.
func (rbBalance[K, V]) afterRemove(u *base[K, V], n *node[K, V]) {
	for {
		if isRed(n) {
			n.black = true
			return
		}
		p := n.p
		if p == nil {
			return
		}
		// an unlinked leaf is no longer a child of p; if it was on the right, p.l can't be nil
		// since it carries the black height.
		left := p.l == nil || n.isLeftChild()
		if left {
			s := p.r
			if isRed(s) {
				s.black, p.black = true, false
				u.rotateLeft(p)
				s = p.r
			}
			if !isRed(s.l) && !isRed(s.r) {
				parentBlack := p.black
				p.black, s.black = true, false
				if parentBlack {
					n = p
					continue
				}
				return
			}
			if !isRed(s.r) {
				u.rotateRight(s)
				s = p.r
			}
			s.black = p.black
			s.r.black, p.black = true, true
			u.rotateLeft(p)
		} else {
			s := p.l
			if isRed(s) {
				s.black, p.black = true, false
				u.rotateRight(p)
				s = p.l
			}
			if !isRed(s.l) && !isRed(s.r) {
				parentBlack := p.black
				p.black, s.black = true, false
				if parentBlack {
					n = p
					continue
				}
				return
			}
			if !isRed(s.l) {
				u.rotateLeft(s)
				s = p.l
			}
			s.black = p.black
			s.l.black, p.black = true, true
			u.rotateRight(p)
		}
		return
	}
}

func (rbBalance[K, V]) check(u *base[K, V]) error {
	if isRed(u.root) {
		return fmt.Errorf("%w: root %v is red", ErrCorrupt, u.root.k)
	}
	_, err := checkColors(u.root)
	return err
}
