package Trees

import (
	"cmp"

	"golang.org/x/exp/constraints"
)

// AVL is a binary search tree with no repeated keys. It maintains balance through rotations by
// keeping the heights of the two subtrees of every node within 1 of each other.
// The worst case height of the tree is less than 1.44*log2(n+2)-0.33, so D is O(log n).
// Every node stores its height, the additional memory cost is size(int)*n.
type AVL[K, V any] struct {
	bst[K, V]
}

// NewAVL that orders keys with compare, see [NewBST].
func NewAVL[K, V any](compare func(K, K) int) *AVL[K, V] {
	return &AVL[K, V]{makeBST[K, V](compare, avlBalance[K, V]{})}
}

// NewOrderedAVL orders keys naturally.
func NewOrderedAVL[K constraints.Ordered, V any]() *AVL[K, V] {
	return NewAVL[K, V](cmp.Compare[K])
}

// height of n, 0 for nil.
func height[K, V any](n *node[K, V]) int {
	if n == nil {
		return 0
	}
	return n.h
}

func updateHeight[K, V any](n *node[K, V]) {
	n.h = 1 + max(height(n.l), height(n.r))
}

func balanceFactor[K, V any](n *node[K, V]) int {
	return height(n.l) - height(n.r)
}

func isBalanced[K, V any](n *node[K, V]) bool {
	f := balanceFactor(n)
	return -1 <= f && f <= 1
}

// tallerChild of n. Ties go to the child on the same side as n is to its parent.
func tallerChild[K, V any](n *node[K, V]) *node[K, V] {
	if lh, rh := height(n.l), height(n.r); lh > rh {
		return n.l
	} else if lh < rh {
		return n.r
	} else if n.isLeftChild() {
		return n.l
	}
	return n.r
}

type avlBalance[K, V any] struct{}

// afterAdd walks up from the parent of n. The first unbalanced ancestor is the only one that can
// be, rebalancing it restores the height it had before the insertion.
func (avlBalance[K, V]) afterAdd(u *base[K, V], n *node[K, V]) {
	for n = n.p; n != nil; n = n.p {
		if isBalanced(n) {
			updateHeight(n)
		} else {
			avlRebalance(u, n)
			break
		}
	}
}

// afterRemove walks up from the parent of n all the way to the root, since rebalancing a subtree
// after a removal can shorten it and unbalance an ancestor.
func (avlBalance[K, V]) afterRemove(u *base[K, V], n *node[K, V]) {
	for n = n.p; n != nil; n = n.p {
		if isBalanced(n) {
			updateHeight(n)
		} else {
			avlRebalance(u, n)
		}
	}
}

func (avlBalance[K, V]) check(u *base[K, V]) error {
	_, err := checkHeights(u.root)
	return err
}

// avlRebalance the unbalanced g by one of the LL, LR, RR, RL rotations.
func avlRebalance[K, V any](u *base[K, V], g *node[K, V]) {
	p := tallerChild(g)
	n := tallerChild(p)
	if p.isLeftChild() {
		if n.isRightChild() { //LR
			avlRotateLeft(u, p)
		}
		avlRotateRight(u, g) //LL
	} else {
		if n.isLeftChild() { //RL
			avlRotateRight(u, p)
		}
		avlRotateLeft(u, g) //RR
	}
}

// avlRotateLeft rotates and updates the heights, g first as it ends up below its old child.
func avlRotateLeft[K, V any](u *base[K, V], g *node[K, V]) {
	p := g.r
	u.rotateLeft(g)
	updateHeight(g)
	updateHeight(p)
}

func avlRotateRight[K, V any](u *base[K, V], g *node[K, V]) {
	p := g.l
	u.rotateRight(g)
	updateHeight(g)
	updateHeight(p)
}
