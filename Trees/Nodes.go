package Trees

// A node in the trees of this package.
// l and r are owned by the node, p is a back reference to the owner of the node and is nil only for the root.
// h is only maintained by AVL and black only by RBTree; a new node is red.
type node[K, V any] struct {
	k     K
	v     V
	l, r  *node[K, V]
	p     *node[K, V]
	h     int
	black bool
}

func (n *node[K, V]) isLeaf() bool {
	return n.l == nil && n.r == nil
}

func (n *node[K, V]) hasTwoChildren() bool {
	return n.l != nil && n.r != nil
}

func (n *node[K, V]) isLeftChild() bool {
	return n.p != nil && n == n.p.l
}

func (n *node[K, V]) isRightChild() bool {
	return n.p != nil && n == n.p.r
}

// sibling of n, nil for the root.
func (n *node[K, V]) sibling() *node[K, V] {
	if n.isLeftChild() {
		return n.p.r
	} else if n.isRightChild() {
		return n.p.l
	}
	return nil
}

// predecessor of n in in-order, nil if n holds the smallest key.
// Time: O(D); Space: O(1)
func predecessor[K, V any](n *node[K, V]) *node[K, V] {
	if n == nil {
		return nil
	}
	if p := n.l; p != nil {
		for p.r != nil {
			p = p.r
		}
		return p
	}
	for n.p != nil && n == n.p.l {
		n = n.p
	}
	return n.p
}

// successor of n in in-order, nil if n holds the largest key.
// Time: O(D); Space: O(1)
func successor[K, V any](n *node[K, V]) *node[K, V] {
	if n == nil {
		return nil
	}
	if s := n.r; s != nil {
		for s.l != nil {
			s = s.l
		}
		return s
	}
	for n.p != nil && n == n.p.r {
		n = n.p
	}
	return n.p
}

// rotateLeft lifts g.r above g.
// Time: O(1); Space: O(1)
func (u *base[K, V]) rotateLeft(g *node[K, V]) {
	p := g.r
	c := p.l
	g.r = c
	p.l = g
	u.afterRotate(g, p, c)
}

// rotateRight lifts g.l above g.
// Time: O(1); Space: O(1)
func (u *base[K, V]) rotateRight(g *node[K, V]) {
	p := g.l
	c := p.r
	g.l = c
	p.r = g
	u.afterRotate(g, p, c)
}

// afterRotate fixes the parent references after g lost its place to p, c being the child that moved from p to g.
// p takes over g's slot in g's old parent, or the root.
func (u *base[K, V]) afterRotate(g, p, c *node[K, V]) {
	p.p = g.p
	if g.isLeftChild() {
		g.p.l = p
	} else if g.isRightChild() {
		g.p.r = p
	} else {
		u.root = p
	}
	if c != nil {
		c.p = g
	}
	g.p = p
}
