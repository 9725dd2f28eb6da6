package Maps

// hnode is a node in the bucket trees of the hash tables. The nodes of a bucket form a red-black tree
// ordered by hash, then by keyOrder, then by serial.
// prev and next link all nodes in insertion order, they are only maintained by LinkedHashMap.
type hnode[K comparable, V any] struct {
	k          K
	v          V
	hash       uint64
	serial     uint64 //stable identity used when nothing else orders two keys.
	l, r, p    *hnode[K, V]
	black      bool
	prev, next *hnode[K, V]
}

func (n *hnode[K, V]) isLeaf() bool {
	return n.l == nil && n.r == nil
}

func (n *hnode[K, V]) isLeftChild() bool {
	return n.p != nil && n == n.p.l
}

func (n *hnode[K, V]) isRightChild() bool {
	return n.p != nil && n == n.p.r
}

func (n *hnode[K, V]) sibling() *hnode[K, V] {
	if n.isLeftChild() {
		return n.p.r
	} else if n.isRightChild() {
		return n.p.l
	}
	return nil
}

// predecessor of n, n must have a left child.
func (n *hnode[K, V]) predecessor() *hnode[K, V] {
	p := n.l
	for p.r != nil {
		p = p.r
	}
	return p
}

func isRed[K comparable, V any](n *hnode[K, V]) bool {
	return n != nil && !n.black
}

// rotateLeft lifts g.r above g.
func (u *table[K, V]) rotateLeft(g *hnode[K, V]) {
	p := g.r
	c := p.l
	g.r = c
	p.l = g
	u.afterRotate(g, p, c)
}

// rotateRight lifts g.l above g.
func (u *table[K, V]) rotateRight(g *hnode[K, V]) {
	p := g.l
	c := p.r
	g.l = c
	p.r = g
	u.afterRotate(g, p, c)
}

// afterRotate fixes the parent references after g lost its place to p. When g was the root of its
// bucket, p becomes the new root in the bucket array.
func (u *table[K, V]) afterRotate(g, p, c *hnode[K, V]) {
	p.p = g.p
	if g.isLeftChild() {
		g.p.l = p
	} else if g.isRightChild() {
		g.p.r = p
	} else {
		u.buckets[u.index(g.hash)] = p
	}
	if c != nil {
		c.p = g
	}
	g.p = p
}

// afterPut restores the red-black properties of the bucket of the new red node n.
func (u *table[K, V]) afterPut(n *hnode[K, V]) {
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
			if n.isLeftChild() {
				p.black = true
			} else {
				n.black = true
				u.rotateLeft(p)
			}
			u.rotateRight(g)
		} else {
			if n.isLeftChild() {
				n.black = true
				u.rotateRight(p)
			} else {
				p.black = true
			}
			u.rotateLeft(g)
		}
		return
	}
}

// afterRemove restores the red-black properties of the bucket after a node was unlinked. n is the
// replacement of the unlinked node, or the unlinked leaf itself.
func (u *table[K, V]) afterRemove(n *hnode[K, V]) {
	for {
		if isRed(n) {
			n.black = true
			return
		}
		p := n.p
		if p == nil {
			return
		}
		if p.l == nil || n.isLeftChild() {
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
