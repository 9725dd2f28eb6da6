package Trees

import (
	"errors"
	"fmt"
)

// ErrCorrupt is wrapped by every error returned from Check.
var ErrCorrupt = errors.New("corrupt tree")

// checkLinks verifies that parent references mirror child links, that keys are strictly increasing
// in in-order, and that size counts the nodes.
func (u *bst[K, V]) checkLinks() error {
	if u.root != nil && u.root.p != nil {
		return fmt.Errorf("%w: root %v has parent %v", ErrCorrupt, u.root.k, u.root.p.k)
	}
	var prev *node[K, V]
	var count uint
	var walk func(*node[K, V]) error
	walk = func(n *node[K, V]) error {
		if n == nil {
			return nil
		}
		if n.l != nil && n.l.p != n {
			return fmt.Errorf("%w: left child %v of %v doesn't refer back to it", ErrCorrupt, n.l.k, n.k)
		}
		if n.r != nil && n.r.p != n {
			return fmt.Errorf("%w: right child %v of %v doesn't refer back to it", ErrCorrupt, n.r.k, n.k)
		}
		if err := walk(n.l); err != nil {
			return err
		}
		if prev != nil && u.cmp(prev.k, n.k) >= 0 {
			return fmt.Errorf("%w: %v is visited after %v", ErrCorrupt, n.k, prev.k)
		}
		prev = n
		count++
		return walk(n.r)
	}
	if err := walk(u.root); err != nil {
		return err
	}
	if count != u.size {
		return fmt.Errorf("%w: size is %d but %d nodes are reachable", ErrCorrupt, u.size, count)
	}
	return nil
}

// checkHeights verifies the stored heights and the balance factor of every node below n, returning
// the height of n.
func checkHeights[K, V any](n *node[K, V]) (int, error) {
	if n == nil {
		return 0, nil
	}
	lh, err := checkHeights(n.l)
	if err != nil {
		return 0, err
	}
	rh, err := checkHeights(n.r)
	if err != nil {
		return 0, err
	}
	if h := 1 + max(lh, rh); n.h != h {
		return 0, fmt.Errorf("%w: %v stores height %d, actual %d", ErrCorrupt, n.k, n.h, h)
	}
	if f := lh - rh; f < -1 || f > 1 {
		return 0, fmt.Errorf("%w: %v has balance factor %d", ErrCorrupt, n.k, f)
	}
	return n.h, nil
}

// checkColors verifies that no red node has a red child and that every path from n down to a
// missing child has the same number of black nodes, returning that number.
func checkColors[K, V any](n *node[K, V]) (int, error) {
	if n == nil {
		return 1, nil
	}
	if isRed(n) && (isRed(n.l) || isRed(n.r)) {
		return 0, fmt.Errorf("%w: red %v has a red child", ErrCorrupt, n.k)
	}
	lb, err := checkColors(n.l)
	if err != nil {
		return 0, err
	}
	rb, err := checkColors(n.r)
	if err != nil {
		return 0, err
	}
	if lb != rb {
		return 0, fmt.Errorf("%w: %v has black heights %d on the left and %d on the right", ErrCorrupt, n.k, lb, rb)
	}
	if n.black {
		lb++
	}
	return lb, nil
}
