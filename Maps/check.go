package Maps

import (
	"errors"
	"fmt"
)

// ErrCorrupt is wrapped by every error returned from Check.
var ErrCorrupt = errors.New("corrupt hash table")

// Check returns the first violated invariant of the table, nil if there is none: every bucket is a
// red-black tree in bucket order whose nodes all index to it, the occupancy bits match the buckets,
// the size counts the nodes, and for linked tables the insertion order links every node once.
// Time: O(n + len(buckets))
func (u *table[K, V]) Check() error {
	var count uint
	for i, root := range u.buckets {
		if (root != nil) != u.used.Get(i) {
			return fmt.Errorf("%w: occupancy bit %d is %v", ErrCorrupt, i, u.used.Get(i))
		}
		if root == nil {
			continue
		}
		if root.p != nil {
			return fmt.Errorf("%w: root of bucket %d has a parent", ErrCorrupt, i)
		}
		if !root.black {
			return fmt.Errorf("%w: root of bucket %d is red", ErrCorrupt, i)
		}
		var prev *hnode[K, V]
		var walk func(n *hnode[K, V]) (int, error)
		walk = func(n *hnode[K, V]) (int, error) {
			if n == nil {
				return 1, nil
			}
			if u.index(n.hash) != i {
				return 0, fmt.Errorf("%w: %v is in bucket %d instead of %d", ErrCorrupt, n.k, i, u.index(n.hash))
			}
			if (n.l != nil && n.l.p != n) || (n.r != nil && n.r.p != n) {
				return 0, fmt.Errorf("%w: a child of %v doesn't refer back to it", ErrCorrupt, n.k)
			}
			if isRed(n) && (isRed(n.l) || isRed(n.r)) {
				return 0, fmt.Errorf("%w: red %v has a red child", ErrCorrupt, n.k)
			}
			lb, err := walk(n.l)
			if err != nil {
				return 0, err
			}
			if prev != nil && compareNodes(prev, n) >= 0 {
				return 0, fmt.Errorf("%w: %v is visited after %v", ErrCorrupt, n.k, prev.k)
			}
			prev = n
			count++
			rb, err := walk(n.r)
			if err != nil {
				return 0, err
			}
			if lb != rb {
				return 0, fmt.Errorf("%w: %v has black heights %d and %d", ErrCorrupt, n.k, lb, rb)
			}
			if n.black {
				lb++
			}
			return lb, nil
		}
		if _, err := walk(root); err != nil {
			return err
		}
	}
	if count != u.size {
		return fmt.Errorf("%w: size is %d but %d nodes are reachable", ErrCorrupt, u.size, count)
	}
	if u.linked {
		var listed uint
		var prev *hnode[K, V]
		for n := u.head; n != nil; n = n.next {
			if n.prev != prev {
				return fmt.Errorf("%w: %v doesn't link back to the entry before it", ErrCorrupt, n.k)
			}
			if listed++; listed > u.size {
				return fmt.Errorf("%w: insertion order is longer than the size", ErrCorrupt)
			}
			prev = n
		}
		if prev != u.tail || listed != u.size {
			return fmt.Errorf("%w: insertion order has %d entries, size is %d", ErrCorrupt, listed, u.size)
		}
	}
	return nil
}

// Corrupt returns whether Check finds a violation.
func (u *table[K, V]) Corrupt() bool {
	return u.Check() != nil
}
