package Sets

import (
	"cmp"

	"github.com/g-m-twostay/go-trees/Maps"
	"golang.org/x/exp/constraints"
)

// TreeSet is a Set atop a red-black tree, see Maps.TreeMap. It iterates in ascending order.
type TreeSet[E any] struct {
	mapSet[E]
	tm *Maps.TreeMap[E, struct{}]
}

func NewTreeSet[E any](compare func(E, E) int) *TreeSet[E] {
	m := Maps.NewTreeMap[E, struct{}](compare)
	return &TreeSet[E]{mapSet[E]{m}, m}
}

func NewOrderedTreeSet[E constraints.Ordered]() *TreeSet[E] {
	return NewTreeSet[E](cmp.Compare[E])
}

// Take the smallest element.
// Time: O(log(n))
func (u *TreeSet[E]) Take() (E, bool) {
	return u.tm.FirstKey()
}

// Last is the largest element.
func (u *TreeSet[E]) Last() (E, bool) {
	return u.tm.LastKey()
}

func (u *TreeSet[E]) Check() error {
	return u.tm.Check()
}
