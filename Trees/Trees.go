package Trees

import "iter"

// Tree represents a binary search tree mapping keys of type K to values of type V.
// Receivers that have a bool as a second return value indicate whether
// the first return value is defined. For example, if calling Minimum on
// an empty tree, the return value will be (x K, false bool). In this
// case the value of x is the zero value and shouldn't be used.
// Keyed receivers that return an error only fail on invalid keys, see [Go_Trees.NilKeyError],
// and leave the tree untouched when they do.
// Methods implemented recursively are noted, otherwise they are implemented iteratively.
// A Tree isn't safe for concurrent use.
type Tree[K, V any] interface {
	//Add k with value v. If k is already present, both the stored key and value are
	//overwritten, the old value is returned with replaced==true, and the structure doesn't change.
	Add(k K, v V) (old V, replaced bool, err error)
	//Remove k. Removing an absent key is a no-op that returns removed==false.
	Remove(k K) (old V, removed bool, err error)
	//Get the value stored under k.
	Get(k K) (V, bool, error)
	//Contains k.
	Contains(k K) (bool, error)
	//Minimum key of the tree.
	Minimum() (K, bool)
	//Maximum key of the tree.
	Maximum() (K, bool)
	//Predecessor returns the greatest key less than k.
	Predecessor(k K) (K, bool)
	//Successor returns the smallest key greater than k.
	Successor(k K) (K, bool)
	//Size of the tree.
	Size() uint
	IsEmpty() bool
	Clear()
	//Height of the tree, 0 for an empty tree and 1 for a single node.
	Height() int
	//IsComplete reports whether the tree is a complete binary tree.
	IsComplete() bool
	//Traverse returns the elements in the given order, lazily. Stop early by breaking out of the
	//range loop. The tree must not be modified during the iteration.
	Traverse(o Order) iter.Seq2[K, V]
	//TraverseRec is the recursive equivalent of Traverse.
	TraverseRec(o Order) iter.Seq2[K, V]
	//All elements in key order.
	All() iter.Seq2[K, V]
	//Keys in key order.
	Keys() iter.Seq[K]
	//Check returns the first violated structural invariant of the tree, nil if there is none.
	Check() error
	//Corrupt returns whether the tree has corrupt structures, when the value
	//at some node violates the properties of that specific implementation.
	Corrupt() bool
	//String renders the tree level by level for debugging.
	String() string
}

// Order of a traversal.
type Order byte

const (
	PreOrder Order = iota
	InOrder
	PostOrder
	LevelOrder
)

func (o Order) String() string {
	switch o {
	case PreOrder:
		return "pre-order"
	case InOrder:
		return "in-order"
	case PostOrder:
		return "post-order"
	case LevelOrder:
		return "level-order"
	}
	return "unknown order"
}
