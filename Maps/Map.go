package Maps

import "iter"

// Map associates keys with values, keys aren't repeated. Keyed receivers that return an error only fail
// on nil keys, see Go_Trees.NilKeyError, and leave the map untouched when they do.
// A Map isn't safe for concurrent use.
type Map[K, V any] interface {
	//Put v under k, returning the old value if k was present.
	Put(k K, v V) (old V, replaced bool, err error)
	Get(k K) (V, bool, error)
	//Remove k, returning its value if it was present. Removing an absent key is a no-op.
	Remove(k K) (old V, removed bool, err error)
	HasKey(k K) (bool, error)
	//HasValue v, values are compared with reflect.DeepEqual.
	HasValue(v V) bool
	Size() uint
	IsEmpty() bool
	Clear()
	//All elements, in an order that depends on the implementation. Stop early by breaking
	//out of the range loop. The map must not be modified during the iteration.
	All() iter.Seq2[K, V]
	Keys() iter.Seq[K]
	//Range calls f on the elements in the order of All until f returns false.
	Range(f func(K, V) bool)
}
