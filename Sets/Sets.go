package Sets

import "iter"

// Set of elements of type E, elements aren't repeated. Receivers that return an error only fail on nil
// elements, see Go_Trees.NilKeyError, and leave the set untouched when they do.
// A Set isn't safe for concurrent use.
type Set[E any] interface {
	//Put e, returns true if e wasn't present.
	Put(e E) (bool, error)
	Has(e E) (bool, error)
	//Remove e, returns true if e was present.
	Remove(e E) (bool, error)
	Size() uint
	IsEmpty() bool
	Clear()
	//Take an arbitrary element from the set without removing it.
	Take() (E, bool)
	//All elements, in an order that depends on the implementation.
	All() iter.Seq[E]
	//Range calls f on the elements in the order of All until f returns false.
	Range(f func(E) bool)
}

// PutAll elements of src into dst, returns the number of elements that were new to dst.
func PutAll[E any](dst, src Set[E]) (n uint, err error) {
	for e := range src.All() {
		var added bool
		if added, err = dst.Put(e); err != nil {
			return
		} else if added {
			n++
		}
	}
	return
}

// RemoveAll elements of src from dst, returns the number of elements removed. src must not be dst.
func RemoveAll[E any](dst, src Set[E]) (n uint, err error) {
	for e := range src.All() {
		var removed bool
		if removed, err = dst.Remove(e); err != nil {
			return
		} else if removed {
			n++
		}
	}
	return
}

// Equal reports whether a and b hold the same elements.
func Equal[E any](a, b Set[E]) bool {
	if a.Size() != b.Size() {
		return false
	}
	for e := range a.All() {
		if has, _ := b.Has(e); !has {
			return false
		}
	}
	return true
}

// Filter puts the elements of s satisfying keep into dst and returns dst.
func Filter[E any](s Set[E], keep func(E) bool, dst Set[E]) Set[E] {
	for e := range s.All() {
		if keep(e) {
			dst.Put(e)
		}
	}
	return dst
}
