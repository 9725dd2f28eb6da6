package Sets

import (
	"iter"

	"github.com/g-m-twostay/go-trees/Maps"
)

// mapSet is a Set holding its elements as the keys of a map.
type mapSet[E any] struct {
	m Maps.Map[E, struct{}]
}

func (u mapSet[E]) Put(e E) (bool, error) {
	_, replaced, err := u.m.Put(e, struct{}{})
	return err == nil && !replaced, err
}

func (u mapSet[E]) Has(e E) (bool, error) {
	return u.m.HasKey(e)
}

func (u mapSet[E]) Remove(e E) (bool, error) {
	_, removed, err := u.m.Remove(e)
	return removed, err
}

func (u mapSet[E]) Size() uint {
	return u.m.Size()
}

func (u mapSet[E]) IsEmpty() bool {
	return u.m.IsEmpty()
}

func (u mapSet[E]) Clear() {
	u.m.Clear()
}

func (u mapSet[E]) Take() (e E, ok bool) {
	for e = range u.m.Keys() {
		return e, true
	}
	return
}

func (u mapSet[E]) All() iter.Seq[E] {
	return u.m.Keys()
}

func (u mapSet[E]) Range(f func(E) bool) {
	for e := range u.m.Keys() {
		if !f(e) {
			return
		}
	}
}
