package Sets

import (
	"slices"
	"testing"

	Go_Trees "github.com/g-m-twostay/go-trees"
	"github.com/g-m-twostay/go-trees/Maps"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	_ Set[int] = (*HashSet[int])(nil)
	_ Set[int] = (*LinkedHashSet[int])(nil)
	_ Set[int] = (*TreeSet[int])(nil)
)

var kinds = []struct {
	name string
	make func() Set[int]
}{
	{"HashSet", func() Set[int] { return NewHashSet[int]() }},
	{"LinkedHashSet", func() Set[int] { return NewLinkedHashSet[int](Maps.WithCapacity(2)) }},
	{"TreeSet", func() Set[int] { return NewOrderedTreeSet[int]() }},
	{"HashSetFunc", func() Set[int] { return NewHashSetFunc(func(e int) uint64 { return uint64(e % 3) }) }},
}

func TestSet_All(t *testing.T) {
	for _, kind := range kinds {
		S := kind.make()
		for i := range 10 {
			added, err := S.Put(i)
			require.NoError(t, err)
			assert.True(t, added, "%s: wrong put 1", kind.name)
			added, _ = S.Put(i)
			assert.False(t, added, "%s: wrong put 2", kind.name)
		}
		for i := range 10 {
			has, _ := S.Has(i)
			assert.True(t, has, "%s: wrong has 1", kind.name)
		}
		for i := range 5 {
			removed, _ := S.Remove(i)
			assert.True(t, removed, "%s: wrong remove 1", kind.name)
			removed, _ = S.Remove(i)
			assert.False(t, removed, "%s: wrong remove 2", kind.name)
		}
		for i := range 5 {
			has, _ := S.Has(i)
			assert.False(t, has, "%s: wrong has 2", kind.name)
		}
		assert.EqualValues(t, 5, S.Size(), kind.name)
		assert.ElementsMatch(t, []int{5, 6, 7, 8, 9}, slices.Collect(S.All()), kind.name)
		e, ok := S.Take()
		assert.True(t, ok, kind.name)
		assert.GreaterOrEqual(t, e, 5, kind.name)
		assert.EqualValues(t, 5, S.Size(), "%s: Take removed an element", kind.name)
		S.Clear()
		assert.True(t, S.IsEmpty(), kind.name)
		_, ok = S.Take()
		assert.False(t, ok, kind.name)
	}
}

func TestSet_Order(t *testing.T) {
	ts := NewOrderedTreeSet[int]()
	ls := NewLinkedHashSet[int]()
	in := []int{5, 3, 9, 1, 7}
	for _, e := range in {
		ts.Put(e)
		ls.Put(e)
	}
	assert.Equal(t, []int{1, 3, 5, 7, 9}, slices.Collect(ts.All()))
	assert.Equal(t, in, slices.Collect(ls.All()))
	first, _ := ts.Take()
	last, _ := ts.Last()
	assert.Equal(t, 1, first)
	assert.Equal(t, 9, last)
	oldest, _ := ls.Take()
	assert.Equal(t, 5, oldest)
	require.NoError(t, ts.Check())
	require.NoError(t, ls.Check())
}

func TestSet_Algebra(t *testing.T) {
	a, b := NewHashSet[int](), NewOrderedTreeSet[int]()
	for i := range 10 {
		a.Put(i)
	}
	for i := 5; i < 15; i++ {
		b.Put(i)
	}
	n, err := PutAll[int](a, b)
	require.NoError(t, err)
	assert.EqualValues(t, 5, n)
	assert.EqualValues(t, 15, a.Size())
	assert.False(t, Equal[int](a, b))

	n, err = RemoveAll[int](a, b)
	require.NoError(t, err)
	assert.EqualValues(t, 10, n)
	assert.ElementsMatch(t, []int{0, 1, 2, 3, 4}, slices.Collect(a.All()))

	even := Filter[int](b, func(e int) bool { return e%2 == 0 }, NewLinkedHashSet[int]())
	assert.Equal(t, []int{6, 8, 10, 12, 14}, slices.Collect(even.All()))

	c := NewHashSet[int]()
	PutAll[int](c, b)
	assert.True(t, Equal[int](b, c))
	require.NoError(t, c.Check())
}

func TestSet_Range(t *testing.T) {
	for _, kind := range kinds {
		S := kind.make()
		for i := range 10 {
			S.Put(i)
		}
		visited := 0
		S.Range(func(int) bool {
			visited++
			return visited < 3
		})
		assert.Equal(t, 3, visited, kind.name)
	}
}

func TestSet_NilElements(t *testing.T) {
	for name, S := range map[string]Set[*int]{
		"HashSet":       NewHashSet[*int](),
		"LinkedHashSet": NewLinkedHashSet[*int](),
		"TreeSet":       NewTreeSet[*int](func(a, b *int) int { return *a - *b }),
	} {
		added, err := S.Put(nil)
		assert.False(t, added, name)
		assert.ErrorIs(t, err, Go_Trees.ErrInvalidArgument, name)
		_, err = S.Has(nil)
		assert.Error(t, err, name)
		_, err = S.Remove(nil)
		assert.Error(t, err, name)
		assert.True(t, S.IsEmpty(), name)
	}
}
