package Trees

import (
	"errors"
	"math/rand"
	"slices"
	"testing"

	Go_Trees "github.com/g-m-twostay/go-trees"
)

var rg = *rand.New(rand.NewSource(0))

var (
	_ Tree[int, int] = (*BST[int, int])(nil)
	_ Tree[int, int] = (*AVL[int, int])(nil)
	_ Tree[int, int] = (*RBTree[int, int])(nil)
)

// kinds of trees tested by every test in this file.
var kinds = []struct {
	name string
	make func() Tree[int, int]
	// root is used to peek at the structure.
	root func(Tree[int, int]) *node[int, int]
}{
	{"BST", func() Tree[int, int] { return NewOrderedBST[int, int]() }, func(t Tree[int, int]) *node[int, int] { return t.(*BST[int, int]).root }},
	{"AVL", func() Tree[int, int] { return NewOrderedAVL[int, int]() }, func(t Tree[int, int]) *node[int, int] { return t.(*AVL[int, int]).root }},
	{"RBTree", func() Tree[int, int] { return NewOrderedRBTree[int, int]() }, func(t Tree[int, int]) *node[int, int] { return t.(*RBTree[int, int]).root }},
}

func build(t *testing.T, tree Tree[int, int], keys ...int) Tree[int, int] {
	t.Helper()
	for _, k := range keys {
		if _, _, err := tree.Add(k, k*10); err != nil {
			t.Fatalf("failed to add %d: %v", k, err)
		}
	}
	if err := tree.Check(); err != nil {
		t.Fatal(err)
	}
	return tree
}

func collect(seq func(func(int, int) bool)) (ks []int) {
	for k := range seq {
		ks = append(ks, k)
	}
	return
}

func TestTree_Balanced7(t *testing.T) {
	for _, kind := range kinds {
		tree := build(t, kind.make(), 10, 5, 15, 3, 7, 12, 18)
		if tree.Size() != 7 {
			t.Errorf("%s: size is %d, want 7", kind.name, tree.Size())
		}
		if tree.Height() != 3 {
			t.Errorf("%s: height is %d, want 3", kind.name, tree.Height())
		}
		if want := "10\n5 15\n3 7 12 18\n"; tree.String() != want {
			t.Errorf("%s: got\n%swant\n%s", kind.name, tree.String(), want)
		}
		if got := collect(tree.Traverse(LevelOrder)); !slices.Equal(got, []int{10, 5, 15, 3, 7, 12, 18}) {
			t.Errorf("%s: level order is %v", kind.name, got)
		}
		if !tree.IsComplete() {
			t.Errorf("%s: perfect tree isn't complete", kind.name)
		}
	}
}

func TestTree_Orders(t *testing.T) {
	want := map[Order][]int{
		PreOrder:   {10, 5, 3, 7, 15, 12, 18},
		InOrder:    {3, 5, 7, 10, 12, 15, 18},
		PostOrder:  {3, 7, 5, 12, 18, 15, 10},
		LevelOrder: {10, 5, 15, 3, 7, 12, 18},
	}
	for _, kind := range kinds {
		tree := build(t, kind.make(), 10, 5, 15, 3, 7, 12, 18)
		for o, w := range want {
			if got := collect(tree.Traverse(o)); !slices.Equal(got, w) {
				t.Errorf("%s: %v is %v, want %v", kind.name, o, got, w)
			}
			if got := collect(tree.TraverseRec(o)); !slices.Equal(got, w) {
				t.Errorf("%s: recursive %v is %v, want %v", kind.name, o, got, w)
			}
		}
	}
}

func TestTree_StopEarly(t *testing.T) {
	for _, kind := range kinds {
		tree := kind.make()
		for _, k := range rg.Perm(200) {
			tree.Add(k, k)
		}
		for _, o := range []Order{PreOrder, InOrder, PostOrder, LevelOrder} {
			full := collect(tree.Traverse(o))
			for _, seq := range []func(func(int, int) bool){tree.Traverse(o), tree.TraverseRec(o)} {
				var got []int
				for k := range seq {
					got = append(got, k)
					if len(got) == 17 {
						break
					}
				}
				if !slices.Equal(got, full[:17]) {
					t.Errorf("%s: stopped %v is %v, want %v", kind.name, o, got, full[:17])
				}
			}
		}
	}
}

func TestRBTree_Sequential(t *testing.T) {
	tree := NewOrderedRBTree[int, int]()
	for i := 1; i <= 19; i++ {
		tree.Add(i, i)
		if err := tree.Check(); err != nil {
			t.Fatalf("after adding %d: %v", i, err)
		}
	}
	if tree.Height() != 6 {
		t.Errorf("height is %d, want 6", tree.Height())
	}
	if tree.root.k != 8 {
		t.Errorf("root is %d, want 8", tree.root.k)
	}
}

func TestAVL_Sequential(t *testing.T) {
	tree := NewOrderedAVL[int, int]()
	for i := 1; i <= 19; i++ {
		tree.Add(i, i)
		if err := tree.Check(); err != nil {
			t.Fatalf("after adding %d: %v", i, err)
		}
	}
	if tree.Height() != 5 {
		t.Errorf("height is %d, want 5", tree.Height())
	}
}

func TestTree_RemoveLeaf(t *testing.T) {
	for _, kind := range kinds {
		tree := build(t, kind.make(), 7, 4, 9, 2, 5)
		if old, removed, err := tree.Remove(5); err != nil || !removed || old != 50 {
			t.Errorf("%s: remove returned %v,%v,%v", kind.name, old, removed, err)
		}
		if err := tree.Check(); err != nil {
			t.Error(kind.name, err)
		}
		if tree.Size() != 4 {
			t.Errorf("%s: size is %d, want 4", kind.name, tree.Size())
		}
		if want := "7\n4 9\n2 nil nil nil\n"; tree.String() != want {
			t.Errorf("%s: got\n%swant\n%s", kind.name, tree.String(), want)
		}
		root := kind.root(tree)
		if root.l.l.l != nil || root.l.l.r != nil || root.r.l != nil || root.r.r != nil {
			t.Errorf("%s: unexpected children", kind.name)
		}
	}
}

func TestTree_RemoveTwoChildren(t *testing.T) {
	for _, kind := range kinds {
		tree := build(t, kind.make(), 7, 4, 9, 2, 5)
		n := kind.root(tree).l
		tree.Remove(4)
		if err := tree.Check(); err != nil {
			t.Error(kind.name, err)
		}
		// the node that held 4 now holds its predecessor.
		if kind.root(tree).l != n || n.k != 2 || n.v != 20 {
			t.Errorf("%s: predecessor wasn't moved into the removed node", kind.name)
		}
		if want := "7\n2 9\nnil 5 nil nil\n"; tree.String() != want {
			t.Errorf("%s: got\n%swant\n%s", kind.name, tree.String(), want)
		}
	}
}

func TestTree_RemoveAndReAdd(t *testing.T) {
	for _, kind := range kinds {
		tree := build(t, kind.make(), 10, 5, 15, 3, 7, 12, 18)
		tree.Remove(7)
		if v, ok, _ := tree.Get(7); ok {
			t.Errorf("%s: removed key still has value %d", kind.name, v)
		}
		if ok, _ := tree.Contains(7); ok {
			t.Errorf("%s: removed key is still contained", kind.name)
		}
		if _, removed, _ := tree.Remove(7); removed {
			t.Errorf("%s: removed a key twice", kind.name)
		}
		if tree.Size() != 6 {
			t.Errorf("%s: size is %d, want 6", kind.name, tree.Size())
		}
		if _, replaced, err := tree.Add(7, 77); replaced || err != nil {
			t.Errorf("%s: re-adding returned %v,%v", kind.name, replaced, err)
		}
		if v, ok, _ := tree.Get(7); !ok || v != 77 {
			t.Errorf("%s: re-added key has %d,%v", kind.name, v, ok)
		}
	}
}

func TestTree_Overwrite(t *testing.T) {
	for _, kind := range kinds {
		tree := build(t, kind.make(), 10, 5, 15)
		before := tree.String()
		old, replaced, err := tree.Add(5, 1)
		if err != nil || !replaced || old != 50 {
			t.Errorf("%s: overwrite returned %v,%v,%v", kind.name, old, replaced, err)
		}
		if tree.Size() != 3 || tree.String() != before {
			t.Errorf("%s: overwrite changed the structure", kind.name)
		}
		if v, _, _ := tree.Get(5); v != 1 {
			t.Errorf("%s: value is %d, want 1", kind.name, v)
		}
	}
}

func TestTree_RoundTrip(t *testing.T) {
	for _, kind := range kinds {
		tree := kind.make()
		present := rg.Perm(300)[:150]
		for _, k := range present {
			tree.Add(k, k)
		}
		for k := 300; k < 340; k++ {
			size := tree.Size()
			tree.Add(k, k)
			tree.Remove(k)
			if err := tree.Check(); err != nil {
				t.Fatal(kind.name, err)
			}
			if tree.Size() != size {
				t.Errorf("%s: size changed from %d to %d", kind.name, size, tree.Size())
			}
		}
		for _, k := range present {
			if ok, _ := tree.Contains(k); !ok {
				t.Errorf("%s: lost key %d", kind.name, k)
			}
		}
	}
}

func TestTree_Random(t *testing.T) {
	const ops, keyRange = 4000, 500
	for _, kind := range kinds {
		tree := kind.make()
		content := make(map[int]int)
		for i := 0; i < ops; i++ {
			k := rg.Intn(keyRange)
			if rg.Intn(5) < 3 {
				_, in := content[k]
				if _, replaced, _ := tree.Add(k, i); replaced != in {
					t.Fatalf("%s: add %d replaced=%v, want %v", kind.name, k, replaced, in)
				}
				content[k] = i
			} else {
				v, in := content[k]
				if old, removed, _ := tree.Remove(k); removed != in || old != v {
					t.Fatalf("%s: remove %d returned %v,%v, want %v,%v", kind.name, k, old, removed, v, in)
				}
				delete(content, k)
			}
			if err := tree.Check(); err != nil {
				t.Fatalf("%s: after op %d on %d: %v", kind.name, i, k, err)
			}
		}
		if int(tree.Size()) != len(content) {
			t.Errorf("%s: tree size is %d, want %d", kind.name, tree.Size(), len(content))
		}
		if n := len(collect(tree.All())); n != len(content) {
			t.Errorf("%s: traversal visited %d nodes, want %d", kind.name, n, len(content))
		}
		for k, v := range content {
			if got, ok, _ := tree.Get(k); !ok || got != v {
				t.Errorf("%s: key %d has %d,%v, want %d", kind.name, k, got, ok, v)
			}
		}
		if h := tree.Height(); h != heightRec(kind.root(tree)) {
			t.Errorf("%s: iterative height %d, recursive height %d", kind.name, h, heightRec(kind.root(tree)))
		}
	}
}

func TestTree_Neighbours(t *testing.T) {
	for _, kind := range kinds {
		tree := kind.make()
		for _, k := range rg.Perm(50) {
			tree.Add(k*2, k)
		}
		for k := -1; k <= 100; k++ {
			p, ok := tree.Predecessor(k)
			switch {
			case k <= 0:
				if ok {
					t.Errorf("%s: %d has predecessor %d", kind.name, k, p)
				}
			case k%2 == 0 && p != k-2, k%2 != 0 && p != k-1:
				t.Errorf("%s: predecessor of %d is %d", kind.name, k, p)
			}
			s, ok := tree.Successor(k)
			switch {
			case k >= 98:
				if ok {
					t.Errorf("%s: %d has successor %d", kind.name, k, s)
				}
			case k%2 == 0 && s != k+2, k%2 != 0 && s != k+1:
				t.Errorf("%s: successor of %d is %d", kind.name, k, s)
			}
		}
		if m, _ := tree.Minimum(); m != 0 {
			t.Errorf("%s: minimum is %d", kind.name, m)
		}
		if m, _ := tree.Maximum(); m != 98 {
			t.Errorf("%s: maximum is %d", kind.name, m)
		}
		// walking the nodes both ways visits every key.
		var up, down []int
		first, last := kind.root(tree), kind.root(tree)
		for first.l != nil {
			first = first.l
		}
		for last.r != nil {
			last = last.r
		}
		for n := first; n != nil; n = successor(n) {
			up = append(up, n.k)
		}
		for n := last; n != nil; n = predecessor(n) {
			down = append(down, n.k)
		}
		slices.Reverse(down)
		if !slices.Equal(up, down) || len(up) != 50 {
			t.Errorf("%s: successor walk %v, predecessor walk %v", kind.name, up, down)
		}
	}
}

func TestTree_IsComplete(t *testing.T) {
	cases := []struct {
		keys []int
		want bool
	}{
		{nil, false},
		{[]int{10}, true},
		{[]int{10, 5}, true},
		{[]int{10, 5, 15, 3}, true},
		{[]int{10, 5, 15, 3, 7, 12}, true},
		{[]int{10, 5, 15, 7}, false},
		{[]int{10, 5, 15, 3, 7, 18}, false},
		{[]int{10, 5, 15, 3, 12}, false},
	}
	// a plain BST keeps the shape given by the insertion order.
	for _, c := range cases {
		tree := build(t, NewOrderedBST[int, int](), c.keys...)
		if tree.IsComplete() != c.want {
			t.Errorf("%v: IsComplete is %v, want %v", c.keys, !c.want, c.want)
		}
	}
	tree := build(t, NewOrderedBST[int, int](), 10, 15)
	if tree.IsComplete() {
		t.Error("a lone right child isn't complete")
	}
}

func TestTree_Empty(t *testing.T) {
	for _, kind := range kinds {
		tree := kind.make()
		if !tree.IsEmpty() || tree.Height() != 0 || tree.String() != "" {
			t.Errorf("%s: new tree isn't empty", kind.name)
		}
		if _, ok := tree.Minimum(); ok {
			t.Errorf("%s: empty tree has a minimum", kind.name)
		}
		if n := len(collect(tree.TraverseRec(LevelOrder))); n != 0 {
			t.Errorf("%s: empty tree visited %d nodes", kind.name, n)
		}
		build(t, tree, 3, 1, 2)
		tree.Clear()
		if !tree.IsEmpty() || tree.Check() != nil {
			t.Errorf("%s: cleared tree isn't empty", kind.name)
		}
	}
}

func TestTree_NilKey(t *testing.T) {
	cmpPtr := func(a, b *int) int { return *a - *b }
	for _, tree := range []Tree[*int, int]{NewBST[*int, int](cmpPtr), NewAVL[*int, int](cmpPtr), NewRBTree[*int, int](cmpPtr)} {
		one := 1
		tree.Add(&one, 1)
		if _, _, err := tree.Add(nil, 2); !errors.Is(err, Go_Trees.ErrInvalidArgument) {
			t.Errorf("add nil key returned %v", err)
		}
		var nke *Go_Trees.NilKeyError
		if _, _, err := tree.Remove(nil); !errors.As(err, &nke) || nke.Op != "Remove" {
			t.Errorf("remove nil key returned %v", err)
		}
		if _, _, err := tree.Get(nil); err == nil {
			t.Error("get nil key succeeded")
		}
		if _, err := tree.Contains(nil); err == nil {
			t.Error("contains nil key succeeded")
		}
		if _, ok := tree.Predecessor(nil); ok {
			t.Error("nil key has a predecessor")
		}
		if tree.Size() != 1 || tree.Check() != nil {
			t.Error("nil key changed the tree")
		}
	}
}

func TestTree_Check(t *testing.T) {
	avl := build(t, NewOrderedAVL[int, int](), 2, 1, 3)
	avl.root.h = 5
	if !errors.Is(avl.Check(), ErrCorrupt) || !avl.Corrupt() {
		t.Error("wrong height not detected")
	}
	rb := build(t, NewOrderedRBTree[int, int](), 2, 1, 3)
	rb.root.black = false
	if !rb.Corrupt() {
		t.Error("red root not detected")
	}
	bst := build(t, NewOrderedBST[int, int](), 2, 1, 3)
	bst.root.l.k = 5
	if !bst.Corrupt() {
		t.Error("wrong order not detected")
	}
	bst.root.l.k = 1
	bst.root.r.p = nil
	if !bst.Corrupt() {
		t.Error("broken parent reference not detected")
	}
}
