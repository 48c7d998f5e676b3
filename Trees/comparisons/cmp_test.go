package comparisons

import (
	"fmt"
	"math/rand"
	"slices"
	"testing"

	"github.com/alphadose/haxmap"
	"github.com/cornelk/hashmap"
	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/g-m-twostay/go-bitree/Trees"
	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"
)

// The BiTree never rebalances, so random inserts give it O(log n) expected
// depth while sorted inserts give it O(n); the balanced trees keep O(log n)
// either way and the hash maps don't order at all.
const (
	elementNum = 1 << 13
	valRange   = elementNum * 2
)

var rg = *rand.New(rand.NewSource(0))

type item string

func (a item) Less(b llrb.Item) bool {
	return a < b.(item)
}

func keys(n int, sorted bool) []string {
	a := make([]string, n)
	for i := range a {
		a[i] = fmt.Sprintf("v%06d", rg.Intn(valRange))
	}
	if sorted {
		slices.Sort(a)
	}
	return a
}

func TestAgreement(t *testing.T) {
	var bt Trees.BiTree
	ob := btree.NewG[string](8, btree.Less[string]())
	ol := llrb.New()
	or := redblacktree.NewWithStringComparator()
	hx := haxmap.New[string, struct{}]()
	hm := hashmap.New[string, struct{}]()

	a := keys(elementNum, false)
	for _, k := range a {
		if _, err := bt.Insert(k); err != nil {
			t.Fatal(err)
		}
		ob.ReplaceOrInsert(k)
		ol.ReplaceOrInsert(item(k))
		or.Put(k, struct{}{})
		hx.Set(k, struct{}{})
		hm.Set(k, struct{}{})
	}
	for _, k := range a[:elementNum/2] {
		if _, err := bt.Delete(k); err != nil {
			t.Fatal(err)
		}
		ob.Delete(k)
		ol.Delete(item(k))
		or.Remove(k)
		hx.Del(k)
		hm.Del(k)
	}
	if bt.Size() != ob.Len() || ob.Len() != ol.Len() || ol.Len() != or.Size() {
		t.Errorf("sizes differ: bitree %d, btree %d, llrb %d, rbtree %d", bt.Size(), ob.Len(), ol.Len(), or.Size())
	}
	for i := range valRange {
		k := fmt.Sprintf("v%06d", i)
		_, inHx := hx.Get(k)
		_, inHm := hm.Get(k)
		_, inOr := or.Get(k)
		want := ob.Has(k)
		if bt.Has(k) != want || ol.Has(item(k)) != want || inOr != want || inHx != want || inHm != want {
			t.Errorf("containers disagree on %q", k)
		}
	}
	var sorted []string
	ob.Ascend(func(k string) bool {
		sorted = append(sorted, k)
		return true
	})
	if got := slices.Collect(Trees.InOrder(bt.Root())); !slices.Equal(got, sorted) {
		t.Errorf("inorder walk differs from btree ascending order")
	}
}

func benchInsert(b *testing.B, sorted bool) {
	a := keys(elementNum, sorted)
	b.Run("BiTree", func(b *testing.B) {
		for range b.N {
			var t Trees.BiTree
			for _, k := range a {
				t.Insert(k)
			}
		}
	})
	b.Run("BTree", func(b *testing.B) {
		for range b.N {
			t := btree.NewG[string](32, btree.Less[string]())
			for _, k := range a {
				t.ReplaceOrInsert(k)
			}
		}
	})
	b.Run("LLRB", func(b *testing.B) {
		for range b.N {
			t := llrb.New()
			for _, k := range a {
				t.ReplaceOrInsert(item(k))
			}
		}
	})
	b.Run("RedBlack", func(b *testing.B) {
		for range b.N {
			t := redblacktree.NewWithStringComparator()
			for _, k := range a {
				t.Put(k, nil)
			}
		}
	})
}

func BenchmarkInsert_Random(b *testing.B) {
	benchInsert(b, false)
}

func BenchmarkInsert_Sorted(b *testing.B) {
	benchInsert(b, true)
}

func BenchmarkLookup(b *testing.B) {
	a := keys(elementNum, false)
	var bt Trees.BiTree
	ob := btree.NewG[string](32, btree.Less[string]())
	ol := llrb.New()
	hx := haxmap.New[string, struct{}]()
	hm := hashmap.New[string, struct{}]()
	for _, k := range a {
		bt.Insert(k)
		ob.ReplaceOrInsert(k)
		ol.ReplaceOrInsert(item(k))
		hx.Set(k, struct{}{})
		hm.Set(k, struct{}{})
	}
	b.Run("BiTree", func(b *testing.B) {
		for i := range b.N {
			bt.Has(a[i%elementNum])
		}
	})
	b.Run("BiTreeBFS", func(b *testing.B) {
		for i := range b.N {
			Trees.BFSSearch(bt.Root(), a[i%elementNum])
		}
	})
	b.Run("BTree", func(b *testing.B) {
		for i := range b.N {
			ob.Has(a[i%elementNum])
		}
	})
	b.Run("LLRB", func(b *testing.B) {
		for i := range b.N {
			ol.Has(item(a[i%elementNum]))
		}
	})
	b.Run("HaxMap", func(b *testing.B) {
		for i := range b.N {
			hx.Get(a[i%elementNum])
		}
	})
	b.Run("HashMap", func(b *testing.B) {
		for i := range b.N {
			hm.Get(a[i%elementNum])
		}
	})
}
