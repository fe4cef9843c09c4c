package tree

// Compares with other in-memory ordered containers commonly reached
// for in Go: the gods red-black tree, the google generic B-tree and
// the GoLLRB left-leaning red-black tree. The splay tree's edge is
// skewed access patterns, so besides the usual insert benchmarks there
// is a hot-set search benchmark where a small fraction of the keys
// receives nearly all lookups.

import (
	randv2 "math/rand"
	"testing"

	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"
)

const benchHotSetSize = 64

func benchKeys(n int) []int {
	keys := make([]int, 0, n)
	for i := 0; i < n; i++ {
		keys = append(keys, randv2.Int())
	}
	return keys
}

func BenchmarkOrderedContainersInsert_Random(b *testing.B) {
	b.Run("splay tree", func(b *testing.B) {
		b.StopTimer()
		keys := benchKeys(b.N)
		tree := NewSplayTree[int]()
		b.StartTimer()
		for i := 0; i < b.N; i++ {
			tree.Insert(keys[i])
		}
	})
	b.Run("gods rbtree", func(b *testing.B) {
		b.StopTimer()
		keys := benchKeys(b.N)
		tree := redblacktree.NewWithIntComparator()
		b.StartTimer()
		for i := 0; i < b.N; i++ {
			tree.Put(keys[i], nil)
		}
	})
	b.Run("google btree", func(b *testing.B) {
		b.StopTimer()
		keys := benchKeys(b.N)
		tree := btree.NewG[int](32, func(x, y int) bool { return x < y })
		b.StartTimer()
		for i := 0; i < b.N; i++ {
			tree.ReplaceOrInsert(keys[i])
		}
	})
	b.Run("gollrb", func(b *testing.B) {
		b.StopTimer()
		keys := benchKeys(b.N)
		tree := llrb.New()
		b.StartTimer()
		for i := 0; i < b.N; i++ {
			tree.ReplaceOrInsert(llrb.Int(keys[i]))
		}
	})
}

func BenchmarkOrderedContainersInsert_Serial(b *testing.B) {
	b.Run("splay tree", func(b *testing.B) {
		tree := NewSplayTree[int]()
		for i := 0; i < b.N; i++ {
			tree.Insert(i)
		}
	})
	b.Run("gods rbtree", func(b *testing.B) {
		tree := redblacktree.NewWithIntComparator()
		for i := 0; i < b.N; i++ {
			tree.Put(i, nil)
		}
	})
	b.Run("google btree", func(b *testing.B) {
		tree := btree.NewG[int](32, func(x, y int) bool { return x < y })
		for i := 0; i < b.N; i++ {
			tree.ReplaceOrInsert(i)
		}
	})
	b.Run("gollrb", func(b *testing.B) {
		tree := llrb.New()
		for i := 0; i < b.N; i++ {
			tree.ReplaceOrInsert(llrb.Int(i))
		}
	})
}

func BenchmarkOrderedContainersSearch_HotSet(b *testing.B) {
	const total = 1 << 16
	keys := benchKeys(total)
	hot := keys[:benchHotSetSize]

	b.Run("splay tree", func(b *testing.B) {
		b.StopTimer()
		tree := NewSplayTree[int](WithSplayTreeSplayOnSearch[int]())
		for _, key := range keys {
			tree.Insert(key)
		}
		b.StartTimer()
		for i := 0; i < b.N; i++ {
			tree.Search(hot[i%benchHotSetSize])
		}
	})
	b.Run("gods rbtree", func(b *testing.B) {
		b.StopTimer()
		tree := redblacktree.NewWithIntComparator()
		for _, key := range keys {
			tree.Put(key, nil)
		}
		b.StartTimer()
		for i := 0; i < b.N; i++ {
			tree.Get(hot[i%benchHotSetSize])
		}
	})
	b.Run("google btree", func(b *testing.B) {
		b.StopTimer()
		tree := btree.NewG[int](32, func(x, y int) bool { return x < y })
		for _, key := range keys {
			tree.ReplaceOrInsert(key)
		}
		b.StartTimer()
		for i := 0; i < b.N; i++ {
			tree.Get(hot[i%benchHotSetSize])
		}
	})
	b.Run("gollrb", func(b *testing.B) {
		b.StopTimer()
		tree := llrb.New()
		for _, key := range keys {
			tree.ReplaceOrInsert(llrb.Int(key))
		}
		b.StartTimer()
		for i := 0; i < b.N; i++ {
			tree.Get(llrb.Int(hot[i%benchHotSetSize]))
		}
	})
}
