package tree

import "github.com/qntx/xtree/lib/infra"

// go install golang.org/x/tools/cmd/stringer@latest

//go:generate stringer -type=Direction
type Direction int8

const (
	Left Direction = -1 + iota
	Root
	Right
)

// SplayNode is a read-only view of a node. The linkage behind it is
// owned by the tree; holding a SplayNode across mutations is allowed,
// but its position in the tree may have changed.
type SplayNode[K infra.OrderedKey] interface {
	Key() K
	Left() SplayNode[K]
	Right() SplayNode[K]
	Parent() SplayNode[K]
}

// SplayTree is a mutable ordered key container. Every mutator splays
// the touched node to the root, which is what yields the amortized
// O(log n) bound; the rotation and splay primitives are exported so
// that callers wanting the classic splay-on-access behavior for plain
// lookups can request it explicitly (or via the constructor option).
//
// Not safe for concurrent mutation. Callers must serialize access.
type SplayTree[K infra.OrderedKey] interface {
	Len() int64
	Root() SplayNode[K]
	Insert(key K)
	Remove(key K) (SplayNode[K], error)
	Search(key K) SplayNode[K]
	Splay(node SplayNode[K])
	LeftRotate(node SplayNode[K])
	RightRotate(node SplayNode[K])
	Foreach(action func(idx int64, key K) bool)
	Inorder() []K
	Release()
}
