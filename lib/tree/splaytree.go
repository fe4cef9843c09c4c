package tree

import (
	"errors"
	"sync/atomic"

	"github.com/qntx/xtree/lib/infra"
)

type splayNode[K infra.OrderedKey] struct {
	parent *splayNode[K]
	left   *splayNode[K]
	right  *splayNode[K]
	key    K
}

func (node *splayNode[K]) Key() K {
	return node.key
}

func (node *splayNode[K]) Left() SplayNode[K] {
	if node == nil || node.left == nil {
		return nil
	}
	return node.left
}

func (node *splayNode[K]) Right() SplayNode[K] {
	if node == nil || node.right == nil {
		return nil
	}
	return node.right
}

func (node *splayNode[K]) Parent() SplayNode[K] {
	if node == nil || node.parent == nil {
		return nil
	}
	return node.parent
}

func (node *splayNode[K]) isRoot() bool {
	return node != nil && node.parent == nil
}

func (node *splayNode[K]) Direction() Direction {
	if node == nil {
		// impossible run to here
		panic( /* debug assertion */ "[splay-tree] nil node without direction")
	}

	if node.isRoot() {
		return Root
	}
	if node == node.parent.left {
		return Left
	}
	return Right
}

func (node *splayNode[K]) fixLink() {
	if node.left != nil {
		node.left.parent = node
	}
	if node.right != nil {
		node.right.parent = node
	}
}

func (node *splayNode[K]) minimum() *splayNode[K] {
	aux := node
	for ; aux != nil && aux.left != nil; aux = aux.left {
	}
	return aux
}

func (node *splayNode[K]) maximum() *splayNode[K] {
	aux := node
	for ; aux != nil && aux.right != nil; aux = aux.right {
	}
	return aux
}

type splayTree[K infra.OrderedKey] struct {
	root          *splayNode[K]
	count         int64
	isDesc        bool
	splayOnSearch bool
}

func (tree *splayTree[K]) keyCompare(k1, k2 K) int64 {
	if k1 == k2 {
		return 0
	} else if k1 < k2 {
		if !tree.isDesc {
			return -1
		}
		return 1
	} else {
		if !tree.isDesc {
			return 1
		}
		return -1
	}
}

func (tree *splayTree[K]) Len() int64 {
	return atomic.LoadInt64(&tree.count)
}

func (tree *splayTree[K]) Root() SplayNode[K] {
	if tree.root == nil {
		return nil
	}
	return tree.root
}

// References:
// https://en.wikipedia.org/wiki/Splay_tree
// Every mutator finishes by splaying the node it touched up to the
// root, so recently accessed keys stay near the top. The per-rotation
// link surgery is shared with any BST that keeps parent pointers.

/*
		 |                         |
		 X                         S
		/ \     leftRotate(X)     / \
	   L   S    ============>    X   Sd
		  / \                   / \
		Sc   Sd                L   Sc
*/
func (tree *splayTree[K]) leftRotate(x *splayNode[K]) {
	if x == nil || x.right == nil {
		// exported primitive, a missing pivot child is a no-op
		return
	}

	p, y := x.parent, x.right
	dir := x.Direction()
	x.right, y.left = y.left, x

	x.fixLink()
	y.fixLink()

	switch dir {
	case Root:
		tree.root = y
	case Left:
		p.left = y
	case Right:
		p.right = y
	}
	y.parent = p
}

/*
			 |                         |
			 X                         S
			/ \     rightRotate(S)    / \
	       L   S    <============    X   R
			  / \                   / \
			Sc   Sd               Sc   Sd
*/
func (tree *splayTree[K]) rightRotate(x *splayNode[K]) {
	if x == nil || x.left == nil {
		// exported primitive, a missing pivot child is a no-op
		return
	}

	p, y := x.parent, x.left
	dir := x.Direction()
	x.left, y.right = y.right, x

	x.fixLink()
	y.fixLink()

	switch dir {
	case Root:
		tree.root = y
	case Left:
		p.left = y
	case Right:
		p.right = y
	}
	y.parent = p
}

/*
s1 (zig): X's parent P is the root, a single rotation ends the walk.

	    P            X
	   / \          / \
	  X   C  ===>  A   P
	 / \              / \
	A   B            B   C

s2 (zig-zig): X and P are same-side children. Rotate grandpa G first,
then P, both in the same direction.

	      G          P              X
	     / \        / \              \
	    P   D      X   G     ===>     P
	   / \        /   / \              \
	  X   C      A   C   D              G

s3 (zig-zag): X and P are opposite-side children. Rotate P first, then
G, in opposite directions. X ends up as the parent of both.

	    G              G             X
	   / \            / \           / \
	  P   D          X   D         P   G
	 / \       ===> / \
	A   X          P   B
	   / \
	  B   C

Each pass moves X up by one (s1) or two (s2, s3) levels, so the loop
terminates after O(depth) rotations with X as the root of whatever
subtree it was reachable in (its topmost parent-connected ancestor).
*/
func (tree *splayTree[K]) splay(x *splayNode[K]) {
	if x == nil {
		return
	}

	for !x.isRoot() {
		p := x.parent
		if /* s1 */ p.isRoot() {
			switch x.Direction() {
			case Left:
				tree.rightRotate(p)
			case Right:
				tree.leftRotate(p)
			}
			continue
		}

		g := p.parent
		switch xDir, pDir := x.Direction(), p.Direction(); {
		case /* s2 */ xDir == Left && pDir == Left:
			tree.rightRotate(g)
			tree.rightRotate(p)
		case /* s2 */ xDir == Right && pDir == Right:
			tree.leftRotate(g)
			tree.leftRotate(p)
		case /* s3 */ xDir == Right && pDir == Left:
			tree.leftRotate(p)
			tree.rightRotate(g)
		default: /* s3 */
			tree.rightRotate(p)
			tree.leftRotate(g)
		}
	}
}

// Plain BST descent. No mutation at all; splaying the hit is the
// caller's decision.
func (tree *splayTree[K]) lookup(key K) *splayNode[K] {
	for aux := tree.root; aux != nil; {
		res := tree.keyCompare(key, aux.key)
		if /* equal */ res == 0 {
			return aux
		} else /* less */ if res < 0 {
			aux = aux.left
		} else /* greater */ {
			aux = aux.right
		}
	}
	return nil
}

// Search returns the node holding key, or nil. By default the tree is
// left untouched; with WithSplayTreeSplayOnSearch the hit is splayed
// to the root (classic textbook behavior).
func (tree *splayTree[K]) Search(key K) SplayNode[K] {
	x := tree.lookup(key)
	if x == nil {
		return nil
	}
	if tree.splayOnSearch {
		tree.splay(x)
	}
	return x
}

// i1: Empty tree, the new node becomes the root directly.
// i2: Key already present, splay the existing node, content unchanged.
// i3: Attach under the last node of the failed descent, then splay.
// Postcondition: the node holding key is the root.
func (tree *splayTree[K]) Insert(key K) {
	if /* i1 */ tree.root == nil {
		tree.root = &splayNode[K]{key: key}
		atomic.AddInt64(&tree.count, 1)
		return
	}

	var x, y *splayNode[K] = tree.root, nil
	res := int64(0)
	for x != nil {
		y = x
		res = tree.keyCompare(key, x.key)
		if /* i2 */ res == 0 {
			tree.splay(x)
			return
		} else /* less */ if res < 0 {
			x = x.left
		} else /* greater */ {
			x = x.right
		}
	}

	z := &splayNode[K]{key: key, parent: y}
	if /* i3 */ res < 0 {
		y.left = z
	} else {
		y.right = z
	}
	atomic.AddInt64(&tree.count, 1)
	tree.splay(z)
}

/*
r1: Splay the doomed node Z to the root, then cut both subtrees loose
(their roots' parent links cleared, so any inner splay cannot walk
back across the boundary into Z).

r2: No left subtree, the right subtree is the whole remaining tree.

r3: Splay the predecessor (maximum of the left subtree) to the top of
that detached subtree; being its maximum it now has no right child, so
the right subtree hangs there and the predecessor is the new root.

	    Z               M
	   / \             / \
	  L   R   ===>   L'   R
	   \
	    M
*/
func (tree *splayTree[K]) removeNode(z *splayNode[K]) {
	tree.splay(z)

	l, r := z.left, z.right
	if /* r1 */ l != nil {
		l.parent = nil
	}
	if r != nil {
		r.parent = nil
	}

	if /* r2 */ l == nil {
		tree.root = r
	} else /* r3 */ {
		pred := l.maximum()
		tree.splay(pred)
		pred.right = r
		if r != nil {
			r.parent = pred
		}
		tree.root = pred
	}

	// Unlink node
	z.parent = nil
	z.left = nil
	z.right = nil
}

// Remove detaches the node holding key and returns it with all links
// cleared. An absent key leaves the tree untouched; the error only
// reports the miss.
func (tree *splayTree[K]) Remove(key K) (SplayNode[K], error) {
	if atomic.LoadInt64(&tree.count) <= 0 {
		return nil, errors.New("[splay-tree] empty tree to remove")
	}
	z := tree.lookup(key)
	if z == nil {
		return nil, errors.New("[splay-tree] key not found")
	}

	tree.removeNode(z)
	atomic.AddInt64(&tree.count, -1)
	return z, nil
}

// Splay moves node to the root. Callers must only pass nodes obtained
// from this tree; a nil node is a no-op.
func (tree *splayTree[K]) Splay(node SplayNode[K]) {
	if x, ok := node.(*splayNode[K]); ok {
		tree.splay(x)
	}
}

func (tree *splayTree[K]) LeftRotate(node SplayNode[K]) {
	if x, ok := node.(*splayNode[K]); ok {
		tree.leftRotate(x)
	}
}

func (tree *splayTree[K]) RightRotate(node SplayNode[K]) {
	if x, ok := node.(*splayNode[K]); ok {
		tree.rightRotate(x)
	}
}

// Inorder traversal to implement the DFS. Iterative with an explicit
// stack; a freshly built skewed tree can be deeper than log n before
// the splaying amortizes, recursion is not worth the stack risk.
func (tree *splayTree[K]) Foreach(action func(idx int64, key K) bool) {
	size := atomic.LoadInt64(&tree.count)
	aux := tree.root
	if size < 0 || aux == nil {
		return
	}

	stack := make([]*splayNode[K], 0, size>>1)
	defer func() {
		clear(stack)
	}()

	for ; aux != nil; aux = aux.left {
		stack = append(stack, aux)
	}

	idx := int64(0)
	for size = int64(len(stack)); size > 0; size = int64(len(stack)) {
		if aux = stack[size-1]; !action(idx, aux.key) {
			return
		}
		idx++
		stack = stack[:size-1]
		if aux.right != nil {
			for aux = aux.right; aux != nil; aux = aux.left {
				stack = append(stack, aux)
			}
		}
	}
}

// Inorder materializes the stored keys in ascending order (descending
// for a tree built with WithSplayTreeDesc).
func (tree *splayTree[K]) Inorder() []K {
	keys := make([]K, 0, atomic.LoadInt64(&tree.count))
	tree.Foreach(func(_ int64, key K) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}

func (tree *splayTree[K]) Release() {
	size := atomic.LoadInt64(&tree.count)
	aux := tree.root
	tree.root = nil
	if size < 0 || aux == nil {
		return
	}

	stack := make([]*splayNode[K], 0, size>>1)
	defer func() {
		clear(stack)
	}()

	for ; aux != nil; aux = aux.left {
		stack = append(stack, aux)
	}

	for size = int64(len(stack)); size > 0; size = int64(len(stack)) {
		aux = stack[size-1]
		r := aux.right
		aux.left, aux.right, aux.parent = nil, nil, nil
		atomic.AddInt64(&tree.count, -1)
		stack = stack[:size-1]
		if r != nil {
			for aux = r; aux != nil; aux = aux.left {
				stack = append(stack, aux)
			}
		}
	}
}

// FindMin walks the left spine below node. No splaying; promote the
// result explicitly if wanted.
func FindMin[K infra.OrderedKey](node SplayNode[K]) SplayNode[K] {
	x, ok := node.(*splayNode[K])
	if !ok || x == nil {
		return nil
	}
	return x.minimum()
}

// FindMax walks the right spine below node.
func FindMax[K infra.OrderedKey](node SplayNode[K]) SplayNode[K] {
	x, ok := node.(*splayNode[K])
	if !ok || x == nil {
		return nil
	}
	return x.maximum()
}

type SplayTreeOpt[K infra.OrderedKey] func(*splayTree[K])

func WithSplayTreeDesc[K infra.OrderedKey]() SplayTreeOpt[K] {
	return func(tree *splayTree[K]) {
		tree.isDesc = true
	}
}

// WithSplayTreeSplayOnSearch makes Search splay the found node to the
// root, trading lookup purity for the amortized bound on repeated
// searches.
func WithSplayTreeSplayOnSearch[K infra.OrderedKey]() SplayTreeOpt[K] {
	return func(tree *splayTree[K]) {
		tree.splayOnSearch = true
	}
}

func NewSplayTree[K infra.OrderedKey](opts ...SplayTreeOpt[K]) SplayTree[K] {
	tree := &splayTree[K]{
		count:         0,
		isDesc:        false,
		splayOnSearch: false,
	}

	for _, o := range opts {
		o(tree)
	}
	return tree
}
