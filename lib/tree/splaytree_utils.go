package tree

import (
	"errors"

	"github.com/qntx/xtree/lib/infra"
)

// splay tree rule validation utilities.

// BSTViolationValidate checks that the traversal yields exactly Len()
// keys in strictly monotonic order (ascending or descending, matching
// the tree's comparator direction). Strictness also proves keys are
// unique.
func BSTViolationValidate[K infra.OrderedKey](tree SplayTree[K]) error {
	keys := tree.Inorder()
	if int64(len(keys)) != tree.Len() {
		return errors.New("splay tree traversal size violation")
	}
	if len(keys) < 2 {
		return nil
	}

	asc := keys[0] < keys[1]
	for i := 1; i < len(keys); i++ {
		if keys[i] == keys[i-1] || (keys[i-1] < keys[i]) != asc {
			return errors.New("splay tree bst order violation")
		}
	}
	return nil
}

// LinkViolationValidate checks the structural invariants: the root has
// no parent, every non-nil child points back at its parent, and the
// number of reachable nodes equals Len() (which also rules out cycles,
// the walk is aborted once it has seen more nodes than Len()).
func LinkViolationValidate[K infra.OrderedKey](tree SplayTree[K]) error {
	root := tree.Root()
	if root == nil {
		if tree.Len() != 0 {
			return errors.New("splay tree node count violation")
		}
		return nil
	}
	if root.Parent() != nil {
		return errors.New("splay tree root parent violation")
	}

	size := tree.Len()
	stack := make([]SplayNode[K], 0, size>>1)
	stack = append(stack, root)

	visited := int64(0)
	for len(stack) > 0 {
		aux := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited++; visited > size {
			return errors.New("splay tree node count violation")
		}

		if l := aux.Left(); l != nil {
			if l.Parent() != aux {
				return errors.New("splay tree parent link violation")
			}
			stack = append(stack, l)
		}
		if r := aux.Right(); r != nil {
			if r.Parent() != aux {
				return errors.New("splay tree parent link violation")
			}
			stack = append(stack, r)
		}
	}
	if visited != size {
		return errors.New("splay tree node count violation")
	}
	return nil
}
