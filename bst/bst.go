package bst

import (
	"errors"
	"fmt"
)

// Sentinel errors for tree operations.
var (
	// ErrEmptyTree is returned by Min and Max on a tree with no nodes.
	ErrEmptyTree = errors.New("bst: empty tree")

	// ErrKeyNotFound is returned when an operation references an absent key.
	ErrKeyNotFound = errors.New("bst: key not found")

	// ErrDuplicateKey is returned by Insert for a key already present.
	ErrDuplicateKey = errors.New("bst: duplicate key")

	// ErrOrderViolation is returned by Validate when the BST ordering
	// invariant does not hold.
	ErrOrderViolation = errors.New("bst: ordering invariant violated")
)

// node is a single tree node. Nodes are never shared between trees.
type node struct {
	key         int64
	left, right *node
}

// Tree is an unbalanced binary search tree over int64 keys.
//
// The zero value is an empty, ready-to-use tree. Tree is not safe for
// concurrent use.
type Tree struct {
	root *node
	size int
}

// Insert adds key to the tree.
// Returns ErrDuplicateKey if the key is already present.
//
// Time complexity: O(h)
func (t *Tree) Insert(key int64) error {
	n := &node{key: key}
	if t.root == nil {
		t.root = n
		t.size++

		return nil
	}

	curr := t.root
	for {
		switch {
		case key == curr.key:
			return fmt.Errorf("%w: %d", ErrDuplicateKey, key)
		case key < curr.key:
			if curr.left == nil {
				curr.left = n
				t.size++

				return nil
			}
			curr = curr.left
		default:
			if curr.right == nil {
				curr.right = n
				t.size++

				return nil
			}
			curr = curr.right
		}
	}
}

// Contains reports whether key is present.
//
// Time complexity: O(h)
func (t *Tree) Contains(key int64) bool {
	curr := t.root
	for curr != nil {
		switch {
		case key == curr.key:
			return true
		case key < curr.key:
			curr = curr.left
		default:
			curr = curr.right
		}
	}

	return false
}

// Len returns the number of keys in the tree.
func (t *Tree) Len() int { return t.size }

// Min returns the smallest key (leftmost node).
//
// Time complexity: O(h)
func (t *Tree) Min() (int64, error) {
	if t.root == nil {
		return 0, ErrEmptyTree
	}

	curr := t.root
	for curr.left != nil {
		curr = curr.left
	}

	return curr.key, nil
}

// Max returns the largest key (rightmost node).
//
// Time complexity: O(h)
func (t *Tree) Max() (int64, error) {
	if t.root == nil {
		return 0, ErrEmptyTree
	}

	curr := t.root
	for curr.right != nil {
		curr = curr.right
	}

	return curr.key, nil
}

// Height returns the number of nodes on the longest root-to-leaf path.
// An empty tree has height 0, a single node height 1.
//
// Time complexity: O(n)
func (t *Tree) Height() int {
	return height(t.root)
}

func height(n *node) int {
	if n == nil {
		return 0
	}
	l, r := height(n.left), height(n.right)
	if l > r {
		return l + 1
	}

	return r + 1
}

// Delete removes key from the tree using the three textbook cases:
//
//  1. Leaf: unlink it from the parent.
//  2. One child: splice the child into the node's place.
//  3. Two children: copy the in-order successor's key (minimum of the
//     right subtree) into the node, then delete the successor — which has
//     at most a right child and so falls into case 1 or 2.
//
// Returns ErrKeyNotFound if the key is absent.
//
// Time complexity: O(h)
func (t *Tree) Delete(key int64) error {
	newRoot, deleted := deleteNode(t.root, key)
	if !deleted {
		return fmt.Errorf("%w: %d", ErrKeyNotFound, key)
	}
	t.root = newRoot
	t.size--

	return nil
}

// deleteNode removes key from the subtree rooted at n and returns the new
// subtree root plus whether a node was removed.
func deleteNode(n *node, key int64) (*node, bool) {
	if n == nil {
		return nil, false
	}

	var deleted bool
	switch {
	case key < n.key:
		n.left, deleted = deleteNode(n.left, key)
	case key > n.key:
		n.right, deleted = deleteNode(n.right, key)
	default:
		// Case 1 & 2: at most one child.
		if n.left == nil {
			return n.right, true
		}
		if n.right == nil {
			return n.left, true
		}
		// Case 3: two children — swap in the in-order successor.
		succ := n.right
		for succ.left != nil {
			succ = succ.left
		}
		n.key = succ.key
		n.right, _ = deleteNode(n.right, succ.key)

		return n, true
	}

	return n, deleted
}
