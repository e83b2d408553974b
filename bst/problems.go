// Package bst - the interview problems layered on top of the basic tree.
package bst

import "fmt"

// LCA returns the lowest common ancestor of keys a and b: the deepest node
// whose subtree contains both.
//
// The BST ordering makes this a single guided descent — while both keys sit
// on the same side of the current node, step that way; the first node that
// splits them (or equals one of them) is the answer.
//
// Both keys must be present; otherwise ErrKeyNotFound is returned.
// A key is considered its own ancestor, so LCA(4, 8) where 4 is an ancestor
// of 8 returns 4.
//
// Time complexity: O(h)
func (t *Tree) LCA(a, b int64) (int64, error) {
	for _, k := range []int64{a, b} {
		if !t.Contains(k) {
			return 0, fmt.Errorf("%w: %d", ErrKeyNotFound, k)
		}
	}

	curr := t.root
	for {
		switch {
		case a < curr.key && b < curr.key:
			curr = curr.left
		case a > curr.key && b > curr.key:
			curr = curr.right
		default:
			return curr.key, nil
		}
	}
}

// HasPathSum reports whether some root-to-leaf path's keys add up to target.
// An empty tree has no paths and always reports false.
//
// Time complexity: O(n), Memory: O(h) recursion
func (t *Tree) HasPathSum(target int64) bool {
	return hasPathSum(t.root, target)
}

func hasPathSum(n *node, remaining int64) bool {
	if n == nil {
		return false
	}
	remaining -= n.key
	if n.left == nil && n.right == nil {
		return remaining == 0
	}

	return hasPathSum(n.left, remaining) || hasPathSum(n.right, remaining)
}

// PathSums returns the key total of every root-to-leaf path, in left-to-
// right leaf order. An empty tree yields an empty slice.
//
// Time complexity: O(n), Memory: O(h) recursion
func (t *Tree) PathSums() []int64 {
	var sums []int64
	var walk func(n *node, acc int64)
	walk = func(n *node, acc int64) {
		if n == nil {
			return
		}
		acc += n.key
		if n.left == nil && n.right == nil {
			sums = append(sums, acc)

			return
		}
		walk(n.left, acc)
		walk(n.right, acc)
	}
	walk(t.root, 0)

	return sums
}

// Validate re-checks the strict ordering invariant over the whole tree and
// returns ErrOrderViolation (with the offending key) if it is broken.
// On a tree mutated only through Insert and Delete it always returns nil;
// it exists to make the invariant executable.
//
// Time complexity: O(n)
func (t *Tree) Validate() error {
	return validate(t.root, nil, nil)
}

// validate checks that every key under n lies strictly inside (lo, hi);
// a nil bound is unbounded, so MinInt64 and MaxInt64 remain legal keys.
func validate(n *node, lo, hi *int64) error {
	if n == nil {
		return nil
	}
	if lo != nil && n.key <= *lo {
		return fmt.Errorf("%w: key %d not above %d", ErrOrderViolation, n.key, *lo)
	}
	if hi != nil && n.key >= *hi {
		return fmt.Errorf("%w: key %d not below %d", ErrOrderViolation, n.key, *hi)
	}
	if err := validate(n.left, lo, &n.key); err != nil {
		return err
	}

	return validate(n.right, &n.key, hi)
}
