// Package bst implements the classroom binary search tree and the problems
// usually asked about it: insertion, three-case deletion, traversals in all
// four orders, lowest common ancestor, and root-to-leaf path sums.
//
// The tree stores int64 keys without duplicates and maintains the strict
// BST ordering invariant: for every node, all keys in its left subtree are
// smaller and all keys in its right subtree are larger. Nothing rebalances —
// this is the plain unbalanced tree, so every operation is O(h) where h is
// the current height (O(log n) on random input, O(n) when fed sorted keys).
//
// What this package offers:
//
//   - Insert / Delete / Contains / Min / Max / Height / Len
//   - InOrder, PreOrder, PostOrder, LevelOrder traversals with visit
//     callbacks that can abort the walk by returning an error, and
//     WithContext cancellation checked before every visit
//   - LCA       — lowest common ancestor by guided descent, O(h)
//   - HasPathSum — does any root-to-leaf path add up to a target?
//   - Validate  — re-checks the ordering invariant over the whole tree
//
// Deletion follows the textbook three cases: a leaf is unlinked, a node
// with one child is bypassed, and a node with two children swaps its key
// with the in-order successor (minimum of the right subtree) before the
// successor is deleted in turn.
package bst
