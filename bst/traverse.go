package bst

import "context"

// VisitFunc is called once per key during a traversal. Returning a non-nil
// error aborts the walk and propagates that error to the caller.
type VisitFunc func(key int64) error

// TraverseOption configures tree traversals via functional arguments.
type TraverseOption func(*traverseOptions)

type traverseOptions struct {
	ctx context.Context
}

func defaultTraverseOptions() traverseOptions {
	return traverseOptions{ctx: context.Background()}
}

// WithContext sets a cancellation context for the traversal. The context is
// checked before every visit, so a walk over a large tree can be cancelled
// mid-flight; the context's error is returned.
func WithContext(ctx context.Context) TraverseOption {
	return func(o *traverseOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

func buildTraverseOptions(opts []TraverseOption) traverseOptions {
	o := defaultTraverseOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// InOrder walks left-node-right, visiting keys in ascending order.
//
// Time complexity: O(n), Memory: O(h) recursion
func (t *Tree) InOrder(visit VisitFunc, opts ...TraverseOption) error {
	o := buildTraverseOptions(opts)

	return inOrder(t.root, visit, o)
}

func inOrder(n *node, visit VisitFunc, o traverseOptions) error {
	if n == nil {
		return nil
	}
	if err := inOrder(n.left, visit, o); err != nil {
		return err
	}
	if err := o.ctx.Err(); err != nil {
		return err
	}
	if err := visit(n.key); err != nil {
		return err
	}

	return inOrder(n.right, visit, o)
}

// PreOrder walks node-left-right: the order that reproduces the tree shape
// when keys are re-inserted into an empty tree.
//
// Time complexity: O(n), Memory: O(h) recursion
func (t *Tree) PreOrder(visit VisitFunc, opts ...TraverseOption) error {
	o := buildTraverseOptions(opts)

	return preOrder(t.root, visit, o)
}

func preOrder(n *node, visit VisitFunc, o traverseOptions) error {
	if n == nil {
		return nil
	}
	if err := o.ctx.Err(); err != nil {
		return err
	}
	if err := visit(n.key); err != nil {
		return err
	}
	if err := preOrder(n.left, visit, o); err != nil {
		return err
	}

	return preOrder(n.right, visit, o)
}

// PostOrder walks left-right-node: children before parents, the order used
// to tear a tree down safely.
//
// Time complexity: O(n), Memory: O(h) recursion
func (t *Tree) PostOrder(visit VisitFunc, opts ...TraverseOption) error {
	o := buildTraverseOptions(opts)

	return postOrder(t.root, visit, o)
}

func postOrder(n *node, visit VisitFunc, o traverseOptions) error {
	if n == nil {
		return nil
	}
	if err := postOrder(n.left, visit, o); err != nil {
		return err
	}
	if err := postOrder(n.right, visit, o); err != nil {
		return err
	}
	if err := o.ctx.Err(); err != nil {
		return err
	}

	return visit(n.key)
}

// LevelOrder walks the tree breadth-first, one depth at a time, left to
// right within a level. The visit callback also receives the zero-based
// depth of each key.
//
// Time complexity: O(n), Memory: O(w) queue, w = widest level
func (t *Tree) LevelOrder(visit func(key int64, depth int) error, opts ...TraverseOption) error {
	o := buildTraverseOptions(opts)
	if t.root == nil {
		return nil
	}

	type item struct {
		n     *node
		depth int
	}
	queue := []item{{t.root, 0}}
	for len(queue) > 0 {
		it := queue[0]
		queue = queue[1:]

		if err := o.ctx.Err(); err != nil {
			return err
		}
		if err := visit(it.n.key, it.depth); err != nil {
			return err
		}
		if it.n.left != nil {
			queue = append(queue, item{it.n.left, it.depth + 1})
		}
		if it.n.right != nil {
			queue = append(queue, item{it.n.right, it.depth + 1})
		}
	}

	return nil
}

// Keys returns all keys in ascending order.
//
// Time complexity: O(n)
func (t *Tree) Keys() []int64 {
	keys := make([]int64, 0, t.size)
	_ = t.InOrder(func(k int64) error {
		keys = append(keys, k)

		return nil
	})

	return keys
}
