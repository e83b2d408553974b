// Package graph - breadth-first search.
//
// # BFS — Breadth-First Search
//
// BFS explores the graph level by level from a start vertex, which makes
// it the tool for fewest-hop paths, connectivity checks, and layering
// vertices by distance.
//
// Steps:
//  1. Mark the start visited at depth 0 and enqueue it.
//  2. Loop until the queue empties:
//     2.1 Dequeue (vertex, depth) and visit it: append to Order, call OnVisit.
//     2.2 Enqueue every unvisited neighbor at depth+1, recording its parent.
//  3. Check the context once per dequeue.
//
// Time complexity: O(V + E)
// Memory usage:    O(V)
package graph

import (
	"context"
	"fmt"
)

// TraversalOption configures BFS and DFS via functional arguments.
type TraversalOption func(*traversalOptions)

type traversalOptions struct {
	ctx     context.Context
	onVisit func(id string, depth int) error
	onExit  func(id string, depth int) // DFS only
}

func defaultTraversalOptions() traversalOptions {
	return traversalOptions{
		ctx:     context.Background(),
		onVisit: func(string, int) error { return nil },
		onExit:  func(string, int) {},
	}
}

// WithContext sets a cancellation context for the traversal.
func WithContext(ctx context.Context) TraversalOption {
	return func(o *traversalOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithOnVisit registers a callback invoked when a vertex is visited.
// Returning an error aborts the traversal and propagates it.
func WithOnVisit(fn func(id string, depth int) error) TraversalOption {
	return func(o *traversalOptions) {
		if fn != nil {
			o.onVisit = fn
		}
	}
}

// WithOnExit registers a DFS callback invoked after all of a vertex's
// descendants are processed. BFS ignores it.
func WithOnExit(fn func(id string, depth int)) TraversalOption {
	return func(o *traversalOptions) {
		if fn != nil {
			o.onExit = fn
		}
	}
}

// BFSResult holds the outcome of a BFS traversal:
//   - Order: vertices in visit sequence.
//   - Depth: vertex ID → distance (in edges) from the start.
//   - Parent: vertex ID → predecessor in the BFS tree (absent for the start).
type BFSResult struct {
	Order  []string
	Depth  map[string]int
	Parent map[string]string
}

// PathTo reconstructs the fewest-hop path from the start vertex to dest.
// Returns ErrVertexNotFound if dest was not reached.
func (r *BFSResult) PathTo(dest string) ([]string, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("%w: no path to %q", ErrVertexNotFound, dest)
	}

	path := []string{}
	for curr := dest; ; {
		path = append(path, curr)
		prev, ok := r.Parent[curr]
		if !ok {
			break
		}
		curr = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// queueItem pairs a vertex ID with its BFS depth.
type queueItem struct {
	id    string
	depth int
}

// BFS runs breadth-first search on g from startID.
// Returns ErrGraphNil or ErrVertexNotFound for invalid input, the
// context's error on cancellation, or any OnVisit error.
func BFS(g *Graph, startID string, opts ...TraversalOption) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasVertex(startID) {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, startID)
	}

	o := defaultTraversalOptions()
	for _, opt := range opts {
		opt(&o)
	}

	n := g.VertexCount()
	res := &BFSResult{
		Order:  make([]string, 0, n),
		Depth:  make(map[string]int, n),
		Parent: make(map[string]string, n),
	}

	visited := make(map[string]bool, n)
	visited[startID] = true
	res.Depth[startID] = 0
	queue := make([]queueItem, 0, n)
	queue = append(queue, queueItem{startID, 0})

	for len(queue) > 0 {
		select {
		case <-o.ctx.Done():
			return res, o.ctx.Err()
		default:
		}

		item := queue[0]
		queue = queue[1:]

		res.Order = append(res.Order, item.id)
		if err := o.onVisit(item.id, item.depth); err != nil {
			return res, err
		}

		nbrs, _ := g.Neighbors(item.id)
		for _, nbr := range nbrs {
			if visited[nbr] {
				continue
			}
			visited[nbr] = true
			res.Depth[nbr] = item.depth + 1
			res.Parent[nbr] = item.id
			queue = append(queue, queueItem{nbr, item.depth + 1})
		}
	}

	return res, nil
}
