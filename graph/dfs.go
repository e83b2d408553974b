// Package graph - depth-first search, cycle detection, topological sort.
//
// # DFS — Depth-First Search
//
// DFS explores as far as possible along each branch before backtracking,
// which is what cycle detection and topological sorting are built on.
//
// Steps:
//  1. Validate the start vertex; prepare visited, depth, and parent maps.
//  2. Recurse: mark visited, record depth, append to Order, call OnVisit;
//     recurse into each unvisited neighbor at depth+1; call OnExit after
//     all children return.
//  3. Check the context at every entry.
//
// Time complexity: O(V + E)
// Memory usage:    O(V) visited map + recursion stack
package graph

import "fmt"

// Visitation states for three-color marking.
const (
	white = iota // unvisited
	gray         // on the recursion stack
	black        // fully processed
)

// DFSResult holds the outcome of a DFS traversal.
type DFSResult struct {
	// Order is the sequence of visited vertices (pre-order).
	Order []string
	// Depth maps vertex ID → recursion depth from the start.
	Depth map[string]int
	// Parent maps vertex ID → predecessor in the DFS tree.
	Parent map[string]string
}

// dfsWalker encapsulates DFS state.
type dfsWalker struct {
	g       *Graph
	opts    traversalOptions
	res     *DFSResult
	visited map[string]bool
}

// DFS runs depth-first search on g from startID.
// Returns ErrGraphNil or ErrVertexNotFound for invalid input, the
// context's error on cancellation, or any OnVisit error.
func DFS(g *Graph, startID string, opts ...TraversalOption) (*DFSResult, error) {
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
	w := &dfsWalker{
		g:    g,
		opts: o,
		res: &DFSResult{
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
		visited: make(map[string]bool, n),
	}

	return w.res, w.visit(startID, 0)
}

// visit processes one vertex and recurses into its unvisited neighbors.
func (w *dfsWalker) visit(id string, depth int) error {
	select {
	case <-w.opts.ctx.Done():
		return w.opts.ctx.Err()
	default:
	}

	w.visited[id] = true
	w.res.Depth[id] = depth
	w.res.Order = append(w.res.Order, id)
	if err := w.opts.onVisit(id, depth); err != nil {
		return err
	}

	nbrs, _ := w.g.Neighbors(id)
	for _, nbr := range nbrs {
		if w.visited[nbr] {
			continue
		}
		w.res.Parent[nbr] = id
		if err := w.visit(nbr, depth+1); err != nil {
			return err
		}
	}
	w.opts.onExit(id, depth)

	return nil
}

// HasCycle reports whether g contains a cycle.
//
// Directed graphs use three-color marking: meeting a gray vertex means a
// back edge into the current recursion stack. Undirected graphs skip the
// edge back to the immediate parent (that is just the edge walked in) —
// any other visited neighbor closes a cycle. Self-loops count either way.
//
// Time complexity: O(V + E)
func HasCycle(g *Graph) bool {
	if g == nil {
		return false
	}

	state := make(map[string]int, g.VertexCount())
	for _, v := range g.Vertices() {
		if state[v] == white && cycleFrom(g, v, "", state) {
			return true
		}
	}

	return false
}

// cycleFrom recursively searches for a back edge starting at id.
func cycleFrom(g *Graph, id, parent string, state map[string]int) bool {
	state[id] = gray
	nbrs, _ := g.Neighbors(id)
	for _, nbr := range nbrs {
		if nbr == id {
			return true // self-loop
		}
		if !g.Directed() && nbr == parent {
			continue
		}
		switch state[nbr] {
		case white:
			if cycleFrom(g, nbr, id, state) {
				return true
			}
		case gray:
			return true
		}
	}
	state[id] = black

	return false
}

// TopoSort returns a topological ordering of a directed acyclic graph:
// for every edge u→v, u precedes v. The order is the reversed DFS
// post-order, with roots taken in sorted ID order for determinism.
//
// Returns ErrNotDirected on an undirected graph and ErrCyclic when a back
// edge shows the graph is not a DAG.
//
// Time complexity: O(V + E)
func TopoSort(g *Graph) ([]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.Directed() {
		return nil, ErrNotDirected
	}

	n := g.VertexCount()
	state := make(map[string]int, n)
	order := make([]string, 0, n)

	var visit func(id string) error
	visit = func(id string) error {
		state[id] = gray
		nbrs, _ := g.Neighbors(id)
		for _, nbr := range nbrs {
			switch state[nbr] {
			case gray:
				return fmt.Errorf("%w: back edge %s→%s", ErrCyclic, id, nbr)
			case white:
				if err := visit(nbr); err != nil {
					return err
				}
			}
		}
		state[id] = black
		order = append(order, id)

		return nil
	}

	for _, v := range g.Vertices() {
		if state[v] == white {
			if err := visit(v); err != nil {
				return nil, err
			}
		}
	}

	// Reverse the post-order in place.
	for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
		order[i], order[j] = order[j], order[i]
	}

	return order, nil
}
