// Package graph - the Graph container, its options, and error definitions.
package graph

import (
	"errors"
	"sort"
)

// Sentinel errors for graph construction and traversal.
var (
	// ErrGraphNil is returned when a nil graph pointer is passed.
	ErrGraphNil = errors.New("graph: graph is nil")

	// ErrEmptyVertexID is returned for an empty-string vertex ID.
	ErrEmptyVertexID = errors.New("graph: vertex ID is empty")

	// ErrVertexNotFound is returned when a referenced vertex is absent.
	ErrVertexNotFound = errors.New("graph: vertex not found")

	// ErrDuplicateEdge is returned when the same edge is added twice.
	ErrDuplicateEdge = errors.New("graph: duplicate edge")

	// ErrCyclic is returned by TopoSort when the graph has a cycle.
	ErrCyclic = errors.New("graph: graph contains a cycle")

	// ErrNotDirected is returned by TopoSort on an undirected graph.
	ErrNotDirected = errors.New("graph: operation requires a directed graph")
)

// GraphOption configures a Graph at construction time.
type GraphOption func(*Graph)

// WithDirected makes every edge one-way (u→v only).
func WithDirected() GraphOption {
	return func(g *Graph) { g.directed = true }
}

// Graph is an unweighted adjacency-list graph over string vertex IDs.
// Not safe for concurrent mutation.
type Graph struct {
	directed bool
	adj      map[string][]string
	edges    map[[2]string]struct{}
}

// NewGraph returns an empty graph, undirected unless WithDirected is given.
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		adj:   make(map[string][]string),
		edges: make(map[[2]string]struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Directed reports whether edges are one-way.
func (g *Graph) Directed() bool { return g.directed }

// AddVertex registers id. Adding an existing vertex is a no-op.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	if _, ok := g.adj[id]; !ok {
		g.adj[id] = nil
	}

	return nil
}

// AddEdge links u and v, creating missing vertices on the fly (both
// directions on an undirected graph). Self-loops are allowed; adding the
// same edge twice returns ErrDuplicateEdge.
func (g *Graph) AddEdge(u, v string) error {
	if u == "" || v == "" {
		return ErrEmptyVertexID
	}
	key := [2]string{u, v}
	if !g.directed && u > v {
		key = [2]string{v, u} // undirected edges are unordered pairs
	}
	if _, ok := g.edges[key]; ok {
		return ErrDuplicateEdge
	}
	g.edges[key] = struct{}{}

	_ = g.AddVertex(u)
	_ = g.AddVertex(v)
	g.adj[u] = append(g.adj[u], v)
	if !g.directed && u != v {
		g.adj[v] = append(g.adj[v], u)
	}

	return nil
}

// HasVertex reports whether id is present.
func (g *Graph) HasVertex(id string) bool {
	_, ok := g.adj[id]

	return ok
}

// Neighbors returns id's adjacency list in insertion order.
// The returned slice is shared; callers must not mutate it.
func (g *Graph) Neighbors(id string) ([]string, error) {
	nbrs, ok := g.adj[id]
	if !ok {
		return nil, ErrVertexNotFound
	}

	return nbrs, nil
}

// Vertices returns all vertex IDs in sorted order.
func (g *Graph) Vertices() []string {
	ids := make([]string, 0, len(g.adj))
	for id := range g.adj {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int { return len(g.adj) }

// EdgeCount returns the number of distinct edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }
