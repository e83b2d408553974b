package graph_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/algokata/algokata/graph"
)

// diamond builds the undirected square A—B, A—C, B—D, C—D.
func diamond(t *testing.T) *graph.Graph {
	t.Helper()
	g := graph.NewGraph()
	for _, e := range [][2]string{{"A", "B"}, {"A", "C"}, {"B", "D"}, {"C", "D"}} {
		if err := g.AddEdge(e[0], e[1]); err != nil {
			t.Fatal(err)
		}
	}

	return g
}

// TestBFS_Errors rejects nil graphs and missing start vertices.
func TestBFS_Errors(t *testing.T) {
	if _, err := graph.BFS(nil, "A"); !errors.Is(err, graph.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	g := graph.NewGraph()
	if _, err := graph.BFS(g, "missing"); !errors.Is(err, graph.ErrVertexNotFound) {
		t.Errorf("missing start: want ErrVertexNotFound, got %v", err)
	}
}

// TestBFS_LayersAndParents verifies order, depths, and the BFS tree.
func TestBFS_LayersAndParents(t *testing.T) {
	res, err := graph.BFS(diamond(t), "A")
	if err != nil {
		t.Fatal(err)
	}

	if want := []string{"A", "B", "C", "D"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	wantDepth := map[string]int{"A": 0, "B": 1, "C": 1, "D": 2}
	if !reflect.DeepEqual(res.Depth, wantDepth) {
		t.Errorf("Depth = %v; want %v", res.Depth, wantDepth)
	}
	if res.Parent["D"] != "B" {
		t.Errorf(`Parent[D] = %q; want "B" (first to reach it)`, res.Parent["D"])
	}
}

// TestBFS_PathTo reconstructs the fewest-hop path and rejects unreachable
// destinations.
func TestBFS_PathTo(t *testing.T) {
	g := diamond(t)
	if err := g.AddVertex("island"); err != nil {
		t.Fatal(err)
	}

	res, err := graph.BFS(g, "A")
	if err != nil {
		t.Fatal(err)
	}

	path, err := res.PathTo("D")
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"A", "B", "D"}; !reflect.DeepEqual(path, want) {
		t.Errorf("PathTo(D) = %v; want %v", path, want)
	}

	if _, err = res.PathTo("island"); !errors.Is(err, graph.ErrVertexNotFound) {
		t.Errorf("unreachable: want ErrVertexNotFound, got %v", err)
	}
}

// TestBFS_VisitAbort propagates the hook's error mid-walk.
func TestBFS_VisitAbort(t *testing.T) {
	boom := errors.New("enough")
	visited := 0
	_, err := graph.BFS(diamond(t), "A", graph.WithOnVisit(func(string, int) error {
		visited++
		if visited == 2 {
			return boom
		}

		return nil
	}))
	if !errors.Is(err, boom) {
		t.Fatalf("want hook error, got %v", err)
	}
	if visited != 2 {
		t.Errorf("visited = %d; want 2", visited)
	}
}

// TestBFS_Cancellation stops a traversal on a cancelled context.
func TestBFS_Cancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := graph.BFS(diamond(t), "A", graph.WithContext(ctx))
	if !errors.Is(err, context.Canceled) {
		t.Errorf("want context.Canceled, got %v", err)
	}
}

// TestDFS_OrderAndExit verifies pre-order and the post-order OnExit hook.
func TestDFS_OrderAndExit(t *testing.T) {
	var exits []string
	res, err := graph.DFS(diamond(t), "A", graph.WithOnExit(func(id string, _ int) {
		exits = append(exits, id)
	}))
	if err != nil {
		t.Fatal(err)
	}

	// A's first neighbor is B, whose first unvisited neighbor is D, etc.
	if want := []string{"A", "B", "D", "C"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	// Post-order: children before parents.
	if want := []string{"C", "D", "B", "A"}; !reflect.DeepEqual(exits, want) {
		t.Errorf("exits = %v; want %v", exits, want)
	}
	if res.Depth["C"] != 3 {
		t.Errorf("Depth[C] = %d; want 3 (via A-B-D-C)", res.Depth["C"])
	}
}

// TestHasCycle covers trees, cycles, self-loops, and both directednesses.
func TestHasCycle(t *testing.T) {
	// Undirected path: no cycle.
	path := graph.NewGraph()
	_ = path.AddEdge("A", "B")
	_ = path.AddEdge("B", "C")
	if graph.HasCycle(path) {
		t.Error("undirected path must be acyclic")
	}

	// Undirected triangle: cycle.
	if !graph.HasCycle(diamond(t)) {
		t.Error("diamond contains a cycle")
	}

	// Directed diamond: A→B→D, A→C→D is acyclic.
	dag := graph.NewGraph(graph.WithDirected())
	for _, e := range [][2]string{{"A", "B"}, {"A", "C"}, {"B", "D"}, {"C", "D"}} {
		_ = dag.AddEdge(e[0], e[1])
	}
	if graph.HasCycle(dag) {
		t.Error("directed diamond is a DAG")
	}

	// Closing the loop makes it cyclic.
	_ = dag.AddEdge("D", "A")
	if !graph.HasCycle(dag) {
		t.Error("D→A closes a cycle")
	}

	// Self-loop.
	loop := graph.NewGraph(graph.WithDirected())
	_ = loop.AddEdge("X", "X")
	if !graph.HasCycle(loop) {
		t.Error("self-loop is a cycle")
	}
}

// TestTopoSort orders a dependency DAG and rejects cycles.
func TestTopoSort(t *testing.T) {
	g := graph.NewGraph(graph.WithDirected())
	// makefile-style dependencies: app needs lib and util, lib needs util.
	for _, e := range [][2]string{{"app", "lib"}, {"app", "util"}, {"lib", "util"}} {
		if err := g.AddEdge(e[0], e[1]); err != nil {
			t.Fatal(err)
		}
	}

	order, err := graph.TopoSort(g)
	if err != nil {
		t.Fatal(err)
	}
	pos := make(map[string]int, len(order))
	for i, id := range order {
		pos[id] = i
	}
	// Every edge u→v must have u before v.
	for _, e := range [][2]string{{"app", "lib"}, {"app", "util"}, {"lib", "util"}} {
		if pos[e[0]] >= pos[e[1]] {
			t.Errorf("%s must precede %s in %v", e[0], e[1], order)
		}
	}

	_ = g.AddEdge("util", "app")
	if _, err = graph.TopoSort(g); !errors.Is(err, graph.ErrCyclic) {
		t.Errorf("cycle: want ErrCyclic, got %v", err)
	}

	undirected := graph.NewGraph()
	_ = undirected.AddEdge("A", "B")
	if _, err = graph.TopoSort(undirected); !errors.Is(err, graph.ErrNotDirected) {
		t.Errorf("undirected: want ErrNotDirected, got %v", err)
	}
}
