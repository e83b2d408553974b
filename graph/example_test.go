package graph_test

import (
	"fmt"

	"github.com/algokata/algokata/graph"
)

// ExampleBFS finds the fewest-hop route across a small network.
func ExampleBFS() {
	g := graph.NewGraph()
	for _, e := range [][2]string{
		{"A", "B"}, {"B", "C"}, {"C", "K"}, // the short way
		{"A", "D"}, {"D", "E"}, {"E", "F"}, {"F", "K"}, // the long way
	} {
		_ = g.AddEdge(e[0], e[1])
	}

	res, err := graph.BFS(g, "A")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	path, _ := res.PathTo("K")
	fmt.Println(path)
	// Output:
	// [A B C K]
}

// ExampleTopoSort orders build targets before the things they depend on.
func ExampleTopoSort() {
	g := graph.NewGraph(graph.WithDirected())
	_ = g.AddEdge("binary", "objects")
	_ = g.AddEdge("objects", "sources")
	_ = g.AddEdge("binary", "sources")

	order, err := graph.TopoSort(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(order)
	// Output:
	// [binary objects sources]
}
