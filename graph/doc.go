// Package graph implements the traversal exercises on a teaching-scale
// adjacency list: breadth-first and depth-first search, cycle detection by
// three-color marking, and topological sort.
//
// The Graph here is deliberately small — string vertex IDs, unweighted
// edges, directed or undirected as a whole — because the algorithms are
// the lesson, not the container. Neighbor lists keep insertion order and
// Vertices() returns sorted IDs, so every traversal is deterministic.
//
// What this package offers:
//
//   - Graph    — AddVertex, AddEdge, Neighbors, Vertices; O(1) amortized
//     mutation, duplicate edges rejected
//   - BFS      — layer-by-layer traversal: visit order, depth map, parent
//     links, and PathTo reconstruction of fewest-hop paths
//   - DFS      — recursive traversal with OnVisit/OnExit hooks
//   - HasCycle — three-color (white/gray/black) back-edge detection,
//     parent-skipping on undirected graphs
//   - TopoSort — reversed DFS post-order on a DAG, ErrCyclic otherwise
//
// Both traversals accept a context and stop early when it is cancelled.
package graph
