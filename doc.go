// Package algokata is a practice room for the classic data structures and
// algorithms — the exercises every course assigns and every interview asks,
// implemented once, carefully, with their invariants spelled out.
//
// 🚀 What is algokata?
//
//	A curated collection of classroom algorithms as small, independent packages:
//		• Searching: linear, binary, jump, exponential
//		• Heaps: array-backed min-heap, heap sort
//		• Trees: BST insert/delete, traversals, LCA, path sums
//		• Strings: palindromes, anagrams, rotations, permutations
//		• Arrays: Kadane, two-sum, rotation, duplicates & missing numbers
//		• Numbers: Fibonacci three ways, Euclid, Collatz
//		• Matrices: dense ops, spiral order, staircase search
//		• Graphs: BFS/DFS, cycle detection, topological sort
//		• Concurrency: a lock-free word-frequency counter
//		• Persistence: a practice log on embedded SQLite
//
// ✨ Why algokata?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Honest contracts – sentinel errors, documented complexity, no panics
//   - Hooks everywhere – observe probes, visits and traversal order
//   - Each package stands alone – import only the topic you are practicing
//
// The packages, one per topic:
//
//	search/    — array searching (O(n), O(log n), O(√n))
//	heap/      — binary min-heap & heapsort
//	bst/       — binary search tree problems
//	strops/    — string manipulation exercises
//	arrays/    — classic array problems
//	sequence/  — Fibonacci and friends
//	matrix/    — dense integer matrix exercises
//	graph/     — traversal exercises on a small adjacency list
//	wordcount/ — concurrent frequency counting
//	progress/  — practice attempts persisted to SQLite
//	cmd/       — the algokata demonstration CLI
//
// Every exported algorithm documents its outline and its time/memory
// complexity, and every edge case the textbooks warn about is covered by a
// test next door.
//
//	go get github.com/algokata/algokata
package algokata
