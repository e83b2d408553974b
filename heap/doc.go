// Package heap implements an array-backed binary min-heap and heapsort.
//
// A binary heap is a complete binary tree flattened into a slice: the
// children of index i live at 2i+1 and 2i+2, and its parent at (i-1)/2.
// The min-heap property — every parent ≤ its children — keeps the smallest
// element at index 0, which is what makes Pop O(log n) and Peek O(1).
//
// What this package offers:
//
//   - MinHeap — Push, Pop, Peek, Len over any ordered element type.
//   - Heapify — bottom-up O(n) construction from an existing slice.
//   - Sort    — in-place ascending heapsort, O(n log n) worst case,
//     O(1) extra memory.
//
// The standard library's container/heap solves the same problem behind an
// interface; this package spells the sift-up and sift-down loops out, since
// watching them move elements is the point of the exercise.
package heap
