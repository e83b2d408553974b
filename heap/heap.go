package heap

import (
	"cmp"
	"errors"
)

// ErrEmptyHeap is returned by Pop and Peek on a heap with no elements.
var ErrEmptyHeap = errors.New("heap: empty heap")

// MinHeap is an array-backed binary min-heap.
//
// The zero value is an empty, ready-to-use heap. MinHeap is not safe for
// concurrent use.
type MinHeap[T cmp.Ordered] struct {
	data []T
}

// New returns an empty MinHeap with capacity hint n.
func New[T cmp.Ordered](n int) *MinHeap[T] {
	if n < 0 {
		n = 0
	}

	return &MinHeap[T]{data: make([]T, 0, n)}
}

// Heapify builds a MinHeap over a copy of s in O(n) using the bottom-up
// method: sift every internal node down, starting from the last parent.
// A copy is taken so the caller's slice stays untouched.
//
// Time complexity: O(n)
// Memory usage:    O(n) for the copy
func Heapify[T cmp.Ordered](s []T) *MinHeap[T] {
	data := make([]T, len(s))
	copy(data, s)

	h := &MinHeap[T]{data: data}
	for i := len(data)/2 - 1; i >= 0; i-- {
		h.siftDown(i)
	}

	return h
}

// Len returns the number of elements currently on the heap.
func (h *MinHeap[T]) Len() int { return len(h.data) }

// Peek returns the minimum element without removing it.
func (h *MinHeap[T]) Peek() (T, error) {
	var zero T
	if len(h.data) == 0 {
		return zero, ErrEmptyHeap
	}

	return h.data[0], nil
}

// Push appends v and sifts it up until its parent is no larger.
//
// Time complexity: O(log n)
func (h *MinHeap[T]) Push(v T) {
	h.data = append(h.data, v)
	h.siftUp(len(h.data) - 1)
}

// Pop removes and returns the minimum element, restoring the heap property
// by moving the last element to the root and sifting it down.
//
// Time complexity: O(log n)
func (h *MinHeap[T]) Pop() (T, error) {
	var zero T
	n := len(h.data)
	if n == 0 {
		return zero, ErrEmptyHeap
	}

	top := h.data[0]
	h.data[0] = h.data[n-1]
	h.data[n-1] = zero // release the slot for the GC
	h.data = h.data[:n-1]
	h.siftDown(0)

	return top, nil
}

// siftUp bubbles index i toward the root while it is smaller than its parent.
func (h *MinHeap[T]) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if h.data[parent] <= h.data[i] {
			return
		}
		h.data[parent], h.data[i] = h.data[i], h.data[parent]
		i = parent
	}
}

// siftDown pushes index i toward the leaves, always swapping with the
// smaller child, until both children are no smaller.
func (h *MinHeap[T]) siftDown(i int) {
	n := len(h.data)
	for {
		left, right := 2*i+1, 2*i+2
		smallest := i
		if left < n && h.data[left] < h.data[smallest] {
			smallest = left
		}
		if right < n && h.data[right] < h.data[smallest] {
			smallest = right
		}
		if smallest == i {
			return
		}
		h.data[i], h.data[smallest] = h.data[smallest], h.data[i]
		i = smallest
	}
}
