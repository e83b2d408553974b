package heap

import "cmp"

// Sort sorts s ascending, in place, using heapsort.
//
// Steps:
//  1. Build a max-heap over s bottom-up (sift every parent down).
//  2. Repeatedly swap the root (current maximum) with the last unsorted
//     slot, shrink the heap by one, and sift the new root down.
//
// The sorted region grows from the right; when the heap is exhausted the
// whole slice is ascending. Heapsort is not stable.
//
// Time complexity: O(n log n) worst case
// Memory usage:    O(1)
func Sort[T cmp.Ordered](s []T) {
	n := len(s)

	// Phase 1: max-heapify the whole slice.
	for i := n/2 - 1; i >= 0; i-- {
		siftDownMax(s, i, n)
	}

	// Phase 2: extract maxima into the tail.
	for end := n - 1; end > 0; end-- {
		s[0], s[end] = s[end], s[0]
		siftDownMax(s, 0, end)
	}
}

// siftDownMax restores the max-heap property for s[:n] starting at index i,
// swapping with the larger child on each level.
func siftDownMax[T cmp.Ordered](s []T, i, n int) {
	for {
		left, right := 2*i+1, 2*i+2
		largest := i
		if left < n && s[left] > s[largest] {
			largest = left
		}
		if right < n && s[right] > s[largest] {
			largest = right
		}
		if largest == i {
			return
		}
		s[i], s[largest] = s[largest], s[i]
		i = largest
	}
}
