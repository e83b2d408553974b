package heap_test

import (
	"errors"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/algokata/algokata/heap"
)

// TestMinHeap_Empty verifies the empty-heap sentinels and the zero value.
func TestMinHeap_Empty(t *testing.T) {
	var h heap.MinHeap[int]

	assert.Equal(t, 0, h.Len())
	_, err := h.Peek()
	assert.ErrorIs(t, err, heap.ErrEmptyHeap)
	_, err = h.Pop()
	assert.ErrorIs(t, err, heap.ErrEmptyHeap)
}

// TestMinHeap_PushPopOrder pushes a shuffled range and expects ascending pops.
func TestMinHeap_PushPopOrder(t *testing.T) {
	const n = 500
	r := rand.New(rand.NewSource(42))

	h := heap.New[int](n)
	for _, v := range r.Perm(n) {
		h.Push(v)
	}
	require.Equal(t, n, h.Len())

	for want := 0; want < n; want++ {
		min, err := h.Peek()
		require.NoError(t, err)
		assert.Equal(t, want, min, "Peek before Pop")

		got, err := h.Pop()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	assert.Equal(t, 0, h.Len())
}

// TestMinHeap_Duplicates keeps every copy of a repeated value.
func TestMinHeap_Duplicates(t *testing.T) {
	h := heap.New[int](0)
	for _, v := range []int{3, 1, 3, 1, 3} {
		h.Push(v)
	}

	got := make([]int, 0, 5)
	for h.Len() > 0 {
		v, err := h.Pop()
		require.NoError(t, err)
		got = append(got, v)
	}
	assert.Equal(t, []int{1, 1, 3, 3, 3}, got)
}

// TestHeapify_LeavesSourceUntouched builds in O(n) from a slice and checks
// the caller's slice is not reordered.
func TestHeapify_LeavesSourceUntouched(t *testing.T) {
	src := []int{9, 4, 7, 1, -2, 6, 5}
	orig := append([]int(nil), src...)

	h := heap.Heapify(src)
	assert.Equal(t, orig, src, "Heapify must copy")

	min, err := h.Pop()
	require.NoError(t, err)
	assert.Equal(t, -2, min)
}

// TestHeapify_Strings exercises the generic instantiation.
func TestHeapify_Strings(t *testing.T) {
	h := heap.Heapify([]string{"pear", "apple", "quince", "fig"})
	got, err := h.Pop()
	require.NoError(t, err)
	assert.Equal(t, "apple", got)
}

// TestSort matches heapsort against the standard library on random input.
func TestSort(t *testing.T) {
	r := rand.New(rand.NewSource(7))

	for _, n := range []int{0, 1, 2, 3, 10, 100, 1000} {
		s := make([]int, n)
		for i := range s {
			s[i] = r.Intn(50) - 25 // duplicates and negatives on purpose
		}
		want := append([]int(nil), s...)
		sort.Ints(want)

		heap.Sort(s)
		assert.Equal(t, want, s, "n=%d", n)
	}
}

// TestSort_AlreadySorted and reversed inputs are the classic corner cases.
func TestSort_AlreadySorted(t *testing.T) {
	asc := []int{1, 2, 3, 4, 5}
	heap.Sort(asc)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, asc)

	desc := []int{5, 4, 3, 2, 1}
	heap.Sort(desc)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, desc)
}

// TestPop_ErrorIs keeps errors.Is compatibility for wrapped callers.
func TestPop_ErrorIs(t *testing.T) {
	h := heap.New[float64](0)
	_, err := h.Pop()
	if !errors.Is(err, heap.ErrEmptyHeap) {
		t.Fatalf("want ErrEmptyHeap, got %v", err)
	}
}
