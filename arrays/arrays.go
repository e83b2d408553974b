package arrays

import (
	"errors"
	"fmt"
)

// Sentinel errors for array problems.
var (
	// ErrEmptyInput is returned when a problem needs at least one element.
	ErrEmptyInput = errors.New("arrays: empty input")

	// ErrNoSolution is returned when no answer exists for the given input.
	ErrNoSolution = errors.New("arrays: no solution")

	// ErrBadInput is returned when an input violates a documented
	// precondition (e.g. values out of the required range).
	ErrBadInput = errors.New("arrays: input violates precondition")
)

// MaxSubarraySum returns the largest sum over all non-empty contiguous
// subarrays of s, plus the half-open index range [lo, hi) achieving it.
//
// Kadane's algorithm: walk once, tracking the best subarray ending at the
// current index; a running sum that drops below zero can never help a
// later subarray, so it is reset.
//
// For all-negative input the answer is the single largest element — the
// subarray must be non-empty.
//
// Time complexity: O(n)
// Memory usage:    O(1)
func MaxSubarraySum(s []int64) (sum int64, lo, hi int, err error) {
	if len(s) == 0 {
		return 0, 0, 0, ErrEmptyInput
	}

	best, curr := s[0], s[0]
	bestLo, bestHi := 0, 1
	currLo := 0
	for i := 1; i < len(s); i++ {
		if curr < 0 {
			curr = s[i]
			currLo = i
		} else {
			curr += s[i]
		}
		if curr > best {
			best = curr
			bestLo, bestHi = currLo, i+1
		}
	}

	return best, bestLo, bestHi, nil
}

// TwoSum returns indices i < j such that s[i] + s[j] == target, using a
// one-pass value→index map. If several pairs exist, the one completed
// earliest (smallest j) wins. Returns ErrNoSolution when no pair sums to
// target.
//
// Time complexity: O(n)
// Memory usage:    O(n)
func TwoSum(s []int64, target int64) (int, int, error) {
	seen := make(map[int64]int, len(s))
	for j, v := range s {
		if i, ok := seen[target-v]; ok {
			return i, j, nil
		}
		// Keep the first occurrence so i stays minimal for this value.
		if _, ok := seen[v]; !ok {
			seen[v] = j
		}
	}

	return 0, 0, fmt.Errorf("%w: no pair sums to %d", ErrNoSolution, target)
}

// Rotate shifts s right by k positions, in place, via triple reversal:
// reverse the whole slice, then reverse the first k and the rest
// separately. k is normalized modulo len(s); negative k rotates left.
//
// Time complexity: O(n)
// Memory usage:    O(1)
func Rotate[T any](s []T, k int) {
	n := len(s)
	if n == 0 {
		return
	}
	k %= n
	if k < 0 {
		k += n
	}
	if k == 0 {
		return
	}

	reverse(s)
	reverse(s[:k])
	reverse(s[k:])
}

func reverse[T any](s []T) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

// MissingNumber returns the one value of 1..n absent from s, which must
// hold the remaining n-1 distinct values. Uses the sum identity
// n(n+1)/2 - sum(s); the arithmetic stays within int64 for any n below
// roughly 3 billion.
//
// Time complexity: O(n)
// Memory usage:    O(1)
func MissingNumber(s []int64, n int64) (int64, error) {
	if int64(len(s)) != n-1 {
		return 0, fmt.Errorf("%w: want %d values for n=%d, got %d", ErrBadInput, n-1, n, len(s))
	}

	expected := n * (n + 1) / 2
	var got int64
	for _, v := range s {
		if v < 1 || v > n {
			return 0, fmt.Errorf("%w: value %d outside 1..%d", ErrBadInput, v, n)
		}
		got += v
	}

	return expected - got, nil
}

// FindDuplicate returns the repeated value in s, which must hold n+1 values
// drawn from 1..n (so at least one repeats). The slice is read-only:
// treating values as next-indices turns s into a linked walk whose cycle
// entry is the duplicate, found by Floyd's tortoise and hare.
//
// Steps:
//  1. Advance slow by one hop and fast by two until they meet inside the cycle.
//  2. Restart one pointer at s[0]; advance both one hop at a time.
//  3. They meet exactly at the cycle entry — the duplicated value.
//
// Time complexity: O(n)
// Memory usage:    O(1)
func FindDuplicate(s []int64) (int64, error) {
	n := int64(len(s)) - 1
	if n < 1 {
		return 0, fmt.Errorf("%w: need at least 2 values", ErrBadInput)
	}
	for _, v := range s {
		if v < 1 || v > n {
			return 0, fmt.Errorf("%w: value %d outside 1..%d", ErrBadInput, v, n)
		}
	}

	slow, fast := s[0], s[0]
	for {
		slow = s[slow]
		fast = s[s[fast]]
		if slow == fast {
			break
		}
	}

	fast = s[0]
	for slow != fast {
		slow = s[slow]
		fast = s[fast]
	}

	return slow, nil
}

// Dedup removes adjacent duplicates from the sorted slice s in place and
// returns the compacted prefix. The input must be sorted ascending; on
// unsorted input the result is unspecified (matching the textbook contract).
//
// Time complexity: O(n)
// Memory usage:    O(1)
func Dedup[T comparable](s []T) []T {
	if len(s) < 2 {
		return s
	}

	w := 1
	for r := 1; r < len(s); r++ {
		if s[r] != s[w-1] {
			s[w] = s[r]
			w++
		}
	}

	return s[:w]
}
