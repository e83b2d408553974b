// Package search - the four classic array searches.
//
// Each algorithm below documents its outline and complexity the way a first
// algorithms course states them, and reports every inspected index and its
// value through the OnProbe hook.
package search

import (
	"cmp"
	"math"
)

// Linear scans s left to right and returns the lowest index holding target.
//
// Steps:
//  1. Walk i = 0..len(s)-1, probing s[i].
//  2. Return i on the first match.
//  3. Return ErrNotFound after the last element.
//
// The context is checked once per probe, so a scan over a huge slice can be
// cancelled mid-flight. s does not need to be sorted.
//
// Time complexity: O(n)
// Memory usage:    O(1)
func Linear[T comparable](s []T, target T, opts ...Option) (int, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return -1, err
	}

	for i := range s {
		select {
		case <-o.Ctx.Done():
			return -1, o.Ctx.Err()
		default:
		}

		o.OnProbe(i, s[i])
		if s[i] == target {
			return i, nil
		}
	}

	return -1, ErrNotFound
}

// Binary halves the ascending slice s until target is cornered.
//
// Steps:
//  1. Keep lo/hi bounds over the candidate range.
//  2. Probe the midpoint; discard the half that cannot hold target.
//  3. Stop when the range is empty.
//
// If s contains duplicates of target, any matching index may be returned.
// Order is assumed, not checked — opt in with WithVerifySorted.
//
// Time complexity: O(log n)
// Memory usage:    O(1)
func Binary[T cmp.Ordered](s []T, target T, opts ...Option) (int, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return -1, err
	}
	if o.VerifySorted && !isSorted(s) {
		return -1, ErrNotSorted
	}

	return binarySearch(s, target, 0, len(s)-1, o)
}

// Jump skips through s in blocks of √n, then scans the block that may hold
// the target.
//
// Steps:
//  1. Probe s[min(step,n)-1] for consecutive blocks of size √n until the
//     block end reaches or passes target.
//  2. Linearly scan that block.
//
// Time complexity: O(√n)
// Memory usage:    O(1)
func Jump[T cmp.Ordered](s []T, target T, opts ...Option) (int, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return -1, err
	}
	n := len(s)
	if n == 0 {
		return -1, ErrNotFound
	}
	if o.VerifySorted && !isSorted(s) {
		return -1, ErrNotSorted
	}

	step := int(math.Sqrt(float64(n)))
	if step < 1 {
		step = 1
	}

	// Locate the block whose last element is >= target.
	prev, curr := 0, step
	for curr < n && s[curr-1] < target {
		o.OnProbe(curr-1, s[curr-1])
		prev, curr = curr, curr+step
	}
	if curr > n {
		curr = n
	}

	// Linear tail within [prev, curr).
	for i := prev; i < curr; i++ {
		o.OnProbe(i, s[i])
		if s[i] == target {
			return i, nil
		}
		if s[i] > target {
			break
		}
	}

	return -1, ErrNotFound
}

// Exponential doubles a search bound until it passes target, then binary
// searches the final range. For a target at index i this inspects O(log i)
// elements, regardless of how long s is.
//
// Steps:
//  1. Probe s[0]; done if it matches.
//  2. Double bound (1, 2, 4, ...) while s[bound] < target.
//  3. Binary search within [bound/2, min(bound, n-1)].
//
// Time complexity: O(log i), i = position of target
// Memory usage:    O(1)
func Exponential[T cmp.Ordered](s []T, target T, opts ...Option) (int, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return -1, err
	}
	n := len(s)
	if n == 0 {
		return -1, ErrNotFound
	}
	if o.VerifySorted && !isSorted(s) {
		return -1, ErrNotSorted
	}

	o.OnProbe(0, s[0])
	if s[0] == target {
		return 0, nil
	}

	bound := 1
	for bound < n && s[bound] < target {
		o.OnProbe(bound, s[bound])
		bound *= 2
	}

	hi := bound
	if hi > n-1 {
		hi = n - 1
	}

	return binarySearch(s, target, bound/2, hi, o)
}

// binarySearch is the shared lo..hi (inclusive) halving core.
func binarySearch[T cmp.Ordered](s []T, target T, lo, hi int, o Options) (int, error) {
	for lo <= hi {
		mid := lo + (hi-lo)/2 // avoids overflow on huge slices
		o.OnProbe(mid, s[mid])
		switch {
		case s[mid] == target:
			return mid, nil
		case s[mid] < target:
			lo = mid + 1
		default:
			hi = mid - 1
		}
	}

	return -1, ErrNotFound
}

// isSorted reports whether s is in ascending order.
func isSorted[T cmp.Ordered](s []T) bool {
	for i := 1; i < len(s); i++ {
		if s[i] < s[i-1] {
			return false
		}
	}

	return true
}
