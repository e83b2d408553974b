// Package search implements the classic array-searching algorithms over
// slices of ordered elements: linear scan, binary search, jump search, and
// exponential search.
//
// What this package offers:
//
//   - Linear      — O(n) scan over any slice, sorted or not.
//   - Binary      — O(log n) halving over an ascending slice.
//   - Jump        — O(√n) block skipping plus a short linear tail.
//   - Exponential — O(log i) range doubling, then binary search; shines when
//     the target sits near the front of a long slice.
//
// All four share one contract: on success they return an index i such that
// s[i] == target; otherwise they return ErrNotFound. The sorted searches
// assume ascending order — pass WithVerifySorted to pay O(n) up front and
// get ErrNotSorted instead of a silently wrong answer.
//
// Hooks let you watch the algorithms work: WithOnProbe receives every index
// the search inspects and the value found there, which makes the O(n) vs
// O(log n) difference visible in a dozen lines of example code.
//
// See example_test.go for runnable demonstrations.
package search
