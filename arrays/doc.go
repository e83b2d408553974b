// Package arrays implements the classic array interview problems: maximum
// subarray sum, two-sum, in-place rotation, the missing number, duplicate
// detection without extra memory, and in-place deduplication.
//
// What this package offers:
//
//   - MaxSubarraySum — Kadane's algorithm, O(n), the canonical example of
//     a clever linear scan beating the O(n²) brute force
//   - TwoSum         — one-pass hash map, O(n), returns the index pair
//   - Rotate         — triple-reversal in-place rotation, O(n) time O(1) memory
//   - MissingNumber  — the 1..n sum identity, O(n)
//   - FindDuplicate  — Floyd's tortoise-and-hare over the value-as-index
//     walk, O(n) time O(1) memory, input untouched
//   - Dedup          — two-pointer compaction of a sorted slice, in place
//
// All functions return sentinel errors instead of panicking when their
// preconditions fail, so misuse is visible rather than undefined.
package arrays
