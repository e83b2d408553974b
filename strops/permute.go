package strops

import (
	"errors"
	"fmt"
	"sort"
)

// MaxPermutationLen bounds Permutations input: 10! is already 3.6 million
// strings, and every additional rune multiplies that.
const MaxPermutationLen = 10

// Sentinel errors for permutation generation.
var (
	// ErrTooLong is returned when the input exceeds MaxPermutationLen runes.
	ErrTooLong = errors.New("strops: input too long to permute")

	// ErrStopped wraps an emit callback's request to stop early.
	ErrStopped = errors.New("strops: permutation walk stopped")
)

// Permutations generates every distinct permutation of s in lexicographic
// order and hands each one to emit. Duplicate runes in s do not produce
// duplicate permutations ("aab" yields 3, not 6).
//
// Steps:
//  1. Sort the runes so the walk starts from the smallest arrangement.
//  2. Backtrack: at each slot, try each unused rune, skipping a rune equal
//     to its unused left neighbor (the standard duplicate guard).
//  3. Emit when the arrangement is complete.
//
// Returning false from emit stops the walk; Permutations then returns
// ErrStopped so callers can tell a cut-off run from a complete one.
//
// Time complexity: O(n · n!) worst case
// Memory usage:    O(n) working state
func Permutations(s string, emit func(p string) bool) error {
	rs := []rune(s)
	if len(rs) > MaxPermutationLen {
		return fmt.Errorf("%w: %d runes (max %d)", ErrTooLong, len(rs), MaxPermutationLen)
	}
	if len(rs) == 0 {
		if !emit("") {
			return ErrStopped
		}

		return nil
	}

	sort.Slice(rs, func(i, j int) bool { return rs[i] < rs[j] })

	used := make([]bool, len(rs))
	buf := make([]rune, 0, len(rs))

	var walk func() bool
	walk = func() bool {
		if len(buf) == len(rs) {
			return emit(string(buf))
		}
		for i := 0; i < len(rs); i++ {
			if used[i] {
				continue
			}
			// Duplicate guard: only the first of an equal run may start here.
			if i > 0 && rs[i] == rs[i-1] && !used[i-1] {
				continue
			}
			used[i] = true
			buf = append(buf, rs[i])
			if !walk() {
				return false
			}
			buf = buf[:len(buf)-1]
			used[i] = false
		}

		return true
	}

	if !walk() {
		return ErrStopped
	}

	return nil
}

// PermutationsAll collects every distinct permutation of s into a slice.
// Convenience wrapper over Permutations; same ordering, same length cap.
func PermutationsAll(s string) ([]string, error) {
	var out []string
	err := Permutations(s, func(p string) bool {
		out = append(out, p)

		return true
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}
