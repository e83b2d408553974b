package sequence

import (
	"errors"
	"fmt"
)

// Sentinel errors for the numeric exercises.
var (
	// ErrDiverged is returned when a Collatz walk exceeds MaxCollatzSteps.
	ErrDiverged = errors.New("sequence: Collatz walk exceeded step limit")

	// ErrOverflow is returned when a Collatz step would overflow uint64.
	ErrOverflow = errors.New("sequence: value overflows uint64")

	// ErrNonPositive is returned when an exercise needs n >= 1.
	ErrNonPositive = errors.New("sequence: n must be >= 1")
)

// MaxCollatzSteps caps a Collatz walk. Every n below 2^68 is known to
// reach 1 in far fewer steps; the cap turns a hypothetical counterexample
// into an error instead of an endless loop.
const MaxCollatzSteps = 10000

// IsPalindromeNumber reports whether n's decimal digits read the same in
// both directions. Negative numbers are never palindromes (the sign reads
// on one side only), and neither is any positive multiple of 10 (a leading
// zero would be required).
//
// Only half the digits are reversed, so no intermediate value can
// overflow: the loop stops as soon as the reversed half catches up.
//
// Time complexity: O(digits)
func IsPalindromeNumber(n int64) bool {
	if n < 0 || (n%10 == 0 && n != 0) {
		return false
	}

	var rev int64
	for n > rev {
		rev = rev*10 + n%10
		n /= 10
	}

	// Even digit count: halves match exactly.
	// Odd digit count: rev carries the middle digit, drop it.
	return n == rev || n == rev/10
}

// GCD returns the greatest common divisor of a and b by Euclid's
// algorithm. GCD(x, 0) = x and GCD(0, 0) = 0 by convention.
//
// Time complexity: O(log min(a, b))
func GCD(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

// Collatz returns the number of steps the hailstone iteration
// (even: n/2, odd: 3n+1) takes from n down to 1.
//
// Returns ErrNonPositive for n = 0, ErrOverflow if a 3n+1 step would not
// fit in uint64, and ErrDiverged past MaxCollatzSteps.
//
// Time complexity: unknown in general — that is the joke of the exercise;
// bounded here by MaxCollatzSteps.
func Collatz(n uint64) (int, error) {
	if n == 0 {
		return 0, ErrNonPositive
	}

	steps := 0
	for n != 1 {
		if steps >= MaxCollatzSteps {
			return steps, fmt.Errorf("%w: still at %d after %d steps", ErrDiverged, n, steps)
		}
		if n%2 == 0 {
			n /= 2
		} else {
			if n > (^uint64(0)-1)/3 {
				return steps, fmt.Errorf("%w: 3·%d+1", ErrOverflow, n)
			}
			n = 3*n + 1
		}
		steps++
	}

	return steps, nil
}
