package sequence

import (
	"errors"
	"fmt"
	"math/bits"
)

// MaxFibonacci is the largest n for which F(n) fits in uint64.
const MaxFibonacci = 93

// Sentinel errors for Fibonacci computation.
var (
	// ErrFibOverflow is returned for n beyond MaxFibonacci.
	ErrFibOverflow = errors.New("sequence: Fibonacci overflows uint64")

	// ErrNegative is returned for a negative sequence index.
	ErrNegative = errors.New("sequence: index must be non-negative")
)

// Fibonacci returns F(n) with F(0)=0, F(1)=1, iteratively.
//
// Time complexity: O(n)
// Memory usage:    O(1)
func Fibonacci(n int) (uint64, error) {
	if err := checkFibRange(n); err != nil {
		return 0, err
	}

	var a, b uint64 = 0, 1
	for i := 0; i < n; i++ {
		a, b = b, a+b
	}

	return a, nil
}

// FibonacciMemo returns F(n) by the naive recursion F(n)=F(n-1)+F(n-2),
// made linear with a memo table. The exponential blowup this table
// prevents is the lesson.
//
// Time complexity: O(n)
// Memory usage:    O(n)
func FibonacciMemo(n int) (uint64, error) {
	if err := checkFibRange(n); err != nil {
		return 0, err
	}

	memo := make(map[int]uint64, n)

	return fibMemo(n, memo), nil
}

func fibMemo(n int, memo map[int]uint64) uint64 {
	if n < 2 {
		return uint64(n)
	}
	if v, ok := memo[n]; ok {
		return v
	}

	v := fibMemo(n-1, memo) + fibMemo(n-2, memo)
	memo[n] = v

	return v
}

// FibonacciFast returns F(n) by fast doubling.
//
// Steps (per bit of n, most significant first):
//  1. From the pair (F(k), F(k+1)) compute
//     F(2k)   = F(k)·(2·F(k+1) − F(k))
//     F(2k+1) = F(k)² + F(k+1)²
//  2. Keep (F(2k), F(2k+1)) for a 0 bit, (F(2k+1), F(2k+2)) for a 1 bit.
//
// For n ≤ MaxFibonacci every value the result depends on fits in uint64;
// only the unused upper pair element may wrap on the last step.
//
// Time complexity: O(log n)
// Memory usage:    O(1)
func FibonacciFast(n int) (uint64, error) {
	if err := checkFibRange(n); err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, nil
	}

	var a, b uint64 = 0, 1 // (F(0), F(1))
	for i := bits.Len(uint(n)) - 1; i >= 0; i-- {
		even := a * (2*b - a) // F(2k)
		odd := a*a + b*b      // F(2k+1)
		if n>>uint(i)&1 == 0 {
			a, b = even, odd
		} else {
			a, b = odd, even+odd
		}
	}

	return a, nil
}

// checkFibRange rejects negative n and n past the uint64 horizon.
func checkFibRange(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: got %d", ErrNegative, n)
	}
	if n > MaxFibonacci {
		return fmt.Errorf("%w: F(%d) needs more than 64 bits (max n = %d)", ErrFibOverflow, n, MaxFibonacci)
	}

	return nil
}
