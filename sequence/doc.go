// Package sequence implements the introductory numeric exercises: the
// Fibonacci sequence computed three ways, numeric palindromes, Euclid's
// greatest common divisor, and Collatz step counting.
//
// Fibonacci three ways is the point of the package — the same function at
// three different costs:
//
//   - Fibonacci     — the iterative two-variable loop, O(n)
//   - FibonacciMemo — naive recursion rescued by a memo table, O(n)
//   - FibonacciFast — fast doubling over the identities
//     F(2k) = F(k)·(2F(k+1) − F(k)) and F(2k+1) = F(k)² + F(k+1)², O(log n)
//
// All three agree bit for bit and all three refuse n > 93: F(94) no longer
// fits in uint64, and a wrong answer is worse than an error.
package sequence
