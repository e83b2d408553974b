// Package strops implements the introductory string-manipulation exercises:
// palindromes, anagrams, rotations, reversal, and permutation generation.
//
// Everything here is rune-correct. The classic bug in all of these
// exercises is indexing bytes of a UTF-8 string; each function converts to
// []rune first, so "réifier" reverses to "reifiér" rather than mojibake.
//
// What this package offers:
//
//   - IsPalindrome  — two-pointer check, optionally case-folding and
//     skipping non-letters ("A man, a plan, a canal: Panama")
//   - IsAnagram     — rune-count comparison, O(n)
//   - IsRotation    — the concatenation trick: b is a rotation of a
//     iff len(a) == len(b) and b occurs in a+a
//   - Reverse       — rune-wise reversal
//   - Permutations  — lexicographic backtracking with an emit callback
//     and a length cap (n! grows fast; the cap keeps demos honest)
package strops
