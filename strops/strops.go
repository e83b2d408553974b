package strops

import (
	"strings"
	"unicode"
)

// PalindromeOption configures IsPalindrome.
type PalindromeOption func(*palindromeOptions)

type palindromeOptions struct {
	foldCase    bool
	lettersOnly bool
}

// WithFoldCase makes the comparison case-insensitive.
func WithFoldCase() PalindromeOption {
	return func(o *palindromeOptions) { o.foldCase = true }
}

// WithLettersOnly skips everything but letters and digits, the usual rule
// for sentence palindromes.
func WithLettersOnly() PalindromeOption {
	return func(o *palindromeOptions) { o.lettersOnly = true }
}

// IsPalindrome reports whether s reads the same forwards and backwards,
// using the two-pointer technique over runes. The empty string and every
// single rune are palindromes.
//
// Time complexity: O(n)
// Memory usage:    O(n) for the rune conversion
func IsPalindrome(s string, opts ...PalindromeOption) bool {
	var o palindromeOptions
	for _, opt := range opts {
		opt(&o)
	}

	rs := []rune(s)
	i, j := 0, len(rs)-1
	for i < j {
		if o.lettersOnly {
			for i < j && !unicode.IsLetter(rs[i]) && !unicode.IsDigit(rs[i]) {
				i++
			}
			for i < j && !unicode.IsLetter(rs[j]) && !unicode.IsDigit(rs[j]) {
				j--
			}
		}
		a, b := rs[i], rs[j]
		if o.foldCase {
			a, b = unicode.ToLower(a), unicode.ToLower(b)
		}
		if a != b {
			return false
		}
		i++
		j--
	}

	return true
}

// IsAnagram reports whether a and b contain exactly the same runes with the
// same multiplicities. Comparison is case-sensitive and counts every rune,
// spaces included.
//
// Time complexity: O(n)
// Memory usage:    O(k), k = distinct runes
func IsAnagram(a, b string) bool {
	counts := make(map[rune]int)
	for _, r := range a {
		counts[r]++
	}
	for _, r := range b {
		counts[r]--
		if counts[r] < 0 {
			return false
		}
	}
	for _, c := range counts {
		if c != 0 {
			return false
		}
	}

	return true
}

// IsRotation reports whether b is a rotation of a ("erbottlewat" of
// "waterbottle"). The trick: every rotation of a is a substring of a+a,
// so one length check and one Contains call settle it.
//
// Time complexity: O(n)
func IsRotation(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	if a == "" {
		return true
	}

	return strings.Contains(a+a, b)
}

// Reverse returns s with its runes in reverse order.
//
// Time complexity: O(n)
func Reverse(s string) string {
	rs := []rune(s)
	for i, j := 0, len(rs)-1; i < j; i, j = i+1, j-1 {
		rs[i], rs[j] = rs[j], rs[i]
	}

	return string(rs)
}
