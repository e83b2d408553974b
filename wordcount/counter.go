package wordcount

import (
	"sort"

	"github.com/puzpuzpuz/xsync/v3"
)

// Counter is a concurrent word-frequency counter.
// All methods are safe for concurrent use.
type Counter struct {
	counts *xsync.MapOf[string, int64]
}

// NewCounter returns an empty Counter.
func NewCounter() *Counter {
	return &Counter{counts: xsync.NewMapOf[string, int64]()}
}

// Add increments word's count by n and returns the new count.
func (c *Counter) Add(word string, n int64) int64 {
	v, _ := c.counts.Compute(word, func(old int64, _ bool) (int64, bool) {
		return old + n, false
	})

	return v
}

// Get returns word's current count (zero for unseen words).
func (c *Counter) Get(word string) int64 {
	v, _ := c.counts.Load(word)

	return v
}

// Len returns the number of distinct words seen.
func (c *Counter) Len() int {
	return c.counts.Size()
}

// Total returns the sum of all counts.
func (c *Counter) Total() int64 {
	var total int64
	c.counts.Range(func(_ string, v int64) bool {
		total += v

		return true
	})

	return total
}

// Entry is one word with its count.
type Entry struct {
	Word  string
	Count int64
}

// Snapshot returns all entries ordered by descending count, ties broken
// alphabetically. The snapshot is a copy; concurrent Adds during the call
// may or may not be reflected, but the result is always self-consistent
// per word.
func (c *Counter) Snapshot() []Entry {
	out := make([]Entry, 0, c.counts.Size())
	c.counts.Range(func(w string, v int64) bool {
		out = append(out, Entry{Word: w, Count: v})

		return true
	})
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}

		return out[i].Word < out[j].Word
	})

	return out
}

// Top returns the n most frequent entries (fewer if the vocabulary is
// smaller), same ordering as Snapshot.
func (c *Counter) Top(n int) []Entry {
	s := c.Snapshot()
	if n < len(s) {
		s = s[:n]
	}

	return s
}
