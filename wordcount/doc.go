// Package wordcount implements the concurrent word-frequency counter — the
// exercise that introduces shared mutable state done right.
//
// The classic version guards one big map (or reaches for a synchronized
// legacy collection) and serializes every increment. Counter instead sits
// on xsync.MapOf, a concurrent map that shards keys internally, so
// goroutines counting different words almost never contend.
//
// What this package offers:
//
//   - Counter — Add, Get, Total, Snapshot; safe for concurrent use
//   - CountWords — reads a stream, fans lines out to a worker pool, and
//     merges nothing at the end because the Counter was shared all along
//
// Words are extracted as maximal runs of letters and digits, lowercased,
// so "Go, go, GO!" counts go three times.
package wordcount
