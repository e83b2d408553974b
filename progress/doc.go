// Package progress persists practice attempts — which exercises you ran,
// when, how you scored, and how long you took — behind a small Store
// interface with two implementations.
//
// Memory keeps everything in maps under a RWMutex and is what tests use.
// SQLite stores the same data in an embedded database (modernc.org/sqlite,
// no cgo) and is what the CLI uses; it demonstrates the database/sql
// surface the curriculum teaches: connections, prepared statements,
// parameter binding, and a multi-statement transaction per recorded
// attempt (exercise upsert + attempt insert commit or roll back together).
//
// Both implementations are safe for concurrent use and satisfy the same
// test suite; see store_test.go.
package progress
