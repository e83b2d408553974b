// Package matrix implements the dense integer matrix and the exercises
// built on it: arithmetic, transposition, in-place rotation, spiral
// traversal, and staircase search.
//
// Dense stores int64 elements in a single row-major slice — the element at
// (row, col) lives at index row*cols + col. That one formula buys cache
// friendliness, trivial cloning, and O(1) bounds-checked access; every
// accessor returns an error instead of panicking.
//
// What this package offers:
//
//   - Dense          — NewDense / FromRows, At, Set, Clone, Equal
//   - Add, Mul       — textbook arithmetic with dimension checks
//   - Transpose      — rows become columns, O(r·c)
//   - RotateClockwise — the in-place transpose-then-mirror trick, squares only
//   - SpiralOrder    — the boundary-shrinking traversal
//   - SearchSorted   — staircase search from the top-right corner of a
//     row- and column-sorted matrix, O(r+c)
package matrix
