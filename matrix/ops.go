// Package matrix - the operations layered on Dense storage.
package matrix

import "fmt"

// Add returns a + b element-wise. Shapes must match exactly.
//
// Complexity: O(r·c).
func Add(a, b *Dense) (*Dense, error) {
	if a.r != b.r || a.c != b.c {
		return nil, fmt.Errorf("%w: %dx%d + %dx%d", ErrDimensionMismatch, a.r, a.c, b.r, b.c)
	}

	out := a.Clone()
	for i, v := range b.data {
		out.data[i] += v
	}

	return out, nil
}

// Mul returns the matrix product a·b; a's column count must equal b's row
// count. The loops run in i-k-j order so the inner loop walks both operands
// row-major — same arithmetic, far fewer cache misses than the naive i-j-k.
//
// Complexity: O(r·n·c) time, O(r·c) memory.
func Mul(a, b *Dense) (*Dense, error) {
	if a.c != b.r {
		return nil, fmt.Errorf("%w: %dx%d · %dx%d", ErrDimensionMismatch, a.r, a.c, b.r, b.c)
	}

	out := &Dense{r: a.r, c: b.c, data: make([]int64, a.r*b.c)}
	for i := 0; i < a.r; i++ {
		for k := 0; k < a.c; k++ {
			aik := a.data[i*a.c+k]
			if aik == 0 {
				continue
			}
			for j := 0; j < b.c; j++ {
				out.data[i*b.c+j] += aik * b.data[k*b.c+j]
			}
		}
	}

	return out, nil
}

// Transpose returns mᵀ: element (i, j) moves to (j, i).
//
// Complexity: O(r·c).
func Transpose(m *Dense) *Dense {
	out := &Dense{r: m.c, c: m.r, data: make([]int64, len(m.data))}
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			out.data[j*out.c+i] = m.data[i*m.c+j]
		}
	}

	return out
}

// RotateClockwise turns a square matrix 90° clockwise, in place, by the
// classic two-step trick: transpose, then mirror each row.
// Returns ErrNotSquare for rectangular matrices — rotating those changes
// the shape, use Transpose and build a new matrix instead.
//
// Complexity: O(n²) time, O(1) memory.
func RotateClockwise(m *Dense) error {
	if m.r != m.c {
		return fmt.Errorf("%w: %dx%d", ErrNotSquare, m.r, m.c)
	}

	n := m.r
	// Transpose in place: swap across the main diagonal.
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			m.data[i*n+j], m.data[j*n+i] = m.data[j*n+i], m.data[i*n+j]
		}
	}
	// Mirror each row.
	for i := 0; i < n; i++ {
		row := m.data[i*n : (i+1)*n]
		for l, r := 0, n-1; l < r; l, r = l+1, r-1 {
			row[l], row[r] = row[r], row[l]
		}
	}

	return nil
}

// SpiralOrder returns all elements in clockwise spiral order, shrinking the
// four boundaries inward as each edge is consumed.
//
// Complexity: O(r·c).
func SpiralOrder(m *Dense) []int64 {
	out := make([]int64, 0, len(m.data))
	top, bottom := 0, m.r-1
	left, right := 0, m.c-1

	for top <= bottom && left <= right {
		for j := left; j <= right; j++ { // → along the top
			out = append(out, m.data[top*m.c+j])
		}
		top++
		for i := top; i <= bottom; i++ { // ↓ along the right
			out = append(out, m.data[i*m.c+right])
		}
		right--
		if top <= bottom {
			for j := right; j >= left; j-- { // ← along the bottom
				out = append(out, m.data[bottom*m.c+j])
			}
			bottom--
		}
		if left <= right {
			for i := bottom; i >= top; i-- { // ↑ along the left
				out = append(out, m.data[i*m.c+left])
			}
			left++
		}
	}

	return out
}

// SearchSorted finds target in a matrix whose rows ascend left to right
// and whose columns ascend top to bottom, and returns its coordinates.
//
// The staircase walk starts at the top-right corner: anything below is
// larger, anything to the left is smaller, so each comparison discards a
// whole row or column.
//
// Complexity: O(r+c).
func SearchSorted(m *Dense, target int64) (row, col int, err error) {
	i, j := 0, m.c-1
	for i < m.r && j >= 0 {
		v := m.data[i*m.c+j]
		switch {
		case v == target:
			return i, j, nil
		case v > target:
			j--
		default:
			i++
		}
	}

	return 0, 0, fmt.Errorf("%w: %d", ErrValueNotFound, target)
}
