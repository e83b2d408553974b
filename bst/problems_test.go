package bst_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/algokata/algokata/bst"
)

// TestLCA covers split points, ancestor-of-itself, and missing keys.
func TestLCA(t *testing.T) {
	tree := classic(t)

	cases := []struct {
		a, b, want int64
	}{
		{1, 7, 3},   // split under 3
		{4, 7, 6},   // siblings
		{1, 14, 8},  // opposite sides of the root
		{3, 7, 3},   // a is an ancestor of b
		{13, 14, 14},
		{8, 8, 8}, // a key is its own ancestor
	}
	for _, c := range cases {
		got, err := tree.LCA(c.a, c.b)
		require.NoError(t, err, "LCA(%d,%d)", c.a, c.b)
		assert.Equal(t, c.want, got, "LCA(%d,%d)", c.a, c.b)
	}

	_, err := tree.LCA(1, 99)
	assert.ErrorIs(t, err, bst.ErrKeyNotFound)
	_, err = tree.LCA(99, 1)
	assert.ErrorIs(t, err, bst.ErrKeyNotFound)
}

// TestHasPathSum checks hits and near-misses on the fixture.
//
// Root-to-leaf sums of the fixture: 8+3+1=12, 8+3+6+4=21, 8+3+6+7=24,
// 8+10+14+13=45.
func TestHasPathSum(t *testing.T) {
	tree := classic(t)

	for _, sum := range []int64{12, 21, 24, 45} {
		assert.True(t, tree.HasPathSum(sum), "sum %d", sum)
	}
	// 11 = 8+3 stops at an internal node, not a leaf.
	for _, sum := range []int64{0, 11, 22, 100} {
		assert.False(t, tree.HasPathSum(sum), "sum %d", sum)
	}

	empty := &bst.Tree{}
	assert.False(t, empty.HasPathSum(0), "empty tree has no paths")
}

// TestPathSums lists every root-to-leaf total left to right.
func TestPathSums(t *testing.T) {
	tree := classic(t)
	assert.Equal(t, []int64{12, 21, 24, 45}, tree.PathSums())

	empty := &bst.Tree{}
	assert.Empty(t, empty.PathSums())
}

// TestValidate holds on every mutation of a growing-and-shrinking tree.
func TestValidate(t *testing.T) {
	tree := &bst.Tree{}
	require.NoError(t, tree.Validate(), "empty tree is valid")

	for _, k := range []int64{50, 25, 75, 10, 30, 60, 90} {
		require.NoError(t, tree.Insert(k))
		require.NoError(t, tree.Validate())
	}
	for _, k := range []int64{25, 50, 90} {
		require.NoError(t, tree.Delete(k))
		require.NoError(t, tree.Validate())
	}
}
