package flow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fork is a normalized network where the source reaches the sink through a
// narrow branch (node 1, cap 2) listed before a wide one (node 2, cap 5).
func fork() [][]int64 {
	return [][]int64{
		{0, 2, 5, 0},
		{0, 0, 0, 9},
		{0, 0, 0, 9},
		{0, 0, 0, 0},
	}
}

func TestPathFinders_Choice(t *testing.T) {
	cases := []struct {
		name string
		find pathFinder
		via  int
	}{
		{"WidestFirst", widestFirstPath, 2},
		{"BreadthFirst", breadthFirstPath, 1},
		{"DepthFirst", depthFirstPath, 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			parent := make([]int, 4)
			require.True(t, tc.find(fork(), parent))
			assert.Equal(t, tc.via, parent[3])
			assert.Equal(t, 0, parent[tc.via])
		})
	}
}

func TestPathFinders_NoPath(t *testing.T) {
	residual := [][]int64{
		{0, 4, 0},
		{0, 0, 0},
		{0, 0, 0},
	}
	for _, find := range []pathFinder{widestFirstPath, breadthFirstPath, depthFirstPath} {
		parent := make([]int, 3)
		assert.False(t, find(residual, parent))
	}
}

// TestWidestFirst_QueuedNodesKeepParent checks a node reached first through a
// narrow edge keeps that predecessor even when a wider route appears later.
func TestWidestFirst_QueuedNodesKeepParent(t *testing.T) {
	// 0→1 (9), 0→2 (1), 1→2 (9), 2→3 (9)
	residual := [][]int64{
		{0, 9, 1, 0},
		{0, 0, 9, 0},
		{0, 0, 0, 9},
		{0, 0, 0, 0},
	}
	parent := make([]int, 4)
	require.True(t, widestFirstPath(residual, parent))
	assert.Equal(t, 0, parent[2])
	assert.Equal(t, 2, parent[3])
	assert.Equal(t, int64(1), bottleneck(residual, parent))
	assert.Equal(t, []int{0, 2, 3}, pathOf(parent))
}

func TestAugment(t *testing.T) {
	residual := fork()
	parent := []int{-1, 0, 0, 2}
	delta := bottleneck(residual, parent)
	require.Equal(t, int64(5), delta)

	augment(residual, parent, delta)
	assert.Equal(t, int64(0), residual[0][2])
	assert.Equal(t, int64(5), residual[2][0])
	assert.Equal(t, int64(4), residual[2][3])
	assert.Equal(t, int64(5), residual[3][2])
}
