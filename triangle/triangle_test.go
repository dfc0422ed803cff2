package triangle_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlpuzzle/triangle"
)

func TestID_Known(t *testing.T) {
	cases := []struct{ x, y, want int }{
		{1, 1, 1},
		{1, 2, 2},
		{2, 1, 3},
		{1, 4, 7},
		{4, 1, 10},
		{3, 2, 9},
		{5, 10, 96},
		{100000, 100000, 19999800001},
	}
	for _, tc := range cases {
		got, err := triangle.ID(tc.x, tc.y)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "ID(%d,%d)", tc.x, tc.y)
	}
}

func TestID_Generic(t *testing.T) {
	got8, err := triangle.ID[uint8](3, 2)
	require.NoError(t, err)
	assert.Equal(t, uint8(9), got8)

	// T(22) = 253 fits a uint8, T(23) = 276 does not
	_, err = triangle.ID[uint8](22, 1)
	assert.NoError(t, err)
	_, err = triangle.ID[uint8](23, 1)
	assert.ErrorIs(t, err, triangle.ErrOverflow)

	_, err = triangle.ID[int64](math.MaxInt64, 1)
	assert.ErrorIs(t, err, triangle.ErrOverflow)
}

func TestID_OutOfGrid(t *testing.T) {
	for _, xy := range [][2]int{{0, 1}, {1, 0}, {-3, 5}} {
		_, err := triangle.ID(xy[0], xy[1])
		assert.ErrorIs(t, err, triangle.ErrOutOfGrid)
	}
	_, _, err := triangle.Position(0)
	assert.ErrorIs(t, err, triangle.ErrOutOfGrid)
}

func TestPosition_RoundTrip(t *testing.T) {
	for id := 1; id <= 5000; id++ {
		x, y, err := triangle.Position(id)
		require.NoError(t, err)
		back, err := triangle.ID(x, y)
		require.NoError(t, err)
		require.Equal(t, id, back, "Position(%d) = (%d,%d)", id, x, y)
	}

	x, y, err := triangle.Position[uint8](253)
	require.NoError(t, err)
	assert.Equal(t, [2]uint8{22, 1}, [2]uint8{x, y})

	// 255 lies on diagonal 23, whose last number does not fit a uint8
	_, _, err = triangle.Position[uint8](255)
	assert.ErrorIs(t, err, triangle.ErrOverflow)
}
