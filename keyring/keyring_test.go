package keyring_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat/combin"

	"github.com/katalvlaran/lvlpuzzle/keyring"
)

func TestDistribute_Known(t *testing.T) {
	cases := []struct {
		holders, required int
		want              [][]int
	}{
		{5, 3, [][]int{
			{0, 1, 2, 3, 4, 5},
			{0, 1, 2, 6, 7, 8},
			{0, 3, 4, 6, 7, 9},
			{1, 3, 5, 6, 8, 9},
			{2, 4, 5, 7, 8, 9},
		}},
		{2, 1, [][]int{{0}, {0}}},
		{4, 4, [][]int{{0}, {1}, {2}, {3}}},
		{3, 0, [][]int{{}, {}, {}}},
		{1, 1, [][]int{{0}}},
	}
	for _, tc := range cases {
		got, err := keyring.Distribute(tc.holders, tc.required)
		require.NoError(t, err)
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("Distribute(%d, %d) mismatch (-want +got):\n%s", tc.holders, tc.required, diff)
		}
	}
}

func TestDistribute_Errors(t *testing.T) {
	_, err := keyring.Distribute(0, 0)
	assert.ErrorIs(t, err, keyring.ErrBadHolders)
	_, err = keyring.Distribute(keyring.MaxHolders+1, 1)
	assert.ErrorIs(t, err, keyring.ErrBadHolders)
	_, err = keyring.Distribute(3, 4)
	assert.ErrorIs(t, err, keyring.ErrBadRequired)
	_, err = keyring.Distribute(3, -1)
	assert.ErrorIs(t, err, keyring.ErrBadRequired)
}

// covers reports whether the union of the holders' keys is 0..keys-1.
func covers(lists [][]int, group []int, keys int) bool {
	seen := make([]bool, keys)
	for _, h := range group {
		for _, k := range lists[h] {
			seen[k] = true
		}
	}
	for _, ok := range seen {
		if !ok {
			return false
		}
	}

	return true
}

// TestDistribute_Property checks the defining property on every group.
func TestDistribute_Property(t *testing.T) {
	for n := 1; n <= 7; n++ {
		for r := 1; r <= n; r++ {
			lists, err := keyring.Distribute(n, r)
			require.NoError(t, err)
			keys := combin.Binomial(n, r-1)

			for _, group := range combin.Combinations(n, r) {
				assert.True(t, covers(lists, group, keys), "n=%d r=%d group %v misses a key", n, r, group)
			}
			if r > 1 {
				for _, group := range combin.Combinations(n, r-1) {
					assert.False(t, covers(lists, group, keys), "n=%d r=%d group %v opens the door", n, r, group)
				}
			}
			for h, l := range lists {
				assert.IsIncreasing(t, l, "holder %d", h)
				assert.Len(t, l, keys*(n-r+1)/n)
			}
		}
	}
}
