package sieve_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlpuzzle/sieve"
)

func TestPrimes(t *testing.T) {
	want := []int{2, 3, 5, 7, 11, 13, 17, 19, 23, 29}
	if diff := cmp.Diff(want, sieve.Primes(30)); diff != "" {
		t.Errorf("Primes(30) mismatch (-want +got):\n%s", diff)
	}
	assert.Empty(t, sieve.Primes(1))
	assert.Equal(t, []int{2}, sieve.Primes(2))
	assert.Len(t, sieve.Primes(100000), 9592)
}

func TestDigits(t *testing.T) {
	assert.Equal(t, "", sieve.Digits(0))
	assert.Equal(t, "2357111317", sieve.Digits(10))
	assert.Len(t, sieve.Digits(20000), 20000)
}

func TestID(t *testing.T) {
	cases := []struct {
		index int
		want  string
	}{
		{0, "23571"},
		{3, "71113"},
		{5, "11317"},
	}
	for _, tc := range cases {
		got, err := sieve.ID(tc.index)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "ID(%d)", tc.index)
	}

	// far indices still yield five digits
	got, err := sieve.ID(10000)
	require.NoError(t, err)
	assert.Len(t, got, sieve.IDLength)

	_, err = sieve.ID(-1)
	assert.ErrorIs(t, err, sieve.ErrNegativeIndex)
	_, err = sieve.ID(sieve.MaxIndex + 1)
	assert.ErrorIs(t, err, sieve.ErrIndexTooLarge)
}
