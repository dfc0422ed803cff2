package flow

import (
	"fmt"
	"math"
)

// Normalize builds the single-source, single-sink form of a multi-terminal
// network.
//
// The result is an (n+2)×(n+2) matrix: row 0 is the super-source with
// `infinity` towards every entrance, the last column receives `infinity` from
// every exit, and original node i moves to index i+1. The input matrix is
// copied, never modified. An infinity ≤ 0 is derived as the sum of all finite
// capacities plus one.
//
// Complexity: O(n²) time and memory.
func Normalize(entrances, exits []int, capacities [][]int64, infinity int64) ([][]int64, error) {
	// 1) Validate shape and capacities, summing them on the way
	total, err := validateCapacities(capacities)
	if err != nil {
		return nil, err
	}
	n := len(capacities)

	// 2) Validate terminals
	isEntrance := make([]bool, n)
	for _, e := range entrances {
		if e < 0 || e >= n {
			return nil, fmt.Errorf("%w: entrance %d not in [0,%d)", ErrNodeOutOfRange, e, n)
		}
		isEntrance[e] = true
	}
	for _, x := range exits {
		if x < 0 || x >= n {
			return nil, fmt.Errorf("%w: exit %d not in [0,%d)", ErrNodeOutOfRange, x, n)
		}
		if isEntrance[x] {
			return nil, fmt.Errorf("%w: %d", ErrOverlappingTerminals, x)
		}
	}

	// 3) Resolve the sentinel
	switch {
	case infinity <= 0:
		if total == math.MaxInt64 {
			return nil, ErrCapacityOverflow
		}
		infinity = total + 1
	case infinity <= total:
		return nil, fmt.Errorf("%w: %d ≤ %d", ErrInfinityTooSmall, infinity, total)
	}

	// 4) Copy into the shifted (n+2)×(n+2) layout
	size := n + 2
	out := make([][]int64, size)
	for i := range out {
		out[i] = make([]int64, size)
	}
	for i, row := range capacities {
		copy(out[i+1][1:], row)
	}
	for _, e := range entrances {
		out[0][e+1] = infinity
	}
	for _, x := range exits {
		out[x+1][size-1] = infinity
	}

	return out, nil
}

// validateCapacities checks that capacities is non-empty, square and
// non-negative, and returns the sum of all entries.
func validateCapacities(capacities [][]int64) (int64, error) {
	n := len(capacities)
	if n == 0 {
		return 0, ErrEmptyGraph
	}
	var total int64
	for i, row := range capacities {
		if len(row) != n {
			return 0, fmt.Errorf("%w: row %d has %d entries, want %d", ErrNonSquare, i, len(row), n)
		}
		for j, c := range row {
			if c < 0 {
				return 0, CapacityError{From: i, To: j, Cap: float64(c)}
			}
			if total > math.MaxInt64-c {
				return 0, ErrCapacityOverflow
			}
			total += c
		}
	}

	return total, nil
}
