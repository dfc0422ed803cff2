// Package triangle numbers the cells of an unbounded right-triangular grid.
//
// Cells are filled one anti-diagonal at a time, starting from (1,1) = 1 and
// moving up-left along each diagonal:
//
//	| 7
//	| 4 8
//	| 2 5 9
//	| 1 3 6 10
//
// Cell (x,y) lies on diagonal d = x+y-1, whose last cell (d,1) carries the
// triangular number T(d) = d(d+1)/2. Climbing y-1 rows goes back y-1 cells:
//
//	ID(x, y) = T(x+y-1) - (y-1)
//
// Position is the inverse of ID. Both are generic over integer types and
// report ErrOverflow instead of wrapping.
package triangle

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
)

var (
	// ErrOutOfGrid indicates a coordinate or ID below 1.
	ErrOutOfGrid = errors.New("triangle: position outside the grid")
	// ErrOverflow indicates a result not representable in the integer type.
	ErrOverflow = errors.New("triangle: result overflows")
)

// ID returns the number of cell (x,y), both coordinates starting at 1.
func ID[T constraints.Integer](x, y T) (T, error) {
	if x < 1 || y < 1 {
		return 0, fmt.Errorf("triangle: (%d,%d): %w", x, y, ErrOutOfGrid)
	}
	d := x + y - 1
	if d < x {
		return 0, fmt.Errorf("triangle: (%d,%d): %w", x, y, ErrOverflow)
	}
	t, ok := tri(d)
	if !ok {
		return 0, fmt.Errorf("triangle: (%d,%d): %w", x, y, ErrOverflow)
	}

	return t - (y - 1), nil
}

// Position returns the cell numbered id.
// Complexity: O(log id).
func Position[T constraints.Integer](id T) (x, y T, err error) {
	if id < 1 {
		return 0, 0, fmt.Errorf("triangle: id %d: %w", id, ErrOutOfGrid)
	}
	// smallest d with T(d) >= id; T(id) >= id so d <= id
	lo, hi := T(1), id
	for lo < hi {
		mid := lo + (hi-lo)/2
		if t, ok := tri(mid); !ok || t >= id {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	d := lo
	t, ok := tri(d)
	if !ok {
		return 0, 0, fmt.Errorf("triangle: id %d: %w", id, ErrOverflow)
	}
	y = t - id + 1

	return d - y + 1, y, nil
}

// tri returns d(d+1)/2 and false when it does not fit in T.
func tri[T constraints.Integer](d T) (T, bool) {
	if d+1 < d {
		return 0, false
	}
	a, b := d, d+1
	if a%2 == 0 {
		a /= 2
	} else {
		b /= 2
	}
	p := a * b
	if a != 0 && (p/a != b || p < 0) {
		return 0, false
	}

	return p, true
}
