// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math/big"
)

// Sub returns a − b.
// Stage 1 (Validate): non-nil operands of equal shape.
// Stage 2 (Execute): element-wise difference into a fresh Dense.
// Complexity: O(r*c).
func Sub(a, b *Dense) (*Dense, error) {
	if a == nil || b == nil {
		return nil, fmt.Errorf("Sub: %w", ErrNilMatrix)
	}
	if a.r != b.r || a.c != b.c {
		return nil, fmt.Errorf("Sub: %dx%d vs %dx%d: %w", a.r, a.c, b.r, b.c, ErrDimensionMismatch)
	}
	out, err := NewDense(a.r, a.c)
	if err != nil {
		return nil, err
	}
	for i := range out.data {
		out.data[i].Sub(a.data[i], b.data[i])
	}

	return out, nil
}

// Mul returns the matrix product a·b.
// Stage 1 (Validate): non-nil operands, a.Cols == b.Rows.
// Stage 2 (Execute): triple loop in i-k-j order, skipping zero a[i][k].
// Complexity: O(r·k·c).
func Mul(a, b *Dense) (*Dense, error) {
	if a == nil || b == nil {
		return nil, fmt.Errorf("Mul: %w", ErrNilMatrix)
	}
	if a.c != b.r {
		return nil, fmt.Errorf("Mul: %dx%d · %dx%d: %w", a.r, a.c, b.r, b.c, ErrDimensionMismatch)
	}
	out, err := NewDense(a.r, b.c)
	if err != nil {
		return nil, err
	}
	term := new(big.Rat)
	for i := 0; i < a.r; i++ {
		for k := 0; k < a.c; k++ {
			aik := a.data[i*a.c+k]
			if aik.Sign() == 0 {
				continue
			}
			for j := 0; j < b.c; j++ {
				term.Mul(aik, b.data[k*b.c+j])
				out.data[i*out.c+j].Add(out.data[i*out.c+j], term)
			}
		}
	}

	return out, nil
}

// Slice returns a copy of the block rows [r0,r1) × cols [c0,c1).
// Returns ErrOutOfRange for bounds outside m and ErrBadShape for an empty block.
func Slice(m *Dense, r0, r1, c0, c1 int) (*Dense, error) {
	if m == nil {
		return nil, fmt.Errorf("Slice: %w", ErrNilMatrix)
	}
	if r0 < 0 || c0 < 0 || r1 > m.r || c1 > m.c {
		return nil, fmt.Errorf("Slice[%d:%d,%d:%d] of %dx%d: %w", r0, r1, c0, c1, m.r, m.c, ErrOutOfRange)
	}
	out, err := NewDense(r1-r0, c1-c0)
	if err != nil {
		return nil, err
	}
	for i := r0; i < r1; i++ {
		for j := c0; j < c1; j++ {
			out.data[(i-r0)*out.c+(j-c0)].Set(m.data[i*m.c+j])
		}
	}

	return out, nil
}
