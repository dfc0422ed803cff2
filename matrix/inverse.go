// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math/big"
)

// Inverse returns the inverse of the square matrix m, or an error if m is not
// square or singular.
// Blueprint:
//
//	Stage 1 (Validate): ensure m is non-nil and square.
//	Stage 2 (Prepare): augmented working copy [m | I].
//	Stage 3 (Execute): Gauss–Jordan; for each column pick the first row at or
//	        below the diagonal with a non-zero entry, swap it up, scale it to a
//	        unit pivot and eliminate the column from every other row.
//	Stage 4 (Finalize): the right half is m⁻¹.
//
// Arithmetic is exact, so any non-zero pivot is as good as another.
// Complexity: O(n³) rational operations, O(n²) memory.
func Inverse(m *Dense) (*Dense, error) {
	// Stage 1: Validate input shape
	if m == nil {
		return nil, fmt.Errorf("Inverse: %w", ErrNilMatrix)
	}
	if m.r != m.c {
		return nil, fmt.Errorf("Inverse: non-square %dx%d: %w", m.r, m.c, ErrNonSquare)
	}
	n := m.r

	// Stage 2: work[i] = [m row i | e_i]
	work := make([][]*big.Rat, n)
	for i := 0; i < n; i++ {
		work[i] = make([]*big.Rat, 2*n)
		for j := 0; j < n; j++ {
			work[i][j] = new(big.Rat).Set(m.data[i*n+j])
			work[i][n+j] = new(big.Rat)
		}
		work[i][n+i].SetInt64(1)
	}

	// Stage 3: eliminate column by column
	var (
		scale = new(big.Rat) // 1/pivot or the row factor
		term  = new(big.Rat) // factor·work[col][j]
	)
	for col := 0; col < n; col++ {
		pivot := -1
		for i := col; i < n; i++ {
			if work[i][col].Sign() != 0 {
				pivot = i
				break
			}
		}
		if pivot < 0 {
			return nil, fmt.Errorf("Inverse: no pivot in column %d: %w", col, ErrSingular)
		}
		work[col], work[pivot] = work[pivot], work[col]

		// normalise the pivot row
		scale.Inv(work[col][col])
		for j := col; j < 2*n; j++ {
			work[col][j].Mul(work[col][j], scale)
		}

		// clear the column everywhere else
		for i := 0; i < n; i++ {
			if i == col || work[i][col].Sign() == 0 {
				continue
			}
			scale.Set(work[i][col])
			for j := col; j < 2*n; j++ {
				term.Mul(scale, work[col][j])
				work[i][j].Sub(work[i][j], term)
			}
		}
	}

	// Stage 4: copy out the right half
	inv, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			inv.data[i*n+j].Set(work[i][n+j])
		}
	}

	return inv, nil
}
