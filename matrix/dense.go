// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math/big"
	"strings"
)

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of exact rationals.
// r is rows, c is columns, and data holds r*c non-nil elements in row-major order.
type Dense struct {
	r, c int        // number of rows and columns
	data []*big.Rat // flat backing storage, length == r*c
}

// NewDense creates an r×c Dense matrix initialised to zeros.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate flat backing slice of zero rationals.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrBadShape)
	}
	data := make([]*big.Rat, rows*cols)
	for i := range data {
		data[i] = new(big.Rat)
	}

	return &Dense{r: rows, c: cols, data: data}, nil
}

// Identity returns the n×n identity matrix.
// Complexity: O(n²).
func Identity(n int) (*Dense, error) {
	m, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i].SetInt64(1)
	}

	return m, nil
}

// FromInts builds a Dense from a rectangular [][]int64.
// Returns ErrBadShape for empty or ragged input.
// Complexity: O(r*c).
func FromInts(rows [][]int64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("FromInts: %w", ErrBadShape)
	}
	m, err := NewDense(len(rows), len(rows[0]))
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != m.c {
			return nil, fmt.Errorf("FromInts: row %d has %d entries, want %d: %w", i, len(row), m.c, ErrBadShape)
		}
		for j, v := range row {
			m.data[i*m.c+j].SetInt64(v)
		}
	}

	return m, nil
}

// Rows returns the number of rows in the matrix.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns in the matrix.
func (m *Dense) Cols() int { return m.c }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if m == nil {
		return 0, denseErrorf(method, row, col, ErrNilMatrix)
	}
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At returns a copy of the element at (row, col).
// Complexity: O(1) plus the size of the rational.
func (m *Dense) At(row, col int) (*big.Rat, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return nil, err
	}

	return new(big.Rat).Set(m.data[idx]), nil
}

// Set stores a copy of v at (row, col). A nil v stores zero.
func (m *Dense) Set(row, col int, v *big.Rat) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	if v == nil {
		m.data[idx].SetInt64(0)
		return nil
	}
	m.data[idx].Set(v)

	return nil
}

// Clone returns a deep copy of m.
func (m *Dense) Clone() *Dense {
	if m == nil {
		return nil
	}
	data := make([]*big.Rat, len(m.data))
	for i, v := range m.data {
		data[i] = new(big.Rat).Set(v)
	}

	return &Dense{r: m.r, c: m.c, data: data}
}

// Row returns copies of the elements of row i.
func (m *Dense) Row(i int) ([]*big.Rat, error) {
	if _, err := m.indexOf("Row", i, 0); err != nil {
		return nil, err
	}
	out := make([]*big.Rat, m.c)
	for j := range out {
		out[j] = new(big.Rat).Set(m.data[i*m.c+j])
	}

	return out, nil
}

// String renders the matrix one row per line, elements as reduced fractions.
func (m *Dense) String() string {
	if m == nil {
		return "<nil>"
	}
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteByte('[')
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(m.data[i*m.c+j].RatString())
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
