// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All functions return these sentinels (possibly wrapped with fmt.Errorf %w
// for context) and tests match them via errors.Is. Nothing panics on
// user-triggered conditions.

package matrix

import "errors"

// Every message is prefixed with "matrix: ..." for easy grepping across logs.
//
// ERROR PRIORITY (enforced in tests):
// nil -> shape -> index -> dimension mismatch -> structural (square, singular).

var (
	// ErrBadShape is returned when a requested shape is invalid (r<=0, c<=0)
	// or when input rows have differing lengths.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Sub of different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrSingular is returned when a column has no non-zero pivot during inversion.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")
)
