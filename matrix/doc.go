// SPDX-License-Identifier: MIT

// Package matrix provides dense matrices of exact rationals (*big.Rat).
//
// What:
//
//   - Dense: row-major r×c matrix of *big.Rat, zero-initialised.
//   - Constructors: NewDense, Identity, FromInts.
//   - Element access: At / Set return ErrOutOfRange instead of panicking.
//   - Arithmetic: Sub, Mul, Slice (sub-block copy), Clone.
//   - Inverse: Gauss–Jordan elimination with the first non-zero pivot; since
//     arithmetic is exact no numeric pivoting policy is needed.
//
// Why:
//
//	Probability computations on absorbing Markov chains must return exact
//	fractions. float64 rounding would turn 3/14 into 0.21428571428571427
//	and break any "numerators over a common denominator" answer.
//
// Values are copied in and out: At returns a fresh *big.Rat and Set stores a
// copy, so callers can never alias the matrix storage.
//
// Complexity:
//
//   - Mul:     O(r·k·c) rational multiplications.
//   - Inverse: O(n³) rational operations, O(n²) memory.
//
// Errors:
//
//   - ErrBadShape:          non-positive dimensions or ragged input.
//   - ErrOutOfRange:        At/Set/Slice index outside the matrix.
//   - ErrDimensionMismatch: incompatible operands.
//   - ErrNonSquare:         Inverse/Identity on a non-square shape.
//   - ErrSingular:          no non-zero pivot in a column during Inverse.
//   - ErrNilMatrix:         nil receiver or argument.
package matrix
