// Package markov computes absorption probabilities of an absorbing Markov
// chain given as a square matrix of observed transition counts.
//
// Row i holds how many times state i was seen moving to each state j. A row of
// zeros marks a terminal (absorbing) state. The chain always starts in state 0.
//
// The solver works in exact rationals:
//
//  1. States are partitioned, stably, into non-terminals followed by terminals.
//  2. Each non-terminal row is divided by its sum, giving the blocks
//     Q (non-terminal → non-terminal) and R (non-terminal → terminal).
//  3. The fundamental matrix N = (I − Q)⁻¹ is formed with matrix.Inverse.
//  4. B = N·R; row 0 of B is the probability of ending in each terminal.
//
// Distribution.Ints renders the answer the way the puzzle expects it: the
// numerators over a common denominator, followed by that denominator.
//
// # Errors
//
//	ErrEmptyMatrix   - no rows.
//	ErrNonSquare     - a row length differs from the row count.
//	ErrNegativeCount - a transition count below zero.
//	ErrNoAbsorption  - some non-terminal states never reach a terminal.
//	ErrOverflow      - Ints cannot represent a value as int64.
package markov
