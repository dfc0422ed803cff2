// Package nebula counts the previous states of a boolean cellular automaton.
//
// What:
//
//   - Grid wraps a rectangular [][]bool state; true cells are "gas".
//   - Evolve applies one step: cell (x,y) of the next state is gas iff exactly
//     one of the four cells (x,y), (x+1,y), (x,y+1), (x+1,y+1) was gas.
//     An (h+1)×(w+1) state therefore evolves into an h×w one.
//   - CountPreimages returns how many (h+1)×(w+1) states evolve into a given
//     h×w state.
//
// How:
//
//   - The grid is transposed when it is wider than tall; the count is the same
//     and the narrow side becomes the row.
//   - A previous state is built row by row. Each candidate row is a (w+1)-bit
//     mask, and the number of partial preimages ending in each mask is carried
//     from one target row to the next.
//   - For every target row the compatible (upper, lower) mask pairs are
//     generated bit by bit: given three cells of a 2×2 window and the target
//     cell, the fourth cell is forced except when two or more are already gas.
//
// Complexity:
//
//   - CountPreimages: O(H × 2^(W+1) × S) big-integer additions, where S is the
//     average number of compatible lower rows per upper row. Memory O(2^(W+1)).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrTooWide: the narrow side exceeds MaxNarrowSide.
//   - ErrTooSmall: Evolve on a grid with a side shorter than 2.
package nebula
