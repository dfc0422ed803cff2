package nebula

import "errors"

// MaxNarrowSide bounds the shorter side of a grid passed to CountPreimages.
const MaxNarrowSide = 12

var (
	// ErrEmptyGrid indicates the input 2D slice is empty.
	ErrEmptyGrid = errors.New("nebula: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("nebula: all rows must have the same length")
	// ErrBadCell indicates a character other than '#' or '.' in a parsed grid.
	ErrBadCell = errors.New("nebula: cell must be '#' or '.'")
	// ErrTooWide indicates both sides of the grid exceed MaxNarrowSide.
	ErrTooWide = errors.New("nebula: grid too wide to count")
	// ErrTooSmall indicates a grid that cannot be evolved.
	ErrTooSmall = errors.New("nebula: grid must be at least 2x2 to evolve")
)

// Grid is an immutable rectangular automaton state. cells[y][x] is true for gas.
type Grid struct {
	width, height int
	cells         [][]bool
}
