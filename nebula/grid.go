package nebula

import (
	"fmt"
	"strings"
)

// NewGrid constructs a Grid from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if cells has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(W×H) time and memory.
func NewGrid(cells [][]bool) (*Grid, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(cells), len(cells[0])
	for _, row := range cells {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	// Deep copy to prevent external mutation
	cp := make([][]bool, h)
	for y := 0; y < h; y++ {
		cp[y] = make([]bool, w)
		copy(cp[y], cells[y])
	}

	return &Grid{width: w, height: h, cells: cp}, nil
}

// ParseGrid reads rows of '#' (gas) and '.' (empty) characters.
// Blank lines are ignored; any other character yields ErrBadCell.
func ParseGrid(s string) (*Grid, error) {
	var cells [][]bool
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		row := make([]bool, 0, len(line))
		for _, ch := range line {
			switch ch {
			case '#':
				row = append(row, true)
			case '.':
				row = append(row, false)
			default:
				return nil, fmt.Errorf("%w: %q at row %d, column %d", ErrBadCell, ch, len(cells), len(row))
			}
		}
		cells = append(cells, row)
	}

	return NewGrid(cells)
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// InBounds reports whether (x,y) lies within the grid boundaries.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// At reports whether cell (x,y) holds gas. Out-of-bounds cells are empty.
func (g *Grid) At(x, y int) bool {
	return g.InBounds(x, y) && g.cells[y][x]
}

// Cells returns a deep copy of the state.
func (g *Grid) Cells() [][]bool {
	out := make([][]bool, g.height)
	for y := range out {
		out[y] = append([]bool(nil), g.cells[y]...)
	}

	return out
}

// Transpose returns the grid mirrored along its main diagonal.
// Complexity: O(W×H).
func (g *Grid) Transpose() *Grid {
	cells := make([][]bool, g.width)
	for x := 0; x < g.width; x++ {
		cells[x] = make([]bool, g.height)
		for y := 0; y < g.height; y++ {
			cells[x][y] = g.cells[y][x]
		}
	}

	return &Grid{width: g.height, height: g.width, cells: cells}
}

// Evolve returns the next state, one row and one column smaller.
// Complexity: O(W×H).
func (g *Grid) Evolve() (*Grid, error) {
	if g.width < 2 || g.height < 2 {
		return nil, ErrTooSmall
	}
	h, w := g.height-1, g.width-1
	cells := make([][]bool, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]bool, w)
		for x := 0; x < w; x++ {
			n := 0
			for _, on := range [4]bool{g.cells[y][x], g.cells[y][x+1], g.cells[y+1][x], g.cells[y+1][x+1]} {
				if on {
					n++
				}
			}
			cells[y][x] = n == 1
		}
	}

	return &Grid{width: w, height: h, cells: cells}, nil
}

// Equal reports whether two grids have the same shape and cells.
func (g *Grid) Equal(o *Grid) bool {
	if g == nil || o == nil {
		return g == o
	}
	if g.width != o.width || g.height != o.height {
		return false
	}
	for y := range g.cells {
		for x := range g.cells[y] {
			if g.cells[y][x] != o.cells[y][x] {
				return false
			}
		}
	}

	return true
}

// String renders the grid with '#' for gas and '.' for empty cells.
func (g *Grid) String() string {
	var sb strings.Builder
	for _, row := range g.cells {
		for _, on := range row {
			if on {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// rowMask packs row y into a bitmask, bit x set for gas at column x.
func (g *Grid) rowMask(y int) uint32 {
	var m uint32
	for x, on := range g.cells[y] {
		if on {
			m |= 1 << uint(x)
		}
	}

	return m
}
