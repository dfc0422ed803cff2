package nebula

import (
	"context"
	"fmt"
	"math/big"

	"github.com/rs/zerolog"
)

// CountPreimages returns how many states evolve into g in one step.
// See CountPreimagesContext.
func CountPreimages(g *Grid) (*big.Int, error) {
	return CountPreimagesContext(context.Background(), g)
}

// CountPreimagesContext is CountPreimages with cancellation checked between
// rows and per-row progress logged at debug level through zerolog.Ctx(ctx).
//
// Steps:
//  1. Transpose so the row is the narrow side; reject rows over MaxNarrowSide.
//  2. Every (w+1)-bit mask is a possible first row, each counted once.
//  3. For each target row, push the count of every upper mask to each lower
//     mask compatible with it under that row.
//  4. Stop early with zero once no mask survives; otherwise sum the counts.
func CountPreimagesContext(ctx context.Context, g *Grid) (*big.Int, error) {
	if g == nil {
		return nil, ErrEmptyGrid
	}
	// 1) Narrow side as the row
	if g.width > g.height {
		g = g.Transpose()
	}
	w := g.width
	if w > MaxNarrowSide {
		return nil, fmt.Errorf("nebula: %dx%d grid has narrow side %d > %d: %w",
			g.height, g.width, w, MaxNarrowSide, ErrTooWide)
	}
	logger := zerolog.Ctx(ctx)

	// 2) First row is unconstrained
	size := 1 << uint(w+1)
	counts := make([]*big.Int, size)
	for i := range counts {
		counts[i] = big.NewInt(1)
	}

	// 3) Row by row; target rows repeat often, so their pair lists are cached
	cache := make(map[uint32][][]uint32)
	for y := 0; y < g.height; y++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		target := g.rowMask(y)
		succ, ok := cache[target]
		if !ok {
			succ = compatibleRows(target, w)
			cache[target] = succ
		}

		next := make([]*big.Int, size)
		live := 0
		for upper, c := range counts {
			if c == nil {
				continue
			}
			for _, lower := range succ[upper] {
				if next[lower] == nil {
					next[lower] = new(big.Int)
					live++
				}
				next[lower].Add(next[lower], c)
			}
		}
		logger.Debug().Int("row", y).Int("states", live).Msg("nebula: row counted")

		// 4) Garden of Eden
		if live == 0 {
			return new(big.Int), nil
		}
		counts = next
	}

	total := new(big.Int)
	for _, c := range counts {
		if c != nil {
			total.Add(total, c)
		}
	}

	return total, nil
}

// compatibleRows lists, for every upper mask of w+1 bits, the lower masks
// that together with it evolve into the w-bit target row.
func compatibleRows(target uint32, w int) [][]uint32 {
	size := 1 << uint(w+1)
	out := make([][]uint32, size)
	for upper := 0; upper < size; upper++ {
		var lowers []uint32
		u := uint32(upper)
		extendRow(u, target, w, 0, 0, &lowers)
		extendRow(u, target, w, 0, 1, &lowers)
		out[upper] = lowers
	}

	return out
}

// extendRow fixes bit i+1 of lower from the 2×2 window at column i and recurses.
func extendRow(upper, target uint32, w, i int, lower uint32, out *[]uint32) {
	if i == w {
		*out = append(*out, lower)
		return
	}
	n := bitAt(upper, i) + bitAt(upper, i+1) + bitAt(lower, i)
	set := lower | 1<<uint(i+1)
	if target>>uint(i)&1 == 1 {
		switch n {
		case 0:
			extendRow(upper, target, w, i+1, set, out)
		case 1:
			extendRow(upper, target, w, i+1, lower, out)
		}
		return
	}
	switch n {
	case 0:
		extendRow(upper, target, w, i+1, lower, out)
	case 1:
		extendRow(upper, target, w, i+1, set, out)
	default:
		extendRow(upper, target, w, i+1, lower, out)
		extendRow(upper, target, w, i+1, set, out)
	}
}

func bitAt(m uint32, i int) int {
	return int(m >> uint(i) & 1)
}
