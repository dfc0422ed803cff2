package flow

import (
	"math"

	"github.com/rs/zerolog"
)

// source is the index of the super-source in a normalized matrix.
const source = 0

// pathFinder fills parent with a source→sink augmenting path over positive
// residual capacities and reports whether the sink was reached.
// parent[v] == -1 marks a node outside the path tree.
type pathFinder func(residual [][]int64, parent []int) bool

func (s Strategy) finder() (pathFinder, error) {
	switch s {
	case WidestFirst:
		return widestFirstPath, nil
	case BreadthFirst:
		return breadthFirstPath, nil
	case DepthFirst:
		return depthFirstPath, nil
	}
	return nil, ErrUnknownStrategy
}

// MaxFlow returns the maximum number of units that can move concurrently from
// any entrance to any exit of the capacity matrix.
//
// See Solve for the details; MaxFlow only keeps the flow value.
func MaxFlow(entrances, exits []int, capacities [][]int64, opts Options) (int64, error) {
	res, err := Solve(entrances, exits, capacities, opts)
	if err != nil {
		return 0, err
	}

	return res.Flow, nil
}

// Solve computes the maximum flow from entrances to exits using the
// Ford–Fulkerson method with the path search chosen by opts.Strategy.
//
// Steps:
//  1. Normalize options and resolve the path search.
//  2. Build the single-source, single-sink residual matrix (Normalize).
//  3. Repeat until no augmenting path:
//     a. Check ctx for cancellation.
//     b. Search a path; stop when none is found.
//     c. Bottleneck = min residual along the path, walking sink→source.
//     d. Accumulate flow; if opts.Verbose, log path and delta.
//     e. Subtract on forward edges, add on reverse edges.
//  4. Collect the min-cut source side from the final residual matrix.
//
// Complexity:
//
//	Time:   O(V² · A) where A is the number of augmentations.
//	Memory: O(V²) for the residual matrix.
//
// The caller's matrix is never modified.
func Solve(entrances, exits []int, capacities [][]int64, opts Options) (*Result, error) {
	// 1) Options and path search
	opts.normalize()
	ctx := opts.Ctx
	find, err := opts.Strategy.finder()
	if err != nil {
		return nil, err
	}

	// 2) Residual matrix
	residual, err := Normalize(entrances, exits, capacities, opts.Infinity)
	if err != nil {
		return nil, err
	}

	logger := zerolog.Ctx(ctx)
	parent := make([]int, len(residual))
	res := &Result{}

	// 3) Augment until no path remains
	for {
		if err = ctx.Err(); err != nil {
			return nil, err
		}
		if !find(residual, parent) {
			break
		}

		delta := bottleneck(residual, parent)
		if opts.Verbose {
			logger.Debug().
				Str("strategy", opts.Strategy.String()).
				Ints("path", pathOf(parent)).
				Int64("delta", delta).
				Msg("augmenting path")
		}
		res.Flow += delta
		res.Augmentations++
		augment(residual, parent, delta)
	}

	// 4) Min-cut source side
	res.Residual = residual
	res.SourceSide = sourceSide(residual)

	return res, nil
}

// bottleneck returns the smallest residual capacity along the path recorded
// in parent.
func bottleneck(residual [][]int64, parent []int) int64 {
	delta := int64(math.MaxInt64)
	for v := len(residual) - 1; v != source; v = parent[v] {
		if c := residual[parent[v]][v]; c < delta {
			delta = c
		}
	}

	return delta
}

// augment pushes delta along the path recorded in parent.
func augment(residual [][]int64, parent []int, delta int64) {
	for v := len(residual) - 1; v != source; v = parent[v] {
		u := parent[v]
		residual[u][v] -= delta // forward
		residual[v][u] += delta // reverse
	}
}

// pathOf reconstructs the source→sink node sequence recorded in parent.
func pathOf(parent []int) []int {
	path := []int{len(parent) - 1}
	for v := len(parent) - 1; v != source; v = parent[v] {
		path = append(path, parent[v])
	}
	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}

	return path
}

// sourceSide returns the original indices of the nodes reachable from the
// super-source through positive residual capacity.
func sourceSide(residual [][]int64) []int {
	n := len(residual)
	seen := make([]bool, n)
	seen[source] = true
	stack := []int{source}
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for v, c := range residual[u] {
			if c > 0 && !seen[v] {
				seen[v] = true
				stack = append(stack, v)
			}
		}
	}

	side := make([]int, 0, n-2)
	for v := 1; v < n-1; v++ {
		if seen[v] {
			side = append(side, v-1)
		}
	}

	return side
}

// depthFirstPath is the Ford–Fulkerson search: iterative DFS that marks a node
// visited when it is pushed and stops as soon as the sink is discovered.
func depthFirstPath(residual [][]int64, parent []int) bool {
	n := len(residual)
	sink := n - 1
	resetParent(parent)

	visited := make([]bool, n)
	visited[source] = true
	stack := []int{source}
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for v, c := range residual[u] {
			if c <= 0 || visited[v] {
				continue
			}
			visited[v] = true
			parent[v] = u
			if v == sink {
				return true
			}
			stack = append(stack, v)
		}
	}

	return false
}

func resetParent(parent []int) {
	for i := range parent {
		parent[i] = -1
	}
}
