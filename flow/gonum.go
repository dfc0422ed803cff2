package flow

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/graph"
)

// CapacitiesFromGraph converts a gonum weighted directed graph into a dense
// capacity matrix.
//
// Node IDs are sorted ascending; row/column i of the matrix corresponds to
// ids[i]. Self-loops are ignored. Every weight must be a non-negative whole
// number that fits in int64.
//
// Complexity: O(V² + E) time, O(V²) memory.
func CapacitiesFromGraph(g graph.WeightedDirected) (capacities [][]int64, ids []int64, err error) {
	nodes := graph.NodesOf(g.Nodes())
	if len(nodes) == 0 {
		return nil, nil, ErrEmptyGraph
	}

	// Stable index: ascending node IDs
	ids = make([]int64, len(nodes))
	for i, n := range nodes {
		ids[i] = n.ID()
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	index := make(map[int64]int, len(ids))
	for i, id := range ids {
		index[id] = i
	}

	capacities = make([][]int64, len(ids))
	for i := range capacities {
		capacities[i] = make([]int64, len(ids))
	}
	for i, uid := range ids {
		to := g.From(uid)
		for to.Next() {
			vid := to.Node().ID()
			if vid == uid {
				continue
			}
			w, ok := g.Weight(uid, vid)
			if !ok {
				continue
			}
			j := index[vid]
			if w < 0 {
				return nil, nil, CapacityError{From: i, To: j, Cap: w}
			}
			if w != math.Trunc(w) || w >= math.MaxInt64 || math.IsInf(w, 0) || math.IsNaN(w) {
				return nil, nil, fmt.Errorf("%w: %d→%d weight %g", ErrNonIntegral, uid, vid, w)
			}
			capacities[i][j] = int64(w)
		}
	}

	return capacities, ids, nil
}
