package flow

import "sort"

// widestFirstPath searches a source→sink path, preferring wide edges.
//
// Nodes leave a FIFO queue one at a time. For the current node every neighbour
// that is neither finalized nor already queued and has positive residual
// capacity is queued, widest edge first (ties by lower index). A node's
// predecessor is fixed when it is queued; later, wider routes to it are not
// revisited, so the result is a greedy heuristic, not the widest path overall.
// The search ends as soon as the sink is queued.
//
// Complexity: O(V² log V) per call on a dense matrix.
func widestFirstPath(residual [][]int64, parent []int) bool {
	n := len(residual)
	sink := n - 1
	resetParent(parent)

	// seen covers both finalized and queued nodes
	seen := make([]bool, n)
	seen[source] = true
	queue := []int{source}
	candidates := make([]int, 0, n)
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		row := residual[u]

		candidates = candidates[:0]
		for v, c := range row {
			if c > 0 && !seen[v] {
				candidates = append(candidates, v)
			}
		}
		sort.SliceStable(candidates, func(i, j int) bool {
			return row[candidates[i]] > row[candidates[j]]
		})

		for _, v := range candidates {
			seen[v] = true
			parent[v] = u
			if v == sink {
				return true
			}
			queue = append(queue, v)
		}
	}

	return false
}
