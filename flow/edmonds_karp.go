package flow

// breadthFirstPath is the Edmonds–Karp search: plain FIFO BFS over positive
// residual capacities, neighbours in index order, so the path found has the
// fewest edges.
//
// Complexity: O(V²) per call on a dense matrix.
func breadthFirstPath(residual [][]int64, parent []int) bool {
	n := len(residual)
	sink := n - 1
	resetParent(parent)

	visited := make([]bool, n)
	visited[source] = true
	queue := []int{source}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for v, c := range residual[u] {
			if c <= 0 || visited[v] {
				continue
			}
			visited[v] = true
			parent[v] = u
			if v == sink {
				return true
			}
			queue = append(queue, v)
		}
	}

	return false
}
