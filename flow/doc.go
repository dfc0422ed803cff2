// Package flow computes the maximum flow between a set of entrances and a set
// of exits in a network given as a dense capacity matrix.
//
// 🚀 What is it for?
//
//	Rooms connected by corridors, each corridor able to carry a bounded number
//	of units per time step. Several rooms are entrances, several are exits.
//	How many units can move from the entrances to the exits at once?
//
// The network is normalized first: a super-source (index 0) gets an edge of
// "infinite" capacity to every entrance, every exit gets an edge of the same
// capacity to a super-sink (last index), and every original node index shifts
// by +1. The infinity sentinel defaults to one more than the sum of all finite
// capacities, so it never constrains a real path.
//
// Flow is then accumulated in the Ford–Fulkerson manner:
//
//  1. Search an augmenting path source→sink with positive residual capacity.
//  2. Walk predecessors from sink to source to find its bottleneck.
//  3. Add the bottleneck to the total flow.
//  4. Subtract it on forward edges and add it on reverse edges.
//  5. Stop when no augmenting path remains.
//
// Three path searches are available through Options.Strategy:
//
//   - WidestFirst  — FIFO search that, at every node, queues the neighbours in
//     order of decreasing residual capacity. Predecessors are fixed when a node
//     is queued and are never revisited. Default.
//   - BreadthFirst — Edmonds–Karp: fewest-edge augmenting paths, O(V·E²).
//   - DepthFirst   — classic Ford–Fulkerson DFS, O(E·F).
//
// All three produce the same maximum flow; they differ in the number and shape
// of augmentations.
//
// # API
//
//	opts := flow.DefaultOptions()
//	f, err := flow.MaxFlow([]int{0}, []int{3}, capacities, opts)
//
//	res, err := flow.Solve(entrances, exits, capacities, opts)
//	// res.Flow, res.Augmentations, res.Residual, res.SourceSide
//
// CapacitiesFromGraph converts a gonum weighted directed graph into the dense
// matrix form expected here.
//
// # Errors
//
//	ErrEmptyGraph            - the capacity matrix has no rows.
//	ErrNonSquare             - a row length differs from the row count.
//	ErrNodeOutOfRange        - an entrance or exit index is outside 0..n-1.
//	ErrOverlappingTerminals  - a node is both an entrance and an exit.
//	ErrCapacityOverflow      - the finite capacities overflow int64 when summed.
//	ErrInfinityTooSmall      - Options.Infinity does not exceed the finite total.
//	ErrUnknownStrategy       - Options.Strategy is not one of the constants.
//	CapacityError            - a negative (or, from gonum, non-integral) capacity.
//	context.Canceled / context.DeadlineExceeded - if Options.Ctx is done.
//
// Complexity: O(V²) memory for the residual matrix; O(V²) per path search.
package flow
