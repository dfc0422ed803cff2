package flow

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for capacity validation and option handling.
var (
	// ErrEmptyGraph indicates a capacity matrix without rows.
	ErrEmptyGraph = errors.New("flow: capacity matrix is empty")

	// ErrNonSquare indicates a row whose length differs from the number of rows.
	ErrNonSquare = errors.New("flow: capacity matrix is not square")

	// ErrNodeOutOfRange indicates an entrance or exit outside 0..n-1.
	ErrNodeOutOfRange = errors.New("flow: node index out of range")

	// ErrOverlappingTerminals indicates a node listed as entrance and exit at once.
	ErrOverlappingTerminals = errors.New("flow: node is both an entrance and an exit")

	// ErrCapacityOverflow indicates the sum of finite capacities overflows int64.
	ErrCapacityOverflow = errors.New("flow: total capacity overflows int64")

	// ErrInfinityTooSmall indicates an explicit infinity that a finite path could reach.
	ErrInfinityTooSmall = errors.New("flow: infinity must exceed the total finite capacity")

	// ErrNonIntegral indicates a graph weight that is not a whole number.
	ErrNonIntegral = errors.New("flow: capacity is not a whole number")

	// ErrUnknownStrategy indicates an unsupported path search strategy.
	ErrUnknownStrategy = errors.New("flow: unknown strategy")
)

// CapacityError is returned when an edge has a negative capacity.
type CapacityError struct {
	From, To int
	Cap      float64
}

func (e CapacityError) Error() string {
	return fmt.Sprintf("flow: negative capacity on edge %d→%d: %g", e.From, e.To, e.Cap)
}

// Strategy selects how augmenting paths are searched.
type Strategy int

const (
	// WidestFirst queues neighbours by decreasing residual capacity.
	WidestFirst Strategy = iota
	// BreadthFirst finds fewest-edge paths (Edmonds–Karp).
	BreadthFirst
	// DepthFirst finds any path by iterative DFS (Ford–Fulkerson).
	DepthFirst
)

var strategyNames = map[Strategy]string{
	WidestFirst:  "widest",
	BreadthFirst: "bfs",
	DepthFirst:   "dfs",
}

func (s Strategy) String() string {
	if name, ok := strategyNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Strategy(%d)", int(s))
}

// ParseStrategy maps "widest", "bfs" and "dfs" (case-insensitive) to a Strategy.
// The empty string selects WidestFirst.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "widest", "widest-first":
		return WidestFirst, nil
	case "bfs", "breadth-first", "edmonds-karp":
		return BreadthFirst, nil
	case "dfs", "depth-first", "ford-fulkerson":
		return DepthFirst, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// Options configures MaxFlow and Solve.
//   - Ctx: checked before every path search; nil means context.Background().
//   - Strategy: augmenting path search, WidestFirst by default.
//   - Infinity: capacity of the super-source and super-sink edges. Zero derives
//     it as one more than the sum of all finite capacities.
//   - Verbose: log every augmentation at debug level through zerolog.Ctx(Ctx).
type Options struct {
	Ctx      context.Context
	Strategy Strategy
	Infinity int64
	Verbose  bool
}

// DefaultOptions returns Options with a background context, WidestFirst search
// and a derived infinity.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		Strategy: WidestFirst,
	}
}

func (o *Options) normalize() {
	if o.Ctx == nil {
		o.Ctx = context.Background()
	}
}

// Result is the outcome of Solve.
//
// Residual is indexed in normalized form: 0 is the super-source, len-1 the
// super-sink and original node i sits at i+1. SourceSide lists the original
// node indices still reachable from the super-source, i.e. the source side of
// a minimum cut.
type Result struct {
	Flow          int64
	Augmentations int
	Residual      [][]int64
	SourceSide    []int
}
