package flow_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlpuzzle/flow"
)

// randomNetwork returns an n×n matrix with roughly p density of edges of
// capacity 1..maxCap, plus disjoint non-empty entrance and exit sets.
func randomNetwork(r *rand.Rand, n int, p float64, maxCap int64) ([][]int64, []int, []int) {
	caps := make([][]int64, n)
	for u := range caps {
		caps[u] = make([]int64, n)
		for v := range caps[u] {
			if u != v && r.Float64() < p {
				caps[u][v] = r.Int63n(maxCap) + 1
			}
		}
	}
	perm := r.Perm(n)
	ne := 1 + r.Intn(n/2)
	nx := 1 + r.Intn(n-ne)

	return caps, perm[:ne], perm[ne : ne+nx]
}

// bruteMinCut enumerates every cut that keeps entrances on the source side and
// exits on the sink side and returns the smallest capacity.
func bruteMinCut(caps [][]int64, entrances, exits []int) int64 {
	n := len(caps)
	fixed := make(map[int]bool, n)
	sourceSide := make([]bool, n)
	for _, e := range entrances {
		fixed[e], sourceSide[e] = true, true
	}
	for _, x := range exits {
		fixed[x] = true
	}
	free := make([]int, 0, n)
	for v := 0; v < n; v++ {
		if !fixed[v] {
			free = append(free, v)
		}
	}

	best := int64(-1)
	for mask := 0; mask < 1<<len(free); mask++ {
		side := append([]bool(nil), sourceSide...)
		for i, v := range free {
			side[v] = mask&(1<<i) != 0
		}
		var cut int64
		for u := 0; u < n; u++ {
			for v := 0; v < n; v++ {
				if side[u] && !side[v] {
					cut += caps[u][v]
				}
			}
		}
		if best < 0 || cut < best {
			best = cut
		}
	}

	return best
}

func transpose(m [][]int64) [][]int64 {
	out := make([][]int64, len(m))
	for i := range out {
		out[i] = make([]int64, len(m))
		for j := range out[i] {
			out[i][j] = m[j][i]
		}
	}

	return out
}

// TestStrategiesAgreeWithMinCut compares all three path searches against an
// exhaustive minimum cut on small random networks.
func TestStrategiesAgreeWithMinCut(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	strategies := []flow.Strategy{flow.WidestFirst, flow.BreadthFirst, flow.DepthFirst}

	for round := 0; round < 200; round++ {
		n := 2 + r.Intn(7)
		caps, entrances, exits := randomNetwork(r, n, 0.4, 9)
		want := bruteMinCut(caps, entrances, exits)

		for _, s := range strategies {
			opts := flow.DefaultOptions()
			opts.Strategy = s
			res, err := flow.Solve(entrances, exits, caps, opts)
			require.NoError(t, err)
			require.Equal(t, want, res.Flow, "round %d strategy %s", round, s)
			assertResidualIntegrity(t, caps, res.Residual)
		}
	}
}

// TestSymmetry swaps entrances with exits and reverses every edge.
func TestSymmetry(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for round := 0; round < 100; round++ {
		caps, entrances, exits := randomNetwork(r, 3+r.Intn(10), 0.3, 20)

		forward, err := flow.MaxFlow(entrances, exits, caps, flow.DefaultOptions())
		require.NoError(t, err)
		backward, err := flow.MaxFlow(exits, entrances, transpose(caps), flow.DefaultOptions())
		require.NoError(t, err)
		assert.Equal(t, forward, backward, "round %d", round)
	}
}

// TestFlowBounds checks the flow never exceeds what leaves the entrance set or
// what enters the exit set.
func TestFlowBounds(t *testing.T) {
	r := rand.New(rand.NewSource(2024))
	for round := 0; round < 100; round++ {
		caps, entrances, exits := randomNetwork(r, 3+r.Intn(12), 0.35, 15)

		isEntrance := make(map[int]bool)
		for _, e := range entrances {
			isEntrance[e] = true
		}
		isExit := make(map[int]bool)
		for _, x := range exits {
			isExit[x] = true
		}
		var out, in int64
		for u := range caps {
			for v, c := range caps[u] {
				if isEntrance[u] && !isEntrance[v] {
					out += c
				}
				if isExit[v] && !isExit[u] {
					in += c
				}
			}
		}

		mf, err := flow.MaxFlow(entrances, exits, caps, flow.DefaultOptions())
		require.NoError(t, err)
		assert.LessOrEqual(t, mf, out)
		assert.LessOrEqual(t, mf, in)
	}
}

// TestParseStrategy maps names to constants and back.
func TestParseStrategy(t *testing.T) {
	cases := map[string]flow.Strategy{
		"":               flow.WidestFirst,
		"widest":         flow.WidestFirst,
		"BFS":            flow.BreadthFirst,
		"edmonds-karp":   flow.BreadthFirst,
		" dfs ":          flow.DepthFirst,
		"ford-fulkerson": flow.DepthFirst,
	}
	for name, want := range cases {
		got, err := flow.ParseStrategy(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	_, err := flow.ParseStrategy("dinic")
	assert.ErrorIs(t, err, flow.ErrUnknownStrategy)

	assert.Equal(t, "bfs", flow.BreadthFirst.String())
	assert.Equal(t, "Strategy(9)", flow.Strategy(9).String())
}
