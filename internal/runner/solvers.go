package runner

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/lvlpuzzle/descent"
	"github.com/katalvlaran/lvlpuzzle/euclid"
	"github.com/katalvlaran/lvlpuzzle/flow"
	"github.com/katalvlaran/lvlpuzzle/keyring"
	"github.com/katalvlaran/lvlpuzzle/markov"
	"github.com/katalvlaran/lvlpuzzle/nebula"
	"github.com/katalvlaran/lvlpuzzle/sieve"
	"github.com/katalvlaran/lvlpuzzle/triangle"
	"github.com/katalvlaran/lvlpuzzle/versions"
)

// Impossible is the euclid answer for an unreachable pair.
const Impossible = "impossible"

// FlowEdge is one corridor of an edge-list flow input.
type FlowEdge struct {
	From     int64 `yaml:"from"`
	To       int64 `yaml:"to"`
	Capacity int64 `yaml:"capacity"`
}

// FlowInput is either a dense capacity matrix (Path) or an edge list (Edges).
// With Edges, entrances and exits name node IDs rather than matrix indices.
type FlowInput struct {
	Entrances []int      `yaml:"entrances"`
	Exits     []int      `yaml:"exits"`
	Path      [][]int64  `yaml:"path"`
	Edges     []FlowEdge `yaml:"edges"`
	Strategy  string     `yaml:"strategy"`
}

// FlowOutput is the flow answer.
type FlowOutput struct {
	Flow          int64 `yaml:"flow"`
	Augmentations int   `yaml:"augmentations"`
	SourceSide    []int `yaml:"source_side,flow"`
}

// MarkovOutput is the markov answer.
type MarkovOutput struct {
	Answer        []int64  `yaml:"answer,flow"`
	Probabilities []string `yaml:"probabilities,flow"`
}

func (r *Runner) registerAll() {
	register(r, "flow", "maximum flow from entrances to exits", r.solveFlow)
	register(r, "markov", "absorption probabilities of an absorbing Markov chain", solveMarkov)
	register(r, "nebula", "number of previous states of a cellular automaton", solveNebula)
	register(r, "keyring", "key copies so that any k holders open every lock", solveKeyring)
	register(r, "sieve", "five-digit identifier from the concatenated primes", solveSieve)
	register(r, "versions", "ascending order of dotted versions", solveVersions)
	register(r, "triangle", "number of a cell in the diagonal triangle", solveTriangle)
	register(r, "descent", "fewest +1/-1/halve steps down to 1", solveDescent)
	register(r, "euclid", "generations to reach a population pair", solveEuclid)
}

func (r *Runner) solveFlow(ctx context.Context, in FlowInput) (any, error) {
	opts := r.flowOpts
	opts.Ctx = ctx
	if in.Strategy != "" {
		s, err := flow.ParseStrategy(in.Strategy)
		if err != nil {
			return nil, err
		}
		opts.Strategy = s
	}

	capacities, entrances, exits := in.Path, in.Entrances, in.Exits
	if len(in.Edges) > 0 {
		if len(in.Path) > 0 {
			return nil, fmt.Errorf("%w: flow: give either path or edges", ErrBadInput)
		}
		var err error
		if capacities, entrances, exits, err = edgeCapacities(in); err != nil {
			return nil, err
		}
	}

	res, err := flow.Solve(entrances, exits, capacities, opts)
	if err != nil {
		return nil, err
	}

	return FlowOutput{Flow: res.Flow, Augmentations: res.Augmentations, SourceSide: res.SourceSide}, nil
}

// maxEdgeCapacity is the largest capacity a float64 graph weight holds exactly.
const maxEdgeCapacity = 1 << 53

// edgeCapacities builds the dense matrix through a gonum graph and maps node
// IDs of entrances and exits to matrix indices. Parallel edges add up; each
// must be non-negative and every sum at most maxEdgeCapacity.
func edgeCapacities(in FlowInput) ([][]int64, []int, []int, error) {
	g := simple.NewWeightedDirectedGraph(0, 0)
	sums := make(map[[2]int64]int64)
	addNode := func(id int64) {
		if g.Node(id) == nil {
			g.AddNode(simple.Node(id))
		}
	}
	for _, e := range in.Edges {
		if e.From < 0 || e.To < 0 {
			return nil, nil, nil, fmt.Errorf("%w: flow: negative node id in edge %d→%d", ErrBadInput, e.From, e.To)
		}
		addNode(e.From)
		addNode(e.To)
		if e.Capacity < 0 {
			return nil, nil, nil, flow.CapacityError{From: int(e.From), To: int(e.To), Cap: float64(e.Capacity)}
		}
		if e.From == e.To {
			continue
		}
		pair := [2]int64{e.From, e.To}
		sum := sums[pair] + e.Capacity
		if e.Capacity > maxEdgeCapacity || sum > maxEdgeCapacity {
			return nil, nil, nil, fmt.Errorf("%w: flow: capacity on edge %d→%d exceeds %d", ErrBadInput, e.From, e.To, int64(maxEdgeCapacity))
		}
		sums[pair] = sum
		g.SetWeightedEdge(g.NewWeightedEdge(simple.Node(e.From), simple.Node(e.To), float64(sum)))
	}
	for _, id := range append(append([]int(nil), in.Entrances...), in.Exits...) {
		if id < 0 {
			return nil, nil, nil, fmt.Errorf("%w: flow: negative node id %d", ErrBadInput, id)
		}
		addNode(int64(id))
	}

	capacities, ids, err := flow.CapacitiesFromGraph(g)
	if err != nil {
		return nil, nil, nil, err
	}
	index := make(map[int64]int, len(ids))
	for i, id := range ids {
		index[id] = i
	}
	remap := func(nodes []int) []int {
		out := make([]int, len(nodes))
		for i, id := range nodes {
			out[i] = index[int64(id)]
		}
		return out
	}

	return capacities, remap(in.Entrances), remap(in.Exits), nil
}

type markovInput struct {
	Matrix [][]int `yaml:"matrix"`
}

func solveMarkov(_ context.Context, in markovInput) (any, error) {
	d, err := markov.Solve(in.Matrix)
	if err != nil {
		return nil, err
	}
	ints, err := d.Ints()
	if err != nil {
		return nil, err
	}
	probs := make([]string, len(d.Probabilities))
	for i, p := range d.Probabilities {
		probs[i] = p.RatString()
	}

	return MarkovOutput{Answer: ints, Probabilities: probs}, nil
}

// nebulaInput accepts a boolean matrix or rows of '#' and '.'.
type nebulaInput struct {
	Grid [][]bool `yaml:"grid"`
	Rows []string `yaml:"rows"`
}

func solveNebula(ctx context.Context, in nebulaInput) (any, error) {
	var (
		g   *nebula.Grid
		err error
	)
	if len(in.Rows) > 0 {
		g, err = nebula.ParseGrid(strings.Join(in.Rows, "\n"))
	} else {
		g, err = nebula.NewGrid(in.Grid)
	}
	if err != nil {
		return nil, err
	}
	n, err := nebula.CountPreimagesContext(ctx, g)
	if err != nil {
		return nil, err
	}

	return n.String(), nil
}

type keyringInput struct {
	Holders  int `yaml:"holders"`
	Required int `yaml:"required"`
}

func solveKeyring(_ context.Context, in keyringInput) (any, error) {
	return keyring.Distribute(in.Holders, in.Required)
}

type sieveInput struct {
	Index int `yaml:"index"`
}

func solveSieve(_ context.Context, in sieveInput) (any, error) {
	return sieve.ID(in.Index)
}

type versionsInput struct {
	List []string `yaml:"list"`
}

func solveVersions(_ context.Context, in versionsInput) (any, error) {
	return versions.Sort(in.List)
}

type triangleInput struct {
	X int64 `yaml:"x"`
	Y int64 `yaml:"y"`
}

func solveTriangle(_ context.Context, in triangleInput) (any, error) {
	return triangle.ID(in.X, in.Y)
}

// Big integers arrive as strings so they survive YAML and JSON unharmed.
type descentInput struct {
	N string `yaml:"n"`
}

func solveDescent(_ context.Context, in descentInput) (any, error) {
	return descent.StepsString(in.N)
}

type euclidInput struct {
	M string `yaml:"m"`
	F string `yaml:"f"`
}

func solveEuclid(_ context.Context, in euclidInput) (any, error) {
	n, err := euclid.GenerationsString(in.M, in.F)
	if errors.Is(err, euclid.ErrImpossible) {
		return Impossible, nil
	}
	if err != nil {
		return nil, err
	}

	return n.String(), nil
}
