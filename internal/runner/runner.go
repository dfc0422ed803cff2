// Package runner maps solver names to YAML-decoding entry points and runs
// them one at a time or as a bounded concurrent batch.
package runner

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvlpuzzle/flow"
)

var (
	// ErrUnknownSolver indicates a name missing from the registry.
	ErrUnknownSolver = errors.New("runner: unknown solver")
	// ErrBadInput indicates an input document that does not decode.
	ErrBadInput = errors.New("runner: bad input")
)

// solveFunc decodes its input from node and returns a YAML-encodable answer.
type solveFunc func(ctx context.Context, node *yaml.Node) (any, error)

type solver struct {
	about string
	run   solveFunc
}

// Runner holds the solver registry and the defaults they run with.
type Runner struct {
	flowOpts flow.Options
	solvers  map[string]solver
}

// New returns a Runner with every solver registered. flowOpts supplies the
// defaults of the flow solver; inputs may override the strategy.
func New(flowOpts flow.Options) *Runner {
	r := &Runner{flowOpts: flowOpts, solvers: make(map[string]solver)}
	r.registerAll()

	return r
}

// register wraps fn with a decoder for its input type.
func register[In any](r *Runner, name, about string, fn func(ctx context.Context, in In) (any, error)) {
	r.solvers[name] = solver{
		about: about,
		run: func(ctx context.Context, node *yaml.Node) (any, error) {
			var in In
			if node != nil && node.Kind != 0 {
				if err := node.Decode(&in); err != nil {
					return nil, fmt.Errorf("%w: %s: %v", ErrBadInput, name, err)
				}
			}
			return fn(ctx, in)
		},
	}
}

// Names returns the registered solver names in ascending order.
func (r *Runner) Names() []string {
	names := make([]string, 0, len(r.solvers))
	for name := range r.solvers {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// About returns the one-line description of a solver.
func (r *Runner) About(name string) string {
	return r.solvers[name].about
}

// Run decodes input for the named solver and solves it.
func (r *Runner) Run(ctx context.Context, name string, input *yaml.Node) (any, error) {
	s, ok := r.solvers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSolver, name)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	start := time.Now()
	out, err := s.run(ctx, input)
	zerolog.Ctx(ctx).Debug().
		Str("solver", name).
		Dur("elapsed", time.Since(start)).
		Err(err).
		Msg("solved")

	return out, err
}
