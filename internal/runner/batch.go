package runner

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

// Case is one entry of a batch file.
type Case struct {
	Name   string    `yaml:"name"`
	Solver string    `yaml:"solver"`
	Input  yaml.Node `yaml:"input"`
}

// Result is the outcome of one Case. Exactly one of Output and Err is set.
type Result struct {
	Name    string
	Solver  string
	Output  any
	Err     error
	Elapsed time.Duration
}

// Batch runs cases with at most limit of them in flight and returns their
// results in input order. A failing case is recorded in its Result and does
// not stop the others; cancelling ctx marks the cases not yet finished with
// the context error. Log lines of one batch share a random "batch" id.
func (r *Runner) Batch(ctx context.Context, cases []Case, limit int) []Result {
	if limit < 1 {
		limit = 1
	}
	logger := zerolog.Ctx(ctx).With().Str("batch", uuid.NewString()).Logger()
	ctx = logger.WithContext(ctx)
	logger.Debug().Int("cases", len(cases)).Int("limit", limit).Msg("batch started")
	results := make([]Result, len(cases))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i := range cases {
		i := i // per-iteration copy; go.mod targets go 1.21 (pre-1.22 loop semantics)
		c := &cases[i]
		results[i] = Result{Name: c.Name, Solver: c.Solver}
		g.Go(func() error {
			start := time.Now()
			out, err := r.Run(gctx, c.Solver, &c.Input)
			results[i].Output, results[i].Err = out, err
			results[i].Elapsed = time.Since(start)
			if err != nil {
				logger.Warn().Str("case", c.Name).Str("solver", c.Solver).Err(err).Msg("case failed")
			}
			// case errors stay in results; the group must not cancel its siblings
			return nil
		})
	}
	_ = g.Wait()

	return results
}
