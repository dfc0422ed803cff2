package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvlpuzzle/internal/runner"
)

// batchRecord is the printed form of a runner.Result.
type batchRecord struct {
	Name   string `yaml:"name"`
	Solver string `yaml:"solver"`
	Output any    `yaml:"output,omitempty"`
	Error  string `yaml:"error,omitempty"`
}

func (a *app) batchCmd() *cobra.Command {
	var concurrency int
	cmd := &cobra.Command{
		Use:   "batch FILE",
		Short: "Solve every case of a YAML batch file concurrently",
		Long: `Batch reads a YAML list of cases:

  - name: pods
    solver: flow
    input: {entrances: [0], exits: [3], path: [[0,7,0,0],[0,0,6,0],[0,0,0,8],[9,0,0,0]]}
  - name: fuel
    solver: markov
    input: {matrix: [[0,1],[0,0]]}

Cases run concurrently, at most --concurrency (or the config value) at a
time. Results are printed in input order; a failing case is reported and the
command exits non-zero once all cases finished.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read batch: %w", err)
			}
			var cases []runner.Case
			if err := yaml.Unmarshal(data, &cases); err != nil {
				return fmt.Errorf("failed to parse batch: %w", err)
			}

			limit := a.cfg.Concurrency
			if cmd.Flags().Changed("concurrency") {
				limit = concurrency
			}
			ctx, cancel := a.solveContext(cmd)
			defer cancel()
			results := a.runner.Batch(ctx, cases, limit)

			records := make([]batchRecord, len(results))
			failed := 0
			for i, res := range results {
				records[i] = batchRecord{Name: res.Name, Solver: res.Solver, Output: res.Output}
				if res.Err != nil {
					records[i].Error = res.Err.Error()
					failed++
				}
			}
			if err := printResult(cmd.OutOrStdout(), records); err != nil {
				return err
			}
			log.Info().Int("cases", len(results)).Int("failed", failed).Msg("batch done")
			if failed > 0 {
				return fmt.Errorf("%d of %d cases failed", failed, len(results))
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&concurrency, "concurrency", "j", 0, "Cases solved at once (overrides config)")

	return cmd
}
