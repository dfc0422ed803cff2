// Command lvlpuzzle solves the puzzle collection from the command line.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlpuzzle/internal/config"
	"github.com/katalvlaran/lvlpuzzle/internal/logging"
	"github.com/katalvlaran/lvlpuzzle/internal/runner"
)

// app carries the state shared by all subcommands of one invocation.
type app struct {
	// Global flags
	configPath string
	logLevel   string
	noColor    bool
	timeout    time.Duration

	cfg    *config.Config
	runner *runner.Runner
}

func newRootCmd() *cobra.Command {
	a := &app{}
	rootCmd := &cobra.Command{
		Use:   "lvlpuzzle",
		Short: "Solve graph, number and automaton puzzles",
		Long: `lvlpuzzle runs a collection of puzzle solvers: maximum flow through
corridors, absorbing Markov chains, cellular automaton preimages, key
distribution, prime-digit identifiers, version ordering, diagonal numbering,
reduce-to-one and replication generations.

Inputs are YAML or JSON documents; see "lvlpuzzle list" for solver names.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	rootCmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level: trace, debug, info, warn, error (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "Disable coloured log output")
	rootCmd.PersistentFlags().DurationVar(&a.timeout, "timeout", 0, "Abort solving after this long (0 = no limit)")

	rootCmd.AddCommand(a.listCmd())
	rootCmd.AddCommand(a.solveCmd())
	rootCmd.AddCommand(a.batchCmd())

	return rootCmd
}

// setup loads the configuration, configures logging and builds the runner.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	level, err := logging.Parse(cfg.LogLevel)
	if err != nil {
		return err
	}
	logging.SetLoggerConsole(cmd.ErrOrStderr(), a.noColor || cfg.NoColor)
	logging.SetLevel(level)

	flowOpts, err := cfg.FlowOptions()
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.runner = runner.New(flowOpts)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(log.Logger.WithContext(ctx))
	log.Debug().Str("config", a.configPath).Int("concurrency", cfg.Concurrency).Msg("configured")

	return nil
}

// solveContext applies --timeout to the command context.
func (a *app) solveContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	if a.timeout > 0 {
		return context.WithTimeout(cmd.Context(), a.timeout)
	}
	return context.WithCancel(cmd.Context())
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
