package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func (a *app) solveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "solve SOLVER [FILE]",
		Short: "Solve one input document",
		Long: `Solve reads one YAML or JSON document from FILE, or from stdin when FILE
is omitted or "-", and prints the answer.

Example:
  echo '{entrances: [0], exits: [3], path: [[0,7,0,0],[0,0,6,0],[0,0,0,8],[9,0,0,0]]}' \
    | lvlpuzzle solve flow`,
		Args: cobra.RangeArgs(1, 2),
		RunE: a.runSolve,
	}
}

func (a *app) runSolve(cmd *cobra.Command, args []string) error {
	var src io.Reader = cmd.InOrStdin()
	if len(args) == 2 && args[1] != "-" {
		f, err := os.Open(args[1])
		if err != nil {
			return fmt.Errorf("failed to open input: %w", err)
		}
		defer f.Close()
		src = f
	}
	data, err := io.ReadAll(src)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	var input yaml.Node
	if err := yaml.Unmarshal(data, &input); err != nil {
		return fmt.Errorf("failed to parse input: %w", err)
	}

	ctx, cancel := a.solveContext(cmd)
	defer cancel()
	out, err := a.runner.Run(ctx, args[0], &input)
	if err != nil {
		return err
	}

	return printResult(cmd.OutOrStdout(), out)
}

// printResult writes strings verbatim and everything else as YAML.
func printResult(w io.Writer, v any) error {
	if s, ok := v.(string); ok {
		_, err := fmt.Fprintln(w, s)
		return err
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}

	return enc.Close()
}
