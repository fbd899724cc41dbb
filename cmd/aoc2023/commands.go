package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ilyalavrinov/justforfun/adventofcode2023/internal/puzzle"
)

func (a *app) solveCmd() *cobra.Command {
	var sample bool
	cmd := &cobra.Command{
		Use:   "solve <day> [input-file]",
		Short: "Solve one day",
		Long: `Solves one day and prints its answers.

The input is read from input-file if given, otherwise from the config file's
inputs entry for the day, otherwise from stdin. --sample uses the example
from the puzzle text instead.`,
		Args: withUsageError(cobra.RangeArgs(1, 2)),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.lookup(args[0])
			if err != nil {
				return err
			}
			if sample && len(args) == 2 {
				return usageError(fmt.Errorf("--sample and input-file are mutually exclusive"))
			}

			var input string
			switch {
			case sample:
				input = p.Sample
			case len(args) == 2:
				input, err = readFile(args[1])
			default:
				input, err = a.configuredInput(p.Day)
			}
			if err != nil {
				return err
			}

			ans, err := a.registry.Solve(cmd.Context(), p.Day, input)
			if err != nil {
				return err
			}
			fmt.Fprintln(a.out, ans)
			return nil
		},
	}
	cmd.Flags().BoolVar(&sample, "sample", false, "solve the example input")
	return cmd
}

func (a *app) allCmd() *cobra.Command {
	var sample bool
	cmd := &cobra.Command{
		Use:   "all",
		Short: "Solve every day that has an input",
		Long: `Solves all days concurrently. Without --sample only days listed under
inputs in the config file are solved.`,
		Args: withUsageError(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs := make(map[int]string)
			for _, p := range a.registry.All() {
				if sample {
					inputs[p.Day] = p.Sample
					continue
				}
				path, ok := a.cfg.InputPath(p.Day)
				if !ok {
					a.logger.Debug("no input configured", zap.Int("day", p.Day))
					continue
				}
				input, err := readFile(path)
				if err != nil {
					return err
				}
				inputs[p.Day] = input
			}
			if len(inputs) == 0 {
				return usageError(fmt.Errorf("no inputs configured; use --config or --sample"))
			}

			answers, err := a.registry.SolveAll(cmd.Context(), inputs)
			if err != nil {
				return err
			}
			for _, p := range a.registry.All() {
				ans, ok := answers[p.Day]
				if !ok {
					continue
				}
				fmt.Fprintf(a.out, "Day %d: %s\n%s\n", p.Day, p.Name, ans)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&sample, "sample", false, "solve the example inputs")
	return cmd
}

func (a *app) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List solved days",
		Args:  withUsageError(cobra.NoArgs),
		Run: func(cmd *cobra.Command, args []string) {
			for _, p := range a.registry.All() {
				fmt.Fprintf(a.out, "%2d  %s\n", p.Day, p.Name)
			}
		},
	}
}

func (a *app) lookup(arg string) (puzzle.Puzzle, error) {
	day, err := strconv.Atoi(arg)
	if err != nil {
		return puzzle.Puzzle{}, usageError(fmt.Errorf("day must be a number, got %q", arg))
	}
	p, ok := a.registry.Lookup(day)
	if !ok {
		return puzzle.Puzzle{}, usageError(fmt.Errorf("day %d is not solved", day))
	}
	return p, nil
}

func (a *app) configuredInput(day int) (string, error) {
	if path, ok := a.cfg.InputPath(day); ok {
		a.logger.Debug("reading configured input", zap.Int("day", day), zap.String("path", path))
		return readFile(path)
	}
	data, err := io.ReadAll(a.in)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(data), nil
}

func readFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return string(data), nil
}
