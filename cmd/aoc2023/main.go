package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ilyalavrinov/justforfun/adventofcode2023/internal/config"
	"github.com/ilyalavrinov/justforfun/adventofcode2023/internal/ctxlog"
	"github.com/ilyalavrinov/justforfun/adventofcode2023/internal/puzzle"

	_ "github.com/ilyalavrinov/justforfun/adventofcode2023/internal/almanac"
	_ "github.com/ilyalavrinov/justforfun/adventofcode2023/internal/calibration"
	_ "github.com/ilyalavrinov/justforfun/adventofcode2023/internal/cubes"
	_ "github.com/ilyalavrinov/justforfun/adventofcode2023/internal/race"
	_ "github.com/ilyalavrinov/justforfun/adventofcode2023/internal/schematic"
	_ "github.com/ilyalavrinov/justforfun/adventofcode2023/internal/scratchcards"
)

// ExitError carries the process exit code for an error.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

func usageError(err error) error {
	return &ExitError{Code: 2, Err: err}
}

func main() {
	if err := run(os.Stdout, os.Stderr, os.Stdin, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}

// run builds the command tree around the given streams so tests can drive it.
func run(out, errOut io.Writer, in io.Reader, args []string) error {
	a := &app{
		out:      out,
		errOut:   errOut,
		in:       in,
		registry: puzzle.Default(),
	}
	root := a.rootCmd()
	root.SetArgs(args)
	root.SetOut(out)
	root.SetErr(errOut)
	return root.Execute()
}

type app struct {
	out      io.Writer
	errOut   io.Writer
	in       io.Reader
	registry *puzzle.Registry

	configPath string
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "aoc2023",
		Short: "Advent of Code 2023 solutions",
		Long: `Solves Advent of Code 2023 puzzles.

Each day reads its puzzle input and prints one or two answers.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.configPath)
			if err != nil {
				return usageError(err)
			}
			a.cfg = cfg
			a.logger, err = newLogger(cfg.Log, a.verbose, a.errOut)
			if err != nil {
				return usageError(err)
			}
			cmd.SetContext(ctxlog.WithLogger(cmd.Context(), a.logger))
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "path to a YAML config file")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError(err)
	})

	root.AddCommand(a.solveCmd(), a.allCmd(), a.listCmd())
	return root
}

func withUsageError(v cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := v(cmd, args); err != nil {
			return usageError(err)
		}
		return nil
	}
}
