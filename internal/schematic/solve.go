// Package schematic solves the engine schematic puzzle: numbers next to a
// symbol are part numbers, and a '*' next to exactly two of them is a gear.
package schematic

import (
	"context"
	"fmt"
	"math"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ilyalavrinov/justforfun/adventofcode2023/internal/ctxlog"
	"github.com/ilyalavrinov/justforfun/adventofcode2023/internal/puzzle"
)

const Sample = `467..114..
...*......
..35..633.
......#...
617*......
.....+.58.
..592.....
......755.
...$.*....
.664.598..`

func init() {
	puzzle.Register(puzzle.Puzzle{
		Day:    3,
		Name:   "Gear Ratios",
		Sample: Sample,
		Solve:  Solve,
	})
}

// Solve parses input once and reports the part number sum and the gear ratio
// sum. Nothing is reported if the input does not parse.
func Solve(ctx context.Context, input string) (puzzle.Answer, error) {
	s, err := Parse(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	ctxlog.FromContext(ctx).Debug("schematic parsed",
		zap.Int("rows", s.grid.Rows()),
		zap.Int("parts", len(s.parts)),
		zap.Int("symbols", len(s.symbols)))

	// both queries only read s
	var part1, part2 uint64
	var g errgroup.Group
	g.Go(func() (err error) {
		if part1, err = s.PartNumberSum(); err != nil {
			return fmt.Errorf("part numbers: %w", err)
		}
		return nil
	})
	g.Go(func() (err error) {
		if part2, err = s.GearRatioSum(); err != nil {
			return fmt.Errorf("gear ratios: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return puzzle.Answer{}, err
	}
	if part1 > math.MaxInt64 {
		return puzzle.Answer{}, fmt.Errorf("part numbers: %w", ErrAnswerOverflow)
	}
	if part2 > math.MaxInt64 {
		return puzzle.Answer{}, fmt.Errorf("gear ratios: %w", ErrAnswerOverflow)
	}

	return puzzle.Answer{
		Part1:    int64(part1),
		Part2:    int64(part2),
		HasPart2: true,
	}, nil
}
