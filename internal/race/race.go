// Package race counts the ways to beat the record in the boat races.
package race

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/ilyalavrinov/justforfun/adventofcode2023/internal/puzzle"
)

const Sample = `Time:      7  15   30
Distance:  9  40  200`

func init() {
	puzzle.Register(puzzle.Puzzle{
		Day:    6,
		Name:   "Wait For It",
		Sample: Sample,
		Solve:  Solve,
	})
}

type Race struct {
	Time     int64
	Distance int64
}

func (r Race) traveled(hold int64) int64 {
	return (r.Time - hold) * hold
}

// Wins counts hold times that beat the record. Holding h ms covers
// h*(Time-h), so the winners sit strictly between the roots of
// h^2 - Time*h + Distance.
func (r Race) Wins() int64 {
	disc := float64(r.Time)*float64(r.Time) - 4*float64(r.Distance)
	if disc < 0 {
		return 0
	}
	lo := int64(math.Floor((float64(r.Time)-math.Sqrt(disc))/2)) + 1
	lo = max(lo, 0)
	// float rounding can be off by one either way on large races
	for lo > 0 && r.traveled(lo-1) > r.Distance {
		lo--
	}
	for lo <= r.Time && r.traveled(lo) <= r.Distance {
		lo++
	}
	hi := r.Time - lo
	if hi < lo {
		return 0
	}
	return hi - lo + 1
}

type Sheet struct {
	Races []Race
	// Kerned is the single race read with the spaces removed.
	Kerned Race
}

func Parse(input string) (Sheet, error) {
	var timeLine, distLine string
	for _, line := range strings.Split(input, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, "Time:"):
			timeLine = strings.TrimPrefix(line, "Time:")
		case strings.HasPrefix(line, "Distance:"):
			distLine = strings.TrimPrefix(line, "Distance:")
		case line == "":
		default:
			return Sheet{}, fmt.Errorf("unexpected line %q", line)
		}
	}
	times, err := parseNumbers(timeLine)
	if err != nil {
		return Sheet{}, fmt.Errorf("times: %w", err)
	}
	dists, err := parseNumbers(distLine)
	if err != nil {
		return Sheet{}, fmt.Errorf("distances: %w", err)
	}
	if len(times) == 0 || len(times) != len(dists) {
		return Sheet{}, fmt.Errorf("got %d times and %d distances", len(times), len(dists))
	}

	var sheet Sheet
	for i := range times {
		sheet.Races = append(sheet.Races, Race{Time: times[i], Distance: dists[i]})
	}
	if sheet.Kerned.Time, err = kerned(timeLine); err != nil {
		return Sheet{}, fmt.Errorf("time: %w", err)
	}
	if sheet.Kerned.Distance, err = kerned(distLine); err != nil {
		return Sheet{}, fmt.Errorf("distance: %w", err)
	}
	return sheet, nil
}

func parseNumbers(s string) ([]int64, error) {
	fields := strings.Fields(s)
	res := make([]int64, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.ParseInt(f, 10, 64)
		if err != nil {
			return nil, err
		}
		res = append(res, n)
	}
	return res, nil
}

func kerned(s string) (int64, error) {
	return strconv.ParseInt(strings.Join(strings.Fields(s), ""), 10, 64)
}

// Part1 multiplies the number of ways to win each race.
func Part1(s Sheet) int64 {
	res := int64(1)
	for _, r := range s.Races {
		res *= r.Wins()
	}
	return res
}

func Part2(s Sheet) int64 {
	return s.Kerned.Wins()
}

func Solve(_ context.Context, input string) (puzzle.Answer, error) {
	sheet, err := Parse(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	return puzzle.Answer{Part1: Part1(sheet), Part2: Part2(sheet), HasPart2: true}, nil
}
