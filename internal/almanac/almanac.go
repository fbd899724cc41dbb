// Package almanac follows seeds through the chain of category maps down to
// their locations.
package almanac

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/ilyalavrinov/justforfun/adventofcode2023/internal/ctxlog"
	"github.com/ilyalavrinov/justforfun/adventofcode2023/internal/puzzle"
)

const Sample = `seeds: 79 14 55 13

seed-to-soil map:
50 98 2
52 50 48

soil-to-fertilizer map:
0 15 37
37 52 2
39 0 15

fertilizer-to-water map:
49 53 8
0 11 42
42 0 7
57 7 4

water-to-light map:
88 18 7
18 25 70

light-to-temperature map:
45 77 23
81 45 19
68 64 13

temperature-to-humidity map:
0 69 1
1 0 69

humidity-to-location map:
60 56 37
56 93 4`

var (
	ErrNoSeeds       = errors.New("no seeds")
	ErrOddSeedCount  = errors.New("seed ranges need an even number of values")
	ErrRangeOverflow = errors.New("range end overflows uint64")
)

func init() {
	puzzle.Register(puzzle.Puzzle{
		Day:    5,
		Name:   "If You Give A Seed A Fertilizer",
		Sample: Sample,
		Solve:  Solve,
	})
}

// Range sends [Src, Src+Len) to [Dst, Dst+Len).
type Range struct {
	Dst, Src, Len uint64
}

// Interval is the half-open [Start, End).
type Interval struct {
	Start, End uint64
}

type Map struct {
	Name   string
	Ranges []Range
}

// Lookup maps v through the first range containing it; unmapped values pass
// through unchanged.
func (m Map) Lookup(v uint64) uint64 {
	for _, r := range m.Ranges {
		if v >= r.Src && v-r.Src < r.Len {
			return r.Dst + (v - r.Src)
		}
	}
	return v
}

// LookupIntervals maps whole intervals, splitting them at range borders.
func (m Map) LookupIntervals(in []Interval) []Interval {
	var out []Interval
	pending := in
	for _, r := range m.Ranges {
		var rest []Interval
		for _, iv := range pending {
			lo := max(iv.Start, r.Src)
			hi := min(iv.End, r.Src+r.Len)
			if lo >= hi {
				rest = append(rest, iv)
				continue
			}
			out = append(out, Interval{Start: lo - r.Src + r.Dst, End: hi - r.Src + r.Dst})
			if iv.Start < lo {
				rest = append(rest, Interval{Start: iv.Start, End: lo})
			}
			if hi < iv.End {
				rest = append(rest, Interval{Start: hi, End: iv.End})
			}
		}
		pending = rest
	}
	return append(out, pending...)
}

type Almanac struct {
	Seeds []uint64
	Maps  []Map
}

// Location runs seed through every map in order.
func (a *Almanac) Location(seed uint64) uint64 {
	for _, m := range a.Maps {
		seed = m.Lookup(seed)
	}
	return seed
}

func Parse(input string) (*Almanac, error) {
	lines := strings.Split(strings.ReplaceAll(input, "\r\n", "\n"), "\n")
	if len(lines) == 0 || !strings.HasPrefix(lines[0], "seeds:") {
		return nil, errors.New("input missing seeds line")
	}
	seeds, err := parseNumbers(strings.TrimPrefix(lines[0], "seeds:"))
	if err != nil {
		return nil, fmt.Errorf("seeds: %w", err)
	}

	if err := checkSeedRanges(seeds); err != nil {
		return nil, err
	}

	a := &Almanac{Seeds: seeds}
	var cur *Map
	for i, line := range lines[1:] {
		line = strings.TrimSpace(line)
		switch {
		case line == "":
			cur = nil
		case strings.HasSuffix(line, " map:"):
			a.Maps = append(a.Maps, Map{Name: strings.TrimSuffix(line, " map:")})
			cur = &a.Maps[len(a.Maps)-1]
		case cur == nil:
			return nil, fmt.Errorf("line %d: range outside of a map: %q", i+2, line)
		default:
			nums, err := parseNumbers(line)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", i+2, err)
			}
			if len(nums) != 3 {
				return nil, fmt.Errorf("line %d: want destination, source and length, got %q", i+2, line)
			}
			r := Range{Dst: nums[0], Src: nums[1], Len: nums[2]}
			if !fits(r.Src, r.Len) || !fits(r.Dst, r.Len) {
				return nil, fmt.Errorf("line %d: %q: %w", i+2, line, ErrRangeOverflow)
			}
			cur.Ranges = append(cur.Ranges, r)
		}
	}
	for _, m := range a.Maps {
		sort.Slice(m.Ranges, func(i, j int) bool {
			return m.Ranges[i].Src < m.Ranges[j].Src
		})
	}
	return a, nil
}

// fits reports whether start+length stays within uint64.
func fits(start, length uint64) bool {
	return start <= math.MaxUint64-length
}

// checkSeedRanges rejects (start, length) seed pairs whose end overflows. An
// odd seed list is never read as pairs.
func checkSeedRanges(seeds []uint64) error {
	if len(seeds)%2 != 0 {
		return nil
	}
	for i := 0; i < len(seeds); i += 2 {
		if !fits(seeds[i], seeds[i+1]) {
			return fmt.Errorf("seed range %d %d: %w", seeds[i], seeds[i+1], ErrRangeOverflow)
		}
	}
	return nil
}

func parseNumbers(s string) ([]uint64, error) {
	fields := strings.Fields(s)
	res := make([]uint64, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.ParseUint(f, 10, 64)
		if err != nil {
			return nil, err
		}
		res = append(res, n)
	}
	return res, nil
}

// Part1 is the lowest location of any listed seed.
func Part1(a *Almanac) (int64, error) {
	if len(a.Seeds) == 0 {
		return 0, ErrNoSeeds
	}
	lowest := uint64(math.MaxUint64)
	for _, s := range a.Seeds {
		lowest = min(lowest, a.Location(s))
	}
	return int64(lowest), nil
}

// Part2 reads the seeds as (start, length) pairs.
func Part2(a *Almanac) (int64, error) {
	if len(a.Seeds) == 0 {
		return 0, ErrNoSeeds
	}
	if len(a.Seeds)%2 != 0 {
		return 0, ErrOddSeedCount
	}
	if err := checkSeedRanges(a.Seeds); err != nil {
		return 0, err
	}
	for _, m := range a.Maps {
		for _, r := range m.Ranges {
			if !fits(r.Src, r.Len) || !fits(r.Dst, r.Len) {
				return 0, fmt.Errorf("%s: %w", m.Name, ErrRangeOverflow)
			}
		}
	}
	var cur []Interval
	for i := 0; i < len(a.Seeds); i += 2 {
		if a.Seeds[i+1] == 0 {
			continue
		}
		cur = append(cur, Interval{Start: a.Seeds[i], End: a.Seeds[i] + a.Seeds[i+1]})
	}
	if len(cur) == 0 {
		return 0, ErrNoSeeds
	}
	for _, m := range a.Maps {
		cur = m.LookupIntervals(cur)
	}
	lowest := uint64(math.MaxUint64)
	for _, iv := range cur {
		lowest = min(lowest, iv.Start)
	}
	return int64(lowest), nil
}

func Solve(ctx context.Context, input string) (puzzle.Answer, error) {
	a, err := Parse(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	ctxlog.FromContext(ctx).Debug("almanac parsed",
		zap.Int("seeds", len(a.Seeds)),
		zap.Int("maps", len(a.Maps)))

	p1, err := Part1(a)
	if err != nil {
		return puzzle.Answer{}, fmt.Errorf("part 1: %w", err)
	}
	ans := puzzle.Answer{Part1: p1}
	// part 2 needs seed pairs; a seed list that cannot be paired only has part 1
	if len(a.Seeds)%2 == 0 {
		if ans.Part2, err = Part2(a); err != nil {
			return puzzle.Answer{}, fmt.Errorf("part 2: %w", err)
		}
		ans.HasPart2 = true
	}
	return ans, nil
}
