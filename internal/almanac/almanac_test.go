package almanac

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ilyalavrinov/justforfun/adventofcode2023/internal/puzzle"
)

func TestParse(t *testing.T) {
	a, err := Parse(Sample)
	require.NoError(t, err)
	assert.Equal(t, []uint64{79, 14, 55, 13}, a.Seeds)
	require.Len(t, a.Maps, 7)
	assert.Equal(t, "seed-to-soil", a.Maps[0].Name)
	assert.Equal(t, "humidity-to-location", a.Maps[6].Name)
	// sorted by source
	assert.Equal(t, []Range{{Dst: 52, Src: 50, Len: 48}, {Dst: 50, Src: 98, Len: 2}}, a.Maps[0].Ranges)
}

func TestParseErrors(t *testing.T) {
	for _, in := range []string{
		"",
		"seed: 1 2",
		"seeds: 1 x",
		"seeds: 1\n\n1 2 3",
		"seeds: 1\n\na-to-b map:\n1 2",
		"seeds: 1\n\na-to-b map:\n1 2 -3",
	} {
		_, err := Parse(in)
		assert.Error(t, err, in)
	}
}

func TestParseRejectsOverflowingRanges(t *testing.T) {
	tests := map[string]string{
		"source end":      "seeds: 1\n\na-to-b map:\n0 18446744073709551615 2",
		"destination end": "seeds: 1\n\na-to-b map:\n18446744073709551610 0 10",
		"seed pair end":   "seeds: 18446744073709551615 2",
	}
	for name, in := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(in)
			require.ErrorIs(t, err, ErrRangeOverflow)
		})
	}

	// the largest range that still ends inside uint64
	a, err := Parse("seeds: 18446744073709551614 1\n\na-to-b map:\n0 18446744073709551614 1")
	require.NoError(t, err)
	assert.EqualValues(t, 0, a.Location(18446744073709551614))
}

func TestPart2RejectsOverflowingAlmanac(t *testing.T) {
	_, err := Part2(&Almanac{Seeds: []uint64{math.MaxUint64, 2}})
	require.ErrorIs(t, err, ErrRangeOverflow)

	_, err = Part2(&Almanac{
		Seeds: []uint64{1, 2},
		Maps:  []Map{{Name: "a-to-b", Ranges: []Range{{Dst: 0, Src: math.MaxUint64, Len: 2}}}},
	})
	require.ErrorIs(t, err, ErrRangeOverflow)
}

func TestLookup(t *testing.T) {
	a, err := Parse(Sample)
	require.NoError(t, err)
	soil := a.Maps[0]
	assert.EqualValues(t, 81, soil.Lookup(79))
	assert.EqualValues(t, 14, soil.Lookup(14))
	assert.EqualValues(t, 57, soil.Lookup(55))
	assert.EqualValues(t, 51, soil.Lookup(99))
	assert.EqualValues(t, 100, soil.Lookup(100))

	var got []uint64
	for _, s := range a.Seeds {
		got = append(got, a.Location(s))
	}
	assert.Equal(t, []uint64{82, 43, 86, 35}, got)
}

func TestLookupIntervalsSplits(t *testing.T) {
	m := Map{Ranges: []Range{{Dst: 100, Src: 10, Len: 5}}}
	got := m.LookupIntervals([]Interval{{Start: 8, End: 20}})
	assert.ElementsMatch(t, []Interval{
		{Start: 100, End: 105},
		{Start: 8, End: 10},
		{Start: 15, End: 20},
	}, got)
}

func TestLookupIntervalsAgreesWithLookup(t *testing.T) {
	a, err := Parse(Sample)
	require.NoError(t, err)
	for _, m := range a.Maps {
		for v := uint64(0); v < 110; v++ {
			out := m.LookupIntervals([]Interval{{Start: v, End: v + 1}})
			require.Len(t, out, 1)
			assert.Equal(t, m.Lookup(v), out[0].Start, "%s(%d)", m.Name, v)
		}
	}
}

func TestParts(t *testing.T) {
	a, err := Parse(Sample)
	require.NoError(t, err)

	p1, err := Part1(a)
	require.NoError(t, err)
	assert.EqualValues(t, 35, p1)

	p2, err := Part2(a)
	require.NoError(t, err)
	assert.EqualValues(t, 46, p2)
}

func TestPartErrors(t *testing.T) {
	_, err := Part1(&Almanac{})
	assert.ErrorIs(t, err, ErrNoSeeds)

	_, err = Part2(&Almanac{Seeds: []uint64{1, 2, 3}})
	assert.ErrorIs(t, err, ErrOddSeedCount)
}

func TestSolve(t *testing.T) {
	ans, err := Solve(context.Background(), Sample)
	require.NoError(t, err)
	assert.Equal(t, puzzle.Answer{Part1: 35, Part2: 46, HasPart2: true}, ans)

	ans, err = Solve(context.Background(), "seeds: 5 6 7")
	require.NoError(t, err)
	assert.Equal(t, puzzle.Answer{Part1: 5}, ans)
}
