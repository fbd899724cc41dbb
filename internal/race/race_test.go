package race

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ilyalavrinov/justforfun/adventofcode2023/internal/puzzle"
)

// winsByLoop tries every hold time.
func winsByLoop(t, d int64) int64 {
	var wins int64
	for i := int64(0); i <= t; i++ {
		if (t-i)*i > d {
			wins++
		}
	}
	return wins
}

func TestWins(t *testing.T) {
	tests := []struct {
		race Race
		want int64
	}{
		{Race{Time: 7, Distance: 9}, 4},
		{Race{Time: 15, Distance: 40}, 8},
		{Race{Time: 30, Distance: 200}, 9},
		{Race{Time: 71530, Distance: 940200}, 71503},
		{Race{Time: 4, Distance: 4}, 0},
		{Race{Time: 3, Distance: 100}, 0},
		{Race{Time: 0, Distance: 0}, 0},
		{Race{Time: 2, Distance: 0}, 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.race.Wins(), "%+v", tt.race)
	}
}

func TestWinsMatchesLoop(t *testing.T) {
	for tm := int64(0); tm < 60; tm++ {
		for d := int64(0); d < 400; d += 7 {
			require.Equal(t, winsByLoop(tm, d), Race{Time: tm, Distance: d}.Wins(), "time %d distance %d", tm, d)
		}
	}
}

func TestWinsLargeRace(t *testing.T) {
	r := Race{Time: 44899691, Distance: 277113618901768}
	assert.Equal(t, winsByLoop(r.Time, r.Distance), r.Wins())
}

func TestParse(t *testing.T) {
	sheet, err := Parse(Sample)
	require.NoError(t, err)
	assert.Equal(t, []Race{{7, 9}, {15, 40}, {30, 200}}, sheet.Races)
	assert.Equal(t, Race{Time: 71530, Distance: 940200}, sheet.Kerned)
}

func TestParseErrors(t *testing.T) {
	for _, in := range []string{
		"",
		"Time: 1 2\nDistance: 3",
		"Time: 1 x\nDistance: 3 4",
		"Time: 1\nSpeed: 2",
	} {
		_, err := Parse(in)
		assert.Error(t, err, in)
	}
}

func TestSolve(t *testing.T) {
	ans, err := Solve(context.Background(), Sample)
	require.NoError(t, err)
	assert.Equal(t, puzzle.Answer{Part1: 288, Part2: 71503, HasPart2: true}, ans)
}
