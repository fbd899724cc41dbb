package puzzle

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func constSolver(a Answer) Solver {
	return func(context.Context, string) (Answer, error) {
		return a, nil
	}
}

func TestAnswerString(t *testing.T) {
	assert.Equal(t, "Part 1: 4361\nPart 2: 467835", Answer{Part1: 4361, Part2: 467835, HasPart2: true}.String())
	assert.Equal(t, "Part 1: 35", Answer{Part1: 35}.String())
}

func TestRegistryOrderAndLookup(t *testing.T) {
	r := NewRegistry()
	r.Register(Puzzle{Day: 6, Name: "six", Solve: constSolver(Answer{Part1: 6})})
	r.Register(Puzzle{Day: 1, Name: "one", Solve: constSolver(Answer{Part1: 1})})
	r.Register(Puzzle{Day: 3, Name: "three", Solve: constSolver(Answer{Part1: 3})})

	var days []int
	for _, p := range r.All() {
		days = append(days, p.Day)
	}
	assert.Equal(t, []int{1, 3, 6}, days)

	p, ok := r.Lookup(3)
	require.True(t, ok)
	assert.Equal(t, "three", p.Name)

	_, ok = r.Lookup(7)
	assert.False(t, ok)
}

func TestRegistryDuplicatePanics(t *testing.T) {
	r := NewRegistry()
	r.Register(Puzzle{Day: 2, Solve: constSolver(Answer{})})
	assert.Panics(t, func() {
		r.Register(Puzzle{Day: 2, Solve: constSolver(Answer{})})
	})
	assert.Panics(t, func() {
		r.Register(Puzzle{Day: 4})
	})
}

func TestSolveUnknownDay(t *testing.T) {
	_, err := NewRegistry().Solve(context.Background(), 9, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "day 9")
}

func TestSolveAll(t *testing.T) {
	r := NewRegistry()
	r.Register(Puzzle{Day: 1, Solve: func(_ context.Context, in string) (Answer, error) {
		return Answer{Part1: int64(len(in))}, nil
	}})
	r.Register(Puzzle{Day: 2, Solve: constSolver(Answer{Part1: 8, Part2: 2286, HasPart2: true})})

	answers, err := r.SolveAll(context.Background(), map[int]string{1: "abc", 2: ""})
	require.NoError(t, err)
	assert.Equal(t, map[int]Answer{
		1: {Part1: 3},
		2: {Part1: 8, Part2: 2286, HasPart2: true},
	}, answers)
}

func TestSolveAllFailure(t *testing.T) {
	boom := errors.New("boom")
	r := NewRegistry()
	r.Register(Puzzle{Day: 1, Solve: constSolver(Answer{Part1: 1})})
	r.Register(Puzzle{Day: 2, Solve: func(context.Context, string) (Answer, error) {
		return Answer{}, boom
	}})

	answers, err := r.SolveAll(context.Background(), map[int]string{1: "", 2: ""})
	require.ErrorIs(t, err, boom)
	assert.Nil(t, answers)
}
