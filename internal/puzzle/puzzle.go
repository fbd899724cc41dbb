// Package puzzle keeps the registry of solved days and the answer type they
// share.
package puzzle

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ilyalavrinov/justforfun/adventofcode2023/internal/ctxlog"
)

// Answer is what one day prints.
type Answer struct {
	Part1    int64
	Part2    int64
	HasPart2 bool
}

func (a Answer) String() string {
	var b strings.Builder
	b.WriteString("Part 1: ")
	b.WriteString(strconv.FormatInt(a.Part1, 10))
	if a.HasPart2 {
		b.WriteString("\nPart 2: ")
		b.WriteString(strconv.FormatInt(a.Part2, 10))
	}
	return b.String()
}

// Solver turns one day's raw input into its answer.
type Solver func(ctx context.Context, input string) (Answer, error)

type Puzzle struct {
	Day    int
	Name   string
	Sample string
	Solve  Solver
}

type Registry struct {
	mu      sync.RWMutex
	puzzles map[int]Puzzle
}

func NewRegistry() *Registry {
	return &Registry{puzzles: make(map[int]Puzzle)}
}

// Register adds p. Registering the same day twice is a programming error and
// panics.
func (r *Registry) Register(p Puzzle) {
	if p.Solve == nil {
		panic(fmt.Sprintf("puzzle: day %d registered without a solver", p.Day))
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.puzzles[p.Day]; ok {
		panic(fmt.Sprintf("puzzle: day %d registered twice", p.Day))
	}
	r.puzzles[p.Day] = p
}

func (r *Registry) Lookup(day int) (Puzzle, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.puzzles[day]
	return p, ok
}

// All returns registered puzzles ordered by day.
func (r *Registry) All() []Puzzle {
	r.mu.RLock()
	defer r.mu.RUnlock()
	res := make([]Puzzle, 0, len(r.puzzles))
	for _, p := range r.puzzles {
		res = append(res, p)
	}
	sort.Slice(res, func(i, j int) bool {
		return res[i].Day < res[j].Day
	})
	return res
}

// Solve runs a single day.
func (r *Registry) Solve(ctx context.Context, day int, input string) (Answer, error) {
	p, ok := r.Lookup(day)
	if !ok {
		return Answer{}, fmt.Errorf("day %d is not solved", day)
	}
	logger := ctxlog.FromContext(ctx).With(zap.Int("day", day))
	logger.Debug("solving", zap.String("name", p.Name), zap.Int("input_bytes", len(input)))
	ans, err := p.Solve(ctxlog.WithLogger(ctx, logger), input)
	if err != nil {
		return Answer{}, fmt.Errorf("day %d: %w", day, err)
	}
	return ans, nil
}

// SolveAll solves every day in inputs concurrently. The first failure cancels
// the rest and no answers are returned.
func (r *Registry) SolveAll(ctx context.Context, inputs map[int]string) (map[int]Answer, error) {
	g, ctx := errgroup.WithContext(ctx)
	var mu sync.Mutex
	answers := make(map[int]Answer, len(inputs))
	for day, input := range inputs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			ans, err := r.Solve(ctx, day, input)
			if err != nil {
				return err
			}
			mu.Lock()
			answers[day] = ans
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return answers, nil
}

var defaultRegistry = NewRegistry()

// Register adds p to the process-wide registry. Day packages call it from
// init.
func Register(p Puzzle) {
	defaultRegistry.Register(p)
}

func Default() *Registry {
	return defaultRegistry
}
