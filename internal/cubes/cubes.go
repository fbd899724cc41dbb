// Package cubes checks which cube games are possible with a given bag and
// how many cubes each game needs at least.
package cubes

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/ilyalavrinov/justforfun/adventofcode2023/internal/ctxlog"
	"github.com/ilyalavrinov/justforfun/adventofcode2023/internal/puzzle"
)

const Sample = `Game 1: 3 blue, 4 red; 1 red, 2 green, 6 blue; 2 green
Game 2: 1 blue, 2 green; 3 green, 4 blue, 1 red; 1 green, 1 blue
Game 3: 8 green, 6 blue, 20 red; 5 blue, 4 red, 13 green; 5 green, 1 red
Game 4: 1 green, 3 red, 6 blue; 3 green, 6 red; 3 green, 15 blue, 14 red
Game 5: 6 red, 1 blue, 3 green; 2 blue, 1 red, 2 green`

func init() {
	puzzle.Register(puzzle.Puzzle{
		Day:    2,
		Name:   "Cube Conundrum",
		Sample: Sample,
		Solve:  Solve,
	})
}

type CubeSet struct {
	Red, Green, Blue int
}

// Bag is what the elf loaded for part 1.
var Bag = CubeSet{Red: 12, Green: 13, Blue: 14}

// Contains reports whether every colour of o fits into c.
func (c CubeSet) Contains(o CubeSet) bool {
	return c.Red >= o.Red && c.Green >= o.Green && c.Blue >= o.Blue
}

// Union is the smallest set containing both c and o.
func (c CubeSet) Union(o CubeSet) CubeSet {
	return CubeSet{
		Red:   max(c.Red, o.Red),
		Green: max(c.Green, o.Green),
		Blue:  max(c.Blue, o.Blue),
	}
}

func (c CubeSet) Power() int64 {
	return int64(c.Red) * int64(c.Green) * int64(c.Blue)
}

type Game struct {
	ID   int
	Sets []CubeSet
}

func (g Game) Minimal() CubeSet {
	var res CubeSet
	for _, s := range g.Sets {
		res = res.Union(s)
	}
	return res
}

var (
	reGame  = regexp.MustCompile(`^Game ([0-9]+): (.*)$`)
	reColor = regexp.MustCompile(`^([0-9]+) ([a-z]+)$`)
)

func Parse(input string) ([]Game, error) {
	var games []Game
	for i, line := range strings.Split(input, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		g, err := parseGame(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		games = append(games, g)
	}
	return games, nil
}

func parseGame(line string) (Game, error) {
	m := reGame.FindStringSubmatch(line)
	if m == nil {
		return Game{}, fmt.Errorf("not a game: %q", line)
	}
	id, err := strconv.Atoi(m[1])
	if err != nil {
		return Game{}, fmt.Errorf("game id %q: %w", m[1], err)
	}
	g := Game{ID: id}
	for _, part := range strings.Split(m[2], ";") {
		set, err := parseSet(part)
		if err != nil {
			return Game{}, fmt.Errorf("game %d: %w", id, err)
		}
		g.Sets = append(g.Sets, set)
	}
	return g, nil
}

func parseSet(s string) (CubeSet, error) {
	var set CubeSet
	for _, color := range strings.Split(s, ",") {
		color = strings.TrimSpace(color)
		m := reColor.FindStringSubmatch(color)
		if m == nil {
			return CubeSet{}, fmt.Errorf("bad cube count %q", color)
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			return CubeSet{}, fmt.Errorf("cube count %q: %w", m[1], err)
		}
		switch m[2] {
		case "red":
			set.Red += n
		case "green":
			set.Green += n
		case "blue":
			set.Blue += n
		default:
			return CubeSet{}, fmt.Errorf("unknown color %q", m[2])
		}
	}
	return set, nil
}

// Part1 sums the IDs of games possible with Bag.
func Part1(games []Game) int64 {
	var sum int64
	for _, g := range games {
		if Bag.Contains(g.Minimal()) {
			sum += int64(g.ID)
		}
	}
	return sum
}

// Part2 sums the power of each game's minimal set.
func Part2(games []Game) int64 {
	var sum int64
	for _, g := range games {
		sum += g.Minimal().Power()
	}
	return sum
}

func Solve(ctx context.Context, input string) (puzzle.Answer, error) {
	games, err := Parse(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	ctxlog.FromContext(ctx).Debug("games parsed", zap.Int("games", len(games)))
	return puzzle.Answer{Part1: Part1(games), Part2: Part2(games), HasPart2: true}, nil
}
