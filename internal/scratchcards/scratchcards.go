// Package scratchcards scores scratchcards and counts the copies they win.
package scratchcards

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/ilyalavrinov/justforfun/adventofcode2023/internal/puzzle"
)

const Sample = `Card 1: 41 48 83 86 17 | 83 86  6 31 17  9 48 53
Card 2: 13 32 20 16 61 | 61 30 68 82 17 32 24 19
Card 3:  1 21 53 59 44 | 69 82 63 72 16 21 14  1
Card 4: 41 92 73 84 69 | 59 84 76 51 58  5 54 83
Card 5: 87 83 26 28 32 | 88 30 70 12 93 22 82 36
Card 6: 31 18 13 56 72 | 74 77 10 23 35 67 36 11`

// ErrPointsOverflow means a score does not fit an int64.
var ErrPointsOverflow = errors.New("points overflow int64")

func init() {
	puzzle.Register(puzzle.Puzzle{
		Day:    4,
		Name:   "Scratchcards",
		Sample: Sample,
		Solve:  Solve,
	})
}

type Card struct {
	ID      int
	Winning []int
	Have    []int
}

// Matches counts numbers we have that are winning.
func (c Card) Matches() int {
	winning := make(map[int]bool, len(c.Winning))
	for _, n := range c.Winning {
		winning[n] = true
	}
	matches := 0
	for _, n := range c.Have {
		if winning[n] {
			matches++
		}
	}
	return matches
}

// Points doubles for every match after the first. More than 63 matches do
// not fit an int64.
func (c Card) Points() (int64, error) {
	m := c.Matches()
	if m == 0 {
		return 0, nil
	}
	if m > 63 {
		return 0, fmt.Errorf("card %d with %d matches: %w", c.ID, m, ErrPointsOverflow)
	}
	return 1 << (m - 1), nil
}

func Parse(input string) ([]Card, error) {
	var cards []Card
	for i, line := range strings.Split(input, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		c, err := parseCard(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		cards = append(cards, c)
	}
	return cards, nil
}

func parseCard(line string) (Card, error) {
	head, body, ok := strings.Cut(line, ":")
	if !ok {
		return Card{}, fmt.Errorf("no colon in %q", line)
	}
	fields := strings.Fields(head)
	if len(fields) != 2 || fields[0] != "Card" {
		return Card{}, fmt.Errorf("bad card header %q", head)
	}
	id, err := strconv.Atoi(fields[1])
	if err != nil {
		return Card{}, fmt.Errorf("card id %q: %w", fields[1], err)
	}
	winning, have, ok := strings.Cut(body, "|")
	if !ok {
		return Card{}, fmt.Errorf("card %d: no separator", id)
	}
	c := Card{ID: id}
	if c.Winning, err = numbers(winning); err != nil {
		return Card{}, fmt.Errorf("card %d: %w", id, err)
	}
	if c.Have, err = numbers(have); err != nil {
		return Card{}, fmt.Errorf("card %d: %w", id, err)
	}
	return c, nil
}

func numbers(s string) ([]int, error) {
	fields := strings.Fields(s)
	res := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, err
		}
		res = append(res, n)
	}
	return res, nil
}

func Part1(cards []Card) (int64, error) {
	var sum int64
	for _, c := range cards {
		p, err := c.Points()
		if err != nil {
			return 0, err
		}
		if sum > math.MaxInt64-p {
			return 0, fmt.Errorf("sum at card %d: %w", c.ID, ErrPointsOverflow)
		}
		sum += p
	}
	return sum, nil
}

// Part2 counts all cards held once every won copy has been scratched. Card i
// with m matches wins one copy of each of the next m cards, per copy of i
// held; wins never run past the last card.
func Part2(cards []Card) int64 {
	copies := make([]int64, len(cards))
	for i := range copies {
		copies[i] = 1
	}
	var total int64
	for i, c := range cards {
		for k := i + 1; k <= i+c.Matches() && k < len(cards); k++ {
			copies[k] += copies[i]
		}
		total += copies[i]
	}
	return total
}

func Solve(_ context.Context, input string) (puzzle.Answer, error) {
	cards, err := Parse(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	p1, err := Part1(cards)
	if err != nil {
		return puzzle.Answer{}, fmt.Errorf("part 1: %w", err)
	}
	return puzzle.Answer{Part1: p1, Part2: Part2(cards), HasPart2: true}, nil
}
