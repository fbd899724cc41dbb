// Package calibration recovers calibration values from the trebuchet
// document: the first and last digit of each line form a two-digit number.
package calibration

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ilyalavrinov/justforfun/adventofcode2023/internal/puzzle"
)

const Sample = `1abc2
pqr3stu8vwx
a1b2c3d4e5f
treb7uchet`

// SampleSpelled only has an answer once spelled digits count.
const SampleSpelled = `two1nine
eightwothree
abcone2threexyz
xtwone3four
4nineeightseven2
zoneight234
7pqrstsixteen`

var ErrNoDigit = errors.New("no digit in line")

func init() {
	puzzle.Register(puzzle.Puzzle{
		Day:    1,
		Name:   "Trebuchet?!",
		Sample: Sample,
		Solve:  Solve,
	})
}

var spelled = map[string]int{
	"one":   1,
	"two":   2,
	"three": 3,
	"four":  4,
	"five":  5,
	"six":   6,
	"seven": 7,
	"eight": 8,
	"nine":  9,
}

type Document struct {
	Lines []string
}

// Parse splits the document into lines, skipping blank ones.
func Parse(input string) Document {
	var doc Document
	for _, line := range strings.Split(input, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		doc.Lines = append(doc.Lines, line)
	}
	return doc
}

// digitAt returns the digit starting at line[i]. With words set, a spelled
// out digit counts as well; spellings may overlap ("eightwo").
func digitAt(line string, i int, words bool) (int, bool) {
	if b := line[i]; b >= '0' && b <= '9' {
		return int(b - '0'), true
	}
	if !words {
		return 0, false
	}
	for s, n := range spelled {
		if strings.HasPrefix(line[i:], s) {
			return n, true
		}
	}
	return 0, false
}

// Value is 10*first + last digit of line.
func Value(line string, words bool) (int, error) {
	first, last := -1, -1
	for i := 0; i < len(line); i++ {
		if n, ok := digitAt(line, i, words); ok {
			first = n
			break
		}
	}
	for i := len(line) - 1; i >= 0; i-- {
		if n, ok := digitAt(line, i, words); ok {
			last = n
			break
		}
	}
	if first < 0 {
		return 0, fmt.Errorf("%w: %q", ErrNoDigit, line)
	}
	return 10*first + last, nil
}

func sum(doc Document, words bool) (int64, error) {
	var total int64
	for i, line := range doc.Lines {
		v, err := Value(line, words)
		if err != nil {
			return 0, fmt.Errorf("line %d: %w", i+1, err)
		}
		total += int64(v)
	}
	return total, nil
}

func Part1(doc Document) (int64, error) {
	return sum(doc, false)
}

func Part2(doc Document) (int64, error) {
	return sum(doc, true)
}

func Solve(_ context.Context, input string) (puzzle.Answer, error) {
	doc := Parse(input)
	p1, err := Part1(doc)
	if err != nil {
		return puzzle.Answer{}, fmt.Errorf("part 1: %w", err)
	}
	p2, err := Part2(doc)
	if err != nil {
		return puzzle.Answer{}, fmt.Errorf("part 2: %w", err)
	}
	return puzzle.Answer{Part1: p1, Part2: p2, HasPart2: true}, nil
}
