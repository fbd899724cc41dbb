package schematic

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

type scanState int

const (
	stateIdle scanState = iota
	stateInRun
)

// Parse builds a Schematic from one grid row per line. CRLF line endings and
// trailing empty lines are accepted; rows may have different lengths.
func Parse(input string) (*Schematic, error) {
	lines := splitLines(input)
	s := &Schematic{
		grid:       &Grid{rows: make([][]byte, 0, len(lines))},
		partsByRow: make([][]int, len(lines)),
	}
	for r, line := range lines {
		row := []byte(line)
		if err := s.scanRow(r, row); err != nil {
			return nil, err
		}
		s.grid.rows = append(s.grid.rows, row)
	}
	return s, nil
}

func splitLines(input string) []string {
	lines := strings.Split(input, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// scanRow walks one row left to right. A digit run is closed by the first
// non-digit or by the end of the row; a symbol that closes a run is recorded
// in the same step.
func (s *Schematic) scanRow(r int, row []byte) error {
	state := stateIdle
	start := 0
	for c := 0; c < len(row); c++ {
		b := row[c]
		if !inAlphabet(b) {
			return malformed(r, c, row)
		}
		if isDigit(b) {
			if state == stateIdle {
				state, start = stateInRun, c
			}
			continue
		}
		if state == stateInRun {
			if err := s.closeRun(r, start, row[start:c]); err != nil {
				return err
			}
			state = stateIdle
		}
		if b != blank {
			s.symbols = append(s.symbols, Symbol{Pos: Coord{Row: r, Col: c}, Glyph: b})
		}
	}
	if state == stateInRun {
		return s.closeRun(r, start, row[start:])
	}
	return nil
}

func (s *Schematic) closeRun(r, start int, digits []byte) error {
	if len(digits) == 0 {
		return &ParseError{Kind: ErrNumberParse, Line: r + 1, Col: start + 1}
	}
	v, err := strconv.ParseUint(string(digits), 10, 32)
	if err != nil {
		return &ParseError{
			Kind: ErrNumberParse,
			Line: r + 1,
			Col:  start + 1,
			Text: string(digits),
			Err:  err,
		}
	}
	s.partsByRow[r] = append(s.partsByRow[r], len(s.parts))
	s.parts = append(s.parts, PartToken{
		Start:  Coord{Row: r, Col: start},
		Length: len(digits),
		Value:  uint32(v),
	})
	return nil
}

// inAlphabet accepts printable ASCII other than space.
func inAlphabet(b byte) bool {
	return b > ' ' && b < utf8.RuneSelf && b != 0x7f
}

func malformed(r, c int, row []byte) *ParseError {
	ch, _ := utf8.DecodeRune(row[c:])
	text := string(ch)
	if ch == utf8.RuneError {
		text = string(row[c : c+1])
	}
	return &ParseError{Kind: ErrMalformedGrid, Line: r + 1, Col: c + 1, Text: text}
}
