package schematic

import "math/bits"

// IsValid reports whether a symbol lies anywhere in the token's neighborhood.
func IsValid(g *Grid, t PartToken) bool {
	found := false
	g.Scan(t.Neighborhood(), func(_ Coord, b byte) bool {
		found = IsSymbol(b)
		return !found
	})
	return found
}

// ValidParts returns the tokens touching at least one symbol.
func (s *Schematic) ValidParts() []PartToken {
	var valid []PartToken
	for _, p := range s.parts {
		if IsValid(s.grid, p) {
			valid = append(valid, p)
		}
	}
	return valid
}

// PartNumberSum adds up the values of all valid parts.
func (s *Schematic) PartNumberSum() (uint64, error) {
	var sum uint64
	for _, p := range s.ValidParts() {
		var err error
		if sum, err = addChecked(sum, uint64(p.Value)); err != nil {
			return 0, err
		}
	}
	return sum, nil
}

func addChecked(a, b uint64) (uint64, error) {
	sum, carry := bits.Add64(a, b, 0)
	if carry != 0 {
		return 0, ErrAnswerOverflow
	}
	return sum, nil
}
