package schematic

// AdjacentParts returns the tokens whose neighborhood contains sym. Only rows
// next to the symbol can hold such tokens.
func (s *Schematic) AdjacentParts(sym Symbol) []PartToken {
	var adjacent []PartToken
	for r := max(sym.Pos.Row-1, 0); r <= min(sym.Pos.Row+1, len(s.partsByRow)-1); r++ {
		for _, i := range s.partsByRow[r] {
			if s.parts[i].Neighborhood().Contains(sym.Pos) {
				adjacent = append(adjacent, s.parts[i])
			}
		}
	}
	return adjacent
}

// GearRatio is the product of the two part numbers next to a gear. A '*'
// touching any other number of parts is not a gear and yields false.
func (s *Schematic) GearRatio(gear Symbol) (uint64, bool) {
	if !gear.IsGear() {
		return 0, false
	}
	adjacent := s.AdjacentParts(gear)
	if len(adjacent) != 2 {
		return 0, false
	}
	return uint64(adjacent[0].Value) * uint64(adjacent[1].Value), true
}

func (s *Schematic) GearRatioSum() (uint64, error) {
	var sum uint64
	for _, g := range s.Gears() {
		ratio, ok := s.GearRatio(g)
		if !ok {
			continue
		}
		var err error
		if sum, err = addChecked(sum, ratio); err != nil {
			return 0, err
		}
	}
	return sum, nil
}
