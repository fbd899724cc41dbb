package schematic

// PartToken is a maximal horizontal run of digits.
type PartToken struct {
	Start  Coord
	Length int
	Value  uint32
}

// Neighborhood is every cell within one step (diagonals included) of the
// token's footprint. Both the part check and the gear check go through it, so
// they cannot disagree at the grid edges.
func (t PartToken) Neighborhood() Rect {
	return Rect{
		MinRow: t.Start.Row - 1,
		MaxRow: t.Start.Row + 1,
		MinCol: t.Start.Col - 1,
		MaxCol: t.Start.Col + t.Length,
	}
}

// Symbol is any character that is neither a digit nor a blank.
type Symbol struct {
	Pos   Coord
	Glyph byte
}

func (s Symbol) IsGear() bool {
	return s.Glyph == gearGlyph
}

// Schematic is the parsed grid with the parts and symbols found on it. It is
// never modified after Parse returns.
type Schematic struct {
	grid    *Grid
	parts   []PartToken
	symbols []Symbol
	// partsByRow[r] holds indexes into parts for tokens on row r
	partsByRow [][]int
}

func (s *Schematic) Grid() *Grid {
	return s.grid
}

// Parts returns the tokens in row-major discovery order.
func (s *Schematic) Parts() []PartToken {
	return append([]PartToken(nil), s.parts...)
}

// Symbols returns the symbols in row-major discovery order.
func (s *Schematic) Symbols() []Symbol {
	return append([]Symbol(nil), s.symbols...)
}

// Gears returns the symbols drawn as '*'.
func (s *Schematic) Gears() []Symbol {
	var gears []Symbol
	for _, sym := range s.symbols {
		if sym.IsGear() {
			gears = append(gears, sym)
		}
	}
	return gears
}
