package schematic

// Coord is a zero-based grid position.
type Coord struct {
	Row, Col int
}

// Rect is an inclusive rectangle of cells. It may reach outside the grid;
// Grid.Scan clamps it.
type Rect struct {
	MinRow, MaxRow int
	MinCol, MaxCol int
}

func (r Rect) Contains(c Coord) bool {
	return c.Row >= r.MinRow && c.Row <= r.MaxRow &&
		c.Col >= r.MinCol && c.Col <= r.MaxCol
}

// Grid is the schematic as typed. Rows keep their own length; nothing is
// padded.
type Grid struct {
	rows [][]byte
}

func (g *Grid) Rows() int {
	return len(g.rows)
}

func (g *Grid) RowLen(row int) int {
	if row < 0 || row >= len(g.rows) {
		return 0
	}
	return len(g.rows[row])
}

// At returns the character at c and false when c is off the grid.
func (g *Grid) At(c Coord) (byte, bool) {
	if c.Row < 0 || c.Row >= len(g.rows) {
		return 0, false
	}
	row := g.rows[c.Row]
	if c.Col < 0 || c.Col >= len(row) {
		return 0, false
	}
	return row[c.Col], true
}

// Scan calls fn for every cell of rect that exists on the grid, row-major.
// Row bounds are clamped to the grid and column bounds to each row's own
// length. Scan stops early when fn returns false.
func (g *Grid) Scan(rect Rect, fn func(Coord, byte) bool) {
	minRow := max(rect.MinRow, 0)
	maxRow := min(rect.MaxRow, len(g.rows)-1)
	for r := minRow; r <= maxRow; r++ {
		row := g.rows[r]
		minCol := max(rect.MinCol, 0)
		maxCol := min(rect.MaxCol, len(row)-1)
		for c := minCol; c <= maxCol; c++ {
			if !fn(Coord{Row: r, Col: c}, row[c]) {
				return
			}
		}
	}
}

func (g *Grid) String() string {
	n := 0
	for _, row := range g.rows {
		n += len(row) + 1
	}
	buf := make([]byte, 0, n)
	for i, row := range g.rows {
		if i > 0 {
			buf = append(buf, '\n')
		}
		buf = append(buf, row...)
	}
	return string(buf)
}

const (
	blank     = '.'
	gearGlyph = '*'
)

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// IsSymbol reports whether b marks a symbol: anything but a digit or blank.
func IsSymbol(b byte) bool {
	return b != blank && !isDigit(b)
}
