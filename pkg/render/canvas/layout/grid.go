package layout

// Grid places fixed-size cells in reading order inside an area.
//
// Stack reserves room right of and below every cell for the layers drawn
// behind it, so a cell's back layers never reach the next cell.
type Grid struct {
	Area       Rect
	CellWidth  float64
	CellHeight float64
	Gap        float64
	Stack      float64
}

func (g Grid) pitchX() float64 { return g.CellWidth + g.Stack + g.Gap }
func (g Grid) pitchY() float64 { return g.CellHeight + g.Stack + g.Gap }

// Columns returns how many cells fit side by side. It is always at least
// one, so a block narrower than a cell still gets a single column.
func (g Grid) Columns() int {
	pitch := g.pitchX()
	if pitch <= 0 {
		return 1
	}
	n := int((g.Area.W + g.Gap) / pitch)
	return max(n, 1)
}

// Cell returns the rectangle of the i-th cell, counting left to right then
// top to bottom.
func (g Grid) Cell(i int) Rect {
	cols := g.Columns()
	row, col := i/cols, i%cols
	return Rect{
		X: g.Area.X + float64(col)*g.pitchX(),
		Y: g.Area.Y + float64(row)*g.pitchY(),
		W: g.CellWidth,
		H: g.CellHeight,
	}
}

// Extent returns the rectangle covered by the i-th cell and its stack.
func (g Grid) Extent(i int) Rect {
	c := g.Cell(i)
	c.W += g.Stack
	c.H += g.Stack
	return c
}

// Place returns the first n cells.
func (g Grid) Place(n int) []Rect {
	if n <= 0 {
		return nil
	}
	out := make([]Rect, n)
	for i := range out {
		out[i] = g.Cell(i)
	}
	return out
}

// Overflows reports whether n cells, stacks included, extend past the
// bottom or right edge of the area. Overflow is a visual degradation only;
// callers still draw every cell.
func (g Grid) Overflows(n int) bool {
	if n <= 0 {
		return false
	}
	last := g.Extent(n - 1)
	if last.Bottom() > g.Area.Bottom() {
		return true
	}
	return g.Extent(0).Right() > g.Area.Right()
}
