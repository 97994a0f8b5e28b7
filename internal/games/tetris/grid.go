package tetris

import "github.com/vovakirdan/tui-tetris/internal/core"

// Grid is the playfield of locked cells, indexed [row][col] with row 0 at
// the top. core.ColorDefault marks an empty cell.
type Grid struct {
	width  int
	height int
	cells  [][]core.Color
}

// NewGrid allocates an empty grid.
func NewGrid(width, height int) *Grid {
	g := &Grid{width: width, height: height}
	g.cells = make([][]core.Color, height)
	for y := range g.cells {
		g.cells[y] = make([]core.Color, width)
	}
	return g
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.height
}

// InBounds reports whether (x, y) is a cell of the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// At returns the color at (x, y), or ColorDefault outside the grid.
func (g *Grid) At(x, y int) core.Color {
	if !g.InBounds(x, y) {
		return core.ColorDefault
	}
	return g.cells[y][x]
}

// Occupied reports whether (x, y) holds a locked cell.
func (g *Grid) Occupied(x, y int) bool {
	return !g.At(x, y).IsEmpty()
}

// Set writes a color at (x, y). Out-of-bounds writes are ignored.
func (g *Grid) Set(x, y int, c core.Color) {
	if !g.InBounds(x, y) {
		return
	}
	g.cells[y][x] = c
}

// RowFull reports whether every cell of row y is occupied.
func (g *Grid) RowFull(y int) bool {
	for _, c := range g.cells[y] {
		if c.IsEmpty() {
			return false
		}
	}
	return true
}

// ClearFullRows removes every full row, shifts the remaining rows down in
// their original order and refills the top with empty rows. Returns the
// number of rows removed.
func (g *Grid) ClearFullRows() int {
	kept := make([][]core.Color, 0, g.height)
	for y := range g.cells {
		if !g.RowFull(y) {
			kept = append(kept, g.cells[y])
		}
	}

	cleared := g.height - len(kept)
	if cleared == 0 {
		return 0
	}

	rows := make([][]core.Color, 0, g.height)
	for i := 0; i < cleared; i++ {
		rows = append(rows, make([]core.Color, g.width))
	}
	g.cells = append(rows, kept...)
	return cleared
}

// Clear empties every cell.
func (g *Grid) Clear() {
	for y := range g.cells {
		for x := range g.cells[y] {
			g.cells[y][x] = core.ColorDefault
		}
	}
}

// Rows returns a deep copy of the cells for read-only use.
func (g *Grid) Rows() [][]core.Color {
	out := make([][]core.Color, g.height)
	for y := range g.cells {
		out[y] = append([]core.Color(nil), g.cells[y]...)
	}
	return out
}
