package game

import "math"

// gridCellSize is the edge of one broad-phase cell in pixels
const gridCellSize = 64.0

// Grid is a uniform spatial partition of the field used as the collision
// broad phase. A cell holds the indices of every hitbox that touches it, so
// a box spanning a boundary is listed in each cell it covers.
type Grid struct {
	CellSize float64

	cols, rows int

	// cells is row-major; slices keep their capacity across Reset
	cells [][]int
}

// NewGrid creates an empty grid; call Reset before inserting
func NewGrid(cellSize float64) *Grid {
	return &Grid{CellSize: cellSize}
}

// Reset sizes the grid to the field and empties every cell
func (g *Grid) Reset(b Bounds) {
	g.cols = max(1, int(math.Ceil(b.W/g.CellSize)))
	g.rows = max(1, int(math.Ceil(b.H/g.CellSize)))

	n := g.cols * g.rows
	if cap(g.cells) < n {
		g.cells = make([][]int, n)
	}
	g.cells = g.cells[:n]
	for i := range g.cells {
		g.cells[i] = g.cells[i][:0]
	}
}

// cellRange returns the inclusive cell span of r. Boxes outside the field
// are clamped onto the border cells, which keeps overlapping boxes in a
// shared cell.
func (g *Grid) cellRange(r Rect) (x0, y0, x1, y1 int) {
	toCell := func(v float64, n int) int {
		return max(0, min(int(math.Floor(v/g.CellSize)), n-1))
	}
	return toCell(r.X, g.cols), toCell(r.Y, g.rows), toCell(r.Right(), g.cols), toCell(r.Bottom(), g.rows)
}

// Insert registers index under every cell r touches
func (g *Grid) Insert(index int, r Rect) {
	x0, y0, x1, y1 := g.cellRange(r)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			c := y*g.cols + x
			g.cells[c] = append(g.cells[c], index)
		}
	}
}

// Query calls fn for each index registered in the cells r touches.
// An index spanning several of those cells is visited more than once.
func (g *Grid) Query(r Rect, fn func(index int)) {
	x0, y0, x1, y1 := g.cellRange(r)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			for _, index := range g.cells[y*g.cols+x] {
				fn(index)
			}
		}
	}
}
