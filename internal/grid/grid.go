// Package grid holds the board of tappable circles.
// The board is a fixed 7x4 layout stored row-major; at most one cell is
// active at a time.
package grid

// Board dimensions.
const (
	Rows = 7
	Cols = 4
	Size = Rows * Cols
)

// Grid is an ordered set of "is-active" flags, one per circle.
// The zero value is a cleared grid.
type Grid struct {
	cells [Size]bool
}

// New returns a cleared grid.
func New() *Grid {
	return &Grid{}
}

// Activate sets exactly one cell active and all others inactive.
// An out-of-range index leaves the grid cleared.
func (g *Grid) Activate(index int) {
	g.Clear()
	if !InBounds(index) {
		return
	}
	g.cells[index] = true
}

// Clear marks every cell inactive.
func (g *Grid) Clear() {
	g.cells = [Size]bool{}
}

// IsActive reports whether the cell at index is active.
// Out-of-range indices are never active.
func (g *Grid) IsActive(index int) bool {
	if !InBounds(index) {
		return false
	}
	return g.cells[index]
}

// Active returns the index of the active cell, if there is one.
func (g *Grid) Active() (int, bool) {
	for i, on := range g.cells {
		if on {
			return i, true
		}
	}
	return 0, false
}

// ActiveCount returns how many cells are active.
func (g *Grid) ActiveCount() int {
	n := 0
	for _, on := range g.cells {
		if on {
			n++
		}
	}
	return n
}

// Cells returns a copy of the flags.
func (g *Grid) Cells() [Size]bool {
	return g.cells
}

// InBounds reports whether index addresses a cell.
func InBounds(index int) bool {
	return index >= 0 && index < Size
}

// Index converts a row/column pair to a cell index.
// Returns -1 when the position is outside the board.
func Index(row, col int) int {
	if row < 0 || row >= Rows || col < 0 || col >= Cols {
		return -1
	}
	return row*Cols + col
}

// Position converts a cell index to its row and column.
func Position(index int) (row, col int) {
	return index / Cols, index % Cols
}
