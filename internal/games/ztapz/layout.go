package ztapz

import (
	"github.com/vovakirdan/ztapz/internal/core"
	"github.com/vovakirdan/ztapz/internal/grid"
)

const (
	cellW     = 7 // " ( ♥ ) "
	cellH     = 2 // Circle row plus a spacer row
	hudHeight = 4 // Title, time/score, speed slider, blank
	footerH   = 2

	// MinWidth and MinHeight are the smallest playable screen.
	MinWidth  = grid.Cols*cellW + 2
	MinHeight = hudHeight + grid.Rows*cellH + footerH
)

// Layout positions the grid on a character screen.
type Layout struct {
	ScreenW, ScreenH int
	Grid             core.Rect // Area covered by the circles
	TooSmall         bool
}

// NewLayout centers the grid horizontally below the HUD.
func NewLayout(w, h int) Layout {
	gw := grid.Cols * cellW
	gh := grid.Rows * cellH
	return Layout{
		ScreenW:  w,
		ScreenH:  h,
		Grid:     core.NewRect((w-gw)/2, hudHeight, gw, gh),
		TooSmall: w < MinWidth || h < MinHeight,
	}
}

// CellRect returns the screen area of the circle at index.
// The spacer row below each circle is not part of it.
func (l Layout) CellRect(index int) core.Rect {
	row, col := grid.Position(index)
	return core.NewRect(l.Grid.X+col*cellW, l.Grid.Y+row*cellH, cellW, 1)
}

// HitTest maps a screen coordinate to the circle under it.
func (l Layout) HitTest(x, y int) (int, bool) {
	if l.TooSmall || !l.Grid.Contains(x, y) {
		return -1, false
	}
	dy := y - l.Grid.Y
	if dy%cellH != 0 {
		return -1, false
	}
	idx := grid.Index(dy/cellH, (x-l.Grid.X)/cellW)
	return idx, idx >= 0
}
