package ztapz

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/ztapz/internal/core"
	"github.com/vovakirdan/ztapz/internal/grid"
	"github.com/vovakirdan/ztapz/internal/round"
)

const sliderWidth = 16

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.layout.TooSmall {
		g.renderTooSmall(dst)
		return
	}

	g.renderHUD(dst)
	g.renderGrid(dst)
	g.renderFooter(dst)

	switch g.ctrl.Phase() {
	case round.PhaseIdle:
		g.drawOverlay(dst, core.ColorBrightWhite, "Press Enter to Start Timer")
	case round.PhaseGameOver:
		g.drawOverlay(dst, core.ColorBrightRed,
			"GAME OVER!  Your time is up!",
			fmt.Sprintf("Score: %d", g.ctrl.Score()),
			"R: Play Again  B: Menu")
	}
}

func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small", core.ColorDefault)
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", MinWidth, MinHeight), core.ColorGray)
}

func (g *Game) renderHUD(dst *core.Screen) {
	r := g.layout.Grid

	dst.DrawTextCentered(0, "ZTapz", core.ColorBrightMagenta)

	seconds := g.ctrl.SecondsRemaining()
	if g.ctrl.Phase() == round.PhaseIdle {
		seconds = g.cfg.Round.DurationSecs
	}
	timeColor := core.ColorBrightWhite
	if g.ctrl.Running() && seconds <= 10 {
		timeColor = core.ColorBrightRed
	}
	dst.DrawTextColored(r.X, 1, fmt.Sprintf("Time: %d", seconds), timeColor)

	score := fmt.Sprintf("Score: %d", g.ctrl.Score())
	dst.DrawTextColored(r.Right()-len(score), 1, score, core.ColorYellow)

	filled := int(g.speed.Fraction()*sliderWidth + 0.5)
	bar := strings.Repeat("█", filled) + strings.Repeat("░", sliderWidth-filled)
	dst.DrawTextColored(r.X, 2, fmt.Sprintf("Speed %.1f ", g.speed.Value()), core.ColorGray)
	dst.DrawTextColored(r.X+10, 2, bar, core.ColorPink)
}

func (g *Game) renderGrid(dst *core.Screen) {
	hue := g.HueOffset()
	active := -1
	if g.ctrl.Running() {
		active = g.ctrl.ActiveIndex()
	}

	for i := range grid.Size {
		cell := g.layout.CellRect(i)
		ring := core.HueColors[(i+hue)%len(core.HueColors)]
		glyph, glyphColor := '●', ring

		switch {
		case g.Flashing(i):
			glyph, glyphColor = '✶', core.ColorFlash
		case i == active && g.PulseOn():
			glyph, glyphColor = '♥', core.ColorBrightRed
		case i == active:
			glyph, glyphColor = '♡', core.ColorRed
		}

		open, closeRune := '(', ')'
		if i == g.cursor {
			open, closeRune = '[', ']'
			ring = core.ColorBrightWhite
		}

		dst.SetColored(cell.X+1, cell.Y, open, ring)
		dst.SetColored(cell.X+3, cell.Y, glyph, glyphColor)
		dst.SetColored(cell.X+5, cell.Y, closeRune, ring)
	}
}

func (g *Game) renderFooter(dst *core.Screen) {
	hint := "Space: tap  Arrows: move  +/-: speed  B: menu"
	if g.ctrl.Phase() == round.PhaseIdle {
		hint = "Enter: start  +/-: speed  B: menu"
	}
	dst.DrawTextCentered(g.screenH-1, hint, core.ColorGray)
}

// drawOverlay draws a boxed message centered over the grid.
func (g *Game) drawOverlay(dst *core.Screen, c core.Color, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		if n := len([]rune(line)); n > maxLen {
			maxLen = n
		}
	}

	cx, cy := g.layout.Grid.Center()
	box := core.NewRect(cx-(maxLen+4)/2, cy-(len(lines)+2)/2, maxLen+4, len(lines)+2)
	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, c)
	for i, line := range lines {
		x := box.X + (box.W-len([]rune(line)))/2
		dst.DrawTextColored(x, box.Y+1+i, line, c)
	}
}
