package gfx

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/ztapz/internal/core"
	"github.com/vovakirdan/ztapz/internal/grid"
	"github.com/vovakirdan/ztapz/internal/platform/gfx/layout"
	"github.com/vovakirdan/ztapz/internal/round"
)

// DebugPrint glyphs are 6x16 pixels.
const (
	glyphW = 6
	glyphH = 16
)

var (
	background = color.RGBA{R: 18, G: 18, B: 28, A: 255}
	heartOn    = color.RGBA{R: 255, G: 40, B: 80, A: 255}
	heartOff   = color.RGBA{R: 150, G: 20, B: 50, A: 255}
	flash      = color.RGBA{R: 255, G: 230, B: 60, A: 255}
	buttonFill = color.RGBA{R: 60, G: 60, B: 90, A: 255}
	sliderBack = color.RGBA{R: 70, G: 70, B: 70, A: 255}
	sliderFill = color.RGBA{R: 255, G: 95, B: 175, A: 255}
	warning    = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	overlay    = color.RGBA{R: 10, G: 10, B: 20, A: 230}
)

// palette maps terminal colors to RGB so both front ends cycle the same hues.
var palette = map[core.Color]color.RGBA{
	core.ColorBlue:          {R: 60, G: 110, B: 240, A: 255},
	core.ColorCyan:          {R: 40, G: 190, B: 200, A: 255},
	core.ColorMagenta:       {R: 190, G: 60, B: 200, A: 255},
	core.ColorBrightCyan:    {R: 110, G: 240, B: 250, A: 255},
	core.ColorBrightMagenta: {R: 245, G: 120, B: 250, A: 255},
	core.ColorGreen:         {R: 60, G: 200, B: 90, A: 255},
	core.ColorYellow:        {R: 230, G: 210, B: 60, A: 255},
}

// Draw implements ebiten.Game.
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	if a.view == viewIntro {
		a.drawIntro(screen)
		return
	}
	a.drawHUD(screen)
	a.drawCircles(screen)
	a.drawControls(screen)
}

func (a *App) drawIntro(screen *ebiten.Image) {
	printCentered(screen, "Z T A P Z", 120)
	if a.opts.ShowWarning {
		printCentered(screen, "Warning: Bright Flashing Lights!", 180)
		vector.StrokeRect(screen, 70, 176, 220, 24, 1, warning, false)
	}
	printCentered(screen, "Press Quick Minute to tap the moving", 240)
	printCentered(screen, "heart as many times as you can", 256)
	printCentered(screen, "in one minute.", 272)
	if a.best > 0 {
		printCentered(screen, fmt.Sprintf("Best: %d", a.best), 320)
	}
	drawButton(screen, layout.QuickMinuteRect, "Quick Minute")
}

func (a *App) drawHUD(screen *ebiten.Image) {
	secs := a.game.SecondsRemaining()
	if a.game.Phase() == round.PhaseIdle {
		secs = a.game.Duration()
	}
	state := a.game.State()
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Time: %d", secs), 16, 16)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Score: %d", state.Score), 130, 16)
	drawButton(screen, layout.MenuRect, "Menu")

	drawButton(screen, layout.SpeedDownRect, "-")
	drawButton(screen, layout.SpeedUpRect, "+")
	s := layout.SliderRect
	vector.DrawFilledRect(screen, float32(s.X), float32(s.Y), float32(s.W), float32(s.H), sliderBack, false)
	fill := float32(a.game.Speed().Fraction()) * float32(s.W)
	vector.DrawFilledRect(screen, float32(s.X), float32(s.Y), fill, float32(s.H), sliderFill, false)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Speed %.1f", a.game.Speed().Value()), s.X, s.Y+12)
}

func (a *App) drawCircles(screen *ebiten.Image) {
	active := -1
	if a.game.Phase() == round.PhaseRunning {
		active = a.game.ActiveIndex()
	}
	hue := a.game.HueOffset()
	r := layout.Radius()

	for i := range grid.Size {
		cx, cy := layout.CellCenter(i)
		ring := palette[core.HueColors[(i+hue)%len(core.HueColors)]]
		vector.StrokeCircle(screen, cx, cy, r, 3, ring, true)

		switch {
		case a.game.Flashing(i):
			vector.DrawFilledCircle(screen, cx, cy, r-6, flash, true)
		case i == active && a.game.PulseOn():
			drawHeart(screen, cx, cy, r-6, heartOn)
		case i == active:
			drawHeart(screen, cx, cy, r-10, heartOff)
		default:
			vector.DrawFilledCircle(screen, cx, cy, r/3, ring, true)
		}
	}
}

func (a *App) drawControls(screen *ebiten.Image) {
	switch a.game.Phase() {
	case round.PhaseIdle:
		drawButton(screen, layout.StartRect, "Start Timer")
	case round.PhaseGameOver:
		vector.DrawFilledRect(screen, 40, 270, 280, 80, overlay, false)
		vector.StrokeRect(screen, 40, 270, 280, 80, 2, warning, false)
		printCentered(screen, "GAME OVER!  Your time is up!", 286)
		printCentered(screen, fmt.Sprintf("Score: %d", a.game.State().Score), 314)
		drawButton(screen, layout.StartRect, "Play Again")
	}
}

// drawHeart draws a heart from two lobes over a triangle filled with
// horizontal strokes. size is the half width.
func drawHeart(screen *ebiten.Image, cx, cy, size float32, c color.RGBA) {
	lobe := size / 2
	vector.DrawFilledCircle(screen, cx-lobe, cy-lobe/2, lobe, c, true)
	vector.DrawFilledCircle(screen, cx+lobe, cy-lobe/2, lobe, c, true)

	top := cy - lobe/3
	height := cy + size - top
	for dy := float32(0); dy <= height; dy++ {
		w := size * (1 - dy/height)
		vector.StrokeLine(screen, cx-w, top+dy, cx+w, top+dy, 1.5, c, true)
	}
}

func drawButton(screen *ebiten.Image, r core.Rect, label string) {
	vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), buttonFill, false)
	vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 1, color.White, false)
	x := r.X + (r.W-len(label)*glyphW)/2
	y := r.Y + (r.H-glyphH)/2
	ebitenutil.DebugPrintAt(screen, label, x, y)
}

func printCentered(screen *ebiten.Image, text string, y int) {
	x := (layout.ScreenW - len(text)*glyphW) / 2
	ebitenutil.DebugPrintAt(screen, text, x, y)
}
