// Package layout places the ZTapz board on the portrait touch screen and
// resolves pointer positions to circles and buttons. It has no ebiten
// dependency so it can be tested headless.
package layout

import (
	"github.com/vovakirdan/ztapz/internal/core"
	"github.com/vovakirdan/ztapz/internal/grid"
)

// Logical screen size in pixels. ebiten scales it to the window or device.
const (
	ScreenW = 360
	ScreenH = 640
)

const (
	pitch  = 68 // Distance between circle centers
	radius = 28
	gridY  = 104 // Top edge of the first row
)

// Button identifies a touch button.
type Button int

const (
	ButtonNone Button = iota
	ButtonStart
	ButtonMenu
	ButtonSpeedDown
	ButtonSpeedUp
	ButtonQuickMinute
)

// String returns a human-readable name for the button.
func (b Button) String() string {
	switch b {
	case ButtonStart:
		return "Start"
	case ButtonMenu:
		return "Menu"
	case ButtonSpeedDown:
		return "SpeedDown"
	case ButtonSpeedUp:
		return "SpeedUp"
	case ButtonQuickMinute:
		return "QuickMinute"
	default:
		return "None"
	}
}

// Buttons on the game screen.
var (
	StartRect     = core.NewRect(80, 588, 200, 40)
	MenuRect      = core.NewRect(252, 12, 96, 28)
	SpeedDownRect = core.NewRect(16, 58, 36, 28)
	SpeedUpRect   = core.NewRect(308, 58, 36, 28)
	SliderRect    = core.NewRect(60, 68, 240, 8)
)

// QuickMinuteRect is the play button on the intro screen.
var QuickMinuteRect = core.NewRect(80, 440, 200, 48)

// Radius returns the circle radius in pixels.
func Radius() float32 {
	return radius
}

// CellCenter returns the center of the circle at index.
func CellCenter(index int) (float32, float32) {
	row, col := grid.Position(index)
	x0 := (ScreenW - grid.Cols*pitch) / 2
	cx := x0 + col*pitch + pitch/2
	cy := gridY + row*pitch + pitch/2
	return float32(cx), float32(cy)
}

// HitCell returns the circle containing (x, y).
func HitCell(x, y int) (int, bool) {
	for i := range grid.Size {
		cx, cy := CellCenter(i)
		dx := float32(x) - cx
		dy := float32(y) - cy
		if dx*dx+dy*dy <= radius*radius {
			return i, true
		}
	}
	return -1, false
}

// HitButton returns the game screen button under (x, y).
func HitButton(x, y int) Button {
	switch {
	case StartRect.Contains(x, y):
		return ButtonStart
	case MenuRect.Contains(x, y):
		return ButtonMenu
	case SpeedDownRect.Contains(x, y):
		return ButtonSpeedDown
	case SpeedUpRect.Contains(x, y):
		return ButtonSpeedUp
	}
	return ButtonNone
}

// HitIntro returns the intro screen button under (x, y).
func HitIntro(x, y int) Button {
	if QuickMinuteRect.Contains(x, y) {
		return ButtonQuickMinute
	}
	return ButtonNone
}
