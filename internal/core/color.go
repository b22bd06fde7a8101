package core

// Color is the foreground color of a screen cell.
// The platform maps each value to an ANSI 256-color code.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorPink
	ColorGray
	ColorFlash // Pop flash highlight on a hit circle
)

// HueColors is the palette inactive circles cycle through.
var HueColors = []Color{
	ColorBlue,
	ColorCyan,
	ColorMagenta,
	ColorBrightCyan,
	ColorBrightMagenta,
	ColorGreen,
	ColorYellow,
}
