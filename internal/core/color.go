package core

// Color names a palette entry. Frontends choose the actual rendering: the
// terminal maps each entry to an ANSI 256-color code, the window to RGB.
type Color uint8

// Palette entries used by the game and its overlays.
const (
	ColorDefault Color = iota
	ColorRed
	ColorYellow
	ColorCyan
	ColorOrange
	ColorBrightYellow
	ColorBrightCyan
	ColorBrightWhite
)
