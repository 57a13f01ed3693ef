package core

// Color is the foreground color of a screen cell, as an ANSI 256-color index.
// ColorDefault leaves the terminal's own foreground untouched.
type Color uint8

const (
	ColorDefault      Color = 0
	ColorBrightYellow Color = 11
	ColorBrightCyan   Color = 14
	ColorBrightWhite  Color = 15
)

// ANSI returns the palette index, or -1 for the terminal default.
func (c Color) ANSI() int {
	if c == ColorDefault {
		return -1
	}
	return int(c)
}
