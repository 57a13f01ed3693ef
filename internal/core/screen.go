package core

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Canvas is the drawing half of the render port. Positions are (row, col).
// Implementations treat a write outside Size() as a programming error and panic.
type Canvas interface {
	// Size returns the current drawable grid size in (rows, cols).
	// It is queried every tick and must not be cached by callers.
	Size() Vector2
	// Clear erases all drawn content.
	Clear()
	// SetCell sets one grid cell.
	SetCell(pos Vector2, r rune, c Color)
	// DrawText writes a horizontal run of cells left-anchored at pos.
	DrawText(pos Vector2, text string, c Color)
}

// Cell is a single screen cell.
type Cell struct {
	Rune  rune
	Color Color
}

// Screen is an in-memory Canvas. The Bubble Tea frontend renders it to a
// string each frame; tests use it to inspect what the game drew.
type Screen struct {
	width  int
	height int
	cells  [][]Cell
}

var _ Canvas = (*Screen)(nil)

// NewScreen creates a new screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  width,
		height: height,
	}
	s.allocate()
	s.Clear()
	return s
}

func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// Size returns (rows, cols).
func (s *Screen) Size() Vector2 {
	return Vector2{Row: s.height, Col: s.width}
}

// Resize changes the screen dimensions, preserving content where possible.
func (s *Screen) Resize(width, height int) {
	if width == s.width && height == s.height {
		return
	}

	oldCells := s.cells
	oldW, oldH := s.width, s.height

	s.width = width
	s.height = height
	s.allocate()
	s.Clear()

	copyW := min(oldW, width)
	copyH := min(oldH, height)
	for y := 0; y < copyH; y++ {
		copy(s.cells[y][:copyW], oldCells[y][:copyW])
	}
}

// Clear fills the entire screen with spaces.
func (s *Screen) Clear() {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = Cell{Rune: ' '}
		}
	}
}

// SetCell places a rune at the given position.
// Panics if pos is outside the screen.
func (s *Screen) SetCell(pos Vector2, r rune, c Color) {
	if !pos.In(s.Size()) {
		panic(fmt.Sprintf("core: cell (%d, %d) outside %dx%d screen", pos.Row, pos.Col, s.height, s.width))
	}
	s.cells[pos.Row][pos.Col] = Cell{Rune: r, Color: c}
}

// DrawText writes a string horizontally starting at pos.
// Wide runes advance by their display width.
func (s *Screen) DrawText(pos Vector2, text string, c Color) {
	for _, r := range text {
		s.SetCell(pos, r, c)
		pos.Col += max(runewidth.RuneWidth(r), 1)
	}
}

// Get returns the rune at the given position.
// Returns space for out-of-bounds coordinates.
func (s *Screen) Get(pos Vector2) rune {
	return s.GetCell(pos).Rune
}

// GetCell returns the cell at the given position.
// Returns a blank cell for out-of-bounds coordinates.
func (s *Screen) GetCell(pos Vector2) Cell {
	if !pos.In(s.Size()) {
		return Cell{Rune: ' '}
	}
	return s.cells[pos.Row][pos.Col]
}

// String converts the screen buffer to a plain string.
// Each row is joined with newlines.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < s.width; x++ {
			sb.WriteRune(s.cells[y][x].Rune)
		}
	}
	return sb.String()
}

// Row returns the specified row as a string.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	var sb strings.Builder
	for _, c := range s.cells[y] {
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}
