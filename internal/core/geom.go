// Package core provides fundamental types and utilities for the table tennis game.
// It contains no frontend dependencies (no tcell, no Bubble Tea) to keep game
// logic pure and testable.
package core

import "github.com/mattn/go-runewidth"

// Vector2 is an integer (row, column) pair used for positions, velocities and sizes.
type Vector2 struct {
	Row, Col int
}

// Common unit velocities.
var (
	Zero  = Vector2{}
	Up    = Vector2{Row: -1}
	Down  = Vector2{Row: 1}
	Left  = Vector2{Col: -1}
	Right = Vector2{Col: 1}
	One   = Vector2{Row: 1, Col: 1}
)

// Vec creates a new Vector2.
func Vec(row, col int) Vector2 {
	return Vector2{Row: row, Col: col}
}

// Add returns v + o component-wise.
func (v Vector2) Add(o Vector2) Vector2 {
	return Vector2{Row: v.Row + o.Row, Col: v.Col + o.Col}
}

// Sub returns v - o component-wise.
func (v Vector2) Sub(o Vector2) Vector2 {
	return Vector2{Row: v.Row - o.Row, Col: v.Col - o.Col}
}

// Neg returns -v.
func (v Vector2) Neg() Vector2 {
	return Vector2{Row: -v.Row, Col: -v.Col}
}

// FloorDiv divides both components by d, rounding towards negative infinity.
func (v Vector2) FloorDiv(d int) Vector2 {
	return Vector2{Row: floorDiv(v.Row, d), Col: floorDiv(v.Col, d)}
}

// In reports whether v lies in [0, size) on both axes.
func (v Vector2) In(size Vector2) bool {
	return v.Row >= 0 && v.Col >= 0 && v.Row < size.Row && v.Col < size.Col
}

// floorDiv is integer division rounding towards negative infinity.
// Go's / truncates towards zero, which differs for negative operands.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// WindowMin returns the top-left cell of a viewport.
func WindowMin() Vector2 {
	return Zero
}

// WindowMax returns the bottom-right cell of a viewport of the given size.
func WindowMax(viewport Vector2) Vector2 {
	return WindowMin().Add(viewport).Sub(One)
}

// Center returns the top-left anchor that visually centers an object of the
// given size. The caller must ensure size does not exceed the viewport.
func Center(viewport, size Vector2) Vector2 {
	return WindowMin().Add(viewport.Sub(One).FloorDiv(2)).Sub(size.FloorDiv(2))
}

// RightAlign returns the top-left anchor that puts the object's bottom-right
// corner on the viewport's bottom-right cell.
func RightAlign(viewport, size Vector2) Vector2 {
	return WindowMax(viewport).Sub(size).Add(One)
}

// HAlign selects horizontal placement for Align.
type HAlign int

const (
	AlignLeft HAlign = iota
	AlignCenter
	AlignRight
)

// VAlign selects vertical placement for Align.
type VAlign int

const (
	AlignTop VAlign = iota
	AlignMiddle
	AlignBottom
)

// Align returns the anchor for an object of the given size placed in the viewport.
func Align(viewport, size Vector2, h HAlign, v VAlign) Vector2 {
	var pos Vector2

	switch v {
	case AlignMiddle:
		pos.Row = Center(viewport, size).Row
	case AlignBottom:
		pos.Row = RightAlign(viewport, size).Row
	default:
		pos.Row = WindowMin().Row
	}

	switch h {
	case AlignCenter:
		pos.Col = Center(viewport, size).Col
	case AlignRight:
		pos.Col = RightAlign(viewport, size).Col
	default:
		pos.Col = WindowMin().Col
	}

	return pos
}

// TextSize returns the bounding size of a single-line string in cells.
func TextSize(text string) Vector2 {
	return Vector2{Row: 1, Col: runewidth.StringWidth(text)}
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
