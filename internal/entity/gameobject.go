// Package entity implements the positioned, moving point-shapes the game is made of.
package entity

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tabletennis/internal/core"
)

var (
	// ErrEmptyShape is returned when constructing an object with no points.
	ErrEmptyShape = errors.New("entity: shape has no points")
	// ErrInvalidLength is returned by the line constructors for length < 1.
	ErrInvalidLength = errors.New("entity: line length must be at least 1")
)

// Shape is the set of cell offsets an object occupies, relative to its position.
type Shape []core.Vector2

// Min returns the per-axis minimum offset.
func (s Shape) Min() core.Vector2 {
	m := s[0]
	for _, p := range s[1:] {
		m.Row = min(m.Row, p.Row)
		m.Col = min(m.Col, p.Col)
	}
	return m
}

// Max returns the per-axis maximum offset.
func (s Shape) Max() core.Vector2 {
	m := s[0]
	for _, p := range s[1:] {
		m.Row = max(m.Row, p.Row)
		m.Col = max(m.Col, p.Col)
	}
	return m
}

// GameObject is a shape anchored at Position that moves by Velocity each tick.
// Velocity is never reset by Update; the owner recomputes it every tick.
type GameObject struct {
	Position core.Vector2
	Velocity core.Vector2
	Shape    Shape
	Glyph    rune
	Color    core.Color
}

// New creates an object at the origin with zero velocity.
func New(shape Shape, glyph rune) (*GameObject, error) {
	if len(shape) == 0 {
		return nil, ErrEmptyShape
	}
	return &GameObject{
		Shape: append(Shape(nil), shape...),
		Glyph: glyph,
	}, nil
}

// NewPoint creates a single-cell object.
func NewPoint(glyph rune) *GameObject {
	return &GameObject{
		Shape: Shape{core.Zero},
		Glyph: glyph,
	}
}

// NewHorizontalLine creates an object covering (0,0)..(0,length-1).
func NewHorizontalLine(length int, glyph rune) (*GameObject, error) {
	return newLine(length, core.Right, glyph)
}

// NewVerticalLine creates an object covering (0,0)..(length-1,0).
func NewVerticalLine(length int, glyph rune) (*GameObject, error) {
	return newLine(length, core.Down, glyph)
}

func newLine(length int, step core.Vector2, glyph rune) (*GameObject, error) {
	if length < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidLength, length)
	}

	shape := make(Shape, length)
	for i := 1; i < length; i++ {
		shape[i] = shape[i-1].Add(step)
	}
	return New(shape, glyph)
}

// NextPosition is where the object will be after the next Update.
func (o *GameObject) NextPosition() core.Vector2 {
	return o.Position.Add(o.Velocity)
}

// Size returns the per-axis extent of the shape's bounding box.
func (o *GameObject) Size() core.Vector2 {
	return o.Shape.Max().Sub(o.Shape.Min()).Add(core.One)
}

// Update commits one tick of motion.
func (o *GameObject) Update() {
	o.Position = o.NextPosition()
}

// Points returns the world cells the object occupies now.
func (o *GameObject) Points() []core.Vector2 {
	return o.worldPoints(o.Position)
}

// NextPoints returns the world cells the object will occupy after Update.
func (o *GameObject) NextPoints() []core.Vector2 {
	return o.worldPoints(o.NextPosition())
}

func (o *GameObject) worldPoints(anchor core.Vector2) []core.Vector2 {
	points := make([]core.Vector2, len(o.Shape))
	for i, p := range o.Shape {
		points[i] = anchor.Add(p)
	}
	return points
}

// IsWithinWindow reports whether every cell at the next position lies inside
// a viewport of the given size. It looks ahead so callers can veto a velocity
// before committing it.
func (o *GameObject) IsWithinWindow(viewport core.Vector2) bool {
	for _, p := range o.NextPoints() {
		if !p.In(viewport) {
			return false
		}
	}
	return true
}

// CollidesWith reports whether the two objects will share a cell after their
// next Update. Both sides are evaluated at their next positions.
func (o *GameObject) CollidesWith(other *GameObject) bool {
	cells := make(map[core.Vector2]struct{}, len(o.Shape))
	for _, p := range o.NextPoints() {
		cells[p] = struct{}{}
	}
	for _, p := range other.NextPoints() {
		if _, ok := cells[p]; ok {
			return true
		}
	}
	return false
}

// Draw renders the object at its current position.
func (o *GameObject) Draw(dst core.Canvas) {
	for _, p := range o.Points() {
		dst.SetCell(p, o.Glyph, o.Color)
	}
}
