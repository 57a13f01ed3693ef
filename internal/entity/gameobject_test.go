package entity

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tabletennis/internal/core"
)

func TestConstructors(t *testing.T) {
	point := NewPoint('O')
	if len(point.Shape) != 1 || point.Shape[0] != core.Zero {
		t.Errorf("NewPoint shape = %v, expected [(0,0)]", point.Shape)
	}
	if point.Size() != core.Vec(1, 1) {
		t.Errorf("NewPoint Size() = %v, expected (1, 1)", point.Size())
	}

	h, err := NewHorizontalLine(4, '-')
	if err != nil {
		t.Fatalf("NewHorizontalLine() failed: %v", err)
	}
	for i, p := range h.Shape {
		if p != core.Vec(0, i) {
			t.Errorf("horizontal shape[%d] = %v, expected (0, %d)", i, p, i)
		}
	}
	if h.Size() != core.Vec(1, 4) {
		t.Errorf("horizontal Size() = %v, expected (1, 4)", h.Size())
	}

	v, err := NewVerticalLine(5, 'X')
	if err != nil {
		t.Fatalf("NewVerticalLine() failed: %v", err)
	}
	for i, p := range v.Shape {
		if p != core.Vec(i, 0) {
			t.Errorf("vertical shape[%d] = %v, expected (%d, 0)", i, p, i)
		}
	}
	if v.Size() != core.Vec(5, 1) {
		t.Errorf("vertical Size() = %v, expected (5, 1)", v.Size())
	}
	if v.Glyph != 'X' {
		t.Errorf("Glyph = %q, expected 'X'", v.Glyph)
	}
}

func TestConstructorsRejectBadLength(t *testing.T) {
	for _, length := range []int{0, -1, -10} {
		if _, err := NewHorizontalLine(length, '-'); !errors.Is(err, ErrInvalidLength) {
			t.Errorf("NewHorizontalLine(%d) error = %v, expected ErrInvalidLength", length, err)
		}
		if _, err := NewVerticalLine(length, '|'); !errors.Is(err, ErrInvalidLength) {
			t.Errorf("NewVerticalLine(%d) error = %v, expected ErrInvalidLength", length, err)
		}
	}

	if _, err := New(nil, 'x'); !errors.Is(err, ErrEmptyShape) {
		t.Errorf("New(nil) error = %v, expected ErrEmptyShape", err)
	}
}

func TestSizeOfSparseShape(t *testing.T) {
	o, err := New(Shape{core.Vec(0, 0), core.Vec(2, 3), core.Vec(-1, 1)}, '#')
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	if o.Size() != core.Vec(4, 4) {
		t.Errorf("Size() = %v, expected (4, 4)", o.Size())
	}
}

func TestUpdateAppliesVelocity(t *testing.T) {
	o := NewPoint('O')
	o.Position = core.Vec(5, 5)
	o.Velocity = core.Vec(-1, 1)

	if o.NextPosition() != core.Vec(4, 6) {
		t.Errorf("NextPosition() = %v, expected (4, 6)", o.NextPosition())
	}

	o.Update()
	if o.Position != core.Vec(4, 6) {
		t.Errorf("Position after Update = %v, expected (4, 6)", o.Position)
	}
	if o.Velocity != core.Vec(-1, 1) {
		t.Errorf("Update must not touch velocity, got %v", o.Velocity)
	}
}

func TestIsWithinWindow(t *testing.T) {
	viewport := core.Vec(20, 20)

	tests := []struct {
		name     string
		position core.Vector2
		velocity core.Vector2
		expected bool
	}{
		{"resting inside", core.Vec(5, 5), core.Zero, true},
		{"moving to top row", core.Vec(1, 5), core.Up, true},
		{"moving above top", core.Vec(0, 5), core.Up, false},
		{"moving to bottom row", core.Vec(14, 5), core.Down, true},
		{"moving below bottom", core.Vec(15, 5), core.Down, false},
		{"moving left out", core.Vec(5, 0), core.Left, false},
		{"moving right out", core.Vec(5, 19), core.Right, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			paddle, err := NewVerticalLine(5, 'X')
			if err != nil {
				t.Fatal(err)
			}
			paddle.Position = tc.position
			paddle.Velocity = tc.velocity

			if got := paddle.IsWithinWindow(viewport); got != tc.expected {
				t.Errorf("IsWithinWindow() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestCollidesWith(t *testing.T) {
	newPaddle := func(pos core.Vector2) *GameObject {
		p, err := NewVerticalLine(5, 'X')
		if err != nil {
			t.Fatal(err)
		}
		p.Position = pos
		return p
	}

	tests := []struct {
		name     string
		ball     core.Vector2
		velocity core.Vector2
		paddle   core.Vector2
		expected bool
	}{
		{"ball moving into paddle", core.Vec(7, 6), core.Left, core.Vec(5, 5), true},
		{"ball moving away from paddle", core.Vec(7, 6), core.Right, core.Vec(5, 5), false},
		{"ball diagonal onto paddle end", core.Vec(4, 6), core.Vec(1, -1), core.Vec(5, 5), true},
		{"ball passes below paddle", core.Vec(10, 6), core.Vec(1, -1), core.Vec(5, 5), false},
		{"ball currently overlapping but leaving", core.Vec(6, 5), core.Right, core.Vec(5, 5), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ball := NewPoint('O')
			ball.Position = tc.ball
			ball.Velocity = tc.velocity
			paddle := newPaddle(tc.paddle)

			if got := ball.CollidesWith(paddle); got != tc.expected {
				t.Errorf("ball.CollidesWith(paddle) = %v, expected %v", got, tc.expected)
			}
			if got := paddle.CollidesWith(ball); got != tc.expected {
				t.Errorf("paddle.CollidesWith(ball) = %v, expected %v (symmetry)", got, tc.expected)
			}
		})
	}
}

func TestCollidesWithUsesOtherNextPosition(t *testing.T) {
	ball := NewPoint('O')
	ball.Position = core.Vec(3, 6)

	paddle, err := NewVerticalLine(3, 'X')
	if err != nil {
		t.Fatal(err)
	}
	paddle.Position = core.Vec(0, 6)

	if ball.CollidesWith(paddle) {
		t.Fatal("resting objects sharing no cell should not collide")
	}

	paddle.Velocity = core.Down
	if !ball.CollidesWith(paddle) {
		t.Error("paddle moving onto a resting ball should collide")
	}
}

func TestDraw(t *testing.T) {
	screen := core.NewScreen(10, 10)
	paddle, err := NewVerticalLine(3, 'X')
	if err != nil {
		t.Fatal(err)
	}
	paddle.Position = core.Vec(2, 4)
	paddle.Velocity = core.Down
	paddle.Color = core.ColorBrightWhite

	paddle.Draw(screen)

	// Draw uses the committed position, not the next one.
	for row := 2; row < 5; row++ {
		cell := screen.GetCell(core.Vec(row, 4))
		if cell.Rune != 'X' || cell.Color != core.ColorBrightWhite {
			t.Errorf("cell (%d, 4) = %+v, expected white X", row, cell)
		}
	}
	if screen.Get(core.Vec(5, 4)) != ' ' {
		t.Error("Draw should not paint the next position")
	}
}
