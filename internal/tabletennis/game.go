// Package tabletennis implements a two-paddle, single-ball terminal game.
// Both paddles are human-controlled from the same keyboard.
package tabletennis

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tabletennis/internal/config"
	"github.com/vovakirdan/tabletennis/internal/core"
	"github.com/vovakirdan/tabletennis/internal/entity"
)

// Visual colors for rendering
const (
	BallColor   = core.ColorBrightYellow
	PaddleColor = core.ColorBrightWhite
	ScoreColor  = core.ColorBrightCyan
)

// Game owns the ball, both paddles and the score.
type Game struct {
	canvas core.Canvas
	keys   core.KeyMap
	cfg    config.Config
	logger *log.Logger

	ball        *entity.GameObject
	leftPaddle  *entity.GameObject
	rightPaddle *entity.GameObject

	leftScore  int
	rightScore int

	cramped bool // Viewport was too small at the last Update
}

// New creates a game drawing onto canvas. The ball starts centered and the
// paddles start inset from each side, using the canvas's current size.
func New(canvas core.Canvas, cfg config.Config, logger *log.Logger) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	leftPaddle, err := entity.NewVerticalLine(cfg.Paddles.Length, cfg.PaddleGlyph())
	if err != nil {
		return nil, fmt.Errorf("tabletennis: left paddle: %w", err)
	}
	rightPaddle, err := entity.NewVerticalLine(cfg.Paddles.Length, cfg.PaddleGlyph())
	if err != nil {
		return nil, fmt.Errorf("tabletennis: right paddle: %w", err)
	}
	ball := entity.NewPoint(cfg.BallGlyph())

	size := canvas.Size()

	ball.Position = core.Center(size, ball.Size())
	ball.Velocity = cfg.Ball.Velocity.Vector()
	ball.Color = BallColor

	leftPaddle.Position = core.Vec(cfg.Paddles.Row, cfg.Paddles.Inset)
	leftPaddle.Color = PaddleColor
	rightPaddle.Position = core.Vec(cfg.Paddles.Row, size.Col-cfg.Paddles.Inset)
	rightPaddle.Color = PaddleColor

	g := &Game{
		canvas:      canvas,
		keys:        cfg.Controls.KeyMap(),
		cfg:         cfg,
		logger:      logger,
		ball:        ball,
		leftPaddle:  leftPaddle,
		rightPaddle: rightPaddle,
	}
	g.Fit()
	return g, nil
}

// Scores returns the left and right score.
func (g *Game) Scores() (left, right int) {
	return g.leftScore, g.rightScore
}

// Update advances the game by one tick. The order of the checks is part of
// the rules: walls, scoring, paddle bounce, paddle control, then motion.
// The viewport size is read once; while it is too small the tick is skipped.
func (g *Game) Update(in core.InputFrame) {
	size := g.canvas.Size()
	if g.tooSmall(size) {
		if !g.cramped {
			g.logger.Info("viewport too small, game paused", "rows", size.Row, "cols", size.Col)
		}
		g.cramped = true
		return
	}
	if g.cramped {
		g.logger.Info("viewport fits again, game resumed", "rows", size.Row, "cols", size.Col)
		g.cramped = false
	}
	g.fitTo(size)

	windowMax := core.WindowMax(size)

	// Top and bottom walls
	if next := g.ball.NextPosition(); next.Row < 0 || next.Row > windowMax.Row {
		g.ball.Velocity.Row = -g.ball.Velocity.Row
	}

	// Left and right walls. These are independent checks: after a reset the
	// right-wall test sees the re-centered ball, so a viewport too narrow for
	// the serve can score twice in one tick.
	if g.ball.NextPosition().Col == 0 {
		g.rightScore++
		g.logger.Debug("point scored", "side", "right", "left", g.leftScore, "right", g.rightScore)
		g.resetBall(size)
	}
	if g.ball.NextPosition().Col >= windowMax.Col {
		g.leftScore++
		g.logger.Debug("point scored", "side", "left", "left", g.leftScore, "right", g.rightScore)
		g.resetBall(size)
	}

	// Paddles
	if g.ball.CollidesWith(g.leftPaddle) || g.ball.CollidesWith(g.rightPaddle) {
		g.ball.Velocity.Col = -g.ball.Velocity.Col
	}

	steer(g.leftPaddle, in.Left, size)
	steer(g.rightPaddle, in.Right, size)

	g.ball.Update()
	g.leftPaddle.Update()
	g.rightPaddle.Update()
}

// steer sets a paddle's velocity from an intent, vetoing any move that would
// take it out of the viewport.
func steer(paddle *entity.GameObject, a core.Action, size core.Vector2) {
	switch a {
	case core.ActionUp:
		paddle.Velocity = core.Up
	case core.ActionDown:
		paddle.Velocity = core.Down
	default:
		paddle.Velocity = core.Zero
		return
	}

	if !paddle.IsWithinWindow(size) {
		paddle.Velocity = core.Zero
	}
}

// resetBall re-centers the ball and sends it back the other way.
// The vertical component is kept.
func (g *Game) resetBall(size core.Vector2) {
	g.ball.Position = core.Center(size, g.ball.Size())
	g.ball.Velocity.Col = -g.ball.Velocity.Col
}

// Fit re-anchors any object whose committed cells fall outside the current
// viewport, which only happens after the viewport shrinks. Nothing moves
// while the viewport is too small to hold every object.
func (g *Game) Fit() {
	size := g.canvas.Size()
	if g.tooSmall(size) {
		return
	}
	g.fitTo(size)
}

func (g *Game) fitTo(size core.Vector2) {
	for _, o := range g.objects() {
		if fit(o, size) {
			g.logger.Debug("object refit", "glyph", string(o.Glyph), "position", o.Position, "viewport", size)
		}
	}
}

func fit(o *entity.GameObject, size core.Vector2) bool {
	lo := o.Shape.Min()
	hi := o.Shape.Max()
	pos := core.Vector2{
		Row: core.Clamp(o.Position.Row, -lo.Row, max(size.Row-1-hi.Row, -lo.Row)),
		Col: core.Clamp(o.Position.Col, -lo.Col, max(size.Col-1-hi.Col, -lo.Col)),
	}
	if pos == o.Position {
		return false
	}
	o.Position = pos
	return true
}

func (g *Game) objects() []*entity.GameObject {
	return []*entity.GameObject{g.ball, g.leftPaddle, g.rightPaddle}
}

// tooSmall reports whether a viewport of the given size cannot hold every
// object and both score labels.
func (g *Game) tooSmall(size core.Vector2) bool {
	need := core.Vector2{
		Row: 1,
		Col: max(core.TextSize(strconv.Itoa(g.leftScore)).Col, core.TextSize(strconv.Itoa(g.rightScore)).Col),
	}
	for _, o := range g.objects() {
		s := o.Size()
		need.Row = max(need.Row, s.Row)
		need.Col = max(need.Col, s.Col)
	}
	return size.Row < need.Row || size.Col < need.Col
}

// fits reports whether every committed cell lies inside size.
func (g *Game) fits(size core.Vector2) bool {
	for _, o := range g.objects() {
		for _, p := range o.Points() {
			if !p.In(size) {
				return false
			}
		}
	}
	return true
}

// Draw renders the current state. It does not change any game state.
// If the viewport cannot show the table, only a notice is drawn.
func (g *Game) Draw() {
	size := g.canvas.Size()
	g.canvas.Clear()

	if g.tooSmall(size) || !g.fits(size) {
		g.drawNotice(size, "Window too small", "Resize to continue")
		return
	}

	g.ball.Draw(g.canvas)
	g.leftPaddle.Draw(g.canvas)
	g.rightPaddle.Draw(g.canvas)

	left := strconv.Itoa(g.leftScore)
	right := strconv.Itoa(g.rightScore)
	g.canvas.DrawText(core.Align(size, core.TextSize(left), core.AlignLeft, core.AlignTop), left, ScoreColor)
	g.canvas.DrawText(core.Align(size, core.TextSize(right), core.AlignRight, core.AlignTop), right, ScoreColor)
}

// drawNotice centers lines in the viewport, skipping any that do not fit.
func (g *Game) drawNotice(size core.Vector2, lines ...string) {
	top := core.Center(size, core.Vec(len(lines), 0)).Row
	for i, line := range lines {
		row := top + i
		ts := core.TextSize(line)
		if row < 0 || row >= size.Row || ts.Col > size.Col {
			continue
		}
		g.canvas.DrawText(core.Vec(row, core.Center(size, ts).Col), line, ScoreColor)
	}
}
