package tabletennis

import (
	"context"
	"time"

	"github.com/vovakirdan/tabletennis/internal/core"
)

// Host is the input and presentation half of the terminal a game is played on.
// It is owned exclusively by one Play call for the whole session.
type Host interface {
	// PollKey waits up to timeout for one key and returns core.KeyNone if none arrived.
	PollKey(timeout time.Duration) core.Key
	// SetCursorVisible shows or hides the terminal cursor.
	SetCursorVisible(visible bool)
	// Show flushes everything drawn since the last Show.
	Show()
}

// Play runs the tick loop until a quit key is pressed or ctx is cancelled.
// Each tick polls one key, updates, then draws; the quit key's own tick is
// still played out before the loop exits.
func (g *Game) Play(ctx context.Context, host Host) error {
	host.SetCursorVisible(false)
	defer host.SetCursorVisible(true)

	size := g.canvas.Size()
	g.logger.Info("session started", "rows", size.Row, "cols", size.Col)

	g.Draw()
	host.Show()

	for {
		if err := ctx.Err(); err != nil {
			g.logger.Info("session cancelled", "left", g.leftScore, "right", g.rightScore)
			return err
		}

		in := g.keys.Resolve(host.PollKey(g.cfg.Tick.Timeout()))
		g.Update(in)
		g.Draw()
		host.Show()

		if in.Quit {
			g.logger.Info("session ended", "left", g.leftScore, "right", g.rightScore)
			return nil
		}
	}
}

// Step is Update for frontends that own their own loop and deliver raw keys.
// It reports whether the key was a quit request.
func (g *Game) Step(k core.Key) (quit bool) {
	in := g.keys.Resolve(k)
	g.Update(in)
	return in.Quit
}
