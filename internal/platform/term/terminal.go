// Package term implements the game's render and input port on a tcell screen.
package term

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/vovakirdan/tabletennis/internal/core"
)

// Terminal is a core.Canvas and tabletennis.Host backed by tcell.
type Terminal struct {
	screen tcell.Screen
	events chan tcell.Event
	size   core.Vector2 // Refreshed only by PollKey, so a tick sees one size
}

var _ core.Canvas = (*Terminal)(nil)

// Open initializes the real terminal.
func Open() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("term: cannot create screen: %w", err)
	}
	return NewWithScreen(screen)
}

// NewWithScreen initializes the given screen, which is useful with
// tcell.NewSimulationScreen.
func NewWithScreen(screen tcell.Screen) (*Terminal, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("term: cannot init screen: %w", err)
	}
	screen.Clear()

	t := &Terminal{
		screen: screen,
		events: make(chan tcell.Event, 64),
	}
	t.resized()
	go t.pump()
	return t, nil
}

// pump forwards screen events until the screen is finalized.
func (t *Terminal) pump() {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			close(t.events)
			return
		}
		t.events <- ev
	}
}

// Close restores the terminal.
func (t *Terminal) Close() {
	t.screen.Fini()
}

// Size returns (rows, cols) as of the last resize seen by PollKey.
func (t *Terminal) Size() core.Vector2 {
	return t.size
}

// resized picks up the screen's current size.
func (t *Terminal) resized() {
	w, h := t.screen.Size()
	t.size = core.Vec(h, w)
}

// Clear erases all drawn content.
func (t *Terminal) Clear() {
	t.screen.Clear()
}

// SetCell sets one grid cell. Panics if pos is outside Size. A shrink that
// PollKey has not seen yet is harmless: tcell drops cells past its edge.
func (t *Terminal) SetCell(pos core.Vector2, r rune, c core.Color) {
	size := t.Size()
	if !pos.In(size) {
		panic(fmt.Sprintf("term: cell (%d, %d) outside %dx%d screen", pos.Row, pos.Col, size.Row, size.Col))
	}
	t.screen.SetContent(pos.Col, pos.Row, r, nil, style(c))
}

// DrawText writes text left-anchored at pos.
func (t *Terminal) DrawText(pos core.Vector2, text string, c core.Color) {
	for _, r := range text {
		t.SetCell(pos, r, c)
		pos.Col += max(runewidth.RuneWidth(r), 1)
	}
}

// Show flushes the drawn frame to the terminal.
func (t *Terminal) Show() {
	t.screen.Show()
}

// SetCursorVisible shows or hides the cursor.
func (t *Terminal) SetCursorVisible(visible bool) {
	if !visible {
		t.screen.HideCursor()
		return
	}
	size := t.Size()
	t.screen.ShowCursor(0, max(size.Row-1, 0))
}

// PollKey waits up to timeout for a key press. Resize events are handled
// here and do not end the wait.
func (t *Terminal) PollKey(timeout time.Duration) core.Key {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	for {
		select {
		case ev, ok := <-t.events:
			if !ok {
				return core.KeyNone
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if k := keyName(ev.Key(), ev.Rune()); k != core.KeyNone {
					return k
				}
			case *tcell.EventResize:
				t.screen.Sync()
				t.resized()
			}
		case <-timer.C:
			return core.KeyNone
		}
	}
}

// keyName spells a tcell key the way Bubble Tea does, so one set of bindings
// serves both frontends.
func keyName(k tcell.Key, r rune) core.Key {
	switch k {
	case tcell.KeyRune:
		return core.Key(string(r))
	case tcell.KeyUp:
		return "up"
	case tcell.KeyDown:
		return "down"
	case tcell.KeyLeft:
		return "left"
	case tcell.KeyRight:
		return "right"
	case tcell.KeyEscape:
		return "esc"
	case tcell.KeyEnter:
		return "enter"
	case tcell.KeyTab:
		return "tab"
	case tcell.KeyCtrlC:
		return "ctrl+c"
	default:
		return core.KeyNone
	}
}

// style maps a core color to a tcell style using the same ANSI palette index.
func style(c core.Color) tcell.Style {
	if c.ANSI() < 0 {
		return tcell.StyleDefault
	}
	return tcell.StyleDefault.Foreground(tcell.PaletteColor(c.ANSI()))
}
