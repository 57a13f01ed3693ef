package tui

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/vovakirdan/tabletennis/internal/core"
)

// Fallback size when stdout is not a terminal.
const (
	defaultWidth  = 80
	defaultHeight = 24
)

// keyFromMsg converts a Bubble Tea key message to a core key.
// core.Key already uses Bubble Tea's spelling.
func keyFromMsg(msg tea.KeyMsg) core.Key {
	return core.Key(msg.String())
}

// NewScreen returns a screen buffer sized to the current terminal.
// The first WindowSizeMsg corrects it if the terminal reports differently.
func NewScreen() *core.Screen {
	width, height := defaultWidth, defaultHeight
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return core.NewScreen(width, height)
}
