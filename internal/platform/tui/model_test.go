package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tabletennis/internal/config"
	"github.com/vovakirdan/tabletennis/internal/core"
	"github.com/vovakirdan/tabletennis/internal/logging"
	"github.com/vovakirdan/tabletennis/internal/tabletennis"
)

func newTestModel(t *testing.T) (Model, *core.Screen) {
	t.Helper()
	screen := core.NewScreen(20, 20)
	game, err := tabletennis.New(screen, config.Default(), logging.Discard())
	if err != nil {
		t.Fatalf("tabletennis.New() failed: %v", err)
	}
	return NewModel(game, screen, time.Millisecond, logging.Discard()), screen
}

func TestKeyFromMsg(t *testing.T) {
	tests := []struct {
		msg      tea.KeyMsg
		expected core.Key
	}{
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'w'}}, "w"},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'s'}}, "s"},
		{tea.KeyMsg{Type: tea.KeyUp}, "up"},
		{tea.KeyMsg{Type: tea.KeyDown}, "down"},
		{tea.KeyMsg{Type: tea.KeyEsc}, "esc"},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, "ctrl+c"},
	}

	for _, tc := range tests {
		if got := keyFromMsg(tc.msg); got != tc.expected {
			t.Errorf("keyFromMsg(%v) = %q, expected %q", tc.msg, got, tc.expected)
		}
	}
}

func TestUpdateKeyIsHeldUntilTick(t *testing.T) {
	m, _ := newTestModel(t)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'w'}})
	if cmd != nil {
		t.Error("key message should not schedule a command")
	}
	m = next.(Model)
	if m.pending != "w" {
		t.Errorf("pending = %q, expected \"w\"", m.pending)
	}

	next, cmd = m.Update(TickMsg(time.Now()))
	m = next.(Model)
	if m.pending != core.KeyNone {
		t.Errorf("pending after tick = %q, expected no key", m.pending)
	}
	if cmd == nil {
		t.Fatal("tick should schedule the next tick")
	}
	if _, ok := cmd().(TickMsg); !ok {
		t.Error("scheduled command should produce a TickMsg")
	}
}

func TestUpdateQuitKeyEndsSession(t *testing.T) {
	m, _ := newTestModel(t)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	next, cmd := next.(Model).Update(TickMsg(time.Now()))
	m = next.(Model)

	if !m.quitting {
		t.Error("quitting should be set after a quit tick")
	}
	if cmd == nil {
		t.Fatal("quit tick should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit tick should return tea.Quit")
	}
	if m.View() != "" {
		t.Error("View() should be empty once quitting")
	}
}

func TestUpdateResize(t *testing.T) {
	m, screen := newTestModel(t)

	m.Update(tea.WindowSizeMsg{Width: 10, Height: 8})

	if screen.Width() != 10 || screen.Height() != 8 {
		t.Errorf("screen = %dx%d, expected 10x8", screen.Width(), screen.Height())
	}
	// Right paddle sat at column 15 and must be pulled back inside.
	out := m.View()
	if lines := strings.Split(out, "\n"); len(lines) != 8 {
		t.Errorf("View() has %d lines, expected 8", len(lines))
	}
}

func TestViewShowsObjects(t *testing.T) {
	m, _ := newTestModel(t)

	out := m.View()

	if strings.Count(out, "\n") != 19 {
		t.Errorf("View() has %d newlines, expected 19", strings.Count(out, "\n"))
	}
	if !strings.Contains(out, "O") {
		t.Error("View() should contain the ball")
	}
	if strings.Count(out, "X") != 10 {
		t.Errorf("View() has %d paddle cells, expected 10", strings.Count(out, "X"))
	}
}
