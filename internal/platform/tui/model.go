package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tabletennis/internal/core"
	"github.com/vovakirdan/tabletennis/internal/tabletennis"
)

// Model is the Bubble Tea model for a table tennis session.
type Model struct {
	game     *tabletennis.Game
	screen   *core.Screen
	logger   *log.Logger
	interval time.Duration
	pending  core.Key // Last key since the previous tick
	quitting bool
}

// NewModel creates a model for a game that draws onto screen.
func NewModel(game *tabletennis.Game, screen *core.Screen, interval time.Duration, logger *log.Logger) Model {
	return Model{
		game:     game,
		screen:   screen,
		logger:   logger,
		interval: interval,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.interval)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.pending = keyFromMsg(msg)
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleResize resizes the buffer and pulls objects back inside it.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.screen.Resize(msg.Width, msg.Height)
	m.game.Fit()
	m.logger.Debug("viewport resized", "rows", msg.Height, "cols", msg.Width)
	return m, nil
}

// handleTick plays one tick with the last key received.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	quit := m.game.Step(m.pending)
	m.pending = core.KeyNone

	if quit {
		left, right := m.game.Scores()
		m.logger.Info("session ended", "left", left, "right", right)
		m.quitting = true
		return m, tea.Quit
	}

	return m, tickCmd(m.interval)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Draw()
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program and blocks until the session ends or ctx is done.
func Run(ctx context.Context, game *tabletennis.Game, screen *core.Screen, interval time.Duration, logger *log.Logger) error {
	size := screen.Size()
	logger.Info("session started", "frontend", "tea", "rows", size.Row, "cols", size.Col)

	p := tea.NewProgram(
		NewModel(game, screen, interval, logger),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	_, err := p.Run()
	return err
}
