// Package config provides YAML-based game settings with embedded defaults.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/key"

	"github.com/vovakirdan/tabletennis/internal/core"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config contains all settings for a table tennis session.
type Config struct {
	Ball     BallConfig     `yaml:"ball"`
	Paddles  PaddleConfig   `yaml:"paddles"`
	Tick     TickConfig     `yaml:"tick"`
	Controls ControlsConfig `yaml:"controls"`
}

// BallConfig defines the ball's look and serve velocity.
type BallConfig struct {
	Glyph    string   `yaml:"glyph"`
	Velocity Velocity `yaml:"velocity"`
}

// Velocity is a per-tick step; each component must be -1, 0 or 1.
type Velocity struct {
	Row int `yaml:"row"`
	Col int `yaml:"col"`
}

// Vector converts the velocity to a core.Vector2.
func (v Velocity) Vector() core.Vector2 {
	return core.Vec(v.Row, v.Col)
}

// PaddleConfig defines both paddles.
type PaddleConfig struct {
	Glyph  string `yaml:"glyph"`
	Length int    `yaml:"length"`
	Row    int    `yaml:"row"`   // Starting row of the top cell
	Inset  int    `yaml:"inset"` // Left paddle column; right paddle is at cols-inset
}

// TickConfig defines loop timing.
type TickConfig struct {
	TimeoutMS int `yaml:"timeout_ms"`
}

// Timeout returns the input poll timeout for one tick.
func (t TickConfig) Timeout() time.Duration {
	return time.Duration(t.TimeoutMS) * time.Millisecond
}

// ControlsConfig lists key names (Bubble Tea spelling) for each intent.
type ControlsConfig struct {
	LeftUp    []string `yaml:"left_up"`
	LeftDown  []string `yaml:"left_down"`
	RightUp   []string `yaml:"right_up"`
	RightDown []string `yaml:"right_down"`
	Quit      []string `yaml:"quit"`
}

// KeyMap builds the key map for these controls.
func (c ControlsConfig) KeyMap() core.KeyMap {
	return core.KeyMap{
		LeftUp:    binding(c.LeftUp, "left paddle up"),
		LeftDown:  binding(c.LeftDown, "left paddle down"),
		RightUp:   binding(c.RightUp, "right paddle up"),
		RightDown: binding(c.RightDown, "right paddle down"),
		Quit:      binding(c.Quit, "quit"),
	}
}

func binding(keys []string, desc string) key.Binding {
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(strings.Join(keys, "/"), desc),
	)
}

// BallGlyph returns the ball glyph as a rune.
func (c Config) BallGlyph() rune {
	r, _ := utf8.DecodeRuneInString(c.Ball.Glyph)
	return r
}

// PaddleGlyph returns the paddle glyph as a rune.
func (c Config) PaddleGlyph() rune {
	r, _ := utf8.DecodeRuneInString(c.Paddles.Glyph)
	return r
}

// Validate checks the config for values the game cannot run with.
func (c Config) Validate() error {
	if utf8.RuneCountInString(c.Ball.Glyph) != 1 {
		return fmt.Errorf("%w: ball glyph %q must be a single character", ErrInvalidConfig, c.Ball.Glyph)
	}
	if utf8.RuneCountInString(c.Paddles.Glyph) != 1 {
		return fmt.Errorf("%w: paddle glyph %q must be a single character", ErrInvalidConfig, c.Paddles.Glyph)
	}
	if !unitStep(c.Ball.Velocity.Row) || !unitStep(c.Ball.Velocity.Col) {
		return fmt.Errorf("%w: ball velocity (%d, %d) must use -1, 0 or 1",
			ErrInvalidConfig, c.Ball.Velocity.Row, c.Ball.Velocity.Col)
	}
	if c.Paddles.Length < 1 {
		return fmt.Errorf("%w: paddle length %d must be at least 1", ErrInvalidConfig, c.Paddles.Length)
	}
	if c.Paddles.Row < 0 || c.Paddles.Inset < 1 {
		return fmt.Errorf("%w: paddle row %d and inset %d must be non-negative and positive",
			ErrInvalidConfig, c.Paddles.Row, c.Paddles.Inset)
	}
	if c.Tick.TimeoutMS <= 0 {
		return fmt.Errorf("%w: tick timeout %dms must be positive", ErrInvalidConfig, c.Tick.TimeoutMS)
	}
	if len(c.Controls.Quit) == 0 {
		return fmt.Errorf("%w: at least one quit key is required", ErrInvalidConfig)
	}
	return nil
}

func unitStep(v int) bool {
	return v >= -1 && v <= 1
}
