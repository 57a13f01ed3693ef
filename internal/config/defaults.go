package config

import (
	_ "embed"
)

//go:embed defaults/tabletennis.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Ball: BallConfig{
			Glyph:    "O",
			Velocity: Velocity{Row: 1, Col: 1},
		},
		Paddles: PaddleConfig{
			Glyph:  "X",
			Length: 5,
			Row:    5,
			Inset:  5,
		},
		Tick: TickConfig{
			TimeoutMS: 50,
		},
		Controls: ControlsConfig{
			LeftUp:    []string{"w"},
			LeftDown:  []string{"s"},
			RightUp:   []string{"up"},
			RightDown: []string{"down"},
			Quit:      []string{"esc", "q", "ctrl+c"},
		},
	}
}
