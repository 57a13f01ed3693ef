package core

import "github.com/charmbracelet/bubbles/key"

// Key is a host-neutral key name as produced by a frontend, using the same
// spelling as Bubble Tea's KeyMsg.String(): "w", "up", "down", "esc", "ctrl+c".
// KeyNone means no key arrived during the tick.
type Key string

// KeyNone is returned by a poll that timed out.
const KeyNone Key = ""

// String implements fmt.Stringer so keys can be matched with key.Matches.
func (k Key) String() string {
	return string(k)
}

// Action represents a semantic paddle intent, abstracted from physical key presses.
type Action int

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	default:
		return "Unknown"
	}
}

// InputFrame is the intent resolved from one tick's key.
// At most one of its fields is set, since a tick carries a single key.
type InputFrame struct {
	Left  Action
	Right Action
	Quit  bool
}

// KeyMap resolves raw keys into InputFrames.
type KeyMap struct {
	LeftUp    key.Binding
	LeftDown  key.Binding
	RightUp   key.Binding
	RightDown key.Binding
	Quit      key.Binding
}

// Resolve translates a key into an InputFrame. Unbound keys and KeyNone
// resolve to the zero frame.
func (km KeyMap) Resolve(k Key) InputFrame {
	var in InputFrame
	if k == KeyNone {
		return in
	}

	switch {
	case key.Matches(k, km.Quit):
		in.Quit = true
	case key.Matches(k, km.LeftUp):
		in.Left = ActionUp
	case key.Matches(k, km.LeftDown):
		in.Left = ActionDown
	case key.Matches(k, km.RightUp):
		in.Right = ActionUp
	case key.Matches(k, km.RightDown):
		in.Right = ActionDown
	}
	return in
}

// Bindings returns all bindings in display order.
func (km KeyMap) Bindings() []key.Binding {
	return []key.Binding{km.LeftUp, km.LeftDown, km.RightUp, km.RightDown, km.Quit}
}
