package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

// KeyMap defines the key bindings for the game.
type KeyMap struct {
	Flap       key.Binding
	Restart    key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Flap, k.Restart, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Flap, k.Restart},
		{k.Screenshot, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Flap: key.NewBinding(
			key.WithKeys(" ", "up"),
			key.WithHelp("space/↑", "flap"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "try again"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Event translates a key press into a game event. Keys the game does not
// know map to flappy.EventNone.
func (k KeyMap) Event(msg tea.KeyMsg) flappy.Event {
	switch {
	case key.Matches(msg, k.Flap):
		return flappy.EventPrimary
	case key.Matches(msg, k.Restart):
		return flappy.EventRestart
	}
	return flappy.EventNone
}

// isTouch reports whether a mouse message is a touch-start: a press of the
// left button (terminals report taps on touch screens this way).
func isTouch(msg tea.MouseMsg) bool {
	return msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft
}
