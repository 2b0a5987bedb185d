// Package intent parses user input into UI intents.
package intent

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/tesso57/slidegen/internal/presentation/tui/state"
)

// Type represents a user intent.
type Type int

const (
	None Type = iota
	Quit
	ToggleHelp
	NextField
	PrevField
	Up
	Down
	Left
	Right
	Toggle
	Open
	Submit
	Back
	Browse
)

// Intent represents a parsed user intent.
type Intent struct {
	Type Type
}

// FromKeyMsg maps a key message to an intent.
func FromKeyMsg(msg tea.KeyMsg, keys state.KeyMap) Intent {
	switch {
	case key.Matches(msg, keys.Submit):
		return Intent{Type: Submit}
	case key.Matches(msg, keys.NextField):
		return Intent{Type: NextField}
	case key.Matches(msg, keys.PrevField):
		return Intent{Type: PrevField}
	case key.Matches(msg, keys.Quit):
		return Intent{Type: Quit}
	case key.Matches(msg, keys.Help):
		return Intent{Type: ToggleHelp}
	case key.Matches(msg, keys.Up):
		return Intent{Type: Up}
	case key.Matches(msg, keys.Down):
		return Intent{Type: Down}
	case key.Matches(msg, keys.Left):
		return Intent{Type: Left}
	case key.Matches(msg, keys.Right):
		return Intent{Type: Right}
	case key.Matches(msg, keys.Toggle):
		return Intent{Type: Toggle}
	case key.Matches(msg, keys.Open):
		return Intent{Type: Open}
	case key.Matches(msg, keys.Back):
		return Intent{Type: Back}
	case key.Matches(msg, keys.Browse):
		return Intent{Type: Browse}
	default:
		return Intent{Type: None}
	}
}

// FromTextKeyMsg maps a key message received while a text field has focus.
// Printable keys are left for the field, so only non-rune bindings are recognized.
func FromTextKeyMsg(msg tea.KeyMsg, keys state.KeyMap) Intent {
	if msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace {
		return Intent{Type: None}
	}
	switch parsed := FromKeyMsg(msg, keys); parsed.Type {
	case Up, Down, Left, Right, Toggle:
		return Intent{Type: None}
	default:
		return parsed
	}
}
