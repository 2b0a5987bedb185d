// Package state holds UI state types for the TUI.
package state

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/tesso57/slidegen/internal/application/settings"
)

// Session represents the current view state.
type Session int

const (
	FormView Session = iota
	ResultView
	QuitView
)

// KeyMap defines the keybindings for the application.
type KeyMap struct {
	NextField key.Binding
	PrevField key.Binding
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Toggle    key.Binding
	Open      key.Binding
	Submit    key.Binding
	Back      key.Binding
	Browse    key.Binding
	Quit      key.Binding
	Help      key.Binding
}

// ShortHelp returns a subset of keybindings for the help view.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.NextField, k.Submit, k.Quit}
}

// FullHelp returns all keybindings for the help view.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextField, k.PrevField, k.Up, k.Down},
		{k.Left, k.Right, k.Toggle, k.Open},
		{k.Submit, k.Browse, k.Back},
		{k.Quit, k.Help},
	}
}

// NewKeyMap creates a new KeyMap from the configuration.
func NewKeyMap(cfg settings.KeyMapConfig) KeyMap {
	return KeyMap{
		NextField: key.NewBinding(
			key.WithKeys(splitKeys(cfg.NextField)...),
			key.WithHelp(cfg.NextField, "next field"),
		),
		PrevField: key.NewBinding(
			key.WithKeys(splitKeys(cfg.PrevField)...),
			key.WithHelp(cfg.PrevField, "prev field"),
		),
		Up: key.NewBinding(
			key.WithKeys(splitKeys(cfg.Up)...),
			key.WithHelp(cfg.Up, "up"),
		),
		Down: key.NewBinding(
			key.WithKeys(splitKeys(cfg.Down)...),
			key.WithHelp(cfg.Down, "down"),
		),
		Left: key.NewBinding(
			key.WithKeys(splitKeys(cfg.Left)...),
			key.WithHelp(cfg.Left, "prev template"),
		),
		Right: key.NewBinding(
			key.WithKeys(splitKeys(cfg.Right)...),
			key.WithHelp(cfg.Right, "next template"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(splitKeys(cfg.Toggle)...),
			key.WithHelp(cfg.Toggle, "toggle"),
		),
		Open: key.NewBinding(
			key.WithKeys(splitKeys(cfg.Open)...),
			key.WithHelp(cfg.Open, "select"),
		),
		Submit: key.NewBinding(
			key.WithKeys(splitKeys(cfg.Submit)...),
			key.WithHelp(cfg.Submit, "generate"),
		),
		Back: key.NewBinding(
			key.WithKeys(splitKeys(cfg.Back)...),
			key.WithHelp(cfg.Back, "back"),
		),
		Browse: key.NewBinding(
			key.WithKeys(splitKeys(cfg.Browse)...),
			key.WithHelp(cfg.Browse, "open download page"),
		),
		Quit: key.NewBinding(
			key.WithKeys(splitKeys(cfg.Quit)...),
			key.WithHelp(cfg.Quit, "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
	}
}

func splitKeys(keys string) []string {
	parts := strings.Split(keys, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		keyName := strings.TrimSpace(part)
		if keyName == "" {
			continue
		}
		out = append(out, keyName)
		switch keyName {
		case "space":
			out = append(out, " ")
		case "pgdn":
			out = append(out, "pgdown")
		case "pgdown":
			out = append(out, "pgdn")
		}
	}
	return out
}
