// Package modal provides modal dialog components.
package modal

import (
	"github.com/charmbracelet/lipgloss"
)

// Kind represents the type of modal.
type Kind int

const (
	// None indicates no modal.
	None Kind = iota
	// Quit asks for exit confirmation.
	Quit
	// Help shows the full key reference.
	Help
)

// Props defines the properties for the modal component.
type Props struct {
	Visible bool
	Kind    Kind
	Title   string
	Body    string
	Accent  string
	Width   int
	Height  int
}

// Render renders the modal component.
func Render(p Props) string {
	if !p.Visible {
		return ""
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(1, 2)

	switch p.Kind {
	case Quit:
		box = box.Width(40).Align(lipgloss.Center).BorderForeground(lipgloss.Color(p.Accent))
	default:
		box = box.BorderForeground(lipgloss.Color("63"))
	}

	body := p.Body
	if p.Title != "" {
		body = lipgloss.NewStyle().Bold(true).Render(p.Title) + "\n\n" + body
	}
	return lipgloss.Place(p.Width, p.Height, lipgloss.Center, lipgloss.Center, box.Render(body))
}
