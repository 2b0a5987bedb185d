// Package header provides the module header component.
package header

import (
	"github.com/charmbracelet/lipgloss"
)

const (
	Title    = "🎯 AI Slide Generator"
	Subtitle = "Create slides effortlessly with AI."
)

// Props defines the properties for the header component.
type Props struct {
	Visible bool
	Width   int
	Accent  string
	Muted   string
}

// Render renders the header component.
func Render(p Props) string {
	if !p.Visible {
		return ""
	}
	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(p.Accent)).
		Render(Title)
	subtitle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(p.Muted)).
		Render(Subtitle)

	block := lipgloss.JoinVertical(lipgloss.Center, title, subtitle)
	if p.Width > 0 {
		block = lipgloss.PlaceHorizontal(p.Width, lipgloss.Center, block)
	}
	return block + "\n"
}
