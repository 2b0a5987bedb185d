// Package mainview provides the main content area component.
package mainview

import (
	"github.com/charmbracelet/lipgloss"
)

// Props defines the properties for the main view component.
type Props struct {
	Width  int
	Height int
	Header string
	Body   string
	// Center places the body in the middle of the available width.
	Center bool
}

// Render renders the main view component.
func Render(p Props) string {
	body := p.Body
	if p.Center && p.Width > 0 {
		body = lipgloss.PlaceHorizontal(p.Width, lipgloss.Center, body)
	}

	content := body
	if p.Header != "" {
		if body != "" {
			content = p.Header + "\n" + body
		} else {
			content = p.Header
		}
	}

	style := lipgloss.NewStyle().PaddingLeft(1).PaddingRight(1)
	if p.Width > 0 {
		style = style.Width(p.Width)
	}
	if p.Height > 0 {
		style = style.Height(p.Height)
	}
	return style.Render(content)
}
