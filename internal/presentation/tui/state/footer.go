package state

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
)

// FooterText returns the footer content for the current session.
func FooterText(session Session, submitting bool, statusMessage, helpText string) string {
	status := strings.TrimSpace(statusMessage)
	if session == FormView && submitting {
		status = "Waiting for the generation service..."
	}
	if status == "" || session == QuitView {
		return helpText
	}
	if helpText == "" {
		return status
	}
	return status + "\n" + helpText
}

// FooterHelpText renders the compact help as two lines: field navigation and actions.
func FooterHelpText(h help.Model, keys KeyMap) string {
	nav := h.ShortHelpView([]key.Binding{keys.NextField, keys.PrevField, keys.Left, keys.Right, keys.Toggle})
	actions := h.ShortHelpView([]key.Binding{keys.Submit, keys.Browse, keys.Back, keys.Help, keys.Quit})
	return nav + "\n" + actions
}
