// Package state holds UI state types for the TUI.
package state

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/tesso57/slidegen/internal/domain/deck"
	"github.com/tesso57/slidegen/internal/presentation/tui/form"
)

// ModelState holds the presentation state for the TUI.
type ModelState struct {
	Session  Session
	Previous Session
	// Form is nil while the form is not mounted.
	Form          *form.State
	Viewport      viewport.Model
	Help          help.Model
	Spinner       spinner.Model
	Keys          KeyMap
	Width         int
	Height        int
	LastRequest   deck.Request
	Recent        []deck.Attempt
	StatusMessage string
}

// Submitting reports whether the mounted form has a pending request.
func (s *ModelState) Submitting() bool {
	return s != nil && s.Form != nil && s.Form.Submitting()
}
