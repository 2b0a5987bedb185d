// Package form holds the state of the slide request form.
package form

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/tesso57/slidegen/internal/domain/deck"
)

// Field identifies a focusable control.
type Field int

const (
	TopicField Field = iota
	TemplateField
	ProviderField
	IncludeCodeField
	SubmitField
)

const fieldCount = int(SubmitField) + 1

const (
	// IdleCaption is shown on the submit button when no request is pending.
	IdleCaption = "🚀 Generate Presentation"
	// PendingCaption is shown while a request is pending.
	PendingCaption = "⏳ Generating..."
	// RequiredHint is shown when submitting without a topic.
	RequiredHint = "Please fill out this field."
	// TopicPlaceholder is the topic input placeholder.
	TopicPlaceholder = "e.g., Artificial Intelligence"
)

// State is the form view-model. A fresh State is created each time the form is shown.
type State struct {
	topic       textinput.Model
	template    deck.Template
	providers   Dropdown[deck.Provider]
	includeCode bool
	submitting  bool
	focus       Field
	hint        string
}

// New creates a form with default values and the topic field focused.
func New() *State {
	ti := textinput.New()
	ti.Placeholder = TopicPlaceholder
	ti.CharLimit = 0
	ti.Width = 40
	ti.Prompt = ""
	ti.Focus()

	return new(State{
		topic:     ti,
		template:  deck.DefaultTemplate,
		providers: NewDropdown(deck.Providers()),
		focus:     TopicField,
	})
}

// Topic returns the entered topic.
func (s *State) Topic() string {
	return s.topic.Value()
}

// SetTopic replaces the topic.
func (s *State) SetTopic(topic string) {
	s.topic.SetValue(topic)
	s.hint = ""
}

// TopicView renders the topic input.
func (s *State) TopicView() string {
	return s.topic.View()
}

// UpdateTopic forwards a message to the topic input.
func (s *State) UpdateTopic(msg tea.Msg) tea.Cmd {
	before := s.topic.Value()
	var cmd tea.Cmd
	s.topic, cmd = s.topic.Update(msg)
	if s.topic.Value() != before {
		s.hint = ""
	}
	return cmd
}

// Template returns the chosen template.
func (s *State) Template() deck.Template {
	return s.template
}

// SetTemplate chooses a template. Values outside the enumeration are ignored.
func (s *State) SetTemplate(t deck.Template) bool {
	if !t.Valid() {
		return false
	}
	s.template = t
	return true
}

// Provider returns the chosen AI provider.
func (s *State) Provider() deck.Provider {
	return s.providers.Selected()
}

// Providers exposes the provider dropdown.
func (s *State) Providers() *Dropdown[deck.Provider] {
	return &s.providers
}

// SelectProvider chooses p and closes the provider menu.
func (s *State) SelectProvider(p deck.Provider) bool {
	for i, option := range s.providers.Options() {
		if option == p {
			return s.providers.Select(i)
		}
	}
	s.providers.Close()
	return false
}

// MenuOpen reports whether the provider menu is open.
func (s *State) MenuOpen() bool {
	return s.providers.IsOpen()
}

// ToggleMenu opens or closes the provider menu.
func (s *State) ToggleMenu() {
	s.providers.Toggle()
}

// IncludeCode returns the include-code flag.
func (s *State) IncludeCode() bool {
	return s.includeCode
}

// SetIncludeCode sets the include-code flag.
func (s *State) SetIncludeCode(v bool) {
	s.includeCode = v
}

// Submitting reports whether a request is pending.
func (s *State) Submitting() bool {
	return s.submitting
}

// SetSubmitting sets the pending flag.
func (s *State) SetSubmitting(v bool) {
	s.submitting = v
}

// SubmitDisabled reports whether the submit control is disabled.
func (s *State) SubmitDisabled() bool {
	return s.submitting
}

// SubmitCaption returns the submit button label.
func (s *State) SubmitCaption() string {
	if s.submitting {
		return PendingCaption
	}
	return IdleCaption
}

// MissingRequired reports whether the required topic is blank.
func (s *State) MissingRequired() bool {
	return strings.TrimSpace(s.Topic()) == ""
}

// Hint returns the transient validation hint.
func (s *State) Hint() string {
	return s.hint
}

// SetHint sets the transient validation hint.
func (s *State) SetHint(h string) {
	s.hint = h
}

// Request builds the payload from topic, template and include-code.
// The provider is not part of it.
func (s *State) Request() deck.Request {
	return deck.Request{
		Topic:       s.Topic(),
		Template:    s.template,
		IncludeCode: s.includeCode,
	}
}

// Focus returns the focused field.
func (s *State) Focus() Field {
	return s.focus
}

// SetFocus moves focus to f.
func (s *State) SetFocus(f Field) {
	if int(f) < 0 || int(f) >= fieldCount {
		return
	}
	s.focus = f
	if f == TopicField {
		s.topic.Focus()
	} else {
		s.topic.Blur()
	}
}

// FocusNext moves focus forward, wrapping around.
func (s *State) FocusNext() {
	s.SetFocus(Field((int(s.focus) + 1) % fieldCount))
}

// FocusPrev moves focus backward, wrapping around.
func (s *State) FocusPrev() {
	s.SetFocus(Field((int(s.focus) - 1 + fieldCount) % fieldCount))
}
