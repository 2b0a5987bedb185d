// Package deck defines the slide deck generation domain.
package deck

import (
	"fmt"
	"time"
)

// SuccessMessage is the only service message that confirms a deck was created.
const SuccessMessage = "Presentation created successfully!"

// ResultsRoute identifies the results view shown after a confirmed generation.
const ResultsRoute = "/result"

// Template identifies one of the fixed visual styles of a generated deck.
type Template int

const (
	Minimalistic Template = iota + 1
	Colourful
	Professional
	Dark
)

// DefaultTemplate is selected when the form is created.
const DefaultTemplate = Minimalistic

var templates = []Template{Minimalistic, Colourful, Professional, Dark}

// Templates returns every template in display order.
func Templates() []Template {
	return append([]Template(nil), templates...)
}

// ParseTemplate converts a numeric identifier into a Template.
func ParseTemplate(n int) (Template, error) {
	t := Template(n)
	if !t.Valid() {
		return 0, fmt.Errorf("unknown template: %d", n)
	}
	return t, nil
}

// Valid reports whether t is one of the enumerated templates.
func (t Template) Valid() bool {
	return t >= Minimalistic && t <= Dark
}

// Label returns the human readable template name.
func (t Template) Label() string {
	switch t {
	case Minimalistic:
		return "Minimalistic"
	case Colourful:
		return "Colourful"
	case Professional:
		return "Professional"
	case Dark:
		return "Dark"
	default:
		return ""
	}
}

// Glyph returns the emoji shown next to the label.
func (t Template) Glyph() string {
	switch t {
	case Minimalistic:
		return "📚"
	case Colourful:
		return "🎨"
	case Professional:
		return "🏢"
	case Dark:
		return "🌑"
	default:
		return ""
	}
}

func (t Template) String() string {
	if !t.Valid() {
		return fmt.Sprintf("Template(%d)", int(t))
	}
	return t.Glyph() + " " + t.Label()
}

// Next returns the following template, wrapping around after Dark.
func (t Template) Next() Template {
	if !t.Valid() {
		return DefaultTemplate
	}
	return templates[int(t)%len(templates)]
}

// Prev returns the preceding template, wrapping around before Minimalistic.
func (t Template) Prev() Template {
	if !t.Valid() {
		return DefaultTemplate
	}
	return templates[(int(t)-2+len(templates))%len(templates)]
}

// Provider is an AI backend the user can pick in the form.
// It is a UI preference only and is never sent to the generation service.
type Provider struct {
	id    int
	name  string
	icon  string
	glyph string
}

var providers = []Provider{
	{id: 1, name: "ChatGPT", icon: "chatgpt.png", glyph: "◎"},
	{id: 2, name: "Grok", icon: "grok.png", glyph: "✕"},
	{id: 3, name: "Gemini", icon: "gemini.png", glyph: "✦"},
}

// Providers returns every provider in display order.
func Providers() []Provider {
	return append([]Provider(nil), providers...)
}

// DefaultProvider returns the first enumerated provider.
func DefaultProvider() Provider {
	return providers[0]
}

// ID returns the provider's stable identifier.
func (p Provider) ID() int { return p.id }

// Name returns the display name.
func (p Provider) Name() string { return p.name }

// Icon returns the icon asset reference.
func (p Provider) Icon() string { return p.icon }

// Glyph returns the terminal stand-in for the icon.
func (p Provider) Glyph() string { return p.glyph }

// Request is the payload sent to the generation service.
type Request struct {
	Topic       string   `json:"topic"`
	Template    Template `json:"template"`
	IncludeCode bool     `json:"includeCode"`
}

// Result is the generation service response.
type Result struct {
	Message string `json:"message"`
}

// Succeeded reports whether the service confirmed the deck was created.
func (r Result) Succeeded() bool {
	return r.Message == SuccessMessage
}

// Outcome classifies a finished submission attempt.
type Outcome string

const (
	Succeeded   Outcome = "succeeded"
	Unconfirmed Outcome = "unconfirmed"
	Failed      Outcome = "failed"
)

// ClassifyOutcome maps a service response to an Outcome.
func ClassifyOutcome(result Result, err error) Outcome {
	switch {
	case err != nil:
		return Failed
	case result.Succeeded():
		return Succeeded
	default:
		return Unconfirmed
	}
}

// Attempt records one submission for diagnostics.
type Attempt struct {
	ID         string
	Request    Request
	Outcome    Outcome
	Message    string
	Error      string
	StartedAt  time.Time
	FinishedAt time.Time
}

// Duration returns how long the service call took.
func (a Attempt) Duration() time.Duration {
	if a.FinishedAt.Before(a.StartedAt) {
		return 0
	}
	return a.FinishedAt.Sub(a.StartedAt)
}
