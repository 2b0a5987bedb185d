// Package tui provides the main user interface model and view components.
package tui

import (
	"github.com/tesso57/slidegen/internal/domain/deck"
	"github.com/tesso57/slidegen/internal/presentation/tui/components/formview"
	"github.com/tesso57/slidegen/internal/presentation/tui/components/header"
	mainview "github.com/tesso57/slidegen/internal/presentation/tui/components/main"
	"github.com/tesso57/slidegen/internal/presentation/tui/components/modal"
	"github.com/tesso57/slidegen/internal/presentation/tui/form"
	"github.com/tesso57/slidegen/internal/presentation/tui/metrics"
	"github.com/tesso57/slidegen/internal/presentation/tui/state"
	"github.com/tesso57/slidegen/internal/presentation/tui/view"
)

func (m *Model) buildProps() view.Props {
	return view.Props{
		Header: m.buildHeaderProps(),
		Main:   m.buildMainProps(),
		Modal:  m.buildModalProps(),
		Footer: m.buildFooterProps(),
	}
}

func (m *Model) buildHeaderProps() header.Props {
	return header.Props{
		Visible: true,
		Width:   m.state.Width,
		Accent:  m.settings.Theme.Accent,
		Muted:   m.settings.Theme.Muted,
	}
}

func (m *Model) buildMainProps() mainview.Props {
	props := mainview.Props{Width: m.state.Width}
	switch m.state.Session {
	case state.ResultView:
		props.Body = m.state.Viewport.View()
	case state.FormView:
		if m.state.Form != nil {
			props.Body = formview.Render(m.buildFormProps(m.state.Form))
			props.Center = true
		}
	}
	return props
}

func (m *Model) buildFormProps(f *form.State) formview.Props {
	templates := make([]formview.Option, 0, len(deck.Templates()))
	for _, t := range deck.Templates() {
		templates = append(templates, formview.Option{Label: t.String(), Selected: t == f.Template()})
	}

	menu := f.Providers()
	providers := make([]formview.Option, 0, len(menu.Options()))
	for i, p := range menu.Options() {
		providers = append(providers, formview.Option{
			Label:       providerLabel(p),
			Selected:    i == menu.SelectedIndex(),
			Highlighted: i == menu.Cursor(),
		})
	}

	props := formview.Props{
		Width:          formWidth(m.state.Width),
		Accent:         m.settings.Theme.Accent,
		Muted:          m.settings.Theme.Muted,
		Focus:          formField(f.Focus()),
		TopicInput:     f.TopicView(),
		Hint:           f.Hint(),
		Templates:      templates,
		ProviderLabel:  providerLabel(f.Provider()),
		ProviderOpen:   f.MenuOpen(),
		Providers:      providers,
		IncludeCode:    f.IncludeCode(),
		SubmitCaption:  f.SubmitCaption(),
		SubmitDisabled: f.SubmitDisabled(),
	}
	if f.Submitting() {
		props.Spinner = m.state.Spinner.View()
	}
	return props
}

func (m *Model) buildModalProps() modal.Props {
	if m.state.Session == state.QuitView {
		return modal.Props{
			Visible: true,
			Kind:    modal.Quit,
			Title:   "Are you sure you want to quit?",
			Body:    "(y/n)",
			Accent:  m.settings.Theme.Accent,
			Width:   m.state.Width,
			Height:  m.state.Height,
		}
	}
	if m.state.Help.ShowAll {
		return modal.Props{
			Visible: true,
			Kind:    modal.Help,
			Body:    m.state.Help.View(&m.state.Keys),
			Width:   m.state.Width,
			Height:  m.state.Height,
		}
	}
	return modal.Props{Visible: false}
}

func (m *Model) buildFooterProps() string {
	helpText := state.FooterHelpText(m.state.Help, m.state.Keys)
	return state.FooterText(m.state.Session, m.state.Submitting(), m.state.StatusMessage, helpText)
}

func formField(f form.Field) formview.Field {
	switch f {
	case form.TemplateField:
		return formview.Template
	case form.ProviderField:
		return formview.Provider
	case form.IncludeCodeField:
		return formview.IncludeCode
	case form.SubmitField:
		return formview.Submit
	default:
		return formview.Topic
	}
}

func providerLabel(p deck.Provider) string {
	return p.Glyph() + " " + p.Name()
}

func formWidth(window int) int {
	switch {
	case window <= 0:
		return metrics.FormWidth
	case window-4 < metrics.FormMinWidth:
		return metrics.FormMinWidth
	case window-4 < metrics.FormWidth:
		return window - 4
	default:
		return metrics.FormWidth
	}
}
