// Package formview renders the slide request form.
package formview

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Field identifies the focused row.
type Field int

const (
	Topic Field = iota
	Template
	Provider
	IncludeCode
	Submit
)

const (
	TopicLabel       = "Enter Topic:"
	TemplateLabel    = "Select Template:"
	ProviderLabel    = "Select Your Favourite AI:"
	IncludeCodeLabel = "Include Code"
)

// Option is one entry of a template or provider list.
type Option struct {
	Label       string
	Selected    bool
	Highlighted bool
}

// Props defines the properties for the form component.
type Props struct {
	Width  int
	Accent string
	Muted  string
	Focus  Field

	TopicInput string
	Hint       string

	Templates []Option

	ProviderLabel string
	ProviderOpen  bool
	Providers     []Option

	IncludeCode bool

	SubmitCaption  string
	SubmitDisabled bool
	Spinner        string
}

// Render renders the form as a bordered card.
func Render(p Props) string {
	accent := lipgloss.Color(p.Accent)
	muted := lipgloss.NewStyle().Foreground(lipgloss.Color(p.Muted))
	label := lipgloss.NewStyle().Bold(true)
	focused := lipgloss.NewStyle().Foreground(accent).Bold(true)

	marker := func(f Field) string {
		if p.Focus == f {
			return focused.Render("▌ ")
		}
		return "  "
	}

	var rows []string

	rows = append(rows, marker(Topic)+label.Render(TopicLabel)+" "+muted.Render("*"))
	rows = append(rows, "  "+p.TopicInput)
	if p.Hint != "" {
		rows = append(rows, "  "+lipgloss.NewStyle().Foreground(accent).Render("⚠ "+p.Hint))
	}
	rows = append(rows, "")

	rows = append(rows, marker(Template)+label.Render(TemplateLabel))
	for _, opt := range p.Templates {
		radio := "( )"
		style := muted
		if opt.Selected {
			radio = "(•)"
			style = lipgloss.NewStyle()
			if p.Focus == Template {
				style = focused
			}
		}
		rows = append(rows, "  "+style.Render(radio+" "+opt.Label))
	}
	rows = append(rows, "")

	rows = append(rows, marker(Provider)+label.Render(ProviderLabel))
	caret := "▾"
	if p.ProviderOpen {
		caret = "▴"
	}
	current := p.ProviderLabel + " " + caret
	if p.Focus == Provider {
		current = focused.Render(current)
	}
	rows = append(rows, "  "+current)
	if p.ProviderOpen {
		for _, opt := range p.Providers {
			prefix := "   "
			style := muted
			if opt.Highlighted {
				prefix = " ▸ "
				style = focused
			}
			text := opt.Label
			if opt.Selected {
				text += " ✓"
			}
			rows = append(rows, "  "+prefix+style.Render(text))
		}
	}
	rows = append(rows, "")

	check := "[ ]"
	if p.IncludeCode {
		check = "[x]"
	}
	checkRow := check + " " + IncludeCodeLabel
	if p.Focus == IncludeCode {
		checkRow = focused.Render(checkRow)
	}
	rows = append(rows, marker(IncludeCode)+checkRow)
	rows = append(rows, "")

	rows = append(rows, marker(Submit)+renderButton(p, accent))

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(p.Muted)).
		Padding(1, 2)
	if p.Width > 0 {
		card = card.Width(p.Width)
	}
	return card.Render(strings.Join(rows, "\n"))
}

func renderButton(p Props, accent lipgloss.Color) string {
	caption := p.SubmitCaption
	if p.SubmitDisabled && p.Spinner != "" {
		caption = p.Spinner + " " + caption
	}

	button := lipgloss.NewStyle().
		Padding(0, 2).
		Bold(true).
		Foreground(lipgloss.Color("255")).
		Background(accent)
	if p.SubmitDisabled {
		button = button.Faint(true).Background(lipgloss.Color(p.Muted))
	} else if p.Focus == Submit {
		button = button.Underline(true)
	}
	return button.Render(caption)
}
