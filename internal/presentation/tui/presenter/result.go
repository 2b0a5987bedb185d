// Package presenter formats domain data for display.
package presenter

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/tesso57/slidegen/internal/domain/deck"
	"github.com/tesso57/slidegen/internal/presentation/tui/textutil"
)

const (
	minWrapWidth  = 20
	topicMaxWidth = 40
)

// ResultMarkdown describes the generated deck and the recent submission attempts.
func ResultMarkdown(req deck.Request, recent []deck.Attempt) string {
	var b strings.Builder
	b.WriteString("# " + deck.SuccessMessage + "\n\n")
	fmt.Fprintf(&b, "- **Topic:** %s\n", escape(textutil.SingleLine(req.Topic)))
	fmt.Fprintf(&b, "- **Template:** %s\n", req.Template)
	fmt.Fprintf(&b, "- **Code samples:** %s\n", yesNo(req.IncludeCode))

	if len(recent) == 0 {
		return b.String()
	}

	b.WriteString("\n## Recent attempts\n\n")
	b.WriteString("| When | Topic | Template | Outcome | Took |\n")
	b.WriteString("|---|---|---|---|---|\n")
	for _, a := range recent {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n",
			a.StartedAt.Local().Format("01-02 15:04"),
			escape(textutil.Truncate(textutil.SingleLine(a.Request.Topic), topicMaxWidth)),
			a.Request.Template.Label(),
			outcomeLabel(a),
			a.Duration().Round(100*time.Millisecond),
		)
	}
	return b.String()
}

// RenderMarkdown renders markdown for the terminal with the given glamour style.
// "auto" picks a style from the terminal background.
func RenderMarkdown(markdown, style string, width int) (string, error) {
	if width < minWrapWidth {
		width = minWrapWidth
	}
	styleOpt := glamour.WithStylePath(style)
	switch strings.TrimSpace(style) {
	case "", "auto":
		styleOpt = glamour.WithAutoStyle()
	}

	renderer, err := glamour.NewTermRenderer(styleOpt, glamour.WithWordWrap(width))
	if err != nil {
		return "", fmt.Errorf("create markdown renderer: %w", err)
	}
	out, err := renderer.Render(markdown)
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return out, nil
}

func outcomeLabel(a deck.Attempt) string {
	switch a.Outcome {
	case deck.Succeeded:
		return "✅ created"
	case deck.Unconfirmed:
		msg := textutil.Truncate(textutil.SingleLine(a.Message), 24)
		if msg == "" {
			return "❔ unconfirmed"
		}
		return "❔ " + escape(msg)
	case deck.Failed:
		return "❌ failed"
	default:
		return string(a.Outcome)
	}
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

var markdownEscaper = strings.NewReplacer("|", "\\|", "*", "\\*", "_", "\\_", "`", "\\`")

func escape(s string) string {
	return markdownEscaper.Replace(s)
}
