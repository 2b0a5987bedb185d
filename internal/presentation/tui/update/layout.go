package update

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/tesso57/slidegen/internal/presentation/tui/metrics"
	"github.com/tesso57/slidegen/internal/presentation/tui/state"
)

type layoutMetrics struct {
	mainWidth  int
	mainHeight int
}

// UpdateViewportSize fits the results viewport to the window.
func UpdateViewportSize(s *state.ModelState) {
	if s.Width <= 0 || s.Height <= 0 {
		return
	}

	layout := buildLayoutMetrics(s)
	s.Viewport.Width = layout.mainWidth
	s.Viewport.Height = layout.mainHeight
}

func buildLayoutMetrics(s *state.ModelState) layoutMetrics {
	availableHeight := clampMin(s.Height-footerHeight(s), 1)
	return layoutMetrics{
		mainWidth:  clampMin(s.Width-2*metrics.MainPaddingX, 1),
		mainHeight: clampMin(availableHeight-metrics.HeaderLines, 1),
	}
}

func footerHeight(s *state.ModelState) int {
	s.Help.Width = s.Width
	footer := state.FooterText(s.Session, s.Submitting(), s.StatusMessage, state.FooterHelpText(s.Help, s.Keys))
	return lipgloss.Height(footer)
}

func wrapWidth(s *state.ModelState) int {
	width := s.Viewport.Width
	if width <= 0 {
		width = s.Width
	}
	return clampMin(width-metrics.ResultWrapSlop, 1)
}

func clampMin(value, min int) int {
	if value < min {
		return min
	}
	return value
}
