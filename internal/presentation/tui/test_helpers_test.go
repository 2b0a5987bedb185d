package tui

import (
	"context"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/mock"
	"github.com/tesso57/slidegen/internal/application/settings"
	"github.com/tesso57/slidegen/internal/application/usecase"
	"github.com/tesso57/slidegen/internal/domain/deck"
	"github.com/tesso57/slidegen/internal/presentation/tui/update"
)

type stubGenerator struct {
	mock.Mock
	mu       sync.Mutex
	requests []deck.Request
	result   deck.Result
	err      error
}

func (s *stubGenerator) Generate(ctx context.Context, req deck.Request) (deck.Result, error) {
	s.mu.Lock()
	s.requests = append(s.requests, req)
	s.mu.Unlock()
	if len(s.ExpectedCalls) > 0 {
		args := s.Called(ctx, req)
		result, _ := args.Get(0).(deck.Result)
		return result, args.Error(1)
	}
	return s.result, s.err
}

type stubAttempts struct {
	mock.Mock
	attempts []deck.Attempt
}

func (s *stubAttempts) Recent(ctx context.Context, limit int) ([]deck.Attempt, error) {
	if len(s.ExpectedCalls) > 0 {
		args := s.Called(ctx, limit)
		attempts, _ := args.Get(0).([]deck.Attempt)
		return attempts, args.Error(1)
	}
	if limit < len(s.attempts) {
		return s.attempts[:limit], nil
	}
	return s.attempts, nil
}

func testSettings() settings.Settings {
	return settings.Settings{
		API: settings.APIConfig{
			BaseURL:      "http://localhost:5000",
			GeneratePath: "/generate",
			ResultURL:    "http://localhost:5000/download",
		},
		KeyMap: settings.KeyMapConfig{
			NextField: "tab",
			PrevField: "shift+tab",
			Up:        "up,k",
			Down:      "down,j",
			Left:      "left,h",
			Right:     "right,l",
			Toggle:    "space",
			Open:      "enter",
			Submit:    "ctrl+s",
			Back:      "esc",
			Browse:    "o",
			Quit:      "q",
		},
		Theme:       settings.ThemeConfig{Accent: "208", Muted: "244", Markdown: "notty"},
		RecentLimit: 5,
	}
}

func newTestModel(gen *stubGenerator, attempts *stubAttempts) *Model {
	var lister usecase.AttemptLister
	if attempts != nil {
		lister = attempts
	}
	if gen == nil {
		return NewModel(testSettings(), nil, lister, nil)
	}
	return NewModel(testSettings(), gen, lister, nil)
}

func key(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// drain runs cmd and feeds every message it yields back into the model,
// following batches, until nothing is left. Timer driven messages are skipped.
func drain(m *Model, cmd tea.Cmd) {
	queue := []tea.Cmd{cmd}
	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]
		if next == nil {
			continue
		}
		switch msg := next().(type) {
		case tea.BatchMsg:
			queue = append(queue, msg...)
		case update.GenerationFinishedMsg, update.RecentAttemptsLoadedMsg:
			_, follow := m.Update(msg)
			queue = append(queue, follow)
		}
	}
}
