package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tesso57/slidegen/internal/application/settings"
	"github.com/tesso57/slidegen/internal/application/usecase"
	"github.com/tesso57/slidegen/internal/domain/deck"
	"github.com/tesso57/slidegen/internal/presentation/tui/form"
	"github.com/tesso57/slidegen/internal/presentation/tui/state"
	"github.com/tesso57/slidegen/internal/presentation/tui/update"
	"github.com/tesso57/slidegen/internal/presentation/tui/view"
	"go.uber.org/zap"
)

// Model represents the main application state.
type Model struct {
	settings   settings.Settings
	generation usecase.Generator
	attempts   usecase.AttemptLister
	logger     *zap.Logger
	state      *state.ModelState
}

// NewModel creates a new application model with a freshly mounted form.
// attempts may be nil when the journal is disabled.
func NewModel(cfg settings.Settings, generation usecase.Generator, attempts usecase.AttemptLister, logger *zap.Logger) *Model {
	if logger == nil {
		logger = zap.NewNop()
	}
	return new(Model{
		settings:   cfg,
		generation: generation,
		attempts:   attempts,
		logger:     logger,
		state:      newModelState(cfg),
	})
}

// PrefillTopic sets the topic of the mounted form.
func (m *Model) PrefillTopic(topic string) {
	if m.state.Form != nil {
		m.state.Form.SetTopic(topic)
	}
}

// PrefillTemplate sets the template of the mounted form.
func (m *Model) PrefillTemplate(t deck.Template) bool {
	if m.state.Form == nil {
		return false
	}
	return m.state.Form.SetTemplate(t)
}

// Navigate switches to the view registered for route.
func (m *Model) Navigate(route string) tea.Cmd {
	m.logger.Debug("navigate", zap.String("route", route))
	return update.Navigate(m.state, route, m.deps())
}

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.state.Spinner.Tick, textinput.Blink)
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmd, handled := update.HandleKeyMsg(m.state, msg, m.deps())
		if handled {
			update.UpdateViewportSize(m.state)
			return m, cmd
		}
	case tea.WindowSizeMsg:
		update.HandleWindowSize(m.state, msg, m.deps())
	case update.GenerationFinishedMsg:
		cmds = append(cmds, update.HandleGenerationFinished(m.state, msg, m.deps()))
	case update.RecentAttemptsLoadedMsg:
		update.HandleRecentAttemptsLoaded(m.state, msg, m.deps())
	case spinner.TickMsg:
		if !m.state.Submitting() {
			return m, nil
		}
		m.state.Spinner, cmd = m.state.Spinner.Update(msg)
		return m, cmd
	}

	switch m.state.Session {
	case state.FormView:
		if m.state.Form != nil && m.state.Form.Focus() == form.TopicField {
			cmds = append(cmds, m.state.Form.UpdateTopic(msg))
		}
	case state.ResultView:
		m.state.Viewport, cmd = m.state.Viewport.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// View renders the application view.
func (m *Model) View() string {
	return view.Render(m.buildProps())
}

func (m *Model) deps() update.Deps {
	return update.Deps{
		Generation:  m.generation,
		Attempts:    m.attempts,
		Navigator:   m,
		OpenBrowser: openBrowser,
		ResultURL:   m.settings.API.ResultURL,
		RecentLimit: m.settings.RecentLimit,
		Markdown:    m.settings.Theme.Markdown,
		Logger:      m.logger,
	}
}

func newModelState(cfg settings.Settings) *state.ModelState {
	st := &state.ModelState{
		Viewport: newViewport(),
		Help:     help.New(),
		Spinner:  newSpinner(cfg.Theme.Accent),
		Keys:     state.NewKeyMap(cfg.KeyMap),
	}
	update.MountForm(st)
	return st
}

func newSpinner(color string) spinner.Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(color))
	return s
}

func newViewport() viewport.Model {
	vp := viewport.New(0, 0)
	vp.Style = lipgloss.NewStyle().
		PaddingLeft(1).
		PaddingRight(1)
	return vp
}
