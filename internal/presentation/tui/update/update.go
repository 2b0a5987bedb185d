// Package update holds UI update logic for the TUI.
package update

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/tesso57/slidegen/internal/application/usecase"
	"github.com/tesso57/slidegen/internal/domain/deck"
	"github.com/tesso57/slidegen/internal/presentation/tui/form"
	"github.com/tesso57/slidegen/internal/presentation/tui/intent"
	"github.com/tesso57/slidegen/internal/presentation/tui/metrics"
	"github.com/tesso57/slidegen/internal/presentation/tui/presenter"
	"github.com/tesso57/slidegen/internal/presentation/tui/state"
	"go.uber.org/zap"
)

// FormRoute mounts a fresh form.
const FormRoute = "/"

// Navigator switches the visible view.
type Navigator interface {
	Navigate(route string) tea.Cmd
}

// Deps groups external dependencies for updates.
type Deps struct {
	Generation  usecase.Generator
	Attempts    usecase.AttemptLister
	Navigator   Navigator
	OpenBrowser func(string) error
	ResultURL   string
	RecentLimit int
	Markdown    string
	Logger      *zap.Logger
}

func (d Deps) logger() *zap.Logger {
	if d.Logger != nil {
		return d.Logger
	}
	return zap.NewNop()
}

// GenerationFinishedMsg is emitted when a generation call settles.
type GenerationFinishedMsg struct {
	Request deck.Request
	Result  deck.Result
	Err     error
}

// RecentAttemptsLoadedMsg is emitted after reading the submission journal.
type RecentAttemptsLoadedMsg struct {
	Attempts []deck.Attempt
	Err      error
}

// GenerateCmd creates a command that calls the generation service once.
func GenerateCmd(generator usecase.Generator, req deck.Request) tea.Cmd {
	return func() tea.Msg {
		if generator == nil {
			return GenerationFinishedMsg{Request: req, Err: usecase.ErrGenerationDisabled}
		}
		result, err := generator.Generate(context.Background(), req)
		return GenerationFinishedMsg{Request: req, Result: result, Err: err}
	}
}

// LoadRecentCmd creates a command that lists the latest attempts.
func LoadRecentCmd(attempts usecase.AttemptLister, limit int) tea.Cmd {
	if attempts == nil || limit <= 0 {
		return nil
	}
	if limit > metrics.RecentMaxLimit {
		limit = metrics.RecentMaxLimit
	}
	return func() tea.Msg {
		list, err := attempts.Recent(context.Background(), limit)
		return RecentAttemptsLoadedMsg{Attempts: list, Err: err}
	}
}

// Submit marks the form pending and starts the generation call.
// It does not check whether a request is already pending.
func Submit(s *state.ModelState, deps Deps) tea.Cmd {
	if s.Form == nil {
		return nil
	}
	s.Form.SetSubmitting(true)
	s.Form.SetHint("")
	req := s.Form.Request()
	return tea.Batch(s.Spinner.Tick, GenerateCmd(deps.Generation, req))
}

// HandleGenerationFinished settles a pending submission.
// Only the confirmation message navigates to the results view.
func HandleGenerationFinished(s *state.ModelState, msg GenerationFinishedMsg, deps Deps) tea.Cmd {
	if s.Form != nil {
		s.Form.SetSubmitting(false)
	}
	if msg.Err != nil || !msg.Result.Succeeded() {
		return nil
	}
	s.LastRequest = msg.Request
	if deps.Navigator == nil {
		return nil
	}
	return deps.Navigator.Navigate(deck.ResultsRoute)
}

// Navigate switches to the view registered for route.
// An open quit dialog stays visible and returns to the new view when dismissed.
func Navigate(s *state.ModelState, route string, deps Deps) tea.Cmd {
	switch route {
	case deck.ResultsRoute:
		if s.Session == state.QuitView {
			s.Previous = state.ResultView
		} else {
			s.Session = state.ResultView
		}
		s.Form = nil
		s.StatusMessage = ""
		s.Help.ShowAll = false
		s.Viewport.GotoTop()
		UpdateViewportSize(s)
		RefreshResults(s, deps)
		return LoadRecentCmd(deps.Attempts, deps.RecentLimit)
	case FormRoute:
		return MountForm(s)
	default:
		deps.logger().Warn("unknown route", zap.String("route", route))
		return nil
	}
}

// MountForm replaces any form state with a fresh one and shows it.
func MountForm(s *state.ModelState) tea.Cmd {
	s.Form = form.New()
	s.Session = state.FormView
	s.StatusMessage = ""
	s.Help.ShowAll = false
	return textinput.Blink
}

// HandleRecentAttemptsLoaded refreshes the results view with journal entries.
func HandleRecentAttemptsLoaded(s *state.ModelState, msg RecentAttemptsLoadedMsg, deps Deps) {
	if msg.Err != nil {
		deps.logger().Warn("failed to load recent attempts", zap.Error(msg.Err))
		return
	}
	s.Recent = msg.Attempts
	if s.Session == state.ResultView {
		RefreshResults(s, deps)
	}
}

// RefreshResults re-renders the results markdown into the viewport.
func RefreshResults(s *state.ModelState, deps Deps) {
	markdown := presenter.ResultMarkdown(s.LastRequest, s.Recent)
	rendered, err := presenter.RenderMarkdown(markdown, deps.Markdown, wrapWidth(s))
	if err != nil {
		deps.logger().Warn("failed to render results", zap.Error(err))
		rendered = markdown
	}
	s.Viewport.SetContent(rendered)
}

// HandleKeyMsg handles a key press. The bool reports whether the key was consumed.
func HandleKeyMsg(s *state.ModelState, msg tea.KeyMsg, deps Deps) (tea.Cmd, bool) {
	if msg.Type == tea.KeyCtrlC {
		return tea.Quit, true
	}
	if s.Session == state.QuitView {
		return handleQuitView(s, msg)
	}

	switch s.Session {
	case state.FormView:
		return handleFormView(s, msg, deps)
	case state.ResultView:
		return handleResultView(s, msg, deps)
	default:
		return nil, false
	}
}

// HandleWindowSize records the terminal size.
func HandleWindowSize(s *state.ModelState, msg tea.WindowSizeMsg, deps Deps) {
	s.Width = msg.Width
	s.Height = msg.Height
	s.Help.Width = msg.Width

	UpdateViewportSize(s)
	if s.Session == state.ResultView {
		RefreshResults(s, deps)
	}
}

func handleQuitView(s *state.ModelState, msg tea.KeyMsg) (tea.Cmd, bool) {
	switch msg.String() {
	case "y", "Y":
		return tea.Quit, true
	case "n", "N", "esc", "q", "Q":
		s.Session = s.Previous
		return nil, true
	}
	return nil, true
}

func enterQuitView(s *state.ModelState) {
	s.Previous = s.Session
	s.Session = state.QuitView
	s.Help.ShowAll = false
}

func handleFormView(s *state.ModelState, msg tea.KeyMsg, deps Deps) (tea.Cmd, bool) {
	f := s.Form
	if f == nil {
		return MountForm(s), true
	}

	var parsed intent.Intent
	if f.Focus() == form.TopicField {
		parsed = intent.FromTextKeyMsg(msg, s.Keys)
	} else {
		parsed = intent.FromKeyMsg(msg, s.Keys)
	}

	switch parsed.Type {
	case intent.Quit:
		enterQuitView(s)
		return nil, true
	case intent.ToggleHelp:
		s.Help.ShowAll = !s.Help.ShowAll
		return nil, true
	case intent.Submit:
		return trySubmit(s, deps), true
	case intent.NextField:
		f.Providers().Close()
		f.FocusNext()
		return nil, true
	case intent.PrevField:
		f.Providers().Close()
		f.FocusPrev()
		return nil, true
	case intent.Back:
		switch {
		case s.Help.ShowAll:
			s.Help.ShowAll = false
		case f.MenuOpen():
			f.Providers().Close()
		}
		return nil, true
	case intent.None:
		if f.Focus() == form.TopicField {
			return f.UpdateTopic(msg), true
		}
		return nil, false
	}

	switch f.Focus() {
	case form.TopicField:
		if parsed.Type == intent.Open {
			return trySubmit(s, deps), true
		}
	case form.TemplateField:
		handleTemplateIntent(f, parsed)
	case form.ProviderField:
		handleProviderIntent(f, parsed)
	case form.IncludeCodeField:
		if parsed.Type == intent.Toggle || parsed.Type == intent.Open {
			f.SetIncludeCode(!f.IncludeCode())
		}
	case form.SubmitField:
		if parsed.Type == intent.Toggle || parsed.Type == intent.Open {
			return trySubmit(s, deps), true
		}
	}
	return nil, true
}

func handleTemplateIntent(f *form.State, in intent.Intent) {
	switch in.Type {
	case intent.Left, intent.Up:
		f.SetTemplate(f.Template().Prev())
	case intent.Right, intent.Down, intent.Toggle, intent.Open:
		f.SetTemplate(f.Template().Next())
	}
}

func handleProviderIntent(f *form.State, in intent.Intent) {
	menu := f.Providers()
	if menu.IsOpen() {
		switch in.Type {
		case intent.Up, intent.Left:
			menu.Prev()
		case intent.Down, intent.Right:
			menu.Next()
		case intent.Open, intent.Toggle:
			menu.Choose()
		}
		return
	}
	switch in.Type {
	case intent.Open, intent.Toggle, intent.Down:
		f.ToggleMenu()
	case intent.Left:
		f.SelectProvider(menu.Options()[(menu.SelectedIndex()+len(menu.Options())-1)%len(menu.Options())])
	case intent.Right:
		f.SelectProvider(menu.Options()[(menu.SelectedIndex()+1)%len(menu.Options())])
	}
}

// trySubmit applies the form control rules before submitting:
// a disabled control ignores the key and a blank topic shows the required hint.
func trySubmit(s *state.ModelState, deps Deps) tea.Cmd {
	f := s.Form
	if f == nil || f.SubmitDisabled() {
		return nil
	}
	if f.MissingRequired() {
		f.SetHint(form.RequiredHint)
		f.SetFocus(form.TopicField)
		return nil
	}
	f.Providers().Close()
	return Submit(s, deps)
}

func handleResultView(s *state.ModelState, msg tea.KeyMsg, deps Deps) (tea.Cmd, bool) {
	parsed := intent.FromKeyMsg(msg, s.Keys)
	switch parsed.Type {
	case intent.Quit:
		enterQuitView(s)
		return nil, true
	case intent.ToggleHelp:
		s.Help.ShowAll = !s.Help.ShowAll
		return nil, true
	case intent.Back:
		if s.Help.ShowAll {
			s.Help.ShowAll = false
			return nil, true
		}
		return MountForm(s), true
	case intent.Browse:
		openResultPage(s, deps)
		return nil, true
	default:
		return nil, false
	}
}

func openResultPage(s *state.ModelState, deps Deps) {
	target := strings.TrimSpace(deps.ResultURL)
	if target == "" {
		s.StatusMessage = "No result page configured"
		return
	}
	if deps.OpenBrowser == nil {
		s.StatusMessage = "Opening a browser is not supported here"
		return
	}
	if err := deps.OpenBrowser(target); err != nil {
		deps.logger().Warn("failed to open result page", zap.String("url", target), zap.Error(err))
		s.StatusMessage = fmt.Sprintf("Failed to open %s: %v", target, err)
		return
	}
	s.StatusMessage = "Opened " + target
}
