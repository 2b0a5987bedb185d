// Command slidegen is a terminal form that asks an AI slide service to build a deck.
package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/tesso57/slidegen/internal/application/settings"
	"github.com/tesso57/slidegen/internal/application/usecase"
	"github.com/tesso57/slidegen/internal/domain/deck"
	"github.com/tesso57/slidegen/internal/infrastructure/api"
	"github.com/tesso57/slidegen/internal/infrastructure/config"
	"github.com/tesso57/slidegen/internal/infrastructure/journal"
	"github.com/tesso57/slidegen/internal/infrastructure/logging"
	"github.com/tesso57/slidegen/internal/presentation/tui"
	"go.uber.org/zap"
)

type cli struct {
	Config   string `short:"c" type:"path" help:"Config file (default ~/.config/slidegen/config.yaml)."`
	APIURL   string `name:"api-url" help:"Generation service base URL for this run."`
	Topic    string `short:"t" help:"Pre-fill the topic field."`
	Template int    `help:"Pre-select a template: 1 Minimalistic, 2 Colourful, 3 Professional, 4 Dark." default:"0"`
	Debug    bool   `help:"Log at debug level."`
}

type app struct {
	model   *tui.Model
	logger  *zap.Logger
	journal *journal.Manager
}

func (a *app) Close() {
	if a.journal != nil {
		if err := a.journal.Close(); err != nil {
			a.logger.Warn("failed to close journal", zap.Error(err))
		}
	}
	_ = a.logger.Sync()
}

func main() {
	var c cli
	kong.Parse(&c,
		kong.Name("slidegen"),
		kong.Description("Generate presentation slides from a topic with AI."),
		kong.UsageOnError(),
	)

	a, err := newApp(c)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(a.model, tea.WithAltScreen())
	_, err = p.Run()
	a.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newApp(c cli) (*app, error) {
	store, err := config.Load(c.Config)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	cfg := applyFlags(store.Settings, c)

	var tmpl deck.Template
	if c.Template != 0 {
		if tmpl, err = deck.ParseTemplate(c.Template); err != nil {
			return nil, err
		}
	}

	logger, err := logging.New(cfg.Log.File, cfg.Log.Debug)
	if err != nil {
		return nil, err
	}

	a := &app{logger: logger}
	var recorder usecase.AttemptRecorder
	var lister usecase.AttemptLister
	if cfg.JournalEnabled() {
		a.journal = journal.NewManager(cfg.JournalFile)
		recorder = a.journal
		lister = a.journal
	}

	client := api.NewClient(api.Config{
		BaseURL:      cfg.API.BaseURL,
		GeneratePath: cfg.API.GeneratePath,
		Timeout:      cfg.API.Timeout(),
	})
	endpoint, err := client.Endpoint()
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("invalid api url: %w", err)
	}

	generation := usecase.NewGenerationService(client, recorder, logger, time.Now)
	a.model = tui.NewModel(cfg, generation, lister, logger)
	if c.Topic != "" {
		a.model.PrefillTopic(c.Topic)
	}
	if tmpl.Valid() {
		a.model.PrefillTemplate(tmpl)
	}

	logger.Info("starting",
		zap.String("config", store.Path()),
		zap.String("endpoint", endpoint),
		zap.Bool("journal", cfg.JournalEnabled()),
	)
	return a, nil
}

func applyFlags(cfg settings.Settings, c cli) settings.Settings {
	if url := strings.TrimRight(strings.TrimSpace(c.APIURL), "/"); url != "" {
		cfg.API.BaseURL = url
	}
	if c.Debug {
		cfg.Log.Debug = true
	}
	return cfg
}
