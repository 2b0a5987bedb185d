package main

import (
	"path/filepath"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/require"
	"github.com/tesso57/slidegen/internal/application/settings"
	"github.com/tesso57/slidegen/internal/infrastructure/config"
)

func parse(t *testing.T, args ...string) cli {
	t.Helper()
	var c cli
	parser, err := kong.New(&c, kong.Name("slidegen"))
	require.NoError(t, err)
	_, err = parser.Parse(args)
	require.NoError(t, err)
	return c
}

func TestCLI_Flags(t *testing.T) {
	c := parse(t, "--api-url", "http://svc:8080/", "-t", "Go", "--template", "3", "--debug")
	require.Equal(t, "http://svc:8080/", c.APIURL)
	require.Equal(t, "Go", c.Topic)
	require.Equal(t, 3, c.Template)
	require.True(t, c.Debug)

	cfg := applyFlags(settings.Settings{API: settings.APIConfig{BaseURL: "http://localhost:5000"}}, c)
	require.Equal(t, "http://svc:8080", cfg.API.BaseURL)
	require.True(t, cfg.Log.Debug)
}

func TestApplyFlags_KeepsConfigWhenUnset(t *testing.T) {
	cfg := applyFlags(settings.Settings{API: settings.APIConfig{BaseURL: "http://cfg"}}, cli{APIURL: "  "})
	require.Equal(t, "http://cfg", cfg.API.BaseURL)
	require.False(t, cfg.Log.Debug)
}

func TestNewApp(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(dir, "state"))
	t.Setenv(config.APIURLEnv, "")

	a, err := newApp(cli{Config: filepath.Join(dir, "config.yaml"), Topic: "Go", Template: 2})
	require.NoError(t, err)
	t.Cleanup(a.Close)
	require.NotNil(t, a.model)
	require.NotNil(t, a.journal)
	require.FileExists(t, filepath.Join(dir, "state", "slidegen", "slidegen.log"))
}

func TestNewApp_RejectsUnknownTemplate(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(dir, "state"))

	_, err := newApp(cli{Config: filepath.Join(dir, "config.yaml"), Template: 7})
	require.Error(t, err)
}
