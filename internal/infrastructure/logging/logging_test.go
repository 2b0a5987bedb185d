package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNew_Disabled(t *testing.T) {
	for _, path := range []string{"", " ", "-"} {
		logger, err := New(path, false)
		require.NoError(t, err)
		require.NotNil(t, logger)
		logger.Info("dropped")
	}
}

func TestNew_WritesJSONLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "slidegen.log")

	logger, err := New(path, false)
	require.NoError(t, err)
	logger.Debug("hidden at info level")
	logger.Info("generation response", zap.String("message", "ok"))
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)
	require.Contains(t, out, `"msg":"generation response"`)
	require.Contains(t, out, `"message":"ok"`)
	require.Contains(t, out, `"logger":"slidegen"`)
	require.NotContains(t, out, "hidden at info level")
}

func TestNew_DebugLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")

	logger, err := New(path, true)
	require.NoError(t, err)
	logger.Debug("visible")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.True(t, strings.Contains(string(data), "visible"))
}
