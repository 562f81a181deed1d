package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNewRejectsUnknownLevel(t *testing.T) {
	_, err := New("verbose", "")
	require.Error(t, err)

	_, err = New("verbose", filepath.Join(t.TempDir(), "smartroom.log"))
	require.ErrorContains(t, err, "verbose")
}

func TestNewAcceptsZapLevels(t *testing.T) {
	for _, level := range []string{"", "debug", "info", "warn", "error", "DEBUG"} {
		_, err := New(level, "")
		require.NoError(t, err, level)
	}

	path := filepath.Join(t.TempDir(), "smartroom.log")
	logger, err := New("warn", path)
	require.NoError(t, err)
	require.False(t, logger.Core().Enabled(zapcore.InfoLevel))
	require.True(t, logger.Core().Enabled(zapcore.WarnLevel))
}

func TestNewWithoutPathIsNop(t *testing.T) {
	logger, err := New("debug", "")
	require.NoError(t, err)
	require.False(t, logger.Core().Enabled(zapcore.ErrorLevel))
}

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "smartroom.log")

	logger, err := New("info", path)
	require.NoError(t, err)
	logger.Info("room updated", zap.String("room_id", "kitchen"))
	logger.Debug("hidden")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.True(t, strings.Contains(string(data), `"room_id":"kitchen"`))
	require.False(t, strings.Contains(string(data), "hidden"))
}
