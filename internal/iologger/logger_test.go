package iologger

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/gnames/gn"
	"github.com/namenest/namenest/pkg/config"
	"github.com/namenest/namenest/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewHandler_File verifies records are written to the log file.
func TestNewHandler_File(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping file system test in short mode")
	}
	dir := t.TempDir()
	cfg := config.LogConfig{Format: "json", Level: "info", Destination: "file"}

	h, err := NewHandler(dir, cfg, false)
	require.NoError(t, err)
	slog.New(h).Info("Names feed loaded", "records", 3)

	data, err := os.ReadFile(filepath.Join(dir, LogFile))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"Names feed loaded"`)
	assert.Contains(t, string(data), `"records":3`)
}

// TestNewHandler_Level verifies the configured level filters records.
func TestNewHandler_Level(t *testing.T) {
	tests := []struct {
		level string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"bogus", slog.LevelInfo},
	}
	for _, tt := range tests {
		cfg := config.LogConfig{Format: "text", Level: tt.level, Destination: "stderr"}
		h, err := NewHandler("", cfg, false)
		require.NoError(t, err)
		assert.True(t, h.Enabled(context.Background(), tt.want), tt.level)
		if tt.want > slog.LevelDebug {
			assert.False(t, h.Enabled(context.Background(), tt.want-1), tt.level)
		}
	}
}

// TestNewHandler_BadDir verifies a missing log directory is reported.
func TestNewHandler_BadDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "missing", "logs")
	cfg := config.LogConfig{Format: "json", Level: "info", Destination: "file"}

	_, err := NewHandler(dir, cfg, true)
	require.Error(t, err)

	var gnErr *gn.Error
	require.True(t, errors.As(err, &gnErr))
	assert.Equal(t, errcode.OpenLogFileError, gnErr.Code)
	assert.Equal(t, []any{filepath.Join(dir, LogFile)}, gnErr.Vars)
	assert.Contains(t, gnErr.Msg, "NAMENEST_LOG_DESTINATION=stderr")
	assert.ErrorIs(t, gnErr.Err, fs.ErrNotExist)
}
