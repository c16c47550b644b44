package main

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"holdguard/internal/core/model"
	"holdguard/internal/ui/animation"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestResolveSettingsDefaults(t *testing.T) {
	opts := &options{}
	cmd := newCommand(opts)
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, cmd.Flags().Set("config", path))

	configPath, settings, err := resolveSettings(cmd, opts, discardLogger())

	require.NoError(t, err)
	assert.Equal(t, path, configPath)
	assert.Equal(t, model.DefaultHoldDuration, settings.HoldDuration)
	assert.Equal(t, animation.StyleBorderTrace, settings.Style)
}

func TestResolveSettingsFlagsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("hold_duration_ms: 5000\ndisabled: true\n"), 0o644))

	opts := &options{}
	cmd := newCommand(opts)
	require.NoError(t, cmd.Flags().Set("config", path))
	require.NoError(t, cmd.Flags().Set("hold-duration", "1500ms"))
	require.NoError(t, cmd.Flags().Set("style", "fill"))

	_, settings, err := resolveSettings(cmd, opts, discardLogger())

	require.NoError(t, err)
	assert.Equal(t, 1500*time.Millisecond, settings.HoldDuration)
	assert.True(t, settings.Disabled)
	assert.Equal(t, animation.StyleFill, settings.Style)
}

func TestResolveSettingsRejectsInvalidFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")

	opts := &options{}
	cmd := newCommand(opts)
	require.NoError(t, cmd.Flags().Set("config", path))
	require.NoError(t, cmd.Flags().Set("hold-duration", "0s"))
	_, _, err := resolveSettings(cmd, opts, discardLogger())
	assert.ErrorIs(t, err, model.ErrInvalidDuration)

	opts = &options{}
	cmd = newCommand(opts)
	require.NoError(t, cmd.Flags().Set("config", path))
	require.NoError(t, cmd.Flags().Set("style", "glitter"))
	_, _, err = resolveSettings(cmd, opts, discardLogger())
	assert.ErrorContains(t, err, "unknown progress style")
}

func TestResolveSettingsWarnsOnBrokenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("hold_duration_ms: [oops"), 0o644))
	var logs bytes.Buffer

	opts := &options{}
	cmd := newCommand(opts)
	require.NoError(t, cmd.Flags().Set("config", path))
	_, settings, err := resolveSettings(cmd, opts, newLogger(&logs, false))

	require.NoError(t, err)
	assert.Equal(t, model.DefaultHoldDuration, settings.HoldDuration)
	assert.Contains(t, logs.String(), "using default settings")
}

func TestNewLoggerLevels(t *testing.T) {
	var quiet, verbose bytes.Buffer

	newLogger(&quiet, false).Debug("hidden")
	newLogger(&verbose, true).Debug("shown")

	assert.Empty(t, quiet.String())
	assert.Contains(t, verbose.String(), "shown")
}
