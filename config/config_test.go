package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 16, cfg.MenuMinWidth)
	assert.Equal(t, 3000, cfg.NoticeTimeoutMs)
	assert.True(t, cfg.ShowDisabledEntries)
	assert.True(t, cfg.Logs.Enabled)
	assert.Empty(t, cfg.Items)
}

func TestConfigRoundTripFillsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(`{
  "menu_min_width": 0,
  "show_disabled_entries": false,
  "items": [{"kind": "Circle", "x": 4, "y": 2}]
}`), 0644))

	cfg, err := loadConfigFrom(path)
	require.NoError(t, err)

	assert.Equal(t, 16, cfg.MenuMinWidth, "zero width falls back to the default")
	assert.Equal(t, 3000, cfg.NoticeTimeoutMs, "missing field keeps the default")
	assert.False(t, cfg.ShowDisabledEntries)
	require.Len(t, cfg.Items, 1)
	assert.Equal(t, ItemConfig{Kind: "Circle", X: 4, Y: 2}, cfg.Items[0])

	require.NoError(t, saveConfigTo(dir, cfg))
	again, err := loadConfigFrom(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, again)
}

func TestLoadConfigRejectsBadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	_, err := loadConfigFrom(path)
	assert.Error(t, err)
}

func TestLogConfigConversion(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Logs.Dir = "/var/tmp/cm"
	lc := cfg.LogConfig()
	assert.True(t, lc.LogsEnabled)
	assert.Equal(t, "/var/tmp/cm", lc.LogsDir)
	assert.Equal(t, cfg.Logs.MaxSize, lc.LogMaxSize)
}

func TestStatePersistsWithLocking(t *testing.T) {
	dir := t.TempDir()

	state := newStateIn(dir)
	require.NoError(t, state.SetCursor(7, 3))
	require.NoError(t, state.SetHelpScreensSeen(0b101))

	_, err := os.Stat(filepath.Join(dir, StateFileName+".tmp"))
	assert.True(t, os.IsNotExist(err), "temporary file should be renamed away")

	reloaded := newStateIn(dir)
	require.NoError(t, reloaded.RefreshState())
	x, y := reloaded.GetCursor()
	assert.Equal(t, 7, x)
	assert.Equal(t, 3, y)
	assert.Equal(t, uint32(0b101), reloaded.GetHelpScreensSeen())
	assert.NoError(t, reloaded.Close())
}

func TestStateMissingFileKeepsDefaults(t *testing.T) {
	state := newStateIn(t.TempDir())
	require.NoError(t, state.RefreshState())
	assert.Equal(t, uint32(0), state.GetHelpScreensSeen())
}
