package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(t *testing.T) (*Manager, string) {
	t.Helper()
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	t.Setenv("XDG_STATE_HOME", t.TempDir())
	dir := t.TempDir()
	mgr, err := NewManager(WithConfigDir(dir))
	require.NoError(t, err)
	return mgr, dir
}

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, configName), []byte(content), filePerm))
}

func TestDefaultConfig_IsValid(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Database.Path = "/tmp/paneshell.sqlite"

	assert.NoError(t, validateConfig(cfg))
}

func TestSetDefaults(t *testing.T) {
	mgr := &Manager{viper: viper.New()}
	mgr.setDefaults()

	assert.Equal(t, "welcome", mgr.viper.GetString("workspace.default_content_type"))
	assert.Equal(t, 3, mgr.viper.GetInt("lifecycle.max_retries"))
	assert.Equal(t, "ctrl+p", mgr.viper.GetString("keybindings.pane_mode.activation_shortcut"))
}

func TestManager_LoadCreatesDefaultFile(t *testing.T) {
	mgr, dir := newTestManager(t)

	require.NoError(t, mgr.Load())

	assert.FileExists(t, filepath.Join(dir, configName))
	assert.FileExists(t, filepath.Join(dir, schemaName))

	cfg := mgr.Get()
	assert.Equal(t, "welcome", cfg.Workspace.DefaultContentType)
	assert.InDelta(t, 0.5, cfg.Workspace.DefaultSplitRatio, 1e-9)
	assert.Equal(t, 100*time.Millisecond, cfg.Lifecycle.BaseDelay)
	assert.Equal(t, []string{"x"}, cfg.Keybindings.PaneMode.Actions["close-pane"])
	assert.Equal(t, databaseName, filepath.Base(cfg.Database.Path))
}

func TestManager_LoadReadsFile(t *testing.T) {
	mgr, dir := newTestManager(t)
	writeConfig(t, dir, `
[workspace]
layout_name = "work"
default_content_type = "Notes"

[lifecycle]
max_retries = 5
base_delay = "250ms"

[terminal]
shell = "/bin/zsh"
`)

	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	assert.Equal(t, "work", cfg.Workspace.LayoutName)
	assert.Equal(t, "notes", cfg.Workspace.DefaultContentType)
	assert.Equal(t, 5, cfg.Lifecycle.MaxRetries)
	assert.Equal(t, 250*time.Millisecond, cfg.Lifecycle.BaseDelay)
	assert.Equal(t, "/bin/zsh", cfg.Terminal.Shell)
	// untouched sections keep their defaults
	assert.Equal(t, 10, cfg.Focus.HistorySize)
}

func TestManager_EnvOverrides(t *testing.T) {
	mgr, _ := newTestManager(t)
	t.Setenv("PANESHELL_FOCUS_HISTORY_SIZE", "4")
	t.Setenv("PANESHELL_LOG_LEVEL", "DEBUG")

	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	assert.Equal(t, 4, cfg.Focus.HistorySize)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestManager_LoadRejectsInvalidValues(t *testing.T) {
	mgr, dir := newTestManager(t)
	writeConfig(t, dir, `
[workspace]
default_split_ratio = 0.95

[focus]
history_size = 0
`)

	err := mgr.Load()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "workspace.default_split_ratio")
	assert.Contains(t, err.Error(), "focus.history_size")
}

func TestManager_LoadRejectsMalformedTOML(t *testing.T) {
	mgr, dir := newTestManager(t)
	writeConfig(t, dir, "[workspace\nlayout_name = ")

	err := mgr.Load()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be valid TOML")
}

func TestManager_SaveRoundTrip(t *testing.T) {
	mgr, dir := newTestManager(t)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	cfg.Workspace.LayoutName = "saved"
	cfg.Focus.MaxFocusCount = 7
	require.NoError(t, mgr.Save(cfg))
	assert.Equal(t, "saved", mgr.Get().Workspace.LayoutName)

	again, err := NewManager(WithConfigDir(dir))
	require.NoError(t, err)
	require.NoError(t, again.Load())

	assert.Equal(t, "saved", again.Get().Workspace.LayoutName)
	assert.Equal(t, 7, again.Get().Focus.MaxFocusCount)
	assert.Equal(t, mgr.Get().Lifecycle, again.Get().Lifecycle)
}

func TestManager_SaveRejectsInvalid(t *testing.T) {
	mgr, _ := newTestManager(t)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	cfg.Lifecycle.BackoffFactor = 0.5

	err := mgr.Save(cfg)

	require.Error(t, err)
	assert.InDelta(t, 2.0, mgr.Get().Lifecycle.BackoffFactor, 1e-9)
}

func TestManager_GetBeforeLoadReturnsDefaults(t *testing.T) {
	mgr, _ := newTestManager(t)

	assert.Equal(t, DefaultConfig().Workspace, mgr.Get().Workspace)
}

func TestManager_ReloadNotifiesCallbacks(t *testing.T) {
	mgr, dir := newTestManager(t)
	require.NoError(t, mgr.Load())

	var got *Config
	mgr.OnConfigChange(func(cfg *Config) { got = cfg })

	writeConfig(t, dir, "[focus]\nhistory_size = 3\n")
	require.NoError(t, mgr.Reload())

	require.NotNil(t, got)
	assert.Equal(t, 3, got.Focus.HistorySize)
}
