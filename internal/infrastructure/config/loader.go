// Package config loads, validates and watches the paneshell configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment overrides, e.g. PANESHELL_FOCUS_HISTORY_SIZE.
const EnvPrefix = "PANESHELL"

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	configDir string
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool

	// skipNextReload is set by Save so the fsnotify event of our own write
	// does not reload over the in-memory config.
	skipNextReload bool
}

// ManagerOption configures a Manager.
type ManagerOption func(*Manager)

// WithConfigDir reads and writes config.toml in dir instead of the XDG
// config directory.
func WithConfigDir(dir string) ManagerOption {
	return func(m *Manager) { m.configDir = dir }
}

// NewManager creates a new configuration manager.
func NewManager(opts ...ManagerOption) (*Manager, error) {
	m := &Manager{
		viper:     viper.New(),
		callbacks: make([]func(*Config), 0),
	}
	for _, opt := range opts {
		opt(m)
	}

	if m.configDir == "" {
		configDir, err := GetConfigDir()
		if err != nil {
			return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
		}
		m.configDir = configDir
	}

	v := m.viper
	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(m.configDir)

	// PANESHELL_WORKSPACE_LAYOUT_NAME and friends are picked up automatically.
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// The logging package reads the same variables before config is loaded.
	if err := v.BindEnv("logging.level", EnvPrefix+"_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind %s_LOG_LEVEL: %w", EnvPrefix, err)
	}
	if err := v.BindEnv("logging.format", EnvPrefix+"_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind %s_LOG_FORMAT: %w", EnvPrefix, err)
	}

	return m, nil
}

// Load loads the configuration from file and environment variables. A
// default config file is written on first run.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := os.MkdirAll(m.configDir, dirPerm); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	config, err := m.unmarshalConfig()
	if err != nil {
		return err
	}
	if err := finalizeConfig(config); err != nil {
		return err
	}

	m.config = config
	return nil
}

func (m *Manager) readConfigFile() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if !errors.As(err, &notFound) {
		return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions",
			m.ConfigFile(), err)
	}

	if createErr := m.createDefaultConfig(); createErr != nil {
		return fmt.Errorf("failed to create default config at %s: %w\nTry creating the directory manually or check permissions",
			m.configDir, createErr)
	}
	if rereadErr := m.viper.ReadInConfig(); rereadErr != nil {
		return fmt.Errorf("failed to read newly created config file: %w", rereadErr)
	}
	return nil
}

func (m *Manager) unmarshalConfig() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.ConfigFile(), err)
	}
	return config, nil
}

// finalizeConfig fills dynamic defaults, normalizes and validates.
func finalizeConfig(config *Config) error {
	if config.Database.Path == "" {
		dbPath, err := GetDatabaseFile()
		if err != nil {
			return fmt.Errorf("failed to get database path: %w", err)
		}
		config.Database.Path = dbPath
	}
	normalizeConfig(config)
	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}
	return nil
}

func normalizeConfig(config *Config) {
	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	config.Logging.Format = strings.ToLower(strings.TrimSpace(config.Logging.Format))
	config.Workspace.DefaultContentType = strings.ToLower(strings.TrimSpace(config.Workspace.DefaultContentType))
	config.Workspace.LayoutName = strings.TrimSpace(config.Workspace.LayoutName)
	config.Render.ColorScheme = strings.ToLower(strings.TrimSpace(config.Render.ColorScheme))
	if config.Render.ColorScheme == "" {
		config.Render.ColorScheme = "default"
	}
	config.Keybindings.PaneMode.ActivationShortcut = strings.TrimSpace(config.Keybindings.PaneMode.ActivationShortcut)
	if config.Workspace.PersistDelay == 0 {
		config.Workspace.PersistDelay = defaultPersistDelay
	}
}

// Get returns a copy of the current configuration, or the defaults before
// the first Load.
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	configCopy := *m.config
	return &configCopy
}

// Save validates cfg and writes it to the config file.
func (m *Manager) Save(cfg *Config) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if cfg == nil {
		return fmt.Errorf("config is nil")
	}
	saved := *cfg
	if err := finalizeConfig(&saved); err != nil {
		return err
	}
	if err := WriteConfigOrdered(&saved, m.ConfigFile()); err != nil {
		return err
	}
	if err := m.viper.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to re-read config after save: %w", err)
	}

	m.config = &saved
	m.skipNextReload = m.watching
	return nil
}

// ConfigFile returns the path of the configuration file.
func (m *Manager) ConfigFile() string {
	if used := m.viper.ConfigFileUsed(); used != "" {
		return used
	}
	return filepath.Join(m.configDir, configName)
}

// createDefaultConfig writes the defaults and the JSON schema next to them.
func (m *Manager) createDefaultConfig() error {
	configFile := filepath.Join(m.configDir, configName)
	if err := WriteConfigOrdered(DefaultConfig(), configFile); err != nil {
		return err
	}
	if err := WriteSchemaFile(filepath.Join(m.configDir, schemaName)); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Created default configuration file: %s\n", configFile)
	return nil
}

// setDefaults sets default configuration values in Viper.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
	m.viper.SetDefault("logging.file", defaults.Logging.File)

	m.viper.SetDefault("workspace.default_content_type", defaults.Workspace.DefaultContentType)
	m.viper.SetDefault("workspace.default_split_ratio", defaults.Workspace.DefaultSplitRatio)
	m.viper.SetDefault("workspace.restore_on_start", defaults.Workspace.RestoreOnStart)
	m.viper.SetDefault("workspace.layout_name", defaults.Workspace.LayoutName)
	m.viper.SetDefault("workspace.persist_delay", defaults.Workspace.PersistDelay)
	m.viper.SetDefault("workspace.resize_step_percent", defaults.Workspace.ResizeStepPercent)
	m.viper.SetDefault("workspace.hide_tab_bar_when_single_tab", defaults.Workspace.HideTabBarWhenSingleTab)

	m.viper.SetDefault("lifecycle.max_retries", defaults.Lifecycle.MaxRetries)
	m.viper.SetDefault("lifecycle.base_delay", defaults.Lifecycle.BaseDelay)
	m.viper.SetDefault("lifecycle.backoff_factor", defaults.Lifecycle.BackoffFactor)

	m.viper.SetDefault("focus.history_size", defaults.Focus.HistorySize)
	m.viper.SetDefault("focus.max_focus_count", defaults.Focus.MaxFocusCount)
	m.viper.SetDefault("render.pool_capacity", defaults.Render.PoolCapacity)
	m.viper.SetDefault("render.color_scheme", defaults.Render.ColorScheme)
	m.viper.SetDefault("render.ui_scale", defaults.Render.UIScale)

	// Database.Path is set dynamically in Load()
	m.viper.SetDefault("database.path", "")
	m.viper.SetDefault("terminal.shell", defaults.Terminal.Shell)

	m.viper.SetDefault("keybindings.shortcuts", defaults.Keybindings.Shortcuts)
	m.viper.SetDefault("keybindings.pane_mode.activation_shortcut", defaults.Keybindings.PaneMode.ActivationShortcut)
	m.viper.SetDefault("keybindings.pane_mode.timeout_ms", defaults.Keybindings.PaneMode.TimeoutMilliseconds)
	m.viper.SetDefault("keybindings.pane_mode.actions", defaults.Keybindings.PaneMode.Actions)
}
