package config

import "time"

// Config represents the complete configuration for paneshell.
type Config struct {
	Logging     LoggingConfig     `mapstructure:"logging" yaml:"logging" toml:"logging" json:"logging"`
	Workspace   WorkspaceConfig   `mapstructure:"workspace" yaml:"workspace" toml:"workspace" json:"workspace"`
	Lifecycle   LifecycleConfig   `mapstructure:"lifecycle" yaml:"lifecycle" toml:"lifecycle" json:"lifecycle"`
	Focus       FocusConfig       `mapstructure:"focus" yaml:"focus" toml:"focus" json:"focus"`
	Render      RenderConfig      `mapstructure:"render" yaml:"render" toml:"render" json:"render"`
	Database    DatabaseConfig    `mapstructure:"database" yaml:"database" toml:"database" json:"database"`
	Terminal    TerminalConfig    `mapstructure:"terminal" yaml:"terminal" toml:"terminal" json:"terminal"`
	Keybindings KeybindingsConfig `mapstructure:"keybindings" yaml:"keybindings" toml:"keybindings" json:"keybindings"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	// Level is one of trace, debug, info, warn, error.
	Level string `mapstructure:"level" yaml:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error"`
	// Format is "console" or "json".
	Format string `mapstructure:"format" yaml:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json"`
	// File, when set, duplicates every record into that file as JSON.
	File string `mapstructure:"file" yaml:"file" toml:"file" json:"file,omitempty"`
}

// WorkspaceConfig controls the pane tree and its persistence.
type WorkspaceConfig struct {
	// DefaultContentType is shown by new workspaces and by a reset last pane.
	DefaultContentType string `mapstructure:"default_content_type" yaml:"default_content_type" toml:"default_content_type" json:"default_content_type"` //nolint:lll // struct tags must stay on one line
	// DefaultSplitRatio is the divider position of new splits.
	DefaultSplitRatio float64 `mapstructure:"default_split_ratio" yaml:"default_split_ratio" toml:"default_split_ratio" json:"default_split_ratio" jsonschema:"minimum=0.1,maximum=0.9"` //nolint:lll // struct tags must stay on one line
	// RestoreOnStart restores the layout saved under LayoutName.
	RestoreOnStart bool `mapstructure:"restore_on_start" yaml:"restore_on_start" toml:"restore_on_start" json:"restore_on_start"`
	// LayoutName is the name the workspace layout is saved under. Empty
	// disables persistence.
	LayoutName string `mapstructure:"layout_name" yaml:"layout_name" toml:"layout_name" json:"layout_name"`
	// PersistDelay is how long structural changes settle before a save.
	PersistDelay time.Duration `mapstructure:"persist_delay" yaml:"persist_delay" toml:"persist_delay" json:"persist_delay"`
	// ResizeStepPercent is how far one keyboard resize moves a divider.
	ResizeStepPercent float64 `mapstructure:"resize_step_percent" yaml:"resize_step_percent" toml:"resize_step_percent" json:"resize_step_percent" jsonschema:"exclusiveMinimum=0,maximum=50"` //nolint:lll // struct tags must stay on one line
	// HideTabBarWhenSingleTab hides the tab bar when only one tab exists.
	HideTabBarWhenSingleTab bool `mapstructure:"hide_tab_bar_when_single_tab" yaml:"hide_tab_bar_when_single_tab" toml:"hide_tab_bar_when_single_tab" json:"hide_tab_bar_when_single_tab"` //nolint:lll // struct tags must stay on one line
}

// LifecycleConfig is the retry policy of content initialization.
type LifecycleConfig struct {
	MaxRetries    int           `mapstructure:"max_retries" yaml:"max_retries" toml:"max_retries" json:"max_retries" jsonschema:"minimum=0"`
	BaseDelay     time.Duration `mapstructure:"base_delay" yaml:"base_delay" toml:"base_delay" json:"base_delay"`
	BackoffFactor float64       `mapstructure:"backoff_factor" yaml:"backoff_factor" toml:"backoff_factor" json:"backoff_factor" jsonschema:"minimum=1"`
}

// FocusConfig controls the focus manager.
type FocusConfig struct {
	HistorySize int `mapstructure:"history_size" yaml:"history_size" toml:"history_size" json:"history_size" jsonschema:"minimum=1"`
	// MaxFocusCount caps how often a leaf may take focus. Zero is unlimited.
	MaxFocusCount int `mapstructure:"max_focus_count" yaml:"max_focus_count" toml:"max_focus_count" json:"max_focus_count" jsonschema:"minimum=0"`
}

// RenderConfig controls the view layer.
type RenderConfig struct {
	// PoolCapacity is the number of idle split containers kept per orientation.
	PoolCapacity int `mapstructure:"pool_capacity" yaml:"pool_capacity" toml:"pool_capacity" json:"pool_capacity" jsonschema:"minimum=0"`
	// ColorScheme is "default" (follow the system), "prefer-dark" or "prefer-light".
	ColorScheme string `mapstructure:"color_scheme" yaml:"color_scheme" toml:"color_scheme" json:"color_scheme" jsonschema:"enum=default,enum=prefer-dark,enum=prefer-light"`
	// UIScale multiplies font sizes and paddings of the shell chrome.
	UIScale float64 `mapstructure:"ui_scale" yaml:"ui_scale" toml:"ui_scale" json:"ui_scale" jsonschema:"minimum=0.5,maximum=3"`
}

// DatabaseConfig holds database-related configuration.
type DatabaseConfig struct {
	// Path defaults to $XDG_DATA_HOME/paneshell/paneshell.sqlite.
	Path string `mapstructure:"path" yaml:"path" toml:"path" json:"path"`
}

// TerminalConfig controls terminal panes.
type TerminalConfig struct {
	// Shell is the command run by terminal panes. Empty means $SHELL.
	Shell string `mapstructure:"shell" yaml:"shell" toml:"shell" json:"shell"`
}

// KeybindingsConfig holds the global shortcuts and the pane mode.
type KeybindingsConfig struct {
	// Shortcuts maps actions to keys that work outside any mode.
	Shortcuts map[string][]string `mapstructure:"shortcuts" yaml:"shortcuts" toml:"shortcuts" json:"shortcuts"`
	PaneMode  PaneModeConfig      `mapstructure:"pane_mode" yaml:"pane_mode" toml:"pane_mode" json:"pane_mode"`
}

// PaneModeConfig defines modal behavior for pane management.
type PaneModeConfig struct {
	ActivationShortcut  string              `mapstructure:"activation_shortcut" yaml:"activation_shortcut" toml:"activation_shortcut" json:"activation_shortcut"` //nolint:lll // struct tags must stay on one line
	TimeoutMilliseconds int                 `mapstructure:"timeout_ms" yaml:"timeout_ms" toml:"timeout_ms" json:"timeout_ms" jsonschema:"minimum=0"`
	Actions             map[string][]string `mapstructure:"actions" yaml:"actions" toml:"actions" json:"actions"`
}

// Timeout returns the pane mode timeout. Zero keeps the mode until exited.
func (p *PaneModeConfig) Timeout() time.Duration {
	return time.Duration(p.TimeoutMilliseconds) * time.Millisecond
}

// GetKeyBindings returns an inverted map for key to action lookup.
func (p *PaneModeConfig) GetKeyBindings() map[string]string {
	return invertBindings(p.Actions)
}

// GetShortcutBindings returns the global shortcuts keyed by key string.
func (k *KeybindingsConfig) GetShortcutBindings() map[string]string {
	return invertBindings(k.Shortcuts)
}

func invertBindings(actions map[string][]string) map[string]string {
	keyToAction := make(map[string]string)
	for action, keys := range actions {
		for _, key := range keys {
			keyToAction[key] = action
		}
	}
	return keyToAction
}
