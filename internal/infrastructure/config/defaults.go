package config

import "time"

// Default configuration constants
const (
	defaultLogLevel  = "info"
	defaultLogFormat = "console"

	defaultContentType  = "welcome"
	defaultSplitRatio   = 0.5
	defaultLayoutName   = "default"
	defaultPersistDelay = 500 * time.Millisecond
	defaultResizeStep   = 5.0

	// Retry policy: 3 attempts, 100ms then 200ms then 400ms
	defaultMaxRetries    = 3
	defaultBaseDelay     = 100 * time.Millisecond
	defaultBackoffFactor = 2.0

	defaultFocusHistorySize = 10
	defaultPoolCapacity     = 8

	defaultPaneActivationShortcut  = "ctrl+p"
	defaultPaneTimeoutMilliseconds = 3000
)

// DefaultConfig returns the default configuration values for paneshell.
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
		Workspace: WorkspaceConfig{
			DefaultContentType: defaultContentType,
			DefaultSplitRatio:  defaultSplitRatio,
			RestoreOnStart:     true,
			LayoutName:         defaultLayoutName,
			PersistDelay:       defaultPersistDelay,

			ResizeStepPercent:       defaultResizeStep,
			HideTabBarWhenSingleTab: true,
		},
		Lifecycle: LifecycleConfig{
			MaxRetries:    defaultMaxRetries,
			BaseDelay:     defaultBaseDelay,
			BackoffFactor: defaultBackoffFactor,
		},
		Focus: FocusConfig{
			HistorySize: defaultFocusHistorySize,
		},
		Render: RenderConfig{
			PoolCapacity: defaultPoolCapacity,
			ColorScheme:  "default",
			UIScale:      1.0,
		},
		Database: DatabaseConfig{
			// Path is set dynamically in Load()
		},
		Keybindings: KeybindingsConfig{
			Shortcuts: map[string][]string{
				"focus-left":     {"alt+arrowleft", "alt+h"},
				"focus-right":    {"alt+arrowright", "alt+l"},
				"focus-up":       {"alt+arrowup", "alt+k"},
				"focus-down":     {"alt+arrowdown", "alt+j"},
				"cycle-next":     {"ctrl+tab"},
				"cycle-prev":     {"ctrl+shift+tab"},
				"focus-previous": {"alt+backspace"},
				"save-layout":    {"ctrl+s"},
				"new-tab":        {"ctrl+shift+t"},
				"close-tab":      {"ctrl+shift+w"},
				"next-tab":       {"ctrl+pagedown"},
				"prev-tab":       {"ctrl+pageup"},
			},
			PaneMode: PaneModeConfig{
				ActivationShortcut:  defaultPaneActivationShortcut,
				TimeoutMilliseconds: defaultPaneTimeoutMilliseconds,
				Actions: map[string][]string{
					"split-right": {"arrowright", "r"},
					"split-down":  {"arrowdown", "d"},
					"close-pane":  {"x"},

					"focus-right": {"shift+arrowright", "shift+l"},
					"focus-left":  {"shift+arrowleft", "shift+h"},
					"focus-up":    {"shift+arrowup", "shift+k"},
					"focus-down":  {"shift+arrowdown", "shift+j"},

					"cycle-next":      {"tab"},
					"cycle-prev":      {"shift+tab"},
					"cycle-same-type": {"c"},
					"focus-previous":  {"p"},

					"content-welcome":  {"w"},
					"content-notes":    {"n"},
					"content-terminal": {"t"},

					"resize-left":   {"ctrl+arrowleft", "ctrl+h"},
					"resize-right":  {"ctrl+arrowright", "ctrl+l"},
					"resize-up":     {"ctrl+arrowup", "ctrl+k"},
					"resize-down":   {"ctrl+arrowdown", "ctrl+j"},
					"resize-grow":   {"+", "="},
					"resize-shrink": {"-"},

					"confirm": {"enter"},
					"cancel":  {"escape"},
				},
			},
		},
	}
}
