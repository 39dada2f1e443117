package config

import (
	"fmt"
	"strings"
)

// validateConfig performs comprehensive validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validateWorkspace(config)...)
	validationErrors = append(validationErrors, validateLifecycle(config)...)
	validationErrors = append(validationErrors, validateFocus(config)...)
	validationErrors = append(validationErrors, validateKeybindings(config)...)

	validationErrors = append(validationErrors, validateRender(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}
	return nil
}

func validateRender(config *Config) []string {
	var validationErrors []string
	if config.Render.PoolCapacity < 0 {
		validationErrors = append(validationErrors, "render.pool_capacity must be non-negative")
	}
	switch config.Render.ColorScheme {
	case "default", "prefer-dark", "prefer-light":
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("render.color_scheme must be default, prefer-dark or prefer-light (got %q)", config.Render.ColorScheme))
	}
	if config.Render.UIScale < 0.5 || config.Render.UIScale > 3 {
		validationErrors = append(validationErrors,
			fmt.Sprintf("render.ui_scale must be between 0.5 and 3 (got %g)", config.Render.UIScale))
	}
	return validationErrors
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	switch strings.ToLower(config.Logging.Level) {
	case "trace", "debug", "info", "warn", "warning", "error":
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.level must be one of trace, debug, info, warn, error (got %q)", config.Logging.Level))
	}
	if config.Logging.Format != "console" && config.Logging.Format != "json" {
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.format must be console or json (got %q)", config.Logging.Format))
	}
	return validationErrors
}

func validateWorkspace(config *Config) []string {
	var validationErrors []string
	ws := config.Workspace
	if strings.TrimSpace(ws.DefaultContentType) == "" {
		validationErrors = append(validationErrors, "workspace.default_content_type cannot be empty")
	}
	if ws.DefaultSplitRatio < 0.1 || ws.DefaultSplitRatio > 0.9 {
		validationErrors = append(validationErrors, "workspace.default_split_ratio must be between 0.1 and 0.9")
	}
	if ws.PersistDelay < 0 {
		validationErrors = append(validationErrors, "workspace.persist_delay must be non-negative")
	}
	if ws.ResizeStepPercent <= 0 || ws.ResizeStepPercent > 50 {
		validationErrors = append(validationErrors, "workspace.resize_step_percent must be in (0, 50]")
	}
	if ws.RestoreOnStart && strings.TrimSpace(ws.LayoutName) == "" {
		validationErrors = append(validationErrors, "workspace.layout_name is required when restore_on_start is set")
	}
	return validationErrors
}

func validateLifecycle(config *Config) []string {
	var validationErrors []string
	lc := config.Lifecycle
	if lc.MaxRetries < 0 {
		validationErrors = append(validationErrors, "lifecycle.max_retries must be non-negative")
	}
	if lc.BaseDelay <= 0 {
		validationErrors = append(validationErrors, "lifecycle.base_delay must be positive")
	}
	if lc.BackoffFactor < 1 {
		validationErrors = append(validationErrors, "lifecycle.backoff_factor must be at least 1")
	}
	return validationErrors
}

func validateFocus(config *Config) []string {
	var validationErrors []string
	if config.Focus.HistorySize < 1 {
		validationErrors = append(validationErrors, "focus.history_size must be at least 1")
	}
	if config.Focus.MaxFocusCount < 0 {
		validationErrors = append(validationErrors, "focus.max_focus_count must be non-negative")
	}
	return validationErrors
}

func validateKeybindings(config *Config) []string {
	var validationErrors []string
	pm := config.Keybindings.PaneMode
	if strings.TrimSpace(pm.ActivationShortcut) == "" {
		validationErrors = append(validationErrors, "keybindings.pane_mode.activation_shortcut cannot be empty")
	}
	if pm.TimeoutMilliseconds < 0 {
		validationErrors = append(validationErrors, "keybindings.pane_mode.timeout_ms must be non-negative")
	}
	validationErrors = append(validationErrors, validateBindingTable("keybindings.shortcuts", config.Keybindings.Shortcuts)...)
	validationErrors = append(validationErrors, validateBindingTable("keybindings.pane_mode.actions", pm.Actions)...)
	return validationErrors
}

// validateBindingTable rejects empty keys and keys bound to two actions.
func validateBindingTable(section string, actions map[string][]string) []string {
	var validationErrors []string
	seen := make(map[string]string)
	for action, keys := range actions {
		for _, key := range keys {
			normalized := strings.TrimSpace(key)
			if normalized == "" {
				validationErrors = append(validationErrors, fmt.Sprintf("%s.%s contains an empty key", section, action))
				continue
			}
			if other, dup := seen[normalized]; dup && other != action {
				first, second := other, action
				if second < first {
					first, second = second, first
				}
				validationErrors = append(validationErrors,
					fmt.Sprintf("%s: key %q is bound to both %s and %s", section, normalized, first, second))
				continue
			}
			seen[normalized] = action
		}
	}
	return validationErrors
}
