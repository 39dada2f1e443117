package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "unknown log level",
			mutate:  func(c *Config) { c.Logging.Level = "verbose" },
			wantErr: "logging.level",
		},
		{
			name:    "unknown log format",
			mutate:  func(c *Config) { c.Logging.Format = "xml" },
			wantErr: "logging.format",
		},
		{
			name:    "empty default content type",
			mutate:  func(c *Config) { c.Workspace.DefaultContentType = " " },
			wantErr: "workspace.default_content_type",
		},
		{
			name:    "restore without layout name",
			mutate:  func(c *Config) { c.Workspace.LayoutName = "" },
			wantErr: "workspace.layout_name",
		},
		{
			name:    "negative retries",
			mutate:  func(c *Config) { c.Lifecycle.MaxRetries = -1 },
			wantErr: "lifecycle.max_retries",
		},
		{
			name:    "zero base delay",
			mutate:  func(c *Config) { c.Lifecycle.BaseDelay = 0 },
			wantErr: "lifecycle.base_delay",
		},
		{
			name:    "negative focus count",
			mutate:  func(c *Config) { c.Focus.MaxFocusCount = -2 },
			wantErr: "focus.max_focus_count",
		},
		{
			name:    "negative pool capacity",
			mutate:  func(c *Config) { c.Render.PoolCapacity = -1 },
			wantErr: "render.pool_capacity",
		},
		{
			name:    "unknown color scheme",
			mutate:  func(c *Config) { c.Render.ColorScheme = "solarized" },
			wantErr: "render.color_scheme",
		},
		{
			name:    "ui scale out of range",
			mutate:  func(c *Config) { c.Render.UIScale = 0 },
			wantErr: "render.ui_scale",
		},
		{
			name:    "resize step out of range",
			mutate:  func(c *Config) { c.Workspace.ResizeStepPercent = 0 },
			wantErr: "workspace.resize_step_percent",
		},
		{
			name:    "missing pane mode shortcut",
			mutate:  func(c *Config) { c.Keybindings.PaneMode.ActivationShortcut = "" },
			wantErr: "activation_shortcut",
		},
		{
			name: "key bound twice",
			mutate: func(c *Config) {
				c.Keybindings.PaneMode.Actions["close-pane"] = []string{"x", "r"}
				c.Keybindings.PaneMode.Actions["split-right"] = []string{"r"}
			},
			wantErr: `key "r" is bound to both close-pane and split-right`,
		},
		{
			name:    "empty key",
			mutate:  func(c *Config) { c.Keybindings.Shortcuts["save-layout"] = []string{""} },
			wantErr: "keybindings.shortcuts.save-layout contains an empty key",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := validateConfig(cfg)

			if assert.Error(t, err) {
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestPaneModeConfig_GetKeyBindings(t *testing.T) {
	pm := PaneModeConfig{Actions: map[string][]string{
		"split-right": {"r", "arrowright"},
		"close-pane":  {"x"},
	}}

	got := pm.GetKeyBindings()

	assert.Equal(t, map[string]string{
		"r":          "split-right",
		"arrowright": "split-right",
		"x":          "close-pane",
	}, got)
}
