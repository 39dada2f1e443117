package input

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/paneshell/internal/infrastructure/config"
)

func TestNewShortcutSet_FromDefaults(t *testing.T) {
	cfg := config.DefaultConfig()

	s := NewShortcutSet(context.Background(), &cfg.Keybindings)

	action, ok := s.Lookup(KeyBinding{Key: "p", Modifiers: ModCtrl}, ModeNormal)
	require.True(t, ok)
	assert.Equal(t, ActionEnterPaneMode, action)

	action, ok = s.Lookup(KeyBinding{Key: "left", Modifiers: ModAlt}, ModeNormal)
	require.True(t, ok)
	assert.Equal(t, ActionFocusLeft, action)

	action, ok = s.Lookup(KeyBinding{Key: "x"}, ModePane)
	require.True(t, ok)
	assert.Equal(t, ActionClosePane, action)

	action, ok = s.Lookup(KeyBinding{Key: "escape"}, ModePane)
	require.True(t, ok)
	assert.Equal(t, ActionExitMode, action)
}

func TestShortcutSet_PaneTableOnlyInPaneMode(t *testing.T) {
	cfg := config.DefaultConfig()
	s := NewShortcutSet(context.Background(), &cfg.Keybindings)

	_, ok := s.Lookup(KeyBinding{Key: "x"}, ModeNormal)
	assert.False(t, ok)

	// global shortcuts stay reachable from pane mode
	action, ok := s.Lookup(KeyBinding{Key: "s", Modifiers: ModCtrl}, ModePane)
	require.True(t, ok)
	assert.Equal(t, ActionSaveLayout, action)
}

func TestShortcutSet_LookupMasksExtraModifiers(t *testing.T) {
	cfg := config.DefaultConfig()
	s := NewShortcutSet(context.Background(), &cfg.Keybindings)

	const capsLock Modifier = 1 << 1
	action, ok := s.Lookup(KeyBinding{Key: "p", Modifiers: ModCtrl | capsLock}, ModeNormal)

	require.True(t, ok)
	assert.Equal(t, ActionEnterPaneMode, action)
}

func TestNewShortcutSet_SkipsInvalidEntries(t *testing.T) {
	cfg := &config.KeybindingsConfig{
		Shortcuts: map[string][]string{
			"split-right": {"ctrl+nosuchkey", "ctrl+r"},
			"teleport":    {"ctrl+t"},
		},
		PaneMode: config.PaneModeConfig{ActivationShortcut: "ctrl+"},
	}

	s := NewShortcutSet(context.Background(), cfg)

	assert.Equal(t, ShortcutTable{{Key: "r", Modifiers: ModCtrl}: ActionSplitRight}, s.Global)
	assert.Empty(t, s.PaneMode)
}

func TestNewShortcutSet_NilConfig(t *testing.T) {
	s := NewShortcutSet(context.Background(), nil)

	assert.Empty(t, s.Global)
	assert.Empty(t, s.PaneMode)
}

func TestShouldAutoExitMode(t *testing.T) {
	assert.True(t, ShouldAutoExitMode(ActionSplitRight))
	assert.True(t, ShouldAutoExitMode(ActionContentNotes))
	assert.False(t, ShouldAutoExitMode(ActionFocusLeft))
	assert.False(t, ShouldAutoExitMode(ActionCycleNext))
	assert.False(t, ShouldAutoExitMode(ActionResizeGrow), "resize steps chain")
	assert.True(t, ShouldAutoExitMode(ActionNewTab))
}

func TestNewShortcutSet_TabAndResizeDefaults(t *testing.T) {
	cfg := config.DefaultConfig()
	s := NewShortcutSet(context.Background(), &cfg.Keybindings)

	tests := []struct {
		binding KeyBinding
		mode    Mode
		want    Action
	}{
		{KeyBinding{Key: "t", Modifiers: ModCtrl | ModShift}, ModeNormal, ActionNewTab},
		{KeyBinding{Key: "w", Modifiers: ModCtrl | ModShift}, ModeNormal, ActionCloseTab},
		{KeyBinding{Key: "page_down", Modifiers: ModCtrl}, ModeNormal, ActionNextTab},
		{KeyBinding{Key: "page_up", Modifiers: ModCtrl}, ModeNormal, ActionPrevTab},
		{KeyBinding{Key: "left", Modifiers: ModCtrl}, ModePane, ActionResizeLeft},
		{KeyBinding{Key: "j", Modifiers: ModCtrl}, ModePane, ActionResizeDown},
		{KeyBinding{Key: "plus"}, ModePane, ActionResizeGrow},
		{KeyBinding{Key: "equal"}, ModePane, ActionResizeGrow},
		{KeyBinding{Key: "minus"}, ModePane, ActionResizeShrink},
	}
	for _, tt := range tests {
		action, ok := s.Lookup(tt.binding, tt.mode)
		require.True(t, ok, tt.binding.String())
		assert.Equal(t, tt.want, action, tt.binding.String())
	}

	_, ok := s.Lookup(KeyBinding{Key: "minus"}, ModeNormal)
	assert.False(t, ok, "resize keys only live in pane mode")
}
