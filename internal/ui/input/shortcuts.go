package input

import (
	"context"

	"github.com/bnema/paneshell/internal/infrastructure/config"
	"github.com/bnema/paneshell/internal/logging"
)

// Action represents a user-triggered workspace action.
type Action string

const (
	ActionSplitRight Action = "split_right"
	ActionSplitDown  Action = "split_down"
	ActionClosePane  Action = "close_pane"

	ActionFocusLeft     Action = "focus_left"
	ActionFocusRight    Action = "focus_right"
	ActionFocusUp       Action = "focus_up"
	ActionFocusDown     Action = "focus_down"
	ActionCycleNext     Action = "cycle_next"
	ActionCyclePrev     Action = "cycle_prev"
	ActionCycleSameType Action = "cycle_same_type"
	ActionFocusPrevious Action = "focus_previous"

	ActionContentWelcome  Action = "content_welcome"
	ActionContentNotes    Action = "content_notes"
	ActionContentTerminal Action = "content_terminal"

	ActionResizeLeft   Action = "resize_left"
	ActionResizeRight  Action = "resize_right"
	ActionResizeUp     Action = "resize_up"
	ActionResizeDown   Action = "resize_down"
	ActionResizeGrow   Action = "resize_grow"
	ActionResizeShrink Action = "resize_shrink"

	ActionNewTab   Action = "new_tab"
	ActionCloseTab Action = "close_tab"
	ActionNextTab  Action = "next_tab"
	ActionPrevTab  Action = "prev_tab"

	ActionSaveLayout Action = "save_layout"

	ActionEnterPaneMode Action = "enter_pane_mode"
	ActionExitMode      Action = "exit_mode"
)

// ShortcutTable maps key bindings to actions.
type ShortcutTable map[KeyBinding]Action

// ShortcutSet holds the global table and the pane mode table.
type ShortcutSet struct {
	Global   ShortcutTable
	PaneMode ShortcutTable
}

var configActionToAction = map[string]Action{
	"split-right": ActionSplitRight,
	"split-down":  ActionSplitDown,
	"close-pane":  ActionClosePane,

	"focus-left":      ActionFocusLeft,
	"focus-right":     ActionFocusRight,
	"focus-up":        ActionFocusUp,
	"focus-down":      ActionFocusDown,
	"cycle-next":      ActionCycleNext,
	"cycle-prev":      ActionCyclePrev,
	"cycle-same-type": ActionCycleSameType,
	"focus-previous":  ActionFocusPrevious,

	"content-welcome":  ActionContentWelcome,
	"content-notes":    ActionContentNotes,
	"content-terminal": ActionContentTerminal,

	"resize-left":   ActionResizeLeft,
	"resize-right":  ActionResizeRight,
	"resize-up":     ActionResizeUp,
	"resize-down":   ActionResizeDown,
	"resize-grow":   ActionResizeGrow,
	"resize-shrink": ActionResizeShrink,

	"new-tab":   ActionNewTab,
	"close-tab": ActionCloseTab,
	"next-tab":  ActionNextTab,
	"prev-tab":  ActionPrevTab,

	"save-layout": ActionSaveLayout,
}

// mapConfigAction maps config action names to Action constants.
func mapConfigAction(configAction string) Action {
	if configAction == "cancel" || configAction == "confirm" {
		return ActionExitMode
	}
	return configActionToAction[configAction]
}

// NewShortcutSet builds both tables from config. Unparseable keys and unknown
// actions are logged and skipped.
func NewShortcutSet(ctx context.Context, cfg *config.KeybindingsConfig) *ShortcutSet {
	s := &ShortcutSet{
		Global:   make(ShortcutTable),
		PaneMode: make(ShortcutTable),
	}
	if cfg == nil {
		return s
	}

	s.buildModeShortcuts(ctx, cfg.GetShortcutBindings(), s.Global, "global")
	s.buildModeShortcuts(ctx, cfg.PaneMode.GetKeyBindings(), s.PaneMode, "pane")

	if binding, ok := ParseKeyString(cfg.PaneMode.ActivationShortcut); ok {
		s.Global[binding] = ActionEnterPaneMode
	} else {
		logging.FromContext(ctx).Warn().
			Str("key", cfg.PaneMode.ActivationShortcut).
			Msg("failed to parse pane mode activation shortcut")
	}
	return s
}

func (s *ShortcutSet) buildModeShortcuts(ctx context.Context, bindings map[string]string, dest ShortcutTable, mode string) {
	log := logging.FromContext(ctx)
	var registered, parseErrors, unknownActions int
	for key, configAction := range bindings {
		binding, ok := ParseKeyString(key)
		if !ok {
			parseErrors++
			log.Warn().Str("key", key).Msg("failed to parse " + mode + " shortcut key")
			continue
		}
		action := mapConfigAction(configAction)
		if action == "" {
			unknownActions++
			log.Warn().Str("key", key).Str("configAction", configAction).Msg("unknown config action in " + mode + " shortcuts")
			continue
		}
		dest[binding] = action
		registered++
	}
	log.Debug().
		Int("registered", registered).
		Int("parseErrors", parseErrors).
		Int("unknownActions", unknownActions).
		Msg(mode + " shortcuts built")
}

// Lookup finds the action bound to binding, checking the mode table before
// the global one.
func (s *ShortcutSet) Lookup(binding KeyBinding, mode Mode) (Action, bool) {
	binding.Modifiers &= modifierMask

	if mode == ModePane {
		if action, ok := s.PaneMode[binding]; ok {
			return action, true
		}
	}
	action, ok := s.Global[binding]
	return action, ok
}

// ShouldAutoExitMode reports whether pane mode ends after action. Focus
// movement and resizing keep the mode so several steps can be chained.
func ShouldAutoExitMode(action Action) bool {
	switch action {
	case ActionSplitRight, ActionSplitDown, ActionClosePane,
		ActionContentWelcome, ActionContentNotes, ActionContentTerminal,
		ActionNewTab, ActionCloseTab, ActionSaveLayout:
		return true
	default:
		return false
	}
}
