package input

import (
	"context"

	"github.com/bnema/paneshell/internal/application/port"
	"github.com/bnema/paneshell/internal/infrastructure/config"
	"github.com/bnema/paneshell/internal/logging"
)

// ActionHandler is called when a keyboard shortcut triggers an action.
type ActionHandler func(ctx context.Context, action Action) error

// KeyboardHandler turns key presses into actions. The toolkit side feeds it
// through HandleKey; it never touches widgets itself.
type KeyboardHandler struct {
	ctx       context.Context
	shortcuts *ShortcutSet
	modal     *ModalState
	paneMode  config.PaneModeConfig

	onAction ActionHandler
}

// NewKeyboardHandler creates a handler from the keybinding config.
func NewKeyboardHandler(ctx context.Context, cfg *config.KeybindingsConfig, scheduler port.Scheduler) *KeyboardHandler {
	h := &KeyboardHandler{
		ctx:   ctx,
		modal: NewModalState(ctx, scheduler),
	}
	h.Reload(cfg)
	return h
}

// Reload rebuilds the shortcut tables, e.g. after the config file changed.
// The current mode is kept.
func (h *KeyboardHandler) Reload(cfg *config.KeybindingsConfig) {
	h.shortcuts = NewShortcutSet(h.ctx, cfg)
	if cfg != nil {
		h.paneMode = cfg.PaneMode
	}
}

// SetOnAction sets the callback for triggered actions.
func (h *KeyboardHandler) SetOnAction(fn ActionHandler) {
	h.onAction = fn
}

// SetOnModeChange sets the callback for mode transitions.
func (h *KeyboardHandler) SetOnModeChange(fn func(from, to Mode)) {
	h.modal.SetOnModeChange(fn)
}

// Mode returns the current input mode.
func (h *KeyboardHandler) Mode() Mode {
	return h.modal.Mode()
}

// HandleKey processes one key press and reports whether it was consumed.
// In pane mode every key is consumed so stray presses never reach content.
func (h *KeyboardHandler) HandleKey(binding KeyBinding) bool {
	binding.Modifiers &= modifierMask
	mode := h.modal.Mode()

	action, found := h.shortcuts.Lookup(binding, mode)
	if !found {
		return mode != ModeNormal
	}

	logging.FromContext(h.ctx).Trace().
		Str("key", binding.String()).
		Str("mode", mode.String()).
		Str("action", string(action)).
		Msg("shortcut matched")

	switch action {
	case ActionEnterPaneMode:
		if mode == ModePane {
			h.modal.ExitMode()
		} else {
			h.modal.EnterPaneMode(h.paneMode.Timeout())
		}
		return true
	case ActionExitMode:
		h.modal.ExitMode()
		return true
	}

	if h.onAction != nil {
		if err := h.onAction(h.ctx, action); err != nil {
			logging.FromContext(h.ctx).Error().
				Err(err).
				Str("action", string(action)).
				Msg("action handler error")
		}
	}

	if mode != ModeNormal {
		if ShouldAutoExitMode(action) {
			h.modal.ExitMode()
		} else {
			h.modal.ResetTimeout()
		}
	}
	return true
}

// EnterPaneMode programmatically enters pane mode.
func (h *KeyboardHandler) EnterPaneMode() {
	h.modal.EnterPaneMode(h.paneMode.Timeout())
}

// ExitMode programmatically exits modal mode.
func (h *KeyboardHandler) ExitMode() {
	h.modal.ExitMode()
}
