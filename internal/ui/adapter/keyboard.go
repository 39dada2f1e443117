package adapter

import (
	"github.com/diamondburned/gotk4/pkg/gdk/v4"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/bnema/paneshell/internal/ui/input"
)

// AttachKeyboard installs a capture-phase key controller on widget so
// shortcuts win over focused content. The returned func removes it.
func AttachKeyboard(widget gtk.Widgetter, h *input.KeyboardHandler) (detach func()) {
	ctrl := gtk.NewEventControllerKey()
	ctrl.SetPropagationPhase(gtk.PhaseCapture)
	ctrl.ConnectKeyPressed(func(keyval, _ uint, state gdk.ModifierType) bool {
		binding, ok := BindingFromEvent(keyval, state)
		if !ok {
			// Bare modifiers and exotic keys: swallow them only in a mode.
			return h.Mode() != input.ModeNormal
		}
		return h.HandleKey(binding)
	})

	base := gtk.BaseWidget(widget)
	base.AddController(ctrl)
	return func() { base.RemoveController(ctrl) }
}

// BindingFromEvent converts a GDK key event. GTK reports Shift+m as "M", so
// the keyval is lowered and Shift stays in the modifiers.
func BindingFromEvent(keyval uint, state gdk.ModifierType) (input.KeyBinding, bool) {
	key, ok := input.NormalizeKeyName(gdk.KeyvalName(gdk.KeyvalToLower(keyval)))
	if !ok {
		return input.KeyBinding{}, false
	}
	var mods input.Modifier
	if state.Has(gdk.ShiftMask) {
		mods |= input.ModShift
	}
	if state.Has(gdk.ControlMask) {
		mods |= input.ModCtrl
	}
	if state.Has(gdk.AltMask) {
		mods |= input.ModAlt
	}
	return input.KeyBinding{Key: key, Modifiers: mods}, true
}
