package input

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/paneshell/internal/infrastructure/config"
	"github.com/bnema/paneshell/internal/ui/mainloop"
)

type recorder struct {
	actions []Action
	err     error
}

func (r *recorder) handle(_ context.Context, action Action) error {
	r.actions = append(r.actions, action)
	return r.err
}

func newTestHandler(t *testing.T) (*KeyboardHandler, *recorder, *mainloop.ManualScheduler) {
	t.Helper()
	sched := mainloop.NewManualScheduler()
	cfg := config.DefaultConfig()
	h := NewKeyboardHandler(context.Background(), &cfg.Keybindings, sched)
	rec := &recorder{}
	h.SetOnAction(rec.handle)
	return h, rec, sched
}

func key(s string) KeyBinding {
	b, ok := ParseKeyString(s)
	if !ok {
		panic("bad key " + s)
	}
	return b
}

func TestKeyboardHandler_NormalModePassesUnknownKeys(t *testing.T) {
	h, rec, _ := newTestHandler(t)

	assert.False(t, h.HandleKey(key("x")))
	assert.Empty(t, rec.actions)
}

func TestKeyboardHandler_GlobalShortcut(t *testing.T) {
	h, rec, _ := newTestHandler(t)

	assert.True(t, h.HandleKey(key("alt+l")))
	assert.Equal(t, []Action{ActionFocusRight}, rec.actions)
	assert.Equal(t, ModeNormal, h.Mode())
}

func TestKeyboardHandler_PaneModeSplitAutoExits(t *testing.T) {
	h, rec, _ := newTestHandler(t)

	var modes []Mode
	h.SetOnModeChange(func(_, to Mode) { modes = append(modes, to) })

	assert.True(t, h.HandleKey(key("ctrl+p")))
	assert.Equal(t, ModePane, h.Mode())

	assert.True(t, h.HandleKey(key("r")))
	assert.Equal(t, []Action{ActionSplitRight}, rec.actions)
	assert.Equal(t, ModeNormal, h.Mode())
	assert.Equal(t, []Mode{ModePane, ModeNormal}, modes)
}

func TestKeyboardHandler_PaneModeFocusKeepsMode(t *testing.T) {
	h, rec, sched := newTestHandler(t)

	h.HandleKey(key("ctrl+p"))
	sched.Advance(2 * time.Second)
	h.HandleKey(key("shift+l"))
	h.HandleKey(key("shift+h"))
	sched.Advance(2 * time.Second)

	assert.Equal(t, []Action{ActionFocusRight, ActionFocusLeft}, rec.actions)
	assert.Equal(t, ModePane, h.Mode(), "valid keys extend the timeout")

	sched.Advance(time.Second)
	assert.Equal(t, ModeNormal, h.Mode())
}

func TestKeyboardHandler_PaneModeConsumesUnknownKeys(t *testing.T) {
	h, rec, _ := newTestHandler(t)
	h.EnterPaneMode()

	assert.True(t, h.HandleKey(key("q")))
	assert.Empty(t, rec.actions)
	assert.Equal(t, ModePane, h.Mode())
}

func TestKeyboardHandler_ActivationTogglesAndEscapeExits(t *testing.T) {
	h, _, _ := newTestHandler(t)

	h.HandleKey(key("ctrl+p"))
	h.HandleKey(key("ctrl+p"))
	assert.Equal(t, ModeNormal, h.Mode())

	h.HandleKey(key("ctrl+p"))
	h.HandleKey(key("escape"))
	assert.Equal(t, ModeNormal, h.Mode())
}

func TestKeyboardHandler_HandlerErrorStillConsumes(t *testing.T) {
	h, rec, _ := newTestHandler(t)
	rec.err = errors.New("boom")

	assert.True(t, h.HandleKey(key("ctrl+s")))
	assert.Equal(t, []Action{ActionSaveLayout}, rec.actions)
}

func TestKeyboardHandler_Reload(t *testing.T) {
	h, rec, _ := newTestHandler(t)

	cfg := config.DefaultConfig()
	cfg.Keybindings.Shortcuts = map[string][]string{"save-layout": {"ctrl+w"}}
	h.Reload(&cfg.Keybindings)

	assert.False(t, h.HandleKey(key("ctrl+s")))
	assert.True(t, h.HandleKey(key("ctrl+w")))
	assert.Equal(t, []Action{ActionSaveLayout}, rec.actions)
}
