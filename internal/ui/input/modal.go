package input

import (
	"context"
	"time"

	"github.com/bnema/paneshell/internal/application/port"
	"github.com/bnema/paneshell/internal/logging"
)

// Mode represents the current input mode.
type Mode int

const (
	// ModeNormal is the default mode where keys pass through to content.
	ModeNormal Mode = iota
	// ModePane is the modal pane management mode.
	ModePane
)

// String returns a human-readable mode name.
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModePane:
		return "pane"
	default:
		return "unknown"
	}
}

// ModalState tracks the input mode. The timeout runs on the main-loop
// scheduler, so every method must be called from the main loop.
type ModalState struct {
	ctx       context.Context
	scheduler port.Scheduler

	mode         Mode
	timeout      time.Duration
	cancelTimer  func()
	onModeChange func(from, to Mode)
}

// NewModalState creates a modal state manager in normal mode.
func NewModalState(ctx context.Context, scheduler port.Scheduler) *ModalState {
	if scheduler == nil {
		panic("input.NewModalState: scheduler cannot be nil")
	}
	return &ModalState{ctx: ctx, scheduler: scheduler, mode: ModeNormal}
}

// Mode returns the current mode.
func (m *ModalState) Mode() Mode { return m.mode }

// EnterPaneMode switches to pane mode. A zero timeout keeps the mode until
// ExitMode. Entering again only restarts the timeout.
func (m *ModalState) EnterPaneMode(timeout time.Duration) {
	if m.mode == ModePane {
		m.resetTimeout(timeout)
		return
	}

	oldMode := m.mode
	m.mode = ModePane
	m.resetTimeout(timeout)

	logging.FromContext(m.ctx).Debug().
		Str("from", oldMode.String()).
		Str("to", m.mode.String()).
		Dur("timeout", timeout).
		Msg("entered pane mode")

	if m.onModeChange != nil {
		m.onModeChange(oldMode, m.mode)
	}
}

// ExitMode returns to normal mode.
func (m *ModalState) ExitMode() {
	if m.mode == ModeNormal {
		return
	}

	m.stopTimer()
	oldMode := m.mode
	m.mode = ModeNormal
	m.timeout = 0

	logging.FromContext(m.ctx).Debug().
		Str("from", oldMode.String()).
		Str("to", "normal").
		Msg("exited modal mode")

	if m.onModeChange != nil {
		m.onModeChange(oldMode, ModeNormal)
	}
}

// ResetTimeout restarts the mode timeout, e.g. after a valid keystroke.
func (m *ModalState) ResetTimeout() {
	if m.mode == ModeNormal || m.timeout == 0 {
		return
	}
	m.resetTimeout(m.timeout)
}

// SetOnModeChange sets the callback for mode changes.
func (m *ModalState) SetOnModeChange(fn func(from, to Mode)) {
	m.onModeChange = fn
}

func (m *ModalState) stopTimer() {
	if m.cancelTimer != nil {
		m.cancelTimer()
		m.cancelTimer = nil
	}
}

func (m *ModalState) resetTimeout(timeout time.Duration) {
	m.stopTimer()
	m.timeout = timeout
	if timeout <= 0 {
		return
	}
	m.cancelTimer = m.scheduler.PostAfter(timeout, func() {
		m.cancelTimer = nil
		m.ExitMode()
	})
}
