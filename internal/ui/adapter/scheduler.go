// Package adapter provides UI-layer adapters that bridge the pane shell core to GTK.
package adapter

import (
	"sync/atomic"
	"time"

	"github.com/diamondburned/gotk4/pkg/glib/v2"

	"github.com/bnema/paneshell/internal/application/port"
)

// GLibScheduler posts work onto the GLib main loop.
// It is safe to call from any goroutine.
type GLibScheduler struct{}

var _ port.Scheduler = GLibScheduler{}

// NewGLibScheduler returns a scheduler backed by the default main context.
func NewGLibScheduler() GLibScheduler {
	return GLibScheduler{}
}

// Post runs fn from an idle source on a later main-loop iteration.
func (GLibScheduler) Post(fn func()) {
	if fn == nil {
		return
	}
	glib.IdleAdd(func() bool {
		fn()
		return false // one-shot
	})
}

// PostAfter runs fn from a timeout source after delay.
func (GLibScheduler) PostAfter(delay time.Duration, fn func()) func() {
	if fn == nil {
		return func() {}
	}

	// done guards against removing a source GLib already destroyed,
	// which logs a critical warning.
	var done atomic.Bool
	handle := glib.TimeoutAdd(uint(delay.Milliseconds()), func() bool {
		if done.CompareAndSwap(false, true) {
			fn()
		}
		return false
	})

	return func() {
		if done.CompareAndSwap(false, true) {
			glib.SourceRemove(handle)
		}
	}
}
