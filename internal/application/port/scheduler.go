// Package port defines interfaces the application layer needs from the outside.
package port

import "time"

// Scheduler defers work onto the UI main loop. Implementations must never run
// fn synchronously inside Post or PostAfter.
type Scheduler interface {
	// Post runs fn on a later main-loop iteration.
	Post(fn func())
	// PostAfter runs fn once after delay. The returned func cancels the call if
	// it has not run yet; calling it afterwards is a no-op.
	PostAfter(delay time.Duration, fn func()) (cancel func())
}
