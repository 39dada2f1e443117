// Package lifecycle tracks the readiness of the content widget hosted by each
// leaf, independently of the pane tree topology.
package lifecycle

// State is the readiness phase of a content widget.
type State string

const (
	StateCreated      State = "created"      // Constructed, not yet started
	StateInitializing State = "initializing" // Started, waiting for the content to report back
	StateReady        State = "ready"        // Displayed and focusable
	StateSuspended    State = "suspended"    // Parked; resumes to Ready
	StateError        State = "error"        // Failed; may be retried while under budget
	StateDestroying   State = "destroying"   // Teardown in progress
	StateDestroyed    State = "destroyed"    // Terminal
)

// transitions is the fixed table of legal edges. Error -> Error lets repeated
// failures count against the retry budget.
var transitions = map[State][]State{
	StateCreated:      {StateInitializing, StateDestroying},
	StateInitializing: {StateReady, StateError, StateDestroying},
	StateReady:        {StateSuspended, StateError, StateDestroying},
	StateSuspended:    {StateReady, StateError, StateDestroying},
	StateError:        {StateInitializing, StateError, StateDestroying},
	StateDestroying:   {StateDestroyed},
	StateDestroyed:    nil,
}

// CanTransition reports whether from -> to is in the transition table.
func CanTransition(from, to State) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transition is possible.
func (s State) IsTerminal() bool {
	return s == StateDestroyed
}

// IsPending reports whether the content has not reported readiness yet.
func (s State) IsPending() bool {
	return s == StateCreated || s == StateInitializing
}

// FocusResult tells the caller what FocusWidget did.
type FocusResult int

const (
	FocusApplied  FocusResult = iota // Focus grabbed now
	FocusDeferred                    // Recorded as pending, delivered on Ready
	FocusRejected                    // State does not accept focus
)

func (r FocusResult) String() string {
	switch r {
	case FocusApplied:
		return "applied"
	case FocusDeferred:
		return "deferred"
	default:
		return "rejected"
	}
}
