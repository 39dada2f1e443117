package lifecycle

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/bnema/paneshell/internal/application/port"
	"github.com/bnema/paneshell/internal/domain/entity"
)

// ErrInitFailed wraps failures reported by content during initialization.
var ErrInitFailed = errors.New("content initialization failed")

// Content is the contract every content widget satisfies. The machine calls
// these hooks; the content reports back through the Reporter passed to Start.
type Content interface {
	// Start begins (or retries) initialization. Completion is reported through
	// r, synchronously or later from the main loop.
	Start(r Reporter)
	// Focus moves keyboard focus into the content. Returns false if the widget
	// refused it.
	Focus() bool
	Suspend()
	Resume()
	// Cleanup releases content resources. Called once, after every event
	// subscription tracked by the machine has been released.
	Cleanup()
}

// Reporter is how content signals the outcome of Start.
type Reporter interface {
	Ready()
	Fail(err error)
}

// Event describes a state change. Err is set when To is StateError.
type Event struct {
	LeafID entity.NodeID
	From   State
	To     State
	Err    error
}

// Machine is the lifecycle state machine of one leaf's content widget.
// Invalid transitions are logged and ignored. All methods must be called from
// the main loop.
type Machine struct {
	leafID     entity.NodeID
	content    Content
	scheduler  port.Scheduler
	policy     RetryPolicy
	canSuspend bool
	logger     zerolog.Logger

	state        State
	errorCount   int
	lastErr      error
	pendingFocus bool
	hasFocus     bool
	destroyed    bool
	attempt      int

	cancelRetry func()
	tracked     []func()
	onceReady   []*readyWaiter
	events      Bus[Event]
}

type readyWaiter struct {
	fn       func()
	canceled bool
}

// Option configures a Machine.
type Option func(*Machine)

// WithRetryPolicy overrides DefaultRetryPolicy.
func WithRetryPolicy(p RetryPolicy) Option {
	return func(m *Machine) { m.policy = p }
}

// WithSuspendable sets the capability flag from the content type's metadata.
func WithSuspendable(canSuspend bool) Option {
	return func(m *Machine) { m.canSuspend = canSuspend }
}

// WithLogger sets the logger used for transition diagnostics.
func WithLogger(logger zerolog.Logger) Option {
	return func(m *Machine) { m.logger = logger }
}

// New creates a machine in StateCreated. It panics if scheduler is nil.
func New(leafID entity.NodeID, content Content, scheduler port.Scheduler, opts ...Option) *Machine {
	if scheduler == nil {
		panic("lifecycle.New: scheduler cannot be nil")
	}
	m := &Machine{
		leafID:    leafID,
		content:   content,
		scheduler: scheduler,
		policy:    DefaultRetryPolicy(),
		logger:    zerolog.Nop(),
		state:     StateCreated,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.logger = m.logger.With().Str("pane_id", string(leafID)).Logger()
	return m
}

func (m *Machine) LeafID() entity.NodeID { return m.leafID }
func (m *Machine) State() State          { return m.state }
func (m *Machine) ErrorCount() int       { return m.errorCount }
func (m *Machine) LastError() error      { return m.lastErr }
func (m *Machine) PendingFocus() bool    { return m.pendingFocus }
func (m *Machine) HasFocus() bool        { return m.hasFocus }
func (m *Machine) CanSuspend() bool      { return m.canSuspend }
func (m *Machine) Policy() RetryPolicy   { return m.policy }

// RetriesExhausted reports whether the machine is parked in Error for good and
// must be recreated by its owner.
func (m *Machine) RetriesExhausted() bool {
	return m.state == StateError && !m.policy.ShouldRetry(m.errorCount)
}

// Subscribe registers fn for state-change events.
func (m *Machine) Subscribe(fn func(Event)) (unsubscribe func()) {
	return m.events.Subscribe(fn)
}

// Track hands an external subscription to the machine. It is released first
// thing in Cleanup.
func (m *Machine) Track(unsubscribe func()) {
	if unsubscribe == nil {
		return
	}
	if m.destroyed {
		unsubscribe()
		return
	}
	m.tracked = append(m.tracked, unsubscribe)
}

// OnceReady runs fn once, on the tick after the machine next reaches Ready.
// The returned func cancels the subscription.
func (m *Machine) OnceReady(fn func()) (cancel func()) {
	w := &readyWaiter{fn: fn}
	if !m.destroyed {
		m.onceReady = append(m.onceReady, w)
	}
	return func() { w.canceled = true }
}

func (m *Machine) transition(to State, err error) bool {
	from := m.state
	if !CanTransition(from, to) {
		m.logger.Debug().
			Str("from", string(from)).
			Str("to", string(to)).
			Msg("ignoring invalid lifecycle transition")
		return false
	}
	m.state = to
	m.logger.Trace().Str("from", string(from)).Str("to", string(to)).Msg("lifecycle transition")
	m.events.Publish(Event{LeafID: m.leafID, From: from, To: to, Err: err})
	return true
}

// Initialize moves Created to Initializing and starts the content. From Error
// it retries early, but only while the retry budget lasts; an exhausted
// machine stays in Error until its owner replaces it.
func (m *Machine) Initialize() bool {
	if m.state == StateError {
		if !m.policy.ShouldRetry(m.errorCount) {
			m.logger.Debug().
				Int("error_count", m.errorCount).
				Int("max_retries", m.policy.MaxRetries).
				Msg("ignoring initialize, retries exhausted")
			return false
		}
		if m.cancelRetry != nil {
			m.cancelRetry()
			m.cancelRetry = nil
		}
	}
	return m.start()
}

func (m *Machine) start() bool {
	if !m.transition(StateInitializing, nil) {
		return false
	}
	m.attempt++
	if m.content != nil {
		m.content.Start(reporter{m: m, attempt: m.attempt})
	}
	return true
}

// SetReady moves Initializing or Suspended to Ready. Pending focus and
// OnceReady callbacks are delivered on the next tick.
func (m *Machine) SetReady() bool {
	if !m.transition(StateReady, nil) {
		return false
	}
	m.errorCount = 0
	m.lastErr = nil

	if m.pendingFocus {
		m.scheduler.Post(m.deliverPendingFocus)
	}
	waiters := m.onceReady
	m.onceReady = nil
	for _, w := range waiters {
		m.scheduler.Post(func() {
			if !w.canceled && !m.destroyed {
				w.canceled = true
				w.fn()
			}
		})
	}
	return true
}

func (m *Machine) deliverPendingFocus() {
	if m.destroyed || m.state != StateReady || !m.pendingFocus {
		return
	}
	m.pendingFocus = false
	m.applyFocus()
}

// SetError records a failure. While error_count stays under the retry budget a
// re-initialization is scheduled after the backoff delay.
func (m *Machine) SetError(err error) bool {
	if err == nil {
		err = ErrInitFailed
	} else if !errors.Is(err, ErrInitFailed) {
		err = fmt.Errorf("%w: %w", ErrInitFailed, err)
	}
	if !CanTransition(m.state, StateError) {
		return m.transition(StateError, err)
	}
	// Subscribers of the Error event see the updated count.
	m.errorCount++
	m.lastErr = err
	m.hasFocus = false
	m.pendingFocus = false
	m.transition(StateError, err)
	if m.cancelRetry != nil {
		m.cancelRetry()
		m.cancelRetry = nil
	}

	log := m.logger.Warn().Err(err).Int("error_count", m.errorCount)
	if !m.policy.ShouldRetry(m.errorCount) {
		log.Int("max_retries", m.policy.MaxRetries).Msg("content failed, retries exhausted")
		return true
	}

	delay := m.policy.Delay(m.errorCount)
	log.Dur("retry_in", delay).Msg("content failed, scheduling retry")
	m.cancelRetry = m.scheduler.PostAfter(delay, func() {
		m.cancelRetry = nil
		if m.destroyed || m.state != StateError {
			return
		}
		m.start()
	})
	return true
}

// Suspend parks a Ready widget. Content that is not suspendable stays Ready.
func (m *Machine) Suspend() bool {
	if !m.canSuspend {
		m.logger.Debug().Msg("ignoring suspend, content is not suspendable")
		return false
	}
	if !m.transition(StateSuspended, nil) {
		return false
	}
	m.hasFocus = false
	if m.content != nil {
		m.content.Suspend()
	}
	return true
}

// Resume brings a Suspended widget back to Ready.
func (m *Machine) Resume() bool {
	if m.state != StateSuspended {
		m.logger.Debug().Str("state", string(m.state)).Msg("ignoring resume, not suspended")
		return false
	}
	if m.content != nil {
		m.content.Resume()
	}
	return m.SetReady()
}

// FocusWidget grabs focus in Ready, defers it in Created/Initializing and
// rejects it otherwise.
func (m *Machine) FocusWidget() FocusResult {
	switch {
	case m.state == StateReady:
		m.pendingFocus = false
		m.applyFocus()
		return FocusApplied
	case m.state.IsPending():
		m.pendingFocus = true
		return FocusDeferred
	default:
		m.pendingFocus = false
		return FocusRejected
	}
}

func (m *Machine) applyFocus() {
	if m.content != nil && !m.content.Focus() {
		m.logger.Debug().Msg("content refused focus")
	}
	m.hasFocus = true
}

// Blur records that the widget lost keyboard focus.
func (m *Machine) Blur() {
	m.hasFocus = false
}

// Cleanup tears the widget down: tracked subscriptions are released, then the
// machine moves through Destroying, runs the content hook, and ends Destroyed.
// Safe to call more than once.
func (m *Machine) Cleanup() {
	if m.destroyed {
		return
	}
	m.destroyed = true

	if m.cancelRetry != nil {
		m.cancelRetry()
		m.cancelRetry = nil
	}
	for _, unsubscribe := range m.tracked {
		unsubscribe()
	}
	m.tracked = nil
	for _, w := range m.onceReady {
		w.canceled = true
	}
	m.onceReady = nil
	m.pendingFocus = false
	m.hasFocus = false

	m.transition(StateDestroying, nil)
	if m.content != nil {
		m.content.Cleanup()
	}
	m.transition(StateDestroyed, nil)
	m.events.Clear()
}

// reporter ties a content report to the attempt that produced it, so a late
// report from a superseded attempt is dropped.
type reporter struct {
	m       *Machine
	attempt int
}

func (r reporter) Ready() {
	if r.stale() {
		return
	}
	r.m.SetReady()
}

func (r reporter) Fail(err error) {
	if r.stale() {
		return
	}
	r.m.SetError(err)
}

func (r reporter) stale() bool {
	if r.m.destroyed || r.attempt != r.m.attempt {
		r.m.logger.Debug().Int("attempt", r.attempt).Msg("dropping stale content report")
		return true
	}
	return false
}
