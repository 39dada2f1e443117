package lifecycle_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/paneshell/internal/ui/lifecycle"
	"github.com/bnema/paneshell/internal/ui/mainloop"
)

// fakeContent records hook calls. Reporter is kept so the test decides when
// initialization completes.
type fakeContent struct {
	starts   int
	focus    int
	suspends int
	resumes  int
	cleanups int
	reporter lifecycle.Reporter
	onStart  func(r lifecycle.Reporter)
	// order records hook names for ordering assertions.
	order *[]string
}

func (c *fakeContent) Start(r lifecycle.Reporter) {
	c.starts++
	c.reporter = r
	if c.onStart != nil {
		c.onStart(r)
	}
}
func (c *fakeContent) Focus() bool { c.focus++; return true }
func (c *fakeContent) Suspend()    { c.suspends++ }
func (c *fakeContent) Resume()     { c.resumes++ }
func (c *fakeContent) Cleanup() {
	c.cleanups++
	if c.order != nil {
		*c.order = append(*c.order, "cleanup")
	}
}

func newMachine(t *testing.T, opts ...lifecycle.Option) (*lifecycle.Machine, *fakeContent, *mainloop.ManualScheduler) {
	t.Helper()
	sched := mainloop.NewManualScheduler()
	content := &fakeContent{}
	return lifecycle.New("leaf-1", content, sched, opts...), content, sched
}

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to lifecycle.State
		want     bool
	}{
		{lifecycle.StateCreated, lifecycle.StateInitializing, true},
		{lifecycle.StateCreated, lifecycle.StateReady, false},
		{lifecycle.StateInitializing, lifecycle.StateReady, true},
		{lifecycle.StateInitializing, lifecycle.StateError, true},
		{lifecycle.StateReady, lifecycle.StateSuspended, true},
		{lifecycle.StateSuspended, lifecycle.StateReady, true},
		{lifecycle.StateError, lifecycle.StateInitializing, true},
		{lifecycle.StateError, lifecycle.StateReady, false},
		{lifecycle.StateReady, lifecycle.StateDestroying, true},
		{lifecycle.StateDestroying, lifecycle.StateDestroyed, true},
		{lifecycle.StateDestroyed, lifecycle.StateInitializing, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, lifecycle.CanTransition(tt.from, tt.to), "%s -> %s", tt.from, tt.to)
	}
}

func TestMachine_HappyPath(t *testing.T) {
	m, content, _ := newMachine(t)
	var events []lifecycle.Event
	m.Subscribe(func(ev lifecycle.Event) { events = append(events, ev) })

	require.True(t, m.Initialize())
	assert.Equal(t, lifecycle.StateInitializing, m.State())
	assert.Equal(t, 1, content.starts)

	content.reporter.Ready()
	assert.Equal(t, lifecycle.StateReady, m.State())

	require.Len(t, events, 2)
	assert.Equal(t, lifecycle.Event{LeafID: "leaf-1", From: lifecycle.StateCreated, To: lifecycle.StateInitializing}, events[0])
	assert.Equal(t, lifecycle.StateReady, events[1].To)
}

func TestMachine_InvalidTransitionIsNoop(t *testing.T) {
	m, _, _ := newMachine(t)

	assert.False(t, m.SetReady(), "Created -> Ready is not in the table")
	assert.False(t, m.Resume())
	assert.False(t, m.SetError(errors.New("boom")), "Created -> Error is not in the table")

	assert.Equal(t, lifecycle.StateCreated, m.State())
	assert.Equal(t, 0, m.ErrorCount())
}

func TestMachine_FocusWhileCreatedIsDeferredToNextTick(t *testing.T) {
	m, content, sched := newMachine(t)

	assert.Equal(t, lifecycle.FocusDeferred, m.FocusWidget())
	assert.True(t, m.PendingFocus())
	assert.Equal(t, 0, content.focus, "never synchronous while Created")

	m.Initialize()
	content.reporter.Ready()
	assert.Equal(t, 0, content.focus, "not delivered inside the ready callback")

	sched.Tick()
	assert.Equal(t, 1, content.focus)
	assert.True(t, m.HasFocus())
	assert.False(t, m.PendingFocus())

	sched.Drain(5)
	assert.Equal(t, 1, content.focus, "delivered exactly once")
}

func TestMachine_FocusWhenReadyIsImmediate(t *testing.T) {
	m, content, _ := newMachine(t)
	m.Initialize()
	content.reporter.Ready()

	assert.Equal(t, lifecycle.FocusApplied, m.FocusWidget())
	assert.Equal(t, 1, content.focus)
	assert.True(t, m.HasFocus())
}

func TestMachine_FocusRejectedInOtherStates(t *testing.T) {
	m, content, _ := newMachine(t, lifecycle.WithRetryPolicy(lifecycle.RetryPolicy{MaxRetries: 0}))
	m.Initialize()
	content.reporter.Fail(errors.New("no shell"))

	assert.Equal(t, lifecycle.FocusRejected, m.FocusWidget())
	assert.False(t, m.PendingFocus())
	assert.Equal(t, 0, content.focus)
}

func TestMachine_RetryWithBackoff(t *testing.T) {
	policy := lifecycle.RetryPolicy{MaxRetries: 3, BaseDelay: 100 * time.Millisecond, BackoffFactor: 2}
	m, content, sched := newMachine(t, lifecycle.WithRetryPolicy(policy))
	content.onStart = func(r lifecycle.Reporter) { r.Fail(errors.New("boom")) }

	m.Initialize()
	assert.Equal(t, lifecycle.StateError, m.State())
	assert.Equal(t, 1, m.ErrorCount())
	assert.True(t, errors.Is(m.LastError(), lifecycle.ErrInitFailed))

	// First retry after base delay.
	sched.Advance(99 * time.Millisecond)
	assert.Equal(t, 1, content.starts)
	sched.Advance(time.Millisecond)
	assert.Equal(t, 2, content.starts)
	assert.Equal(t, 2, m.ErrorCount())

	// Second retry after base*factor.
	next, ok := sched.NextDeadline()
	require.True(t, ok)
	assert.Equal(t, 200*time.Millisecond, next)
	sched.Advance(200 * time.Millisecond)
	assert.Equal(t, 3, content.starts)

	// Budget exhausted.
	assert.Equal(t, 3, m.ErrorCount())
	assert.Equal(t, 0, sched.Timers())
	assert.True(t, m.RetriesExhausted())
	sched.Advance(time.Hour)
	assert.Equal(t, 3, content.starts)
	assert.Equal(t, lifecycle.StateError, m.State())
}

func TestMachine_ConsecutiveSetErrorStopsAtBudget(t *testing.T) {
	m, _, sched := newMachine(t)
	m.Initialize()

	for range m.Policy().MaxRetries {
		m.SetError(errors.New("boom"))
	}

	assert.Equal(t, m.Policy().MaxRetries, m.ErrorCount())
	assert.Equal(t, 0, sched.Timers(), "no retry scheduled once the budget is spent")
}

func TestMachine_InitializeRejectedOnceRetriesExhausted(t *testing.T) {
	m, content, sched := newMachine(t, lifecycle.WithRetryPolicy(lifecycle.RetryPolicy{
		MaxRetries:    2,
		BaseDelay:     10 * time.Millisecond,
		BackoffFactor: 2,
	}))
	content.onStart = func(r lifecycle.Reporter) { r.Fail(errors.New("boom")) }

	require.True(t, m.Initialize())
	sched.Advance(10 * time.Millisecond)
	require.True(t, m.RetriesExhausted())
	require.Equal(t, 2, content.starts)

	assert.False(t, m.Initialize())
	assert.Equal(t, lifecycle.StateError, m.State())
	assert.Equal(t, 2, content.starts)
	assert.Equal(t, 2, m.ErrorCount())
}

func TestMachine_InitializeRetriesEarlyUnderBudget(t *testing.T) {
	m, content, sched := newMachine(t, lifecycle.WithRetryPolicy(lifecycle.RetryPolicy{
		MaxRetries:    3,
		BaseDelay:     100 * time.Millisecond,
		BackoffFactor: 2,
	}))
	m.Initialize()
	content.reporter.Fail(errors.New("flaky"))
	require.Equal(t, 1, sched.Timers())

	require.True(t, m.Initialize())

	assert.Equal(t, lifecycle.StateInitializing, m.State())
	assert.Equal(t, 2, content.starts)
	assert.Equal(t, 0, sched.Timers(), "pending retry canceled")
}

func TestMachine_ReadyResetsErrorCount(t *testing.T) {
	m, content, sched := newMachine(t)
	m.Initialize()
	content.reporter.Fail(errors.New("flaky"))
	sched.Advance(time.Second)
	require.Equal(t, lifecycle.StateInitializing, m.State())

	content.reporter.Ready()

	assert.Equal(t, lifecycle.StateReady, m.State())
	assert.Equal(t, 0, m.ErrorCount())
	assert.NoError(t, m.LastError())
}

func TestMachine_StaleReportIsDropped(t *testing.T) {
	m, content, sched := newMachine(t)
	m.Initialize()
	first := content.reporter
	first.Fail(errors.New("boom"))
	sched.Advance(time.Second) // retry, new attempt

	first.Ready()

	assert.Equal(t, lifecycle.StateInitializing, m.State())
}

func TestMachine_SuspendRequiresCapability(t *testing.T) {
	t.Run("not suspendable", func(t *testing.T) {
		m, content, _ := newMachine(t)
		m.Initialize()
		content.reporter.Ready()

		assert.False(t, m.Suspend())
		assert.Equal(t, lifecycle.StateReady, m.State())
		assert.Equal(t, 0, content.suspends)
	})

	t.Run("suspendable", func(t *testing.T) {
		m, content, _ := newMachine(t, lifecycle.WithSuspendable(true))
		m.Initialize()
		content.reporter.Ready()

		require.True(t, m.Suspend())
		assert.Equal(t, lifecycle.StateSuspended, m.State())
		assert.Equal(t, 1, content.suspends)

		require.True(t, m.Resume())
		assert.Equal(t, lifecycle.StateReady, m.State())
		assert.Equal(t, 1, content.resumes)
	})
}

func TestMachine_OnceReadyFiresOnceOnNextTick(t *testing.T) {
	m, content, sched := newMachine(t)
	calls := 0
	m.OnceReady(func() { calls++ })
	canceled := 0
	cancel := m.OnceReady(func() { canceled++ })
	cancel()

	m.Initialize()
	content.reporter.Ready()
	assert.Equal(t, 0, calls)

	sched.Tick()
	assert.Equal(t, 1, calls)
	assert.Equal(t, 0, canceled)

	sched.Drain(5)
	assert.Equal(t, 1, calls)
}

func TestMachine_CleanupReleasesSubscriptionsBeforeContentHook(t *testing.T) {
	m, content, sched := newMachine(t)
	var order []string
	content.order = &order
	m.Track(func() { order = append(order, "unsubscribe") })
	m.Subscribe(func(ev lifecycle.Event) { order = append(order, string(ev.To)) })

	m.Initialize()
	content.reporter.Fail(errors.New("boom"))
	order = order[:0]

	m.Cleanup()

	assert.Equal(t, []string{"unsubscribe", "destroying", "cleanup", "destroyed"}, order)
	assert.Equal(t, lifecycle.StateDestroyed, m.State())
	assert.Equal(t, 0, sched.Timers(), "pending retry canceled")

	m.Cleanup()
	assert.Equal(t, 1, content.cleanups)
}

func TestMachine_RetryAfterCleanupIsGuarded(t *testing.T) {
	m, content, sched := newMachine(t)
	m.Initialize()
	content.reporter.Fail(errors.New("boom"))
	late := content.reporter

	m.Cleanup()
	sched.Advance(time.Hour)
	late.Ready()

	assert.Equal(t, 1, content.starts)
	assert.Equal(t, lifecycle.StateDestroyed, m.State())
}

func TestMachine_TrackAfterCleanupReleasesImmediately(t *testing.T) {
	m, _, _ := newMachine(t)
	m.Cleanup()

	released := false
	m.Track(func() { released = true })

	assert.True(t, released)
}

func TestRetryPolicy_Delay(t *testing.T) {
	p := lifecycle.RetryPolicy{MaxRetries: 5, BaseDelay: 250 * time.Millisecond, BackoffFactor: 3}

	assert.Equal(t, 250*time.Millisecond, p.Delay(1))
	assert.Equal(t, 750*time.Millisecond, p.Delay(2))
	assert.Equal(t, 2250*time.Millisecond, p.Delay(3))
	assert.Equal(t, 250*time.Millisecond, p.Delay(0))
}

func TestBus_UnsubscribeDuringPublish(t *testing.T) {
	var bus lifecycle.Bus[int]
	var got []int
	var unsubscribe func()
	unsubscribe = bus.Subscribe(func(v int) {
		got = append(got, v)
		unsubscribe()
	})
	bus.Subscribe(func(v int) { got = append(got, v*10) })

	bus.Publish(1)
	bus.Publish(2)

	assert.Equal(t, []int{1, 10, 20}, got)
	assert.Equal(t, 1, bus.Len())
}
