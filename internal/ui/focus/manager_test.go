package focus_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/paneshell/internal/domain/entity"
	"github.com/bnema/paneshell/internal/ui/focus"
	"github.com/bnema/paneshell/internal/ui/lifecycle"
	"github.com/bnema/paneshell/internal/ui/mainloop"
)

type stubContent struct{ focused int }

func (c *stubContent) Start(lifecycle.Reporter) {}
func (c *stubContent) Focus() bool              { c.focused++; return true }
func (c *stubContent) Suspend()                 {}
func (c *stubContent) Resume()                  {}
func (c *stubContent) Cleanup()                 {}

type harness struct {
	sched    *mainloop.ManualScheduler
	fm       *focus.Manager
	machines map[entity.NodeID]*lifecycle.Machine
	contents map[entity.NodeID]*stubContent
}

func newHarness(opts ...focus.Option) *harness {
	return &harness{
		sched:    mainloop.NewManualScheduler(),
		fm:       focus.NewManager(opts...),
		machines: make(map[entity.NodeID]*lifecycle.Machine),
		contents: make(map[entity.NodeID]*stubContent),
	}
}

// add registers a leaf. Ready leaves are initialized and marked ready,
// others are left Initializing.
func (h *harness) add(id entity.NodeID, ready bool, opts ...lifecycle.Option) *lifecycle.Machine {
	c := &stubContent{}
	m := lifecycle.New(id, c, h.sched, opts...)
	m.Initialize()
	if ready {
		m.SetReady()
	}
	h.machines[id] = m
	h.contents[id] = c
	h.fm.Register(id, m, focus.Policy{})
	return m
}

func TestRequestFocus_UnknownLeafDenied(t *testing.T) {
	h := newHarness()

	assert.Equal(t, focus.OutcomeDenied, h.fm.RequestFocus("ghost", focus.PriorityCritical, focus.ReasonProgrammatic))
	assert.Empty(t, h.fm.Current())
}

func TestRequestFocus_ReadyLeafAppliedAndPreviousPushed(t *testing.T) {
	h := newHarness()
	h.add("a", true)
	h.add("b", true)

	require.Equal(t, focus.OutcomeApplied, h.fm.RequestFocus("a", focus.PriorityNormal, focus.ReasonMouse))
	require.Equal(t, focus.OutcomeApplied, h.fm.RequestFocus("b", focus.PriorityNormal, focus.ReasonMouse))

	assert.Equal(t, entity.NodeID("b"), h.fm.Current())
	assert.Equal(t, []entity.NodeID{"a"}, h.fm.History())
	assert.False(t, h.machines["a"].HasFocus())
	assert.True(t, h.machines["b"].HasFocus())
	assert.Equal(t, 1, h.fm.FocusCount("b"))
}

func TestRequestFocus_QueuedUntilReady(t *testing.T) {
	// Arrange
	h := newHarness()
	m := h.add("c", false)

	// Act
	outcome := h.fm.RequestFocus("c", focus.PriorityNormal, focus.ReasonSplit)

	// Assert
	require.Equal(t, focus.OutcomeQueued, outcome)
	require.Len(t, h.fm.Queue(), 1)
	assert.Equal(t, 0, h.contents["c"].focused)

	m.SetReady()
	h.sched.Tick()

	assert.Equal(t, entity.NodeID("c"), h.fm.Current(), "focus delivered without a second request")
	assert.Equal(t, 1, h.contents["c"].focused)
	assert.Empty(t, h.fm.Queue())

	h.sched.Drain(5)
	assert.Equal(t, 1, h.contents["c"].focused)
}

func TestRequestFocus_QueueOrderedByPriorityThenInsertion(t *testing.T) {
	h := newHarness()
	h.add("a", false)
	h.add("b", false)
	h.add("c", false)

	h.fm.RequestFocus("a", focus.PriorityNormal, focus.ReasonProgrammatic)
	h.fm.RequestFocus("b", focus.PriorityHigh, focus.ReasonProgrammatic)
	h.fm.RequestFocus("c", focus.PriorityNormal, focus.ReasonProgrammatic)

	var order []entity.NodeID
	for _, req := range h.fm.Queue() {
		order = append(order, req.LeafID)
	}
	assert.Equal(t, []entity.NodeID{"b", "a", "c"}, order)
}

func TestRequestFocus_OneQueueEntryPerLeaf(t *testing.T) {
	h := newHarness()
	h.add("a", false)

	h.fm.RequestFocus("a", focus.PriorityLow, focus.ReasonProgrammatic)
	h.fm.RequestFocus("a", focus.PriorityCritical, focus.ReasonKeyboard)
	h.fm.RequestFocus("a", focus.PriorityNormal, focus.ReasonMouse)

	queue := h.fm.Queue()
	require.Len(t, queue, 1)
	assert.Equal(t, focus.PriorityCritical, queue[0].Priority)
	assert.Equal(t, focus.ReasonKeyboard, queue[0].Reason)
}

func TestRequestFocus_HighestReadyRequestWins(t *testing.T) {
	h := newHarness()
	a := h.add("a", false)
	b := h.add("b", false)
	h.fm.RequestFocus("a", focus.PriorityLow, focus.ReasonProgrammatic)
	h.fm.RequestFocus("b", focus.PriorityHigh, focus.ReasonProgrammatic)

	a.SetReady()
	b.SetReady()
	h.sched.Drain(5)

	assert.Equal(t, entity.NodeID("b"), h.fm.Current())
	assert.Equal(t, 0, h.contents["a"].focused)
	assert.Equal(t, 1, h.contents["b"].focused)
	assert.Empty(t, h.fm.Queue())
}

func TestRequestFocus_DeniedStates(t *testing.T) {
	h := newHarness()
	m := h.add("err", false, lifecycle.WithRetryPolicy(lifecycle.RetryPolicy{MaxRetries: 0}))
	m.SetError(errors.New("boom"))

	assert.Equal(t, focus.OutcomeDenied, h.fm.RequestFocus("err", focus.PriorityCritical, focus.ReasonProgrammatic))

	s := h.add("sus", true, lifecycle.WithSuspendable(true))
	require.True(t, s.Suspend())
	assert.Equal(t, focus.OutcomeDenied, h.fm.RequestFocus("sus", focus.PriorityNormal, focus.ReasonProgrammatic))
	assert.Empty(t, h.fm.Queue())
}

func TestRequestFocus_Policy(t *testing.T) {
	h := newHarness()
	h.add("a", true)
	h.add("b", true)
	h.fm.SetPolicy("a", focus.Policy{MaxFocusCount: 1})
	h.fm.SetPolicy("b", focus.Policy{Disabled: true})

	assert.Equal(t, focus.OutcomeDenied, h.fm.RequestFocus("b", focus.PriorityNormal, focus.ReasonMouse))
	assert.Equal(t, focus.OutcomeApplied, h.fm.RequestFocus("a", focus.PriorityNormal, focus.ReasonMouse))

	h.add("c", true)
	h.fm.RequestFocus("c", focus.PriorityNormal, focus.ReasonMouse)
	assert.Equal(t, focus.OutcomeDenied, h.fm.RequestFocus("a", focus.PriorityNormal, focus.ReasonMouse))
	assert.Equal(t, entity.NodeID("c"), h.fm.Current())
}

func TestRequestFocus_Validator(t *testing.T) {
	h := newHarness()
	h.add("a", true)
	h.fm.AddValidator(func(req focus.Request) error {
		if req.Reason == focus.ReasonMouse {
			return errors.New("pointer focus disabled")
		}
		return nil
	})

	assert.Equal(t, focus.OutcomeDenied, h.fm.RequestFocus("a", focus.PriorityNormal, focus.ReasonMouse))
	assert.Equal(t, focus.OutcomeApplied, h.fm.RequestFocus("a", focus.PriorityNormal, focus.ReasonKeyboard))
}

func TestRestorePrevious(t *testing.T) {
	h := newHarness()
	h.add("a", true)
	h.add("b", true)
	h.add("c", true)
	for _, id := range []entity.NodeID{"a", "b", "c"} {
		h.fm.RequestFocus(id, focus.PriorityNormal, focus.ReasonKeyboard)
	}
	require.Equal(t, []entity.NodeID{"a", "b"}, h.fm.History())

	require.True(t, h.fm.RestorePrevious())
	assert.Equal(t, entity.NodeID("b"), h.fm.Current())
	assert.Equal(t, []entity.NodeID{"a"}, h.fm.History(), "restoring does not push")

	require.True(t, h.fm.RestorePrevious())
	assert.Equal(t, entity.NodeID("a"), h.fm.Current())

	assert.False(t, h.fm.RestorePrevious())
}

func TestRestorePrevious_DropsStaleEntries(t *testing.T) {
	h := newHarness()
	a := h.add("a", true, lifecycle.WithSuspendable(true))
	h.add("b", true)
	h.add("c", true)
	h.fm.RequestFocus("c", focus.PriorityNormal, focus.ReasonKeyboard)
	h.fm.RequestFocus("a", focus.PriorityNormal, focus.ReasonKeyboard)
	h.fm.RequestFocus("b", focus.PriorityNormal, focus.ReasonKeyboard)
	require.Equal(t, []entity.NodeID{"c", "a"}, h.fm.History())

	require.True(t, a.Suspend())
	assert.False(t, h.fm.RestorePrevious(), "suspended entry is dropped")
	assert.Equal(t, []entity.NodeID{"c"}, h.fm.History())
	assert.Equal(t, entity.NodeID("b"), h.fm.Current())

	h.fm.Unregister("c")
	assert.Empty(t, h.fm.History())
	assert.False(t, h.fm.RestorePrevious())
}

func TestHistory_BoundedOldestEvicted(t *testing.T) {
	h := newHarness(focus.WithHistorySize(2))
	for _, id := range []entity.NodeID{"a", "b", "c", "d"} {
		h.add(id, true)
		h.fm.RequestFocus(id, focus.PriorityNormal, focus.ReasonKeyboard)
	}

	assert.Equal(t, []entity.NodeID{"b", "c"}, h.fm.History())
}

func TestCycle_GlobalWrapsAndSkipsNotReady(t *testing.T) {
	h := newHarness()
	h.add("a", true)
	h.add("b", false)
	h.add("c", true)
	h.fm.RequestFocus("a", focus.PriorityNormal, focus.ReasonKeyboard)

	require.True(t, h.fm.Cycle("", true))
	assert.Equal(t, entity.NodeID("c"), h.fm.Current())

	require.True(t, h.fm.Cycle("", true))
	assert.Equal(t, entity.NodeID("a"), h.fm.Current())

	require.True(t, h.fm.Cycle("", false))
	assert.Equal(t, entity.NodeID("c"), h.fm.Current())
}

func TestCycle_UsesOrderFunc(t *testing.T) {
	order := []entity.NodeID{"c", "b", "a"}
	h := newHarness(focus.WithOrder(func() []entity.NodeID { return order }))
	h.add("a", true)
	h.add("b", true)
	h.add("c", true)
	h.fm.RequestFocus("c", focus.PriorityNormal, focus.ReasonKeyboard)

	require.True(t, h.fm.Cycle("", true))
	assert.Equal(t, entity.NodeID("b"), h.fm.Current())
}

func TestCycle_NoReadyLeafIsNoop(t *testing.T) {
	h := newHarness()
	h.add("a", false)

	assert.False(t, h.fm.Cycle("", true))
	assert.Empty(t, h.fm.Current())
}

func TestCycle_Group(t *testing.T) {
	h := newHarness()
	for _, id := range []entity.NodeID{"a", "b", "c", "d"} {
		h.add(id, true)
	}
	h.fm.AddToGroup("editors", "b")
	h.fm.AddToGroup("editors", "d")
	h.fm.AddToGroup("editors", "b")
	require.Equal(t, []entity.NodeID{"b", "d"}, h.fm.Group("editors"))

	require.True(t, h.fm.Cycle("editors", true))
	assert.Equal(t, entity.NodeID("b"), h.fm.Current(), "outside the group, forward starts at the first member")

	require.True(t, h.fm.Cycle("editors", true))
	assert.Equal(t, entity.NodeID("d"), h.fm.Current())

	h.fm.RemoveFromGroup("editors", "b")
	assert.False(t, h.fm.Cycle("editors", true), "only the focused member is left")
}

func TestUnregister_QueuedLeafLeavesQueue(t *testing.T) {
	h := newHarness()
	m := h.add("a", false)
	h.fm.RequestFocus("a", focus.PriorityNormal, focus.ReasonSplit)

	h.fm.Unregister("a")
	assert.Empty(t, h.fm.Queue())

	m.SetReady()
	h.sched.Drain(5)
	assert.Empty(t, h.fm.Current())
	assert.Equal(t, 0, h.contents["a"].focused)
}

func TestUnregister_CurrentClearsFocus(t *testing.T) {
	h := newHarness()
	h.add("a", true)
	h.fm.RequestFocus("a", focus.PriorityNormal, focus.ReasonKeyboard)

	h.fm.Unregister("a")

	assert.Empty(t, h.fm.Current())
	assert.False(t, h.fm.IsRegistered("a"))
}

func TestOnFocusChanged(t *testing.T) {
	h := newHarness()
	h.add("a", true)
	h.add("b", true)
	var changes []focus.Change
	unsubscribe := h.fm.OnFocusChanged(func(c focus.Change) { changes = append(changes, c) })

	h.fm.RequestFocus("a", focus.PriorityNormal, focus.ReasonKeyboard)
	h.fm.RequestFocus("a", focus.PriorityNormal, focus.ReasonKeyboard)
	h.fm.RequestFocus("b", focus.PriorityNormal, focus.ReasonMouse)
	unsubscribe()
	h.fm.RequestFocus("a", focus.PriorityNormal, focus.ReasonKeyboard)

	assert.Equal(t, []focus.Change{
		{From: "", To: "a", Reason: focus.ReasonKeyboard},
		{From: "a", To: "b", Reason: focus.ReasonMouse},
	}, changes)
}
