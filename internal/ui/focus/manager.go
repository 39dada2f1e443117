// Package focus arbitrates keyboard focus between panes: priority queueing for
// panes that are not ready yet, a bounded history, named groups and cycling,
// and geometric navigation.
package focus

import (
	"container/heap"
	"fmt"
	"slices"
	"time"

	"github.com/rs/zerolog"

	"github.com/bnema/paneshell/internal/domain/entity"
	"github.com/bnema/paneshell/internal/ui/lifecycle"
)

// DefaultHistorySize is the focus history capacity when none is configured.
const DefaultHistorySize = 32

// Outcome is the result of a focus request.
type Outcome int

const (
	OutcomeDenied Outcome = iota
	OutcomeApplied
	OutcomeQueued
)

func (o Outcome) String() string {
	switch o {
	case OutcomeApplied:
		return "applied"
	case OutcomeQueued:
		return "queued"
	default:
		return "denied"
	}
}

// Target is the focusable side of a pane, satisfied by *lifecycle.Machine.
type Target interface {
	State() lifecycle.State
	FocusWidget() lifecycle.FocusResult
	Blur()
	// OnceReady runs fn once on the tick after the target reaches Ready.
	OnceReady(fn func()) (cancel func())
}

// Policy limits focus for a single leaf.
type Policy struct {
	Disabled bool
	// MaxFocusCount caps how many times the leaf may receive focus. Zero means
	// unlimited.
	MaxFocusCount int
}

// Validator inspects a request before it is applied or queued. A non-nil error
// denies the request.
type Validator func(req Request) error

// Change is published after focus moves.
type Change struct {
	From   entity.NodeID
	To     entity.NodeID
	Reason Reason
}

type registration struct {
	target      Target
	policy      Policy
	focusCount  int
	queued      *Request
	cancelReady func()
}

// Manager owns current focus, the pending queue and the focus history.
// It must be used from the main loop only.
type Manager struct {
	logger  zerolog.Logger
	now     func() time.Time
	order   func() []entity.NodeID
	entries map[entity.NodeID]*registration
	// registered keeps registration order for global cycling when no order
	// func is set.
	registered []entity.NodeID

	current    entity.NodeID
	history    *RingBuffer[entity.NodeID]
	queue      requestQueue
	seq        uint64
	groups     map[string][]entity.NodeID
	validators []Validator
	changes    lifecycle.Bus[Change]
}

// Option configures a Manager.
type Option func(*Manager)

// WithHistorySize sets the focus history capacity.
func WithHistorySize(n int) Option {
	return func(m *Manager) { m.history = NewRingBuffer[entity.NodeID](n) }
}

// WithLogger sets the manager logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(m *Manager) { m.logger = logger }
}

// WithClock overrides the request timestamp source.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) { m.now = now }
}

// WithOrder sets the global leaf order used by Cycle when no group is given,
// typically the pane tree's traversal order.
func WithOrder(order func() []entity.NodeID) Option {
	return func(m *Manager) { m.order = order }
}

// NewManager creates a focus manager.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		logger:  zerolog.Nop(),
		now:     time.Now,
		entries: make(map[entity.NodeID]*registration),
		groups:  make(map[string][]entity.NodeID),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.history == nil {
		m.history = NewRingBuffer[entity.NodeID](DefaultHistorySize)
	}
	return m
}

// Register makes a leaf focusable. Registering an id again replaces its target
// and drops any request queued for the old one.
func (m *Manager) Register(id entity.NodeID, target Target, policy Policy) {
	if existing, ok := m.entries[id]; ok {
		m.dequeue(existing)
		existing.target = target
		existing.policy = policy
		return
	}
	m.entries[id] = &registration{target: target, policy: policy}
	m.registered = append(m.registered, id)
}

// Unregister forgets a leaf. It leaves the queue, the history and every group.
// If it held focus, current focus becomes empty.
func (m *Manager) Unregister(id entity.NodeID) {
	reg, ok := m.entries[id]
	if !ok {
		return
	}
	m.dequeue(reg)
	delete(m.entries, id)
	m.registered = slices.DeleteFunc(m.registered, func(x entity.NodeID) bool { return x == id })
	m.history.Remove(func(x entity.NodeID) bool { return x == id })
	for name, members := range m.groups {
		m.groups[name] = slices.DeleteFunc(members, func(x entity.NodeID) bool { return x == id })
	}
	if m.current == id {
		m.current = ""
	}
}

// IsRegistered reports whether id is known to the manager.
func (m *Manager) IsRegistered(id entity.NodeID) bool {
	_, ok := m.entries[id]
	return ok
}

// SetPolicy replaces the policy of a registered leaf.
func (m *Manager) SetPolicy(id entity.NodeID, policy Policy) bool {
	reg, ok := m.entries[id]
	if !ok {
		return false
	}
	reg.policy = policy
	return true
}

// AddValidator adds a request validator.
func (m *Manager) AddValidator(v Validator) {
	m.validators = append(m.validators, v)
}

// OnFocusChanged subscribes to focus changes.
func (m *Manager) OnFocusChanged(fn func(Change)) (unsubscribe func()) {
	return m.changes.Subscribe(fn)
}

// Current returns the focused leaf, or "" when nothing holds focus.
func (m *Manager) Current() entity.NodeID { return m.current }

// History returns the focus history, oldest first.
func (m *Manager) History() []entity.NodeID { return m.history.GetAll() }

// Queue returns the pending requests in service order.
func (m *Manager) Queue() []Request { return m.queue.snapshot() }

// FocusCount returns how many times id received focus.
func (m *Manager) FocusCount(id entity.NodeID) int {
	if reg, ok := m.entries[id]; ok {
		return reg.focusCount
	}
	return 0
}

// RequestFocus asks for focus on a leaf. Ready leaves are focused at once;
// leaves still starting are queued until they report ready.
func (m *Manager) RequestFocus(id entity.NodeID, priority Priority, reason Reason) Outcome {
	m.seq++
	req := &Request{
		LeafID:    id,
		Priority:  priority,
		Reason:    reason,
		Timestamp: m.now(),
		seq:       m.seq,
		index:     -1,
	}

	reg, err := m.admit(req)
	if err != nil {
		m.deny(req, err)
		return OutcomeDenied
	}

	state := reg.target.State()
	switch {
	case state == lifecycle.StateReady:
		if !m.apply(req, reg, true) {
			return OutcomeDenied
		}
		return OutcomeApplied
	case state.IsPending():
		m.enqueue(req, reg)
		return OutcomeQueued
	default:
		m.deny(req, fmt.Errorf("leaf is %s", state))
		return OutcomeDenied
	}
}

func (m *Manager) admit(req *Request) (*registration, error) {
	reg, ok := m.entries[req.LeafID]
	if !ok {
		return nil, fmt.Errorf("leaf %q: %w", req.LeafID, entity.ErrNotFound)
	}
	if reg.policy.Disabled {
		return nil, fmt.Errorf("focus disabled by policy")
	}
	if reg.policy.MaxFocusCount > 0 && reg.focusCount >= reg.policy.MaxFocusCount {
		return nil, fmt.Errorf("max focus count %d reached", reg.policy.MaxFocusCount)
	}
	for _, v := range m.validators {
		if err := v(*req); err != nil {
			return nil, fmt.Errorf("validator: %w", err)
		}
	}
	return reg, nil
}

func (m *Manager) deny(req *Request, err error) {
	m.logger.Debug().
		Err(err).
		Str("pane_id", string(req.LeafID)).
		Str("priority", req.Priority.String()).
		Str("reason", string(req.Reason)).
		Msg("focus request denied")
}

// enqueue keeps at most one request per leaf; a higher priority upgrades the
// existing entry in place.
func (m *Manager) enqueue(req *Request, reg *registration) {
	if existing := reg.queued; existing != nil {
		if req.Priority > existing.Priority {
			existing.Priority = req.Priority
			existing.Reason = req.Reason
			existing.Timestamp = req.Timestamp
			heap.Fix(&m.queue, existing.index)
		}
		return
	}

	heap.Push(&m.queue, req)
	reg.queued = req
	id := req.LeafID
	reg.cancelReady = reg.target.OnceReady(func() { m.onReady(id) })

	m.logger.Debug().
		Str("pane_id", string(id)).
		Str("priority", req.Priority.String()).
		Int("queue_len", m.queue.Len()).
		Msg("focus request queued")
}

func (m *Manager) dequeue(reg *registration) {
	if reg.cancelReady != nil {
		reg.cancelReady()
		reg.cancelReady = nil
	}
	if reg.queued != nil {
		m.queue.remove(reg.queued)
		reg.queued = nil
	}
}

// onReady serves the queue once a queued leaf becomes ready. Every queued
// leaf that is ready by now competes; the highest priority wins and the other
// ready entries are dropped as superseded.
func (m *Manager) onReady(id entity.NodeID) {
	reg, ok := m.entries[id]
	if !ok || reg.queued == nil {
		return
	}
	reg.cancelReady = nil

	var ready []*Request
	var waiting []*Request
	for m.queue.Len() > 0 {
		req := heap.Pop(&m.queue).(*Request)
		r := m.entries[req.LeafID]
		if r != nil && r.target.State() == lifecycle.StateReady {
			ready = append(ready, req)
		} else {
			waiting = append(waiting, req)
		}
	}
	for _, req := range waiting {
		heap.Push(&m.queue, req)
	}
	if len(ready) == 0 {
		return
	}

	winner := ready[0]
	for _, req := range ready[1:] {
		r := m.entries[req.LeafID]
		m.dequeue(r)
		m.logger.Debug().
			Str("pane_id", string(req.LeafID)).
			Str("winner", string(winner.LeafID)).
			Msg("queued focus request superseded")
	}

	wreg := m.entries[winner.LeafID]
	wreg.queued = nil
	if wreg.cancelReady != nil {
		wreg.cancelReady()
		wreg.cancelReady = nil
	}
	if _, err := m.admit(winner); err != nil {
		m.deny(winner, err)
		return
	}
	m.apply(winner, wreg, true)
}

func (m *Manager) apply(req *Request, reg *registration, pushHistory bool) bool {
	if res := reg.target.FocusWidget(); res != lifecycle.FocusApplied {
		m.logger.Debug().Str("pane_id", string(req.LeafID)).Msg("target refused focus")
		return false
	}

	prev := m.current
	if prev == req.LeafID {
		return true
	}
	if prev != "" {
		if pr, ok := m.entries[prev]; ok {
			pr.target.Blur()
			if pushHistory {
				m.history.Add(prev)
			}
		}
	}
	m.current = req.LeafID
	reg.focusCount++

	m.logger.Debug().
		Str("from", string(prev)).
		Str("to", string(req.LeafID)).
		Str("reason", string(req.Reason)).
		Msg("focus changed")
	m.changes.Publish(Change{From: prev, To: req.LeafID, Reason: req.Reason})
	return true
}

// RestorePrevious pops the most recent history entry and focuses it when it is
// still registered and ready. Otherwise the entry is dropped.
func (m *Manager) RestorePrevious() bool {
	id, ok := m.history.Pop()
	if !ok {
		return false
	}
	reg, ok := m.entries[id]
	if !ok || id == m.current || reg.target.State() != lifecycle.StateReady {
		m.logger.Debug().Str("pane_id", string(id)).Msg("dropping stale history entry")
		return false
	}
	m.seq++
	req := &Request{LeafID: id, Priority: PriorityNormal, Reason: ReasonRestore, Timestamp: m.now(), seq: m.seq, index: -1}
	if _, err := m.admit(req); err != nil {
		m.deny(req, err)
		return false
	}
	return m.apply(req, reg, false)
}

// Cycle moves focus to the next (or previous) ready leaf of group, wrapping
// around. An empty group name cycles over every leaf.
func (m *Manager) Cycle(group string, forward bool) bool {
	var candidates []entity.NodeID
	for _, id := range m.cycleOrder(group) {
		if reg, ok := m.entries[id]; ok && reg.target.State() == lifecycle.StateReady {
			candidates = append(candidates, id)
		}
	}
	if len(candidates) == 0 {
		return false
	}

	next := candidates[0]
	if !forward {
		next = candidates[len(candidates)-1]
	}
	if i := slices.Index(candidates, m.current); i >= 0 {
		step := 1
		if !forward {
			step = -1
		}
		next = candidates[(i+step+len(candidates))%len(candidates)]
	}
	if next == m.current {
		return false
	}
	return m.RequestFocus(next, PriorityNormal, ReasonCycle) == OutcomeApplied
}

func (m *Manager) cycleOrder(group string) []entity.NodeID {
	if group != "" {
		return m.groups[group]
	}
	if m.order != nil {
		return m.order()
	}
	return m.registered
}

// AddToGroup appends id to a named group. Groups are ordered sets.
func (m *Manager) AddToGroup(name string, id entity.NodeID) {
	if slices.Contains(m.groups[name], id) {
		return
	}
	m.groups[name] = append(m.groups[name], id)
}

// RemoveFromGroup removes id from a named group.
func (m *Manager) RemoveFromGroup(name string, id entity.NodeID) {
	members := slices.DeleteFunc(m.groups[name], func(x entity.NodeID) bool { return x == id })
	if len(members) == 0 {
		delete(m.groups, name)
		return
	}
	m.groups[name] = members
}

// Group returns a copy of a group's members.
func (m *Manager) Group(name string) []entity.NodeID {
	return slices.Clone(m.groups[name])
}
