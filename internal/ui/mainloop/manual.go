package mainloop

import (
	"sort"
	"sync"
	"time"
)

// ManualScheduler is a deterministic port.Scheduler driven by the caller.
// Posted tasks run on Tick; delayed tasks run when Advance moves the virtual
// clock past their deadline.
type ManualScheduler struct {
	mu     sync.Mutex
	now    time.Duration
	queue  []func()
	timers []*manualTimer
	seq    uint64
}

type manualTimer struct {
	due      time.Duration
	seq      uint64
	fn       func()
	canceled bool
}

// NewManualScheduler returns a scheduler at virtual time zero.
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

// Post queues fn for the next Tick.
func (s *ManualScheduler) Post(fn func()) {
	if fn == nil {
		return
	}
	s.mu.Lock()
	s.queue = append(s.queue, fn)
	s.mu.Unlock()
}

// PostAfter arms a timer that fires once the virtual clock reaches now+delay.
func (s *ManualScheduler) PostAfter(delay time.Duration, fn func()) func() {
	if fn == nil {
		return func() {}
	}
	s.mu.Lock()
	s.seq++
	t := &manualTimer{due: s.now + delay, seq: s.seq, fn: fn}
	s.timers = append(s.timers, t)
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		t.canceled = true
		s.mu.Unlock()
	}
}

// Tick runs the tasks queued before the call. Tasks posted while ticking wait
// for the next Tick. Returns the number of tasks run.
func (s *ManualScheduler) Tick() int {
	s.mu.Lock()
	batch := s.queue
	s.queue = nil
	s.mu.Unlock()

	for _, fn := range batch {
		fn()
	}
	return len(batch)
}

// Drain ticks until no task is queued, up to maxTicks iterations.
func (s *ManualScheduler) Drain(maxTicks int) int {
	total := 0
	for range maxTicks {
		n := s.Tick()
		if n == 0 {
			break
		}
		total += n
	}
	return total
}

// Advance moves the virtual clock forward and fires due timers in deadline
// order. Returns the number of timers fired.
func (s *ManualScheduler) Advance(d time.Duration) int {
	s.mu.Lock()
	s.now += d
	now := s.now
	s.mu.Unlock()

	fired := 0
	for {
		t := s.nextDue(now)
		if t == nil {
			return fired
		}
		t.fn()
		fired++
	}
}

func (s *ManualScheduler) nextDue(now time.Duration) *manualTimer {
	s.mu.Lock()
	defer s.mu.Unlock()

	live := s.timers[:0]
	for _, t := range s.timers {
		if !t.canceled {
			live = append(live, t)
		}
	}
	s.timers = live
	sort.SliceStable(s.timers, func(i, j int) bool {
		if s.timers[i].due != s.timers[j].due {
			return s.timers[i].due < s.timers[j].due
		}
		return s.timers[i].seq < s.timers[j].seq
	})
	if len(s.timers) == 0 || s.timers[0].due > now {
		return nil
	}
	t := s.timers[0]
	s.timers = s.timers[1:]
	return t
}

// Now returns the virtual clock.
func (s *ManualScheduler) Now() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.now
}

// Queued returns the number of tasks waiting for the next Tick.
func (s *ManualScheduler) Queued() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.queue)
}

// Timers returns the number of armed, uncanceled timers.
func (s *ManualScheduler) Timers() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, t := range s.timers {
		if !t.canceled {
			n++
		}
	}
	return n
}

// NextDeadline returns the delay until the earliest armed timer.
func (s *ManualScheduler) NextDeadline() (time.Duration, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var (
		best  time.Duration
		found bool
	)
	for _, t := range s.timers {
		if t.canceled {
			continue
		}
		if !found || t.due < best {
			best, found = t.due, true
		}
	}
	return best - s.now, found
}
