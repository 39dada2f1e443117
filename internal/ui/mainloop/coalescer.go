package mainloop

import (
	"sync"
	"time"

	"github.com/bnema/paneshell/internal/application/port"
)

// Coalescer merges bursts of same-key main-loop tasks. Only the most recently
// posted callback for a key runs.
type Coalescer struct {
	mu        sync.Mutex
	pending   map[string]bool
	callbacks map[string]func()
	timers    map[string]func()
	scheduler port.Scheduler
	destroyed bool
}

func NewCoalescer(scheduler port.Scheduler) *Coalescer {
	if scheduler == nil {
		panic("mainloop.NewCoalescer: scheduler cannot be nil")
	}

	return &Coalescer{
		pending:   make(map[string]bool),
		callbacks: make(map[string]func()),
		timers:    make(map[string]func()),
		scheduler: scheduler,
	}
}

// Post schedules fn for the next tick unless a task with the same key is
// already waiting, in which case fn replaces it.
func (c *Coalescer) Post(key string, fn func()) {
	if fn == nil || key == "" {
		return
	}

	c.mu.Lock()
	if c.destroyed {
		c.mu.Unlock()
		return
	}
	c.callbacks[key] = fn
	if c.pending[key] {
		c.mu.Unlock()
		return
	}
	c.pending[key] = true
	c.mu.Unlock()

	c.scheduler.Post(func() { c.run(key) })
}

// Debounce schedules fn to run once the key has been quiet for delay.
// Each call restarts the wait.
func (c *Coalescer) Debounce(key string, delay time.Duration, fn func()) {
	if fn == nil || key == "" {
		return
	}

	c.mu.Lock()
	if c.destroyed {
		c.mu.Unlock()
		return
	}
	if cancel, ok := c.timers[key]; ok {
		cancel()
	}
	c.callbacks[key] = fn
	c.pending[key] = true
	c.mu.Unlock()

	cancel := c.scheduler.PostAfter(delay, func() { c.run(key) })

	c.mu.Lock()
	if c.destroyed {
		c.mu.Unlock()
		cancel()
		return
	}
	c.timers[key] = cancel
	c.mu.Unlock()
}

// Flush runs the pending task for key immediately, if any.
func (c *Coalescer) Flush(key string) {
	c.mu.Lock()
	if cancel, ok := c.timers[key]; ok {
		cancel()
	}
	c.mu.Unlock()
	c.run(key)
}

// Pending reports whether a task is waiting for key.
func (c *Coalescer) Pending(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pending[key]
}

func (c *Coalescer) run(key string) {
	c.mu.Lock()
	if c.destroyed {
		c.mu.Unlock()
		return
	}
	fn := c.callbacks[key]
	delete(c.pending, key)
	delete(c.callbacks, key)
	delete(c.timers, key)
	c.mu.Unlock()

	if fn != nil {
		fn()
	}
}

func (c *Coalescer) Destroy() {
	c.mu.Lock()
	timers := c.timers
	c.destroyed = true
	c.pending = map[string]bool{}
	c.callbacks = map[string]func(){}
	c.timers = map[string]func(){}
	c.mu.Unlock()

	for _, cancel := range timers {
		cancel()
	}
}
