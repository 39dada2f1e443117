package mainloop

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestManualScheduler_TickRunsOnlyQueuedBatch(t *testing.T) {
	s := NewManualScheduler()
	var order []string

	s.Post(func() {
		order = append(order, "a")
		s.Post(func() { order = append(order, "c") })
	})
	s.Post(func() { order = append(order, "b") })

	assert.Equal(t, 2, s.Tick())
	assert.Equal(t, []string{"a", "b"}, order)
	assert.Equal(t, 1, s.Queued())

	assert.Equal(t, 1, s.Tick())
	assert.Equal(t, []string{"a", "b", "c"}, order)
}

func TestManualScheduler_AdvanceFiresInDeadlineOrder(t *testing.T) {
	s := NewManualScheduler()
	var order []int

	s.PostAfter(300*time.Millisecond, func() { order = append(order, 3) })
	s.PostAfter(100*time.Millisecond, func() { order = append(order, 1) })
	s.PostAfter(100*time.Millisecond, func() { order = append(order, 2) })

	assert.Equal(t, 0, s.Advance(50*time.Millisecond))
	next, ok := s.NextDeadline()
	assert.True(t, ok)
	assert.Equal(t, 50*time.Millisecond, next)

	assert.Equal(t, 3, s.Advance(time.Second))
	assert.Equal(t, []int{1, 2, 3}, order)
}

func TestManualScheduler_CancelPreventsFire(t *testing.T) {
	s := NewManualScheduler()
	fired := false

	cancel := s.PostAfter(time.Millisecond, func() { fired = true })
	cancel()
	s.Advance(time.Second)

	assert.False(t, fired)
	assert.Equal(t, 0, s.Timers())
	cancel()
}

func TestManualScheduler_Drain(t *testing.T) {
	s := NewManualScheduler()
	depth := 0
	var post func()
	post = func() {
		depth++
		if depth < 5 {
			s.Post(post)
		}
	}
	s.Post(post)

	assert.Equal(t, 5, s.Drain(10))
	assert.Equal(t, 0, s.Queued())
}
