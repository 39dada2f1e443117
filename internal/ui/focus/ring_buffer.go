package focus

import "sync"

// RingBuffer provides a thread-safe circular buffer for focus history
type RingBuffer[T any] struct {
	buffer []T
	head   int
	tail   int
	size   int
	cap    int
	mu     sync.RWMutex
}

// NewRingBuffer creates a new ring buffer with the specified capacity.
// A capacity below one is raised to one.
func NewRingBuffer[T any](capacity int) *RingBuffer[T] {
	if capacity < 1 {
		capacity = 1
	}
	return &RingBuffer[T]{
		buffer: make([]T, capacity),
		cap:    capacity,
	}
}

// Add inserts an item, evicting the oldest one when full.
func (rb *RingBuffer[T]) Add(item T) {
	rb.mu.Lock()
	defer rb.mu.Unlock()

	rb.add(item)
}

func (rb *RingBuffer[T]) add(item T) {
	rb.buffer[rb.head] = item
	rb.head = (rb.head + 1) % rb.cap

	if rb.size < rb.cap {
		rb.size++
	} else {
		rb.tail = (rb.tail + 1) % rb.cap
	}
}

// GetAll returns all items in the ring buffer in chronological order
func (rb *RingBuffer[T]) GetAll() []T {
	rb.mu.RLock()
	defer rb.mu.RUnlock()

	return rb.items()
}

func (rb *RingBuffer[T]) items() []T {
	if rb.size == 0 {
		return nil
	}

	result := make([]T, rb.size)
	for i := 0; i < rb.size; i++ {
		idx := (rb.tail + i) % rb.cap
		result[i] = rb.buffer[idx]
	}
	return result
}

// Pop removes and returns the most recent item.
func (rb *RingBuffer[T]) Pop() (T, bool) {
	rb.mu.Lock()
	defer rb.mu.Unlock()

	var zero T
	if rb.size == 0 {
		return zero, false
	}
	rb.head = (rb.head - 1 + rb.cap) % rb.cap
	item := rb.buffer[rb.head]
	rb.buffer[rb.head] = zero
	rb.size--
	return item, true
}

// Remove drops every item matching pred and returns how many were removed.
// Order of the remaining items is preserved.
func (rb *RingBuffer[T]) Remove(pred func(T) bool) int {
	rb.mu.Lock()
	defer rb.mu.Unlock()

	all := rb.items()
	rb.reset()
	removed := 0
	for _, item := range all {
		if pred(item) {
			removed++
			continue
		}
		rb.add(item)
	}
	return removed
}

// Len returns the number of stored items.
func (rb *RingBuffer[T]) Len() int {
	rb.mu.RLock()
	defer rb.mu.RUnlock()
	return rb.size
}

// Cap returns the capacity.
func (rb *RingBuffer[T]) Cap() int {
	return rb.cap
}

// Clear empties the buffer.
func (rb *RingBuffer[T]) Clear() {
	rb.mu.Lock()
	defer rb.mu.Unlock()
	rb.reset()
}

func (rb *RingBuffer[T]) reset() {
	clear(rb.buffer)
	rb.head, rb.tail, rb.size = 0, 0, 0
}
