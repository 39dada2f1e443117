package lifecycle

import "sync"

// Bus is an ordered observer list. Handlers run synchronously on Publish in
// subscription order. A handler may unsubscribe itself while being notified.
type Bus[T any] struct {
	mu       sync.Mutex
	handlers []busHandler[T]
	nextID   uint64
}

type busHandler[T any] struct {
	id uint64
	fn func(T)
}

// Subscribe registers fn and returns a func that removes it.
func (b *Bus[T]) Subscribe(fn func(T)) (unsubscribe func()) {
	b.mu.Lock()
	b.nextID++
	id := b.nextID
	b.handlers = append(b.handlers, busHandler[T]{id: id, fn: fn})
	b.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { b.remove(id) })
	}
}

func (b *Bus[T]) remove(id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i, h := range b.handlers {
		if h.id == id {
			b.handlers = append(b.handlers[:i:i], b.handlers[i+1:]...)
			return
		}
	}
}

// Publish delivers ev to every current handler.
func (b *Bus[T]) Publish(ev T) {
	b.mu.Lock()
	handlers := make([]busHandler[T], len(b.handlers))
	copy(handlers, b.handlers)
	b.mu.Unlock()

	for _, h := range handlers {
		h.fn(ev)
	}
}

// Len returns the number of subscribed handlers.
func (b *Bus[T]) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.handlers)
}

// Clear drops every handler.
func (b *Bus[T]) Clear() {
	b.mu.Lock()
	b.handlers = nil
	b.mu.Unlock()
}
