package focus

import (
	"sync"
	"testing"
)

func TestRingBuffer_CircularOverwrite(t *testing.T) {
	rb := NewRingBuffer[int](3)

	for i := 1; i <= 5; i++ {
		rb.Add(i)
	}

	items := rb.GetAll()
	expected := []int{3, 4, 5}
	if len(items) != len(expected) {
		t.Fatalf("expected %d items, got %d", len(expected), len(items))
	}
	for i, item := range items {
		if item != expected[i] {
			t.Errorf("at index %d: expected %d, got %d", i, expected[i], item)
		}
	}
}

func TestRingBuffer_EmptyBuffer(t *testing.T) {
	rb := NewRingBuffer[string](5)

	if items := rb.GetAll(); items != nil {
		t.Errorf("expected nil for empty buffer, got %v", items)
	}
	if _, ok := rb.Pop(); ok {
		t.Error("expected Pop on empty buffer to fail")
	}
}

func TestRingBuffer_PopReturnsMostRecent(t *testing.T) {
	rb := NewRingBuffer[int](3)
	for i := 1; i <= 4; i++ {
		rb.Add(i)
	}

	for _, want := range []int{4, 3, 2} {
		got, ok := rb.Pop()
		if !ok || got != want {
			t.Fatalf("Pop() = %d, %v; want %d", got, ok, want)
		}
	}
	if rb.Len() != 0 {
		t.Errorf("expected empty buffer, got len %d", rb.Len())
	}

	rb.Add(9)
	if items := rb.GetAll(); len(items) != 1 || items[0] != 9 {
		t.Errorf("expected [9] after reuse, got %v", items)
	}
}

func TestRingBuffer_Remove(t *testing.T) {
	rb := NewRingBuffer[string](4)
	for _, s := range []string{"a", "b", "a", "c"} {
		rb.Add(s)
	}

	if n := rb.Remove(func(s string) bool { return s == "a" }); n != 2 {
		t.Errorf("expected 2 removed, got %d", n)
	}
	items := rb.GetAll()
	if len(items) != 2 || items[0] != "b" || items[1] != "c" {
		t.Errorf("expected [b c], got %v", items)
	}
}

func TestRingBuffer_ConcurrentAccess(t *testing.T) {
	rb := NewRingBuffer[int](100)
	var wg sync.WaitGroup

	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(base int) {
			defer wg.Done()
			for j := 0; j < 10; j++ {
				rb.Add(base*10 + j)
			}
		}(i)
	}
	wg.Wait()

	if rb.Len() != 100 {
		t.Errorf("expected 100 items, got %d", rb.Len())
	}
}
