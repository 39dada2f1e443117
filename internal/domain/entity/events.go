package entity

// EventKind identifies a structural change of a PaneTree.
type EventKind int

const (
	EventPaneAdded EventKind = iota + 1
	EventPaneRemoved
	EventActivePaneChanged
	EventLayoutChanged
	EventContentTypeChanged
)

func (k EventKind) String() string {
	switch k {
	case EventPaneAdded:
		return "pane_added"
	case EventPaneRemoved:
		return "pane_removed"
	case EventActivePaneChanged:
		return "active_pane_changed"
	case EventLayoutChanged:
		return "layout_changed"
	case EventContentTypeChanged:
		return "content_type_changed"
	default:
		return "unknown"
	}
}

// Event is delivered to tree subscribers after a mutation completes.
// ID is empty for EventLayoutChanged.
type Event struct {
	Kind EventKind
	ID   NodeID
}

// Subscribe registers fn for structural events. Listeners run synchronously in
// registration order once the mutation is fully applied. The returned func
// removes the listener.
func (t *PaneTree) Subscribe(fn func(Event)) (unsubscribe func()) {
	t.nextListener++
	id := t.nextListener
	t.listeners = append(t.listeners, treeListener{id: id, fn: fn})
	return func() {
		for i, l := range t.listeners {
			if l.id == id {
				t.listeners = append(t.listeners[:i], t.listeners[i+1:]...)
				return
			}
		}
	}
}

func (t *PaneTree) emit(events ...Event) {
	if len(t.listeners) == 0 {
		return
	}
	// Snapshot so a listener can unsubscribe while being notified.
	listeners := make([]treeListener, len(t.listeners))
	copy(listeners, t.listeners)
	for _, ev := range events {
		for _, l := range listeners {
			l.fn(ev)
		}
	}
}
