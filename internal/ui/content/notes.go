package content

import (
	"context"

	"github.com/bnema/paneshell/internal/ui/layout"
	"github.com/bnema/paneshell/internal/ui/lifecycle"
)

const notesStateKey = "text"

// Notes is an editable scratch area whose text is saved with the layout.
type Notes struct {
	*Emitter

	text      layout.TextWidget
	initial   string
	changedID uint32
	started   bool
}

// NewNotes is the notes Constructor. State may carry the text of a previous
// session under "text".
func NewNotes(_ context.Context, p Params) (Widget, error) {
	text := p.Widgets.NewTextView()
	text.SetEditable(true)
	text.SetHexpand(true)
	text.SetVexpand(true)
	text.AddCssClass("notes")

	initial, _ := p.State[notesStateKey].(string)
	return &Notes{Emitter: NewEmitter(p.LeafID), text: text, initial: initial}, nil
}

func (n *Notes) View() layout.Widget { return n.text }

// Start restores the saved text. A retry after a failure starts over from the
// saved text.
func (n *Notes) Start(r lifecycle.Reporter) {
	if n.changedID != 0 {
		n.text.Disconnect(n.changedID)
		n.changedID = 0
	}
	n.text.SetText(n.initial)
	n.changedID = n.text.ConnectChanged(func() {
		n.RequestAction(ActionStateChanged, "")
	})
	n.started = true
	r.Ready()
}

func (n *Notes) Focus() bool { return n.text.GrabFocus() }

func (n *Notes) Suspend() { n.text.SetEditable(false) }
func (n *Notes) Resume()  { n.text.SetEditable(true) }

func (n *Notes) Cleanup() {
	if n.changedID != 0 {
		n.text.Disconnect(n.changedID)
		n.changedID = 0
	}
}

// SaveState returns the current text.
func (n *Notes) SaveState() map[string]any {
	if !n.started {
		return map[string]any{notesStateKey: n.initial}
	}
	return map[string]any{notesStateKey: n.text.GetText()}
}
