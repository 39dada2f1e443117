package content

import (
	"context"
	"fmt"
	"strings"

	"github.com/bnema/paneshell/internal/ui/layout"
	"github.com/bnema/paneshell/internal/ui/lifecycle"
)

const welcomeSpacing = 12

// Welcome is the default content of a new workspace. It is ready as soon as
// it starts.
type Welcome struct {
	*Emitter

	box   layout.BoxWidget
	title layout.LabelWidget
	hint  layout.LabelWidget
}

func welcomeConstructor(r *Registry) Constructor {
	return func(_ context.Context, p Params) (Widget, error) {
		var names []string
		for _, m := range r.Types() {
			names = append(names, m.Title)
		}
		return NewWelcome(p, names), nil
	}
}

// NewWelcome builds a welcome page mentioning the given content titles.
func NewWelcome(p Params, titles []string) *Welcome {
	box := p.Widgets.NewBox(layout.OrientationVertical, welcomeSpacing)
	box.SetHexpand(true)
	box.SetVexpand(true)
	box.SetCanFocus(true)
	box.AddCssClass("welcome")

	title := p.Widgets.NewLabel("paneshell")
	title.AddCssClass("welcome-title")

	hint := p.Widgets.NewLabel(welcomeHint(titles))
	hint.SetWrap(true)
	hint.AddCssClass("welcome-hint")

	box.Append(title)
	box.Append(hint)

	return &Welcome{Emitter: NewEmitter(p.LeafID), box: box, title: title, hint: hint}
}

func welcomeHint(titles []string) string {
	if len(titles) == 0 {
		return "Split this pane to get started."
	}
	return fmt.Sprintf("Split this pane to get started. Available content: %s.", strings.Join(titles, ", "))
}

func (w *Welcome) View() layout.Widget { return w.box }

func (w *Welcome) Start(r lifecycle.Reporter) { r.Ready() }

func (w *Welcome) Focus() bool { return w.box.GrabFocus() }

func (w *Welcome) Suspend() {}
func (w *Welcome) Resume()  {}

func (w *Welcome) Cleanup() {
	w.box.Remove(w.title)
	w.box.Remove(w.hint)
}
