package styles

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss/tree"

	"github.com/bnema/paneshell/internal/domain/entity"
)

// LayoutsCLIRenderer renders non-interactive output of the layouts
// subcommands.
type LayoutsCLIRenderer struct {
	theme *Theme
	now   func() time.Time
}

func NewLayoutsCLIRenderer(theme *Theme) *LayoutsCLIRenderer {
	return &LayoutsCLIRenderer{theme: theme, now: time.Now}
}

func (r *LayoutsCLIRenderer) RenderEmptyList() string {
	return r.theme.Subtle.Render("No saved layouts found.")
}

func (r *LayoutsCLIRenderer) RenderList(layouts []*entity.Layout) string {
	if len(layouts) == 0 {
		return r.RenderEmptyList()
	}

	var b strings.Builder
	b.WriteString(r.theme.Highlight.Render(IconLayout))
	b.WriteString(" ")
	b.WriteString(r.theme.Title.Render("Layouts"))
	b.WriteString("\n\n")

	for _, l := range layouts {
		b.WriteString(r.RenderRow(l))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(r.theme.Subtle.Render("Tip: use `paneshell layouts` for the interactive browser."))
	return b.String()
}

// RenderRow renders one layout on a single line.
func (r *LayoutsCLIRenderer) RenderRow(l *entity.Layout) string {
	return fmt.Sprintf("%s  %s  %s",
		r.theme.Highlight.Render(l.Name),
		r.theme.BadgeMuted.Render(Plural(l.LeafCount, "pane")),
		r.theme.Subtle.Render(RelativeTime(l.SavedAt, r.now())),
	)
}

// RenderTree draws the pane tree of a layout. The active leaf is
// highlighted.
func (r *LayoutsCLIRenderer) RenderTree(l *entity.Layout) string {
	if l == nil || l.State == nil || l.State.Root == nil {
		return r.theme.Subtle.Render("(empty layout)")
	}

	root := tree.Root(r.theme.Title.Render(l.Name)).
		EnumeratorStyle(r.theme.Subtle).
		Child(r.nodeTree(l.State.Root, l.State.ActiveLeafID, 0))
	return root.String()
}

// maxTreeDepth bounds rendering of corrupt, cyclic states.
const maxTreeDepth = 64

func (r *LayoutsCLIRenderer) nodeTree(n *entity.NodeState, active entity.NodeID, depth int) any {
	if n == nil || depth > maxTreeDepth {
		return r.theme.ErrorStyle.Render("?")
	}

	if n.Type == entity.NodeTypeLeaf {
		label := fmt.Sprintf("%s %s %s", IconPane, n.ContentType, r.theme.Subtle.Render(string(n.ID)))
		if n.ID == active {
			return r.theme.Highlight.Render(label + " *")
		}
		return r.theme.Normal.Render(label)
	}

	icon := IconSplitV
	if n.Orientation == entity.OrientationVertical.String() {
		icon = IconSplitH
	}
	label := fmt.Sprintf("%s %s %.0f%%", icon, n.Orientation, n.Ratio*100)
	return tree.Root(r.theme.Subtle.Render(label)).
		EnumeratorStyle(r.theme.Subtle).
		Child(
			r.nodeTree(n.First, active, depth+1),
			r.nodeTree(n.Second, active, depth+1),
		)
}

func (r *LayoutsCLIRenderer) RenderDeleted(name string) string {
	return fmt.Sprintf("%s Layout %s deleted.",
		r.theme.SuccessStyle.Render(IconCheck),
		r.theme.Highlight.Render(name),
	)
}

func (r *LayoutsCLIRenderer) RenderError(err error) string {
	return fmt.Sprintf("%s %v", r.theme.ErrorStyle.Render(IconX), err)
}

// Plural formats a count with a noun, adding "s" when n != 1.
func Plural(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

// RelativeTime formats t relative to now ("just now", "5m ago", "3d ago").
func RelativeTime(t, now time.Time) string {
	d := now.Sub(t)
	switch {
	case t.IsZero():
		return "never"
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	case d < 30*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	default:
		return t.Format("2006-01-02")
	}
}
