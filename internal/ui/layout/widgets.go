// Package layout maps the pane tree onto nested container widgets.
// It defines interfaces that wrap toolkit types, enabling unit testing without
// a GTK runtime; the GTK implementations live in the adapter package.
package layout

import "github.com/bnema/paneshell/internal/domain/entity"

// Orientation represents the orientation for layout widgets.
type Orientation int

// Orientation constants, numerically equal to GTK's.
const (
	OrientationHorizontal Orientation = iota
	OrientationVertical
)

func (o Orientation) String() string {
	if o == OrientationVertical {
		return "vertical"
	}
	return "horizontal"
}

// OrientationOf converts a pane tree orientation. A horizontal split places
// its children side by side.
func OrientationOf(o entity.Orientation) Orientation {
	if o == entity.OrientationVertical {
		return OrientationVertical
	}
	return OrientationHorizontal
}

// Widget is the base interface that all widgets implement.
// It provides common widget operations needed for layout management.
type Widget interface {
	// Visibility
	SetVisible(visible bool)
	IsVisible() bool

	// Focus
	GrabFocus() bool
	HasFocus() bool
	SetCanFocus(canFocus bool)

	// Pointer events
	SetCanTarget(canTarget bool) // If false, widget won't receive pointer events

	// Layout
	SetHexpand(expand bool)
	SetVexpand(expand bool)
	QueueResize()

	// Geometry - for focus navigation
	GetAllocatedWidth() int
	GetAllocatedHeight() int
	// ComputePoint returns the position of this widget's origin (0,0) relative to
	// the target widget's coordinate space. Returns ok=false if computation fails.
	ComputePoint(target Widget) (x, y float64, ok bool)

	// CSS styling
	AddCssClass(cssClass string)
	RemoveCssClass(cssClass string)
	HasCssClass(cssClass string) bool

	// Parent management
	Unparent()
	HasParent() bool
}

// PanedWidget wraps a two-child container separated by a draggable divider.
type PanedWidget interface {
	Widget

	// Child management. A nil child clears the slot.
	SetStartChild(child Widget)
	SetEndChild(child Widget)
	GetStartChild() Widget
	GetEndChild() Widget

	// Divider position
	SetPosition(position int)
	GetPosition() int

	// Resize behavior
	SetResizeStartChild(resize bool)
	SetResizeEndChild(resize bool)
	SetShrinkStartChild(shrink bool)
	SetShrinkEndChild(shrink bool)

	// Handle appearance
	SetWideHandle(wide bool)

	// Signals. Each Connect returns a handler id for Disconnect.
	ConnectMap(callback func()) uint32
	ConnectNotifyPosition(callback func()) uint32
	Disconnect(handlerID uint32)
}

// BoxWidget arranges children in a single row or column.
type BoxWidget interface {
	Widget

	Append(child Widget)
	Remove(child Widget)
}

// OverlayWidget displays overlay widgets on top of a main child widget.
type OverlayWidget interface {
	Widget

	SetChild(child Widget)
	AddOverlay(overlay Widget)
	RemoveOverlay(overlay Widget)
}

// LabelWidget displays text.
type LabelWidget interface {
	Widget

	SetText(text string)
	GetText() string
	SetWrap(wrap bool)
}

// TextWidget is a scrollable multi-line text area.
type TextWidget interface {
	Widget

	SetText(text string)
	GetText() string
	// AppendText adds text at the end and keeps the view scrolled to it.
	AppendText(text string)
	SetEditable(editable bool)
	SetMonospace(monospace bool)

	// ConnectChanged fires after every buffer change.
	ConnectChanged(callback func()) uint32
	Disconnect(handlerID uint32)
}

// EntryWidget is a single-line text input.
type EntryWidget interface {
	Widget

	SetText(text string)
	GetText() string
	SetPlaceholderText(text string)

	// ConnectActivate fires when the user presses Enter.
	ConnectActivate(callback func()) uint32
	Disconnect(handlerID uint32)
}

// WidgetFactory creates widget instances.
// This abstraction allows tests to inject mock factories.
type WidgetFactory interface {
	NewPaned(orientation Orientation) PanedWidget
	NewBox(orientation Orientation, spacing int) BoxWidget
	NewOverlay() OverlayWidget
	NewLabel(text string) LabelWidget
	NewTextView() TextWidget
	NewEntry() EntryWidget
}
