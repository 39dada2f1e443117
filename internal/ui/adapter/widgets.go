package adapter

import (
	coreglib "github.com/diamondburned/gotk4/pkg/core/glib"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/bnema/paneshell/internal/ui/layout"
)

// Ensure implementations satisfy interfaces at compile time.
var (
	_ layout.Widget        = (*gtkWidget)(nil)
	_ layout.PanedWidget   = (*gtkPaned)(nil)
	_ layout.BoxWidget     = (*gtkBox)(nil)
	_ layout.OverlayWidget = (*gtkOverlay)(nil)
	_ layout.LabelWidget   = (*gtkLabel)(nil)
	_ layout.TextWidget    = (*gtkText)(nil)
	_ layout.EntryWidget   = (*gtkEntry)(nil)
	_ layout.WidgetFactory = (*GtkWidgetFactory)(nil)
)

// gtkWidgetter is implemented by every wrapper in this file.
type gtkWidgetter interface {
	GtkWidget() gtk.Widgetter
}

// Unwrap returns the GTK widget behind w, or nil when w was not created by
// GtkWidgetFactory.
func Unwrap(w layout.Widget) gtk.Widgetter {
	if w == nil {
		return nil
	}
	if g, ok := w.(gtkWidgetter); ok {
		return g.GtkWidget()
	}
	return nil
}

// gtkWidget implements layout.Widget on top of any GTK widget. outer is the
// widget placed in containers; focus is where GrabFocus lands.
type gtkWidget struct {
	outer gtk.Widgetter
	base  *gtk.Widget
	focus *gtk.Widget
}

func newGtkWidget(outer gtk.Widgetter) gtkWidget {
	base := gtk.BaseWidget(outer)
	return gtkWidget{outer: outer, base: base, focus: base}
}

func (w *gtkWidget) GtkWidget() gtk.Widgetter         { return w.outer }
func (w *gtkWidget) SetVisible(visible bool)          { w.base.SetVisible(visible) }
func (w *gtkWidget) IsVisible() bool                  { return w.base.Visible() }
func (w *gtkWidget) GrabFocus() bool                  { return w.focus.GrabFocus() }
func (w *gtkWidget) HasFocus() bool                   { return w.focus.HasFocus() }
func (w *gtkWidget) SetCanFocus(canFocus bool)        { w.focus.SetCanFocus(canFocus) }
func (w *gtkWidget) SetCanTarget(canTarget bool)      { w.base.SetCanTarget(canTarget) }
func (w *gtkWidget) SetHexpand(expand bool)           { w.base.SetHExpand(expand) }
func (w *gtkWidget) SetVexpand(expand bool)           { w.base.SetVExpand(expand) }
func (w *gtkWidget) QueueResize()                     { w.base.QueueResize() }
func (w *gtkWidget) GetAllocatedWidth() int           { return w.base.Width() }
func (w *gtkWidget) GetAllocatedHeight() int          { return w.base.Height() }
func (w *gtkWidget) AddCssClass(cssClass string)      { w.base.AddCSSClass(cssClass) }
func (w *gtkWidget) RemoveCssClass(cssClass string)   { w.base.RemoveCSSClass(cssClass) }
func (w *gtkWidget) HasCssClass(cssClass string) bool { return w.base.HasCSSClass(cssClass) }
func (w *gtkWidget) HasParent() bool                  { return w.base.Parent() != nil }
func (w *gtkWidget) disconnect(handlerID uint32) {
	w.base.HandlerDisconnect(coreglib.SignalHandle(handlerID))
}

// Unparent detaches the widget from its parent. GTK refuses to unparent a
// child its container still tracks, so containers are asked first.
func (w *gtkWidget) Unparent() {
	parent := w.base.Parent()
	if parent == nil {
		return
	}
	switch p := parent.(type) {
	case *gtk.Box:
		p.Remove(w.outer)
	case *gtk.Paned:
		if sameWidget(p.StartChild(), w.outer) {
			p.SetStartChild(nil)
		} else if sameWidget(p.EndChild(), w.outer) {
			p.SetEndChild(nil)
		}
	case *gtk.Overlay:
		if sameWidget(p.Child(), w.outer) {
			p.SetChild(nil)
		} else {
			p.RemoveOverlay(w.outer)
		}
	case *gtk.ScrolledWindow:
		p.SetChild(nil)
	default:
		w.base.Unparent()
	}
}

// sameWidget compares the underlying GObjects; gotk4 hands out a fresh Go
// wrapper on every getter call.
func sameWidget(a, b gtk.Widgetter) bool {
	if a == nil || b == nil {
		return false
	}
	return coreglib.InternObject(a).Native() == coreglib.InternObject(b).Native()
}

// ComputePoint returns the origin of the widget in target's coordinates.
func (w *gtkWidget) ComputePoint(target layout.Widget) (x, y float64, ok bool) {
	targetGtk := Unwrap(target)
	if targetGtk == nil {
		return 0, 0, false
	}
	bounds, ok := w.base.ComputeBounds(targetGtk)
	if !ok || bounds == nil {
		return 0, 0, false
	}
	return float64(bounds.X()), float64(bounds.Y()), true
}

// gtkPaned wraps gtk.Paned to implement PanedWidget. Children are tracked on
// the Go side so GetStartChild returns the wrapper that was set.
type gtkPaned struct {
	gtkWidget
	inner      *gtk.Paned
	start, end layout.Widget
}

func (p *gtkPaned) SetStartChild(child layout.Widget) {
	p.start = child
	p.inner.SetStartChild(Unwrap(child))
}

func (p *gtkPaned) SetEndChild(child layout.Widget) {
	p.end = child
	p.inner.SetEndChild(Unwrap(child))
}

func (p *gtkPaned) GetStartChild() layout.Widget { return p.start }
func (p *gtkPaned) GetEndChild() layout.Widget   { return p.end }

func (p *gtkPaned) SetPosition(position int)        { p.inner.SetPosition(position) }
func (p *gtkPaned) GetPosition() int                { return p.inner.Position() }
func (p *gtkPaned) SetResizeStartChild(resize bool) { p.inner.SetResizeStartChild(resize) }
func (p *gtkPaned) SetResizeEndChild(resize bool)   { p.inner.SetResizeEndChild(resize) }
func (p *gtkPaned) SetShrinkStartChild(shrink bool) { p.inner.SetShrinkStartChild(shrink) }
func (p *gtkPaned) SetShrinkEndChild(shrink bool)   { p.inner.SetShrinkEndChild(shrink) }
func (p *gtkPaned) SetWideHandle(wide bool)         { p.inner.SetWideHandle(wide) }

func (p *gtkPaned) ConnectMap(callback func()) uint32 {
	return uint32(p.inner.ConnectMap(callback))
}

func (p *gtkPaned) ConnectNotifyPosition(callback func()) uint32 {
	return uint32(p.inner.NotifyProperty("position", callback))
}

func (p *gtkPaned) Disconnect(handlerID uint32) { p.disconnect(handlerID) }

// gtkBox wraps gtk.Box.
type gtkBox struct {
	gtkWidget
	inner *gtk.Box
}

func (b *gtkBox) Append(child layout.Widget) {
	if w := Unwrap(child); w != nil {
		b.inner.Append(w)
	}
}

func (b *gtkBox) Remove(child layout.Widget) {
	if w := Unwrap(child); w != nil {
		b.inner.Remove(w)
	}
}

// gtkOverlay wraps gtk.Overlay.
type gtkOverlay struct {
	gtkWidget
	inner *gtk.Overlay
}

func (o *gtkOverlay) SetChild(child layout.Widget) { o.inner.SetChild(Unwrap(child)) }

func (o *gtkOverlay) AddOverlay(overlay layout.Widget) {
	if w := Unwrap(overlay); w != nil {
		o.inner.AddOverlay(w)
	}
}

func (o *gtkOverlay) RemoveOverlay(overlay layout.Widget) {
	if w := Unwrap(overlay); w != nil {
		o.inner.RemoveOverlay(w)
	}
}

// gtkLabel wraps gtk.Label.
type gtkLabel struct {
	gtkWidget
	inner *gtk.Label
}

func (l *gtkLabel) SetText(text string) { l.inner.SetText(text) }
func (l *gtkLabel) GetText() string     { return l.inner.Text() }
func (l *gtkLabel) SetWrap(wrap bool)   { l.inner.SetWrap(wrap) }

// gtkText is a TextView inside a ScrolledWindow. The scrolled window is what
// containers see; focus goes to the view.
type gtkText struct {
	gtkWidget
	view    *gtk.TextView
	buffer  *gtk.TextBuffer
	endMark *gtk.TextMark
}

func (t *gtkText) SetText(text string) { t.buffer.SetText(text) }

func (t *gtkText) GetText() string {
	start, end := t.buffer.Bounds()
	return t.buffer.Text(start, end, false)
}

func (t *gtkText) AppendText(text string) {
	t.buffer.Insert(t.buffer.EndIter(), text)
	t.buffer.MoveMark(t.endMark, t.buffer.EndIter())
	t.view.ScrollMarkOnscreen(t.endMark)
}

func (t *gtkText) SetEditable(editable bool) {
	t.view.SetEditable(editable)
	t.view.SetCursorVisible(editable)
}

func (t *gtkText) SetMonospace(monospace bool) { t.view.SetMonospace(monospace) }

func (t *gtkText) ConnectChanged(callback func()) uint32 {
	return uint32(t.buffer.ConnectChanged(callback))
}

func (t *gtkText) Disconnect(handlerID uint32) {
	t.buffer.HandlerDisconnect(coreglib.SignalHandle(handlerID))
}

// gtkEntry wraps gtk.Entry.
type gtkEntry struct {
	gtkWidget
	inner *gtk.Entry
}

func (e *gtkEntry) SetText(text string)            { e.inner.SetText(text) }
func (e *gtkEntry) GetText() string                { return e.inner.Text() }
func (e *gtkEntry) SetPlaceholderText(text string) { e.inner.SetPlaceholderText(text) }

func (e *gtkEntry) ConnectActivate(callback func()) uint32 {
	return uint32(e.inner.ConnectActivate(callback))
}

func (e *gtkEntry) Disconnect(handlerID uint32) { e.disconnect(handlerID) }

// GtkWidgetFactory creates real GTK widgets.
type GtkWidgetFactory struct{}

// NewGtkWidgetFactory creates a new factory for GTK widgets.
func NewGtkWidgetFactory() *GtkWidgetFactory {
	return &GtkWidgetFactory{}
}

func (*GtkWidgetFactory) NewPaned(orientation layout.Orientation) layout.PanedWidget {
	inner := gtk.NewPaned(gtk.Orientation(orientation))
	return &gtkPaned{gtkWidget: newGtkWidget(inner), inner: inner}
}

func (*GtkWidgetFactory) NewBox(orientation layout.Orientation, spacing int) layout.BoxWidget {
	inner := gtk.NewBox(gtk.Orientation(orientation), spacing)
	return &gtkBox{gtkWidget: newGtkWidget(inner), inner: inner}
}

func (*GtkWidgetFactory) NewOverlay() layout.OverlayWidget {
	inner := gtk.NewOverlay()
	return &gtkOverlay{gtkWidget: newGtkWidget(inner), inner: inner}
}

func (*GtkWidgetFactory) NewLabel(text string) layout.LabelWidget {
	inner := gtk.NewLabel(text)
	return &gtkLabel{gtkWidget: newGtkWidget(inner), inner: inner}
}

func (*GtkWidgetFactory) NewTextView() layout.TextWidget {
	view := gtk.NewTextView()
	view.SetWrapMode(gtk.WrapWordChar)
	view.SetHExpand(true)
	view.SetVExpand(true)

	scroller := gtk.NewScrolledWindow()
	scroller.SetPolicy(gtk.PolicyNever, gtk.PolicyAutomatic)
	scroller.SetChild(view)

	buffer := view.Buffer()
	t := &gtkText{
		gtkWidget: newGtkWidget(scroller),
		view:      view,
		buffer:    buffer,
		endMark:   buffer.CreateMark("end", buffer.EndIter(), false),
	}
	t.focus = gtk.BaseWidget(view)
	return t
}

func (*GtkWidgetFactory) NewEntry() layout.EntryWidget {
	inner := gtk.NewEntry()
	return &gtkEntry{gtkWidget: newGtkWidget(inner), inner: inner}
}
