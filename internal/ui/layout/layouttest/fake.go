// Package layouttest provides in-memory layout widgets for behavioral tests.
// The fakes enforce the single-parent rule of the toolkit: parenting a widget
// that already has a parent panics.
package layouttest

import (
	"fmt"

	"github.com/bnema/paneshell/internal/domain/entity"
	"github.com/bnema/paneshell/internal/ui/layout"
)

var (
	_ layout.Widget        = (*Widget)(nil)
	_ layout.PanedWidget   = (*Paned)(nil)
	_ layout.BoxWidget     = (*Box)(nil)
	_ layout.OverlayWidget = (*Overlay)(nil)
	_ layout.LabelWidget   = (*Label)(nil)
	_ layout.TextWidget    = (*Text)(nil)
	_ layout.EntryWidget   = (*Entry)(nil)
	_ layout.WidgetFactory = (*Factory)(nil)
	_ layout.RootContainer = (*Root)(nil)
	_ layout.LeafProvider  = (*Leaves)(nil)
)

type baser interface{ base() *Widget }

// Widget is a fake leaf widget.
type Widget struct {
	Name string

	parent   any
	detach   func()
	visible  bool
	focused  bool
	canFocus bool
	// CanTarget mirrors SetCanTarget.
	CanTarget    bool
	Hexpand      bool
	Vexpand      bool
	classes      map[string]bool
	width        int
	height       int
	x, y         float64
	ResizeQueued int
	Unparents    int
}

// NewWidget returns a visible, targetable widget.
func NewWidget(name string) *Widget {
	return &Widget{Name: name, visible: true, canFocus: true, CanTarget: true, classes: map[string]bool{}}
}

func (w *Widget) base() *Widget { return w }

func (w *Widget) String() string { return w.Name }

func (w *Widget) SetVisible(visible bool) { w.visible = visible }
func (w *Widget) IsVisible() bool         { return w.visible }
func (w *Widget) GrabFocus() bool {
	if !w.canFocus {
		return false
	}
	w.focused = true
	return true
}
func (w *Widget) HasFocus() bool              { return w.focused }
func (w *Widget) SetCanFocus(canFocus bool)   { w.canFocus = canFocus }
func (w *Widget) SetCanTarget(canTarget bool) { w.CanTarget = canTarget }
func (w *Widget) SetHexpand(expand bool)      { w.Hexpand = expand }
func (w *Widget) SetVexpand(expand bool)      { w.Vexpand = expand }
func (w *Widget) QueueResize()                { w.ResizeQueued++ }
func (w *Widget) GetAllocatedWidth() int      { return w.width }
func (w *Widget) GetAllocatedHeight() int     { return w.height }

// ComputePoint returns the origin set with SetBounds, whatever the target.
func (w *Widget) ComputePoint(layout.Widget) (x, y float64, ok bool) {
	return w.x, w.y, w.width > 0 && w.height > 0
}

// SetBounds sets the fake allocation.
func (w *Widget) SetBounds(x, y float64, width, height int) {
	w.x, w.y, w.width, w.height = x, y, width, height
}

func (w *Widget) AddCssClass(c string)      { w.classes[c] = true }
func (w *Widget) RemoveCssClass(c string)   { delete(w.classes, c) }
func (w *Widget) HasCssClass(c string) bool { return w.classes[c] }

// Unparent removes the widget from its parent container.
func (w *Widget) Unparent() {
	if w.detach != nil {
		w.detach()
	}
}

func (w *Widget) HasParent() bool { return w.parent != nil }

// Parent returns the container holding the widget, or nil.
func (w *Widget) Parent() any { return w.parent }

// adopt records parent as the owner of child. It panics if child already has a
// parent.
func adopt(parent any, child layout.Widget, detach func()) {
	b := child.(baser).base()
	if b.parent != nil {
		panic(fmt.Sprintf("layouttest: %v already has a parent", child))
	}
	b.parent = parent
	b.detach = func() {
		detach()
		b.parent = nil
		b.detach = nil
		b.Unparents++
	}
}

func release(child layout.Widget) {
	if child == nil {
		return
	}
	b := child.(baser).base()
	b.parent = nil
	b.detach = nil
}

// Paned is a fake two-child container.
type Paned struct {
	Widget
	Orientation layout.Orientation

	start    layout.Widget
	end      layout.Widget
	position int
	handlers map[uint32]pannedHandler
	nextID   uint32

	ResizeStart, ResizeEnd bool
	ShrinkStart, ShrinkEnd bool
	WideHandle             bool
}

type pannedHandler struct {
	signal string
	fn     func()
}

func (p *Paned) SetStartChild(child layout.Widget) {
	release(p.start)
	p.start = nil
	if child != nil {
		adopt(p, child, func() { p.start = nil })
		p.start = child
	}
}

func (p *Paned) SetEndChild(child layout.Widget) {
	release(p.end)
	p.end = nil
	if child != nil {
		adopt(p, child, func() { p.end = nil })
		p.end = child
	}
}

func (p *Paned) GetStartChild() layout.Widget { return p.start }
func (p *Paned) GetEndChild() layout.Widget   { return p.end }

// SetPosition moves the divider and notifies position handlers, as the
// toolkit does for programmatic moves.
func (p *Paned) SetPosition(position int) {
	p.position = position
	p.emit("notify::position")
}

func (p *Paned) GetPosition() int { return p.position }

// DragTo simulates the user dragging the divider.
func (p *Paned) DragTo(position int) { p.SetPosition(position) }

func (p *Paned) SetResizeStartChild(r bool) { p.ResizeStart = r }
func (p *Paned) SetResizeEndChild(r bool)   { p.ResizeEnd = r }
func (p *Paned) SetShrinkStartChild(s bool) { p.ShrinkStart = s }
func (p *Paned) SetShrinkEndChild(s bool)   { p.ShrinkEnd = s }
func (p *Paned) SetWideHandle(wide bool)    { p.WideHandle = wide }

func (p *Paned) ConnectMap(fn func()) uint32 { return p.connect("map", fn) }

func (p *Paned) ConnectNotifyPosition(fn func()) uint32 {
	return p.connect("notify::position", fn)
}

func (p *Paned) connect(signal string, fn func()) uint32 {
	if p.handlers == nil {
		p.handlers = make(map[uint32]pannedHandler)
	}
	p.nextID++
	p.handlers[p.nextID] = pannedHandler{signal: signal, fn: fn}
	return p.nextID
}

func (p *Paned) Disconnect(id uint32) { delete(p.handlers, id) }

// HandlerCount returns the number of connected signal handlers.
func (p *Paned) HandlerCount() int { return len(p.handlers) }

// EmitMap fires the map signal.
func (p *Paned) EmitMap() { p.emit("map") }

func (p *Paned) emit(signal string) {
	for id := uint32(1); id <= p.nextID; id++ {
		if h, ok := p.handlers[id]; ok && h.signal == signal {
			h.fn()
		}
	}
}

// Box is a fake linear container.
type Box struct {
	Widget
	Orientation layout.Orientation
	Spacing     int
	children    []layout.Widget
}

func (b *Box) Append(child layout.Widget) {
	adopt(b, child, func() { b.drop(child) })
	b.children = append(b.children, child)
}

func (b *Box) Remove(child layout.Widget) {
	if b.drop(child) {
		release(child)
	}
}

func (b *Box) drop(child layout.Widget) bool {
	for i, c := range b.children {
		if c == child {
			b.children = append(b.children[:i], b.children[i+1:]...)
			return true
		}
	}
	return false
}

// Children returns the box children in order.
func (b *Box) Children() []layout.Widget { return append([]layout.Widget(nil), b.children...) }

// Overlay is a fake layered container.
type Overlay struct {
	Widget
	child    layout.Widget
	overlays []layout.Widget
}

func (o *Overlay) SetChild(child layout.Widget) {
	release(o.child)
	o.child = nil
	if child != nil {
		adopt(o, child, func() { o.child = nil })
		o.child = child
	}
}

func (o *Overlay) AddOverlay(w layout.Widget) {
	adopt(o, w, func() { o.dropOverlay(w) })
	o.overlays = append(o.overlays, w)
}

func (o *Overlay) RemoveOverlay(w layout.Widget) {
	if o.dropOverlay(w) {
		release(w)
	}
}

func (o *Overlay) dropOverlay(w layout.Widget) bool {
	for i, c := range o.overlays {
		if c == w {
			o.overlays = append(o.overlays[:i], o.overlays[i+1:]...)
			return true
		}
	}
	return false
}

// Child returns the main child.
func (o *Overlay) Child() layout.Widget { return o.child }

// Overlays returns the overlay children.
func (o *Overlay) Overlays() []layout.Widget { return append([]layout.Widget(nil), o.overlays...) }

// Label is a fake text widget.
type Label struct {
	Widget
	text string
	Wrap bool
}

func (l *Label) SetText(text string) { l.text = text }
func (l *Label) GetText() string     { return l.text }
func (l *Label) SetWrap(wrap bool)   { l.Wrap = wrap }

// signals is a handler table shared by the fakes that emit signals.
type signals struct {
	handlers map[uint32]pannedHandler
	nextID   uint32
}

func (s *signals) connect(signal string, fn func()) uint32 {
	if s.handlers == nil {
		s.handlers = make(map[uint32]pannedHandler)
	}
	s.nextID++
	s.handlers[s.nextID] = pannedHandler{signal: signal, fn: fn}
	return s.nextID
}

func (s *signals) Disconnect(id uint32) { delete(s.handlers, id) }

func (s *signals) emit(signal string) {
	for id := uint32(1); id <= s.nextID; id++ {
		if h, ok := s.handlers[id]; ok && h.signal == signal {
			h.fn()
		}
	}
}

// HandlerCount returns the number of connected signal handlers.
func (s *signals) HandlerCount() int { return len(s.handlers) }

// Text is a fake text area.
type Text struct {
	Widget
	signals
	text      string
	Editable  bool
	Monospace bool
}

func (t *Text) SetText(text string) {
	t.text = text
	t.emit("changed")
}

func (t *Text) GetText() string { return t.text }

func (t *Text) AppendText(text string) {
	t.text += text
	t.emit("changed")
}

func (t *Text) SetEditable(editable bool)       { t.Editable = editable }
func (t *Text) SetMonospace(monospace bool)     { t.Monospace = monospace }
func (t *Text) ConnectChanged(fn func()) uint32 { return t.connect("changed", fn) }

// Type simulates the user typing text at the end of the buffer.
func (t *Text) Type(text string) { t.AppendText(text) }

// Entry is a fake single-line input.
type Entry struct {
	Widget
	signals
	text        string
	Placeholder string
}

func (e *Entry) SetText(text string)              { e.text = text }
func (e *Entry) GetText() string                  { return e.text }
func (e *Entry) SetPlaceholderText(text string)   { e.Placeholder = text }
func (e *Entry) ConnectActivate(fn func()) uint32 { return e.connect("activate", fn) }

// Submit simulates typing text and pressing Enter.
func (e *Entry) Submit(text string) {
	e.text = text
	e.emit("activate")
}

// Factory creates fakes. Containers get an allocation of Width x Height.
type Factory struct {
	Width, Height int

	Paneds   []*Paned
	Boxes    []*Box
	Overlays []*Overlay
	Labels   []*Label
	Texts    []*Text
	Entries  []*Entry
}

// NewFactory returns a factory allocating 1000x800 containers.
func NewFactory() *Factory {
	return &Factory{Width: 1000, Height: 800}
}

func (f *Factory) NewPaned(o layout.Orientation) layout.PanedWidget {
	p := &Paned{Widget: *NewWidget(fmt.Sprintf("paned-%d", len(f.Paneds)+1)), Orientation: o}
	p.SetBounds(0, 0, f.Width, f.Height)
	f.Paneds = append(f.Paneds, p)
	return p
}

func (f *Factory) NewBox(o layout.Orientation, spacing int) layout.BoxWidget {
	b := &Box{Widget: *NewWidget(fmt.Sprintf("box-%d", len(f.Boxes)+1)), Orientation: o, Spacing: spacing}
	b.SetBounds(0, 0, f.Width, f.Height)
	f.Boxes = append(f.Boxes, b)
	return b
}

func (f *Factory) NewOverlay() layout.OverlayWidget {
	o := &Overlay{Widget: *NewWidget(fmt.Sprintf("overlay-%d", len(f.Overlays)+1))}
	o.SetBounds(0, 0, f.Width, f.Height)
	f.Overlays = append(f.Overlays, o)
	return o
}

func (f *Factory) NewLabel(text string) layout.LabelWidget {
	l := &Label{Widget: *NewWidget("label"), text: text}
	f.Labels = append(f.Labels, l)
	return l
}

func (f *Factory) NewTextView() layout.TextWidget {
	t := &Text{Widget: *NewWidget(fmt.Sprintf("text-%d", len(f.Texts)+1))}
	f.Texts = append(f.Texts, t)
	return t
}

func (f *Factory) NewEntry() layout.EntryWidget {
	e := &Entry{Widget: *NewWidget(fmt.Sprintf("entry-%d", len(f.Entries)+1))}
	f.Entries = append(f.Entries, e)
	return e
}

// Root is a fake root container.
type Root struct {
	Widget
	child       layout.Widget
	depth       int
	Suspends    int
	Resumes     int
	RootChanges int
}

// NewRoot returns an empty root container.
func NewRoot() *Root {
	return &Root{Widget: *NewWidget("root")}
}

func (r *Root) SetRootWidget(w layout.Widget) {
	r.RootChanges++
	release(r.child)
	r.child = nil
	if w != nil {
		adopt(r, w, func() { r.child = nil })
		r.child = w
	}
}

// Child returns the hosted widget.
func (r *Root) Child() layout.Widget { return r.child }

func (r *Root) SuspendUpdates() {
	r.depth++
	r.Suspends++
}

func (r *Root) ResumeUpdates() {
	if r.depth > 0 {
		r.depth--
	}
	r.Resumes++
}

// Suspended reports whether updates are currently suspended.
func (r *Root) Suspended() bool { return r.depth > 0 }

// Leaves is a fake layout.LeafProvider creating one widget per leaf id.
type Leaves struct {
	widgets map[string]*Widget
	Calls   int
	// Fail makes LeafWidget return an error for the given ids.
	Fail map[string]error
}

// NewLeaves returns an empty provider.
func NewLeaves() *Leaves {
	return &Leaves{widgets: make(map[string]*Widget), Fail: make(map[string]error)}
}

// Get returns the widget of a leaf, creating it on first use.
func (l *Leaves) Get(id string) *Widget {
	w, ok := l.widgets[id]
	if !ok {
		w = NewWidget(id)
		l.widgets[id] = w
	}
	return w
}

// LeafWidget implements layout.LeafProvider.
func (l *Leaves) LeafWidget(id entity.NodeID) (layout.Widget, error) {
	l.Calls++
	if err := l.Fail[string(id)]; err != nil {
		return nil, err
	}
	return l.Get(string(id)), nil
}
