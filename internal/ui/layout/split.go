package layout

import (
	"math"

	"github.com/bnema/paneshell/internal/domain/entity"
)

// ratioEpsilon is the smallest divider move reported back to the model.
const ratioEpsilon = 0.001

// SplitView wraps a PanedWidget for creating split pane layouts.
// It manages two child widgets separated by a draggable divider. A SplitView is
// reusable: Detach strips children and signal handlers so the container can be
// pooled and attached again.
type SplitView struct {
	paned       PanedWidget
	orientation Orientation
	startChild  Widget
	endChild    Widget
	ratio       float64

	onRatioChanged func(ratio float64)
	mapHandler     uint32
	notifyHandler  uint32
	attached       bool
	// applying suppresses notify::position feedback while the ratio is
	// being pushed into the paned.
	applying bool
}

// NewSplitView creates an empty split view with the given orientation.
func NewSplitView(factory WidgetFactory, orientation Orientation) *SplitView {
	paned := factory.NewPaned(orientation)

	// Configure resize behavior - both children should resize
	paned.SetResizeStartChild(true)
	paned.SetResizeEndChild(true)

	// Prevent children from shrinking below minimum size
	paned.SetShrinkStartChild(false)
	paned.SetShrinkEndChild(false)

	paned.SetHexpand(true)
	paned.SetVexpand(true)

	return &SplitView{
		paned:       paned,
		orientation: orientation,
		ratio:       entity.DefaultSplitRatio,
	}
}

// Attach sets both children and the ratio, and connects the paned signals.
// Attaching an attached view only swaps the children and ratio.
func (sv *SplitView) Attach(startChild, endChild Widget, ratio float64) {
	sv.SwapStart(startChild)
	sv.SwapEnd(endChild)
	sv.ratio = entity.ClampRatio(ratio)

	if !sv.attached {
		sv.attached = true
		// Apply ratio after widget is mapped (when we know the allocated size)
		sv.mapHandler = sv.paned.ConnectMap(func() { sv.ApplyRatio() })
		sv.notifyHandler = sv.paned.ConnectNotifyPosition(sv.handlePositionChanged)
	}
	sv.ApplyRatio()
}

// Detach removes both children, disconnects the signal handlers and drops the
// ratio callback. The paned itself stays where it is.
func (sv *SplitView) Detach() {
	if sv.attached {
		sv.paned.Disconnect(sv.mapHandler)
		sv.paned.Disconnect(sv.notifyHandler)
		sv.mapHandler, sv.notifyHandler = 0, 0
		sv.attached = false
	}
	sv.SwapStart(nil)
	sv.SwapEnd(nil)
	sv.onRatioChanged = nil
	sv.ratio = entity.DefaultSplitRatio
}

// SetOnRatioChanged registers the callback fired when the user drags the
// divider.
func (sv *SplitView) SetOnRatioChanged(fn func(ratio float64)) {
	sv.onRatioChanged = fn
}

// SetRatio updates the ratio and pushes it to the divider.
func (sv *SplitView) SetRatio(ratio float64) {
	sv.ratio = entity.ClampRatio(ratio)
	sv.ApplyRatio()
}

// GetRatio returns the current ratio setting.
func (sv *SplitView) GetRatio() float64 {
	return sv.ratio
}

// ApplyRatio converts the ratio to a pixel position and applies it.
// Returns false when the paned has no allocation yet; the map handler
// applies it later.
func (sv *SplitView) ApplyRatio() bool {
	totalSize := sv.totalSize()
	if totalSize <= 0 {
		return false
	}

	sv.applying = true
	sv.paned.SetPosition(int(float64(totalSize) * sv.ratio))
	sv.applying = false
	return true
}

func (sv *SplitView) totalSize() int {
	if sv.orientation == OrientationHorizontal {
		return sv.paned.GetAllocatedWidth()
	}
	return sv.paned.GetAllocatedHeight()
}

func (sv *SplitView) handlePositionChanged() {
	if sv.applying {
		return
	}
	totalSize := sv.totalSize()
	if totalSize <= 0 {
		return
	}
	ratio := entity.ClampRatio(float64(sv.paned.GetPosition()) / float64(totalSize))
	if math.Abs(ratio-sv.ratio) < ratioEpsilon {
		return
	}
	sv.ratio = ratio
	if sv.onRatioChanged != nil {
		sv.onRatioChanged(ratio)
	}
}

// SwapStart replaces the start (left/top) child widget.
// The old child is unparented before the new child is set.
func (sv *SplitView) SwapStart(newWidget Widget) {
	if sv.startChild != nil {
		sv.paned.SetStartChild(nil)
	}
	sv.startChild = newWidget
	if newWidget != nil {
		sv.paned.SetStartChild(newWidget)
	}
}

// SwapEnd replaces the end (right/bottom) child widget.
// The old child is unparented before the new child is set.
func (sv *SplitView) SwapEnd(newWidget Widget) {
	if sv.endChild != nil {
		sv.paned.SetEndChild(nil)
	}
	sv.endChild = newWidget
	if newWidget != nil {
		sv.paned.SetEndChild(newWidget)
	}
}

// SetChild replaces the start or end child.
func (sv *SplitView) SetChild(start bool, w Widget) {
	if start {
		sv.SwapStart(w)
		return
	}
	sv.SwapEnd(w)
}

// StartChild returns the current start (left/top) child.
func (sv *SplitView) StartChild() Widget { return sv.startChild }

// EndChild returns the current end (right/bottom) child.
func (sv *SplitView) EndChild() Widget { return sv.endChild }

// Orientation returns the split orientation.
func (sv *SplitView) Orientation() Orientation { return sv.orientation }

// Attached reports whether the view currently has signal handlers connected.
func (sv *SplitView) Attached() bool { return sv.attached }

// Widget returns the underlying PanedWidget for embedding in containers.
func (sv *SplitView) Widget() Widget { return sv.paned }

// Paned returns the underlying PanedWidget for direct access.
func (sv *SplitView) Paned() PanedWidget { return sv.paned }
