package component

import (
	"context"
	"slices"
	"sync"

	"github.com/rs/zerolog"

	"github.com/bnema/paneshell/internal/domain/entity"
	"github.com/bnema/paneshell/internal/logging"
	"github.com/bnema/paneshell/internal/ui/layout"
)

const paneModeClass = "pane-mode"

// WorkspaceView hosts the root widget of the pane tree and keeps the pane
// views of every live leaf. It implements layout.RootContainer.
type WorkspaceView struct {
	factory   layout.WidgetFactory
	container layout.BoxWidget
	logger    zerolog.Logger

	rootWidget   layout.Widget
	paneViews    map[entity.NodeID]*PaneView
	activeID     entity.NodeID
	suspendDepth int

	mu sync.RWMutex
}

// NewWorkspaceView creates an empty workspace view.
func NewWorkspaceView(ctx context.Context, factory layout.WidgetFactory) *WorkspaceView {
	container := factory.NewBox(layout.OrientationVertical, 0)
	container.SetHexpand(true)
	container.SetVexpand(true)
	container.SetVisible(true)
	container.AddCssClass("workspace")

	return &WorkspaceView{
		factory:   factory,
		container: container,
		logger:    logging.Component(ctx, "workspace-view"),
		paneViews: make(map[entity.NodeID]*PaneView),
	}
}

// SetRootWidget replaces the hosted widget; nil clears the slot.
func (wv *WorkspaceView) SetRootWidget(widget layout.Widget) {
	wv.mu.Lock()
	defer wv.mu.Unlock()

	if wv.rootWidget == widget {
		return
	}
	if wv.rootWidget != nil {
		wv.container.Remove(wv.rootWidget)
	}
	if widget != nil {
		widget.SetVisible(true)
		wv.container.Append(widget)
	}
	wv.rootWidget = widget
}

// RootWidget returns the hosted widget.
func (wv *WorkspaceView) RootWidget() layout.Widget {
	wv.mu.RLock()
	defer wv.mu.RUnlock()

	return wv.rootWidget
}

// SuspendUpdates stops the container from taking pointer input while a batch
// of reparenting runs. Calls nest. Drawing is not blocked: a batch runs inside
// one main-loop callback and GTK paints only at the next frame clock tick, so
// half-patched trees never reach the screen.
func (wv *WorkspaceView) SuspendUpdates() {
	wv.mu.Lock()
	defer wv.mu.Unlock()

	wv.suspendDepth++
	if wv.suspendDepth == 1 {
		wv.container.SetCanTarget(false)
	}
}

// ResumeUpdates ends a batch started by SuspendUpdates. The outermost call
// restores input and queues a single resize.
func (wv *WorkspaceView) ResumeUpdates() {
	wv.mu.Lock()
	defer wv.mu.Unlock()

	if wv.suspendDepth == 0 {
		wv.logger.Warn().Msg("resume without matching suspend")
		return
	}
	wv.suspendDepth--
	if wv.suspendDepth == 0 {
		wv.container.SetCanTarget(true)
		wv.container.QueueResize()
	}
}

// Suspended reports whether a batch is in progress.
func (wv *WorkspaceView) Suspended() bool {
	wv.mu.RLock()
	defer wv.mu.RUnlock()

	return wv.suspendDepth > 0
}

// RegisterPaneView records the view of a leaf.
func (wv *WorkspaceView) RegisterPaneView(pv *PaneView) {
	wv.mu.Lock()
	defer wv.mu.Unlock()

	wv.paneViews[pv.LeafID()] = pv
	if pv.LeafID() == wv.activeID {
		pv.SetActive(true)
	}
}

// UnregisterPaneView forgets the view of a leaf and returns it.
func (wv *WorkspaceView) UnregisterPaneView(id entity.NodeID) (*PaneView, bool) {
	wv.mu.Lock()
	defer wv.mu.Unlock()

	pv, ok := wv.paneViews[id]
	delete(wv.paneViews, id)
	if wv.activeID == id {
		wv.activeID = ""
	}
	return pv, ok
}

// PaneView returns the view of a leaf.
func (wv *WorkspaceView) PaneView(id entity.NodeID) (*PaneView, bool) {
	wv.mu.RLock()
	defer wv.mu.RUnlock()

	pv, ok := wv.paneViews[id]
	return pv, ok
}

// PaneCount returns the number of registered pane views.
func (wv *WorkspaceView) PaneCount() int {
	wv.mu.RLock()
	defer wv.mu.RUnlock()

	return len(wv.paneViews)
}

// SetActiveLeaf moves the active border to id. Unknown ids clear it.
func (wv *WorkspaceView) SetActiveLeaf(id entity.NodeID) {
	wv.mu.Lock()
	defer wv.mu.Unlock()

	if prev, ok := wv.paneViews[wv.activeID]; ok && wv.activeID != id {
		prev.SetActive(false)
	}
	wv.activeID = ""
	if pv, ok := wv.paneViews[id]; ok {
		pv.SetActive(true)
		wv.activeID = id
	}
}

// SetPaneMode toggles the pane-mode class that highlights the workspace
// while pane shortcuts are armed.
func (wv *WorkspaceView) SetPaneMode(active bool) {
	if active {
		wv.container.AddCssClass(paneModeClass)
	} else {
		wv.container.RemoveCssClass(paneModeClass)
	}
}

// ActiveLeaf returns the leaf showing the active border.
func (wv *WorkspaceView) ActiveLeaf() entity.NodeID {
	wv.mu.RLock()
	defer wv.mu.RUnlock()

	return wv.activeID
}

// LeafIDs returns the ids of registered pane views, sorted.
func (wv *WorkspaceView) LeafIDs() []entity.NodeID {
	wv.mu.RLock()
	defer wv.mu.RUnlock()

	ids := make([]entity.NodeID, 0, len(wv.paneViews))
	for id := range wv.paneViews {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// LeafWidget returns the wrapper widget of a leaf, or nil.
func (wv *WorkspaceView) LeafWidget(id entity.NodeID) layout.Widget {
	wv.mu.RLock()
	defer wv.mu.RUnlock()

	if pv, ok := wv.paneViews[id]; ok {
		return pv.Widget()
	}
	return nil
}

// ContainerWidget is the coordinate space pane geometry is measured in.
func (wv *WorkspaceView) ContainerWidget() layout.Widget {
	return wv.container
}

// Widget returns the top-level widget to place in a window.
func (wv *WorkspaceView) Widget() layout.Widget {
	return wv.container
}

// Factory returns the widget factory used by this workspace view.
func (wv *WorkspaceView) Factory() layout.WidgetFactory {
	return wv.factory
}
