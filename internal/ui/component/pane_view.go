// Package component provides the widgets that frame pane content.
package component

import (
	"sync"

	"github.com/bnema/paneshell/internal/domain/entity"
	"github.com/bnema/paneshell/internal/ui/layout"
)

const (
	// CSS class applied to active pane's border overlay
	activePaneClass = "pane-active"
	// CSS class applied to the overlay while the content is in the error state
	errorPaneClass = "pane-error"
)

// PaneView wraps the content widget of one leaf. The overlay stays the same
// widget for the whole life of the leaf, so the view synchronizer can move it
// between split containers while the content keeps its state.
type PaneView struct {
	factory     layout.WidgetFactory
	overlay     layout.OverlayWidget
	content     layout.Widget      // Content widget, nil until SetContent
	placeholder layout.LabelWidget // Shown when the content could not be created
	borderBox   layout.BoxWidget   // Border overlay for active indication
	errorLabel  layout.LabelWidget
	leafID      entity.NodeID
	isActive    bool
	hasError    bool

	mu sync.RWMutex
}

// NewPaneView creates an empty pane view for a leaf.
func NewPaneView(factory layout.WidgetFactory, leafID entity.NodeID) *PaneView {
	overlay := factory.NewOverlay()
	overlay.SetHexpand(true)
	overlay.SetVexpand(true)
	overlay.SetVisible(true)
	overlay.AddCssClass("pane-overlay")

	// Empty box styled via CSS to draw the border
	borderBox := factory.NewBox(layout.OrientationVertical, 0)
	borderBox.SetCanFocus(false)
	borderBox.SetCanTarget(false) // Let pointer events through to the content
	borderBox.AddCssClass("pane-border")
	borderBox.SetHexpand(true)
	borderBox.SetVexpand(true)
	overlay.AddOverlay(borderBox)

	return &PaneView{
		factory:   factory,
		overlay:   overlay,
		borderBox: borderBox,
		leafID:    leafID,
	}
}

// LeafID returns the leaf this view belongs to.
func (pv *PaneView) LeafID() entity.NodeID {
	return pv.leafID
}

// SetContent makes view the main child, replacing the previous content or
// placeholder. A nil view clears the child.
func (pv *PaneView) SetContent(view layout.Widget) {
	pv.mu.Lock()
	defer pv.mu.Unlock()

	pv.placeholder = nil
	pv.content = view
	if view != nil {
		view.SetVisible(true)
	}
	pv.overlay.SetChild(view)
}

// Content returns the current content widget.
func (pv *PaneView) Content() layout.Widget {
	pv.mu.RLock()
	defer pv.mu.RUnlock()

	return pv.content
}

// ShowPlaceholder replaces the content with a label. Used when no content
// widget could be created for the leaf.
func (pv *PaneView) ShowPlaceholder(message string) {
	pv.mu.Lock()
	defer pv.mu.Unlock()

	label := pv.factory.NewLabel(message)
	label.SetWrap(true)
	label.SetCanFocus(true)
	label.AddCssClass("pane-placeholder")

	pv.content = nil
	pv.placeholder = label
	pv.overlay.SetChild(label)
}

// HasPlaceholder reports whether the placeholder is shown.
func (pv *PaneView) HasPlaceholder() bool {
	pv.mu.RLock()
	defer pv.mu.RUnlock()

	return pv.placeholder != nil
}

// SetError marks the pane as failed and shows message above the content.
// An empty message clears the error state.
func (pv *PaneView) SetError(message string) {
	pv.mu.Lock()
	defer pv.mu.Unlock()

	if message == "" {
		if !pv.hasError {
			return
		}
		pv.hasError = false
		pv.overlay.RemoveCssClass(errorPaneClass)
		if pv.errorLabel != nil {
			pv.errorLabel.SetVisible(false)
		}
		return
	}

	if pv.errorLabel == nil {
		label := pv.factory.NewLabel("")
		label.SetWrap(true)
		label.SetCanTarget(false)
		label.AddCssClass("pane-error-label")
		pv.overlay.AddOverlay(label)
		pv.errorLabel = label
	}
	pv.errorLabel.SetText(message)
	pv.errorLabel.SetVisible(true)

	if !pv.hasError {
		pv.hasError = true
		pv.overlay.AddCssClass(errorPaneClass)
	}
}

// HasError reports whether the error state is shown.
func (pv *PaneView) HasError() bool {
	pv.mu.RLock()
	defer pv.mu.RUnlock()

	return pv.hasError
}

// ErrorText returns the message of the error label, empty when none is shown.
func (pv *PaneView) ErrorText() string {
	pv.mu.RLock()
	defer pv.mu.RUnlock()

	if !pv.hasError || pv.errorLabel == nil {
		return ""
	}
	return pv.errorLabel.GetText()
}

// SetActive updates the active state of the pane.
// Active panes display a visual border indicator.
func (pv *PaneView) SetActive(active bool) {
	pv.mu.Lock()
	defer pv.mu.Unlock()

	if pv.isActive == active {
		return
	}

	pv.isActive = active

	if active {
		pv.borderBox.AddCssClass(activePaneClass)
	} else {
		pv.borderBox.RemoveCssClass(activePaneClass)
	}
}

// IsActive returns whether this pane is currently active.
func (pv *PaneView) IsActive() bool {
	pv.mu.RLock()
	defer pv.mu.RUnlock()

	return pv.isActive
}

// GrabFocus focuses the placeholder when shown. Content widgets take focus
// through their own Focus hook.
func (pv *PaneView) GrabFocus() bool {
	pv.mu.RLock()
	placeholder := pv.placeholder
	pv.mu.RUnlock()

	if placeholder != nil {
		return placeholder.GrabFocus()
	}
	return pv.overlay.GrabFocus()
}

// Widget returns the overlay for embedding in containers.
func (pv *PaneView) Widget() layout.Widget {
	return pv.overlay
}

// Cleanup detaches the content and every overlay child. The view must not be
// reused afterwards.
func (pv *PaneView) Cleanup() {
	pv.mu.Lock()
	defer pv.mu.Unlock()

	pv.overlay.SetChild(nil)
	pv.content = nil
	pv.placeholder = nil

	if pv.errorLabel != nil {
		pv.overlay.RemoveOverlay(pv.errorLabel)
		pv.errorLabel = nil
	}
	pv.overlay.RemoveOverlay(pv.borderBox)
	if pv.overlay.HasParent() {
		pv.overlay.Unparent()
	}
}
