package coordinator

import (
	"context"
	"fmt"

	"github.com/bnema/paneshell/internal/domain/entity"
	"github.com/bnema/paneshell/internal/logging"
	"github.com/bnema/paneshell/internal/ui/component"
	"github.com/bnema/paneshell/internal/ui/content"
	"github.com/bnema/paneshell/internal/ui/focus"
	"github.com/bnema/paneshell/internal/ui/lifecycle"
)

// pane is everything the coordinator owns for one leaf. The view outlives
// content changes; widget and machine are replaced together.
type pane struct {
	id          entity.NodeID
	contentType entity.ContentType
	view        *component.PaneView
	widget      content.Widget // nil while the placeholder is shown
	machine     *lifecycle.Machine
}

// placeholder stands in for content that could not be created, so the leaf
// still takes part in focus.
type placeholder struct {
	view *component.PaneView
}

func (p placeholder) Start(r lifecycle.Reporter) { r.Ready() }
func (p placeholder) Focus() bool                { return p.view.GrabFocus() }
func (p placeholder) Suspend()                   {}
func (p placeholder) Resume()                    {}
func (p placeholder) Cleanup()                   {}

// createPane builds the pane view of a leaf and starts its content.
func (c *WorkspaceCoordinator) createPane(node entity.Node) *pane {
	p := &pane{
		id:   node.ID,
		view: component.NewPaneView(c.view.Factory(), node.ID),
	}
	c.panes[node.ID] = p
	c.view.RegisterPaneView(p.view)
	c.attachContent(p, node.ContentType, node.ContentState)
	return p
}

// attachContent creates the content widget for contentType, wires its
// lifecycle and starts it. On failure the pane shows a placeholder.
func (c *WorkspaceCoordinator) attachContent(p *pane, contentType entity.ContentType, state map[string]any) {
	ctx := logging.WithPaneID(c.ctx, string(p.id))
	log := logging.FromContext(ctx)

	p.contentType = contentType

	var target lifecycle.Content
	canSuspend := false
	widget, meta, err := c.registry.Create(ctx, contentType, p.id, state)
	if err != nil {
		log.Error().Err(err).Str("content_type", string(contentType)).Msg("failed to create content")
		p.widget = nil
		p.view.ShowPlaceholder(fmt.Sprintf("Cannot open %s content: %v", contentType, err))
		target = placeholder{view: p.view}
	} else {
		p.widget = widget
		p.view.SetContent(widget.View())
		target = widget
		canSuspend = meta.CanSuspend
	}
	p.view.SetError("")

	m := lifecycle.New(p.id, target, c.scheduler,
		lifecycle.WithRetryPolicy(c.retryPolicy),
		lifecycle.WithSuspendable(canSuspend),
		lifecycle.WithLogger(logging.Component(ctx, "lifecycle")),
	)
	p.machine = m

	m.Track(m.Subscribe(func(ev lifecycle.Event) { c.onLifecycleEvent(p, ev) }))
	if widget != nil {
		id := p.id
		m.Track(widget.OnRequest(func(req content.Request) { c.onContentRequest(id, req) }))
	}

	c.focus.Register(p.id, m, focus.Policy{MaxFocusCount: c.maxFocusCount})
	c.focus.AddToGroup(string(contentType), p.id)

	m.Initialize()
}

// detachContent tears the content of a pane down and leaves the view empty.
func (c *WorkspaceCoordinator) detachContent(p *pane) {
	c.focus.Unregister(p.id)
	if p.machine != nil {
		p.machine.Cleanup()
		p.machine = nil
	}
	p.widget = nil
	p.view.SetContent(nil)
}

// destroyPane removes every trace of a leaf.
func (c *WorkspaceCoordinator) destroyPane(id entity.NodeID) {
	p, ok := c.panes[id]
	if !ok {
		return
	}
	c.detachContent(p)
	c.view.UnregisterPaneView(id)
	p.view.Cleanup()
	delete(c.panes, id)
}

func (c *WorkspaceCoordinator) onLifecycleEvent(p *pane, ev lifecycle.Event) {
	switch ev.To {
	case lifecycle.StateReady:
		p.view.SetError("")
	case lifecycle.StateError:
		if p.machine != nil && p.machine.RetriesExhausted() {
			p.view.SetError(fmt.Sprintf("%s failed: %v", p.contentType, ev.Err))
		}
	}
}

// ChangeContentType replaces the content of a leaf. The pane view and its
// place in the layout are kept.
func (c *WorkspaceCoordinator) ChangeContentType(ctx context.Context, leafID entity.NodeID, contentType entity.ContentType) error {
	log := logging.FromContext(ctx)

	p, ok := c.panes[leafID]
	if !ok {
		return fmt.Errorf("change content type %s: %w", leafID, entity.ErrNotFound)
	}
	if err := c.tree.ChangeContentType(leafID, contentType); err != nil {
		return err
	}
	if p.contentType == contentType && p.machine != nil && !p.machine.RetriesExhausted() {
		return nil
	}

	wasFocused := c.focus.Current() == leafID
	c.detachContent(p)
	c.attachContent(p, contentType, nil)

	if wasFocused || c.tree.ActiveLeafID() == leafID {
		c.focus.RequestFocus(leafID, focus.PriorityHigh, focus.ReasonProgrammatic)
	}

	log.Info().
		Str("pane_id", string(leafID)).
		Str("content_type", string(contentType)).
		Msg("pane content changed")
	return nil
}

// onContentRequest handles requests coming from content widgets. Structural
// actions run on the next tick so the widget is never torn down while it is
// still emitting.
func (c *WorkspaceCoordinator) onContentRequest(id entity.NodeID, req content.Request) {
	if req.Kind == content.RequestFocus {
		c.FocusLeaf(id, focus.ReasonContent)
		return
	}

	switch req.Action {
	case content.ActionStateChanged:
		c.schedulePersist()
	case content.ActionSplitHorizontal, content.ActionSplitVertical, content.ActionClose, content.ActionChangeType:
		c.scheduler.Post(func() { c.runContentAction(id, req) })
	default:
		c.logger.Debug().Str("pane_id", string(id)).Str("action", req.Action).Msg("ignoring unknown content action")
	}
}

func (c *WorkspaceCoordinator) runContentAction(id entity.NodeID, req content.Request) {
	if c.shutdown || !c.tree.IsLeaf(id) {
		return
	}
	ctx := c.ctx
	var err error
	switch req.Action {
	case content.ActionSplitHorizontal:
		_, err = c.SplitLeaf(ctx, id, entity.OrientationHorizontal)
	case content.ActionSplitVertical:
		_, err = c.SplitLeaf(ctx, id, entity.OrientationVertical)
	case content.ActionClose:
		err = c.CloseLeaf(ctx, id)
	case content.ActionChangeType:
		err = c.ChangeContentType(ctx, id, entity.ContentType(req.Arg))
	}
	if err != nil {
		c.logger.Debug().Err(err).Str("pane_id", string(id)).Str("action", req.Action).Msg("content action failed")
	}
}

// SuspendLeaf parks the content of a leaf when its type allows it.
func (c *WorkspaceCoordinator) SuspendLeaf(leafID entity.NodeID) bool {
	p, ok := c.panes[leafID]
	if !ok || p.machine == nil {
		return false
	}
	return p.machine.Suspend()
}

// ResumeLeaf brings suspended content back.
func (c *WorkspaceCoordinator) ResumeLeaf(leafID entity.NodeID) bool {
	p, ok := c.panes[leafID]
	if !ok || p.machine == nil {
		return false
	}
	return p.machine.Resume()
}

// SuspendAll parks every suspendable leaf, e.g. when the workspace is hidden
// behind another tab. It returns how many leaves were suspended.
func (c *WorkspaceCoordinator) SuspendAll() int {
	n := 0
	for id := range c.panes {
		if c.SuspendLeaf(id) {
			n++
		}
	}
	return n
}

// ResumeAll brings every suspended leaf back and gives the active leaf
// keyboard focus again.
func (c *WorkspaceCoordinator) ResumeAll() int {
	n := 0
	for id, p := range c.panes {
		if p.machine != nil && p.machine.State() == lifecycle.StateSuspended && c.ResumeLeaf(id) {
			n++
		}
	}
	c.FocusLeaf(c.tree.ActiveLeafID(), focus.ReasonProgrammatic)
	return n
}

// PaneState returns the lifecycle state of a leaf's content.
func (c *WorkspaceCoordinator) PaneState(leafID entity.NodeID) (lifecycle.State, bool) {
	p, ok := c.panes[leafID]
	if !ok || p.machine == nil {
		return "", false
	}
	return p.machine.State(), true
}

// PaneView returns the view of a leaf.
func (c *WorkspaceCoordinator) PaneView(leafID entity.NodeID) (*component.PaneView, bool) {
	p, ok := c.panes[leafID]
	if !ok {
		return nil, false
	}
	return p.view, true
}

// ContentWidget returns the content widget of a leaf, nil when a placeholder
// is shown.
func (c *WorkspaceCoordinator) ContentWidget(leafID entity.NodeID) (content.Widget, bool) {
	p, ok := c.panes[leafID]
	if !ok || p.widget == nil {
		return nil, false
	}
	return p.widget, true
}

// collectContentState copies the state of stateful content into the tree.
func (c *WorkspaceCoordinator) collectContentState() {
	for id, p := range c.panes {
		st, ok := p.widget.(content.Stateful)
		if !ok {
			continue
		}
		if err := c.tree.SetContentState(id, st.SaveState()); err != nil {
			c.logger.Debug().Err(err).Str("pane_id", string(id)).Msg("skipping content state")
		}
	}
}
