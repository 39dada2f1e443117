package coordinator

import (
	"github.com/bnema/paneshell/internal/domain/entity"
	"github.com/bnema/paneshell/internal/ui/focus"
)

// FocusLeaf requests focus on a leaf. If its content is still starting the
// request is queued until it becomes ready.
func (c *WorkspaceCoordinator) FocusLeaf(leafID entity.NodeID, reason focus.Reason) focus.Outcome {
	priority := focus.PriorityNormal
	switch reason {
	case focus.ReasonKeyboard, focus.ReasonMouse:
		priority = focus.PriorityHigh
	case focus.ReasonContent:
		priority = focus.PriorityLow
	}
	outcome := c.focus.RequestFocus(leafID, priority, reason)
	c.logger.Debug().
		Str("pane_id", string(leafID)).
		Str("reason", string(reason)).
		Str("outcome", outcome.String()).
		Msg("focus requested")
	return outcome
}

// Navigate moves focus to the pane next to the focused one in dir.
func (c *WorkspaceCoordinator) Navigate(dir focus.Direction) bool {
	return c.focus.Navigate(c.view, dir) == focus.OutcomeApplied
}

// Cycle moves focus to the next or previous ready leaf in tree order.
func (c *WorkspaceCoordinator) Cycle(forward bool) bool {
	return c.focus.Cycle("", forward)
}

// CycleSameType cycles among leaves showing the same content type as the
// focused one.
func (c *WorkspaceCoordinator) CycleSameType(forward bool) bool {
	p, ok := c.panes[c.focus.Current()]
	if !ok {
		return c.Cycle(forward)
	}
	return c.focus.Cycle(string(p.contentType), forward)
}

// RestorePreviousFocus returns focus to the most recently focused leaf.
func (c *WorkspaceCoordinator) RestorePreviousFocus() bool {
	return c.focus.RestorePrevious()
}
