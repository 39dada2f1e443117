package coordinator

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/paneshell/internal/domain/entity"
	"github.com/bnema/paneshell/internal/ui/content"
	"github.com/bnema/paneshell/internal/ui/focus"
	"github.com/bnema/paneshell/internal/ui/input"
)

// HandleAction runs a keyboard action against the workspace. It matches
// input.ActionHandler.
func (c *WorkspaceCoordinator) HandleAction(ctx context.Context, action input.Action) error {
	if c.shutdown {
		return nil
	}

	switch action {
	case input.ActionSplitRight:
		_, err := c.Split(ctx, entity.OrientationHorizontal)
		return err
	case input.ActionSplitDown:
		_, err := c.Split(ctx, entity.OrientationVertical)
		return err
	case input.ActionClosePane:
		return c.Close(ctx)

	case input.ActionFocusLeft:
		c.Navigate(focus.DirLeft)
	case input.ActionFocusRight:
		c.Navigate(focus.DirRight)
	case input.ActionFocusUp:
		c.Navigate(focus.DirUp)
	case input.ActionFocusDown:
		c.Navigate(focus.DirDown)
	case input.ActionCycleNext:
		c.Cycle(true)
	case input.ActionCyclePrev:
		c.Cycle(false)
	case input.ActionCycleSameType:
		c.CycleSameType(true)
	case input.ActionFocusPrevious:
		c.RestorePreviousFocus()

	case input.ActionContentWelcome:
		return c.ChangeContentType(ctx, c.tree.ActiveLeafID(), content.TypeWelcome)
	case input.ActionContentNotes:
		return c.ChangeContentType(ctx, c.tree.ActiveLeafID(), content.TypeNotes)
	case input.ActionContentTerminal:
		return c.ChangeContentType(ctx, c.tree.ActiveLeafID(), content.TypeTerminal)

	case input.ActionResizeLeft:
		return c.resizeAction(ctx, ResizeLeft)
	case input.ActionResizeRight:
		return c.resizeAction(ctx, ResizeRight)
	case input.ActionResizeUp:
		return c.resizeAction(ctx, ResizeUp)
	case input.ActionResizeDown:
		return c.resizeAction(ctx, ResizeDown)
	case input.ActionResizeGrow:
		return c.resizeAction(ctx, ResizeGrow)
	case input.ActionResizeShrink:
		return c.resizeAction(ctx, ResizeShrink)

	case input.ActionSaveLayout:
		return c.SaveLayout(ctx)

	default:
		return fmt.Errorf("unsupported action %q", action)
	}
	return nil
}

// resizeAction treats a missing divider as a no-op key press.
func (c *WorkspaceCoordinator) resizeAction(ctx context.Context, dir ResizeDirection) error {
	if err := c.Resize(ctx, dir); err != nil && !errors.Is(err, ErrNothingToResize) {
		return err
	}
	return nil
}

// OnModeChange shows the pane mode on the workspace view.
func (c *WorkspaceCoordinator) OnModeChange(_, to input.Mode) {
	c.view.SetPaneMode(to == input.ModePane)
}
