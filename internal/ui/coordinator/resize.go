package coordinator

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/paneshell/internal/domain/entity"
	"github.com/bnema/paneshell/internal/logging"
)

// DefaultResizeStepPercent is how far one keyboard resize moves a divider.
const DefaultResizeStepPercent = 5.0

// ErrNothingToResize is returned when the active leaf has no divider in the
// requested direction.
var ErrNothingToResize = errors.New("nothing to resize")

// ResizeDirection says which way a keyboard resize moves a divider.
type ResizeDirection string

const (
	ResizeLeft  ResizeDirection = "left"
	ResizeRight ResizeDirection = "right"
	ResizeUp    ResizeDirection = "up"
	ResizeDown  ResizeDirection = "down"
	// ResizeGrow and ResizeShrink act on the nearest divider of the active
	// leaf, whatever its orientation.
	ResizeGrow   ResizeDirection = "grow"
	ResizeShrink ResizeDirection = "shrink"
)

// Resize moves the divider nearest to the active leaf by one step.
func (c *WorkspaceCoordinator) Resize(ctx context.Context, dir ResizeDirection) error {
	log := logging.FromContext(ctx)
	leafID := c.tree.ActiveLeafID()

	var match func(entity.Node) bool
	switch dir {
	case ResizeLeft, ResizeRight:
		match = func(n entity.Node) bool { return n.Orientation == entity.OrientationHorizontal }
	case ResizeUp, ResizeDown:
		match = func(n entity.Node) bool { return n.Orientation == entity.OrientationVertical }
	case ResizeGrow, ResizeShrink:
	default:
		return fmt.Errorf("unknown resize direction %q", dir)
	}

	split, inFirst, ok := c.tree.EnclosingSplit(leafID, match)
	if !ok {
		log.Debug().Str("pane_id", string(leafID)).Str("direction", string(dir)).Msg("nothing to resize")
		return ErrNothingToResize
	}

	// Ratio is the share of the first child: moving the divider right or
	// down raises it.
	delta := c.resizeStep / 100
	switch dir {
	case ResizeLeft, ResizeUp:
		delta = -delta
	case ResizeGrow:
		if !inFirst {
			delta = -delta
		}
	case ResizeShrink:
		if inFirst {
			delta = -delta
		}
	}

	oldRatio := split.Ratio
	if err := c.SetSplitRatio(ctx, split.ID, split.Ratio+delta); err != nil {
		return err
	}
	node, _ := c.tree.Find(split.ID)

	log.Debug().
		Str("direction", string(dir)).
		Str("split_id", string(split.ID)).
		Float64("old_ratio", oldRatio).
		Float64("new_ratio", node.Ratio).
		Msg("pane resized")
	return nil
}
