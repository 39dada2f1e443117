package focus

import (
	"fmt"
	"sort"

	"github.com/bnema/paneshell/internal/domain/entity"
	"github.com/bnema/paneshell/internal/ui/layout"
)

// Direction indicates the direction for geometric navigation.
type Direction string

const (
	DirLeft  Direction = "left"
	DirRight Direction = "right"
	DirUp    Direction = "up"
	DirDown  Direction = "down"
)

// ParseDirection parses a direction name.
func ParseDirection(s string) (Direction, error) {
	switch d := Direction(s); d {
	case DirLeft, DirRight, DirUp, DirDown:
		return d, nil
	default:
		return "", fmt.Errorf("unknown direction %q", s)
	}
}

// GeometryProvider exposes the widgets needed to measure panes.
type GeometryProvider interface {
	LeafIDs() []entity.NodeID
	// LeafWidget returns the widget of a leaf, or nil if not rendered.
	LeafWidget(id entity.NodeID) layout.Widget
	// ContainerWidget is the coordinate space rects are measured in.
	ContainerWidget() layout.Widget
}

// CollectRects gathers geometry from all visible panes.
func CollectRects(provider GeometryProvider) []entity.PaneRect {
	var rects []entity.PaneRect

	container := provider.ContainerWidget()

	for _, id := range provider.LeafIDs() {
		widget := provider.LeafWidget(id)
		if widget == nil || !widget.IsVisible() {
			continue
		}

		// Get position relative to container
		x, y, ok := widget.ComputePoint(container)
		if !ok {
			continue
		}

		w := widget.GetAllocatedWidth()
		h := widget.GetAllocatedHeight()

		// Skip widgets with no size (collapsed/hidden)
		if w <= 0 || h <= 0 {
			continue
		}

		rects = append(rects, entity.PaneRect{
			LeafID: id,
			X:      int(x),
			Y:      int(y),
			W:      w,
			H:      h,
		})
	}

	return rects
}

// FindNeighbor finds the nearest pane in the given direction.
// Algorithm:
//  1. Filter candidates that are in the direction (dx < 0 for Left, etc.)
//  2. Prefer panes with perpendicular overlap (same row for left/right, same column for up/down)
//  3. Score by: overlap_penalty + primary_distance * 1000 + perpendicular_distance
//  4. Return lowest scoring candidate
func FindNeighbor(active entity.NodeID, rects []entity.PaneRect, dir Direction) (entity.NodeID, bool) {
	var activeRect *entity.PaneRect
	for i := range rects {
		if rects[i].LeafID == active {
			activeRect = &rects[i]
			break
		}
	}
	if activeRect == nil {
		return "", false
	}

	candidates := scoreCandidates(*activeRect, rects, dir)
	if len(candidates) == 0 {
		return "", false
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score < candidates[j].score
	})
	return candidates[0].id, true
}

type navCandidate struct {
	id    entity.NodeID
	score int
}

func scoreCandidates(activeRect entity.PaneRect, rects []entity.PaneRect, dir Direction) []navCandidate {
	// Panes at the same level always beat panes without perpendicular overlap.
	const noOverlapPenalty = 10_000_000

	acx, acy := activeRect.Center()
	var candidates []navCandidate

	for _, rect := range rects {
		if rect.LeafID == activeRect.LeafID {
			continue
		}

		cx, cy := rect.Center()
		inDirection, primaryDist, perpDist, hasOverlap := evalDirection(activeRect, rect, cx-acx, cy-acy, dir)
		if !inDirection {
			continue
		}
		score := primaryDist*1000 + perpDist
		if !hasOverlap {
			score += noOverlapPenalty
		}
		candidates = append(candidates, navCandidate{rect.LeafID, score})
	}

	return candidates
}

// evalDirection returns: inDirection, primaryDist, perpDist, hasOverlap
func evalDirection(
	activeRect, rect entity.PaneRect,
	dx, dy int,
	dir Direction,
) (inDirection bool, primaryDist, perpDist int, hasOverlap bool) {
	switch dir {
	case DirLeft:
		return dx < 0, abs(dx), abs(dy), activeRect.OverlapsVertically(rect)
	case DirRight:
		return dx > 0, abs(dx), abs(dy), activeRect.OverlapsVertically(rect)
	case DirUp:
		return dy < 0, abs(dy), abs(dx), activeRect.OverlapsHorizontally(rect)
	case DirDown:
		return dy > 0, abs(dy), abs(dx), activeRect.OverlapsHorizontally(rect)
	default:
		return false, 0, 0, false
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Navigate moves focus to the geometric neighbor of the focused leaf.
func (m *Manager) Navigate(provider GeometryProvider, dir Direction) Outcome {
	if m.current == "" {
		return OutcomeDenied
	}
	target, ok := FindNeighbor(m.current, CollectRects(provider), dir)
	if !ok {
		m.logger.Debug().Str("direction", string(dir)).Msg("no pane in direction")
		return OutcomeDenied
	}
	return m.RequestFocus(target, PriorityHigh, ReasonKeyboard)
}
