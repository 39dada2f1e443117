package entity

// PaneRect represents a leaf's screen position and size.
// Used for geometric navigation to find adjacent panes by position.
type PaneRect struct {
	LeafID NodeID
	X, Y   int // Top-left position relative to workspace container
	W, H   int // Width and height
}

// Center returns the center point of the rectangle.
func (r PaneRect) Center() (cx, cy int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// OverlapsVertically reports whether the two rects share any rows.
func (r PaneRect) OverlapsVertically(other PaneRect) bool {
	return r.Y < other.Y+other.H && other.Y < r.Y+r.H
}

// OverlapsHorizontally reports whether the two rects share any columns.
func (r PaneRect) OverlapsHorizontally(other PaneRect) bool {
	return r.X < other.X+other.W && other.X < r.X+r.W
}
