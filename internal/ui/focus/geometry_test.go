package focus_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/paneshell/internal/domain/entity"
	"github.com/bnema/paneshell/internal/ui/focus"
	"github.com/bnema/paneshell/internal/ui/layout"
	"github.com/bnema/paneshell/internal/ui/layout/layouttest"
	"github.com/bnema/paneshell/internal/ui/layout/mocks"
)

type fakeGeometry struct {
	order     []entity.NodeID
	widgets   map[entity.NodeID]layout.Widget
	container layout.Widget
}

func newFakeGeometry() *fakeGeometry {
	return &fakeGeometry{
		widgets:   make(map[entity.NodeID]layout.Widget),
		container: layouttest.NewWidget("workspace"),
	}
}

func (g *fakeGeometry) place(id entity.NodeID, x, y float64, w, h int) *layouttest.Widget {
	widget := layouttest.NewWidget(string(id))
	widget.SetBounds(x, y, w, h)
	g.order = append(g.order, id)
	g.widgets[id] = widget
	return widget
}

func (g *fakeGeometry) LeafIDs() []entity.NodeID { return g.order }

func (g *fakeGeometry) LeafWidget(id entity.NodeID) layout.Widget {
	if w, ok := g.widgets[id]; ok {
		return w
	}
	return nil
}

func (g *fakeGeometry) ContainerWidget() layout.Widget { return g.container }

// grid is a 2x2 layout:
//
//	a | b
//	-----
//	c | d
func grid() []entity.PaneRect {
	return []entity.PaneRect{
		{LeafID: "a", X: 0, Y: 0, W: 500, H: 400},
		{LeafID: "b", X: 500, Y: 0, W: 500, H: 400},
		{LeafID: "c", X: 0, Y: 400, W: 500, H: 400},
		{LeafID: "d", X: 500, Y: 400, W: 500, H: 400},
	}
}

func TestFindNeighbor_Grid(t *testing.T) {
	tests := []struct {
		name   string
		active entity.NodeID
		dir    focus.Direction
		want   entity.NodeID
		found  bool
	}{
		{"right of a", "a", focus.DirRight, "b", true},
		{"down from a", "a", focus.DirDown, "c", true},
		{"left of d", "d", focus.DirLeft, "c", true},
		{"up from d", "d", focus.DirUp, "b", true},
		{"left edge", "a", focus.DirLeft, "", false},
		{"bottom edge", "c", focus.DirDown, "", false},
		{"unknown active", "zz", focus.DirRight, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := focus.FindNeighbor(tt.active, grid(), tt.dir)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFindNeighbor_PrefersPerpendicularOverlap(t *testing.T) {
	rects := []entity.PaneRect{
		{LeafID: "active", X: 0, Y: 0, W: 300, H: 300},
		{LeafID: "same-row", X: 400, Y: 0, W: 300, H: 300},
		// Closer on the x axis but entirely below the active pane.
		{LeafID: "below", X: 310, Y: 500, W: 100, H: 100},
	}

	got, ok := focus.FindNeighbor("active", rects, focus.DirRight)

	require.True(t, ok)
	assert.Equal(t, entity.NodeID("same-row"), got)
}

func TestFindNeighbor_FallsBackToNonOverlapping(t *testing.T) {
	rects := []entity.PaneRect{
		{LeafID: "active", X: 0, Y: 0, W: 300, H: 300},
		{LeafID: "below-right", X: 400, Y: 500, W: 100, H: 100},
	}

	got, ok := focus.FindNeighbor("active", rects, focus.DirRight)

	require.True(t, ok)
	assert.Equal(t, entity.NodeID("below-right"), got)
}

func TestParseDirection(t *testing.T) {
	d, err := focus.ParseDirection("up")
	require.NoError(t, err)
	assert.Equal(t, focus.DirUp, d)

	_, err = focus.ParseDirection("sideways")
	assert.Error(t, err)
}

func TestCollectRects_SkipsHiddenAndUnallocated(t *testing.T) {
	g := newFakeGeometry()
	g.place("a", 0, 0, 500, 800)
	g.place("b", 500, 0, 500, 400)
	g.place("hidden", 500, 400, 500, 400).SetVisible(false)
	g.place("collapsed", 0, 0, 0, 0)
	g.order = append(g.order, "unrendered")

	rects := focus.CollectRects(g)

	assert.Equal(t, []entity.PaneRect{
		{LeafID: "a", X: 0, Y: 0, W: 500, H: 800},
		{LeafID: "b", X: 500, Y: 0, W: 500, H: 400},
	}, rects)
}

func TestCollectRects_MeasuresRelativeToContainer(t *testing.T) {
	// Arrange
	container := mocks.NewMockWidget(t)
	leaf := mocks.NewMockWidget(t)
	leaf.EXPECT().IsVisible().Return(true)
	leaf.EXPECT().ComputePoint(container).Return(120.7, 40.2, true)
	leaf.EXPECT().GetAllocatedWidth().Return(300)
	leaf.EXPECT().GetAllocatedHeight().Return(200)

	g := &fakeGeometry{
		order:     []entity.NodeID{"a"},
		widgets:   map[entity.NodeID]layout.Widget{"a": leaf},
		container: container,
	}

	// Act
	rects := focus.CollectRects(g)

	// Assert
	require.Len(t, rects, 1)
	assert.Equal(t, entity.PaneRect{LeafID: "a", X: 120, Y: 40, W: 300, H: 200}, rects[0])
}

func TestNavigate_RequestsFocusOnNeighbor(t *testing.T) {
	// Arrange
	h := newHarness()
	h.add("a", true)
	h.add("b", true)
	g := newFakeGeometry()
	g.place("a", 0, 0, 500, 800)
	g.place("b", 500, 0, 500, 800)
	require.Equal(t, focus.OutcomeApplied, h.fm.RequestFocus("a", focus.PriorityNormal, focus.ReasonProgrammatic))

	// Act
	outcome := h.fm.Navigate(g, focus.DirRight)

	// Assert
	assert.Equal(t, focus.OutcomeApplied, outcome)
	assert.Equal(t, entity.NodeID("b"), h.fm.Current())
	assert.Equal(t, focus.OutcomeDenied, h.fm.Navigate(g, focus.DirRight))
}

func TestNavigate_NoCurrentFocus(t *testing.T) {
	h := newHarness()
	h.add("a", true)

	assert.Equal(t, focus.OutcomeDenied, h.fm.Navigate(newFakeGeometry(), focus.DirLeft))
}
