package component_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/paneshell/internal/domain/entity"
	"github.com/bnema/paneshell/internal/ui/component"
	"github.com/bnema/paneshell/internal/ui/layout"
	"github.com/bnema/paneshell/internal/ui/layout/layouttest"
)

var _ layout.RootContainer = (*component.WorkspaceView)(nil)

func newWorkspaceView(t *testing.T) (*component.WorkspaceView, *layouttest.Factory, *layouttest.Box) {
	t.Helper()
	factory := layouttest.NewFactory()
	wv := component.NewWorkspaceView(context.Background(), factory)
	require.Len(t, factory.Boxes, 1)
	return wv, factory, factory.Boxes[0]
}

func TestWorkspaceView_SetRootWidget(t *testing.T) {
	wv, _, container := newWorkspaceView(t)

	first := layouttest.NewWidget("first")
	first.SetVisible(false)
	wv.SetRootWidget(first)
	assert.Equal(t, []layout.Widget{first}, container.Children())
	assert.True(t, first.IsVisible())
	assert.Same(t, first, wv.RootWidget())

	second := layouttest.NewWidget("second")
	wv.SetRootWidget(second)
	assert.Equal(t, []layout.Widget{second}, container.Children())
	assert.False(t, first.HasParent())

	// Same widget again is a no-op.
	wv.SetRootWidget(second)
	assert.Len(t, container.Children(), 1)

	wv.SetRootWidget(nil)
	assert.Empty(t, container.Children())
	assert.Nil(t, wv.RootWidget())
}

func TestWorkspaceView_SuspendUpdatesNests(t *testing.T) {
	wv, _, container := newWorkspaceView(t)

	wv.SuspendUpdates()
	wv.SuspendUpdates()
	assert.True(t, wv.Suspended())
	assert.False(t, container.CanTarget)

	wv.ResumeUpdates()
	assert.True(t, wv.Suspended())
	assert.False(t, container.CanTarget)
	assert.Zero(t, container.ResizeQueued)

	wv.ResumeUpdates()
	assert.False(t, wv.Suspended())
	assert.True(t, container.CanTarget)
	assert.Equal(t, 1, container.ResizeQueued)

	// Unbalanced resume is ignored.
	wv.ResumeUpdates()
	assert.False(t, wv.Suspended())
	assert.Equal(t, 1, container.ResizeQueued)
}

func TestWorkspaceView_ActiveLeafFollowsRegistration(t *testing.T) {
	wv, factory, _ := newWorkspaceView(t)

	a := component.NewPaneView(factory, "a")
	b := component.NewPaneView(factory, "b")
	wv.RegisterPaneView(a)
	wv.RegisterPaneView(b)
	assert.Equal(t, 2, wv.PaneCount())
	assert.Equal(t, []entity.NodeID{"a", "b"}, wv.LeafIDs())

	wv.SetActiveLeaf("a")
	assert.True(t, a.IsActive())
	assert.Equal(t, entity.NodeID("a"), wv.ActiveLeaf())

	wv.SetActiveLeaf("b")
	assert.False(t, a.IsActive())
	assert.True(t, b.IsActive())

	wv.SetActiveLeaf("missing")
	assert.False(t, b.IsActive())
	assert.Empty(t, wv.ActiveLeaf())

	wv.SetActiveLeaf("b")
	pv, ok := wv.UnregisterPaneView("b")
	require.True(t, ok)
	assert.Same(t, b, pv)
	assert.Empty(t, wv.ActiveLeaf())
	_, ok = wv.PaneView("b")
	assert.False(t, ok)
}

func TestWorkspaceView_GeometryProvider(t *testing.T) {
	wv, factory, container := newWorkspaceView(t)

	a := component.NewPaneView(factory, "a")
	wv.RegisterPaneView(a)

	assert.Same(t, a.Widget(), wv.LeafWidget("a"))
	assert.Nil(t, wv.LeafWidget("missing"))
	assert.Same(t, container, wv.ContainerWidget())
}

func TestWorkspaceView_SetPaneMode(t *testing.T) {
	wv, _, container := newWorkspaceView(t)

	wv.SetPaneMode(true)
	assert.True(t, container.HasCssClass("pane-mode"))

	wv.SetPaneMode(false)
	assert.False(t, container.HasCssClass("pane-mode"))
}
