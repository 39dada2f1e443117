package coordinator_test

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/paneshell/internal/domain/entity"
	"github.com/bnema/paneshell/internal/logging"
	"github.com/bnema/paneshell/internal/ui/component"
	"github.com/bnema/paneshell/internal/ui/content"
	"github.com/bnema/paneshell/internal/ui/coordinator"
	"github.com/bnema/paneshell/internal/ui/input"
	"github.com/bnema/paneshell/internal/ui/layout"
	"github.com/bnema/paneshell/internal/ui/layout/layouttest"
	"github.com/bnema/paneshell/internal/ui/lifecycle"
	"github.com/bnema/paneshell/internal/ui/mainloop"
)

type tabFixture struct {
	ctx   context.Context
	sched *mainloop.ManualScheduler
	view  *component.TabView
	tabs  *coordinator.TabCoordinator
}

func newTabFixture(t *testing.T, hideBar bool) *tabFixture {
	t.Helper()

	ctx := logging.WithContext(context.Background(), zerolog.Nop())
	sched := mainloop.NewManualScheduler()
	factory := layouttest.NewFactory()
	registry := content.NewRegistry(factory, sched)
	require.NoError(t, content.RegisterBuiltins(registry, content.BuiltinOptions{Shell: "/bin/sh"}))

	f := &tabFixture{ctx: ctx, sched: sched, view: component.NewTabView(factory)}
	f.tabs = coordinator.NewTabCoordinator(ctx, coordinator.TabCoordinatorConfig{
		View:    f.view,
		Factory: factory,
		Workspace: coordinator.WorkspaceCoordinatorConfig{
			Pool:               layout.NewContainerPool(ctx, factory, 4),
			Registry:           registry,
			Scheduler:          sched,
			DefaultContentType: content.TypeNotes,
		},
		HideBarWhenSingleTab: hideBar,
	})
	require.NoError(t, f.tabs.Start(ctx))
	t.Cleanup(func() { f.tabs.Shutdown(ctx) })
	return f
}

func (f *tabFixture) workspace(t *testing.T, id entity.TabID) *coordinator.WorkspaceCoordinator {
	t.Helper()
	ws, ok := f.tabs.Workspace(id)
	require.True(t, ok, "tab %s", id)
	return ws
}

func (f *tabFixture) pageVisible(t *testing.T, id entity.TabID) bool {
	t.Helper()
	page, ok := f.view.Page(id)
	require.True(t, ok, "tab %s", id)
	return page.IsVisible()
}

func TestTabCoordinator_StartOpensOneTab(t *testing.T) {
	f := newTabFixture(t, true)

	assert.Equal(t, []entity.TabID{"tab-1"}, f.view.TabIDs())
	assert.Equal(t, entity.TabID("tab-1"), f.view.ActiveTab())
	assert.Equal(t, "Tab 1", f.view.Title("tab-1"))
	assert.True(t, f.pageVisible(t, "tab-1"))
	assert.False(t, f.view.BarVisible(), "single tab hides the bar")
	assert.Equal(t, 1, f.tabs.PaneCount())

	require.NoError(t, f.tabs.Start(f.ctx))
	assert.Equal(t, 1, f.tabs.Tabs().Count(), "start twice keeps one tab")
}

func TestTabCoordinator_BarAlwaysVisibleWithoutAutoHide(t *testing.T) {
	f := newTabFixture(t, false)
	assert.True(t, f.view.BarVisible())
}

func TestTabCoordinator_NewTabSwitchesAndSuspendsPrevious(t *testing.T) {
	f := newTabFixture(t, true)
	first := f.workspace(t, "tab-1")
	firstLeaf := first.Tree().ActiveLeafID()

	require.NoError(t, f.tabs.HandleAction(f.ctx, input.ActionNewTab))

	assert.Equal(t, []entity.TabID{"tab-1", "tab-2"}, f.view.TabIDs())
	assert.Equal(t, entity.TabID("tab-2"), f.view.ActiveTab())
	assert.Equal(t, entity.TabID("tab-2"), f.tabs.Tabs().ActiveTabID)
	assert.False(t, f.pageVisible(t, "tab-1"))
	assert.True(t, f.pageVisible(t, "tab-2"))
	assert.True(t, f.view.BarVisible())
	assert.Equal(t, "Tab 2", f.view.Title("tab-2"))

	state, _ := first.PaneState(firstLeaf)
	assert.Equal(t, lifecycle.StateSuspended, state)

	second := f.workspace(t, "tab-2")
	assert.Same(t, second, f.tabs.Active())
	state, _ = second.PaneState(second.Tree().ActiveLeafID())
	assert.Equal(t, lifecycle.StateReady, state)
}

func TestTabCoordinator_SwitchResumesAndRefocuses(t *testing.T) {
	f := newTabFixture(t, true)
	require.NoError(t, f.tabs.HandleAction(f.ctx, input.ActionNewTab))

	require.NoError(t, f.tabs.HandleAction(f.ctx, input.ActionPrevTab))
	assert.Equal(t, entity.TabID("tab-1"), f.view.ActiveTab())

	first := f.workspace(t, "tab-1")
	leaf := first.Tree().ActiveLeafID()
	state, _ := first.PaneState(leaf)
	assert.Equal(t, lifecycle.StateReady, state)
	assert.Equal(t, leaf, first.Focus().Current())

	second := f.workspace(t, "tab-2")
	state, _ = second.PaneState(second.Tree().ActiveLeafID())
	assert.Equal(t, lifecycle.StateSuspended, state)

	// wraps around
	require.NoError(t, f.tabs.HandleAction(f.ctx, input.ActionPrevTab))
	assert.Equal(t, entity.TabID("tab-2"), f.view.ActiveTab())
	require.NoError(t, f.tabs.HandleAction(f.ctx, input.ActionNextTab))
	assert.Equal(t, entity.TabID("tab-1"), f.view.ActiveTab())

	assert.ErrorIs(t, f.tabs.SwitchTo(f.ctx, "tab-9"), entity.ErrNotFound)
}

func TestTabCoordinator_ActionsGoToActiveWorkspace(t *testing.T) {
	f := newTabFixture(t, true)
	require.NoError(t, f.tabs.HandleAction(f.ctx, input.ActionNewTab))

	require.NoError(t, f.tabs.HandleAction(f.ctx, input.ActionSplitRight))

	assert.Equal(t, 2, f.workspace(t, "tab-2").Tree().LeafCount())
	assert.Equal(t, 1, f.workspace(t, "tab-1").Tree().LeafCount())
	assert.Equal(t, 3, f.tabs.PaneCount())
}

func TestTabCoordinator_CloseTab(t *testing.T) {
	f := newTabFixture(t, true)
	require.NoError(t, f.tabs.HandleAction(f.ctx, input.ActionNewTab))
	require.NoError(t, f.tabs.HandleAction(f.ctx, input.ActionNewTab))
	require.NoError(t, f.tabs.SwitchTo(f.ctx, "tab-2"))

	require.NoError(t, f.tabs.HandleAction(f.ctx, input.ActionCloseTab))

	assert.Equal(t, []entity.TabID{"tab-1", "tab-3"}, f.view.TabIDs())
	assert.Equal(t, entity.TabID("tab-3"), f.view.ActiveTab(), "successor becomes active")
	assert.True(t, f.pageVisible(t, "tab-3"))
	assert.Equal(t, "Tab 2", f.view.Title("tab-3"), "titles follow positions")
	_, ok := f.tabs.Workspace("tab-2")
	assert.False(t, ok)

	state, _ := f.workspace(t, "tab-3").PaneState(f.workspace(t, "tab-3").Tree().ActiveLeafID())
	assert.Equal(t, lifecycle.StateReady, state)

	require.NoError(t, f.tabs.CloseTab(f.ctx, "tab-1"))
	assert.False(t, f.view.BarVisible())
	assert.ErrorIs(t, f.tabs.CloseTab(f.ctx, "tab-1"), entity.ErrNotFound)
}

func TestTabCoordinator_CloseLastTab(t *testing.T) {
	f := newTabFixture(t, true)

	assert.ErrorIs(t, f.tabs.Close(f.ctx), coordinator.ErrLastTab)
	assert.Equal(t, 1, f.tabs.Tabs().Count())

	quit := 0
	f.tabs.SetOnQuit(func() { quit++ })
	require.NoError(t, f.tabs.HandleAction(f.ctx, input.ActionCloseTab))
	assert.Equal(t, 1, quit)
	assert.Equal(t, 1, f.tabs.Tabs().Count(), "the workspace stays until shutdown")
}

func TestTabCoordinator_ShutdownIgnoresLaterActions(t *testing.T) {
	f := newTabFixture(t, true)
	f.tabs.Shutdown(f.ctx)

	require.NoError(t, f.tabs.HandleAction(f.ctx, input.ActionNewTab))
	assert.Equal(t, 1, f.tabs.Tabs().Count())
	_, err := f.tabs.Create(f.ctx)
	assert.Error(t, err)
}
