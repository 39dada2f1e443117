package coordinator_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/paneshell/internal/application/usecase"
	"github.com/bnema/paneshell/internal/domain/entity"
	repomocks "github.com/bnema/paneshell/internal/domain/repository/mocks"
	"github.com/bnema/paneshell/internal/logging"
	"github.com/bnema/paneshell/internal/ui/component"
	"github.com/bnema/paneshell/internal/ui/content"
	"github.com/bnema/paneshell/internal/ui/coordinator"
	"github.com/bnema/paneshell/internal/ui/focus"
	"github.com/bnema/paneshell/internal/ui/layout"
	"github.com/bnema/paneshell/internal/ui/layout/layouttest"
	"github.com/bnema/paneshell/internal/ui/lifecycle"
	"github.com/bnema/paneshell/internal/ui/mainloop"
)

const (
	typeSlow    entity.ContentType = "slow"
	typeBroken  entity.ContentType = "broken"
	typeFailing entity.ContentType = "failing"
)

// slowContent reports ready only when the test says so.
type slowContent struct {
	*content.Emitter
	view     *layouttest.Widget
	reporter lifecycle.Reporter
	focused  int
	cleaned  bool
}

func (s *slowContent) View() layout.Widget        { return s.view }
func (s *slowContent) Start(r lifecycle.Reporter) { s.reporter = r }
func (s *slowContent) Focus() bool                { s.focused++; return true }
func (s *slowContent) Suspend()                   {}
func (s *slowContent) Resume()                    {}
func (s *slowContent) Cleanup()                   { s.cleaned = true }

type failingContent struct {
	*content.Emitter
	view   *layouttest.Widget
	starts int
}

func (f *failingContent) View() layout.Widget { return f.view }
func (f *failingContent) Start(r lifecycle.Reporter) {
	f.starts++
	r.Fail(errors.New("backend unavailable"))
}
func (f *failingContent) Focus() bool { return false }
func (f *failingContent) Suspend()    {}
func (f *failingContent) Resume()     {}
func (f *failingContent) Cleanup()    {}

type fixture struct {
	ctx      context.Context
	sched    *mainloop.ManualScheduler
	factory  *layouttest.Factory
	tree     *entity.PaneTree
	view     *component.WorkspaceView
	registry *content.Registry
	coord    *coordinator.WorkspaceCoordinator

	slow    []*slowContent
	failing []*failingContent
}

type fixtureOption func(*coordinator.WorkspaceCoordinatorConfig)

func withLayouts(uc *usecase.ManageLayoutsUseCase, name string, restore bool) fixtureOption {
	return func(cfg *coordinator.WorkspaceCoordinatorConfig) {
		cfg.Layouts = uc
		cfg.LayoutName = name
		cfg.RestoreOnStart = restore
	}
}

func withRetryPolicy(p lifecycle.RetryPolicy) fixtureOption {
	return func(cfg *coordinator.WorkspaceCoordinatorConfig) { cfg.RetryPolicy = p }
}

func newFixture(t *testing.T, rootType entity.ContentType, opts ...fixtureOption) *fixture {
	t.Helper()

	f := &fixture{
		ctx:     logging.WithContext(context.Background(), zerolog.Nop()),
		sched:   mainloop.NewManualScheduler(),
		factory: layouttest.NewFactory(),
	}
	f.registry = content.NewRegistry(f.factory, f.sched)
	require.NoError(t, content.RegisterBuiltins(f.registry, content.BuiltinOptions{Shell: "/bin/sh"}))
	require.NoError(t, f.registry.Register(content.Metadata{Type: typeSlow}, func(_ context.Context, p content.Params) (content.Widget, error) {
		s := &slowContent{Emitter: content.NewEmitter(p.LeafID), view: layouttest.NewWidget("slow-" + string(p.LeafID))}
		f.slow = append(f.slow, s)
		return s, nil
	}))
	require.NoError(t, f.registry.Register(content.Metadata{Type: typeBroken}, func(context.Context, content.Params) (content.Widget, error) {
		return nil, errors.New("no backend")
	}))
	require.NoError(t, f.registry.Register(content.Metadata{Type: typeFailing}, func(_ context.Context, p content.Params) (content.Widget, error) {
		fc := &failingContent{Emitter: content.NewEmitter(p.LeafID), view: layouttest.NewWidget("failing")}
		f.failing = append(f.failing, fc)
		return fc, nil
	}))

	f.tree = entity.NewPaneTreeWithRoot("root", rootType, entity.WithIDGenerator(entity.NewSequentialIDGenerator("n")))
	f.view = component.NewWorkspaceView(f.ctx, f.factory)

	cfg := coordinator.WorkspaceCoordinatorConfig{
		Tree:      f.tree,
		View:      f.view,
		Pool:      layout.NewContainerPool(f.ctx, f.factory, 4),
		Registry:  f.registry,
		Scheduler: f.sched,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	f.coord = coordinator.NewWorkspaceCoordinator(f.ctx, cfg)
	return f
}

func (f *fixture) start(t *testing.T) {
	t.Helper()
	require.NoError(t, f.coord.Start(f.ctx))
}

func (f *fixture) paneView(t *testing.T, id entity.NodeID) *component.PaneView {
	t.Helper()
	pv, ok := f.coord.PaneView(id)
	require.True(t, ok, "pane view %s", id)
	return pv
}

func (f *fixture) notes(t *testing.T, id entity.NodeID) *content.Notes {
	t.Helper()
	w, ok := f.coord.ContentWidget(id)
	require.True(t, ok)
	n, ok := w.(*content.Notes)
	require.True(t, ok, "content of %s is %T", id, w)
	return n
}

func TestWorkspaceCoordinator_StartRendersAndFocusesActiveLeaf(t *testing.T) {
	f := newFixture(t, content.TypeNotes)

	f.start(t)

	assert.Same(t, f.paneView(t, "root").Widget(), f.view.RootWidget())
	assert.Equal(t, entity.NodeID("root"), f.coord.Focus().Current())
	assert.Equal(t, entity.NodeID("root"), f.view.ActiveLeaf())
	assert.True(t, f.paneView(t, "root").IsActive())

	state, ok := f.coord.PaneState("root")
	require.True(t, ok)
	assert.Equal(t, lifecycle.StateReady, state)
	assert.NoError(t, f.coord.Synchronizer().Verify(f.tree))
}

func TestWorkspaceCoordinator_SplitKeepsActiveLeaf(t *testing.T) {
	f := newFixture(t, content.TypeNotes)
	f.start(t)

	newID, err := f.coord.SplitLeaf(f.ctx, "root", entity.OrientationHorizontal)
	require.NoError(t, err)
	f.sched.Drain(10)

	assert.Equal(t, entity.NodeID("n1"), newID)
	assert.Equal(t, 2, f.tree.LeafCount())
	assert.Equal(t, entity.NodeID("root"), f.coord.Focus().Current())
	assert.Equal(t, entity.NodeID("root"), f.tree.ActiveLeafID())
	assert.Equal(t, entity.NodeID("root"), f.view.ActiveLeaf())
	assert.True(t, f.paneView(t, "root").IsActive())
	assert.False(t, f.paneView(t, newID).IsActive())
	assert.Empty(t, f.coord.Focus().History(), "split leaves history alone")
	assert.Equal(t, 2, f.view.PaneCount())
	f.notes(t, newID)
	assert.NoError(t, f.coord.Synchronizer().Verify(f.tree))
	assert.Equal(t, 1, f.coord.Synchronizer().Stats().Patches)
}

func TestWorkspaceCoordinator_SplitRefocusesReparentedLeaf(t *testing.T) {
	f := newFixture(t, typeSlow)
	f.start(t)
	f.slow[0].reporter.Ready()
	f.sched.Drain(10)
	require.Equal(t, 1, f.slow[0].focused)

	_, err := f.coord.SplitLeaf(f.ctx, "root", entity.OrientationVertical)
	require.NoError(t, err)

	assert.Equal(t, 2, f.slow[0].focused)
	require.Len(t, f.slow, 2)
	assert.Zero(t, f.slow[1].focused)
	assert.Equal(t, entity.NodeID("root"), f.coord.Focus().Current())
}

func TestWorkspaceCoordinator_SplitUnknownLeaf(t *testing.T) {
	f := newFixture(t, content.TypeNotes)
	f.start(t)

	_, err := f.coord.SplitLeaf(f.ctx, "missing", entity.OrientationVertical)

	assert.ErrorIs(t, err, entity.ErrNotFound)
	assert.Equal(t, 1, f.tree.LeafCount())
}

func TestWorkspaceCoordinator_CloseMovesFocusToSibling(t *testing.T) {
	f := newFixture(t, content.TypeNotes)
	f.start(t)
	newID, err := f.coord.SplitLeaf(f.ctx, "root", entity.OrientationVertical)
	require.NoError(t, err)
	closed := f.notes(t, newID)

	require.NoError(t, f.coord.CloseLeaf(f.ctx, newID))

	assert.Equal(t, 1, f.tree.LeafCount())
	assert.Equal(t, entity.NodeID("root"), f.tree.ActiveLeafID())
	assert.Equal(t, entity.NodeID("root"), f.coord.Focus().Current())
	assert.Equal(t, 1, f.view.PaneCount())
	assert.False(t, f.coord.Focus().IsRegistered(newID))
	assert.Zero(t, closed.Subscribers(), "request subscription released")
	_, ok := f.coord.PaneView(newID)
	assert.False(t, ok)
	assert.NoError(t, f.coord.Synchronizer().Verify(f.tree))
}

func TestWorkspaceCoordinator_CloseLastPaneResetsContent(t *testing.T) {
	f := newFixture(t, content.TypeNotes)
	f.start(t)

	require.NoError(t, f.coord.CloseLeaf(f.ctx, "root"))

	node, ok := f.tree.Find("root")
	require.True(t, ok)
	assert.Equal(t, content.TypeWelcome, node.ContentType)
	assert.Equal(t, entity.NodeID("root"), f.coord.Focus().Current())
	assert.Equal(t, []entity.NodeID{"root"}, f.coord.Focus().Group(string(content.TypeWelcome)))

	err := f.coord.Close(f.ctx)
	assert.ErrorIs(t, err, entity.ErrLastPane)
}

func TestWorkspaceCoordinator_FocusQueuedUntilContentReady(t *testing.T) {
	f := newFixture(t, typeSlow)
	f.start(t)

	require.Len(t, f.slow, 1)
	assert.Empty(t, f.coord.Focus().Current())
	require.Len(t, f.coord.Focus().Queue(), 1)

	f.slow[0].reporter.Ready()
	f.sched.Drain(10)

	assert.Equal(t, entity.NodeID("root"), f.coord.Focus().Current())
	assert.Equal(t, 1, f.slow[0].focused)
}

func TestWorkspaceCoordinator_BrokenContentShowsPlaceholder(t *testing.T) {
	f := newFixture(t, typeBroken)
	f.start(t)

	pv := f.paneView(t, "root")
	assert.True(t, pv.HasPlaceholder())
	_, ok := f.coord.ContentWidget("root")
	assert.False(t, ok)

	state, _ := f.coord.PaneState("root")
	assert.Equal(t, lifecycle.StateReady, state)
	assert.Equal(t, entity.NodeID("root"), f.coord.Focus().Current())
}

func TestWorkspaceCoordinator_ExhaustedRetriesShowError(t *testing.T) {
	f := newFixture(t, typeFailing, withRetryPolicy(lifecycle.RetryPolicy{
		MaxRetries:    2,
		BaseDelay:     10 * time.Millisecond,
		BackoffFactor: 2,
	}))
	f.start(t)
	pv := f.paneView(t, "root")

	require.Len(t, f.failing, 1)
	assert.Equal(t, 1, f.failing[0].starts)
	assert.False(t, pv.HasError(), "a retry is still pending")

	f.sched.Advance(10 * time.Millisecond)

	assert.Equal(t, 2, f.failing[0].starts)
	assert.True(t, pv.HasError())
	assert.Contains(t, pv.ErrorText(), "backend unavailable")
	assert.Empty(t, f.coord.Focus().Current(), "failed content is never focused")

	require.NoError(t, f.coord.ChangeContentType(f.ctx, "root", content.TypeNotes))
	assert.False(t, pv.HasError())
	assert.Equal(t, entity.NodeID("root"), f.coord.Focus().Current())
}

func TestWorkspaceCoordinator_ContentActionsRunOnNextTick(t *testing.T) {
	f := newFixture(t, content.TypeNotes)
	f.start(t)

	f.notes(t, "root").RequestAction(content.ActionSplitVertical, "")
	assert.Equal(t, 1, f.tree.LeafCount(), "not applied while the widget is emitting")

	f.sched.Tick()

	require.Equal(t, 2, f.tree.LeafCount())
	split, ok := f.tree.Find(f.tree.Root())
	require.True(t, ok)
	assert.Equal(t, entity.OrientationVertical, split.Orientation)

	f.notes(t, "n1").RequestAction(content.ActionChangeType, string(content.TypeWelcome))
	f.sched.Tick()

	node, _ := f.tree.Find("n1")
	assert.Equal(t, content.TypeWelcome, node.ContentType)
	w, ok := f.coord.ContentWidget("n1")
	require.True(t, ok)
	_, isNotes := w.(*content.Notes)
	assert.False(t, isNotes)
}

func TestWorkspaceCoordinator_ContentCloseActionAfterLeafGone(t *testing.T) {
	f := newFixture(t, content.TypeNotes)
	f.start(t)
	newID, err := f.coord.SplitLeaf(f.ctx, "root", entity.OrientationHorizontal)
	require.NoError(t, err)

	f.notes(t, newID).RequestAction(content.ActionClose, "")
	require.NoError(t, f.coord.CloseLeaf(f.ctx, newID))

	assert.NotPanics(t, func() { f.sched.Tick() })
	assert.Equal(t, 1, f.tree.LeafCount())
}

func TestWorkspaceCoordinator_ContentFocusRequest(t *testing.T) {
	f := newFixture(t, content.TypeNotes)
	f.start(t)
	newID, err := f.coord.SplitLeaf(f.ctx, "root", entity.OrientationHorizontal)
	require.NoError(t, err)

	f.notes(t, newID).RequestFocus()

	assert.Equal(t, newID, f.coord.Focus().Current())
	assert.Equal(t, newID, f.tree.ActiveLeafID())
}

func TestWorkspaceCoordinator_NavigateByGeometry(t *testing.T) {
	f := newFixture(t, content.TypeNotes)
	f.start(t)
	newID, err := f.coord.SplitLeaf(f.ctx, "root", entity.OrientationHorizontal)
	require.NoError(t, err)

	f.paneView(t, "root").Widget().(*layouttest.Overlay).SetBounds(0, 0, 500, 800)
	f.paneView(t, newID).Widget().(*layouttest.Overlay).SetBounds(500, 0, 500, 800)

	assert.True(t, f.coord.Navigate(focus.DirRight))
	assert.Equal(t, newID, f.coord.Focus().Current())
	assert.False(t, f.coord.Navigate(focus.DirRight), "nothing further right")
	assert.True(t, f.coord.Navigate(focus.DirLeft))
	assert.Equal(t, entity.NodeID("root"), f.coord.Focus().Current())
}

func TestWorkspaceCoordinator_CycleAndRestore(t *testing.T) {
	f := newFixture(t, content.TypeNotes)
	f.start(t)
	newID, err := f.coord.SplitLeaf(f.ctx, "root", entity.OrientationHorizontal)
	require.NoError(t, err)

	assert.True(t, f.coord.Cycle(true))
	assert.Equal(t, newID, f.coord.Focus().Current())
	assert.Equal(t, newID, f.tree.ActiveLeafID())

	assert.True(t, f.coord.RestorePreviousFocus())
	assert.Equal(t, entity.NodeID("root"), f.coord.Focus().Current())
	assert.Equal(t, entity.NodeID("root"), f.tree.ActiveLeafID())

	assert.True(t, f.coord.CycleSameType(false))
	assert.Equal(t, newID, f.coord.Focus().Current())
}

func TestWorkspaceCoordinator_SetSplitRatio(t *testing.T) {
	f := newFixture(t, content.TypeNotes)
	f.start(t)
	_, err := f.coord.SplitLeaf(f.ctx, "root", entity.OrientationHorizontal)
	require.NoError(t, err)
	splitID := f.tree.Root()

	require.NoError(t, f.coord.SetSplitRatio(f.ctx, splitID, 0.3))

	node, _ := f.tree.Find(splitID)
	assert.InDelta(t, 0.3, node.Ratio, 1e-9)
	sv, ok := f.coord.Synchronizer().SplitView(splitID)
	require.True(t, ok)
	assert.InDelta(t, 0.3, sv.GetRatio(), 1e-9)

	assert.ErrorIs(t, f.coord.SetSplitRatio(f.ctx, "missing", 0.5), entity.ErrNotFound)
}

func TestWorkspaceCoordinator_SuspendResume(t *testing.T) {
	f := newFixture(t, content.TypeNotes)
	f.start(t)

	require.True(t, f.coord.SuspendLeaf("root"))
	state, _ := f.coord.PaneState("root")
	assert.Equal(t, lifecycle.StateSuspended, state)
	assert.False(t, f.notes(t, "root").View().(*layouttest.Text).Editable)

	require.True(t, f.coord.ResumeLeaf("root"))
	state, _ = f.coord.PaneState("root")
	assert.Equal(t, lifecycle.StateReady, state)
	assert.False(t, f.coord.SuspendLeaf("missing"))
}

func TestWorkspaceCoordinator_TerminalIgnoresSuspend(t *testing.T) {
	f := newFixture(t, content.TypeTerminal)
	f.start(t)
	t.Cleanup(func() { f.coord.Shutdown(f.ctx) })

	state, ok := f.coord.PaneState("root")
	require.True(t, ok)
	require.Equal(t, lifecycle.StateReady, state)

	assert.False(t, f.coord.SuspendLeaf("root"))
	state, _ = f.coord.PaneState("root")
	assert.Equal(t, lifecycle.StateReady, state)
	assert.False(t, f.coord.ResumeLeaf("root"))
}

func TestWorkspaceCoordinator_PersistsDebounced(t *testing.T) {
	repo := repomocks.NewMockLayoutRepository(t)
	f := newFixture(t, content.TypeNotes, withLayouts(usecase.NewManageLayoutsUseCase(repo), "work", false))
	f.start(t)

	var saved *entity.Layout
	repo.EXPECT().Save(mock.Anything, mock.AnythingOfType("*entity.Layout")).
		Run(func(_ context.Context, l *entity.Layout) { saved = l }).
		Return(nil).Once()

	_, err := f.coord.SplitLeaf(f.ctx, "root", entity.OrientationHorizontal)
	require.NoError(t, err)
	f.notes(t, "root").View().(*layouttest.Text).Type("hello")
	assert.True(t, f.coord.PersistPending())

	f.sched.Advance(coordinator.DefaultPersistDelay)

	require.NotNil(t, saved)
	assert.Equal(t, "work", saved.Name)
	assert.Equal(t, 2, saved.LeafCount)
	require.NotNil(t, saved.State.Root)
	assert.Equal(t, "hello", saved.State.Root.First.ContentState["text"])
	assert.False(t, f.coord.PersistPending())
}

func TestWorkspaceCoordinator_RestoresSavedLayout(t *testing.T) {
	src := entity.NewPaneTreeWithRoot("a", content.TypeNotes, entity.WithIDGenerator(entity.NewSequentialIDGenerator("s")))
	_, err := src.Split("a", entity.OrientationVertical)
	require.NoError(t, err)
	require.NoError(t, src.SetContentState("a", map[string]any{"text": "kept"}))
	require.NoError(t, src.SetActive("s1"))

	repo := repomocks.NewMockLayoutRepository(t)
	repo.EXPECT().Get(mock.Anything, "work").
		Return(&entity.Layout{Name: "work", State: src.GetState(), LeafCount: 2}, nil).Once()

	f := newFixture(t, content.TypeWelcome, withLayouts(usecase.NewManageLayoutsUseCase(repo), "work", true))
	f.start(t)

	assert.Equal(t, []entity.NodeID{"a", "s1"}, f.tree.LeafIDs())
	assert.Equal(t, "kept", f.notes(t, "a").SaveState()["text"])
	assert.Equal(t, entity.NodeID("s1"), f.coord.Focus().Current())
	assert.NoError(t, f.coord.Synchronizer().Verify(f.tree))
}

func TestWorkspaceCoordinator_MissingLayoutStartsFresh(t *testing.T) {
	repo := repomocks.NewMockLayoutRepository(t)
	repo.EXPECT().Get(mock.Anything, "work").Return(nil, entity.ErrNotFound).Once()

	f := newFixture(t, content.TypeNotes, withLayouts(usecase.NewManageLayoutsUseCase(repo), "work", true))
	f.start(t)

	assert.Equal(t, []entity.NodeID{"root"}, f.tree.LeafIDs())
	assert.Equal(t, entity.NodeID("root"), f.coord.Focus().Current())
}

func TestWorkspaceCoordinator_RestoreLogsCarryLayoutName(t *testing.T) {
	repo := repomocks.NewMockLayoutRepository(t)
	repo.EXPECT().Get(mock.Anything, "work").Return(nil, entity.ErrNotFound).Once()

	var buf bytes.Buffer
	ctx := logging.WithContext(context.Background(), zerolog.New(&buf))

	f := newFixture(t, content.TypeNotes, withLayouts(usecase.NewManageLayoutsUseCase(repo), "work", true))
	require.NoError(t, f.coord.Start(ctx))

	var line string
	for _, l := range strings.Split(buf.String(), "\n") {
		if strings.Contains(l, "no saved layout") {
			line = l
		}
	}
	require.NotEmpty(t, line, buf.String())
	assert.Contains(t, line, `"layout":"work"`)
}

func TestWorkspaceCoordinator_ShutdownSavesAndTearsDown(t *testing.T) {
	repo := repomocks.NewMockLayoutRepository(t)
	f := newFixture(t, content.TypeNotes, withLayouts(usecase.NewManageLayoutsUseCase(repo), "work", false))
	f.start(t)
	_, err := f.coord.SplitLeaf(f.ctx, "root", entity.OrientationHorizontal)
	require.NoError(t, err)
	notes := f.notes(t, "root")

	repo.EXPECT().Save(mock.Anything, mock.MatchedBy(func(l *entity.Layout) bool {
		return l.Name == "work" && l.LeafCount == 2
	})).Return(nil).Once()

	f.coord.Shutdown(f.ctx)

	assert.Zero(t, f.view.PaneCount())
	assert.Nil(t, f.view.RootWidget())
	assert.Zero(t, notes.Subscribers())
	assert.Empty(t, f.coord.Focus().Current())
	assert.False(t, f.coord.PersistPending())

	// A debounced save armed before shutdown never fires.
	f.sched.Advance(time.Second)
	f.coord.Shutdown(f.ctx)
}
