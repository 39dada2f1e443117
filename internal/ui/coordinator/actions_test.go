package coordinator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/paneshell/internal/domain/entity"
	"github.com/bnema/paneshell/internal/ui/content"
	"github.com/bnema/paneshell/internal/ui/input"
)

func TestHandleAction_SplitAndClose(t *testing.T) {
	f := newFixture(t, content.TypeNotes)
	f.start(t)

	require.NoError(t, f.coord.HandleAction(f.ctx, input.ActionSplitRight))
	require.NoError(t, f.coord.HandleAction(f.ctx, input.ActionSplitDown))
	assert.Equal(t, 3, f.tree.LeafCount())

	require.NoError(t, f.coord.HandleAction(f.ctx, input.ActionClosePane))
	assert.Equal(t, 2, f.tree.LeafCount())
	assert.NoError(t, f.coord.Synchronizer().Verify(f.tree))
}

func TestHandleAction_FocusActions(t *testing.T) {
	f := newFixture(t, content.TypeNotes)
	f.start(t)
	require.NoError(t, f.coord.HandleAction(f.ctx, input.ActionSplitRight))
	require.Equal(t, entity.NodeID("root"), f.coord.Focus().Current())
	newID := f.tree.LeafIDs()[1]

	require.NoError(t, f.coord.HandleAction(f.ctx, input.ActionCycleNext))
	assert.Equal(t, newID, f.coord.Focus().Current())

	require.NoError(t, f.coord.HandleAction(f.ctx, input.ActionFocusPrevious))
	assert.Equal(t, entity.NodeID("root"), f.coord.Focus().Current())

	require.NoError(t, f.coord.HandleAction(f.ctx, input.ActionCyclePrev))
	assert.Equal(t, newID, f.coord.Focus().Current())
}

func TestHandleAction_ContentChangeTargetsActiveLeaf(t *testing.T) {
	f := newFixture(t, content.TypeNotes)
	f.start(t)

	require.NoError(t, f.coord.HandleAction(f.ctx, input.ActionContentWelcome))

	node, ok := f.tree.Find("root")
	require.True(t, ok)
	assert.Equal(t, content.TypeWelcome, node.ContentType)
}

func TestHandleAction_Unsupported(t *testing.T) {
	f := newFixture(t, content.TypeNotes)
	f.start(t)

	assert.Error(t, f.coord.HandleAction(f.ctx, input.ActionEnterPaneMode))
}

func TestHandleAction_IgnoredAfterShutdown(t *testing.T) {
	f := newFixture(t, content.TypeNotes)
	f.start(t)
	f.coord.Shutdown(f.ctx)

	assert.NoError(t, f.coord.HandleAction(f.ctx, input.ActionSplitRight))
	assert.Equal(t, 1, f.tree.LeafCount())
}

func TestOnModeChange_TogglesWorkspaceClass(t *testing.T) {
	f := newFixture(t, content.TypeNotes)

	f.coord.OnModeChange(input.ModeNormal, input.ModePane)
	assert.True(t, f.view.ContainerWidget().HasCssClass("pane-mode"))

	f.coord.OnModeChange(input.ModePane, input.ModeNormal)
	assert.False(t, f.view.ContainerWidget().HasCssClass("pane-mode"))
}
