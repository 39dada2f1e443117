package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkspace_Snapshot(t *testing.T) {
	ws := NewWorkspace("ws1", "default", threeLeafTree(t))

	layout := ws.Snapshot()

	assert.Equal(t, "default", layout.Name)
	assert.Equal(t, 3, layout.LeafCount)
	assert.Equal(t, 3, ws.PaneCount())
	assert.Equal(t, NodeID("a"), ws.ActiveLeafID())
	assert.Equal(t, NodeID("a"), layout.State.ActiveLeafID)
	assert.False(t, layout.SavedAt.IsZero())
}

func TestWorkspace_NilTree(t *testing.T) {
	ws := NewWorkspace("ws1", "", nil)

	require.NotNil(t, ws.Tree())
	assert.Equal(t, 1, ws.PaneCount())
}

func newTestTab(id TabID) *Tab {
	return NewTab(id, NewWorkspace(WorkspaceID(id), "", nil))
}

func TestTabList_AddRemove(t *testing.T) {
	tl := NewTabList()
	for _, id := range []TabID{"t1", "t2", "t3"} {
		tl.Add(newTestTab(id))
	}

	assert.Equal(t, 3, tl.Count())
	assert.Equal(t, TabID("t1"), tl.ActiveTabID, "first tab becomes active")
	assert.Equal(t, 2, tl.Find("t3").Position)

	require.True(t, tl.SetActive("t2"))
	require.True(t, tl.Remove("t2"))
	assert.Equal(t, TabID("t3"), tl.ActiveTabID, "successor takes over")
	assert.Equal(t, 1, tl.Find("t3").Position)

	require.True(t, tl.Remove("t3"))
	assert.Equal(t, TabID("t1"), tl.ActiveTabID, "falls back to the new last tab")

	require.True(t, tl.Remove("t1"))
	assert.Empty(t, tl.ActiveTabID)
	assert.Nil(t, tl.ActiveTab())
	assert.False(t, tl.Remove("t1"))
}

func TestTabList_Next(t *testing.T) {
	tl := NewTabList()
	assert.Nil(t, tl.Next(true))

	for _, id := range []TabID{"t1", "t2", "t3"} {
		tl.Add(newTestTab(id))
	}

	assert.Equal(t, TabID("t2"), tl.Next(true).ID)
	assert.Equal(t, TabID("t3"), tl.Next(false).ID, "wraps backwards")

	require.True(t, tl.SetActive("t3"))
	assert.Equal(t, TabID("t1"), tl.Next(true).ID, "wraps forwards")
	assert.False(t, tl.SetActive("missing"))
}

func TestTabList_Move(t *testing.T) {
	tl := NewTabList()
	for _, id := range []TabID{"t1", "t2", "t3"} {
		tl.Add(newTestTab(id))
	}

	require.True(t, tl.Move("t3", 0))

	ids := make([]TabID, 0, 3)
	for i, tab := range tl.Tabs {
		ids = append(ids, tab.ID)
		assert.Equal(t, i, tab.Position)
	}
	assert.Equal(t, []TabID{"t3", "t1", "t2"}, ids)
	assert.False(t, tl.Move("t3", 5))
	assert.False(t, tl.Move("missing", 0))
}

func TestTab_Title(t *testing.T) {
	tab := newTestTab("t1")
	tab.Position = 1
	assert.Equal(t, "Tab 2", tab.Title())

	tab.Workspace.Name = "work"
	assert.Equal(t, "work", tab.Title())
	assert.Equal(t, 1, tab.PaneCount())
}
